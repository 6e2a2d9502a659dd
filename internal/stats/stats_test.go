package stats_test

import (
	"testing"

	"github.com/MainigB/optcgjourney/internal/stats"
	"github.com/MainigB/optcgjourney/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func round(opponent string, dice tracker.Dice, order tracker.Order, result tracker.Result) tracker.Round {
	return tracker.Round{
		ID:             opponent + string(dice) + string(order) + string(result),
		OpponentLeader: opponent,
		Dice:           dice,
		Order:          order,
		Result:         result,
	}
}

func bye() tracker.Round {
	return tracker.Round{ID: "bye", Result: tracker.ResultWin, Dice: tracker.DiceNone, Order: tracker.OrderSecond, IsBye: true}
}

func TestAggregateByDeckSingleTournament(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Name: "Store Cup", Deck: "Zoro Red",
		Rounds: []tracker.Round{
			round("Luffy Yellow", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
		},
	}}

	aggs := stats.AggregateByDeck(list)
	require.Len(t, aggs, 1)
	assert.Equal(t, stats.DeckAggregate{
		Deck: "Zoro Red", Wins: 1, Losses: 0, Tournaments: 1, Rounds: 1, WR: 100,
	}, aggs[0])
}

func TestAggregateByDeckGroupsAndSorts(t *testing.T) {
	list := []tracker.Tournament{
		{ID: "t1", Deck: "Law Blue", Rounds: []tracker.Round{
			round("A", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
			round("B", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
		}},
		{ID: "t2", Deck: " Zoro Red ", Rounds: []tracker.Round{
			round("A", tracker.DiceNone, tracker.OrderFirst, tracker.ResultLoss),
		}},
		{ID: "t3", Deck: "Zoro Red", Rounds: []tracker.Round{
			round("A", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
		}},
		// Different spelling variant: exact-text grouping keeps it separate.
		{ID: "t4", Deck: "zoro red", Rounds: []tracker.Round{
			round("A", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
		}},
	}

	aggs := stats.AggregateByDeck(list)
	require.Len(t, aggs, 3)

	// Sorted by wins descending.
	assert.Equal(t, "Law Blue", aggs[0].Deck)
	assert.Equal(t, 2, aggs[0].Wins)

	byDeck := map[string]stats.DeckAggregate{}
	for _, a := range aggs {
		byDeck[a.Deck] = a
	}
	zoro := byDeck["Zoro Red"]
	assert.Equal(t, 2, zoro.Tournaments)
	assert.Equal(t, 1, zoro.Wins)
	assert.Equal(t, 1, zoro.Losses)
	assert.Equal(t, 2, zoro.Rounds)
	assert.Equal(t, 50, zoro.WR)

	lower := byDeck["zoro red"]
	assert.Equal(t, 1, lower.Tournaments)
}

func TestAggregateByDeckLegacyRoundFallback(t *testing.T) {
	list := []tracker.Tournament{
		{ID: "t1", Deck: "Law", Wins: 3, Losses: 2}, // no round detail
	}
	aggs := stats.AggregateByDeck(list)
	require.Len(t, aggs, 1)
	assert.Equal(t, 3, aggs[0].Wins)
	assert.Equal(t, 2, aggs[0].Losses)
	assert.Equal(t, 5, aggs[0].Rounds)
}

func TestStatsForDeck(t *testing.T) {
	list := []tracker.Tournament{
		{ID: "t1", Deck: "Zoro Red", Rounds: []tracker.Round{
			round("A", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
		}},
	}

	got := stats.StatsForDeck(list, " Zoro Red ")
	assert.Equal(t, 1, got.Wins)
	assert.Equal(t, 100, got.WR)

	missing := stats.StatsForDeck(list, "Nami Blue")
	assert.Equal(t, stats.DeckAggregate{Deck: "Nami Blue"}, missing)
}

func TestMatchupsForDeck(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Deck: "Zoro Red",
		Rounds: []tracker.Round{
			round("Luffy Yellow", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
			round("Luffy Yellow", tracker.DiceLost, tracker.OrderSecond, tracker.ResultLoss),
		},
	}}

	mus := stats.MatchupsForDeck(list, "Zoro Red")
	require.Len(t, mus, 1)
	assert.Equal(t, stats.Matchup{
		Opponent: "Luffy Yellow", Wins: 1, Losses: 1, Rounds: 2, WR: 50,
	}, mus[0])
}

func TestMatchupsForDeckExcludesByesAndBlanks(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Deck: "Zoro Red",
		Rounds: []tracker.Round{
			round("Luffy Yellow", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
			round("Luffy Yellow", tracker.DiceLost, tracker.OrderSecond, tracker.ResultLoss),
			bye(),
			round("", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
		},
	}}

	mus := stats.MatchupsForDeck(list, "Zoro Red")
	require.Len(t, mus, 1)
	assert.Equal(t, 2, mus[0].Rounds)
}

func TestMatchupsForDeckGroupsByExactKeyWithMajorityLabel(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Deck: "Zoro Red",
		Rounds: []tracker.Round{
			// Same exact key: accents stripped, whitespace collapsed.
			round("Vitória  Moría", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
			round("Vitoria Moria", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
			round("Vitoria Moria", tracker.DiceWon, tracker.OrderFirst, tracker.ResultLoss),
			// Different set annotation stays a separate matchup.
			round("Vitoria Moria (OP05)", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
		},
	}}

	mus := stats.MatchupsForDeck(list, "Zoro Red")
	require.Len(t, mus, 2)

	// Majority vote picks the spelling seen most often.
	assert.Equal(t, "Vitoria Moria", mus[0].Opponent)
	assert.Equal(t, 3, mus[0].Rounds)
	assert.Equal(t, "Vitoria Moria (OP05)", mus[1].Opponent)
}

func TestMatchupsForDeckSortAndTieBreak(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Deck: "Zoro Red",
		Rounds: []tracker.Round{
			// Opp A: 1 round, 100%.
			round("A", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
			// Opp B: 2 rounds, 50%.
			round("B", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
			round("B", tracker.DiceNone, tracker.OrderFirst, tracker.ResultLoss),
			// Opp C: 2 rounds, 100% — same round count as B, higher WR.
			round("C", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
			round("C", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
		},
	}}

	mus := stats.MatchupsForDeck(list, "Zoro Red")
	require.Len(t, mus, 3)
	assert.Equal(t, "C", mus[0].Opponent)
	assert.Equal(t, "B", mus[1].Opponent)
	assert.Equal(t, "A", mus[2].Opponent)
}

func TestMatchupsForDeckExactDeckMatch(t *testing.T) {
	list := []tracker.Tournament{
		{ID: "t1", Deck: "Zoro Red", Rounds: []tracker.Round{
			round("A", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
		}},
		// Case variant is a different deck for tournament matching.
		{ID: "t2", Deck: "zoro red", Rounds: []tracker.Round{
			round("A", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
		}},
	}

	mus := stats.MatchupsForDeck(list, "Zoro Red")
	require.Len(t, mus, 1)
	assert.Equal(t, 1, mus[0].Rounds)
}

func TestSplitsForDeck(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Deck: "Zoro Red",
		Rounds: []tracker.Round{
			round("A", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
			round("A", tracker.DiceWon, tracker.OrderFirst, tracker.ResultLoss),
			round("A", tracker.DiceLost, tracker.OrderSecond, tracker.ResultWin),
			round("A", tracker.DiceNone, tracker.OrderSecond, tracker.ResultLoss),
			bye(),
		},
	}}

	sp := stats.SplitsForDeck(list, "Zoro Red")

	assert.Equal(t, stats.Split{Wins: 1, Losses: 1, Rounds: 2, WR: 50}, sp.OrderFirst)
	assert.Equal(t, stats.Split{Wins: 1, Losses: 1, Rounds: 2, WR: 50}, sp.OrderSecond)
	// dice=none rounds are excluded from both dice buckets.
	assert.Equal(t, stats.Split{Wins: 1, Losses: 1, Rounds: 2, WR: 50}, sp.DiceWon)
	assert.Equal(t, stats.Split{Wins: 1, Losses: 0, Rounds: 1, WR: 100}, sp.DiceLost)
}

func TestSplitsForDeckEmpty(t *testing.T) {
	sp := stats.SplitsForDeck(nil, "Zoro Red")
	assert.Equal(t, stats.Split{}, sp.OrderFirst)
	assert.Equal(t, 0, sp.DiceWon.WR)
}

func TestMatchupSplitsForDeck(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Deck: "Zoro Red",
		Rounds: []tracker.Round{
			round("Luffy", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
			round("Luffy", tracker.DiceWon, tracker.OrderSecond, tracker.ResultLoss),
			round("Luffy", tracker.DiceLost, tracker.OrderFirst, tracker.ResultLoss),
			round("Luffy", tracker.DiceLost, tracker.OrderSecond, tracker.ResultWin),
			round("Luffy", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
			// Different opponent, must not leak in.
			round("Kaido", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
			bye(),
		},
	}}

	ms := stats.MatchupSplitsForDeck(list, "Zoro Red", "Luffy")

	assert.Equal(t, stats.Split{Wins: 3, Losses: 2, Rounds: 5, WR: 60}, ms.Total)
	assert.Equal(t, stats.Split{Wins: 2, Losses: 1, Rounds: 3, WR: 67}, ms.OrderFirst)
	assert.Equal(t, stats.Split{Wins: 1, Losses: 1, Rounds: 2, WR: 50}, ms.OrderSecond)
	assert.Equal(t, stats.Split{Wins: 1, Losses: 1, Rounds: 2, WR: 50}, ms.DiceWon)
	assert.Equal(t, stats.Split{Wins: 1, Losses: 1, Rounds: 2, WR: 50}, ms.DiceLost)

	assert.Equal(t, stats.Split{Wins: 1, Losses: 0, Rounds: 1, WR: 100}, ms.Matrix.FirstWon)
	assert.Equal(t, stats.Split{Wins: 0, Losses: 1, Rounds: 1, WR: 0}, ms.Matrix.FirstLost)
	assert.Equal(t, stats.Split{Wins: 0, Losses: 1, Rounds: 1, WR: 0}, ms.Matrix.SecondWon)
	assert.Equal(t, stats.Split{Wins: 1, Losses: 0, Rounds: 1, WR: 100}, ms.Matrix.SecondLost)
}

// The four matrix buckets cover exactly the rounds whose die roll was
// recorded.
func TestMatrixPartitionCompleteness(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Deck: "Zoro Red",
		Rounds: []tracker.Round{
			round("Luffy", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
			round("Luffy", tracker.DiceLost, tracker.OrderSecond, tracker.ResultLoss),
			round("Luffy", tracker.DiceNone, tracker.OrderFirst, tracker.ResultWin),
			round("Luffy", tracker.DiceNone, tracker.OrderSecond, tracker.ResultLoss),
		},
	}}

	ms := stats.MatchupSplitsForDeck(list, "Zoro Red", "Luffy")

	diceNone := 2
	matrixRounds := ms.Matrix.FirstWon.Rounds + ms.Matrix.FirstLost.Rounds +
		ms.Matrix.SecondWon.Rounds + ms.Matrix.SecondLost.Rounds
	assert.Equal(t, ms.Total.Rounds-diceNone, matrixRounds)
}

// Byes count toward the match record but not toward opponent statistics.
func TestByeExclusion(t *testing.T) {
	rounds := []tracker.Round{
		round("Luffy", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
		round("Luffy", tracker.DiceWon, tracker.OrderFirst, tracker.ResultWin),
	}
	for i := 0; i < 2; i++ {
		b := bye()
		b.ID = b.ID + string(rune('0'+i))
		rounds = append(rounds, b)
	}
	list := []tracker.Tournament{{ID: "t1", Deck: "Zoro Red", Rounds: rounds}}

	rec := tracker.ComputeRecord(list[0])
	assert.Equal(t, 4, rec.Wins)

	mus := stats.MatchupsForDeck(list, "Zoro Red")
	require.Len(t, mus, 1)
	assert.Equal(t, 2, mus[0].Rounds)

	sp := stats.SplitsForDeck(list, "Zoro Red")
	assert.Equal(t, 2, sp.OrderFirst.Rounds+sp.OrderSecond.Rounds)
}
