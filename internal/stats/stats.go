// Package stats computes derived statistics over the tournament
// collection. Every function is pure: it takes the full list (and
// sometimes a deck label) and returns freshly computed values, so callers
// may memoize per render but nothing here retains state.
//
// Two different equality rules are in play and must not be mixed up:
// tournaments are matched to a deck label by trimmed-string equality, while
// opponents within rounds are grouped by canon.ExactKey. Two deck spellings
// that differ only by case or accents therefore count as different decks
// here, even though opponent grouping would merge them.
package stats

import (
	"sort"
	"strings"

	"github.com/MainigB/optcgjourney/internal/canon"
	"github.com/MainigB/optcgjourney/internal/tracker"
)

// DeckAggregate is one row of the per-deck roll-up.
type DeckAggregate struct {
	Deck        string `json:"deck"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Tournaments int    `json:"tournaments"`
	Rounds      int    `json:"rounds"`
	WR          int    `json:"wr"`
}

// Matchup is the record against one opponent deck.
type Matchup struct {
	Opponent string `json:"opponent"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Rounds   int    `json:"rounds"`
	WR       int    `json:"wr"`
}

// Split is a win/loss breakdown over one partition of the rounds.
type Split struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Rounds int `json:"rounds"`
	WR     int `json:"wr"`
}

// DeckSplits partitions a deck's rounds by turn order and by die-roll
// outcome. Rounds whose die roll was not recorded appear in neither dice
// bucket.
type DeckSplits struct {
	OrderFirst  Split `json:"orderFirst"`
	OrderSecond Split `json:"orderSecond"`
	DiceWon     Split `json:"diceWon"`
	DiceLost    Split `json:"diceLost"`
}

// Matrix cross-partitions by order and dice simultaneously. The four
// buckets are mutually exclusive; rounds with an unrecorded die roll fall
// into none of them.
type Matrix struct {
	FirstWon   Split `json:"firstWon"`
	FirstLost  Split `json:"firstLost"`
	SecondWon  Split `json:"secondWon"`
	SecondLost Split `json:"secondLost"`
}

// MatchupSplits is the full breakdown of one deck-vs-opponent pairing.
type MatchupSplits struct {
	Total       Split  `json:"total"`
	OrderFirst  Split  `json:"orderFirst"`
	OrderSecond Split  `json:"orderSecond"`
	DiceWon     Split  `json:"diceWon"`
	DiceLost    Split  `json:"diceLost"`
	Matrix      Matrix `json:"matrix"`
}

func pack(wins, losses int) Split {
	return Split{Wins: wins, Losses: losses, Rounds: wins + losses, WR: canon.WRPercent(wins, losses)}
}

// labelVote picks a display label for a group by majority vote over the
// observed spellings; ties resolve to the first-seen variant.
type labelVote struct {
	counts map[string]int
	order  []string
}

func newLabelVote() *labelVote {
	return &labelVote{counts: make(map[string]int)}
}

func (v *labelVote) add(label string) {
	if _, seen := v.counts[label]; !seen {
		v.order = append(v.order, label)
	}
	v.counts[label]++
}

func (v *labelVote) winner() string {
	best, bestCount := "", -1
	for _, label := range v.order {
		if v.counts[label] > bestCount {
			best, bestCount = label, v.counts[label]
		}
	}
	return best
}

// AggregateByDeck rolls the collection up per deck. Grouping is by the
// trimmed deck label, so any textual variation makes a separate row. Rows
// are sorted by wins, descending.
func AggregateByDeck(list []tracker.Tournament) []DeckAggregate {
	groups := make(map[string]*DeckAggregate)
	var order []string

	for _, t := range list {
		key := strings.TrimSpace(t.Deck)
		rec := tracker.ComputeRecord(t)

		agg, ok := groups[key]
		if !ok {
			agg = &DeckAggregate{Deck: key}
			groups[key] = agg
			order = append(order, key)
		}
		agg.Wins += rec.Wins
		agg.Losses += rec.Losses
		agg.Tournaments++
		if len(t.Rounds) > 0 {
			agg.Rounds += len(t.Rounds)
		} else {
			// Legacy records carry no round detail; the counters are the
			// best available estimate.
			agg.Rounds += rec.Wins + rec.Losses
		}
	}

	out := make([]DeckAggregate, 0, len(order))
	for _, key := range order {
		agg := *groups[key]
		agg.WR = canon.WRPercent(agg.Wins, agg.Losses)
		out = append(out, agg)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Wins > out[j].Wins })
	return out
}

// StatsForDeck returns the aggregate row for one deck label, or an all-zero
// row when the deck has never been played.
func StatsForDeck(list []tracker.Tournament, deck string) DeckAggregate {
	want := strings.TrimSpace(deck)
	for _, agg := range AggregateByDeck(list) {
		if agg.Deck == want {
			return agg
		}
	}
	return DeckAggregate{Deck: want}
}

// MatchupsForDeck breaks the given deck's rounds down by opponent.
// Opponents are grouped by canon.ExactKey so annotation differences (set
// codes, color letters) stay distinct; byes and rounds without an opponent
// are excluded. Sorted by round count, then win rate, both descending.
func MatchupsForDeck(list []tracker.Tournament, myDeck string) []Matchup {
	me := strings.TrimSpace(myDeck)

	groups := make(map[string]*Matchup)
	votes := make(map[string]*labelVote)
	var order []string

	for _, t := range list {
		if strings.TrimSpace(t.Deck) != me {
			continue
		}
		for _, r := range t.Rounds {
			if r.IsBye {
				continue
			}
			label := strings.TrimSpace(r.OpponentLeader)
			key := canon.ExactKey(label)
			if key == "" {
				continue
			}

			mu, ok := groups[key]
			if !ok {
				mu = &Matchup{}
				groups[key] = mu
				votes[key] = newLabelVote()
				order = append(order, key)
			}
			if r.Result == tracker.ResultWin {
				mu.Wins++
			} else {
				mu.Losses++
			}
			mu.Rounds++
			votes[key].add(label)
		}
	}

	out := make([]Matchup, 0, len(order))
	for _, key := range order {
		mu := *groups[key]
		mu.Opponent = votes[key].winner()
		mu.WR = canon.WRPercent(mu.Wins, mu.Losses)
		out = append(out, mu)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rounds != out[j].Rounds {
			return out[i].Rounds > out[j].Rounds
		}
		return out[i].WR > out[j].WR
	})
	return out
}

// SplitsForDeck partitions the deck's non-bye rounds by turn order and by
// die-roll outcome.
func SplitsForDeck(list []tracker.Tournament, myDeck string) DeckSplits {
	me := strings.TrimSpace(myDeck)

	var o1w, o1l, o2w, o2l int
	var dww, dwl, dlw, dll int

	for _, t := range list {
		if strings.TrimSpace(t.Deck) != me {
			continue
		}
		for _, r := range t.Rounds {
			if r.IsBye {
				continue
			}
			won := r.Result == tracker.ResultWin

			switch r.Order {
			case tracker.OrderFirst:
				if won {
					o1w++
				} else {
					o1l++
				}
			case tracker.OrderSecond:
				if won {
					o2w++
				} else {
					o2l++
				}
			}

			switch r.Dice {
			case tracker.DiceWon:
				if won {
					dww++
				} else {
					dwl++
				}
			case tracker.DiceLost:
				if won {
					dlw++
				} else {
					dll++
				}
			}
		}
	}

	return DeckSplits{
		OrderFirst:  pack(o1w, o1l),
		OrderSecond: pack(o2w, o2l),
		DiceWon:     pack(dww, dwl),
		DiceLost:    pack(dlw, dll),
	}
}

// MatchupSplitsForDeck is SplitsForDeck restricted to rounds against one
// opponent (matched by canon.ExactKey), plus the order×dice matrix. Rounds
// with an unrecorded die roll count in Total and the order splits but in
// neither dice bucket and no matrix cell.
func MatchupSplitsForDeck(list []tracker.Tournament, myDeck, opponent string) MatchupSplits {
	me := strings.TrimSpace(myDeck)
	opp := canon.ExactKey(opponent)

	var w, l int
	var o1w, o1l, o2w, o2l int
	var dww, dwl, dlw, dll int
	var fww, fwl, flw, fll int
	var sww, swl, slw, sll int

	for _, t := range list {
		if strings.TrimSpace(t.Deck) != me {
			continue
		}
		for _, r := range t.Rounds {
			if r.IsBye {
				continue
			}
			if canon.ExactKey(r.OpponentLeader) != opp {
				continue
			}
			won := r.Result == tracker.ResultWin

			if won {
				w++
			} else {
				l++
			}

			first := r.Order == tracker.OrderFirst
			if first {
				if won {
					o1w++
				} else {
					o1l++
				}
			} else {
				if won {
					o2w++
				} else {
					o2l++
				}
			}

			switch r.Dice {
			case tracker.DiceWon:
				if won {
					dww++
				} else {
					dwl++
				}
				if first {
					if won {
						fww++
					} else {
						fwl++
					}
				} else {
					if won {
						sww++
					} else {
						swl++
					}
				}
			case tracker.DiceLost:
				if won {
					dlw++
				} else {
					dll++
				}
				if first {
					if won {
						flw++
					} else {
						fll++
					}
				} else {
					if won {
						slw++
					} else {
						sll++
					}
				}
			}
		}
	}

	return MatchupSplits{
		Total:       pack(w, l),
		OrderFirst:  pack(o1w, o1l),
		OrderSecond: pack(o2w, o2l),
		DiceWon:     pack(dww, dwl),
		DiceLost:    pack(dlw, dll),
		Matrix: Matrix{
			FirstWon:   pack(fww, fwl),
			FirstLost:  pack(flw, fll),
			SecondWon:  pack(sww, swl),
			SecondLost: pack(slw, sll),
		},
	}
}
