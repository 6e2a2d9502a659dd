package tracker

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewTournament builds a fresh tournament with zero rounds. It does not
// persist anything; see Store.Create for the persisted variant.
func NewTournament(params TournamentParams) Tournament {
	date := params.Date
	if date == 0 {
		date = time.Now().UnixMilli()
	}
	return Tournament{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(params.Name),
		Deck:      strings.TrimSpace(params.Deck),
		Date:      date,
		Set:       strings.TrimSpace(params.Set),
		Type:      strings.TrimSpace(params.Type),
		Wins:      0,
		Losses:    0,
		Rounds:    []Round{},
		Finalized: false,
	}
}

// ComputeRecord tallies the match record. With round detail present the
// stored counters are ignored and the tally comes from the rounds (byes
// included); legacy tournaments without rounds fall back to the stored
// counters.
func ComputeRecord(t Tournament) Record {
	if len(t.Rounds) == 0 {
		return Record{Wins: t.Wins, Losses: t.Losses}
	}
	var rec Record
	for _, r := range t.Rounds {
		if r.Result == ResultWin {
			rec.Wins++
		} else {
			rec.Losses++
		}
	}
	return rec
}
