package tracker

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MainigB/optcgjourney/internal/canon"
	"github.com/google/uuid"
)

// Migrate parses a persisted blob into a clean tournament list. Every round
// passes through SanitizeRound, counters are recomputed, string fields are
// trimmed, missing ids/dates/flags are defaulted, and legacy color emoji in
// deck/opponent text are rewritten to letter codes. The second return
// reports whether any text was rewritten, so the caller can persist the
// migrated form and make the rewrite a one-time event per record.
//
// Migrate is pure: it performs no I/O, and a malformed blob is the only
// failure mode.
func Migrate(raw []byte) ([]Tournament, bool, error) {
	var parsed []RawTournament
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, false, fmt.Errorf("tracker: parse blob: %w", err)
	}

	rewritten := false
	list := make([]Tournament, 0, len(parsed))
	for i, rt := range parsed {
		t := sanitizeTournament(rt, i)

		deck, changed := canon.RewriteColorCodes(t.Deck)
		t.Deck = deck
		rewritten = rewritten || changed

		for j := range t.Rounds {
			opp, changed := canon.RewriteColorCodes(t.Rounds[j].OpponentLeader)
			t.Rounds[j].OpponentLeader = opp
			rewritten = rewritten || changed
		}

		list = append(list, t)
	}
	return list, rewritten, nil
}

func sanitizeTournament(rt RawTournament, idx int) Tournament {
	rounds := make([]Round, 0, len(rt.Rounds))
	for i, rr := range rt.Rounds {
		rounds = append(rounds, SanitizeRound(rr, i))
	}

	id := asString(rt.ID)
	if id == "" {
		id = fmt.Sprintf("%d-%s", idx, uuid.New().String())
	}

	date, ok := asInt64(rt.Date)
	if !ok || date == 0 {
		date = time.Now().UnixMilli()
	}

	wins, _ := asInt(rt.Wins)
	losses, _ := asInt(rt.Losses)

	t := Tournament{
		ID:        id,
		Name:      strings.TrimSpace(asString(rt.Name)),
		Deck:      strings.TrimSpace(asString(rt.Deck)),
		Date:      date,
		Set:       strings.TrimSpace(asString(rt.Set)),
		Type:      strings.TrimSpace(asString(rt.Type)),
		Wins:      wins,
		Losses:    losses,
		Rounds:    rounds,
		Finalized: asBool(rt.Finalized),
	}

	// Counters are denormalized: with round detail present they are always
	// recomputed, the stored values only survive for legacy records.
	rec := ComputeRecord(t)
	t.Wins = rec.Wins
	t.Losses = rec.Losses
	return t
}
