package tracker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MainigB/optcgjourney/internal/blob"
	"github.com/MainigB/optcgjourney/internal/kvstore"
	"github.com/MainigB/optcgjourney/internal/metrics"
	"github.com/charmbracelet/log"
)

const (
	// keyLegacy held a plain JSON array in early app versions. It is read
	// once for migration and then deleted.
	keyLegacy = "tournaments"
	// keyVersioned holds the compressed blob and is the only key written
	// going forward.
	keyVersioned = "tournaments.v2"
)

type store struct {
	kv      kvstore.Store
	metrics metrics.Metrics
}

// New creates a Store persisting into the given key-value store.
func New(kv kvstore.Store, m metrics.Metrics) Store {
	return &store{kv: kv, metrics: m}
}

// LoadAll reads the full tournament collection. The versioned key is tried
// first, then the legacy plain-JSON key; a legacy hit is migrated forward
// immediately. Corrupted blobs and store failures yield an empty
// collection, never an error.
func (s *store) LoadAll(ctx context.Context) []Tournament {
	s.metrics.IncLoads()

	if encoded, ok := s.kv.Get(ctx, keyVersioned); ok {
		raw, err := blob.Decode(encoded)
		if err != nil {
			log.Error("Failed to decode tournament blob", "error", err)
			return []Tournament{}
		}
		list, rewritten, err := Migrate(raw)
		if err != nil {
			log.Error("Failed to parse tournament blob", "error", err)
			return []Tournament{}
		}
		if rewritten {
			log.Info("Rewrote legacy color emoji in loaded records")
			s.metrics.IncColorRewrites()
			s.SaveAll(ctx, list)
		}
		return list
	}

	if raw, ok := s.kv.Get(ctx, keyLegacy); ok {
		list, _, err := Migrate([]byte(raw))
		if err != nil {
			log.Error("Failed to parse legacy tournament blob", "error", err)
			return []Tournament{}
		}
		log.Info("Migrating legacy tournament blob to versioned key", "tournaments", len(list))
		s.metrics.IncLegacyMigrations()
		s.SaveAll(ctx, list)
		return list
	}

	return []Tournament{}
}

// SaveAll serializes and writes the full collection under the versioned key
// and drops the legacy key. Persistence is best-effort: failures are logged
// and swallowed, callers get no feedback channel.
func (s *store) SaveAll(ctx context.Context, list []Tournament) {
	s.metrics.IncSaves()

	data, err := json.Marshal(list)
	if err != nil {
		log.Error("Failed to serialize tournaments", "error", err)
		s.metrics.IncSaveFailures()
		return
	}
	encoded, err := blob.Encode(data)
	if err != nil {
		log.Error("Failed to encode tournament blob", "error", err)
		s.metrics.IncSaveFailures()
		return
	}
	if err := s.kv.Set(ctx, keyVersioned, encoded); err != nil {
		s.metrics.IncSaveFailures()
		return
	}
	// Best effort; the legacy key may not exist.
	_ = s.kv.Remove(ctx, keyLegacy)
}

func (s *store) Get(ctx context.Context, tournamentID string) *Tournament {
	list := s.LoadAll(ctx)
	if i := indexOf(list, tournamentID); i >= 0 {
		t := list[i]
		return &t
	}
	return nil
}

// Create builds a new tournament, prepends it to the collection and
// persists. Newest first matches how the tracker lists events.
func (s *store) Create(ctx context.Context, params TournamentParams) Tournament {
	t := NewTournament(params)
	list := s.LoadAll(ctx)
	s.SaveAll(ctx, append([]Tournament{t}, list...))
	return t
}

// AppendRound sanitizes and appends a round. A finalized tournament is
// returned unchanged: finalize gates additions only, and callers detect the
// no-op by comparing round counts.
func (s *store) AppendRound(ctx context.Context, tournamentID string, input RoundInput) *Tournament {
	list := s.LoadAll(ctx)
	i := indexOf(list, tournamentID)
	if i < 0 {
		return nil
	}

	t := list[i]
	if t.Finalized {
		return &t
	}

	round := SanitizeRound(RawRound{
		OpponentLeader: input.OpponentLeader,
		Dice:           string(input.Dice),
		Order:          string(input.Order),
		Result:         string(input.Result),
		IsBye:          input.IsBye,
	}, len(t.Rounds))
	round.Num = len(t.Rounds) + 1

	t.Rounds = append(append([]Round{}, t.Rounds...), round)
	rec := ComputeRecord(t)
	t.Wins, t.Losses = rec.Wins, rec.Losses

	list[i] = t
	s.SaveAll(ctx, list)
	return &t
}

// RemoveRound deletes a round and renumbers the remainder from 1. Removal
// is corrective rather than competitive, so it bypasses the finalized lock.
func (s *store) RemoveRound(ctx context.Context, tournamentID, roundID string) *Tournament {
	list := s.LoadAll(ctx)
	i := indexOf(list, tournamentID)
	if i < 0 {
		return nil
	}

	t := list[i]
	kept := make([]Round, 0, len(t.Rounds))
	for _, r := range t.Rounds {
		if r.ID == roundID {
			continue
		}
		r.Num = len(kept) + 1
		kept = append(kept, r)
	}

	t.Rounds = kept
	// ComputeRecord falls back to the stored counters when no rounds are
	// left, which keeps legacy tournaments without round detail intact.
	rec := ComputeRecord(t)
	t.Wins, t.Losses = rec.Wins, rec.Losses

	list[i] = t
	s.SaveAll(ctx, list)
	return &t
}

// SetFinalized toggles the round-addition lock. No other side effects.
func (s *store) SetFinalized(ctx context.Context, tournamentID string, finalized bool) *Tournament {
	list := s.LoadAll(ctx)
	i := indexOf(list, tournamentID)
	if i < 0 {
		return nil
	}

	list[i].Finalized = finalized
	t := list[i]
	s.SaveAll(ctx, list)
	return &t
}

// UpdateDetails renames and/or redates a tournament.
func (s *store) UpdateDetails(ctx context.Context, tournamentID string, details DetailsUpdate) *Tournament {
	list := s.LoadAll(ctx)
	i := indexOf(list, tournamentID)
	if i < 0 {
		return nil
	}

	if details.Name != nil {
		list[i].Name = strings.TrimSpace(*details.Name)
	}
	if details.Date != nil {
		list[i].Date = *details.Date
	}
	t := list[i]
	s.SaveAll(ctx, list)
	return &t
}

// Delete removes a tournament entirely and reports whether anything was
// actually removed.
func (s *store) Delete(ctx context.Context, tournamentID string) bool {
	list := s.LoadAll(ctx)
	i := indexOf(list, tournamentID)
	if i < 0 {
		return false
	}

	s.SaveAll(ctx, append(list[:i], list[i+1:]...))
	return true
}

func indexOf(list []Tournament, id string) int {
	for i, t := range list {
		if t.ID == id {
			return i
		}
	}
	return -1
}
