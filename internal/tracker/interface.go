package tracker

import "context"

// Store is the persistence adapter plus the record mutators. Mutators
// follow one pattern: load the full collection, locate by id, apply the
// change, recompute denormalized fields, save everything back. A missing id
// is signaled by a nil (or false) return, never an error. Writes are
// last-writer-wins with no locking; the intended execution context is a
// single interactive user session.
type Store interface {
	LoadAll(ctx context.Context) []Tournament
	SaveAll(ctx context.Context, list []Tournament)
	Get(ctx context.Context, tournamentID string) *Tournament
	Create(ctx context.Context, params TournamentParams) Tournament
	AppendRound(ctx context.Context, tournamentID string, input RoundInput) *Tournament
	RemoveRound(ctx context.Context, tournamentID, roundID string) *Tournament
	SetFinalized(ctx context.Context, tournamentID string, finalized bool) *Tournament
	UpdateDetails(ctx context.Context, tournamentID string, details DetailsUpdate) *Tournament
	Delete(ctx context.Context, tournamentID string) bool
}
