// Package tracker holds the persisted tournament data model, the
// permissive decode of legacy records, and the load-modify-save mutators.
package tracker

// Dice is the outcome of the die-roll sub-game, independent of the match result.
type Dice string

const (
	DiceWon  Dice = "won"
	DiceLost Dice = "lost"
	DiceNone Dice = "none"
)

// Order says whether this deck played first or second.
type Order string

const (
	OrderFirst  Order = "first"
	OrderSecond Order = "second"
)

// Result is the match outcome for this deck.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
)

// Round is one game within a tournament. Rounds are created by append and
// never edited in place; only deletion-triggered renumbering touches them.
type Round struct {
	ID             string `json:"id"`
	Num            int    `json:"num"`
	OpponentLeader string `json:"opponentLeader,omitempty"`
	Dice           Dice   `json:"dice"`
	Order          Order  `json:"order"`
	Result         Result `json:"result"`
	IsBye          bool   `json:"isBye,omitempty"`
}

// Tournament is one event played with exactly one deck. Wins and Losses are
// denormalized: always recomputed from Rounds when Rounds is non-empty,
// kept only as a fallback for legacy records without round detail.
type Tournament struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Deck      string  `json:"deck"`
	Date      int64   `json:"date"` // unix milliseconds
	Set       string  `json:"set,omitempty"`
	Type      string  `json:"type,omitempty"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Rounds    []Round `json:"rounds"`
	Finalized bool    `json:"finalized"`
}

// RawRound is a loosely-typed round as read from older schema versions or
// external edits. Every field may carry any JSON value; SanitizeRound turns
// it into a strict Round without ever failing.
type RawRound struct {
	ID             any `json:"id"`
	Num            any `json:"num"`
	OpponentLeader any `json:"opponentLeader"`
	Dice           any `json:"dice"`
	Order          any `json:"order"`
	Result         any `json:"result"`
	IsBye          any `json:"isBye"`
}

// RawTournament is the loosely-typed persisted shape of a tournament.
type RawTournament struct {
	ID        any        `json:"id"`
	Name      any        `json:"name"`
	Deck      any        `json:"deck"`
	Date      any        `json:"date"`
	Set       any        `json:"set"`
	Type      any        `json:"type"`
	Wins      any        `json:"wins"`
	Losses    any        `json:"losses"`
	Rounds    []RawRound `json:"rounds"`
	Finalized any        `json:"finalized"`
}

// RoundInput is the pre-validated data callers pass to AppendRound.
type RoundInput struct {
	OpponentLeader string `json:"opponentLeader"`
	Dice           Dice   `json:"dice"`
	Order          Order  `json:"order"`
	Result         Result `json:"result"`
	IsBye          bool   `json:"isBye"`
}

// TournamentParams is the data needed to create a tournament.
type TournamentParams struct {
	Name string `json:"name"`
	Deck string `json:"deck"`
	Date int64  `json:"date"` // unix milliseconds, zero means now
	Set  string `json:"set"`
	Type string `json:"type"`
}

// DetailsUpdate carries the optional rename/redate fields; nil means leave
// the field alone.
type DetailsUpdate struct {
	Name *string `json:"name"`
	Date *int64  `json:"date"`
}

// Record is a win/loss tally.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}
