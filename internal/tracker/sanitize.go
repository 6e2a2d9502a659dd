package tracker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Coercion patterns. Persisted data has drifted across app versions and two
// locales, so each enum accepts the historical English and Portuguese
// spellings by prefix.
var (
	orderFirstRe  = regexp.MustCompile(`(?i)^(first|prime)`)
	orderSecondRe = regexp.MustCompile(`(?i)^(second|segu)`)
	diceWonRe     = regexp.MustCompile(`(?i)^(won|win|ganh)`)
	diceLostRe    = regexp.MustCompile(`(?i)^(lost|lose|perd)`)
	resultWinRe   = regexp.MustCompile(`(?i)^(win|vict|vit[óo]ria|ganh)`)
	resultLossRe  = regexp.MustCompile(`(?i)^(loss|der|perd)`)
)

// SanitizeRound turns an arbitrarily-shaped round record into a strict
// Round. It is total: malformed fields are coerced to defaults, never
// rejected. idx is the round's position in its containing list, used when
// no sequence number survived.
func SanitizeRound(r RawRound, idx int) Round {
	id := asString(r.ID)
	if id == "" {
		id = uuid.New().String()
	}

	num, ok := asInt(r.Num)
	if !ok || num == 0 {
		num = idx + 1
	}

	return Round{
		ID:             id,
		Num:            num,
		OpponentLeader: strings.TrimSpace(asString(r.OpponentLeader)),
		Dice:           coerceDice(r.Dice),
		Order:          coerceOrder(r.Order),
		Result:         coerceResult(r.Result),
		IsBye:          asBool(r.IsBye),
	}
}

// coerceOrder accepts 'first'/'second', 1/2 (numeric or string), and
// English/Portuguese prefixes. Unrecognized input defaults to second.
func coerceOrder(v any) Order {
	if n, ok := asInt(v); ok {
		switch n {
		case 1:
			return OrderFirst
		case 2:
			return OrderSecond
		}
	}
	s := asString(v)
	switch {
	case orderFirstRe.MatchString(s):
		return OrderFirst
	case orderSecondRe.MatchString(s):
		return OrderSecond
	}
	return OrderSecond
}

// coerceDice accepts 'won'/'lost', booleans, and won/win/ganh vs
// lost/lose/perd prefixes. Anything else means the die roll was not recorded.
func coerceDice(v any) Dice {
	if b, ok := v.(bool); ok {
		if b {
			return DiceWon
		}
		return DiceLost
	}
	s := asString(v)
	switch {
	case diceWonRe.MatchString(s):
		return DiceWon
	case diceLostRe.MatchString(s):
		return DiceLost
	}
	return DiceNone
}

// coerceResult accepts 'win'/'loss', booleans, single letters, and
// English/Portuguese prefixes. Unrecognized input defaults to loss.
func coerceResult(v any) Result {
	if b, ok := v.(bool); ok {
		if b {
			return ResultWin
		}
		return ResultLoss
	}
	s := asString(v)
	switch {
	case s == "W", resultWinRe.MatchString(s):
		return ResultWin
	case s == "L", resultLossRe.MatchString(s):
		return ResultLoss
	}
	return ResultLoss
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
