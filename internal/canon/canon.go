// Package canon turns free-text deck and opponent labels into comparison
// keys. Labels are stored as the user typed them; aggregation decides
// equality through these keys instead.
package canon

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)

	// Common HTML entities seen in labels pasted from web deck lists.
	entityAmp  = regexp.MustCompile(`(?i)&amp;`)
	entityNbsp = regexp.MustCompile(`(?i)&nbsp;`)
	entityLt   = regexp.MustCompile(`(?i)&lt;`)
	entityGt   = regexp.MustCompile(`(?i)&gt;`)
)

// ExactKey normalizes a label just enough to compare it: it strips
// diacritics and collapses whitespace, but keeps case, emoji and set-code
// annotations. Two labels that differ only by a set suffix or a color
// indicator stay distinct under this key.
func ExactKey(s string) string {
	t := stripMarks(s)
	t = spaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// CanonicalKey flattens a label for fuzzy grouping: HTML entities are
// decoded, diacritics and emoji are removed, exotic punctuation becomes a
// space, curly quotes become straight quotes, whitespace is collapsed and
// the result is lowercased. Labels that only differ in formatting map to
// the same key.
func CanonicalKey(s string) string {
	t := entityAmp.ReplaceAllString(s, "&")
	t = entityNbsp.ReplaceAllString(t, " ")
	t = entityLt.ReplaceAllString(t, "<")
	t = entityGt.ReplaceAllString(t, ">")

	t = stripMarks(t)

	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		switch {
		case isEmoji(r):
			// dropped entirely
		case unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("&()'’- ", r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	t = strings.NewReplacer("’", "'", "‘", "'").Replace(b.String())

	t = spaceRe.ReplaceAllString(t, " ")
	return strings.ToLower(strings.TrimSpace(t))
}

// Fold is the lighter lookup normalization used for autocomplete style
// matching: diacritics stripped, lowercased, whitespace collapsed.
func Fold(s string) string {
	return strings.ToLower(ExactKey(s))
}

// WRPercent returns the win rate of a wins/losses pair as a whole
// percentage, 0 when no games were played.
func WRPercent(wins, losses int) int {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(wins) / float64(total)))
}

var colorCodes = strings.NewReplacer(
	"🟢", "G",
	"🔵", "U",
	"🟣", "P",
	"⚫", "B",
	"🔴", "R",
	"🟡", "Y",
)

// RewriteColorCodes replaces the legacy color-emoji markers embedded in
// deck and opponent text with their single-letter codes (🟢→G, 🔵→U, 🟣→P,
// ⚫→B, 🔴→R, 🟡→Y). The second return reports whether anything changed, so
// callers can persist the rewritten form and run the migration at most once
// per record.
func RewriteColorCodes(s string) (string, bool) {
	out := colorCodes.Replace(s)
	return out, out != s
}

// stripMarks applies NFD decomposition and drops combining marks, turning
// "Baggé" into "Bagge".
func stripMarks(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isEmoji covers the pictographic planes used by deck labels (color dots,
// flair). Mirrors the fallback range U+1F000–U+1FAFF plus the legacy
// symbol blocks where ⚫ and friends live, and the variation selector.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r == 0xFE0F || r == 0x200D:
		return true
	}
	return false
}
