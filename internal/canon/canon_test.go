package canon_test

import (
	"testing"

	"github.com/MainigB/optcgjourney/internal/canon"
	"github.com/stretchr/testify/assert"
)

func TestExactKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trims and collapses whitespace", "  Zoro   Red  ", "Zoro Red"},
		{"strips diacritics", "Vitória Moría", "Vitoria Moria"},
		{"keeps case", "ZORO red", "ZORO red"},
		{"keeps set codes", "Zoro (OP01)", "Zoro (OP01)"},
		{"keeps color emoji", "🟢 Zoro (OP01)", "🟢 Zoro (OP01)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canon.ExactKey(tt.in))
		})
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "Zoro Red", "zoro red"},
		{"strips diacritics", "Vitória", "vitoria"},
		{"decodes entities", "Law &amp; Order", "law & order"},
		{"nbsp becomes space", "Zoro&nbsp;Red", "zoro red"},
		{"strips emoji", "🟢 Zoro (OP01)", "zoro (op01)"},
		{"curly quote to straight", "Law’s Crew", "law's crew"},
		{"exotic punctuation to space", "Zoro/Red|Blue", "zoro red blue"},
		{"collapses whitespace", "  Zoro    Red ", "zoro red"},
		{"keeps parens and hyphen", "Uta (OP-07)", "uta (op-07)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canon.CanonicalKey(tt.in))
		})
	}
}

func TestCanonicalKeyGroupsVariants(t *testing.T) {
	a := canon.CanonicalKey("🟢 Zoro (OP01)")
	b := canon.CanonicalKey("zoro (op01)")
	assert.Equal(t, a, b)

	// ExactKey must keep these distinct: annotation differences matter.
	assert.NotEqual(t, canon.ExactKey("🟢 Zoro (OP01)"), canon.ExactKey("Zoro (OP01)"))
}

func TestWRPercent(t *testing.T) {
	assert.Equal(t, 0, canon.WRPercent(0, 0))
	assert.Equal(t, 100, canon.WRPercent(3, 0))
	assert.Equal(t, 0, canon.WRPercent(0, 5))
	assert.Equal(t, 50, canon.WRPercent(1, 1))
	assert.Equal(t, 67, canon.WRPercent(2, 1))
	assert.Equal(t, 33, canon.WRPercent(1, 2))

	for w := 0; w <= 20; w++ {
		for l := 0; l <= 20; l++ {
			wr := canon.WRPercent(w, l)
			assert.GreaterOrEqual(t, wr, 0)
			assert.LessOrEqual(t, wr, 100)
		}
	}
}

func TestRewriteColorCodes(t *testing.T) {
	out, changed := canon.RewriteColorCodes("🟢 Zoro (OP01)")
	assert.True(t, changed)
	assert.Equal(t, "G Zoro (OP01)", out)

	out, changed = canon.RewriteColorCodes("G Zoro (OP01)")
	assert.False(t, changed)
	assert.Equal(t, "G Zoro (OP01)", out)

	out, changed = canon.RewriteColorCodes("🔵🟡 Queen")
	assert.True(t, changed)
	assert.Equal(t, "UY Queen", out)
}
