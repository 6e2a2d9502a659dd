package decks_test

import (
	"testing"

	"github.com/MainigB/optcgjourney/internal/decks"
	"github.com/MainigB/optcgjourney/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestMatchesCatalog(t *testing.T) {
	got := decks.Suggest(nil, "zoro", 0)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "R Zoro (OP01)")
}

func TestSuggestIsAccentInsensitive(t *testing.T) {
	list := []tracker.Tournament{{ID: "t1", Deck: "Y Enél Custom"}}

	got := decks.Suggest(list, "enel", 0)
	assert.Contains(t, got, "Y Enél Custom")
	assert.Contains(t, got, "Y Enel (OP05)")
}

func TestSuggestPrefersUserSpelling(t *testing.T) {
	// Same folded key as the catalog entry; only the user spelling
	// should appear.
	list := []tracker.Tournament{{ID: "t1", Deck: "r zoro (op01)"}}

	got := decks.Suggest(list, "zoro", 0)
	assert.Contains(t, got, "r zoro (op01)")
	assert.NotContains(t, got, "R Zoro (OP01)")
}

func TestSuggestIncludesOpponents(t *testing.T) {
	list := []tracker.Tournament{{
		ID: "t1", Deck: "R Zoro (OP01)",
		Rounds: []tracker.Round{{ID: "r1", OpponentLeader: "Homemade Brew"}},
	}}

	got := decks.Suggest(list, "homemade", 0)
	assert.Equal(t, []string{"Homemade Brew"}, got)
}

func TestSuggestPrefixBeforeSubstring(t *testing.T) {
	got := decks.Suggest(nil, "luffy", 0)
	require.NotEmpty(t, got)
	// "PY Luffy (OP05)" contains the query but does not start with it;
	// no catalog entry starts with "luffy", so ordering is alphabetical
	// on the folded name.
	assert.Contains(t, got, "PY Luffy (OP05)")
}

func TestSuggestLimit(t *testing.T) {
	got := decks.Suggest(nil, "", 5)
	assert.Len(t, got, 5)
}

func TestSuggestNoMatch(t *testing.T) {
	got := decks.Suggest(nil, "zzzzzz", 0)
	assert.Empty(t, got)
}
