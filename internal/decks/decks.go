// Package decks carries a small built-in catalog of popular leaders used
// to autocomplete deck and opponent names, plus the names the user has
// already entered.
package decks

import (
	"sort"
	"strings"

	"github.com/MainigB/optcgjourney/internal/canon"
	"github.com/MainigB/optcgjourney/internal/tracker"
)

// catalog lists well-known leaders with their color letters. User input
// is merged on top of it, so the list only needs the common picks.
var catalog = []string{
	"R Zoro (OP01)",
	"G Kid (OP01)",
	"RP Law (OP01)",
	"P Doflamingo (OP01)",
	"B Crocodile (OP01)",
	"Y Yamato (OP01)",
	"GU Sanji (OP01)",
	"R Luffy (OP02)",
	"G Whitebeard Pirates (OP02)",
	"BY Ace (OP02)",
	"B Rebecca (OP02)",
	"P Magellan (OP02)",
	"R Ace (OP03)",
	"U Nami (OP03)",
	"P Katakuri (OP03)",
	"B Arlong (OP03)",
	"Y Charlotte Linlin (OP03)",
	"GY Yamato (OP04)",
	"PB Issho (OP04)",
	"U Queen (OP04)",
	"R Sabo (OP04)",
	"B Rob Lucci (OP04)",
	"PY Luffy (OP05)",
	"B Sakazuki (OP05)",
	"G Hody Jones (OP05)",
	"RP Belo Betty (OP05)",
	"Y Enel (OP05)",
	"GU Perona (OP06)",
	"RG Smoker (OP06)",
	"UY Vinsmoke Reiju (OP06)",
	"B Gecko Moria (OP06)",
	"P Vinsmoke Judge (OP06)",
	"R Shanks (OP07)",
	"GY Jewelry Bonney (OP07)",
	"U Vegapunk (OP07)",
	"P Foxy (OP07)",
	"BY Marco (OP07)",
	"RU Monkey.D.Luffy (OP08)",
	"G Tony Tony.Chopper (OP08)",
	"PB Pudding (OP08)",
	"Y Kalgara (OP08)",
	"R Monkey.D.Dragon (OP09)",
	"GU Shanks (OP09)",
	"B Buggy (OP09)",
	"PY Charlotte Pudding (OP09)",
	"RP Monkey.D.Luffy (ST01)",
	"GU Trafalgar Law (ST02)",
}

// Suggest returns catalog and user-entered names matching the query
// prefix or substring, accent- and case-insensitive. An empty query
// returns the merged list. Results are capped at limit when limit > 0.
func Suggest(list []tracker.Tournament, query string, limit int) []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := canon.Fold(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}

	// User decks first so their own spelling wins over the catalog.
	for _, t := range list {
		add(t.Deck)
		for _, r := range t.Rounds {
			add(r.OpponentLeader)
		}
	}
	for _, name := range catalog {
		add(name)
	}

	q := canon.Fold(query)
	var out []string
	for _, name := range names {
		folded := canon.Fold(name)
		if q == "" || strings.Contains(folded, q) {
			out = append(out, name)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi := strings.HasPrefix(canon.Fold(out[i]), q)
		pj := strings.HasPrefix(canon.Fold(out[j]), q)
		if pi != pj {
			return pi
		}
		return canon.Fold(out[i]) < canon.Fold(out[j])
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
