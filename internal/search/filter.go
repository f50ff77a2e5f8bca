// Package search narrows the station catalog by substring.
package search

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/mobil-koeln/fahrinfo/internal/models"
)

// Matcher tests station names against a query with fzf's exact matcher.
// Matching ignores case, and diacritics in names are folded for plain
// queries ("MUN" finds "München"). There is no ranking: a name either
// contains the query or it does not.
//
// A Matcher reuses its scratch slab and is not safe for concurrent use.
type Matcher struct {
	slab *util.Slab
}

// NewMatcher allocates a Matcher
func NewMatcher() *Matcher {
	return &Matcher{slab: util.MakeSlab(16*1024, 2048)}
}

// Filter returns every station whose name contains query, in catalog order.
// The empty query matches all stations. The result never aliases stations.
func (m *Matcher) Filter(stations []models.Station, query string) []models.Station {
	out := make([]models.Station, 0, len(stations))
	if query == "" {
		for _, st := range stations {
			out = append(out, st.Clone())
		}
		return out
	}

	lower := strings.ToLower(query)
	pattern := algo.NormalizeRunes([]rune(lower))
	fold := string(pattern) == lower
	for _, st := range stations {
		if m.contains(st.Name, lower, pattern, fold) {
			out = append(out, st.Clone())
		}
	}
	return out
}

// contains folds diacritics in the name only when the query has none of its
// own, so "MUN" finds "München" but "ß" never matches a plain "s".
func (m *Matcher) contains(name, lower string, pattern []rune, fold bool) bool {
	if strings.Contains(strings.ToLower(name), lower) {
		return true
	}
	if !fold {
		return false
	}
	chars := util.ToChars([]byte(name))
	res, _ := algo.ExactMatchNaive(false, true, true, &chars, pattern, false, m.slab)
	return res.Start >= 0
}

// Filter is a one-shot helper around Matcher.Filter
func Filter(stations []models.Station, query string) []models.Station {
	return NewMatcher().Filter(stations, query)
}
