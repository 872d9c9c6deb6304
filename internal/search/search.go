// Package search ranks catalog foods against a free-text query. The scoring
// is intentionally simple and recomputable per keystroke at catalog sizes of
// a few thousand rows; no index is kept.
package search

import (
	"sort"
	"strings"

	"github.com/kalorieapp/kalorie-cli/internal/model"
)

const (
	maxResults    = 30
	browseResults = 10

	exactTokenScore  = 10
	prefixTokenScore = 5
	firstTokenBonus  = 3
)

// Rank orders foods by relevance to query, capped at 30 results. A blank
// query returns the first 10 catalog entries unranked as a browse view.
//
// Every whitespace-separated query word must prefix-match some name token
// (AND semantics); a food missing any word is excluded. Ties keep catalog
// order.
func Rank(query string, foods []model.Food) []model.Food {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		if len(foods) > browseResults {
			foods = foods[:browseResults]
		}
		out := make([]model.Food, len(foods))
		copy(out, foods)
		return out
	}

	type scored struct {
		food  model.Food
		score int
	}
	results := make([]scored, 0, maxResults)
	for _, food := range foods {
		if s := score(food, words); s > 0 {
			results = append(results, scored{food: food, score: s})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	out := make([]model.Food, 0, len(results))
	for _, r := range results {
		out = append(out, r.food)
	}
	return out
}

// score returns <= 0 when any query word fails to match.
func score(food model.Food, words []string) int {
	tokens := Tokenize(food.Name)
	if len(tokens) == 0 {
		return -1
	}
	s := 0
	for _, w := range words {
		exact := false
		prefix := false
		for _, t := range tokens {
			if t == w {
				exact = true
				prefix = true
				break
			}
			if strings.HasPrefix(t, w) {
				prefix = true
			}
		}
		switch {
		case exact:
			s += exactTokenScore
		case prefix:
			s += prefixTokenScore
		default:
			return -1
		}
		if strings.HasPrefix(tokens[0], w) {
			s += firstTokenBonus
		}
	}
	// Shorter names rank higher: they are the more specific match.
	if bonus := 5 - len(food.Name)/15; bonus > 0 {
		s += bonus
	}
	return s
}

// Tokenize splits a food name into lowercase tokens on whitespace, commas,
// parentheses, hyphens, and slashes.
func Tokenize(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		switch r {
		case ' ', '\t', ',', '(', ')', '-', '/':
			return true
		}
		return false
	})
}
