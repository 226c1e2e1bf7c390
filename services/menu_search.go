// services/menu_search.go
package services

import (
	"sort"
	"strings"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
)

// MatchType records which field a search hit came from.
type MatchType string

const (
	MatchName        MatchType = "name"
	MatchDescription MatchType = "description"
	MatchTag         MatchType = "tag"
	MatchAllergen    MatchType = "allergen"
)

// Lower rank sorts first.
var matchRank = map[MatchType]int{
	MatchName:        1,
	MatchDescription: 2,
	MatchTag:         3,
	MatchAllergen:    4,
}

// SearchCandidate pairs an item with the category it belongs to.
type SearchCandidate struct {
	Item     entity.MenuItem
	Category entity.MenuCategory
}

// SearchResult is derived per query and never persisted.
type SearchResult struct {
	Item      entity.MenuItem     `json:"item"`
	Category  entity.MenuCategory `json:"category"`
	MatchType MatchType           `json:"matchType"`
}

// FlattenCandidates builds the search scan order: category display order,
// then item display order within each category. Callers pass categories
// already sorted that way by the repository.
func FlattenCandidates(categories []entity.MenuCategory) []SearchCandidate {
	var out []SearchCandidate
	for _, cat := range categories {
		shallow := cat
		shallow.Items = nil
		for _, item := range cat.Items {
			out = append(out, SearchCandidate{Item: item, Category: shallow})
		}
	}
	return out
}

// SearchMenu matches the query against each candidate and returns hits
// ordered by match-field priority: name before description before tag before
// allergen. Each item appears at most once, attributed to the highest-priority
// field it matched; ties keep the candidates' scan order. A blank query is a
// no-op and returns nil, which callers distinguish from "no matches" by
// checking the query themselves.
func SearchMenu(query string, candidates []SearchCandidate) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []SearchResult
	for _, cand := range candidates {
		if mt, ok := classifyMatch(&cand.Item, q); ok {
			results = append(results, SearchResult{
				Item:      cand.Item,
				Category:  cand.Category,
				MatchType: mt,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return matchRank[results[i].MatchType] < matchRank[results[j].MatchType]
	})
	return results
}

// classifyMatch reports the highest-priority field of item containing q.
// q must already be lowercased and trimmed.
func classifyMatch(item *entity.MenuItem, q string) (MatchType, bool) {
	if strings.Contains(strings.ToLower(item.Name), q) {
		return MatchName, true
	}
	if strings.Contains(strings.ToLower(item.Description), q) {
		return MatchDescription, true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return MatchTag, true
		}
	}
	for _, id := range item.Allergens {
		// Match either the resolved allergen name or the raw id itself,
		// so "fish" and "3" both find the same dish.
		if strings.Contains(strings.ToLower(entity.AllergenName(id)), q) {
			return MatchAllergen, true
		}
		if strings.Contains(strings.ToLower(id), q) {
			return MatchAllergen, true
		}
	}
	return "", false
}
