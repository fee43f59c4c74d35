package services

import (
	"strings"

	"trustmap/internal/models/api_models"
	"trustmap/internal/models/request_models"
)

// FilterEngineInterface is the visible-set projection. Every method is a pure
// function over its inputs; the engine holds no state and is re-invoked in
// full whenever any filter input changes.
type FilterEngineInterface interface {
	ComputeVisibleSet(branches []api_models.Branch, searched []api_models.SearchedPlace, filters request_models.FilterState) []api_models.CombinedItem
	FilterByText(branches []api_models.Branch, term string) []api_models.Branch
	FilterByFavorites(branches []api_models.Branch, favoriteIDs map[string]struct{}) []api_models.Branch
}

type filterEngine struct{}

func NewFilterEngine() FilterEngineInterface {
	return filterEngine{}
}

// ComputeVisibleSet applies the category filter, then the accessibility
// filter, then concatenates every searched place. Searched places are never
// filtered; once added they always render.
func (filterEngine) ComputeVisibleSet(branches []api_models.Branch, searched []api_models.SearchedPlace, filters request_models.FilterState) []api_models.CombinedItem {
	out := make([]api_models.CombinedItem, 0, len(branches)+len(searched))

	for i := range branches {
		b := &branches[i]
		if !categoryMatch(b, filters.SelectedCategoryID) {
			continue
		}
		if !accessibilityMatch(b, filters.AccessibilityLevels) {
			continue
		}
		out = append(out, api_models.BranchItem(b))
	}

	for i := range searched {
		out = append(out, api_models.PlaceItem(&searched[i]))
	}
	return out
}

// categoryMatch compares ids as strings to tolerate the upstream's mixed
// numeric and string encodings. The "-1" category additionally matches
// branches carrying no category at all.
func categoryMatch(b *api_models.Branch, selectedCategoryID string) bool {
	if selectedCategoryID == "" {
		return true
	}
	var categoryID string
	if b.Place != nil {
		categoryID = b.Place.CategoryID.String()
	}
	if categoryID == selectedCategoryID {
		return true
	}
	return selectedCategoryID == api_models.UnknownCategoryID && categoryID == ""
}

func accessibilityMatch(b *api_models.Branch, levels []string) bool {
	if len(levels) == 0 {
		return true
	}
	level := strings.ToLower(b.AccessibilityLevel)
	if level == "" {
		level = api_models.LevelNotAccessible
	}
	for _, want := range levels {
		if strings.ToLower(want) == level {
			return true
		}
	}
	return false
}

// FilterByText is the category-listing variant: a case-insensitive substring
// match OR'd across name, address, details and feature names.
func (filterEngine) FilterByText(branches []api_models.Branch, term string) []api_models.Branch {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return branches
	}

	out := make([]api_models.Branch, 0, len(branches))
	for _, b := range branches {
		if textMatch(&b, term) {
			out = append(out, b)
		}
	}
	return out
}

func textMatch(b *api_models.Branch, term string) bool {
	if strings.Contains(strings.ToLower(b.Address), term) {
		return true
	}
	if b.Place == nil {
		return false
	}
	if strings.Contains(strings.ToLower(b.Place.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Place.Details), term) {
		return true
	}
	for _, f := range b.Place.Features {
		if strings.Contains(strings.ToLower(f.FeatureName), term) {
			return true
		}
	}
	return false
}

// FilterByFavorites projects branches down to the favorite set. Favorited ids
// with no matching branch are silently dropped.
func (filterEngine) FilterByFavorites(branches []api_models.Branch, favoriteIDs map[string]struct{}) []api_models.Branch {
	out := make([]api_models.Branch, 0, len(favoriteIDs))
	for _, b := range branches {
		if _, ok := favoriteIDs[b.ID.String()]; ok {
			out = append(out, b)
		}
	}
	return out
}
