package request_models

// FilterState is pure view state. It is never persisted upstream; the visible
// set is recomputed from it on every change.
type FilterState struct {
	SelectedCategoryID  string   `form:"categoryId" json:"categoryId"`
	AccessibilityLevels []string `form:"levels" json:"levels"`
	SearchTerm          string   `form:"q" json:"q"`
	FavoritesOnly       bool     `form:"favoritesOnly" json:"favoritesOnly"`
}
