package api_models

// CombinedItem is one entry of the visible set: either a branch or a searched
// place, never both.
type CombinedItem struct {
	Branch        *Branch        `json:"branch,omitempty"`
	SearchedPlace *SearchedPlace `json:"searchedPlace,omitempty"`
}

func BranchItem(b *Branch) CombinedItem       { return CombinedItem{Branch: b} }
func PlaceItem(p *SearchedPlace) CombinedItem { return CombinedItem{SearchedPlace: p} }

func (it CombinedItem) IsBranch() bool { return it.Branch != nil }

// Key is the stable marker-registry identity: the branch id for branches, the
// prefixed geocoder id for searched places.
func (it CombinedItem) Key() string {
	if it.Branch != nil {
		return it.Branch.ID.String()
	}
	if it.SearchedPlace != nil {
		return it.SearchedPlace.ID
	}
	return ""
}

func (it CombinedItem) DisplayName() string {
	if it.Branch != nil {
		return it.Branch.Name()
	}
	if it.SearchedPlace != nil {
		return it.SearchedPlace.DisplayName
	}
	return "Unknown location"
}
