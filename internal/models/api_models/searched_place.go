package api_models

// SearchedPlace is an ephemeral geocoder result. It lives only inside a map
// session, is never written upstream, and accumulates append-only as the user
// searches. The id carries a "searched_" prefix so it can never collide with a
// branch id in the marker registry.
type SearchedPlace struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
	Address     string  `json:"address"`
}

const SearchedPlaceKeyPrefix = "searched_"
