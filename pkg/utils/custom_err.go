package utils

import "errors"

var (
	ErrBranchNotFound    = errors.New("branch not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrNoBranches        = errors.New("no branches found")
	ErrInvalidBranchData = errors.New("invalid branches data received from upstream")
	ErrNoOpeningHours    = errors.New("no opening hours found for this branch")
	ErrInvalidBranchID   = errors.New("invalid branch id provided")

	ErrEmptySearchTerm  = errors.New("empty search term")
	ErrNoGeocodeResults = errors.New("no geocode results")
	ErrGeocoderFailure  = errors.New("geocoder request failed")

	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound      = errors.New("review not found")
	ErrNoSelection         = errors.New("no location selected")
	ErrSelectionSuperseded = errors.New("selection superseded by a newer one")

	ErrNotLoggedIn = errors.New("authentication token required")
	ErrUpstream    = errors.New("upstream request failed")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
)
