package response_models

import "trustmap/internal/models/api_models"

// SelectionDetails carries the secondary enrichment for the currently selected
// location. Each part loads and fails independently; an error on one never
// blanks the others.
type SelectionDetails struct {
	Item          api_models.CombinedItem  `json:"item"`
	OpeningHours  []api_models.OpeningHour `json:"openingHours"`
	HoursError    string                   `json:"hoursError,omitempty"`
	Photos        []api_models.Photo       `json:"photos"`
	PhotosError   string                   `json:"photosError,omitempty"`
	Reviews       []api_models.Review      `json:"reviews"`
	ReviewsError  string                   `json:"reviewsError,omitempty"`
	AverageRating string                   `json:"averageRating"`
	StarDisplay   string                   `json:"starDisplay"`
	Generation    uint64                   `json:"-"`
}
