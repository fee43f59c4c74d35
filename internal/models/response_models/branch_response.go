package response_models

import "trustmap/internal/models/api_models"

type BranchSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Address            string `json:"address"`
	CategoryID         string `json:"categoryId,omitempty"`
	CategoryName       string `json:"categoryName,omitempty"`
	AccessibilityLevel string `json:"accessibilityLevel"`
	FeatureCount       int    `json:"featureCount"`
	HoursError         string `json:"hoursError,omitempty"`
	PhotosError        string `json:"photosError,omitempty"`
	OpenNow            bool   `json:"openNow"`
	Favorited          bool   `json:"favorited"`
}

type BranchList struct {
	Branches []BranchSummary `json:"branches"`
	Total    int             `json:"total"`
}

type LoadResult struct {
	Total       int `json:"total"`
	HoursErrors int `json:"hoursErrors"`
	PhotoErrors int `json:"photoErrors"`
}

type FavoriteToggleResult struct {
	BranchID  string `json:"branchId"`
	Favorited bool   `json:"favorited"`
}

type ReviewList struct {
	Reviews       []api_models.Review `json:"reviews"`
	AverageRating string              `json:"averageRating"`
	StarDisplay   string              `json:"starDisplay"`
}
