package request_models

type PlaceSearchRequest struct {
	Query string `json:"query" binding:"required"`
}
