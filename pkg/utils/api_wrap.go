package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBranchNotFound), errors.Is(err, ErrLocationNotFound):
		RespondError(c, http.StatusNotFound, "Location not found")
	case errors.Is(err, ErrNoBranches):
		RespondError(c, http.StatusNotFound, "No branches found")
	case errors.Is(err, ErrReviewNotFound):
		RespondError(c, http.StatusNotFound, "Review not found")
	case errors.Is(err, ErrNoGeocodeResults):
		RespondError(c, http.StatusNotFound, "No results found for this search")
	case errors.Is(err, ErrEmptySearchTerm):
		RespondError(c, http.StatusBadRequest, "Please enter a place to search")
	case errors.Is(err, ErrInvalidBranchID):
		RespondError(c, http.StatusBadRequest, "Invalid branch ID provided")
	case errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrNoSelection):
		RespondError(c, http.StatusBadRequest, "No location selected")
	case errors.Is(err, ErrSelectionSuperseded):
		RespondError(c, http.StatusConflict, "Selection superseded by a newer one")
	case errors.Is(err, ErrNotLoggedIn):
		RespondError(c, http.StatusUnauthorized, "Please log in first")
	case errors.Is(err, ErrInvalidBranchData), errors.Is(err, ErrUpstream):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Upstream service unavailable")
	case errors.Is(err, ErrGeocoderFailure):
		log.Printf("Geocoder error: %v", err)
		RespondError(c, http.StatusBadGateway, "An error occurred while searching. Please try again.")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
