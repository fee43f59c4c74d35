package controllers

import (
	"github.com/gin-gonic/gin"

	"trustmap/internal/models/request_models"
	"trustmap/internal/services"
	"trustmap/pkg/utils"
)

type ReviewsController struct {
	reviews services.ReviewServiceInterface
}

func NewReviewsController(reviews services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{reviews: reviews}
}

func (r *ReviewsController) ByBranch(c *gin.Context) {
	branchID := c.Param("branchId")
	if branchID == "" {
		utils.RespondError(c, 400, "Branch ID is required")
		return
	}

	list, err := r.reviews.BranchReviews(branchID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, list, "Reviews fetched")
}

func (r *ReviewsController) Mine(c *gin.Context) {
	reviews, err := r.reviews.UserReviews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "Your reviews fetched")
}

func (r *ReviewsController) Create(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Branch ID and rating are required")
		return
	}

	if err := r.reviews.Submit(req, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review submitted successfully")
}

func (r *ReviewsController) Update(c *gin.Context) {
	reviewID := c.Param("id")
	if reviewID == "" {
		utils.RespondError(c, 400, "Review ID is required")
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Branch ID and rating are required")
		return
	}

	if err := r.reviews.Update(reviewID, req, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review updated successfully")
}

func (r *ReviewsController) Delete(c *gin.Context) {
	reviewID := c.Param("id")
	if reviewID == "" {
		utils.RespondError(c, 400, "Review ID is required")
		return
	}

	if err := r.reviews.Delete(reviewID, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review deleted successfully")
}
