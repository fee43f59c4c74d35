package request_models

type CreateReviewRequest struct {
	BranchID string `json:"branchId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}
