package upstream

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"trustmap/internal/infra"
	"trustmap/internal/models/api_models"
	"trustmap/internal/models/request_models"
	"trustmap/pkg/utils"
)

type ReviewClient interface {
	GetBranchReviews(ctx context.Context, branchID string, page, pageSize int) ([]api_models.Review, error)
	GetUserReviews(ctx context.Context) ([]api_models.Review, error)
	CreateReview(ctx context.Context, review request_models.CreateReviewRequest) error
	DeleteReview(ctx context.Context, reviewID string) error
}

type reviewClient struct {
	api *infra.UpstreamClient
}

func NewReviewClient(api *infra.UpstreamClient) ReviewClient {
	return &reviewClient{api: api}
}

func (c *reviewClient) GetBranchReviews(ctx context.Context, branchID string, page, pageSize int) ([]api_models.Review, error) {
	if branchID == "" {
		return nil, utils.ErrInvalidBranchID
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var raw json.RawMessage
	if err := c.api.Get(ctx, "/Reviews/branch/"+branchID, query, &raw); err != nil {
		return nil, err
	}
	return listOrSingle[api_models.Review](raw)
}

func (c *reviewClient) GetUserReviews(ctx context.Context) ([]api_models.Review, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, "/Reviews/user-reviews", nil, &raw); err != nil {
		return nil, err
	}
	return listOrSingle[api_models.Review](raw)
}

func (c *reviewClient) CreateReview(ctx context.Context, review request_models.CreateReviewRequest) error {
	return c.api.Post(ctx, "/Reviews/create", review, nil)
}

func (c *reviewClient) DeleteReview(ctx context.Context, reviewID string) error {
	if reviewID == "" {
		return utils.ErrReviewNotFound
	}
	return c.api.Delete(ctx, "/Reviews/"+reviewID)
}
