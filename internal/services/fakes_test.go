package services

import (
	"context"

	"trustmap/internal/models/api_models"
	"trustmap/internal/models/request_models"
)

func ff(v float64) *api_models.FlexFloat {
	f := api_models.FlexFloat(v)
	return &f
}

type fakeBranchClient struct {
	branches func(ctx context.Context) ([]api_models.Branch, error)
	hours    func(ctx context.Context, branchID string) ([]api_models.OpeningHour, error)
	photos   func(ctx context.Context, branchID string) ([]api_models.Photo, error)
}

func (f *fakeBranchClient) GetAllBranches(ctx context.Context) ([]api_models.Branch, error) {
	if f.branches == nil {
		return []api_models.Branch{}, nil
	}
	return f.branches(ctx)
}

func (f *fakeBranchClient) GetBranchOpeningHours(ctx context.Context, branchID string) ([]api_models.OpeningHour, error) {
	if f.hours == nil {
		return []api_models.OpeningHour{}, nil
	}
	return f.hours(ctx, branchID)
}

func (f *fakeBranchClient) GetBranchPhotos(ctx context.Context, branchID string) ([]api_models.Photo, error) {
	if f.photos == nil {
		return []api_models.Photo{}, nil
	}
	return f.photos(ctx, branchID)
}

type fakeReviewClient struct {
	branchReviews func(ctx context.Context, branchID string, page, pageSize int) ([]api_models.Review, error)
	userReviews   func(ctx context.Context) ([]api_models.Review, error)
	create        func(ctx context.Context, review request_models.CreateReviewRequest) error
	remove        func(ctx context.Context, reviewID string) error
}

func (f *fakeReviewClient) GetBranchReviews(ctx context.Context, branchID string, page, pageSize int) ([]api_models.Review, error) {
	if f.branchReviews == nil {
		return []api_models.Review{}, nil
	}
	return f.branchReviews(ctx, branchID, page, pageSize)
}

func (f *fakeReviewClient) GetUserReviews(ctx context.Context) ([]api_models.Review, error) {
	if f.userReviews == nil {
		return []api_models.Review{}, nil
	}
	return f.userReviews(ctx)
}

func (f *fakeReviewClient) CreateReview(ctx context.Context, review request_models.CreateReviewRequest) error {
	if f.create == nil {
		return nil
	}
	return f.create(ctx, review)
}

func (f *fakeReviewClient) DeleteReview(ctx context.Context, reviewID string) error {
	if f.remove == nil {
		return nil
	}
	return f.remove(ctx, reviewID)
}

type fakeFavoriteClient struct {
	fetch func(ctx context.Context) ([]string, error)
	add   func(ctx context.Context, branchID string) error
	drop  func(ctx context.Context, branchID string) error
}

func (f *fakeFavoriteClient) FetchFavoriteBranchIDs(ctx context.Context) ([]string, error) {
	if f.fetch == nil {
		return []string{}, nil
	}
	return f.fetch(ctx)
}

func (f *fakeFavoriteClient) AddFavorite(ctx context.Context, branchID string) error {
	if f.add == nil {
		return nil
	}
	return f.add(ctx, branchID)
}

func (f *fakeFavoriteClient) RemoveFavorite(ctx context.Context, branchID string) error {
	if f.drop == nil {
		return nil
	}
	return f.drop(ctx, branchID)
}
