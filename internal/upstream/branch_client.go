package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"trustmap/internal/infra"
	"trustmap/internal/models/api_models"
	"trustmap/pkg/utils"
)

// The upstream answers a branch with no hours with this exact 404 body. It is
// a recognized "none defined" case, not a failure.
const noOpeningHoursBody = "No opening hours found for this branch"

type BranchClient interface {
	GetAllBranches(ctx context.Context) ([]api_models.Branch, error)
	GetBranchOpeningHours(ctx context.Context, branchID string) ([]api_models.OpeningHour, error)
	GetBranchPhotos(ctx context.Context, branchID string) ([]api_models.Photo, error)
}

type branchClient struct {
	api *infra.UpstreamClient
}

func NewBranchClient(api *infra.UpstreamClient) BranchClient {
	return &branchClient{api: api}
}

func (c *branchClient) GetAllBranches(ctx context.Context) ([]api_models.Branch, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, "/Branch", nil, &raw); err != nil {
		return nil, err
	}
	branches, err := listOrSingle[api_models.Branch](raw)
	if err != nil {
		return nil, utils.ErrInvalidBranchData
	}
	return branches, nil
}

func (c *branchClient) GetBranchOpeningHours(ctx context.Context, branchID string) ([]api_models.OpeningHour, error) {
	if branchID == "" {
		return nil, utils.ErrInvalidBranchID
	}
	var raw json.RawMessage
	if err := c.api.Get(ctx, "/BranchOpeningHour/by-branch/"+branchID, nil, &raw); err != nil {
		var ue *infra.UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound && ue.Body == noOpeningHoursBody {
			return nil, utils.ErrNoOpeningHours
		}
		return nil, err
	}
	hours, err := listOrSingle[api_models.OpeningHour](raw)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(hours, func(i, j int) bool { return hours[i].DayOfWeek < hours[j].DayOfWeek })
	return hours, nil
}

func (c *branchClient) GetBranchPhotos(ctx context.Context, branchID string) ([]api_models.Photo, error) {
	if branchID == "" {
		return nil, utils.ErrInvalidBranchID
	}
	var raw json.RawMessage
	if err := c.api.Get(ctx, "/BranchPhotos/branch/"+branchID, nil, &raw); err != nil {
		return nil, err
	}
	return listOrSingle[api_models.Photo](raw)
}

// listOrSingle absorbs the upstream's habit of answering a single object where
// a list is expected.
func listOrSingle[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}
