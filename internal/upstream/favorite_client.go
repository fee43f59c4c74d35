package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"trustmap/internal/infra"
	"trustmap/pkg/utils"
)

// The upstream rejects a duplicate favorite with this 400 body. The add is
// idempotent, so that answer counts as success.
const alreadyFavoritedBody = "Branch already favorited by user"

type FavoriteClient interface {
	FetchFavoriteBranchIDs(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, branchID string) error
	RemoveFavorite(ctx context.Context, branchID string) error
}

type favoriteClient struct {
	api *infra.UpstreamClient
}

func NewFavoriteClient(api *infra.UpstreamClient) FavoriteClient {
	return &favoriteClient{api: api}
}

// FetchFavoriteBranchIDs pulls the favorite rows and reduces them to branch
// id strings. Rows have shipped in two shapes over time: a nested branch
// object and a flat branchId field; NormalizeID handles both.
func (c *favoriteClient) FetchFavoriteBranchIDs(ctx context.Context) ([]string, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, "/FavoritePlace", nil, &raw); err != nil {
		return nil, err
	}
	rows, err := listOrSingle[map[string]interface{}](raw)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		// The row's own id is a favorite id, never a branch id; only the
		// nested branch object or the flat branchId field counts.
		var candidate interface{}
		if nested, ok := row["branch"]; ok {
			candidate = nested
		} else if flat, ok := row["branchId"]; ok {
			candidate = flat
		}
		if id := utils.NormalizeID(candidate); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (c *favoriteClient) AddFavorite(ctx context.Context, branchID string) error {
	if branchID == "" {
		return utils.ErrInvalidBranchID
	}
	err := c.api.Post(ctx, "/FavoritePlace", map[string]string{"branchId": branchID}, nil)
	if err != nil {
		var ue *infra.UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusBadRequest && ue.Body == alreadyFavoritedBody {
			return nil
		}
		return err
	}
	return nil
}

func (c *favoriteClient) RemoveFavorite(ctx context.Context, branchID string) error {
	if branchID == "" {
		return utils.ErrInvalidBranchID
	}
	return c.api.Delete(ctx, "/FavoritePlace/"+branchID)
}
