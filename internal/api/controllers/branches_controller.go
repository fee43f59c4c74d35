package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"trustmap/internal/models/api_models"
	"trustmap/internal/models/request_models"
	"trustmap/internal/models/response_models"
	"trustmap/internal/services"
	"trustmap/internal/session"
	"trustmap/pkg/middleware"
	"trustmap/pkg/utils"
)

type BranchesController struct {
	store    services.LocationStoreInterface
	engine   services.FilterEngineInterface
	sessions *session.Registry
}

func NewBranchesController(
	store services.LocationStoreInterface,
	engine services.FilterEngineInterface,
	sessions *session.Registry) *BranchesController {

	return &BranchesController{
		store:    store,
		engine:   engine,
		sessions: sessions,
	}
}

// List is the category-listing view: the structural filters plus the free
// text filter, over the enriched store contents.
func (b *BranchesController) List(c *gin.Context) {
	var filters request_models.FilterState
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondError(c, 400, "Invalid filter parameters")
		return
	}

	sess := b.sessions.Acquire(middleware.SessionKey(c))

	branches := b.store.Branches()
	if len(branches) == 0 {
		utils.HandleServiceError(c, utils.ErrNoBranches)
		return
	}

	if filters.FavoritesOnly {
		branches = b.engine.FilterByFavorites(branches, sess.FavoriteIDs())
	}
	branches = b.engine.FilterByText(branches, filters.SearchTerm)

	visible := b.engine.ComputeVisibleSet(branches, nil, filters)

	now := time.Now()
	summaries := make([]response_models.BranchSummary, 0, len(visible))
	for _, item := range visible {
		if item.Branch == nil {
			continue
		}
		summaries = append(summaries, summarize(item.Branch, sess, now))
	}

	utils.RespondSuccess(c, response_models.BranchList{
		Branches: summaries,
		Total:    len(summaries),
	}, "Branches fetched")
}

func (b *BranchesController) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, 400, "Branch ID is required")
		return
	}

	branch, ok := b.store.GetBranch(id)
	if !ok {
		utils.HandleServiceError(c, utils.ErrBranchNotFound)
		return
	}
	utils.RespondSuccess(c, branch, "Branch fetched")
}

func (b *BranchesController) Categories(c *gin.Context) {
	utils.RespondSuccess(c, api_models.Categories, "Categories fetched")
}

func summarize(branch *api_models.Branch, sess *session.Session, now time.Time) response_models.BranchSummary {
	summary := response_models.BranchSummary{
		ID:                 branch.ID.String(),
		Name:               branch.Name(),
		Address:            branch.Address,
		AccessibilityLevel: branch.AccessibilityLevel,
		FeatureCount:       branch.FeatureCount(),
		HoursError:         branch.HoursError,
		PhotosError:        branch.PhotosError,
		Favorited:          sess.HasFavorite(branch.ID.String()),
	}
	if branch.Place != nil && branch.Place.CategoryID != "" {
		summary.CategoryID = branch.Place.CategoryID.String()
		summary.CategoryName = api_models.CategoryName(summary.CategoryID)
	}
	for _, h := range branch.OpeningHours {
		if h.OpenAt(now) {
			summary.OpenNow = true
			break
		}
	}
	return summary
}
