package controllers

import (
	"github.com/gin-gonic/gin"

	"trustmap/internal/models/response_models"
	"trustmap/internal/services"
	"trustmap/internal/session"
	"trustmap/pkg/middleware"
	"trustmap/pkg/utils"
)

type FavoritesController struct {
	favorites services.FavoritesServiceInterface
	sessions  *session.Registry
}

func NewFavoritesController(
	favorites services.FavoritesServiceInterface,
	sessions *session.Registry) *FavoritesController {

	return &FavoritesController{
		favorites: favorites,
		sessions:  sessions,
	}
}

func (f *FavoritesController) List(c *gin.Context) {
	sess := f.sessions.Acquire(middleware.SessionKey(c))
	ids, err := f.favorites.Load(sess, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, ids, "Favorites fetched")
}

func (f *FavoritesController) Toggle(c *gin.Context) {
	branchID := c.Param("branchId")
	if branchID == "" {
		utils.RespondError(c, 400, "Branch ID is required")
		return
	}

	sess := f.sessions.Acquire(middleware.SessionKey(c))
	favorited, err := f.favorites.Toggle(sess, branchID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.FavoriteToggleResult{
		BranchID:  branchID,
		Favorited: favorited,
	}, "Favorite updated")
}
