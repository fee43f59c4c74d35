package controllers_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewMapController,
	controllers.NewBranchesController,
	controllers.NewFavoritesController,
	controllers.NewReviewsController,
)
