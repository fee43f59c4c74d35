package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"trustmap/cmd/fx/controllers_fx"
	"trustmap/cmd/fx/engine_fx"
	"trustmap/cmd/fx/favorites_fx"
	"trustmap/cmd/fx/geocoder_fx"
	"trustmap/cmd/fx/reviews_fx"
	"trustmap/cmd/fx/selection_fx"
	"trustmap/cmd/fx/session_fx"
	"trustmap/cmd/fx/store_fx"
	"trustmap/cmd/fx/upstream_fx"
	"trustmap/internal/api/controllers"
	"trustmap/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		upstream_fx.Module,
		geocoder_fx.Module,
		store_fx.Module,
		engine_fx.Module,
		session_fx.Module,
		favorites_fx.Module,
		reviews_fx.Module,
		selection_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	mapController *controllers.MapController,
	branchesController *controllers.BranchesController,
	favoritesController *controllers.FavoritesController,
	reviewsController *controllers.ReviewsController) *gin.Engine {

	middleware.InitPrometheus()

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AuthTokenMiddleware())
	r.Use(middleware.MonitoringMiddleware())

	RegisterRoutes(r, mapController, branchesController, favoritesController, reviewsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	mapController *controllers.MapController,
	branchesController *controllers.BranchesController,
	favoritesController *controllers.FavoritesController,
	reviewsController *controllers.ReviewsController) {

	mapGroup := r.Group("/map")
	mapGroup.POST("/load", mapController.Load)
	mapGroup.GET("/markers", mapController.Markers)
	mapGroup.POST("/search", mapController.Search)
	mapGroup.POST("/select/:id", mapController.Select)
	mapGroup.POST("/deselect", mapController.Deselect)
	mapGroup.GET("/selection", mapController.CurrentSelection)

	branchesGroup := r.Group("/branches")
	branchesGroup.GET("", branchesController.List)
	branchesGroup.GET("/:id", branchesController.GetByID)

	r.GET("/categories", branchesController.Categories)

	favoritesGroup := r.Group("/favorites")
	favoritesGroup.Use(middleware.RequireToken())
	favoritesGroup.GET("", favoritesController.List)
	favoritesGroup.POST("/:branchId/toggle", favoritesController.Toggle)

	reviewsGroup := r.Group("/reviews")
	reviewsGroup.GET("/branch/:branchId", reviewsController.ByBranch)
	reviewsGroup.GET("/mine", middleware.RequireToken(), reviewsController.Mine)
	reviewsGroup.POST("", middleware.RequireToken(), reviewsController.Create)
	reviewsGroup.PUT("/:id", middleware.RequireToken(), reviewsController.Update)
	reviewsGroup.DELETE("/:id", middleware.RequireToken(), reviewsController.Delete)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
