package reviews_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/services"
	"trustmap/internal/upstream"
)

var Module = fx.Provide(provideReviewService)

func provideReviewService(reviewClient upstream.ReviewClient) services.ReviewServiceInterface {
	return services.NewReviewService(reviewClient)
}
