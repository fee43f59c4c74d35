package favorites_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/services"
	"trustmap/internal/upstream"
)

var Module = fx.Provide(provideFavoritesService)

func provideFavoritesService(favoriteClient upstream.FavoriteClient) services.FavoritesServiceInterface {
	return services.NewFavoritesService(favoriteClient)
}
