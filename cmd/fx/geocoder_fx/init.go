package geocoder_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/geocoder"
)

var Module = fx.Provide(provideGeocoder)

func provideGeocoder() geocoder.Client {
	return geocoder.InitClient()
}
