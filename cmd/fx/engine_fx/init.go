package engine_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/services"
)

var Module = fx.Provide(
	provideFilterEngine,
	provideMarkerManager,
)

func provideFilterEngine() services.FilterEngineInterface {
	return services.NewFilterEngine()
}

func provideMarkerManager() services.MarkerLifecycleManagerInterface {
	return services.NewMarkerLifecycleManager()
}
