package store_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/services"
	"trustmap/internal/upstream"
)

var Module = fx.Provide(provideLocationStore)

func provideLocationStore(branchClient upstream.BranchClient) services.LocationStoreInterface {
	return services.NewLocationStore(branchClient)
}
