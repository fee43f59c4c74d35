package selection_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/services"
	"trustmap/internal/upstream"
)

var Module = fx.Provide(provideSelectionService)

func provideSelectionService(branchClient upstream.BranchClient, reviewClient upstream.ReviewClient) services.SelectionServiceInterface {
	return services.NewSelectionService(branchClient, reviewClient)
}
