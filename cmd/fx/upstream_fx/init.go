package upstream_fx

import (
	"go.uber.org/fx"

	"trustmap/internal/infra"
	"trustmap/internal/upstream"
)

var Module = fx.Provide(
	provideTokenProvider,
	provideUpstreamClient,
	provideBranchClient,
	provideReviewClient,
	provideFavoriteClient,
)

func provideTokenProvider() infra.TokenProvider {
	return infra.NewContextTokenProvider()
}

func provideUpstreamClient(tokens infra.TokenProvider) *infra.UpstreamClient {
	return infra.InitUpstreamClient(tokens)
}

func provideBranchClient(api *infra.UpstreamClient) upstream.BranchClient {
	return upstream.NewBranchClient(api)
}

func provideReviewClient(api *infra.UpstreamClient) upstream.ReviewClient {
	return upstream.NewReviewClient(api)
}

func provideFavoriteClient(api *infra.UpstreamClient) upstream.FavoriteClient {
	return upstream.NewFavoriteClient(api)
}
