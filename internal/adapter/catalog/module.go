package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/orderflow/orderflow/internal/config"
)

// Module exposes catalog client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.CatalogURL == "" {
		return Disabled{}, nil
	}
	return NewHTTPClient(p.Config.CatalogURL, p.Logger)
}
