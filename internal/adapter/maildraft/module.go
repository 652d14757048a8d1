package maildraft

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/orderflow/orderflow/internal/config"
)

// Module exposes email draft client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.DraftServiceURL == "" {
		return Disabled{}, nil
	}
	return NewHTTPClient(p.Config.DraftServiceURL, p.Logger)
}
