package sheets

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/orderflow/orderflow/internal/config"
)

// Module exposes sheet sync client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.SheetWebhookURL == "" {
		return Disabled{}, nil
	}
	return NewHTTPClient(p.Config.SheetWebhookURL, p.Logger)
}
