package di

import (
	"go.uber.org/fx"

	"github.com/orderflow/orderflow/internal/adapter/catalog"
	"github.com/orderflow/orderflow/internal/adapter/maildraft"
	"github.com/orderflow/orderflow/internal/adapter/sheets"
	"github.com/orderflow/orderflow/internal/app"
	"github.com/orderflow/orderflow/internal/config"
	"github.com/orderflow/orderflow/internal/logger"
	"github.com/orderflow/orderflow/internal/server/http/handlers"
	"github.com/orderflow/orderflow/internal/server/http/router"
	"github.com/orderflow/orderflow/internal/storage/postgres"
	"github.com/orderflow/orderflow/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		catalog.Module,
		sheets.Module,
		maildraft.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.OrderFlowFacade) handlers.OrderFlowFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
