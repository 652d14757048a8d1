package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/orderflow/orderflow/internal/server/http/handlers"
	"github.com/orderflow/orderflow/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OrderFlowFacade, health handlers.HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	invoiceHandler := handlers.NewInvoiceHandler(facade)
	draftHandler := handlers.NewDraftHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.GET("/catalog", catalogHandler.List)
	api.POST("/items/autofill", catalogHandler.Autofill)

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Submit)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/invoice", invoiceHandler.Documents)
	orders.GET("/:id/draft", draftHandler.Draft)

	return engine
}
