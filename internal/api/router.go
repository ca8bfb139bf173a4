package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/orderboard/orderboard/internal/api/handler"
	"github.com/orderboard/orderboard/internal/api/web"
	"github.com/orderboard/orderboard/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(clients ports.ClientService, reports ports.ReportService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Handlers ---
	clientHandler := handler.NewClientHandler(clients)
	reportHandler := handler.NewReportHandler(reports)
	healthHandler := handler.NewHealthHandler()

	// --- UI + operational surface ---
	e.FileFS("/", "index.html", web.FS)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- API routes ---
	v1 := e.Group("/v1")
	v1.GET("/catalog", clientHandler.Catalog)
	v1.GET("/board", clientHandler.Board)
	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.PATCH("/clients/:id", clientHandler.Rename)
	v1.POST("/clients/:id/order", clientHandler.AdjustQuantity)
	v1.DELETE("/clients/:id", clientHandler.Delete)
	v1.GET("/report", reportHandler.Download)

	return e
}
