package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/sims-api/internal/application/auth"
	"github.com/smartpark/sims-api/internal/application/catalog"
	"github.com/smartpark/sims-api/internal/application/ledger"
	"github.com/smartpark/sims-api/internal/application/report"
	"github.com/smartpark/sims-api/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	SparePartUC *catalog.SparePartUseCase
	StockInUC   *ledger.StockInUseCase
	StockOutUC  *ledger.StockOutUseCase
	ReportUC    *report.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public, except /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Spare parts catalog
	parts := protected.Group("/spare-parts")
	sparePartHandler := NewSparePartHandler(deps.SparePartUC, deps.Log)
	parts.Post("/", sparePartHandler.Create)
	parts.Get("/", sparePartHandler.List)
	parts.Get("/:id", sparePartHandler.GetByID)
	parts.Put("/:id", sparePartHandler.Update)
	parts.Delete("/:id", sparePartHandler.Delete)

	// Stock-in ledger (append-only)
	stockIn := protected.Group("/stock-in")
	stockInHandler := NewStockInHandler(deps.StockInUC, deps.Log)
	stockIn.Post("/", stockInHandler.Create)
	stockIn.Get("/", stockInHandler.List)
	stockIn.Get("/:id", stockInHandler.GetByID)

	// Stock-out ledger
	stockOut := protected.Group("/stock-out")
	stockOutHandler := NewStockOutHandler(deps.StockOutUC, deps.Log)
	stockOut.Post("/", stockOutHandler.Create)
	stockOut.Get("/", stockOutHandler.List)
	stockOut.Get("/date/:date", stockOutHandler.ListByDate)
	stockOut.Get("/:id", stockOutHandler.GetByID)
	stockOut.Put("/:id", stockOutHandler.Update)
	stockOut.Delete("/:id", stockOutHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	reports.Get("/stock-status", reportHandler.StockStatus)
	reports.Get("/daily-stock-out/:date", reportHandler.DailyStockOut)
	reports.Get("/daily-stock-out/:date/pdf", reportHandler.DailyStockOutPDF)
}
