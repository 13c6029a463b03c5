package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caisse-pos/internal/application/catalog"
	"github.com/tu-usuario/caisse-pos/internal/application/checkout"
	"github.com/tu-usuario/caisse-pos/internal/application/clients"
	"github.com/tu-usuario/caisse-pos/internal/application/reporting"
	"github.com/tu-usuario/caisse-pos/internal/application/settings"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CheckoutUC  *checkout.CheckoutUseCase
	ReportingUC *reporting.ReportingUseCase
	ArticleUC   *catalog.ArticleUseCase
	ClientUC    *clients.ClientUseCase
	SettingsUC  *settings.SettingsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.Find)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Patch("/:id/status", saleHandler.SetStatus)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportingUC)
	reports.Get("/daily", reportHandler.Daily)

	// Catálogo
	articles := api.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Get("/search", articleHandler.Find)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", articleHandler.Update)
	articles.Patch("/:id/stock", articleHandler.AdjustStock)
	articles.Delete("/:id", articleHandler.Delete)

	// Clientes
	clientsGroup := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clientsGroup.Post("/", clientHandler.Create)
	clientsGroup.Get("/", clientHandler.List)
	clientsGroup.Get("/search", clientHandler.Find)
	clientsGroup.Put("/:id", clientHandler.Update)
	clientsGroup.Delete("/:id", clientHandler.Delete)

	// Parámetros
	params := api.Group("/parameters")
	parameterHandler := NewParameterHandler(deps.SettingsUC)
	params.Post("/", parameterHandler.Add)
	params.Get("/:key", parameterHandler.Get)
	params.Put("/:key", parameterHandler.Set)
}
