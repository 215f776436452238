package export_fx

import (
	"go.uber.org/fx"

	"tripmap/internal/api/controllers"
	"tripmap/internal/services"
)

var Module = fx.Provide(provideExportService, provideExportController)

func provideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func provideExportController(exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(exportService)
}
