package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/auth"
)

// SetupReportsRoutes sets up the reports routes.
func SetupReportsRoutes(app *fiber.App) {
	reportsAPI := app.Group("/api/reports")
	reportsAPI.Use(auth.AuthMiddleware)

	reportsAPI.Get("/", GetReportAPI)
	reportsAPI.Get("/export/balances", ExportBalancesAPI)
	reportsAPI.Get("/export/payments", ExportPaymentsAPI)
}
