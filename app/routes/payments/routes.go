package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/auth"
)

// SetupPaymentsRoutes sets up the payments routes.
func SetupPaymentsRoutes(app *fiber.App) {
	paymentsAPI := app.Group("/api/payments")
	paymentsAPI.Use(auth.AuthMiddleware)

	paymentsAPI.Get("/", GetPaymentsAPI)
	paymentsAPI.Post("/", CreatePaymentAPI)
	paymentsAPI.Get("/balances", GetBalancesAPI)
}
