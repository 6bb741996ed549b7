package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/auth"
)

// SetupFeesRoutes sets up the fees routes. Mutations are admin-only.
func SetupFeesRoutes(app *fiber.App) {
	feesAPI := app.Group("/api/fees")
	feesAPI.Use(auth.AuthMiddleware)

	feesAPI.Get("/", GetFeesAPI)
	feesAPI.Get("/class/:classe", GetFeesForClassAPI)

	admin := auth.RoleMiddleware(models.RoleAdmin)
	feesAPI.Post("/", admin, CreateFeeAPI)
	feesAPI.Put("/:code", admin, UpdateFeeAPI)
	feesAPI.Delete("/:code", admin, DeleteFeeAPI)

	feesAPI.Post("/associations", admin, AssociateFeeToClassAPI)
	feesAPI.Delete("/associations", admin, RemoveClassFeeAssociationAPI)
}
