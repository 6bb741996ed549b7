package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/routes/auth"
)

// SetupStudentsRoutes sets up the students routes.
func SetupStudentsRoutes(app *fiber.App) {
	studentsAPI := app.Group("/api/students")
	studentsAPI.Use(auth.AuthMiddleware)

	studentsAPI.Get("/", GetStudentsAPI)
	studentsAPI.Get("/:matricule", GetStudentAPI)
	studentsAPI.Get("/:matricule/balance", GetStudentBalanceAPI)
	studentsAPI.Get("/:matricule/payments", GetStudentPaymentsAPI)

	studentsAPI.Post("/", CreateStudentAPI)
	studentsAPI.Put("/:matricule", UpdateStudentAPI)
	studentsAPI.Delete("/:matricule", auth.RoleMiddleware(models.RoleAdmin), DeleteStudentAPI)
}
