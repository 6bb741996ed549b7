package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/config"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/database"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/services"
)

var validate = validator.New()

// GetStudentsAPI returns all students, optionally filtered by a search query
// matching matricule, name or guardian contact.
func GetStudentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	search := c.Query("q")
	var (
		students []models.Student
		err      error
	)
	if search != "" {
		students, err = database.SearchStudents(db, search)
	} else {
		students, err = database.GetStudents(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// GetStudentAPI returns one student by matricule.
func GetStudentAPI(c *fiber.Ctx) error {
	matricule := c.Params("matricule")

	student, err := database.GetStudentByMatricule(config.GetDB(), matricule)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// GetStudentBalanceAPI returns the computed balance for one student along
// with their payment history, most recent first.
func GetStudentBalanceAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	matricule := c.Params("matricule")

	student, err := database.GetStudentByMatricule(db, matricule)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	fees, err := database.GetFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}
	classFees, err := database.GetClassFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class fees"})
	}
	payments, err := database.GetPayments(db, database.PaymentFilters{Matricule: matricule})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	resolved := services.ResolveFeesForClass(student.Class, fees, classFees)
	balance := services.ComputeStudentBalance(*student, resolved, payments)

	return c.JSON(fiber.Map{
		"success":  true,
		"balance":  balance,
		"fees":     resolved,
		"payments": payments,
	})
}

// GetStudentPaymentsAPI returns one student's payment history.
func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	matricule := c.Params("matricule")

	payments, err := database.GetPayments(config.GetDB(), database.PaymentFilters{Matricule: matricule})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

// CreateStudentAPI registers a student.
func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if student.Status == "" {
		student.Status = models.StudentActive
	}
	if err := validate.Struct(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// UpdateStudentAPI overwrites a student record. Edits are not versioned.
func UpdateStudentAPI(c *fiber.Ctx) error {
	matricule := c.Params("matricule")

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	student.Matricule = matricule
	if err := validate.Struct(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateStudent(config.GetDB(), matricule, &student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// DeleteStudentAPI removes a student. Their payments are kept on record.
func DeleteStudentAPI(c *fiber.Ctx) error {
	matricule := c.Params("matricule")

	if err := database.DeleteStudent(config.GetDB(), matricule); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"success": true})
}
