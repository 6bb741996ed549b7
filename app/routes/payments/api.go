package payments

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/config"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/database"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/services"
)

var validate = validator.New()

// GetPaymentsAPI returns payments, most recent first, optionally filtered by
// matricule, mode and date range.
func GetPaymentsAPI(c *fiber.Ctx) error {
	filters := database.PaymentFilters{
		Matricule: c.Query("matricule"),
		Mode:      c.Query("mode"),
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
	}

	payments, err := database.GetPayments(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

// CreatePaymentAPI records a payment. The amount must be positive and the
// mode one of the accepted set; the cashier defaults to the authenticated
// user and the date to today.
func CreatePaymentAPI(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if payment.Date == "" {
		payment.Date = services.DateOf(time.Now())
	}
	if payment.Cashier == "" {
		if username, ok := c.Locals("username").(string); ok {
			payment.Cashier = username
		}
	}
	payment.ID = uuid.New().String()

	if err := validate.Struct(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if _, err := time.Parse(services.DateLayout, payment.Date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment date, expected YYYY-MM-DD"})
	}

	if err := database.CreatePayment(config.GetDB(), &payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// GetBalancesAPI returns the computed balance list for every student.
func GetBalancesAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	students, err := database.GetStudents(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	fees, err := database.GetFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}
	classFees, err := database.GetClassFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class fees"})
	}
	payments, err := database.GetPayments(db, database.PaymentFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	balances := services.ComputeAllBalances(students, fees, classFees, payments)

	return c.JSON(fiber.Map{
		"balances": balances,
		"count":    len(balances),
	})
}
