package fees

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

// GetFeesAPI returns all fee definitions and the class association rows.
func GetFeesAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	fees, err := database.GetFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}
	classFees, err := database.GetClassFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class fees"})
	}

	return c.JSON(fiber.Map{
		"fees":       fees,
		"class_fees": classFees,
	})
}

// GetFeesForClassAPI returns the resolved fee set applicable to a class:
// every mandatory fee plus the fees linked to the class.
func GetFeesForClassAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	class := c.Params("classe")

	fees, err := database.GetFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}
	classFees, err := database.GetClassFees(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class fees"})
	}

	resolved := services.ResolveFeesForClass(class, fees, classFees)

	var totalDue int64
	for _, fee := range resolved {
		totalDue += fee.Amount
	}

	return c.JSON(fiber.Map{
		"classe":   class,
		"fees":     resolved,
		"total_du": totalDue,
	})
}

// CreateFeeAPI creates a fee definition. The amount must be positive; the
// engine itself never re-checks this.
func CreateFeeAPI(c *fiber.Ctx) error {
	var fee models.Fee
	if err := c.BodyParser(&fee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&fee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateFee(config.GetDB(), &fee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    fee,
	})
}

// UpdateFeeAPI overwrites a fee definition identified by code.
func UpdateFeeAPI(c *fiber.Ctx) error {
	code := c.Params("code")

	var fee models.Fee
	if err := c.BodyParser(&fee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	fee.Code = code
	if err := validate.Struct(&fee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateFee(config.GetDB(), code, &fee); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fee,
	})
}

// DeleteFeeAPI removes a fee definition and its class associations.
func DeleteFeeAPI(c *fiber.Ctx) error {
	code := c.Params("code")

	if err := database.DeleteFee(config.GetDB(), code); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// AssociateFeeToClassAPI links an optional fee to a class.
func AssociateFeeToClassAPI(c *fiber.Ctx) error {
	var assoc models.ClassFee
	if err := c.BodyParser(&assoc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&assoc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.AssociateFeeToClass(config.GetDB(), assoc.Class, assoc.FeeCode); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to associate fee to class"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    assoc,
	})
}

// RemoveClassFeeAssociationAPI unlinks a fee from a class.
func RemoveClassFeeAssociationAPI(c *fiber.Ctx) error {
	var assoc models.ClassFee
	if err := c.BodyParser(&assoc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.RemoveClassFeeAssociation(config.GetDB(), assoc.Class, assoc.FeeCode); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Association not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove association"})
	}

	return c.JSON(fiber.Map{"success": true})
}
