package reports

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/config"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/database"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/services"
)

// reportRange resolves the requested window. Presets (today, week, month)
// derive their start and end dates first and then delegate to the same
// arbitrary-range computation.
func reportRange(c *fiber.Ctx, now time.Time) (string, string, bool) {
	today := services.DateOf(now)

	switch c.Query("period") {
	case "today":
		return today, today, true
	case "week":
		return services.StartOfWeek(now), today, true
	case "month":
		return services.StartOfMonth(now), today, true
	case "":
		start := c.Query("start")
		end := c.Query("end")
		if start == "" || end == "" {
			return "", "", false
		}
		return start, end, true
	}
	return "", "", false
}

func loadCollections(db *sql.DB) ([]models.Payment, []models.StudentBalance, error) {
	students, err := database.GetStudents(db)
	if err != nil {
		return nil, nil, err
	}
	fees, err := database.GetFees(db)
	if err != nil {
		return nil, nil, err
	}
	classFees, err := database.GetClassFees(db)
	if err != nil {
		return nil, nil, err
	}
	payments, err := database.GetPayments(db, database.PaymentFilters{})
	if err != nil {
		return nil, nil, err
	}

	return payments, services.ComputeAllBalances(students, fees, classFees, payments), nil
}

// GetReportAPI returns the payment report for a window, either a preset
// (?period=today|week|month) or an explicit range (?start=...&end=...).
func GetReportAPI(c *fiber.Ctx) error {
	start, end, ok := reportRange(c, time.Now())
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Provide period=today|week|month or start and end dates"})
	}

	payments, balances, err := loadCollections(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load report data"})
	}

	report := services.ComputeReport(start, end, payments, balances)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}
