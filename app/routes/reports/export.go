package reports

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/config"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportBalancesAPI streams the full balance list as an xlsx workbook.
func ExportBalancesAPI(c *fiber.Ctx) error {
	_, balances, err := loadCollections(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load balances"})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []interface{}{"Matricule", "Nom", "Prénom", "Classe", "Total dû", "Total payé", "Reste à payer", "Statut"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	for i, b := range balances {
		statusLabel := "Non soldé"
		if b.Status == models.Settled {
			statusLabel = "Soldé"
		}
		row := []interface{}{b.Matricule, b.LastName, b.FirstName, b.Class, b.TotalDue, b.TotalPaid, b.Remainder, statusLabel}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write workbook"})
	}

	filename := fmt.Sprintf("soldes_%s.xlsx", services.DateOf(time.Now()))
	c.Set("Content-Type", xlsxContentType)
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// ExportPaymentsAPI streams the payments of a window as an xlsx workbook.
// The window is resolved the same way as the report endpoint.
func ExportPaymentsAPI(c *fiber.Ctx) error {
	start, end, ok := reportRange(c, time.Now())
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Provide period=today|week|month or start and end dates"})
	}

	payments, _, err := loadCollections(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
	}
	report := services.ComputeReport(start, end, payments, nil)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []interface{}{"Date", "Matricule", "Code frais", "Montant", "Mode", "Numéro pièce", "Caissier", "Commentaires"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	for i, p := range report.Payments {
		row := []interface{}{p.Date, p.Matricule, p.FeeCode, p.Amount, modeLabel(p.Mode), p.Reference, p.Cashier, p.Comment}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write workbook"})
	}

	filename := fmt.Sprintf("paiements_%s_%s.xlsx", start, end)
	c.Set("Content-Type", xlsxContentType)
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func modeLabel(mode models.PaymentMode) string {
	switch mode {
	case models.ModeCash:
		return "Espèces"
	case models.ModeCheck:
		return "Chèque"
	case models.ModeBankTransfer:
		return "Virement"
	case models.ModeMobileMoney:
		return "Mobile Money"
	}
	return string(mode)
}
