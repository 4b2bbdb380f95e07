package services

import (
	"bytes"
	"fmt"
	"strings"

	"staffdesk/internal/domain/models"
	"staffdesk/internal/listview"
	"staffdesk/internal/repositories"
	"staffdesk/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// PayslipService renders downloadable payslip PDFs.
type PayslipService struct {
	Repo      repositories.PayslipRepository
	RequestID string
	Loader    func(int64) (models.Payslip, error) // test hook
}

func (s PayslipService) GeneratePDF(id int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.Repo.GetByID
	}
	slip, err := load(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "payslip", "generate_pdf", fmt.Sprintf("payslip_id=%d", id))
	return buildPayslipPDF(slip)
}

func buildPayslipPDF(slip models.Payslip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYSLIP")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Employee    : %s", safe(slip.EmployeeName, "-")),
		fmt.Sprintf("Employee ID : %d", slip.EmployeeID),
		fmt.Sprintf("Pay Period  : %s", safe(slip.PeriodMonth, "-")),
		fmt.Sprintf("Fin. Year   : %s", financialYearOfMonth(slip.PeriodMonth)),
		fmt.Sprintf("Status      : %s", safe(slip.Status, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Earnings & Deductions:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Gross Pay    : "+listview.FormatAmount(slip.Gross, slip.Currency))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Deductions   : "+listview.FormatAmount(slip.Deductions, slip.Currency))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Net Pay: "+listview.FormatAmount(slip.Net, slip.Currency))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This payslip is system generated and does not require a signature.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("PAYSLIP_%d_%s.pdf", slip.ID,
		utils.SafeFilenamePart(slip.EmployeeName+"_"+slip.PeriodMonth))
	return buf.Bytes(), filename, nil
}

func financialYearOfMonth(periodMonth string) string {
	t, err := utils.ParseMonth(periodMonth)
	if err != nil {
		return "-"
	}
	return utils.FinancialYear(t)
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
