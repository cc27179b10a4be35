package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/workbridge/hrms-backend-go/internal/domain/payroll"
)

func buildPayslipPDF(rec payroll.PayrollRecordResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", rec.EmployeeName, rec.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %02d/%d", rec.PeriodMonth, rec.PeriodYear))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days: %.1f payable of %d working (%.1f present, %.1f paid leave, %.1f unpaid)",
		rec.PayableDays, rec.WorkingDays, rec.PresentDays, rec.PaidLeaveDays, rec.UnpaidDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(100, 8, "Component")
	pdf.Cell(40, 8, "Type")
	pdf.Cell(0, 8, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, d := range rec.Details {
		pdf.Cell(100, 8, d.ComponentName)
		pdf.Cell(40, 8, d.ComponentType)
		pdf.Cell(0, 8, d.Amount.StringFixed(2))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %s", rec.GrossEarnings.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", rec.TotalDeductions.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %s", rec.NetPay.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return buf.Bytes(), nil
}
