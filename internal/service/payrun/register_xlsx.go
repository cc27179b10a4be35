package payrun

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/workbridge/hrms-backend-go/internal/domain/payrun"
	"github.com/xuri/excelize/v2"
)

// buildRegisterXLSX renders the payrun register: one row per payslip plus a
// totals row. Returns the file bytes and a suggested file name.
func buildRegisterXLSX(run payrun.PayrunResponse) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Register"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Employee Code", "Employee Name", "Working Days", "Present Days",
		"Paid Leave Days", "Unpaid Days", "Earned Basic", "Earned HRA",
		"Gross", "PF", "Tax", "Unpaid Deduction", "Total Deductions", "Net Pay",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to set header cell: %w", err)
		}
	}

	for i, slip := range run.Payslips {
		rowNum := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), slip.EmployeeCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), slip.EmployeeName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), slip.WorkingDays)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), slip.PresentDays)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), slip.PaidLeaveDays)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), slip.UnpaidDays)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), slip.EarnedBasic.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), slip.EarnedHRA.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), slip.GrossEarnings.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("J%d", rowNum), slip.PFDeduction.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("K%d", rowNum), slip.TaxDeduction.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("L%d", rowNum), slip.UnpaidDeduction.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("M%d", rowNum), slip.TotalDeductions.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("N%d", rowNum), slip.NetPay.StringFixed(2))
	}

	totalRow := len(run.Payslips) + 2
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), fmt.Sprintf("Total (%d employees)", run.TotalEmployees))
	f.SetCellValue(sheet, fmt.Sprintf("N%d", totalRow), run.TotalCost.StringFixed(2))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write register xlsx: %w", err)
	}

	fileName := fmt.Sprintf("payrun_register_%02d_%d_%s.xlsx", run.PeriodMonth, run.PeriodYear, uuid.NewString()[:8])
	return buf.Bytes(), fileName, nil
}
