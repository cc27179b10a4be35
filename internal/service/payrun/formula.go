package payrun

import (
	"github.com/shopspring/decimal"
	"github.com/workbridge/hrms-backend-go/internal/domain/payrun"
)

// ComputePayslip applies the fixed batch formula. Every intermediate value is
// rounded to 2 decimals before it enters a sum, so identical inputs always
// produce identical output.
//
// PF is charged on the full basic salary, not the earned portion. The fixed
// tax applies regardless of attendance. unpaidLeaveDays is the count of
// approved unpaid-type leave days in the period; it drives the unpaid
// deduction and does not reduce the earned amounts.
func ComputePayslip(basic, hra decimal.Decimal, workingDays int, presentDays, paidLeaveDays, unpaidLeaveDays float64, settings payrun.PayrunSettings) payrun.Payslip {
	wd := decimal.NewFromInt(int64(workingDays))
	perDay := basic.Div(wd).Round(2)
	hraPerDay := hra.Div(wd).Round(2)

	payable := decimal.NewFromFloat(presentDays + paidLeaveDays)
	unpaid := decimal.NewFromFloat(unpaidLeaveDays)

	earnedBasic := perDay.Mul(payable).Round(2)
	earnedHRA := hraPerDay.Mul(payable).Round(2)
	gross := earnedBasic.Add(earnedHRA)

	pf := basic.Mul(settings.PFRate).Round(2)
	tax := settings.FixedTaxAmount.Round(2)
	unpaidDeduction := perDay.Mul(unpaid).Round(2).Add(hraPerDay.Mul(unpaid).Round(2))
	totalDeductions := pf.Add(tax).Add(unpaidDeduction)

	return payrun.Payslip{
		WorkingDays:     workingDays,
		PresentDays:     presentDays,
		PaidLeaveDays:   paidLeaveDays,
		UnpaidDays:      unpaidLeaveDays,
		BasicSalary:     basic,
		HRA:             hra,
		EarnedBasic:     earnedBasic,
		EarnedHRA:       earnedHRA,
		GrossEarnings:   gross,
		PFDeduction:     pf,
		TaxDeduction:    tax,
		UnpaidDeduction: unpaidDeduction,
		TotalDeductions: totalDeductions,
		NetPay:          gross.Sub(totalDeductions),
	}
}
