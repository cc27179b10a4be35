package payrun

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workbridge/hrms-backend-go/internal/domain/payrun"
)

func testSettings() payrun.PayrunSettings {
	return payrun.PayrunSettings{
		PFRate:         decimal.NewFromFloat(0.12),
		FixedTaxAmount: decimal.NewFromInt(200),
	}
}

func TestComputePayslip(t *testing.T) {
	t.Parallel()

	basic := decimal.NewFromInt(25000)
	hra := decimal.NewFromInt(5000)

	t.Run("no unpaid leave", func(t *testing.T) {
		t.Parallel()

		// 30-day month, 22 present + 2 paid leave. The 6 unmarked days do
		// not become an unpaid deduction.
		slip := ComputePayslip(basic, hra, 30, 22, 2, 0, testSettings())

		assert.Equal(t, "20800.00", slip.NetPay.StringFixed(2))
		assert.Equal(t, "19999.92", slip.EarnedBasic.StringFixed(2))
		assert.Equal(t, "4000.08", slip.EarnedHRA.StringFixed(2))
		assert.Equal(t, "24000.00", slip.GrossEarnings.StringFixed(2))
		assert.Equal(t, "3000.00", slip.PFDeduction.StringFixed(2))
		assert.Equal(t, "200.00", slip.TaxDeduction.StringFixed(2))
		assert.Equal(t, "0.00", slip.UnpaidDeduction.StringFixed(2))
		assert.Equal(t, "3200.00", slip.TotalDeductions.StringFixed(2))
		assert.Equal(t, 22.0, slip.PresentDays)
		assert.Equal(t, 2.0, slip.PaidLeaveDays)
		assert.Zero(t, slip.UnpaidDays)
	})

	t.Run("unpaid leave deducted per day", func(t *testing.T) {
		t.Parallel()

		slip := ComputePayslip(basic, hra, 30, 20, 2, 2, testSettings())

		assert.Equal(t, "18333.26", slip.EarnedBasic.StringFixed(2))
		assert.Equal(t, "3666.74", slip.EarnedHRA.StringFixed(2))
		assert.Equal(t, "22000.00", slip.GrossEarnings.StringFixed(2))
		assert.Equal(t, "2000.00", slip.UnpaidDeduction.StringFixed(2))
		assert.Equal(t, "5200.00", slip.TotalDeductions.StringFixed(2))
		assert.Equal(t, "16800.00", slip.NetPay.StringFixed(2))
	})

	t.Run("pf charged on full basic regardless of attendance", func(t *testing.T) {
		t.Parallel()

		slip := ComputePayslip(basic, hra, 30, 5, 0, 0, testSettings())
		assert.Equal(t, "3000.00", slip.PFDeduction.StringFixed(2))
		assert.Equal(t, "200.00", slip.TaxDeduction.StringFixed(2))
	})

	t.Run("deterministic across repeated runs", func(t *testing.T) {
		t.Parallel()

		first := ComputePayslip(basic, hra, 31, 19.5, 1.5, 2, testSettings())
		for i := 0; i < 100; i++ {
			again := ComputePayslip(basic, hra, 31, 19.5, 1.5, 2, testSettings())
			require.True(t, first.NetPay.Equal(again.NetPay))
			require.True(t, first.GrossEarnings.Equal(again.GrossEarnings))
			require.True(t, first.TotalDeductions.Equal(again.TotalDeductions))
		}
	})
}
