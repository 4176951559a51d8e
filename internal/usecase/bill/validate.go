package bill

import (
	"math"
	"strings"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
)

// Tolerance is the allowed difference between the stated total and
// subtotal + tax - discount.
const Tolerance = 0.01

const (
	ErrVendorMissing = "vendor name missing"
	ErrTotalMissing  = "total amount missing"

	WarnTotalMismatch = "Total amount doesn't match calculated total"
	WarnDateFormat    = "Bill date format may be incorrect"
)

// Validate checks a record without modifying it. Missing vendor or total
// are errors; arithmetic and date problems are warnings.
func Validate(b *entity.BillRecord) entity.ValidationReport {
	report := entity.ValidationReport{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}

	if !b.HasVendor() {
		report.Errors = append(report.Errors, ErrVendorMissing)
		report.IsValid = false
	}
	if !b.TotalAmount.IsPositive() {
		report.Errors = append(report.Errors, ErrTotalMissing)
		report.IsValid = false
	}

	if b.Subtotal.IsPositive() && b.TotalAmount.IsPositive() && b.TaxAmount.IsPositive() {
		calculated := b.Subtotal.Value + b.TaxAmount.Value
		if b.Discount.Set {
			calculated -= b.Discount.Value
		}
		if math.Abs(calculated-b.TotalAmount.Value) > Tolerance+1e-9 {
			report.Warnings = append(report.Warnings, WarnTotalMismatch)
		}
	}

	if b.BillDate != nil && strings.TrimSpace(*b.BillDate) != "" {
		if _, err := time.Parse(time.DateOnly, strings.TrimSpace(*b.BillDate)); err != nil {
			report.Warnings = append(report.Warnings, WarnDateFormat)
		}
	}

	return report
}
