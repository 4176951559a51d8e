package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const DefaultCurrency = "USD"

// Amount is a monetary value. Models sometimes return numbers as strings
// ("1,250.00", "$30"); both forms decode, anything else decodes as absent.
type Amount struct {
	Value float64
	Set   bool
}

func NewAmount(v float64) Amount {
	return Amount{Value: v, Set: true}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*a = Amount{}
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.Map(func(r rune) rune {
			switch {
			case r >= '0' && r <= '9', r == '.', r == '-':
				return r
			default:
				return -1
			}
		}, s)
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*a = NewAmount(v)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil
	}
	*a = NewAmount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// IsPositive reports whether the amount is present and non-zero.
func (a Amount) IsPositive() bool {
	return a.Set && a.Value != 0
}

// BillItem is one line item of a bill.
type BillItem struct {
	Description string  `json:"description"`
	Quantity    Amount  `json:"quantity"`
	UnitPrice   Amount  `json:"unit_price"`
	TotalPrice  Amount  `json:"total_price"`
	Category    *string `json:"category"`
}

// BillRecord is structured data extracted from one bill or invoice.
type BillRecord struct {
	VendorName    *string    `json:"vendor_name"`
	VendorAddress *string    `json:"vendor_address"`
	VendorContact *string    `json:"vendor_contact"`
	BillNumber    *string    `json:"bill_number"`
	BillDate      *string    `json:"bill_date"`
	DueDate       *string    `json:"due_date"`
	Subtotal      Amount     `json:"subtotal"`
	TaxAmount     Amount     `json:"tax_amount"`
	TaxRate       Amount     `json:"tax_rate"`
	Discount      Amount     `json:"discount"`
	TotalAmount   Amount     `json:"total_amount"`
	Currency      string     `json:"currency"`
	PaymentTerms  *string    `json:"payment_terms"`
	Items         []BillItem `json:"items"`
	Confidence    float64    `json:"confidence"`
	ExtractedText *string    `json:"extracted_text"`
	BillType      *string    `json:"bill_type"`
}

// Normalize applies defaults after decoding model output.
func (b *BillRecord) Normalize() {
	if strings.TrimSpace(b.Currency) == "" {
		b.Currency = DefaultCurrency
	}
	if b.Items == nil {
		b.Items = []BillItem{}
	}
	switch {
	case b.Confidence < 0:
		b.Confidence = 0
	case b.Confidence > 1:
		b.Confidence = 1
	}
}

// HasVendor reports whether a non-blank vendor name is present.
func (b *BillRecord) HasVendor() bool {
	return b.VendorName != nil && strings.TrimSpace(*b.VendorName) != ""
}

// ValidationReport is the outcome of a bill consistency check. The record
// itself is never modified.
type ValidationReport struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// StringPtr is a convenience for optional string fields.
func StringPtr(s string) *string {
	return &s
}
