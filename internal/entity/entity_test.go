package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredContentKeepsOrder(t *testing.T) {
	raw := `{"zeta": {"title": "Z"}, "alpha": "a", "mid": [1, 2], "alpha": "again"}`

	var c StructuredContent
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	keys := make([]string, 0, c.Len())
	for _, s := range c.Sections() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
	assert.Equal(t, "again", c.String("alpha"))
	assert.Equal(t, map[string]any{"title": "Z"}, c.Section("zeta"))

	out, err := json.Marshal(&c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta": {"title": "Z"}, "alpha": "again", "mid": [1, 2]}`, string(out))
	assert.Equal(t, `{"zeta":{"title":"Z"},"alpha":"again","mid":[1,2]}`, string(out))
}

func TestStructuredContentRejectsNonObject(t *testing.T) {
	var c StructuredContent
	err := json.Unmarshal([]byte(`[1, 2]`), &c)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFieldValueDecoding(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want FieldValue
	}{
		{name: "string trimmed", raw: `"  Acme  "`, want: "Acme"},
		{name: "null", raw: `null`, want: ""},
		{name: "string list", raw: `["Ann", "Bob"]`, want: "Ann, Bob"},
		{name: "number", raw: `42.5`, want: "42.5"},
		{name: "object", raw: `{"a": 1}`, want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FieldValue
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.want, v)
		})
	}

	assert.Equal(t, NotProvided, FieldValue("").String())
	assert.Equal(t, "x", FieldValue("").Or("x"))
}

func TestRecordIgnoresUnknownFields(t *testing.T) {
	var p PartiesInfo
	require.NoError(t, json.Unmarshal([]byte(`{"company_name": "Acme", "favourite_color": "blue"}`), &p))
	assert.Equal(t, FieldValue("Acme"), p.CompanyName)
	assert.Equal(t, "Acme", p.Subject())

	var e EmploymentInfo
	assert.Equal(t, "agreement", e.Subject())
}

func TestAmountDecoding(t *testing.T) {
	var b BillRecord
	raw := `{"subtotal": "1,250.00", "tax_amount": 125, "discount": null, "total_amount": "$1325", "confidence": 1.7}`
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	b.Normalize()

	assert.Equal(t, NewAmount(1250), b.Subtotal)
	assert.Equal(t, NewAmount(125), b.TaxAmount)
	assert.False(t, b.Discount.Set)
	assert.Equal(t, NewAmount(1325), b.TotalAmount)
	assert.Equal(t, DefaultCurrency, b.Currency)
	assert.Equal(t, 1.0, b.Confidence)
	assert.NotNil(t, b.Items)
}

func TestGenerationResultErr(t *testing.T) {
	assert.NoError(t, GenerationResult{Text: "ok"}.Err())
	assert.ErrorIs(t, NotConfiguredResult().Err(), ErrAINotConfigured)
	assert.ErrorIs(t, GenerationResult{Failure: FailureEmpty}.Err(), ErrEmptyResponse)

	timeout := GenerationResult{Failure: FailureTimeout}.Err()
	assert.ErrorIs(t, timeout, ErrTransport)
	assert.ErrorIs(t, timeout, ErrDeadlineExceeded)

	status := GenerationResult{Failure: FailureStatus, StatusCode: 500}.Err()
	assert.ErrorIs(t, status, ErrTransport)
	assert.NotErrorIs(t, status, ErrDeadlineExceeded)
	assert.Equal(t, "external service call failed: status 500", status.Error())
}

type providerError struct{ code int }

func (e *providerError) Error() string { return "provider unavailable" }

func TestGenerationResultErrKeepsCause(t *testing.T) {
	cause := &providerError{code: 503}
	tests := []struct {
		name    string
		failure GenerationFailure
	}{
		{name: "status", failure: FailureStatus},
		{name: "transport", failure: FailureTransport},
		{name: "timeout", failure: FailureTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GenerationResult{Failure: tt.failure, StatusCode: 503, Cause: cause}.Err()
			assert.ErrorIs(t, err, ErrTransport)

			var target *providerError
			require.True(t, errors.As(err, &target))
			assert.Equal(t, 503, target.code)
		})
	}
}

func TestMoneyKeepsLiteralAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 950, want: "$950"},
		{in: 42000, want: "$42,000 (42000)"},
		{in: 1250.25, want: "$1,250 (1250.25)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in))
	}
}
