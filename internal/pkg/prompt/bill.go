package prompt

import (
	"encoding/json"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/normalizer"
)

const billSchema = `[
  {
    "vendor_name": "string (company or business name)",
    "vendor_address": "string (full address)",
    "vendor_contact": "string (phone, email, website)",
    "bill_number": "string (invoice or bill number)",
    "bill_date": "string (YYYY-MM-DD or as it appears)",
    "due_date": "string (payment due date)",
    "subtotal": 0.0,
    "tax_amount": 0.0,
    "tax_rate": 0.0,
    "discount": 0.0,
    "total_amount": 0.0,
    "currency": "string (currency code like USD, EUR, INR)",
    "payment_terms": "string",
    "items": [
      {"description": "string", "quantity": 0.0, "unit_price": 0.0, "total_price": 0.0, "category": "string"}
    ],
    "confidence": 0.0,
    "extracted_text": "string (raw text extracted for reference)",
    "bill_type": "string (invoice, receipt, estimate, bill)"
  }
]`

var billRules = []string{
	"CONFIDENCE SCORING:",
	"- 0.9-1.0: Clear, well-structured bill with all information easily readable",
	"- 0.7-0.9: Good quality with minor unclear elements",
	"- 0.5-0.7: Moderate quality with some handwritten or unclear sections",
	"- 0.3-0.5: Poor quality but basic information extractable",
	"- 0.0-0.3: Very poor quality, minimal information extracted",
	"SPECIAL HANDLING:",
	"- For multiple pages, treat the images as a single bill unless they are clearly separate bills",
	"- Handle different currencies and number formats (US, EU, Asian); report the ISO currency code",
	"- Parse taxes correctly (VAT, GST, Sales Tax); tax_rate is a percentage like 10.5 for 10.5%",
	"- Handle discounts, shipping charges and other fees",
	"- Extract item categories when possible (materials, services, products)",
	"OUTPUT REQUIREMENTS:",
	"- Use null for missing or unclear information",
	"- All numeric values must be JSON numbers, not strings",
	"- Return one array element per bill",
}

func billTemplates() []*Template {
	return []*Template{
		{
			Name:        string(entity.KindBillExtraction),
			Aliases:     []string{"bill", "invoice"},
			Kind:        entity.KindBillExtraction,
			Title:       "Bill Extraction",
			Description: "Structured bill and invoice data from images",
			Role: "You are an expert bill and invoice parser that extracts structured data from images, " +
				"including handwritten text, stamps and logos.",
			FieldsHeading: "Request",
			Task: "Extract all bill/invoice information from each attached image: vendor details, bill number and dates, " +
				"line items, and financial totals. For handwriting, poor scans or complex layouts use context clues for " +
				"unclear writing and organize the data logically.",
			Schema:    billSchema,
			Rules:     billRules,
			Shape:     entity.ShapeList,
			NewRecord: func() entity.Record { return &entity.BillPrompt{} },
			ListFallback: func(raw string) []json.RawMessage {
				data, err := json.Marshal(map[string]any{
					"extracted_text": raw,
					"confidence":     normalizer.FallbackConfidence,
				})
				if err != nil {
					return []json.RawMessage{}
				}
				return []json.RawMessage{data}
			},
		},
		{
			Name:        string(entity.KindBillText),
			Aliases:     []string{"ocr"},
			Kind:        entity.KindBillText,
			Title:       "Text Extraction",
			Description: "Plain text from bill images",
			Role: "You are an OCR system that extracts all text from images. Extract all visible text exactly as it appears, " +
				"including handwritten text, printed text and numbers.",
			FieldsHeading: "Request",
			Task:          "Extract all text from the attached images.",
			Schema:        "1. The text of each image in reading order, keeping the original layout where possible\n2. [unclear] in place of text you cannot read",
			Shape:         entity.ShapeText,
			NewRecord:     func() entity.Record { return &entity.BillPrompt{} },
		},
	}
}
