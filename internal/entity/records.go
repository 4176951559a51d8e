package entity

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Money formats an amount as whole dollars with thousands separators. The
// amount as given is appended when the two differ, so "42000" renders as
// "$42,000 (42000)".
func Money(v float64) string {
	formatted := moneyPrinter.Sprintf("$%.0f", v)
	literal := strconv.FormatFloat(v, 'f', -1, 64)
	if formatted == "$"+literal {
		return formatted
	}
	return formatted + " (" + literal + ")"
}

func optionalMoney(v *float64) FieldValue {
	if v == nil {
		return ""
	}
	return FieldValue(Money(*v))
}

func rawField(raw json.RawMessage) FieldValue {
	var v FieldValue
	if len(raw) > 0 {
		_ = v.UnmarshalJSON(raw)
	}
	return v
}

// BillPrompt parameterizes bill extraction prompts.
type BillPrompt struct {
	BillType FieldValue `json:"bill_type"`
	Images   int        `json:"-"`
}

func (b *BillPrompt) Fields() []Field {
	return []Field{
		{Label: "Expected Bill Type", Value: FieldValue(b.BillType.Or("auto"))},
		{Label: "Number of Images", Value: FieldValue(strconv.Itoa(b.Images))},
	}
}

func (b *BillPrompt) Subject() string { return "bill" }

// AskPrompt is an assistant question with retrieved knowledge.
type AskPrompt struct {
	Question    FieldValue
	Context     FieldValue
	StartupType FieldValue
	Knowledge   FieldValue
}

func (a *AskPrompt) Fields() []Field {
	return []Field{
		{Label: "Question", Value: a.Question},
		{Label: "User Context", Value: a.Context},
		{Label: "Startup Type", Value: a.StartupType},
		{Label: "Relevant Knowledge", Value: a.Knowledge},
	}
}

func (a *AskPrompt) Subject() string { return "question" }

// ExplainPrompt asks for a plain-language explanation of a clause.
type ExplainPrompt struct {
	Clause       FieldValue
	DocumentType FieldValue
	DetailLevel  FieldValue
	Knowledge    FieldValue
}

func (e *ExplainPrompt) Fields() []Field {
	return []Field{
		{Label: "Clause", Value: e.Clause},
		{Label: "Document Type", Value: e.DocumentType},
		{Label: "Detail Level", Value: e.DetailLevel},
		{Label: "Reference Material", Value: e.Knowledge},
	}
}

func (e *ExplainPrompt) Subject() string { return "clause" }

// ResearchPrompt carries collected search data to the summarizer.
type ResearchPrompt struct {
	Focus FieldValue
	Data  FieldValue
}

func (r *ResearchPrompt) Fields() []Field {
	return []Field{
		{Label: "Research Focus", Value: r.Focus},
		{Label: "Search Results", Value: r.Data},
	}
}

func (r *ResearchPrompt) Subject() string { return r.Focus.Or("market") }

func (b *BudgetRecommendationRequest) Fields() []Field {
	return []Field{
		{Label: "Startup Stage", Value: FieldValue(b.StartupStage)},
		{Label: "Monthly Revenue", Value: optionalMoney(b.MonthlyRevenue)},
		{Label: "Team Size", Value: FieldValue(strconv.Itoa(b.TeamSize))},
		{Label: "Industry", Value: FieldValue(b.Industry)},
		{Label: "Funding Raised", Value: optionalMoney(b.FundingRaised)},
		{Label: "Monthly Burn Rate", Value: optionalMoney(b.BurnRate)},
	}
}

func (b *BudgetRecommendationRequest) Subject() string { return b.StartupStage }

func (f *FundraisingStrategyRequest) Fields() []Field {
	return []Field{
		{Label: "Current Stage", Value: FieldValue(f.CurrentStage)},
		{Label: "Target Amount", Value: FieldValue(Money(f.TargetAmount))},
		{Label: "Industry", Value: FieldValue(f.Industry)},
		{Label: "Traction Metrics", Value: rawField(f.TractionMetrics)},
		{Label: "Team Background", Value: FieldValue(f.TeamBackground)},
		{Label: "Market Size", Value: FieldValue(f.MarketSize)},
	}
}

func (f *FundraisingStrategyRequest) Subject() string { return f.CurrentStage }

// Totals sums expenses and revenue and derives the monthly cash flow.
func (h *FinancialHealthRequest) Totals() (expenses, revenue, cashFlow float64) {
	for _, e := range h.MonthlyExpenses {
		expenses += e.Amount
	}
	for _, r := range h.RevenueData {
		revenue += r.Amount
	}
	return expenses, revenue, revenue - expenses
}

func (h *FinancialHealthRequest) Fields() []Field {
	expenses, revenue, cashFlow := h.Totals()
	return []Field{
		{Label: "Monthly Expenses", Value: FieldValue(Money(expenses))},
		{Label: "Monthly Revenue", Value: FieldValue(Money(revenue))},
		{Label: "Net Cash Flow", Value: FieldValue(Money(cashFlow))},
		{Label: "Current Burn Rate", Value: FieldValue(Money(h.BurnRate))},
		{Label: "Runway", Value: FieldValue(fmt.Sprintf("%.1f months", h.RunwayMonths))},
		{Label: "Expense Breakdown", Value: entriesField(h.MonthlyExpenses)},
		{Label: "Revenue Sources", Value: entriesField(h.RevenueData)},
		{Label: "Funding Sources", Value: entriesField(h.FundingSources)},
	}
}

func (h *FinancialHealthRequest) Subject() string { return "financial_health" }

func entriesField(entries []MoneyEntry) FieldValue {
	if len(entries) == 0 {
		return ""
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return ""
	}
	return FieldValue(data)
}

// ExpenseBreakdown is a per-category expense summary.
type ExpenseBreakdown struct {
	Totals map[string]float64
	Total  float64
}

// NewExpenseBreakdown groups expenses by category. Entries without one
// count as "Uncategorized".
func NewExpenseBreakdown(expenses []MoneyEntry) *ExpenseBreakdown {
	b := &ExpenseBreakdown{Totals: make(map[string]float64)}
	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = "Uncategorized"
		}
		b.Totals[category] += e.Amount
		b.Total += e.Amount
	}
	return b
}

func (b *ExpenseBreakdown) Fields() []Field {
	categories := make([]string, 0, len(b.Totals))
	for c := range b.Totals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	fields := make([]Field, 0, len(categories)+1)
	for _, c := range categories {
		fields = append(fields, Field{Label: c, Value: FieldValue(Money(b.Totals[c]))})
	}
	fields = append(fields, Field{Label: "Total Monthly Expenses", Value: FieldValue(Money(b.Total))})
	return fields
}

func (b *ExpenseBreakdown) Subject() string { return "expenses" }
