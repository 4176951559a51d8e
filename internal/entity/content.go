package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// ContentKind names a generated document or content type.
type ContentKind string

const (
	KindNDA                 ContentKind = "nda"
	KindCDA                 ContentKind = "cda"
	KindEmploymentAgreement ContentKind = "employment_agreement"
	KindFounderAgreement    ContentKind = "founder_agreement"
	KindTermsOfService      ContentKind = "terms_of_service"
	KindPrivacyPolicy       ContentKind = "privacy_policy"
	KindPitchDeck           ContentKind = "pitch_deck"
	KindBusinessPlan        ContentKind = "business_plan"
	KindFinancialAnalysis   ContentKind = "financial_analysis"
	KindBillExtraction      ContentKind = "bill_extraction"
	KindBillText            ContentKind = "bill_text"
	KindMarketAnalysis      ContentKind = "market_analysis"
	KindAssistantAnswer     ContentKind = "assistant_answer"
)

// Date layouts used in prompts and document metadata.
const (
	DateLayout     = "January 2, 2006"
	DatetimeLayout = "January 2, 2006 at 03:04 PM"
)

// Financial analysis query types. Each selects its own prompt template.
const (
	QueryExpenseAnalysis   = "expense_analysis"
	QueryBudgetPlanning    = "budget_planning"
	QueryFundingStrategy   = "funding_strategy"
	QueryFinancialInsights = "financial_insights"
)

// Normalize lowercases and trims a declared kind string.
func (k ContentKind) Normalize() ContentKind {
	return ContentKind(strings.ToLower(strings.TrimSpace(string(k))))
}

// IsLegal reports whether the kind renders to a paginated legal document.
func (k ContentKind) IsLegal() bool {
	switch k {
	case KindNDA, KindCDA, KindEmploymentAgreement, KindFounderAgreement, KindTermsOfService, KindPrivacyPolicy:
		return true
	default:
		return false
	}
}

// IsPresentation reports whether the kind renders to a slide deck.
func (k ContentKind) IsPresentation() bool {
	return k == KindPitchDeck || k == KindBusinessPlan
}

// Record is a typed, kind-specific request payload. Unknown JSON fields are
// ignored when decoding; absent fields render as NotProvided.
type Record interface {
	Fields() []Field
	// Subject is the company or person name the artifact is named after.
	Subject() string
}

// ContentRequest is one call's worth of input for the content pipeline.
type ContentRequest struct {
	Kind        ContentKind
	Record      Record
	Attachments []Attachment
	// Now is substituted for dates in prompts and metadata. Zero means no date.
	Now time.Time
}

// PartiesInfo feeds NDA and CDA templates.
type PartiesInfo struct {
	CompanyName       FieldValue `json:"company_name"`
	CompanyAddress    FieldValue `json:"company_address"`
	OtherPartyName    FieldValue `json:"other_party_name"`
	OtherPartyAddress FieldValue `json:"other_party_address"`
	Purpose           FieldValue `json:"purpose"`
	Duration          FieldValue `json:"duration"`
	EffectiveDate     FieldValue `json:"effective_date"`
}

func (p *PartiesInfo) Fields() []Field {
	return []Field{
		{Label: "Company Name", Value: p.CompanyName},
		{Label: "Company Address", Value: p.CompanyAddress},
		{Label: "Other Party Name", Value: p.OtherPartyName},
		{Label: "Other Party Address", Value: p.OtherPartyAddress},
		{Label: "Purpose", Value: p.Purpose},
		{Label: "Duration", Value: p.Duration},
		{Label: "Effective Date", Value: p.EffectiveDate},
	}
}

func (p *PartiesInfo) Subject() string { return p.CompanyName.Or("document") }

// EmploymentInfo feeds the employment agreement template.
type EmploymentInfo struct {
	CompanyName    FieldValue `json:"company_name"`
	EmployeeName   FieldValue `json:"employee_name"`
	Position       FieldValue `json:"position"`
	Department     FieldValue `json:"department"`
	StartDate      FieldValue `json:"start_date"`
	Salary         FieldValue `json:"salary"`
	EmploymentType FieldValue `json:"employment_type"`
	Benefits       FieldValue `json:"benefits"`
	Location       FieldValue `json:"location"`
}

func (e *EmploymentInfo) Fields() []Field {
	return []Field{
		{Label: "Company Name", Value: e.CompanyName},
		{Label: "Employee Name", Value: e.EmployeeName},
		{Label: "Position/Title", Value: e.Position},
		{Label: "Department", Value: e.Department},
		{Label: "Start Date", Value: e.StartDate},
		{Label: "Salary", Value: e.Salary},
		{Label: "Employment Type", Value: e.EmploymentType},
		{Label: "Benefits", Value: e.Benefits},
		{Label: "Location", Value: e.Location},
	}
}

func (e *EmploymentInfo) Subject() string { return e.EmployeeName.Or("agreement") }

// FoundersInfo feeds the founder agreement template.
type FoundersInfo struct {
	CompanyName       FieldValue `json:"company_name"`
	Founders          FieldValue `json:"founders"`
	EquitySplit       FieldValue `json:"equity_split"`
	Roles             FieldValue `json:"roles"`
	VestingSchedule   FieldValue `json:"vesting_schedule"`
	InitialInvestment FieldValue `json:"initial_investment"`
}

func (f *FoundersInfo) Fields() []Field {
	return []Field{
		{Label: "Company Name", Value: f.CompanyName},
		{Label: "Founders", Value: f.Founders},
		{Label: "Equity Split", Value: f.EquitySplit},
		{Label: "Roles and Responsibilities", Value: f.Roles},
		{Label: "Vesting Schedule", Value: f.VestingSchedule},
		{Label: "Initial Investment", Value: f.InitialInvestment},
	}
}

func (f *FoundersInfo) Subject() string { return f.CompanyName.Or("document") }

// CompanyInfo feeds terms of service and privacy policy templates.
type CompanyInfo struct {
	CompanyName        FieldValue `json:"company_name"`
	CompanyAddress     FieldValue `json:"company_address"`
	Website            FieldValue `json:"website"`
	ServiceDescription FieldValue `json:"service_description"`
	ContactEmail       FieldValue `json:"contact_email"`
	Jurisdiction       FieldValue `json:"jurisdiction"`
	DataCollected      FieldValue `json:"data_collected"`
	ThirdPartyServices FieldValue `json:"third_party_services"`
	EffectiveDate      FieldValue `json:"effective_date"`
}

func (c *CompanyInfo) Fields() []Field {
	return []Field{
		{Label: "Company Name", Value: c.CompanyName},
		{Label: "Company Address", Value: c.CompanyAddress},
		{Label: "Website", Value: c.Website},
		{Label: "Service Description", Value: c.ServiceDescription},
		{Label: "Contact Email", Value: c.ContactEmail},
		{Label: "Governing Jurisdiction", Value: c.Jurisdiction},
		{Label: "Data Collected", Value: c.DataCollected},
		{Label: "Third-Party Services", Value: c.ThirdPartyServices},
		{Label: "Effective Date", Value: c.EffectiveDate},
	}
}

func (c *CompanyInfo) Subject() string { return c.CompanyName.Or("document") }

// BusinessInfo feeds pitch deck and business plan templates.
type BusinessInfo struct {
	CompanyName          FieldValue `json:"company_name"`
	Industry             FieldValue `json:"industry"`
	Description          FieldValue `json:"description"`
	Problem              FieldValue `json:"problem"`
	Solution             FieldValue `json:"solution"`
	TargetMarket         FieldValue `json:"target_market"`
	MarketSize           FieldValue `json:"market_size"`
	BusinessModel        FieldValue `json:"business_model"`
	RevenueModel         FieldValue `json:"revenue_model"`
	FundingAmount        FieldValue `json:"funding_amount"`
	UseOfFunds           FieldValue `json:"use_of_funds"`
	TeamSize             FieldValue `json:"team_size"`
	TeamInfo             FieldValue `json:"team_info"`
	Founders             FieldValue `json:"founders"`
	Stage                FieldValue `json:"stage"`
	KeyFeatures          FieldValue `json:"key_features"`
	CompetitiveAdvantage FieldValue `json:"competitive_advantage"`
}

func (b *BusinessInfo) Fields() []Field {
	return []Field{
		{Label: "Company Name", Value: b.CompanyName},
		{Label: "Industry", Value: b.Industry},
		{Label: "Business Description", Value: b.Description},
		{Label: "Problem Statement", Value: b.Problem},
		{Label: "Solution Description", Value: b.Solution},
		{Label: "Target Market", Value: b.TargetMarket},
		{Label: "Market Size", Value: b.MarketSize},
		{Label: "Business Model", Value: b.BusinessModel},
		{Label: "Revenue Model", Value: b.RevenueModel},
		{Label: "Funding Amount", Value: b.FundingAmount},
		{Label: "Use of Funds", Value: b.UseOfFunds},
		{Label: "Team Size", Value: b.TeamSize},
		{Label: "Team Information", Value: b.TeamInfo},
		{Label: "Founders", Value: b.Founders},
		{Label: "Current Stage", Value: b.Stage},
		{Label: "Key Features", Value: b.KeyFeatures},
		{Label: "Competitive Advantage", Value: b.CompetitiveAdvantage},
	}
}

func (b *BusinessInfo) Subject() string { return b.CompanyName.Or("business") }

// FinancialQuery feeds the financial analysis templates.
type FinancialQuery struct {
	QueryType string          `json:"query_type"`
	Data      json.RawMessage `json:"data"`
	Context   FieldValue      `json:"context"`
}

func (f *FinancialQuery) Fields() []Field {
	var data FieldValue
	if len(f.Data) > 0 {
		_ = data.UnmarshalJSON(f.Data)
	}
	return []Field{
		{Label: "Financial Data", Value: data},
		{Label: "Context", Value: f.Context},
	}
}

func (f *FinancialQuery) Subject() string { return f.QueryType }
