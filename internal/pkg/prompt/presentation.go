package prompt

import (
	"fmt"

	"github.com/futig/docgen-backend/internal/entity"
)

const presentationRole = "You are an expert startup advisor and pitch deck consultant who writes compelling, investor-ready presentations."

const pitchDeckSchema = `{
  "title": {"company_name": "string", "tagline": "string", "founders": "string"},
  "problem": {"description": "string", "pain_points": ["string", "string", "string"]},
  "solution": {"description": "string", "features": ["string", "string", "string"]},
  "market": {"market_size": "string", "details": ["string", "string", "string"]},
  "business_model": {"revenue_model": "string", "revenue_streams": ["string", "string", "string"]},
  "competition": {"competitive_advantage": "string", "competitors": ["string", "string", "string"]},
  "team": {"overview": "string", "members": [{"name": "string", "role": "string"}]},
  "financials": {"overview": "string", "metrics": ["string", "string", "string"]},
  "funding": {"amount": "string", "use_of_funds": ["string", "string", "string"]},
  "next_steps": {"overview": "string", "steps": ["string", "string", "string"]}
}
Keep every bullet under 15 words.`

const businessPlanSchema = `{
  "title": {"company_name": "string", "tagline": "string"},
  "executive_summary": {"summary": "string", "key_points": ["string", "string", "string"]},
  "company_description": {"description": "string", "details": ["string", "string", "string"]},
  "market_analysis": {"analysis": "string", "points": ["string", "string", "string"]},
  "organization": {"structure": "string", "details": ["string", "string", "string"]},
  "service_description": {"description": "string", "details": ["string", "string", "string"]},
  "marketing_sales": {"strategy": "string", "details": ["string", "string", "string"]},
  "funding_request": {"request": "string", "details": ["string", "string", "string"]},
  "financial_projections": {"projections": "string", "details": ["string", "string", "string"]},
  "appendix": {"content": "string", "items": ["string", "string", "string"]}
}
Keep every bullet under 15 words.`

func pitchDeckTemplate() *Template {
	return &Template{
		Name:          string(entity.KindPitchDeck),
		Aliases:       []string{"pitch"},
		Kind:          entity.KindPitchDeck,
		Title:         "Pitch Deck",
		Description:   "Ten-slide investor pitch deck",
		Category:      entity.CategoryPresentations,
		FilePrefix:    "pitch_deck",
		Role:          presentationRole,
		FieldsHeading: "Business Information",
		Task: "Generate pitch deck content with these slides: title, problem, solution, market opportunity, business model, " +
			"competition, team, financial projections, funding request and next steps. Tailor every slide to the business above " +
			"and use realistic numbers where appropriate.",
		Schema:    pitchDeckSchema,
		Shape:     entity.ShapeObject,
		NewRecord: func() entity.Record { return &entity.BusinessInfo{} },
		Fallback: func(rec entity.Record) *entity.StructuredContent {
			b := recordAs[entity.BusinessInfo](rec)
			company := b.CompanyName.Or("Your Company")
			industry := b.Industry.Or("technology")

			c := entity.NewStructuredContent()
			c.Set("title", map[string]any{
				"company_name": company,
				"tagline":      fmt.Sprintf("Innovative solutions in %s", industry),
				"founders":     b.Founders.Or("Founding Team"),
			})
			c.Set("problem", map[string]any{
				"description": b.Problem.Or(fmt.Sprintf("Current challenges in %s", industry)),
				"pain_points": []any{"Market inefficiencies", "Customer pain points", "Existing solution gaps"},
			})
			c.Set("solution", map[string]any{
				"description": b.Solution.Or(fmt.Sprintf("%s provides innovative solutions", company)),
				"features":    []any{"Core product capability", "Seamless user experience", "Scalable platform"},
			})
			c.Set("market", map[string]any{
				"market_size": b.MarketSize.Or("Large and growing addressable market"),
				"details":     []any{b.TargetMarket.Or("Target customers"), "Digital transformation", "Industry growth trends"},
			})
			c.Set("business_model", map[string]any{
				"revenue_model":   b.RevenueModel.Or(b.BusinessModel.Or("Competitive pricing model")),
				"revenue_streams": []any{"Primary revenue", "Secondary revenue", "Future opportunities"},
			})
			c.Set("competition", map[string]any{
				"competitive_advantage": b.CompetitiveAdvantage.Or("Unique market position"),
				"competitors":           []any{"Established incumbents", "Emerging startups", "Indirect alternatives"},
			})
			c.Set("team", map[string]any{
				"overview": b.TeamInfo.Or("Experienced team with domain expertise"),
				"members": []any{
					map[string]any{"name": "Founder", "role": "CEO"},
					map[string]any{"name": "Co-Founder", "role": "CTO"},
				},
			})
			c.Set("financials", map[string]any{
				"overview": "Growing revenue trajectory with a clear path to profitability",
				"metrics":  []any{"User growth", "Revenue growth", "Market penetration"},
			})
			c.Set("funding", map[string]any{
				"amount":       b.FundingAmount.Or("Seeking investment"),
				"use_of_funds": []any{"Product development", "Marketing", "Team expansion"},
			})
			c.Set("next_steps", map[string]any{
				"overview": "Our roadmap forward",
				"steps":    []any{"6-month goals", "12-month goals", "18-month goals"},
			})
			return c
		},
	}
}

func businessPlanTemplate() *Template {
	return &Template{
		Name:          string(entity.KindBusinessPlan),
		Kind:          entity.KindBusinessPlan,
		Title:         "Business Plan",
		Description:   "Ten-slide business plan presentation",
		Category:      entity.CategoryPresentations,
		FilePrefix:    "business_plan",
		Role:          presentationRole,
		FieldsHeading: "Business Information",
		Task: "Generate a business plan presentation with these slides: title, executive summary, company description, " +
			"market analysis, organization and management, service or product line, marketing and sales, funding request, " +
			"financial projections and appendix.",
		Schema:    businessPlanSchema,
		Shape:     entity.ShapeObject,
		NewRecord: func() entity.Record { return &entity.BusinessInfo{} },
		Fallback: func(rec entity.Record) *entity.StructuredContent {
			b := recordAs[entity.BusinessInfo](rec)
			company := b.CompanyName.Or("Your Company")

			c := entity.NewStructuredContent()
			c.Set("title", map[string]any{
				"company_name": company,
				"tagline":      "Business Plan",
			})
			c.Set("executive_summary", map[string]any{
				"summary":    b.Description.Or(fmt.Sprintf("%s business overview", company)),
				"key_points": []any{"Clear market need", "Differentiated solution", "Experienced team"},
			})
			c.Set("company_description", map[string]any{
				"description": b.Description.Or("About our company"),
				"details":     []any{fmt.Sprintf("Industry: %s", b.Industry.Or(entity.NotProvided)), fmt.Sprintf("Stage: %s", b.Stage.Or(entity.NotProvided))},
			})
			c.Set("market_analysis", map[string]any{
				"analysis": b.TargetMarket.Or("Comprehensive market analysis"),
				"points":   []any{b.MarketSize.Or("Market size under review")},
			})
			c.Set("organization", map[string]any{
				"structure": b.TeamInfo.Or("Organizational structure"),
				"details":   []any{fmt.Sprintf("Team size: %s", b.TeamSize.Or(entity.NotProvided))},
			})
			c.Set("service_description", map[string]any{
				"description": b.Solution.Or("Our products and services"),
				"details":     []any{b.KeyFeatures.Or("Key product features")},
			})
			c.Set("marketing_sales", map[string]any{
				"strategy": "Multi-channel marketing and sales strategy",
				"details":  []any{"Digital marketing", "Direct sales", "Strategic partnerships"},
			})
			c.Set("funding_request", map[string]any{
				"request": b.FundingAmount.Or("Funding requirements"),
				"details": []any{b.UseOfFunds.Or("Product development, marketing and hiring")},
			})
			c.Set("financial_projections", map[string]any{
				"projections": "Financial forecasts",
				"details":     []any{b.RevenueModel.Or("Revenue model under development")},
			})
			c.Set("appendix", map[string]any{
				"content": "Additional information",
				"items":   []any{},
			})
			return c
		},
	}
}

func presentationTemplates() []*Template {
	return []*Template{pitchDeckTemplate(), businessPlanTemplate()}
}
