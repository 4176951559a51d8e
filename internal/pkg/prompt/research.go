package prompt

import (
	"github.com/futig/docgen-backend/internal/entity"
)

// DataNotAvailable fills text fields the analysis did not return.
const DataNotAvailable = "Data not available"

const researchSchema = `{
  "market_overview": "string (2-3 sentence summary of the current market state)",
  "key_insights": ["string"],
  "market_size": "string (market size, growth rate and financial data)",
  "competitors": ["string (competitor with a brief description)"],
  "trends": ["string"],
  "opportunities": ["string"],
  "challenges": ["string"],
  "recommendations": ["string"]
}`

var researchRules = []string{
	"Give 5-7 key insights, 4-6 trends, 4-6 opportunities, 4-6 challenges and 5-7 recommendations.",
	"Base every statement on the search results; be specific and avoid generic advice.",
}

func researchTemplate(name, title, task string) *Template {
	return &Template{
		Name:          name,
		Kind:          entity.KindMarketAnalysis,
		Title:         title,
		Description:   task,
		Role:          "You are an expert market research analyst.",
		FieldsHeading: "Research Data",
		Task:          task,
		Schema:        researchSchema,
		Rules:         researchRules,
		Shape:         entity.ShapeObject,
		NewRecord:     func() entity.Record { return &entity.ResearchPrompt{} },
		Fallback: func(entity.Record) *entity.StructuredContent {
			c := entity.NewStructuredContent()
			c.Set("market_overview", DataNotAvailable)
			c.Set("key_insights", []any{})
			c.Set("market_size", DataNotAvailable)
			c.Set("competitors", []any{})
			c.Set("trends", []any{})
			c.Set("opportunities", []any{})
			c.Set("challenges", []any{})
			c.Set("recommendations", []any{})
			return c
		},
	}
}

func researchTemplates() []*Template {
	return []*Template{
		researchTemplate(string(entity.KindMarketAnalysis), "Market Analysis",
			"Analyze the search results above and provide a comprehensive market analysis for the research focus."),
		researchTemplate("competitor_analysis", "Competitor Analysis",
			"Perform a detailed competitor analysis for the research focus: the company's position, direct competitors, "+
				"gaps for competitive advantage and strategic recommendations for competitive positioning."),
		researchTemplate("trend_analysis", "Trend Analysis",
			"Analyze industry trends and future predictions for the research focus: forecasts, emerging technologies, "+
				"consumer behavior changes and regulatory impact."),
	}
}
