package prompt

import (
	"github.com/futig/docgen-backend/internal/entity"
)

const financeRole = "You are an expert startup financial advisor with deep knowledge of startup economics, fundraising, and financial management."

func financeTemplate(name, title, task, schema string, newRecord func() entity.Record) *Template {
	return &Template{
		Name:          name,
		Kind:          entity.KindFinancialAnalysis,
		Title:         title,
		Description:   task,
		Role:          financeRole,
		FieldsHeading: "Financial Details",
		Task:          task,
		Schema:        schema,
		Shape:         entity.ShapeText,
		NewRecord:     newRecord,
		Rules: []string{
			"Be specific: use dollar amounts and percentages where possible.",
			"Phrase recommendations with words like \"recommend\" or \"should\", and concrete steps as actions to implement.",
		},
	}
}

func newFinancialQuery() entity.Record { return &entity.FinancialQuery{} }

func financeTemplates() []*Template {
	return []*Template{
		financeTemplate(entity.QueryExpenseAnalysis, "Expense Analysis",
			"Analyze the expense data above and provide insights.",
			"1. Spending pattern analysis\n2. Cost optimization opportunities\n3. Budget allocation recommendations\n4. Expense forecasting insights",
			newFinancialQuery),
		financeTemplate(entity.QueryBudgetPlanning, "Budget Planning",
			"Help plan a budget based on the startup data above.",
			"1. Recommended budget allocation by category\n2. Spending priorities by startup stage\n3. Budget monitoring strategies\n4. Financial milestone planning",
			newFinancialQuery),
		financeTemplate(entity.QueryFundingStrategy, "Funding Strategy",
			"Develop a funding strategy for the startup described above.",
			"1. Fundraising timeline and strategy\n2. Investor targeting recommendations\n3. Valuation considerations\n4. Funding milestone planning",
			newFinancialQuery),
		financeTemplate(entity.QueryFinancialInsights, "Financial Insights",
			"Provide general financial insights for the startup data above.",
			"1. Comprehensive financial analysis\n2. Recommendations",
			newFinancialQuery),
		financeTemplate("budget_recommendations", "Budget Recommendations",
			"As a startup financial advisor, provide detailed budget recommendations for the startup described above. Focus on practical, actionable advice for its stage and industry.",
			"1. Recommended monthly budget allocation by category (Development, Marketing, Operations, etc.)\n2. Key spending priorities for this stage\n3. Cost optimization opportunities\n4. Budget monitoring recommendations\n5. Red flags to watch for",
			func() entity.Record { return &entity.BudgetRecommendationRequest{} }),
		financeTemplate("fundraising_strategy", "Fundraising Strategy",
			"As a startup fundraising expert, analyze this startup's fundraising needs and provide strategic recommendations. Be specific about the fundraising process, typical timeframes, and success factors.",
			"1. Fundraising strategy and timeline recommendations\n2. Investor type recommendations (angels, VCs, etc.)\n3. Key metrics and milestones to highlight\n4. Potential valuation ranges and deal terms\n5. Common pitfalls to avoid\n6. Preparation checklist",
			func() entity.Record { return &entity.FundraisingStrategyRequest{} }),
		financeTemplate("financial_health_check", "Financial Health Check",
			"As a startup financial analyst, provide a comprehensive financial health assessment. Focus on actionable insights and specific recommendations for improving financial stability.",
			"1. Overall financial health assessment (scale 1-10 with explanation)\n2. Critical areas of concern\n3. Opportunities for improvement\n4. Runway extension strategies\n5. Key financial KPIs to track\n6. Immediate action recommendations",
			func() entity.Record { return &entity.FinancialHealthRequest{} }),
		financeTemplate("expense_categorization", "Expense Categorization",
			"Analyze these startup expense categories and provide optimization recommendations.",
			"1. Category-wise spending analysis\n2. Potential cost reduction opportunities\n3. Spending pattern insights\n4. Benchmark comparisons for startup expenses\n5. Recommendations for expense optimization",
			func() entity.Record { return &entity.ExpenseBreakdown{} }),
	}
}
