package formatter

import (
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
)

// slideDef binds a slide key to the fields that fill it.
type slideDef struct {
	key         string
	title       string
	bodyField   string
	listField   string
	defaultBody string
}

var pitchDeckSlides = []slideDef{
	{key: "title"},
	{key: "problem", title: "Problem", bodyField: "description", listField: "pain_points", defaultBody: "Define the problem you are solving"},
	{key: "solution", title: "Solution", bodyField: "description", listField: "features", defaultBody: "Our innovative solution"},
	{key: "market", title: "Market Opportunity", bodyField: "market_size", listField: "details", defaultBody: "Large and growing market"},
	{key: "business_model", title: "Business Model", bodyField: "revenue_model", listField: "revenue_streams", defaultBody: "How we make money"},
	{key: "competition", title: "Competition", bodyField: "competitive_advantage", listField: "competitors", defaultBody: "Our competitive advantage"},
	{key: "team", title: "Team", bodyField: "overview", listField: "members", defaultBody: "Meet our amazing team"},
	{key: "financials", title: "Financial Projections", bodyField: "overview", listField: "metrics", defaultBody: "Financial highlights and projections"},
	{key: "funding", title: "Funding Request", bodyField: "amount", listField: "use_of_funds", defaultBody: "Investment opportunity"},
	{key: "next_steps", title: "Next Steps", bodyField: "overview", listField: "steps", defaultBody: "Our roadmap forward"},
}

var businessPlanSlides = []slideDef{
	{key: "title"},
	{key: "executive_summary", title: "Executive Summary", bodyField: "summary", listField: "key_points", defaultBody: "Executive summary of the business"},
	{key: "company_description", title: "Company Description", bodyField: "description", listField: "details", defaultBody: "About our company"},
	{key: "market_analysis", title: "Market Analysis", bodyField: "analysis", listField: "points", defaultBody: "Comprehensive market analysis"},
	{key: "organization", title: "Organization & Management", bodyField: "structure", listField: "details", defaultBody: "Organizational structure"},
	{key: "service_description", title: "Service or Product Line", bodyField: "description", listField: "details", defaultBody: "Our products and services"},
	{key: "marketing_sales", title: "Marketing & Sales", bodyField: "strategy", listField: "details", defaultBody: "Marketing and sales strategy"},
	{key: "funding_request", title: "Funding Request", bodyField: "request", listField: "details", defaultBody: "Funding requirements"},
	{key: "financial_projections", title: "Financial Projections", bodyField: "projections", listField: "details", defaultBody: "Financial forecasts"},
	{key: "appendix", title: "Appendix", bodyField: "content", listField: "items", defaultBody: "Additional information"},
}

const (
	defaultDeckTitle    = "Startup Presentation"
	defaultDeckSubtitle = "Building the Future"
)

func slideDefs(kind entity.ContentKind) []slideDef {
	if kind == entity.KindBusinessPlan {
		return businessPlanSlides
	}
	return pitchDeckSlides
}

// SlideKeys lists the slide identifiers of a deck kind in order.
func SlideKeys(kind entity.ContentKind) []string {
	defs := slideDefs(kind)
	keys := make([]string, len(defs))
	for i, d := range defs {
		keys[i] = d.key
	}
	return keys
}

// Plan maps content onto the fixed slide list of kind. Every slide is
// emitted; missing fields fall back to canned text.
func Plan(kind entity.ContentKind, content *entity.StructuredContent) []entity.SlideSpec {
	defs := slideDefs(kind)
	slides := make([]entity.SlideSpec, 0, len(defs))
	for _, d := range defs {
		section := content.Section(d.key)
		if d.key == "title" {
			slides = append(slides, titleSlide(section))
			continue
		}
		slides = append(slides, entity.SlideSpec{
			Key:     d.key,
			Title:   d.title,
			Body:    firstText(section, d.defaultBody, d.bodyField),
			Bullets: listOf(section[d.listField]),
		})
	}
	return slides
}

func titleSlide(section map[string]any) entity.SlideSpec {
	s := entity.SlideSpec{
		Key:      "title",
		Title:    firstText(section, defaultDeckTitle, "company_name", "title"),
		Subtitle: firstText(section, defaultDeckSubtitle, "tagline", "subtitle"),
	}
	if founders := firstText(section, "", "founders"); founders != "" {
		s.Body = founders
	}
	return s
}

func firstText(section map[string]any, fallback string, fields ...string) string {
	for _, f := range fields {
		if t := strings.TrimSpace(textOf(section[f])); t != "" {
			return t
		}
	}
	return fallback
}

func listOf(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if t := strings.TrimSpace(textOf(item)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
