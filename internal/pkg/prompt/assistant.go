package prompt

import (
	"github.com/futig/docgen-backend/internal/entity"
)

const (
	AssistantAsk     = "assistant_ask"
	AssistantExplain = "assistant_explain"
)

func assistantTemplates() []*Template {
	return []*Template{
		{
			Name:          AssistantAsk,
			Kind:          entity.KindAssistantAnswer,
			Title:         "Startup Advisor",
			Description:   "Answers startup questions using the knowledge base",
			Role:          "You are a startup advisor with expertise in entrepreneurship, business development, and the startup ecosystem.",
			FieldsHeading: "Question Details",
			Task:          "Answer the question using the relevant knowledge and your own expertise.",
			Schema:        "1. A direct answer to the question\n2. Actionable next steps for the founder\n3. Caveats or risks worth checking",
			Shape:         entity.ShapeText,
			NewRecord:     func() entity.Record { return &entity.AskPrompt{} },
		},
		{
			Name:          AssistantExplain,
			Kind:          entity.KindAssistantAnswer,
			Title:         "Clause Explainer",
			Description:   "Explains legal or business clauses in plain language",
			Role:          "You are a legal expert specializing in startup and business law.",
			FieldsHeading: "Clause Details",
			Task: "Explain the clause at the requested level of detail in language suitable for entrepreneurs " +
				"without a legal background.",
			Schema: "1. What the clause means in plain language\n2. Potential implications for the company and founders\n3. Points to consider or negotiate",
			Shape:  entity.ShapeText,
			NewRecord: func() entity.Record {
				return &entity.ExplainPrompt{}
			},
		},
	}
}
