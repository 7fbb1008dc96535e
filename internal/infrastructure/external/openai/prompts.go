package openai

import (
	"fmt"

	"github.com/seguro/quotes-service/internal/ai"
)

const systemPrompt = "You are an insurance risk assessment AI. Reply ONLY with a valid compact JSON object, no explanation, no markdown, no code block. The JSON must match this schema: { \"riskScore\": 0-100, \"reasons\": [string], \"summary\": string }"

func buildAssessmentPrompt(input ai.RiskInput) string {
	return fmt.Sprintf(`Assess the risk of this insurance application.
Data:
%s

Respond with ONLY the JSON object described by the schema.`, input.PromptString())
}
