package ai

import (
	"encoding/json"
	"fmt"

	"techflow-console/internal/models"
)

const systemInstruction = "You are a senior business analyst. Provide clear, actionable insights from data analysis. " +
	"Focus on business impact, trends, and recommendations. Use professional language with specific metrics and " +
	"percentages when available. If the question is unclear or not related to business analytics, politely ask for clarification."

const businessContext = `BUSINESS CONTEXT - TechFlow Solutions (B2B SaaS):

COMPANY OVERVIEW:
- Industry: B2B SaaS
- Founded: 2020
- Current Period: 2024-Q3

The current dataset below carries the authoritative figures for revenue,
customers, products, geography and transactions.`

// BuildPrompt concatenates the fixed business narrative, a JSON dump of the
// aggregated dataset and the analysis instructions, terminated by the literal
// question. Rebuilt fresh on every call.
func BuildPrompt(question string, data models.AggregatedData) string {
	dump, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		dump = []byte("{}")
	}

	return fmt.Sprintf(`%s

CURRENT BUSINESS DATA:
%s

INSTRUCTIONS:
1. Analyze the user's question about the business data
2. Provide insights, trends, and actionable recommendations
3. Focus on business impact and strategic implications
4. Use specific metrics and percentages from the data
5. Identify key patterns, opportunities, and risks
6. Suggest next steps or areas for further investigation
7. Be concise but comprehensive in your analysis

USER QUESTION: %q

ANALYSIS:`, businessContext, dump, question)
}
