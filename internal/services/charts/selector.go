// Package charts maps free-text analytics questions to chart specifications
// by keyword topic matching over the aggregated dataset.
package charts

import (
	"strings"

	"techflow-console/internal/models"
)

// topic pairs a keyword list with its chart set generator. Topics are tested
// in the order below and each topic at most once per question; the same
// fixed priority order is documented in the AI service's fallback matcher,
// which classifies independently and may word things differently.
type topic struct {
	name     string
	keywords []string
	generate func(models.AggregatedData) []models.ChartSpec
}

var topics = []topic{
	{"revenue", []string{"revenue", "sales"}, revenueCharts},
	{"customer", []string{"customer", "user"}, customerCharts},
	{"product", []string{"product", "plan"}, productCharts},
	{"geographic", []string{"geographic", "country", "location"}, geographicCharts},
	{"transaction", []string{"transaction", "payment"}, transactionCharts},
}

// Selector turns a question into an ordered sequence of chart specs.
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

// Select lower-cases the question, tests each topic's keywords in priority
// order and accumulates the chart sets of every matching topic. A question
// matching no topic (including the empty question) yields the default
// revenue + customer set.
func (s *Selector) Select(question string, data models.AggregatedData) []models.ChartSpec {
	lower := strings.ToLower(question)

	var specs []models.ChartSpec
	for _, t := range topics {
		if containsAny(lower, t.keywords) {
			specs = append(specs, t.generate(data)...)
		}
	}

	if len(specs) == 0 {
		specs = append(revenueCharts(data), customerCharts(data)...)
	}
	return specs
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
