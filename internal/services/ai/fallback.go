package ai

import (
	"fmt"
	"strings"

	"techflow-console/internal/models"
	"techflow-console/internal/store"
)

// fallbackAnalysis is the deterministic offline substitute for the
// completion API. It classifies the question with its own keyword pass —
// same priority order as the chart selector's topics, but an independent
// implementation whose wording may diverge — and renders canned narrative
// around the live dataset numbers.
func fallbackAnalysis(question string, data models.AggregatedData) string {
	lower := strings.ToLower(question)

	switch {
	case strings.Contains(lower, "revenue") || strings.Contains(lower, "sales"):
		return revenueAnalysis(data)
	case strings.Contains(lower, "customer") || strings.Contains(lower, "segment"):
		return customerAnalysis(data)
	case strings.Contains(lower, "product") || strings.Contains(lower, "plan"):
		return productAnalysis(data)
	case strings.Contains(lower, "geographic") || strings.Contains(lower, "country") || strings.Contains(lower, "location"):
		return geographicAnalysis(data)
	default:
		return overviewAnalysis(data)
	}
}

func revenueAnalysis(data models.AggregatedData) string {
	var b strings.Builder
	b.WriteString("Revenue Growth Analysis\n\n")
	b.WriteString(fmt.Sprintf("Total revenue stands at %s with %s growth versus last quarter. MRR is %s and the annual run rate is %s.\n\n",
		store.FormatCurrency(data.Revenue.TotalRevenue),
		store.FormatPercentage(data.Revenue.GrowthRate),
		store.FormatCurrency(data.Revenue.MRR),
		store.FormatCurrency(data.Revenue.ARR)))

	b.WriteString("Top revenue drivers:\n")
	for _, p := range data.Revenue.TopProducts {
		b.WriteString(fmt.Sprintf("- %s: %s (%s growth)\n",
			p.Name, store.FormatCurrency(p.TotalRevenue), store.FormatPercentage(p.GrowthRate)))
	}

	if len(data.Revenue.TopCountries) > 0 {
		b.WriteString("\nGeographic performance:\n")
		for _, c := range data.Revenue.TopCountries {
			b.WriteString(fmt.Sprintf("- %s: %s (%s of total)\n",
				c.CountryName, store.FormatCurrency(c.Revenue), store.FormatPercentage(c.Percentage)))
		}
	}

	b.WriteString("\nRecommendation: keep investment behind the fastest-growing plans and watch for concentration in the top market.")
	return b.String()
}

func customerAnalysis(data models.AggregatedData) string {
	var b strings.Builder
	b.WriteString("Customer Segment Analysis\n\n")
	b.WriteString(fmt.Sprintf("The customer base counts %d accounts, growing %s month over month with a %s conversion rate and %s churn.\n\n",
		data.CustomerView.TotalCustomers,
		store.FormatPercentage(data.CustomerView.GrowthRate),
		store.FormatPercentage(data.CustomerView.ConversionRate),
		store.FormatPercentage(data.CustomerView.ChurnRate)))

	if len(data.CustomerView.Segments) > 0 {
		b.WriteString("Segment performance:\n")
		for _, s := range data.CustomerView.Segments {
			b.WriteString(fmt.Sprintf("- %s: %d customers, %s revenue, %s churn\n",
				s.Segment, s.CustomerCount, store.FormatCurrency(s.Revenue), store.FormatPercentage(s.ChurnRate)))
		}
	}

	b.WriteString(fmt.Sprintf("\n%d accounts are flagged high risk and warrant retention follow-up.", data.CustomerView.HighRiskCount))
	return b.String()
}

func productAnalysis(data models.AggregatedData) string {
	var b strings.Builder
	b.WriteString("Product Performance Analysis\n\n")
	b.WriteString(fmt.Sprintf("The portfolio holds %d products with %d active subscriptions in total.\n\n",
		data.ProductView.TotalProducts, data.ProductView.TotalSubscriptions))

	b.WriteString("Revenue leaders:\n")
	for _, p := range data.ProductView.TopPerforming {
		b.WriteString(fmt.Sprintf("- %s: %s revenue, %d subscriptions, %s growth, %s churn\n",
			p.Name, store.FormatCurrency(p.TotalRevenue), p.ActiveSubscriptions,
			store.FormatPercentage(p.GrowthRate), store.FormatPercentage(p.ChurnRate)))
	}

	if len(data.ProductView.FastestGrowing) > 0 {
		fastest := data.ProductView.FastestGrowing[0]
		b.WriteString(fmt.Sprintf("\n%s is the growth leader at %s; consider expanding its feature set.",
			fastest.Name, store.FormatPercentage(fastest.GrowthRate)))
	}
	return b.String()
}

func geographicAnalysis(data models.AggregatedData) string {
	var b strings.Builder
	b.WriteString("Geographic Revenue Analysis\n\n")
	b.WriteString(fmt.Sprintf("Revenue is spread across %d markets.\n\n", data.GeoView.TotalCountries))

	b.WriteString("Market performance:\n")
	for _, g := range data.GeoView.TopCountries {
		b.WriteString(fmt.Sprintf("- %s: %s (%s of total), %d customers, %s average order value, %s growth\n",
			g.CountryName, store.FormatCurrency(g.Revenue), store.FormatPercentage(g.Percentage),
			g.Customers, store.FormatCurrency(g.AvgOrderValue), store.FormatPercentage(g.GrowthRate)))
	}

	b.WriteString("\nRecommendation: the primary market provides stability; the fastest-growing secondary market is the best expansion candidate.")
	return b.String()
}

func overviewAnalysis(data models.AggregatedData) string {
	o := data.Overview
	var b strings.Builder
	b.WriteString("Business Overview Analysis\n\n")
	b.WriteString(fmt.Sprintf("Total revenue: %s (%s growth). Customer base: %d (%s growth). Conversion rate: %s. MRR: %s. Churn: %s.\n\n",
		store.FormatCurrency(o.TotalRevenue), store.FormatPercentage(o.RevenueGrowth),
		o.TotalCustomers, store.FormatPercentage(o.CustomerGrowth),
		store.FormatPercentage(o.ConversionRate), store.FormatCurrency(o.MRR),
		store.FormatPercentage(o.ChurnRate)))
	b.WriteString("Ask about revenue drivers, customer segments, product performance or geographic trends for a deeper breakdown.")
	return b.String()
}
