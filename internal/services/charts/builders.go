package charts

import (
	"fmt"

	"techflow-console/internal/models"
)

// Fixed brand palette for the small chart sets, indexed cyclically.
var (
	fillColors = []string{
		"rgba(99, 102, 241, 0.8)",
		"rgba(16, 185, 129, 0.8)",
		"rgba(245, 158, 11, 0.8)",
		"rgba(239, 68, 68, 0.8)",
	}
	borderColors = []string{
		"rgba(99, 102, 241, 1)",
		"rgba(16, 185, 129, 1)",
		"rgba(245, 158, 11, 1)",
		"rgba(239, 68, 68, 1)",
	}
)

// paletteFill synthesizes per-index colors for lists of arbitrary length:
// hue steps of 60 degrees at 70% saturation.
func paletteFill(i int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", i*60%360)
}

func paletteBorder(i int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 40%%)", i*60%360)
}

func brandFill(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fillColors[i%len(fillColors)]
	}
	return out
}

func brandBorder(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = borderColors[i%len(borderColors)]
	}
	return out
}

func hslFill(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = paletteFill(i)
	}
	return out
}

func hslBorder(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = paletteBorder(i)
	}
	return out
}

func revenueCharts(data models.AggregatedData) []models.ChartSpec {
	var specs []models.ChartSpec

	if len(data.Products) > 0 {
		labels := make([]string, 0, len(data.Products))
		values := make([]float64, 0, len(data.Products))
		for _, p := range data.Products {
			labels = append(labels, p.Name)
			values = append(values, p.TotalRevenue)
		}
		specs = append(specs, models.ChartSpec{
			Kind:   models.ChartBar,
			Title:  "Revenue by Product",
			Labels: labels,
			Series: []models.ChartSeries{{
				Label:            "Revenue ($)",
				Data:             values,
				BackgroundColors: brandFill(len(values)),
				BorderColors:     brandBorder(len(values)),
			}},
			Options: models.ChartOptions{BeginAtZero: true, ValuePrefix: "$"},
		})
	}

	if len(data.MonthlyRevenue) > 0 {
		labels := make([]string, 0, len(data.MonthlyRevenue))
		values := make([]float64, 0, len(data.MonthlyRevenue))
		for _, m := range data.MonthlyRevenue {
			labels = append(labels, m.Month)
			values = append(values, m.Revenue)
		}
		specs = append(specs, models.ChartSpec{
			Kind:   models.ChartLine,
			Title:  "Revenue Growth Trend",
			Labels: labels,
			Series: []models.ChartSeries{{
				Label:            "Monthly Revenue ($)",
				Data:             values,
				BackgroundColors: []string{"rgba(99, 102, 241, 0.1)"},
				BorderColors:     []string{"rgba(99, 102, 241, 1)"},
				Fill:             true,
				Tension:          0.4,
			}},
			Options: models.ChartOptions{BeginAtZero: true, ValuePrefix: "$"},
		})
	}

	return specs
}

func customerCharts(data models.AggregatedData) []models.ChartSpec {
	var specs []models.ChartSpec

	if len(data.Segments) > 0 {
		labels := make([]string, 0, len(data.Segments))
		values := make([]float64, 0, len(data.Segments))
		for _, seg := range data.Segments {
			labels = append(labels, seg.Segment)
			values = append(values, float64(seg.CustomerCount))
		}
		specs = append(specs, models.ChartSpec{
			Kind:   models.ChartDoughnut,
			Title:  "Customer Distribution by Segment",
			Labels: labels,
			Series: []models.ChartSeries{{
				Data:             values,
				BackgroundColors: brandFill(len(values)),
				BorderColors:     brandBorder(len(values)),
			}},
			Options: models.ChartOptions{LegendPosition: "bottom"},
		})
	}

	if len(data.MonthlyRevenue) > 0 {
		labels := make([]string, 0, len(data.MonthlyRevenue))
		values := make([]float64, 0, len(data.MonthlyRevenue))
		for _, m := range data.MonthlyRevenue {
			labels = append(labels, m.Month)
			values = append(values, float64(m.Customers))
		}
		specs = append(specs, models.ChartSpec{
			Kind:   models.ChartLine,
			Title:  "Customer Growth Trend",
			Labels: labels,
			Series: []models.ChartSeries{{
				Label:            "Total Customers",
				Data:             values,
				BackgroundColors: []string{"rgba(16, 185, 129, 0.1)"},
				BorderColors:     []string{"rgba(16, 185, 129, 1)"},
				Fill:             true,
				Tension:          0.4,
			}},
			Options: models.ChartOptions{BeginAtZero: true},
		})
	}

	return specs
}

// Growth and churn bars are colored by threshold so healthy, watch and
// at-risk products are distinguishable at a glance.
func growthColor(rate float64, border bool) string {
	alpha := "0.8"
	if border {
		alpha = "1"
	}
	switch {
	case rate > 20:
		return "rgba(16, 185, 129, " + alpha + ")"
	case rate > 10:
		return "rgba(245, 158, 11, " + alpha + ")"
	default:
		return "rgba(239, 68, 68, " + alpha + ")"
	}
}

func churnColor(rate float64, border bool) string {
	alpha := "0.8"
	if border {
		alpha = "1"
	}
	switch {
	case rate < 3:
		return "rgba(16, 185, 129, " + alpha + ")"
	case rate < 5:
		return "rgba(245, 158, 11, " + alpha + ")"
	default:
		return "rgba(239, 68, 68, " + alpha + ")"
	}
}

func productCharts(data models.AggregatedData) []models.ChartSpec {
	if len(data.Products) == 0 {
		return nil
	}

	labels := make([]string, 0, len(data.Products))
	growth := make([]float64, 0, len(data.Products))
	churn := make([]float64, 0, len(data.Products))
	growthFill := make([]string, 0, len(data.Products))
	growthBorder := make([]string, 0, len(data.Products))
	churnFill := make([]string, 0, len(data.Products))
	churnBorder := make([]string, 0, len(data.Products))

	for _, p := range data.Products {
		labels = append(labels, p.Name)
		growth = append(growth, p.GrowthRate)
		churn = append(churn, p.ChurnRate)
		growthFill = append(growthFill, growthColor(p.GrowthRate, false))
		growthBorder = append(growthBorder, growthColor(p.GrowthRate, true))
		churnFill = append(churnFill, churnColor(p.ChurnRate, false))
		churnBorder = append(churnBorder, churnColor(p.ChurnRate, true))
	}

	return []models.ChartSpec{
		{
			Kind:   models.ChartBar,
			Title:  "Product Growth Rates",
			Labels: labels,
			Series: []models.ChartSeries{{
				Label:            "Growth Rate (%)",
				Data:             growth,
				BackgroundColors: growthFill,
				BorderColors:     growthBorder,
			}},
			Options: models.ChartOptions{BeginAtZero: true, ValueSuffix: "%"},
		},
		{
			Kind:   models.ChartBar,
			Title:  "Product Churn Rates",
			Labels: labels,
			Series: []models.ChartSeries{{
				Label:            "Churn Rate (%)",
				Data:             churn,
				BackgroundColors: churnFill,
				BorderColors:     churnBorder,
			}},
			Options: models.ChartOptions{BeginAtZero: true, ValueSuffix: "%"},
		},
	}
}

func geographicCharts(data models.AggregatedData) []models.ChartSpec {
	if len(data.Geography) == 0 {
		return nil
	}

	labels := make([]string, 0, len(data.Geography))
	revenue := make([]float64, 0, len(data.Geography))
	share := make([]float64, 0, len(data.Geography))
	for _, g := range data.Geography {
		labels = append(labels, g.CountryName)
		revenue = append(revenue, g.Revenue)
		share = append(share, g.Percentage)
	}

	n := len(labels)
	return []models.ChartSpec{
		{
			Kind:   models.ChartBar,
			Title:  "Revenue by Country",
			Labels: labels,
			Series: []models.ChartSeries{{
				Label:            "Revenue ($)",
				Data:             revenue,
				BackgroundColors: hslFill(n),
				BorderColors:     hslBorder(n),
			}},
			Options: models.ChartOptions{BeginAtZero: true, ValuePrefix: "$"},
		},
		{
			Kind:   models.ChartPie,
			Title:  "Geographic Revenue Distribution",
			Labels: labels,
			Series: []models.ChartSeries{{
				Data:             share,
				BackgroundColors: hslFill(n),
				BorderColors:     hslBorder(n),
			}},
			Options: models.ChartOptions{LegendPosition: "bottom", ValueSuffix: "%"},
		},
	}
}

func transactionCharts(data models.AggregatedData) []models.ChartSpec {
	if len(data.Transactions) == 0 {
		return nil
	}

	// Group by status at call time; order follows first appearance so the
	// output is deterministic for a given dataset.
	counts := make(map[string]int)
	var order []string
	for _, tx := range data.Transactions {
		if _, seen := counts[tx.Status]; !seen {
			order = append(order, tx.Status)
		}
		counts[tx.Status]++
	}

	values := make([]float64, 0, len(order))
	for _, status := range order {
		values = append(values, float64(counts[status]))
	}

	return []models.ChartSpec{{
		Kind:   models.ChartDoughnut,
		Title:  "Transaction Status Distribution",
		Labels: order,
		Series: []models.ChartSeries{{
			Data:             values,
			BackgroundColors: brandFill(len(values)),
			BorderColors:     brandBorder(len(values)),
		}},
		Options: models.ChartOptions{LegendPosition: "bottom"},
	}}
}
