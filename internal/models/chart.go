package models

// Chart kinds understood by the rendering surface. Anything else falls back
// to a bar chart at the rendering boundary.
const (
	ChartBar      = "bar"
	ChartLine     = "line"
	ChartDoughnut = "doughnut"
	ChartPie      = "pie"
)

// ChartSeries is one labelled run of values within a chart.
type ChartSeries struct {
	Label            string    `json:"label,omitempty"`
	Data             []float64 `json:"data"`
	BackgroundColors []string  `json:"background_colors,omitempty"`
	BorderColors     []string  `json:"border_colors,omitempty"`
	Fill             bool      `json:"fill,omitempty"`
	Tension          float64   `json:"tension,omitempty"`
}

// ChartOptions carries the rendering hints a generic chart collaborator needs.
type ChartOptions struct {
	BeginAtZero    bool   `json:"begin_at_zero,omitempty"`
	ValuePrefix    string `json:"value_prefix,omitempty"`
	ValueSuffix    string `json:"value_suffix,omitempty"`
	LegendPosition string `json:"legend_position,omitempty"`
}

// ChartSpec is self-contained: kind, title, labels, series and options are
// sufficient to draw one chart without reaching back into the dataset.
type ChartSpec struct {
	Kind    string        `json:"kind"`
	Title   string        `json:"title"`
	Labels  []string      `json:"labels"`
	Series  []ChartSeries `json:"series"`
	Options ChartOptions  `json:"options"`
}
