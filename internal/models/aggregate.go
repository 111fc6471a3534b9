package models

// RevenueInsights summarizes the revenue domain for prompts and fallbacks.
type RevenueInsights struct {
	TotalRevenue float64            `json:"total_revenue"`
	GrowthRate   float64            `json:"growth_rate"`
	TopProducts  []Product          `json:"top_products"`
	TopCountries []GeographicBucket `json:"top_countries"`
	MRR          float64            `json:"mrr"`
	ARR          float64            `json:"arr"`
}

type CustomerInsights struct {
	TotalCustomers int               `json:"total_customers"`
	GrowthRate     float64           `json:"growth_rate"`
	ConversionRate float64           `json:"conversion_rate"`
	ChurnRate      float64           `json:"churn_rate"`
	Segments       []CustomerSegment `json:"segments"`
	HighRiskCount  int               `json:"high_risk_count"`
}

type ProductInsights struct {
	TotalProducts      int       `json:"total_products"`
	TopPerforming      []Product `json:"top_performing"`
	FastestGrowing     []Product `json:"fastest_growing"`
	TotalSubscriptions int       `json:"total_subscriptions"`
}

type GeographicInsights struct {
	TotalCountries int                `json:"total_countries"`
	TopCountries   []GeographicBucket `json:"top_countries"`
	Distribution   []GeographicBucket `json:"geographic_distribution"`
}

// AggregatedData is the in-memory join of every entity collection plus the
// precomputed per-domain summaries. It is passed wholesale to both the chart
// selector and the AI query service, so a missing section is an explicit
// empty field rather than an untyped lookup miss.
type AggregatedData struct {
	Overview       BusinessMetrics       `json:"overview"`
	Products       []Product             `json:"products"`
	Customers      []Customer            `json:"customers"`
	Transactions   []Transaction         `json:"transactions"`
	Geography      []GeographicBucket    `json:"geography"`
	MonthlyRevenue []MonthlyRevenuePoint `json:"monthly_revenue"`
	Segments       []CustomerSegment     `json:"customer_segments"`
	PaymentMethods []PaymentMethodShare  `json:"payment_methods"`

	Revenue      RevenueInsights    `json:"revenue_insights"`
	CustomerView CustomerInsights   `json:"customer_insights"`
	ProductView  ProductInsights    `json:"product_insights"`
	GeoView      GeographicInsights `json:"geographic_insights"`
}
