package models

// Risk score buckets assigned to customers.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Transaction statuses.
const (
	StatusSucceeded  = "succeeded"
	StatusProcessing = "processing"
	StatusFailed     = "failed"
)

type Customer struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Created            string  `json:"created"`
	Country            string  `json:"country"`
	Industry           string  `json:"industry"`
	CompanySize        string  `json:"company_size"`
	LifetimeValue      float64 `json:"lifetime_value"`
	TotalSpent         float64 `json:"total_spent"`
	SubscriptionStatus string  `json:"subscription_status"`
	CurrentPlan        string  `json:"current_plan"`
	RiskScore          string  `json:"risk_score"`
}

type Transaction struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	Created       string  `json:"created"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method"`
	Country       string  `json:"country"`
	ProductID     string  `json:"product_id"`
	Fee           float64 `json:"fee,omitempty"`
	Net           float64 `json:"net,omitempty"`
}

type Product struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	// TotalRevenue is maintained independently of the transaction list; the
	// two sources are never reconciled.
	TotalRevenue float64 `json:"total_revenue"`
	GrowthRate   float64 `json:"growth_rate"`
	ChurnRate    float64 `json:"churn_rate"`
}

type GeographicBucket struct {
	Country       string  `json:"country"`
	CountryName   string  `json:"country_name"`
	Revenue       float64 `json:"revenue"`
	Percentage    float64 `json:"percentage"`
	Customers     int     `json:"customers"`
	AvgOrderValue float64 `json:"avg_order_value"`
	GrowthRate    float64 `json:"growth_rate"`
}

type MonthlyRevenuePoint struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	Customers    int     `json:"customers"`
	Transactions int     `json:"transactions"`
}

type CustomerSegment struct {
	Segment       string  `json:"segment"`
	CustomerCount int     `json:"customer_count"`
	Revenue       float64 `json:"revenue"`
	ChurnRate     float64 `json:"churn_rate"`
	GrowthRate    float64 `json:"growth_rate"`
}

type PaymentMethodShare struct {
	Method     string  `json:"method"`
	Percentage float64 `json:"percentage"`
}

// BusinessMetrics is the dashboard headline summary.
type BusinessMetrics struct {
	TotalRevenue   float64 `json:"total_revenue"`
	RevenueGrowth  float64 `json:"revenue_growth"`
	TotalCustomers int     `json:"total_customers"`
	CustomerGrowth float64 `json:"customer_growth"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	ConversionRate float64 `json:"conversion_rate"`
	ChurnRate      float64 `json:"churn_rate"`
	MRR            float64 `json:"mrr"`
	ARR            float64 `json:"arr"`
}
