package store

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"techflow-console/internal/models"
)

const defaultTopN = 5

// Dataset is the full set of mock business records. It is populated once at
// startup and never mutated afterwards.
type Dataset struct {
	Overview       models.BusinessMetrics      `json:"overview"`
	Customers      []models.Customer           `json:"customers"`
	Transactions   []models.Transaction        `json:"transactions"`
	Products       []models.Product            `json:"products"`
	Geography      []models.GeographicBucket   `json:"geography"`
	MonthlyRevenue []models.MonthlyRevenuePoint `json:"monthly_revenue"`
	Segments       []models.CustomerSegment    `json:"customer_segments"`
	PaymentMethods []models.PaymentMethodShare `json:"payment_methods"`
}

// Store provides read-only query and aggregation operations over the dataset.
// Every accessor fails soft: an absent record yields a zero value or an empty
// slice, never an error, so the rendering surface stays usable with partial
// data.
type Store struct {
	data   Dataset
	loaded time.Time
	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

// NewFromDataset builds a store around in-memory records. Used by tests and
// by any caller that sources the dataset itself.
func NewFromDataset(ds Dataset, logger *slog.Logger) *Store {
	s := New(logger)
	s.data = ds
	s.loaded = time.Now()
	return s
}

func (s *Store) Overview() models.BusinessMetrics { return s.data.Overview }

func (s *Store) Customers() []models.Customer { return s.data.Customers }

func (s *Store) CustomerByID(id string) (models.Customer, bool) {
	for _, c := range s.data.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *Store) CustomersByCountry(country string) []models.Customer {
	return filterCustomers(s.data.Customers, func(c models.Customer) bool {
		return strings.EqualFold(c.Country, country)
	})
}

func (s *Store) CustomersByPlan(plan string) []models.Customer {
	return filterCustomers(s.data.Customers, func(c models.Customer) bool {
		return strings.EqualFold(c.CurrentPlan, plan)
	})
}

func (s *Store) CustomersByRisk(risk string) []models.Customer {
	return filterCustomers(s.data.Customers, func(c models.Customer) bool {
		return strings.EqualFold(c.RiskScore, risk)
	})
}

func (s *Store) HighRiskCustomers() []models.Customer {
	return s.CustomersByRisk(models.RiskHigh)
}

// SearchCustomers matches the query as a case-insensitive substring of the
// customer name, email or industry.
func (s *Store) SearchCustomers(query string) []models.Customer {
	q := strings.ToLower(query)
	return filterCustomers(s.data.Customers, func(c models.Customer) bool {
		return strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Industry), q)
	})
}

func (s *Store) Transactions() []models.Transaction { return s.data.Transactions }

func (s *Store) TransactionByID(id string) (models.Transaction, bool) {
	for _, tx := range s.data.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

func (s *Store) TransactionsByStatus(status string) []models.Transaction {
	return filterTransactions(s.data.Transactions, func(tx models.Transaction) bool {
		return strings.EqualFold(tx.Status, status)
	})
}

func (s *Store) TransactionsByCustomer(customerID string) []models.Transaction {
	return filterTransactions(s.data.Transactions, func(tx models.Transaction) bool {
		return tx.CustomerID == customerID
	})
}

func (s *Store) TransactionsByDateRange(from, to time.Time) []models.Transaction {
	return filterTransactions(s.data.Transactions, func(tx models.Transaction) bool {
		created, err := time.Parse(time.RFC3339, tx.Created)
		if err != nil {
			return false
		}
		return !created.Before(from) && !created.After(to)
	})
}

func (s *Store) FailedTransactions() []models.Transaction {
	return s.TransactionsByStatus(models.StatusFailed)
}

func (s *Store) SucceededTransactions() []models.Transaction {
	return s.TransactionsByStatus(models.StatusSucceeded)
}

func (s *Store) Products() []models.Product { return s.data.Products }

func (s *Store) ProductByID(id string) (models.Product, bool) {
	for _, p := range s.data.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// TopProductsByRevenue returns the n highest-revenue products. The sort is
// stable descending, so ties keep their original insertion order.
func (s *Store) TopProductsByRevenue(n int) []models.Product {
	return topN(s.data.Products, n, func(p models.Product) float64 { return p.TotalRevenue })
}

func (s *Store) TopProductsByGrowth(n int) []models.Product {
	return topN(s.data.Products, n, func(p models.Product) float64 { return p.GrowthRate })
}

func (s *Store) Geography() []models.GeographicBucket { return s.data.Geography }

func (s *Store) TopCountriesByRevenue(n int) []models.GeographicBucket {
	return topN(s.data.Geography, n, func(g models.GeographicBucket) float64 { return g.Revenue })
}

func (s *Store) MonthlyRevenue() []models.MonthlyRevenuePoint { return s.data.MonthlyRevenue }

// RecentRevenueTrend returns the trailing n monthly points.
func (s *Store) RecentRevenueTrend(n int) []models.MonthlyRevenuePoint {
	points := s.data.MonthlyRevenue
	if n <= 0 || n >= len(points) {
		return points
	}
	return points[len(points)-n:]
}

// RevenueGrowth is the month-over-month change of the two most recent points,
// in percent. Fewer than two points yields zero.
func (s *Store) RevenueGrowth() float64 {
	points := s.data.MonthlyRevenue
	if len(points) < 2 {
		return 0
	}
	current := points[len(points)-1].Revenue
	previous := points[len(points)-2].Revenue
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func (s *Store) Segments() []models.CustomerSegment { return s.data.Segments }

func (s *Store) PaymentMethods() []models.PaymentMethodShare { return s.data.PaymentMethods }

// Stats reports dataset shape for the admin endpoint.
func (s *Store) Stats() map[string]any {
	return map[string]any{
		"loaded_at":    s.loaded,
		"customers":    len(s.data.Customers),
		"transactions": len(s.data.Transactions),
		"products":     len(s.data.Products),
		"countries":    len(s.data.Geography),
		"months":       len(s.data.MonthlyRevenue),
	}
}

func filterCustomers(in []models.Customer, keep func(models.Customer) bool) []models.Customer {
	out := make([]models.Customer, 0)
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func filterTransactions(in []models.Transaction, keep func(models.Transaction) bool) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, tx := range in {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func topN[T any](in []T, n int, value func(T) float64) []T {
	if n <= 0 {
		n = defaultTopN
	}
	out := make([]T, len(in))
	copy(out, in)
	slices.SortStableFunc(out, func(a, b T) int {
		if value(a) > value(b) {
			return -1
		}
		if value(a) < value(b) {
			return 1
		}
		return 0
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
