package store

import "techflow-console/internal/models"

// Insight builders are pure compositions of the accessor operations: they
// read the dataset and synthesize per-domain summaries, so they are safe to
// call repeatedly from handlers, the chart selector and the AI service.

func (s *Store) RevenueInsights() models.RevenueInsights {
	overview := s.Overview()
	return models.RevenueInsights{
		TotalRevenue: overview.TotalRevenue,
		GrowthRate:   overview.RevenueGrowth,
		TopProducts:  s.TopProductsByRevenue(3),
		TopCountries: s.TopCountriesByRevenue(3),
		MRR:          overview.MRR,
		ARR:          overview.ARR,
	}
}

func (s *Store) CustomerInsights() models.CustomerInsights {
	overview := s.Overview()
	return models.CustomerInsights{
		TotalCustomers: overview.TotalCustomers,
		GrowthRate:     overview.CustomerGrowth,
		ConversionRate: overview.ConversionRate,
		ChurnRate:      overview.ChurnRate,
		Segments:       s.Segments(),
		HighRiskCount:  len(s.HighRiskCustomers()),
	}
}

func (s *Store) ProductInsights() models.ProductInsights {
	products := s.Products()
	total := 0
	for _, p := range products {
		total += p.ActiveSubscriptions
	}
	return models.ProductInsights{
		TotalProducts:      len(products),
		TopPerforming:      s.TopProductsByRevenue(defaultTopN),
		FastestGrowing:     s.TopProductsByGrowth(defaultTopN),
		TotalSubscriptions: total,
	}
}

func (s *Store) GeographicInsights() models.GeographicInsights {
	geo := s.Geography()
	return models.GeographicInsights{
		TotalCountries: len(geo),
		TopCountries:   s.TopCountriesByRevenue(defaultTopN),
		Distribution:   geo,
	}
}

// Aggregate assembles the full dataset join handed to the chart selector and
// the AI query service.
func (s *Store) Aggregate() models.AggregatedData {
	return models.AggregatedData{
		Overview:       s.Overview(),
		Products:       s.Products(),
		Customers:      s.Customers(),
		Transactions:   s.Transactions(),
		Geography:      s.Geography(),
		MonthlyRevenue: s.MonthlyRevenue(),
		Segments:       s.Segments(),
		PaymentMethods: s.PaymentMethods(),
		Revenue:        s.RevenueInsights(),
		CustomerView:   s.CustomerInsights(),
		ProductView:    s.ProductInsights(),
		GeoView:        s.GeographicInsights(),
	}
}
