package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"techflow-console/internal/models"
)

// overviewFile bundles the headline metrics with the segment and payment
// method breakdowns, matching the shape of data/overview.json.
type overviewFile struct {
	Metrics        models.BusinessMetrics      `json:"metrics"`
	Segments       []models.CustomerSegment    `json:"customer_segments"`
	PaymentMethods []models.PaymentMethodShare `json:"payment_methods"`
}

// Load reads every data file from dir concurrently and replaces the store's
// dataset. It is called once at process start; the dataset is read-only from
// then on.
func (s *Store) Load(ctx context.Context, dir string) error {
	start := time.Now()

	var (
		overview overviewFile
		ds       Dataset
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, "overview.json"), &overview) })
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, "customers.json"), &ds.Customers) })
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, "transactions.json"), &ds.Transactions) })
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, "products.json"), &ds.Products) })
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, "geography.json"), &ds.Geography) })
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, "monthly_revenue.json"), &ds.MonthlyRevenue) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	ds.Overview = overview.Metrics
	ds.Segments = overview.Segments
	ds.PaymentMethods = overview.PaymentMethods

	s.data = ds
	s.loaded = time.Now()

	s.logger.Info("dataset loaded",
		"dir", dir,
		"customers", len(ds.Customers),
		"transactions", len(ds.Transactions),
		"products", len(ds.Products),
		"duration", time.Since(start))

	return nil
}

func readJSON(ctx context.Context, path string, v any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
