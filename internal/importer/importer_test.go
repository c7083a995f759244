package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sneakerstore/internal/domain"
)

type stubWriter struct {
	upserts []domain.Product
	err     error
}

func (s *stubWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.upserts = append(s.upserts, p)
	return &p, nil
}

func TestRunImportsRows(t *testing.T) {
	csv := strings.Join([]string{
		"name,description,price_cents,category,image_url,stock",
		"Nike Air Max Pulse,Premium cushioning,1399500,Running,/assets/airmaxpulse.jpg,50",
		"Nike Football Elite,Own the field,1099500,Football,/assets/nike-football.jpg,40",
	}, "\n")

	w := &stubWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), w)
	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 || len(w.upserts) != 2 {
		t.Fatalf("expected 2 imports, got count=%d upserts=%d", count, len(w.upserts))
	}

	first := w.upserts[0]
	if first.Name != "Nike Air Max Pulse" || first.PriceCents != 1399500 || first.Stock != 50 {
		t.Fatalf("unexpected product: %+v", first)
	}
	if first.Category != "Running" || first.ImageURL != "/assets/airmaxpulse.jpg" {
		t.Fatalf("unexpected product: %+v", first)
	}
}

func TestRunSkipsBlankRows(t *testing.T) {
	csv := "name,category,price_cents\n,,\nNike React Infinity,Running,1499500\n"
	w := &stubWriter{}
	count, err := NewCSVImporter(strings.NewReader(csv), w).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 import, got %d", count)
	}
}

func TestRunHeaderCaseInsensitive(t *testing.T) {
	csv := "Name,Category,Price_Cents\nNike ZoomX Vaporfly,Running,1899500\n"
	w := &stubWriter{}
	count, err := NewCSVImporter(strings.NewReader(csv), w).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 || w.upserts[0].PriceCents != 1899500 {
		t.Fatalf("unexpected import: count=%d %+v", count, w.upserts)
	}
}

func TestRunMissingNameColumn(t *testing.T) {
	csv := "category,price_cents\nRunning,100\n"
	_, err := NewCSVImporter(strings.NewReader(csv), &stubWriter{}).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "name") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestRunBadPrice(t *testing.T) {
	csv := "name,category,price_cents\nNike Basketball Pro,Basketball,not-a-number\n"
	_, err := NewCSVImporter(strings.NewReader(csv), &stubWriter{}).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "price_cents") {
		t.Fatalf("expected price error, got %v", err)
	}
}

func TestRunMissingCategory(t *testing.T) {
	csv := "name,price_cents\nNike Basketball Pro,1199500\n"
	_, err := NewCSVImporter(strings.NewReader(csv), &stubWriter{}).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "category") {
		t.Fatalf("expected category error, got %v", err)
	}
}

func TestRunUpsertError(t *testing.T) {
	csv := "name,category,price_cents\nNike Basketball Pro,Basketball,1199500\n"
	w := &stubWriter{err: errors.New("db down")}
	count, err := NewCSVImporter(strings.NewReader(csv), w).Run(context.Background())
	if err == nil {
		t.Fatal("expected upsert error")
	}
	if count != 0 {
		t.Fatalf("expected no completed imports, got %d", count)
	}
}
