package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sneakerstore/internal/domain"
)

// ProductWriter is the subset of the product repository the importer needs.
type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog exports with a header row of
// name,description,price_cents,category,image_url,stock and upserts
// each product. Unknown columns are ignored.
type CSVImporter struct {
	reader   *csv.Reader
	products ProductWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, products: products}
}

// Run parses the CSV and upserts products, returning how many were written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing required column: name")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}
		if p == nil {
			continue
		}
		if _, err := i.products.Upsert(ctx, *p); err != nil {
			return imported, fmt.Errorf("upsert %q: %w", p.Name, err)
		}
		imported++
	}
	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	if name == "" {
		return nil, nil // blank row
	}

	p := domain.Product{
		Name:        name,
		Description: field("description"),
		Category:    field("category"),
		ImageURL:    field("image_url"),
	}
	if p.Category == "" {
		return nil, errors.New("missing category")
	}

	if v := field("price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil || cents < 0 {
			return nil, fmt.Errorf("bad price_cents %q", v)
		}
		p.PriceCents = cents
	}
	if v := field("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("bad stock %q", v)
		}
		p.Stock = stock
	}
	return &p, nil
}
