package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"storefront.GO/catalog"
	catalogEntity "storefront.GO/model/entity/catalog"
	productRepo "storefront.GO/model/repository/product"
)

// ImportOptions configures a product import run.
type ImportOptions struct {
	BatchSize int
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows   int
	Created     int
	Updated     int
	Skipped     int
	Warnings    []string
	ProcessTime time.Duration
	DBTime      time.Duration
	TotalTime   time.Duration
}

// Columns understood by ImportProducts. Only id is required in the header.
var knownColumns = map[string]bool{
	"id": true, "name": true, "brand": true, "category": true,
	"price": true, "discount_price": true, "discount_percent": true,
	"rating_value": true, "rating_count": true, "is_hot": true,
	"colors": true, "image_url": true, "position": true,
}

// ColorSeparator splits the colors column ("black|white").
const ColorSeparator = "|"

// ImportProducts reads CSV data from r and upserts products into the products table. Rows that
// would make an invalid catalog entry are skipped with a warning.
func ImportProducts(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	startTotal := time.Now()

	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		colIndex[h] = i
	}
	if _, ok := colIndex["id"]; !ok {
		return nil, fmt.Errorf("CSV must contain an 'id' column")
	}

	result := &ImportResult{}
	for _, h := range headers {
		if !knownColumns[h] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("column %q: unknown, skipping", h))
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}
	result.TotalRows = len(rows)

	startProcess := time.Now()
	products := make([]catalogEntity.Product, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for ri, row := range rows {
		line := ri + 2
		p, err := parseRow(row, colIndex)
		if err != nil {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if seen[p.ID] {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: duplicate id %s", line, p.ID))
			continue
		}
		seen[p.ID] = true
		position := ri
		if v, ok := field(row, colIndex, "position"); ok && v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				position = n
			}
		}
		products = append(products, catalog.ToEntity(p, position))
	}
	result.ProcessTime = time.Since(startProcess)

	repo := productRepo.NewProductRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate products: %w", err)
	}

	startDB := time.Now()
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	existing := make(map[string]bool, len(ids))
	for i := 0; i < len(ids); i += opts.BatchSize {
		end := min(i+opts.BatchSize, len(ids))
		chunk, err := repo.ExistingIDs(ids[i:end])
		if err != nil {
			return nil, fmt.Errorf("lookup ids: %w", err)
		}
		for id := range chunk {
			existing[id] = true
		}
	}
	if err := repo.UpsertBatch(products, opts.BatchSize); err != nil {
		return nil, fmt.Errorf("upsert products: %w", err)
	}
	result.DBTime = time.Since(startDB)

	result.Updated = len(existing)
	result.Created = len(products) - result.Updated
	result.TotalTime = time.Since(startTotal)
	return result, nil
}

func field(row []string, colIndex map[string]int, name string) (string, bool) {
	i, ok := colIndex[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// parseRow builds a product from one CSV row and validates it the way the catalog does.
func parseRow(row []string, colIndex map[string]int) (catalog.Product, error) {
	get := func(name string) string {
		v, _ := field(row, colIndex, name)
		return v
	}

	p := catalog.Product{
		ID:       get("id"),
		Name:     get("name"),
		Brand:    get("brand"),
		Category: get("category"),
		ImageURL: get("image_url"),
	}
	if p.ID == "" {
		return p, fmt.Errorf("empty id")
	}

	var err error
	if p.Price, err = strconv.ParseFloat(get("price"), 64); err != nil || p.Price <= 0 {
		return p, fmt.Errorf("product %s: invalid price %q", p.ID, get("price"))
	}
	if v := get("discount_price"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d <= 0 {
			return p, fmt.Errorf("product %s: invalid discount_price %q", p.ID, v)
		}
		p.DiscountPrice = &d
	}
	if v := get("discount_percent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			return p, fmt.Errorf("product %s: invalid discount_percent %q", p.ID, v)
		}
		p.DiscountPercent = &n
	}
	if v := get("rating_value"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 || r > 5 {
			return p, fmt.Errorf("product %s: invalid rating_value %q", p.ID, v)
		}
		p.RatingValue = r
	}
	if v := get("rating_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, fmt.Errorf("product %s: invalid rating_count %q", p.ID, v)
		}
		p.RatingCount = n
	}
	if v := get("is_hot"); v != "" {
		if p.IsHot, err = strconv.ParseBool(v); err != nil {
			return p, fmt.Errorf("product %s: invalid is_hot %q", p.ID, v)
		}
	}
	for _, c := range strings.Split(get("colors"), ColorSeparator) {
		if c = strings.TrimSpace(c); c != "" {
			p.Colors = append(p.Colors, c)
		}
	}
	if len(p.Colors) == 0 {
		return p, fmt.Errorf("product %s: no colors", p.ID)
	}
	return p, nil
}
