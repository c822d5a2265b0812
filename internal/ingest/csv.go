// Package ingest reads catalog exports into products. Only the Name and
// Description columns feed the classifier; the rest is carried through
// to storage.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/farmaon/farmaclass/internal/model"
)

// RowError records a catalog row that could not be ingested. One bad
// row must not lose the rest of the file.
type RowError struct {
	Reason string
	Line   int
}

// ReadCatalog reads a catalog CSV with the columns
// Name, Description, Price, Stock, Image_File (header names are
// case-insensitive, order-independent).
func ReadCatalog(path string) ([]model.Product, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readCatalog(f)
}

func readCatalog(r io.Reader) ([]model.Product, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated per row below

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	nameIdx, ok := columns["name"]
	if !ok {
		return nil, nil, fmt.Errorf("catalog is missing the Name column")
	}

	field := func(record []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var products []model.Product
	var rowErrors []RowError
	line := 1

	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Reason: err.Error()})
			continue
		}

		if nameIdx >= len(record) || strings.TrimSpace(record[nameIdx]) == "" {
			rowErrors = append(rowErrors, RowError{Line: line, Reason: "empty product name"})
			continue
		}

		p := model.Product{
			Name:        strings.TrimSpace(record[nameIdx]),
			Description: field(record, "description"),
			ImageFile:   field(record, "image_file"),
		}

		if raw := field(record, "price"); raw != "" {
			price, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
			if err != nil {
				rowErrors = append(rowErrors, RowError{Line: line, Reason: fmt.Sprintf("invalid price %q", raw)})
				continue
			}
			p.Price = price
		}
		if raw := field(record, "stock"); raw != "" {
			stock, err := strconv.Atoi(raw)
			if err != nil {
				rowErrors = append(rowErrors, RowError{Line: line, Reason: fmt.Sprintf("invalid stock %q", raw)})
				continue
			}
			p.StockQty = stock
		}

		p.Hash = p.GenerateHash()
		products = append(products, p)
	}

	return products, rowErrors, nil
}
