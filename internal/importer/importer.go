// Package importer reads product catalogs from CSV and Excel sheets and room
// outlines from DXF drawings. Catalog import supports automatic delimiter
// detection, flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a catalog import.
type ImportResult struct {
	Products []model.Product
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	ID       int
	Name     int
	Category int
	Kind     int
	Doors    int
	Drawers  int
	Width    int
	Height   int
	Depth    int
}

// positionalMapping is used when the sheet has no recognizable header:
// ID, Name, Category, Kind, Doors, Drawers, Width, Height, Depth.
var positionalMapping = ColumnMapping{
	ID:       0,
	Name:     1,
	Category: 2,
	Kind:     3,
	Doors:    4,
	Drawers:  5,
	Width:    6,
	Height:   7,
	Depth:    8,
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"id":       {"id", "product id", "sku", "code", "article"},
	"name":     {"name", "label", "description", "desc", "title", "product"},
	"category": {"category", "cat", "cabinet type", "group"},
	"kind":     {"kind", "variant", "style", "subtype"},
	"doors":    {"doors", "door count", "n doors"},
	"drawers":  {"drawers", "drawer count", "n drawers"},
	"width":    {"width", "w", "x"},
	"height":   {"height", "h", "y"},
	"depth":    {"depth", "d", "z"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only delimiters that split the first row count.
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		ID:       -1,
		Name:     -1,
		Category: -1,
		Kind:     -1,
		Doors:    -1,
		Drawers:  -1,
		Width:    -1,
		Height:   -1,
		Depth:    -1,
	}
	slots := map[string]*int{
		"id":       &mapping.ID,
		"name":     &mapping.Name,
		"category": &mapping.Category,
		"kind":     &mapping.Kind,
		"doors":    &mapping.Doors,
		"drawers":  &mapping.Drawers,
		"width":    &mapping.Width,
		"height":   &mapping.Height,
		"depth":    &mapping.Depth,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// slug turns a product name into an id: lowercase, runs of other
// characters collapsed to a single dash.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func parseLength(row []string, idx int, rowLabel, column string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, column)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, column, s)
	}
	if !model.ValidLength(v) {
		return 0, fmt.Sprintf("%s: %s must be positive", rowLabel, column)
	}
	return v, ""
}

func parseCount(row []string, idx int, rowLabel, column string) (int, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, ""
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, column, s)
	}
	if n < 0 {
		return 0, fmt.Sprintf("%s: %s cannot be negative", rowLabel, column)
	}
	return n, ""
}

// parseRow extracts a Product from a row using the given column mapping.
// Returns the product, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, productCount int) (model.Product, string, string) {
	catStr := getCell(row, mapping.Category)
	if catStr == "" {
		return model.Product{}, fmt.Sprintf("%s: Missing category value", rowLabel), ""
	}
	category, err := model.ParseCategory(catStr)
	if err != nil {
		return model.Product{}, fmt.Sprintf("%s: Invalid category '%s'", rowLabel, catStr), ""
	}

	var dims model.Dimensions
	var msg string
	if dims.Width, msg = parseLength(row, mapping.Width, rowLabel, "width"); msg != "" {
		return model.Product{}, msg, ""
	}
	if dims.Height, msg = parseLength(row, mapping.Height, rowLabel, "height"); msg != "" {
		return model.Product{}, msg, ""
	}
	if dims.Depth, msg = parseLength(row, mapping.Depth, rowLabel, "depth"); msg != "" {
		return model.Product{}, msg, ""
	}

	doors, msg := parseCount(row, mapping.Doors, rowLabel, "doors")
	if msg != "" {
		return model.Product{}, msg, ""
	}
	drawers, msg := parseCount(row, mapping.Drawers, rowLabel, "drawers")
	if msg != "" {
		return model.Product{}, msg, ""
	}

	name := getCell(row, mapping.Name)
	id := getCell(row, mapping.ID)
	if id == "" {
		id = slug(name)
	}
	if id == "" {
		id = fmt.Sprintf("product-%d", productCount+1)
	}
	if name == "" {
		name = id
	}

	product := model.Product{
		ID:             id,
		Name:           name,
		Category:       category,
		Kind:           model.Standard{},
		DefaultDoors:   doors,
		DefaultDrawers: drawers,
		Defaults:       dims,
	}

	var warning string
	if kindStr := getCell(row, mapping.Kind); kindStr != "" {
		kind, err := model.ParseKindString(kindStr)
		if err != nil {
			warning = fmt.Sprintf("%s: Unknown kind '%s', defaulting to standard", rowLabel, kindStr)
		} else {
			product.Kind = kind
		}
	}

	return product, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCatalogCSV imports products from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCatalogCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCatalogCSVFromReader imports products from a CSV reader with a
// known delimiter.
func ImportCatalogCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportCatalogExcel imports products from the first sheet of an Excel
// workbook and auto-detects the column mapping from headers.
func ImportCatalogExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into a product.
// Rows whose id repeats an earlier row are rejected.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Category == -1 {
			missing = append(missing, "Category")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Depth")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if _, err := strconv.ParseFloat(getCell(rows[0], mapping.Width), 64); err != nil {
		// Unrecognized header over positional data.
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	seen := make(map[string]string)
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		product, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Products))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if first, dup := seen[product.ID]; dup {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: Duplicate id '%s' (first used on %s)", rowLabel, product.ID, first))
			continue
		}
		seen[product.ID] = rowLabel
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Products = append(result.Products, product)
	}

	return result
}
