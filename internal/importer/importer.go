// Package importer provides CSV and Excel import functionality for batch
// cabinet unit lists. It supports automatic delimiter detection, flexible
// column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/CabCut/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Specs    []model.UnitSpec
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Type         int
	Width        int
	Height       int
	Depth        int
	Qty          int
	Shelves      int
	Doors        int
	Drawers      int
	DrawerHeight int
	DoorType     int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"type":          {"type", "unit", "unit type", "unit_type", "cabinet", "cabinet type", "topology"},
	"width":         {"width", "w", "width_cm", "width (cm)"},
	"height":        {"height", "h", "height_cm", "height (cm)"},
	"depth":         {"depth", "d", "depth_cm", "depth (cm)"},
	"qty":           {"qty", "quantity", "count", "num", "amount", "pcs", "units"},
	"shelves":       {"shelves", "shelf", "shelf count", "shelf_count", "num shelves"},
	"doors":         {"doors", "door", "door count", "door_count", "num doors"},
	"drawers":       {"drawers", "drawer", "drawer count", "drawer_count", "num drawers"},
	"drawer_height": {"drawer height", "drawer_height", "drawer h", "drawer height cm"},
	"door_type":     {"door type", "door_type", "hinge", "opening"},
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
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
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

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Type:         -1,
		Width:        -1,
		Height:       -1,
		Depth:        -1,
		Qty:          -1,
		Shelves:      -1,
		Doors:        -1,
		Drawers:      -1,
		DrawerHeight: -1,
		DoorType:     -1,
	}

	assign := func(target *int, idx int) {
		if *target == -1 {
			*target = idx
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "type":
						assign(&mapping.Type, i)
					case "width":
						assign(&mapping.Width, i)
					case "height":
						assign(&mapping.Height, i)
					case "depth":
						assign(&mapping.Depth, i)
					case "qty":
						assign(&mapping.Qty, i)
					case "shelves":
						assign(&mapping.Shelves, i)
					case "doors":
						assign(&mapping.Doors, i)
					case "drawers":
						assign(&mapping.Drawers, i)
					case "drawer_height":
						assign(&mapping.DrawerHeight, i)
					case "door_type":
						assign(&mapping.DoorType, i)
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping:
		// Type, Width, Height, Depth, Shelves, Doors, Drawers
		return ColumnMapping{
			Type:         0,
			Width:        1,
			Height:       2,
			Depth:        3,
			Shelves:      4,
			Doors:        5,
			Drawers:      6,
			Qty:          -1,
			DrawerHeight: -1,
			DoorType:     -1,
		}, false
	}

	return mapping, true
}

// parseDoorType converts a door-type string to a model.DoorType value.
// It returns the value and a boolean indicating whether the string was recognized.
func parseDoorType(s string) (model.DoorType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hinged", "hinge", "swing", "":
		return model.DoorHinged, true
	case "flip", "flip-up", "flip_up", "lift":
		return model.DoorFlip, true
	default:
		return model.DoorHinged, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a UnitSpec from a row using the given column mapping.
// Returns the spec, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (model.UnitSpec, string, string) {
	typeStr := getCell(row, mapping.Type)
	if typeStr == "" {
		return model.UnitSpec{}, fmt.Sprintf("%s: Missing unit type", rowLabel), ""
	}
	unitType := model.UnitType(strings.ToLower(typeStr))
	if !unitType.Valid() {
		return model.UnitSpec{}, fmt.Sprintf("%s: Unknown unit type '%s'", rowLabel, typeStr), ""
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.UnitSpec{}, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.UnitSpec{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.UnitSpec{}, fmt.Sprintf("%s: Missing height value", rowLabel), ""
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return model.UnitSpec{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
	}

	if width <= 0 || height <= 0 {
		return model.UnitSpec{}, fmt.Sprintf("%s: Width and height must be positive", rowLabel), ""
	}

	spec := model.UnitSpec{
		Type:   unitType,
		Width:  width,
		Height: height,
	}

	var warnings []string
	parseFloat := func(idx int, field string, target *float64) {
		s := getCell(row, idx)
		if s == "" {
			return
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: Invalid %s '%s', ignored", rowLabel, field, s))
			return
		}
		*target = v
	}
	parseInt := func(idx int, field string, target *int) {
		s := getCell(row, idx)
		if s == "" {
			return
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: Invalid %s '%s', ignored", rowLabel, field, s))
			return
		}
		*target = v
	}

	parseFloat(mapping.Depth, "depth", &spec.Depth)
	parseFloat(mapping.DrawerHeight, "drawer height", &spec.DrawerHeight)
	parseInt(mapping.Qty, "quantity", &spec.Qty)
	parseInt(mapping.Shelves, "shelf count", &spec.ShelfCount)
	parseInt(mapping.Doors, "door count", &spec.DoorCount)
	parseInt(mapping.Drawers, "drawer count", &spec.DrawerCount)

	doorTypeStr := getCell(row, mapping.DoorType)
	if doorTypeStr != "" {
		doorType, ok := parseDoorType(doorTypeStr)
		if ok {
			spec.DoorType = doorType
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown door type '%s', defaulting to hinged", rowLabel, doorTypeStr))
		}
	}

	return spec, "", strings.Join(warnings, "; ")
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

// ImportCSV imports unit specs from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
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

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports unit specs from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
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

// ImportExcel imports unit specs from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
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
// It detects headers, maps columns, and parses each row into unit specs.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.Type == -1 {
			missing = append(missing, "Type")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if second column is numeric (positional mapping)
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// Second column is not numeric - might be an unrecognized header
				// Skip it as a header but use positional mapping
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		spec, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Specs = append(result.Specs, spec)
	}

	return result
}
