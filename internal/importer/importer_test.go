package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/CabCut/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Type,Width,Height,Depth\nground,80,72,30\nwall,80,60,25\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Type;Width;Height;Depth\nground;80;72;30\nwall;80;60;25\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Type\tWidth\tHeight\tDepth\nground\t80\t72\t30\nwall\t80\t60\t25\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Type|Width|Height|Depth\nground|80|72|30\nwall|80|60|25\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Type", "Width", "Height", "Depth", "Shelves", "Doors", "Drawers"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Type != 0 {
		t.Errorf("expected Type at 0, got %d", mapping.Type)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Depth != 3 {
		t.Errorf("expected Depth at 3, got %d", mapping.Depth)
	}
	if mapping.Shelves != 4 {
		t.Errorf("expected Shelves at 4, got %d", mapping.Shelves)
	}
	if mapping.Doors != 5 {
		t.Errorf("expected Doors at 5, got %d", mapping.Doors)
	}
	if mapping.Drawers != 6 {
		t.Errorf("expected Drawers at 6, got %d", mapping.Drawers)
	}
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	row := []string{"UNIT TYPE", "WIDTH", "HEIGHT", "QTY"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Type != 0 {
		t.Errorf("expected Type at 0, got %d", mapping.Type)
	}
	if mapping.Qty != 3 {
		t.Errorf("expected Qty at 3, got %d", mapping.Qty)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	row := []string{"Cabinet", "W", "H", "D", "Shelf Count", "Door Count"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Type != 0 {
		t.Errorf("expected Type at 0, got %d", mapping.Type)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Shelves != 4 {
		t.Errorf("expected Shelves at 4, got %d", mapping.Shelves)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"ground", "80", "72", "30"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("numeric row should not be a header")
	}
	if mapping.Type != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Depth != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}
	return path
}

func TestImportCSV_WithHeaders(t *testing.T) {
	path := writeTestCSV(t, "Type,Width,Height,Depth,Shelves,Doors\nground,80,72,30,2,2\nwall,80,60,25,1,2\n")

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(result.Specs))
	}

	first := result.Specs[0]
	if first.Type != model.UnitGround {
		t.Errorf("expected ground, got %s", first.Type)
	}
	if first.Width != 80 || first.Height != 72 || first.Depth != 30 {
		t.Errorf("unexpected dimensions: %+v", first)
	}
	if first.ShelfCount != 2 || first.DoorCount != 2 {
		t.Errorf("unexpected counts: %+v", first)
	}
}

func TestImportCSV_SemicolonDelimiter(t *testing.T) {
	path := writeTestCSV(t, "Type;Width;Height;Depth\nground;80;72;30\n")

	result := ImportCSV(path)
	if len(result.Specs) != 1 {
		t.Fatalf("expected 1 spec, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Error("expected a delimiter warning")
	}
}

func TestImportCSV_UnknownTypeReported(t *testing.T) {
	path := writeTestCSV(t, "Type,Width,Height\nspaceship,80,72\nground,80,72\n")

	result := ImportCSV(path)
	if len(result.Specs) != 1 {
		t.Fatalf("valid rows should still import, got %d specs", len(result.Specs))
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "spaceship") {
		t.Errorf("expected an unknown-type error, got %v", result.Errors)
	}
}

func TestImportCSV_InvalidDimensions(t *testing.T) {
	path := writeTestCSV(t, "Type,Width,Height\nground,abc,72\nground,-5,72\nground,80,\n")

	result := ImportCSV(path)
	if len(result.Specs) != 0 {
		t.Errorf("expected no specs, got %d", len(result.Specs))
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 errors, got %v", result.Errors)
	}
}

func TestImportCSV_DoorTypeParsing(t *testing.T) {
	path := writeTestCSV(t, "Type,Width,Height,Door Type\nwall,80,60,flip\nwall,80,60,sideways\n")

	result := ImportCSV(path)
	if len(result.Specs) != 2 {
		t.Fatalf("expected 2 specs, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
	if result.Specs[0].DoorType != model.DoorFlip {
		t.Errorf("expected flip door, got %s", result.Specs[0].DoorType)
	}
	warned := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "sideways") {
			warned = true
		}
	}
	if !warned {
		t.Error("expected a warning for the unknown door type")
	}
}

func TestImportCSV_MissingRequiredColumns(t *testing.T) {
	path := writeTestCSV(t, "Type,Depth\nground,30\n")

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected an error about missing columns")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTestCSV(t, "")

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected an error for empty file")
	}
}

func TestImportCSV_SkipsEmptyRows(t *testing.T) {
	path := writeTestCSV(t, "Type,Width,Height\nground,80,72\n,,\n\nwall,80,60\n")

	result := ImportCSV(path)
	if len(result.Specs) != 2 {
		t.Errorf("expected 2 specs, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
}

func TestImportCSVFromReader(t *testing.T) {
	reader := strings.NewReader("Type,Width,Height,Drawers,Drawer Height\ndrawers,60,72,3,14\n")

	result := ImportCSVFromReader(reader, ',')
	if len(result.Specs) != 1 {
		t.Fatalf("expected 1 spec, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
	spec := result.Specs[0]
	if spec.Type != model.UnitDrawers || spec.DrawerCount != 3 || spec.DrawerHeight != 14 {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "units.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Type", "Width", "Height", "Depth", "Shelves"},
		{"ground", 80, 72, 30, 2},
		{"tall_doors", 60, 220, 35, 4},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(result.Specs))
	}
	if result.Specs[0].Type != model.UnitGround {
		t.Errorf("expected ground, got %s", result.Specs[0].Type)
	}
	if result.Specs[1].Type != model.UnitTallDoors {
		t.Errorf("expected tall_doors, got %s", result.Specs[1].Type)
	}
	if result.Specs[1].ShelfCount != 4 {
		t.Errorf("expected 4 shelves, got %d", result.Specs[1].ShelfCount)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"ground", 80, 72, 30},
		{"wall", 80, 60, 25},
	})

	result := ImportExcel(path)
	if len(result.Specs) != 2 {
		t.Fatalf("expected 2 specs from positional mapping, got %d (errors: %v)", len(result.Specs), result.Errors)
	}
	if result.Specs[1].Type != model.UnitWall || result.Specs[1].Depth != 25 {
		t.Errorf("unexpected spec: %+v", result.Specs[1])
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected an error for missing file")
	}
}
