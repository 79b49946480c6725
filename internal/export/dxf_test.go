package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/CabCut/internal/model"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.dxf")

	err := ExportDXF(path, buildLabelsTestParts())
	if err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("DXF file is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read DXF file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "side_panel") {
		t.Error("expected a layer named after the part")
	}
	if !strings.Contains(content, "LINE") {
		t.Error("expected LINE entities in the drawing")
	}
}

func TestExportDXF_SkipsDegenerateParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.dxf")

	parts := []model.Part{
		{Name: "flat", Width: 0, Height: 72, Qty: 1},
		model.NewPart("panel", 40, 30, 1),
	}

	err := ExportDXF(path, parts)
	if err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read DXF file: %v", err)
	}
	if strings.Contains(string(data), "flat") {
		t.Error("degenerate part should not produce a layer")
	}
}

func TestExportDXF_AllDegenerate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nothing.dxf")

	parts := []model.Part{
		{Name: "a", Width: 0, Height: 10, Qty: 1},
		{Name: "b", Width: 10, Height: -5, Qty: 2},
	}

	err := ExportDXF(path, parts)
	if err == nil {
		t.Fatal("expected error when nothing can be drawn, got nil")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be written when nothing can be drawn")
	}
}

func TestExportDXF_RepeatedPartNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repeat.dxf")

	parts := []model.Part{
		model.NewPart("shelf", 27, 76.4, 2),
		model.NewPart("side_panel", 30, 72, 2),
		model.NewPart("shelf", 27, 40, 1),
	}

	if err := ExportDXF(path, parts); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("DXF file is empty")
	}
}
