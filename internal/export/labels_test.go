package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CabCut/internal/model"
)

func buildLabelsTestParts() []model.Part {
	return []model.Part{
		model.NewPart("side_panel", 30, 72, 2),
		model.NewPartEdges("shelf", 27, 76.4, 2, model.EdgeDistribution{Top: true, Left: true, Right: true}),
		model.NewPartEdges("back_panel", 78.6, 70.6, 1, model.EdgeDistribution{}),
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, "unit_A1B2C3D4", buildLabelsTestParts())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportLabels(path, "", nil)
	if err == nil {
		t.Fatal("expected error for empty part list, got nil")
	}
}

func TestExportLabels_ZeroQtyParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zero_qty.pdf")

	parts := []model.Part{{Name: "ghost", Width: 30, Height: 72, Qty: 0}}
	err := ExportLabels(path, "", parts)
	if err == nil {
		t.Fatal("expected error when no pieces produce labels, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos("unit_A1B2C3D4", buildLabelsTestParts())

	// 2 sides + 2 shelves + 1 back = 5 physical pieces
	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}

	if labels[0].PartName != "side_panel" {
		t.Errorf("expected first label to be 'side_panel', got %q", labels[0].PartName)
	}
	if labels[0].Piece != 1 || labels[0].OfQty != 2 {
		t.Errorf("expected piece 1/2, got %d/%d", labels[0].Piece, labels[0].OfQty)
	}
	if labels[1].Piece != 2 {
		t.Errorf("expected second label to be piece 2, got %d", labels[1].Piece)
	}
	if labels[0].UnitID != "unit_A1B2C3D4" {
		t.Errorf("unit id not carried: got %q", labels[0].UnitID)
	}

	// Shelf is banded on three edges; back of the shelf stays raw
	if labels[2].Edges != "T+L+R" {
		t.Errorf("expected shelf edges T+L+R, got %q", labels[2].Edges)
	}

	// Unbanded back panel
	if labels[4].PartName != "back_panel" || labels[4].Edges != "-" {
		t.Errorf("unexpected back panel label: %+v", labels[4])
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	info := LabelInfo{
		UnitID:   "unit_12345678",
		PartName: "base",
		Width:    30,
		Height:   76.4,
		Piece:    1,
		OfQty:    1,
		Edges:    "T+B+L+R",
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if decoded.PartName != info.PartName {
		t.Errorf("part name mismatch: got %q, want %q", decoded.PartName, info.PartName)
	}
	if decoded.Width != info.Width || decoded.Height != info.Height {
		t.Errorf("dimensions mismatch: got %.1fx%.1f, want %.1fx%.1f",
			decoded.Width, decoded.Height, info.Width, info.Height)
	}
	if decoded.Piece != info.Piece || decoded.OfQty != info.OfQty {
		t.Error("piece info mismatch")
	}
}

func TestExportLabels_ManyPieces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 pieces forces a second label page (30 labels per sheet)
	parts := make([]model.Part, 7)
	for i := range parts {
		parts[i] = model.NewPart("panel_"+string(rune('A'+i)), 40+float64(i*5), 30, 5)
	}

	err := ExportLabels(path, "unit_MANYPART", parts)
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
