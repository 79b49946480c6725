package model

import (
	"math"
	"testing"
)

func TestNewPartDerivedValues(t *testing.T) {
	p := NewPart("base", 30, 76.4, 1)

	if p.AreaM2 != 0.2292 {
		t.Errorf("expected area 0.2292, got %v", p.AreaM2)
	}
	expectedBand := (2*30.0 + 2*76.4) / 100
	if math.Abs(p.EdgeBandM-expectedBand) > 1e-9 {
		t.Errorf("expected edge band %v, got %v", expectedBand, p.EdgeBandM)
	}
	if !p.Edges.Top || !p.Edges.Bottom || !p.Edges.Left || !p.Edges.Right {
		t.Error("NewPart should band all four edges")
	}
}

func TestNewPartQtyScaling(t *testing.T) {
	single := NewPart("shelf", 27, 76.4, 1)
	double := NewPart("shelf", 27, 76.4, 2)

	if math.Abs(double.AreaM2-2*single.AreaM2) > 1e-4 {
		t.Errorf("qty=2 area %v should be twice qty=1 area %v", double.AreaM2, single.AreaM2)
	}
	if math.Abs(double.EdgeBandM-2*single.EdgeBandM) > 1e-9 {
		t.Errorf("qty=2 band %v should be twice qty=1 band %v", double.EdgeBandM, single.EdgeBandM)
	}
}

func TestBandShelfLeavesBackRaw(t *testing.T) {
	e := BandShelf()
	if e.Bottom {
		t.Error("shelf back edge must stay raw")
	}
	if e.EdgeCount() != 3 {
		t.Errorf("expected 3 banded edges, got %d", e.EdgeCount())
	}

	// top runs along the width, the two raw-free sides along the height
	got := e.LinearLength(27, 76.4)
	want := 27 + 2*76.4
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected linear length %v, got %v", want, got)
	}
}

func TestBandNonePart(t *testing.T) {
	p := NewPartEdges("back_panel", 78.6, 70.6, 1, BandNone())
	if p.EdgeBandM != 0 {
		t.Errorf("unbanded part should have zero edge band, got %v", p.EdgeBandM)
	}
	if p.AreaM2 == 0 {
		t.Error("unbanded part still has an area")
	}
}

func TestEdgeDistributionString(t *testing.T) {
	cases := []struct {
		edges EdgeDistribution
		want  string
	}{
		{BandAll(), "T+B+L+R"},
		{BandNone(), "-"},
		{BandShelf(), "T+L+R"},
		{EdgeDistribution{Bottom: true}, "B"},
	}
	for _, c := range cases {
		if got := c.edges.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestRecalculateAfterResize(t *testing.T) {
	p := NewPart("top", 50, 60, 1)
	p.Width = 49.8
	p.Height = 59.8
	p.Recalculate()

	if p.AreaM2 != Round4(49.8*59.8/10000) {
		t.Errorf("area not refreshed, got %v", p.AreaM2)
	}
}

func TestRoundingHelpers(t *testing.T) {
	if Round2(3.0461) != 3.05 {
		t.Errorf("Round2(3.0461) = %v", Round2(3.0461))
	}
	if Round3(3.0484) != 3.048 {
		t.Errorf("Round3(3.0484) = %v", Round3(3.0484))
	}
	if Round4(0.229162) != 0.2292 {
		t.Errorf("Round4(0.229162) = %v", Round4(0.229162))
	}
}
