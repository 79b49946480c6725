package model

import (
	"math"
	"testing"
)

func TestEdgeBreakdownFullyBandedPart(t *testing.T) {
	cfg := DefaultConfig() // overlap 0.2 cm
	p := NewPart("door", 80, 72, 1)

	bp := EdgeBreakdownForPart(p, cfg, EdgeTypePVC)

	if len(bp.Edges) != 4 {
		t.Fatalf("expected 4 edge records, got %d", len(bp.Edges))
	}
	for _, e := range bp.Edges {
		if !e.HasEdge {
			t.Errorf("edge %s should be banded", e.Edge)
		}
		if e.EdgeType != EdgeTypePVC {
			t.Errorf("edge %s carries type %s", e.Edge, e.EdgeType)
		}
	}

	// 2x(80+72) plus the overlap on each of the 4 strips
	want := (2*(80.0+72.0) + 4*cfg.EdgeOverlap) / 100
	if math.Abs(bp.TotalEdgeM-want) > 1e-3 {
		t.Errorf("expected total %v m, got %v", want, bp.TotalEdgeM)
	}
}

func TestEdgeBreakdownStripLengths(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPart("door", 80, 72, 1)

	bp := EdgeBreakdownForPart(p, cfg, EdgeTypeWood)
	for _, e := range bp.Edges {
		switch e.Edge {
		case "top", "bottom":
			if e.LengthMM != (80+cfg.EdgeOverlap)*10 {
				t.Errorf("%s strip = %v mm", e.Edge, e.LengthMM)
			}
		case "left", "right":
			if e.LengthMM != (72+cfg.EdgeOverlap)*10 {
				t.Errorf("%s strip = %v mm", e.Edge, e.LengthMM)
			}
		}
	}
}

func TestEdgeBreakdownShelfOrdering(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPartEdges("shelf", 27, 76.4, 2, BandShelf())

	bp := EdgeBreakdownForPart(p, cfg, EdgeTypePVC)
	if len(bp.Edges) != 4 {
		t.Fatalf("expected 4 edge records, got %d", len(bp.Edges))
	}

	// Banded edges come first, the raw back edge last
	for i, e := range bp.Edges[:3] {
		if !e.HasEdge {
			t.Errorf("edge %d (%s) should be banded", i, e.Edge)
		}
	}
	last := bp.Edges[3]
	if last.HasEdge || last.Edge != "bottom" {
		t.Errorf("expected raw bottom edge last, got %+v", last)
	}
	if last.LengthMM != 270 {
		t.Errorf("raw edge reports the plain side length, got %v mm", last.LengthMM)
	}

	// qty scales the strip total
	want := Round3((27 + cfg.EdgeOverlap + 2*(76.4+cfg.EdgeOverlap)) / 100 * 2)
	if bp.TotalEdgeM != want {
		t.Errorf("expected total %v m, got %v", want, bp.TotalEdgeM)
	}
}

func TestEdgeBreakdownUnbandedPart(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPartEdges("back_panel", 78.6, 70.6, 1, BandNone())

	bp := EdgeBreakdownForPart(p, cfg, EdgeTypePVC)
	if bp.TotalEdgeM != 0 {
		t.Errorf("unbanded part should total 0 m, got %v", bp.TotalEdgeM)
	}
	for _, e := range bp.Edges {
		if e.HasEdge {
			t.Errorf("edge %s should be raw", e.Edge)
		}
	}
}

func TestEdgeCostGenericFallback(t *testing.T) {
	cfg := DefaultConfig() // generic edge band at 20/m, no pvc-specific entry
	parts := EdgeBreakdown([]Part{NewPart("door", 50, 50, 1)}, cfg, EdgeTypePVC)

	est := EdgeCost(parts, cfg)
	meters := TotalEdgeMeters(parts)
	if est.Breakdown["pvc"] != Round2(meters*20) {
		t.Errorf("expected pvc cost %v, got %v", Round2(meters*20), est.Breakdown["pvc"])
	}
}

func TestEdgeCostTypeSpecificPrice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials["edge_band_wood_per_meter"] = MaterialPrice{PricePerMeter: 35}

	parts := EdgeBreakdown([]Part{NewPart("door", 50, 50, 1)}, cfg, EdgeTypeWood)
	est := EdgeCost(parts, cfg)
	meters := TotalEdgeMeters(parts)
	if est.Breakdown["wood"] != Round2(meters*35) {
		t.Errorf("type-specific price should win, got %v", est.Breakdown["wood"])
	}
}

func TestEdgeCostUnpricedSpecificKeyDisablesType(t *testing.T) {
	cfg := DefaultConfig() // generic edge band at 20/m
	cfg.Materials["edge_band_pvc_per_meter"] = MaterialPrice{}

	parts := EdgeBreakdown([]Part{NewPart("door", 50, 50, 1)}, cfg, EdgeTypePVC)
	est := EdgeCost(parts, cfg)
	if _, ok := est.Breakdown["pvc"]; ok {
		t.Errorf("a present but unpriced entry must not fall back to the generic price, got %+v", est)
	}
	if est.Total != 0 {
		t.Errorf("expected total 0, got %v", est.Total)
	}
}

func TestEdgeCostUnpricedOmitted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials = map[string]MaterialPrice{}

	parts := EdgeBreakdown([]Part{NewPart("door", 50, 50, 1)}, cfg, EdgeTypePVC)
	est := EdgeCost(parts, cfg)
	if len(est.Breakdown) != 0 || est.Total != 0 {
		t.Errorf("unpriced material must be omitted, got %+v", est)
	}
}

func TestEdgeCostTotalRoundsOnce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials["edge_band_wood_per_meter"] = MaterialPrice{PricePerMeter: 0.2}
	cfg.Materials["edge_band_pvc_per_meter"] = MaterialPrice{PricePerMeter: 0.2}

	// 5.57 m at 0.2/m = 1.114 per type: each line rounds to 1.11 but the
	// total must come from the unrounded sum 2.228
	parts := []EdgeBandPart{
		{PartName: "a", Qty: 1, TotalEdgeM: 5.57, EdgeType: EdgeTypeWood},
		{PartName: "b", Qty: 1, TotalEdgeM: 5.57, EdgeType: EdgeTypePVC},
	}

	est := EdgeCost(parts, cfg)
	if est.Breakdown["wood"] != 1.11 || est.Breakdown["pvc"] != 1.11 {
		t.Errorf("expected 1.11 per line, got %+v", est.Breakdown)
	}
	if est.Total != 2.23 {
		t.Errorf("expected total 2.23 from the unrounded sum, got %v", est.Total)
	}
}
