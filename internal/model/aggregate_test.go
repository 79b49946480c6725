package model

import (
	"math"
	"testing"
)

func usageTestParts() []Part {
	// 100x120 cm twice = 2.4 m² exactly, one default sheet
	return []Part{NewPart("panel", 100, 120, 2)}
}

func TestCalculateMaterialUsageDefaults(t *testing.T) {
	cfg := DefaultConfig()
	usage := CalculateMaterialUsage(usageTestParts(), cfg)

	if usage.TotalAreaM2 != 2.4 {
		t.Errorf("expected total area 2.4, got %v", usage.TotalAreaM2)
	}
	if usage.PlywoodSheets != 1.0 {
		t.Errorf("expected 1 sheet, got %v", usage.PlywoodSheets)
	}
	expectedBand := 2 * (100.0 + 120.0) * 2 / 100
	if math.Abs(usage.EdgeBandM-expectedBand) > 0.01 {
		t.Errorf("expected edge band %v, got %v", expectedBand, usage.EdgeBandM)
	}
}

func TestCalculateMaterialUsageSheetOverride(t *testing.T) {
	cfg := DefaultConfig()
	m := cfg.Materials[MaterialPlywoodSheet]
	m.SheetSizeM2 = 1.2
	cfg.Materials[MaterialPlywoodSheet] = m

	usage := CalculateMaterialUsage(usageTestParts(), cfg)
	if usage.PlywoodSheets != 2.0 {
		t.Errorf("material sheet size should override the global one, got %v sheets", usage.PlywoodSheets)
	}
}

func TestCalculateMaterialUsageNoSheetSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SheetSizeM2 = 0
	cfg.Materials = map[string]MaterialPrice{}

	usage := CalculateMaterialUsage(usageTestParts(), cfg)
	if usage.PlywoodSheets != 0 {
		t.Errorf("expected 0 sheets without a sheet size, got %v", usage.PlywoodSheets)
	}
	if usage.TotalAreaM2 != 2.4 {
		t.Errorf("area should still be reported, got %v", usage.TotalAreaM2)
	}
}

func TestEstimateCostAllPriced(t *testing.T) {
	cfg := DefaultConfig()
	usage := CalculateMaterialUsage(usageTestParts(), cfg)
	est := EstimateCost(usage, cfg)

	if est.Breakdown["plywood"] != 400.0 {
		t.Errorf("expected plywood cost 400, got %v", est.Breakdown["plywood"])
	}
	if est.Breakdown["edge_band"] != 176.0 {
		t.Errorf("expected edge band cost 176, got %v", est.Breakdown["edge_band"])
	}
	if est.Total != 576.0 {
		t.Errorf("expected total 576, got %v", est.Total)
	}
}

func TestEstimateCostMissingBandPrice(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.Materials, MaterialEdgeBandPerMeter)

	usage := CalculateMaterialUsage(usageTestParts(), cfg)
	est := EstimateCost(usage, cfg)

	if _, ok := est.Breakdown["edge_band"]; ok {
		t.Error("unpriced banding must not produce a cost line")
	}
	if est.Total != est.Breakdown["plywood"] {
		t.Errorf("total %v should equal the plywood line %v", est.Total, est.Breakdown["plywood"])
	}
}

func TestEstimateCostTotalRoundsOnce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials = map[string]MaterialPrice{
		MaterialPlywoodSheet:     {PricePerSheet: 2},
		MaterialEdgeBandPerMeter: {PricePerMeter: 0.2},
	}

	// Each line computes to 1.114 and rounds to 1.11; the total must come
	// from the unrounded sum 2.228
	usage := MaterialUsage{PlywoodSheets: 0.557, EdgeBandM: 5.57}
	est := EstimateCost(usage, cfg)

	if est.Breakdown["plywood"] != 1.11 || est.Breakdown["edge_band"] != 1.11 {
		t.Errorf("expected 1.11 per line, got %+v", est.Breakdown)
	}
	if est.Total != 2.23 {
		t.Errorf("expected total 2.23 from the unrounded sum, got %v", est.Total)
	}
}

func TestEstimateCostNothingPriced(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Materials = map[string]MaterialPrice{}

	usage := CalculateMaterialUsage(usageTestParts(), cfg)
	est := EstimateCost(usage, cfg)

	if len(est.Breakdown) != 0 {
		t.Errorf("expected empty breakdown, got %v", est.Breakdown)
	}
	if est.Total != 0 {
		t.Errorf("expected total 0, got %v", est.Total)
	}
}
