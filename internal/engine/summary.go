package engine

import "github.com/piwi3910/CabCut/internal/model"

// SummaryTotals aggregates a cut list for display and export.
type SummaryTotals struct {
	TotalAreaM2    float64 `json:"total_area_m2"`
	TotalEdgeBandM float64 `json:"total_edge_band_m"`
	TotalParts     int     `json:"total_parts"`
	TotalQty       int     `json:"total_qty"`
}

// Summary is the full calculation result for one unit, with the
// internal counter folded in when requested.
type Summary struct {
	Items         []model.Part        `json:"items"`
	Totals        SummaryTotals       `json:"totals"`
	MaterialUsage model.MaterialUsage `json:"material_usage"`
	Costs         map[string]float64  `json:"costs"`
}

// BuildSummary runs the unit calculation, appends the internal counter
// parts when counter is non-nil, and prices the combined material
// usage. Cost lines appear only for priced materials; total_cost is
// always present.
func BuildSummary(spec model.UnitSpec, counter *CounterOptions, cfg model.Config) (Summary, error) {
	parts, err := Calculate(spec, cfg)
	if err != nil {
		return Summary{}, err
	}
	if counter != nil {
		parts = append(parts, CounterParts(spec, *counter, cfg)...)
	}

	usage := model.CalculateMaterialUsage(parts, cfg)
	totalQty := 0
	for _, p := range parts {
		totalQty += p.Qty
	}

	costs := map[string]float64{}
	var total float64
	if m, ok := cfg.Materials[model.MaterialPlywoodSheet]; ok && m.PricePerSheet > 0 {
		c := usage.PlywoodSheets * m.PricePerSheet
		costs["material_cost"] = model.Round2(c)
		total += c
	}
	if m, ok := cfg.Materials[model.MaterialEdgeBandPerMeter]; ok && m.PricePerMeter > 0 {
		c := usage.EdgeBandM * m.PricePerMeter
		costs["edge_band_cost"] = model.Round2(c)
		total += c
	}
	costs["total_cost"] = model.Round2(total)

	return Summary{
		Items: parts,
		Totals: SummaryTotals{
			TotalAreaM2:    model.Round4(usage.TotalAreaM2),
			TotalEdgeBandM: model.Round2(usage.EdgeBandM),
			TotalParts:     len(parts),
			TotalQty:       totalQty,
		},
		MaterialUsage: usage,
		Costs:         costs,
	}, nil
}
