package model

// TotalArea sums the already qty-scaled part areas in square meters.
func TotalArea(parts []Part) float64 {
	var total float64
	for _, p := range parts {
		total += p.AreaM2
	}
	return total
}

// TotalEdgeBand sums the already qty-scaled edge band lengths in meters.
func TotalEdgeBand(parts []Part) float64 {
	var total float64
	for _, p := range parts {
		total += p.EdgeBandM
	}
	return total
}

// MaterialUsage is the sheet-count estimate derived from a part list.
type MaterialUsage struct {
	PlywoodSheets float64 `json:"plywood_sheets"`
	EdgeBandM     float64 `json:"edge_band_m"`
	TotalAreaM2   float64 `json:"total_area_m2"`
}

// CalculateMaterialUsage converts total area into a sheet count using
// the sheet size from the plywood material entry when configured, the
// global sheet size otherwise.
func CalculateMaterialUsage(parts []Part, cfg Config) MaterialUsage {
	area := TotalArea(parts)
	band := TotalEdgeBand(parts)

	sheetSize := cfg.SheetSizeM2
	if m, ok := cfg.Materials[MaterialPlywoodSheet]; ok && m.SheetSizeM2 > 0 {
		sheetSize = m.SheetSizeM2
	}
	var sheets float64
	if sheetSize > 0 {
		sheets = area / sheetSize
	}
	return MaterialUsage{
		PlywoodSheets: Round2(sheets),
		EdgeBandM:     Round2(band),
		TotalAreaM2:   Round4(area),
	}
}

// CostEstimate is the priced material usage. Breakdown lines appear
// only for materials that have a configured price.
type CostEstimate struct {
	Breakdown map[string]float64 `json:"breakdown"`
	Total     float64            `json:"total"`
}

// EstimateCost prices the material usage. A missing or zero price
// silently omits that cost line.
func EstimateCost(usage MaterialUsage, cfg Config) CostEstimate {
	est := CostEstimate{Breakdown: map[string]float64{}}
	var total float64

	if m, ok := cfg.Materials[MaterialPlywoodSheet]; ok && m.PricePerSheet > 0 {
		c := usage.PlywoodSheets * m.PricePerSheet
		est.Breakdown["plywood"] = Round2(c)
		total += c
	}
	if m, ok := cfg.Materials[MaterialEdgeBandPerMeter]; ok && m.PricePerMeter > 0 {
		c := usage.EdgeBandM * m.PricePerMeter
		est.Breakdown["edge_band"] = Round2(c)
		total += c
	}
	est.Total = Round2(total)
	return est
}
