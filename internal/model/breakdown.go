package model

// EdgeType is the banding material applied to a part's edges.
type EdgeType string

const (
	EdgeTypeWood EdgeType = "wood"
	EdgeTypePVC  EdgeType = "pvc"
)

// edgeTypeOrder fixes the iteration order for cost grouping.
var edgeTypeOrder = []EdgeType{EdgeTypeWood, EdgeTypePVC}

// EdgeDetail is one physical edge of a part in the breakdown view.
type EdgeDetail struct {
	Edge     string   `json:"edge"` // top, bottom, left, right
	LengthMM float64  `json:"length_mm"`
	LengthM  float64  `json:"length_m"`
	EdgeType EdgeType `json:"edge_type"`
	HasEdge  bool     `json:"has_edge"`
}

// EdgeBandPart is the per-part breakdown: the four edges exploded with
// banded edges first, and the banding-strip total for the part.
type EdgeBandPart struct {
	PartName   string       `json:"part_name"`
	Qty        int          `json:"qty"`
	Edges      []EdgeDetail `json:"edges"`
	TotalEdgeM float64      `json:"total_edge_m"`
	EdgeType   EdgeType     `json:"edge_type"`
}

// EdgeBreakdownForPart explodes one part into its four edge records.
// Banded edges get the configured overlap added to the strip length;
// raw edges are reported at their plain side length.
func EdgeBreakdownForPart(p Part, cfg Config, edgeType EdgeType) EdgeBandPart {
	type side struct {
		name   string
		length float64
		banded bool
	}
	sides := []side{
		{"top", p.Width, p.Edges.Top},
		{"bottom", p.Width, p.Edges.Bottom},
		{"left", p.Height, p.Edges.Left},
		{"right", p.Height, p.Edges.Right},
	}

	out := EdgeBandPart{PartName: p.Name, Qty: p.Qty, EdgeType: edgeType}
	var totalCM float64
	for _, s := range sides {
		if !s.banded {
			continue
		}
		stripCM := s.length + cfg.EdgeOverlap
		totalCM += stripCM
		out.Edges = append(out.Edges, EdgeDetail{
			Edge:     s.name,
			LengthMM: stripCM * 10,
			LengthM:  stripCM / 100,
			EdgeType: edgeType,
			HasEdge:  true,
		})
	}
	for _, s := range sides {
		if s.banded {
			continue
		}
		out.Edges = append(out.Edges, EdgeDetail{
			Edge:     s.name,
			LengthMM: s.length * 10,
			LengthM:  s.length / 100,
			EdgeType: edgeType,
			HasEdge:  false,
		})
	}
	out.TotalEdgeM = Round3(totalCM / 100 * float64(p.Qty))
	return out
}

// EdgeBreakdown explodes every part of a unit into per-edge records.
func EdgeBreakdown(parts []Part, cfg Config, edgeType EdgeType) []EdgeBandPart {
	out := make([]EdgeBandPart, 0, len(parts))
	for _, p := range parts {
		out = append(out, EdgeBreakdownForPart(p, cfg, edgeType))
	}
	return out
}

// TotalEdgeMeters sums the banding-strip totals of a breakdown.
func TotalEdgeMeters(parts []EdgeBandPart) float64 {
	var total float64
	for _, p := range parts {
		total += p.TotalEdgeM
	}
	return total
}

// EdgeCost prices a breakdown by edge type. Each type looks up its own
// price key first and falls back to the generic per-meter price; types
// with no configured price are omitted.
func EdgeCost(parts []EdgeBandPart, cfg Config) CostEstimate {
	est := CostEstimate{Breakdown: map[string]float64{}}
	var total float64
	for _, et := range edgeTypeOrder {
		var meters float64
		for _, p := range parts {
			if p.EdgeType == et {
				meters += p.TotalEdgeM
			}
		}
		if meters == 0 {
			continue
		}
		price := edgeBandPrice(cfg, et)
		if price <= 0 {
			continue
		}
		c := meters * price
		est.Breakdown[string(et)] = Round2(c)
		total += c
	}
	est.Total = Round2(total)
	return est
}

// edgeBandPrice resolves the per-meter price for an edge type. The
// generic price only applies when no type-specific entry exists at
// all; a present but unpriced entry disables that type.
func edgeBandPrice(cfg Config, et EdgeType) float64 {
	if m, ok := cfg.Materials["edge_band_"+string(et)+"_per_meter"]; ok {
		return m.PricePerMeter
	}
	if m, ok := cfg.Materials[MaterialEdgeBandPerMeter]; ok {
		return m.PricePerMeter
	}
	return 0
}
