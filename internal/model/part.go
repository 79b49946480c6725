package model

import "math"

// EdgeDistribution describes which of the four edges of a part receive
// edge banding.
type EdgeDistribution struct {
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// BandAll returns a distribution with banding on all four edges.
func BandAll() EdgeDistribution {
	return EdgeDistribution{Top: true, Bottom: true, Left: true, Right: true}
}

// BandNone returns a distribution with no banding at all.
func BandNone() EdgeDistribution {
	return EdgeDistribution{}
}

// BandShelf returns the standard shelf distribution: the back edge sits
// inside the carcass and stays raw.
func BandShelf() EdgeDistribution {
	return EdgeDistribution{Top: true, Bottom: false, Left: true, Right: true}
}

// HasAny reports whether at least one edge is banded.
func (e EdgeDistribution) HasAny() bool {
	return e.Top || e.Bottom || e.Left || e.Right
}

// EdgeCount returns the number of banded edges.
func (e EdgeDistribution) EdgeCount() int {
	n := 0
	for _, f := range []bool{e.Top, e.Bottom, e.Left, e.Right} {
		if f {
			n++
		}
	}
	return n
}

// LinearLength returns the summed length of the banded edges for a part
// of the given width and height. Top/bottom edges run along the width,
// left/right along the height.
func (e EdgeDistribution) LinearLength(w, h float64) float64 {
	var total float64
	if e.Top {
		total += w
	}
	if e.Bottom {
		total += w
	}
	if e.Left {
		total += h
	}
	if e.Right {
		total += h
	}
	return total
}

func (e EdgeDistribution) String() string {
	if !e.HasAny() {
		return "-"
	}
	s := ""
	if e.Top {
		s += "T+"
	}
	if e.Bottom {
		s += "B+"
	}
	if e.Left {
		s += "L+"
	}
	if e.Right {
		s += "R+"
	}
	return s[:len(s)-1]
}

// Part represents a single cut piece (or identical group) produced by a
// unit calculation. All linear dimensions are in centimeters; AreaM2 is
// in square meters and EdgeBandM in meters, both already scaled by Qty.
type Part struct {
	Name      string           `json:"name"`
	Width     float64          `json:"width"`  // cm
	Height    float64          `json:"height"` // cm
	Depth     float64          `json:"depth,omitempty"`
	Qty       int              `json:"qty"`
	Edges     EdgeDistribution `json:"edges"`
	AreaM2    float64          `json:"area_m2"`
	EdgeBandM float64          `json:"edge_band_m"`
}

// NewPart builds a part banded on all four edges with the derived area
// and edge band length filled in.
func NewPart(name string, w, h float64, qty int) Part {
	return NewPartEdges(name, w, h, qty, BandAll())
}

// NewPartEdges builds a part with an explicit edge distribution.
func NewPartEdges(name string, w, h float64, qty int, edges EdgeDistribution) Part {
	p := Part{
		Name:   name,
		Width:  w,
		Height: h,
		Qty:    qty,
		Edges:  edges,
	}
	p.Recalculate()
	return p
}

// Recalculate refreshes the derived area and edge band length from the
// current dimensions, quantity and edge distribution.
func (p *Part) Recalculate() {
	p.AreaM2 = Round4(p.Width * p.Height * float64(p.Qty) / 10000.0)
	p.EdgeBandM = p.Edges.LinearLength(p.Width, p.Height) / 100.0 * float64(p.Qty)
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Round4 rounds to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
