package engine

import "github.com/piwi3910/CabCut/internal/model"

// SlideType selects the drawer-slide mounting style. The two styles
// need different running clearances inside the carcass, so the box
// strip and bottom formulas differ by fixed constants.
type SlideType int

const (
	SlideSideRail SlideType = iota
	SlideBottomRail
)

func (s SlideType) String() string {
	if s == SlideBottomRail {
		return "bottom-rail"
	}
	return "side-rail"
}

// Clearance constants shared by every drawer topology, in cm. Side
// rails eat board thickness on both sides plus 2.6 of slide hardware;
// bottom rails need a flat 8.4 across the width. Depth strips always
// stop 8 short of the carcass depth.
const (
	sideRailPlay    = 2.6
	bottomRailWidth = 8.4
	bottomRailPanel = 6.4
	depthStripInset = 8.0
)

// widthStripLength is the long dimension of the front/back box strips.
func (s SlideType) widthStripLength(unitWidth, t float64) float64 {
	if s == SlideBottomRail {
		return unitWidth - bottomRailWidth
	}
	return unitWidth - t*2 - t*2 - sideRailPlay
}

// bottomWidth is the drawer bottom's width for this slide style.
func (s SlideType) bottomWidth(unitWidth, t, backDeduction float64) float64 {
	if s == SlideBottomRail {
		return unitWidth - bottomRailPanel
	}
	return unitWidth - t*2 - sideRailPlay - backDeduction
}

// drawerStrips builds the four-sided drawer box walls: front/back
// strips cut to the width formula and side strips cut to the depth
// formula, two of each per drawer, banded all around.
func drawerStrips(widthName, depthName string, count int, stripWidth, widthLen, depthLen float64) []model.Part {
	qty := count * 2
	return []model.Part{
		model.NewPart(widthName, stripWidth, widthLen, qty),
		model.NewPart(depthName, stripWidth, depthLen, qty),
	}
}

// drawerBottom builds the raw (unbanded) bottom panels.
func drawerBottom(name string, w, l float64, qty int) model.Part {
	return model.NewPartEdges(name, w, l, qty, model.BandNone())
}
