package engine

import "github.com/piwi3910/CabCut/internal/model"

// Drawer-only ground units. The carcass matches the plain ground unit;
// the front is filled by drawer boxes instead of doors.

func drawersUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_mirror", spec, cfg, t, 1),
		mirrorRail("back_mirror", spec, cfg, t, 1),
		groundSides(spec, cfg, t),
	}
	if spec.DrawerCount > 0 {
		parts = append(parts, drawerStrips("drawer_width", "drawer_depth",
			spec.DrawerCount, spec.DrawerHeight,
			SlideSideRail.widthStripLength(spec.Width, t),
			spec.Depth-depthStripInset)...)
		parts = append(parts, drawerBottom("drawer_bottom",
			SlideSideRail.bottomWidth(spec.Width, t, cfg.BackDeduction),
			spec.Depth-depthStripInset-cfg.BackDeduction,
			spec.DrawerCount))
	}
	parts = append(parts, backPanel(spec, cfg))
	return parts
}

func drawersBottomRailUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_mirror", spec, cfg, t, 1),
		mirrorRail("back_mirror", spec, cfg, t, 1),
		groundSides(spec, cfg, t),
	}
	if spec.DrawerCount > 0 {
		parts = append(parts, drawerStrips("drawer_width", "drawer_depth",
			spec.DrawerCount, spec.DrawerHeight,
			SlideBottomRail.widthStripLength(spec.Width, t),
			spec.Depth-depthStripInset)...)
		parts = append(parts, drawerBottom("drawer_bottom",
			SlideBottomRail.bottomWidth(spec.Width, t, cfg.BackDeduction),
			spec.Depth-depthStripInset-cfg.BackDeduction,
			spec.DrawerCount))
	}
	parts = append(parts, backPanel(spec, cfg))
	return parts
}

// compositeStripLength: the composite fronts keep the side-rail box
// geometry in the "side" variants, while the "bottom" variants run
// plain full-width box strips and take their clearance on the bottom
// panel instead.
func compositeStripLength(slide SlideType, width, t float64) float64 {
	if slide == SlideBottomRail {
		return width - t*2
	}
	return slide.widthStripLength(width, t)
}

func compositeStripName(kind string, slide SlideType) string {
	if slide == SlideBottomRail {
		return kind + "_drawer_width_box"
	}
	return kind + "_drawer_width_side"
}

// compositeDrawerUnit covers the fixed-layout drawer fronts: a mix of
// shallow 12 cm boxes and tall boxes sized from the unit height, three
// drawers total.
func compositeDrawerUnit(spec model.UnitSpec, cfg model.Config, slide SlideType,
	smallCount, largeCount int, largeFrontHeight float64) []model.Part {

	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_rail_mirror", spec, cfg, t, 1),
		mirrorRail("back_rail_mirror", spec, cfg, t, 1),
	}
	sideHeight := spec.Height
	if baseFull(cfg) {
		sideHeight = spec.Height - t
	}
	parts = append(parts, model.NewPart("side_panel", spec.Depth, sideHeight, 2))

	stripLen := compositeStripLength(slide, spec.Width, t)
	parts = append(parts, drawerStrips(
		compositeStripName("small", slide), "small_drawer_depth",
		smallCount, 12.0, stripLen, spec.Depth-depthStripInset)...)
	parts = append(parts, drawerStrips(
		compositeStripName("large", slide), "large_drawer_depth",
		largeCount, spec.Height-46.0, stripLen, spec.Depth-depthStripInset)...)

	parts = append(parts, backPanel(spec, cfg))
	parts = append(parts, drawerBottom("drawer_bottom",
		slide.bottomWidth(spec.Width, t, cfg.BackDeduction),
		spec.Depth-10.0,
		smallCount+largeCount))

	frontWidth := spec.Width - cfg.DoorWidthDeduction
	parts = append(parts, model.NewPart("small_drawer_front",
		frontWidth, 19.6-cfg.HandleProfileHeight, smallCount))
	parts = append(parts, model.NewPart("large_drawer_front",
		frontWidth, largeFrontHeight, largeCount))
	return parts
}

func twoSmallOneLargeUnit(spec model.UnitSpec, cfg model.Config, slide SlideType) []model.Part {
	return compositeDrawerUnit(spec, cfg, slide, 2, 1,
		spec.Height-40.0-cfg.HandleProfileHeight-0.5)
}

func oneSmallTwoLargeUnit(spec model.UnitSpec, cfg model.Config, slide SlideType) []model.Part {
	return compositeDrawerUnit(spec, cfg, slide, 1, 2,
		(spec.Height-20.0)/2-cfg.HandleProfileHeight-0.5)
}

// threeTurboUnit is the three-front turbo stack: shallow rail-width
// box strips, no bottoms (wire baskets), fronts dividing the height
// in three.
func threeTurboUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_rail_mirror", spec, cfg, t, 1),
		mirrorRail("back_rail_mirror", spec, cfg, t, 1),
	}
	sideHeight := spec.Height
	if baseFull(cfg) {
		sideHeight = spec.Height - t
	}
	parts = append(parts, model.NewPart("side_panel", spec.Depth, sideHeight, 2))

	parts = append(parts, drawerStrips("drawer_width_strip", "drawer_depth_strip",
		3, cfg.MirrorWidth,
		SlideSideRail.widthStripLength(spec.Width, t),
		spec.Depth-depthStripInset)...)

	parts = append(parts, backPanel(spec, cfg))
	parts = append(parts, model.NewPart("drawer_front",
		spec.Width-cfg.DoorWidthDeduction,
		spec.Height/3-cfg.HandleProfileHeight-0.4,
		3))
	return parts
}

// drawerBuiltInOvenUnit is the oven housing with one drawer under the
// oven. The box runs a fixed 40 cm deep regardless of the carcass and
// there is no back panel behind the oven.
func drawerBuiltInOvenUnit(spec model.UnitSpec, cfg model.Config, slide SlideType) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_rail_mirror", spec, cfg, t, 1),
		mirrorRail("back_rail_mirror", spec, cfg, t, 1),
	}
	sideHeight := spec.Height
	if baseFull(cfg) {
		sideHeight = spec.Height - t
	}
	parts = append(parts, model.NewPart("side_panel", spec.Depth, sideHeight, 2))

	const ovenDrawerDepth = 40.0
	parts = append(parts, drawerStrips("drawer_width_strip", "drawer_depth_strip",
		1, cfg.MirrorWidth,
		slide.widthStripLength(spec.Width, t),
		ovenDrawerDepth)...)
	parts = append(parts, drawerBottom("drawer_bottom",
		slide.bottomWidth(spec.Width, t, cfg.BackDeduction),
		ovenDrawerDepth-cfg.BackDeduction,
		1))

	parts = append(parts, model.NewPart("drawer_front",
		spec.Width-cfg.DoorWidthDeduction,
		spec.Height-spec.OvenHeight-cfg.HandleProfileHeight-0.5,
		1))
	return parts
}
