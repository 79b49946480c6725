package model

import "strings"

// UnitType is the cabinet topology discriminant. Each value maps to one
// per-topology calculator in the engine package.
type UnitType string

const (
	UnitGround           UnitType = "ground"
	UnitSink             UnitType = "sink"
	UnitSinkGround       UnitType = "sink_ground"
	UnitDrawers          UnitType = "drawers"
	UnitDrawersBottom    UnitType = "drawers_bottom_rail"
	UnitGroundFixed      UnitType = "ground_fixed"
	UnitSinkFixed        UnitType = "sink_fixed"
	UnitWall             UnitType = "wall"
	UnitWallFixed        UnitType = "wall_fixed"
	UnitWallFlipTop      UnitType = "wall_flip_top_doors_bottom"
	UnitWallMicrowave    UnitType = "wall_microwave"
	UnitTallDoors        UnitType = "tall_doors"
	UnitTallDoorsAppl    UnitType = "tall_doors_appliances"
	UnitCornerLWall      UnitType = "corner_l_wall"
	UnitTallDrwSideDoors UnitType = "tall_drawers_side_doors_top"
	UnitTallDrwBotDoors  UnitType = "tall_drawers_bottom_rail_top_doors"
	UnitTallDrwSideAppl  UnitType = "tall_drawers_side_appliances_doors"
	UnitTallDrwBotAppl   UnitType = "tall_drawers_bottom_appliances_doors_top"
	UnitTwoSmallLargeS   UnitType = "two_small_20_one_large_side"
	UnitTwoSmallLargeB   UnitType = "two_small_20_one_large_bottom"
	UnitOneSmallLargeS   UnitType = "one_small_16_two_large_side"
	UnitOneSmallLargeB   UnitType = "one_small_16_two_large_bottom"
	UnitTallWoodenBase   UnitType = "tall_wooden_base"
	UnitThreeTurbo       UnitType = "three_turbo"
	UnitDrawerOven       UnitType = "drawer_built_in_oven"
	UnitDrawerOvenBottom UnitType = "drawer_bottom_rail_built_in_oven"
)

// AllUnitTypes lists every supported topology in display order.
var AllUnitTypes = []UnitType{
	UnitGround, UnitSink, UnitSinkGround,
	UnitDrawers, UnitDrawersBottom,
	UnitGroundFixed, UnitSinkFixed,
	UnitWall, UnitWallFixed, UnitWallFlipTop, UnitWallMicrowave,
	UnitCornerLWall,
	UnitTallDoors, UnitTallDoorsAppl,
	UnitTallDrwSideDoors, UnitTallDrwBotDoors,
	UnitTallDrwSideAppl, UnitTallDrwBotAppl,
	UnitTwoSmallLargeS, UnitTwoSmallLargeB,
	UnitOneSmallLargeS, UnitOneSmallLargeB,
	UnitTallWoodenBase, UnitThreeTurbo,
	UnitDrawerOven, UnitDrawerOvenBottom,
}

// Valid reports whether t is a known topology.
func (t UnitType) Valid() bool {
	for _, u := range AllUnitTypes {
		if t == u {
			return true
		}
	}
	return false
}

// Family maps a topology to its depth family used for depth defaulting.
func (t UnitType) Family() string {
	s := string(t)
	switch {
	case t == UnitSinkGround:
		return "sink_ground"
	case strings.HasPrefix(s, "wall"), t == UnitCornerLWall:
		return "wall"
	case strings.HasPrefix(s, "tall"):
		return "tall"
	default:
		return "ground"
	}
}

// DoorType selects the door mounting for topologies that support both.
type DoorType string

const (
	DoorHinged DoorType = "hinged"
	DoorFlip   DoorType = "flip"
)

// UnitSpec is the full calculator input for one unit. All linear
// dimensions are centimeters. Topology-specific fields are ignored by
// calculators that do not use them.
type UnitSpec struct {
	Type   UnitType `json:"type"`
	Width  float64  `json:"width_cm"`
	Height float64  `json:"height_cm"`
	Depth  float64  `json:"depth_cm"`
	Qty    int      `json:"qty"`

	ShelfCount int      `json:"shelf_count"`
	DoorCount  int      `json:"door_count"`
	DoorType   DoorType `json:"door_type,omitempty"`

	DrawerCount  int     `json:"drawer_count"`
	DrawerHeight float64 `json:"drawer_height_cm,omitempty"`

	// Fixed-end and flip variants.
	FixedPartWidth   float64 `json:"fixed_part_cm,omitempty"`
	BottomDoorHeight float64 `json:"bottom_door_height_cm,omitempty"`
	FlipDoorHeight   float64 `json:"flip_door_height_cm,omitempty"`

	// Built-in appliances.
	OvenHeight      float64 `json:"oven_height_cm,omitempty"`
	MicrowaveHeight float64 `json:"microwave_height_cm,omitempty"`
	VentHeight      float64 `json:"vent_height_cm,omitempty"`

	// Corner units: secondary leg.
	Width2 float64 `json:"width_2_cm,omitempty"`
	Depth2 float64 `json:"depth_2_cm,omitempty"`

	// Sink-ground cutouts. Zero means use the documented defaults.
	SinkCutoutWidth      float64 `json:"sink_cutout_width_cm,omitempty"`
	SinkCutoutDepth      float64 `json:"sink_cutout_depth_cm,omitempty"`
	PlumbingCutoutWidth  float64 `json:"plumbing_cutout_width_cm,omitempty"`
	PlumbingCutoutHeight float64 `json:"plumbing_cutout_height_cm,omitempty"`
}

// ValidationError describes a rejected unit spec field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid unit spec: " + e.Field + " " + e.Reason
}

// Validate rejects specs the calculators are not required to defend
// against. Degenerate but positive geometry is allowed and propagates
// through the formulas untouched.
func (s *UnitSpec) Validate() error {
	if !s.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "unknown topology " + string(s.Type)}
	}
	if s.Width <= 0 {
		return &ValidationError{Field: "width_cm", Reason: "must be positive"}
	}
	if s.Height <= 0 {
		return &ValidationError{Field: "height_cm", Reason: "must be positive"}
	}
	if s.Depth <= 0 {
		return &ValidationError{Field: "depth_cm", Reason: "must be positive"}
	}
	if s.ShelfCount < 0 {
		return &ValidationError{Field: "shelf_count", Reason: "must not be negative"}
	}
	if s.DoorCount < 0 {
		return &ValidationError{Field: "door_count", Reason: "must not be negative"}
	}
	if s.DrawerCount < 0 {
		return &ValidationError{Field: "drawer_count", Reason: "must not be negative"}
	}
	if s.Qty < 0 {
		return &ValidationError{Field: "qty", Reason: "must not be negative"}
	}
	return nil
}

// ApplyDefaults fills the optional fields from the configuration:
// depth by unit family, hinged doors, unit quantity 1 and the standard
// sink cutout sizes.
func (s *UnitSpec) ApplyDefaults(cfg Config) {
	if s.Depth == 0 {
		if d, ok := cfg.DefaultDepthByType[s.Type.Family()]; ok {
			s.Depth = d
		}
	}
	if s.DoorType == "" {
		s.DoorType = DoorHinged
	}
	if s.Qty == 0 {
		s.Qty = 1
	}
	if s.Type == UnitSinkGround {
		if s.SinkCutoutWidth == 0 {
			s.SinkCutoutWidth = 50
		}
		if s.SinkCutoutDepth == 0 {
			s.SinkCutoutDepth = 40
		}
		if s.PlumbingCutoutWidth == 0 {
			s.PlumbingCutoutWidth = 20
		}
		if s.PlumbingCutoutHeight == 0 {
			s.PlumbingCutoutHeight = 10
		}
	}
}
