package model

import "time"

// AssemblyMethod selects which carcass panels span the full unit width.
type AssemblyMethod string

const (
	// Sides run full height and the base/top fit between them; the back
	// panel sits in a routed groove.
	AssemblyFullSidesBackRouted AssemblyMethod = "full_sides_back_routed"
	// Base spans the full width, the top fits between the sides.
	AssemblyBaseFullTopSidesBackRouted AssemblyMethod = "base_full_top_sides_back_routed"
	// Flush variants: back panel screwed on flush instead of routed.
	AssemblyFullSidesBackFlush AssemblyMethod = "full_sides_back_flush"
	AssemblyBaseFullBackFlush  AssemblyMethod = "base_full_back_flush"
)

// BandingStyle is the edge banding machine pass code. A subset of codes
// ("all-around" and "all-around with reverse groove") removes material
// from the panel itself, which the dispatcher compensates for with a
// uniform 0.2 cm deduction on carcass pieces.
type BandingStyle string

const (
	BandingStyleNone BandingStyle = ""
	BandingStyleO    BandingStyle = "O"
	BandingStyleOM   BandingStyle = "OM"
	BandingStyleC    BandingStyle = "C"
	BandingStyleCM   BandingStyle = "CM"
	BandingStyleF    BandingStyle = "F"
	BandingStyleFM   BandingStyle = "FM"
	BandingStyleH    BandingStyle = "H"
	BandingStyleHM   BandingStyle = "HM"
	BandingStyleL    BandingStyle = "L"
	BandingStyleLM   BandingStyle = "LM"
)

// AppliesDeduction reports whether this banding style removes material
// from the panel faces.
func (b BandingStyle) AppliesDeduction() bool {
	switch b {
	case BandingStyleO, BandingStyleOM, BandingStyleC, BandingStyleCM:
		return true
	}
	return false
}

// MaterialPrice holds the price info for one material key. A zero value
// means the field is not configured; the cost estimator skips
// unconfigured prices instead of erroring.
type MaterialPrice struct {
	PricePerSheet float64 `json:"price_per_sheet,omitempty"`
	SheetSizeM2   float64 `json:"sheet_size_m2,omitempty"`
	PricePerMeter float64 `json:"price_per_meter,omitempty"`
	PricePerUnit  float64 `json:"price_per_unit,omitempty"`
}

// Config holds every manufacturing constant the calculators consume.
// It is resolved by the settings store before a calculation and treated
// as read-only by the engine. All linear fields are centimeters.
type Config struct {
	AssemblyMethod AssemblyMethod `json:"assembly_method"`
	BandingStyle   BandingStyle   `json:"edge_banding_type"`

	// Carcass constants.
	BoardThickness        float64 `json:"board_thickness_cm"`         // modern carcass stock
	DefaultBoardThickness float64 `json:"default_board_thickness_cm"` // legacy sink-ground carcass
	BackPanelThickness    float64 `json:"back_panel_thickness_cm"`
	EdgeOverlap           float64 `json:"edge_overlap_cm"`
	BackClearance         float64 `json:"back_clearance_cm"`
	TopClearance          float64 `json:"top_clearance_cm"`
	BottomClearance       float64 `json:"bottom_clearance_cm"`
	SideOverlap           float64 `json:"side_overlap_cm"`

	// Front and fitting geometry.
	HandleRecessHeight        float64 `json:"handle_recess_height_cm"`
	HandleProfileHeight       float64 `json:"handle_profile_height_cm"`
	ChassisHandleDrop         float64 `json:"chassis_handle_drop_cm"`
	MirrorWidth               float64 `json:"mirror_width_cm"`
	BackDeduction             float64 `json:"back_deduction_cm"`
	ShelfDepthDeduction       float64 `json:"shelf_depth_deduction_cm"`
	DoorWidthDeduction        float64 `json:"door_width_deduction_cm"`
	GroundDoorHeightDeduction float64 `json:"ground_door_height_deduction_cm"`

	// Router groove for the back panel.
	RouterThickness float64 `json:"router_thickness_cm"`
	RouterDistance  float64 `json:"router_distance_cm"`

	// Material pricing.
	SheetSizeM2 float64                  `json:"sheet_size_m2"`
	Materials   map[string]MaterialPrice `json:"materials"`
	EdgeTypes   []string                 `json:"edge_types"`

	// Default unit depth by unit family, keyed "ground", "wall",
	// "tall", "sink_ground".
	DefaultDepthByType map[string]float64 `json:"default_unit_depth_by_type"`

	LastUpdated time.Time `json:"last_updated,omitempty"`
}

// Material keys used by the aggregators and cost estimator.
const (
	MaterialPlywoodSheet     = "plywood_sheet"
	MaterialEdgeBandPerMeter = "edge_band_per_meter"
)

func DefaultConfig() Config {
	return Config{
		AssemblyMethod:            AssemblyFullSidesBackRouted,
		BandingStyle:              BandingStyleNone,
		BoardThickness:            1.8,
		DefaultBoardThickness:     1.6,
		BackPanelThickness:        0.3,
		EdgeOverlap:               0.2,
		BackClearance:             0.3,
		TopClearance:              0.5,
		BottomClearance:           0.5,
		SideOverlap:               0,
		HandleRecessHeight:        3.0,
		HandleProfileHeight:       3.0,
		ChassisHandleDrop:         3.5,
		MirrorWidth:               10.0,
		BackDeduction:             1.4,
		ShelfDepthDeduction:       3.0,
		DoorWidthDeduction:        0.4,
		GroundDoorHeightDeduction: 0.1,
		RouterThickness:           0.6,
		RouterDistance:            1.2,
		SheetSizeM2:               2.4,
		Materials: map[string]MaterialPrice{
			MaterialPlywoodSheet:     {PricePerSheet: 400, SheetSizeM2: 2.4},
			MaterialEdgeBandPerMeter: {PricePerMeter: 20},
		},
		EdgeTypes: []string{"pvc", "wood", "no_edge"},
		DefaultDepthByType: map[string]float64{
			"ground":      30,
			"wall":        25,
			"tall":        35,
			"sink_ground": 32,
		},
	}
}

// Clone returns a deep copy so callers can tweak settings without
// touching the stored snapshot.
func (c Config) Clone() Config {
	out := c
	out.Materials = make(map[string]MaterialPrice, len(c.Materials))
	for k, v := range c.Materials {
		out.Materials[k] = v
	}
	out.EdgeTypes = append([]string(nil), c.EdgeTypes...)
	out.DefaultDepthByType = make(map[string]float64, len(c.DefaultDepthByType))
	for k, v := range c.DefaultDepthByType {
		out.DefaultDepthByType[k] = v
	}
	return out
}
