package model

import "strings"

// RoomShape is the floor plan shape of a room.
type RoomShape string

const (
	RoomRectangle RoomShape = "rectangle"
	RoomLShape    RoomShape = "l-shape"
)

// ParseRoomShape maps free text onto a RoomShape, defaulting to rectangle.
func ParseRoomShape(s string) RoomShape {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l-shape", "lshape", "l":
		return RoomLShape
	default:
		return RoomRectangle
	}
}

// RoomConfig describes the room. X runs along the width from the left wall,
// Z along the depth from the back wall. For L-shaped rooms the cutout is
// removed from the front-right corner of the bounding rectangle.
type RoomConfig struct {
	Width       float64   `json:"width" toml:"width"`
	Depth       float64   `json:"depth" toml:"depth"`
	Height      float64   `json:"height" toml:"height"`
	Shape       RoomShape `json:"shape" toml:"shape"`
	CutoutWidth float64   `json:"cutout_width,omitempty" toml:"cutout_width,omitempty"`
	CutoutDepth float64   `json:"cutout_depth,omitempty" toml:"cutout_depth,omitempty"`
}

// DefaultRoom returns a 4000 x 3000 x 2400 mm rectangular room.
func DefaultRoom() RoomConfig {
	return RoomConfig{Width: 4000, Depth: 3000, Height: 2400, Shape: RoomRectangle}
}

// Outline returns the floor polygon of the room.
func (r RoomConfig) Outline() Outline {
	if r.Shape != RoomLShape || r.CutoutWidth <= 0 || r.CutoutDepth <= 0 {
		return Outline{{0, 0}, {r.Width, 0}, {r.Width, r.Depth}, {0, r.Depth}}
	}
	return Outline{
		{0, 0},
		{r.Width, 0},
		{r.Width, r.Depth - r.CutoutDepth},
		{r.Width - r.CutoutWidth, r.Depth - r.CutoutDepth},
		{r.Width - r.CutoutWidth, r.Depth},
		{0, r.Depth},
	}
}

// CategoryDimensions are the fallback sizes for one category.
type CategoryDimensions struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
	Depth  float64 `json:"depth" toml:"depth"`
}

// Dimensions converts to a Dimensions value.
func (c CategoryDimensions) Dimensions() Dimensions {
	return Dimensions{Width: c.Width, Height: c.Height, Depth: c.Depth}
}

// RevealOverrides are explicit global reveal settings. A nil field is unset.
type RevealOverrides struct {
	DoorGap   *float64 `json:"door_gap,omitempty" toml:"door_gap,omitempty"`
	DrawerGap *float64 `json:"drawer_gap,omitempty" toml:"drawer_gap,omitempty"`
	Top       *float64 `json:"top,omitempty" toml:"top,omitempty"`
	Side      *float64 `json:"side,omitempty" toml:"side,omitempty"`
	Bottom    *float64 `json:"bottom,omitempty" toml:"bottom,omitempty"`
}

// GlobalDimensions are session-wide fallbacks used when a recipe does not
// specify a value. The value is immutable once handed to the core.
type GlobalDimensions struct {
	Base CategoryDimensions `json:"base" toml:"base"`
	Wall CategoryDimensions `json:"wall" toml:"wall"`
	Tall CategoryDimensions `json:"tall" toml:"tall"`

	Reveals RevealOverrides `json:"reveals" toml:"reveals"`

	BoardThickness    float64 `json:"board_thickness" toml:"board_thickness"`
	BackThickness     float64 `json:"back_thickness" toml:"back_thickness"`
	FrontThickness    float64 `json:"front_thickness" toml:"front_thickness"`
	HandleHoleSpacing float64 `json:"handle_hole_spacing" toml:"handle_hole_spacing"` // 32mm-system centres
	ToeKickHeight     float64 `json:"toe_kick_height" toml:"toe_kick_height"`
	BenchtopThickness float64 `json:"benchtop_thickness" toml:"benchtop_thickness"`
	BenchtopOverhang  float64 `json:"benchtop_overhang" toml:"benchtop_overhang"`
}

// DefaultGlobalDimensions returns the standard framing sizes.
func DefaultGlobalDimensions() GlobalDimensions {
	return GlobalDimensions{
		Base:              CategoryDimensions{Width: 600, Height: 720, Depth: 560},
		Wall:              CategoryDimensions{Width: 600, Height: 720, Depth: 350},
		Tall:              CategoryDimensions{Width: 600, Height: 2100, Depth: 560},
		BoardThickness:    18,
		BackThickness:     6,
		FrontThickness:    18,
		HandleHoleSpacing: 128,
		ToeKickHeight:     150,
		BenchtopThickness: 33,
		BenchtopOverhang:  20,
	}
}

// ForCategory returns the fallback sizes for c. Unknown categories use base.
func (g GlobalDimensions) ForCategory(c Category) CategoryDimensions {
	var d CategoryDimensions
	switch c {
	case CategoryWall:
		d = g.Wall
	case CategoryTall:
		d = g.Tall
	default:
		d = g.Base
	}
	// Fall back to the built-in framing when the session left a field empty.
	std := DefaultGlobalDimensions()
	def := std.Base
	switch c {
	case CategoryWall:
		def = std.Wall
	case CategoryTall:
		def = std.Tall
	}
	if !ValidLength(d.Width) {
		d.Width = def.Width
	}
	if !ValidLength(d.Height) {
		d.Height = def.Height
	}
	if !ValidLength(d.Depth) {
		d.Depth = def.Depth
	}
	return d
}

// Board returns the board thickness, or the standard 18mm.
func (g GlobalDimensions) Board() float64 {
	return orLength(g.BoardThickness, 18)
}

// Back returns the back panel thickness, or the standard 6mm.
func (g GlobalDimensions) Back() float64 {
	return orLength(g.BackThickness, 6)
}

// Front returns the door/drawer front thickness, or the standard 18mm.
func (g GlobalDimensions) Front() float64 {
	return orLength(g.FrontThickness, 18)
}

// HandleLength returns the handle hole spacing, or the standard 128mm.
func (g GlobalDimensions) HandleLength() float64 {
	return orLength(g.HandleHoleSpacing, 128)
}

func orLength(v, fallback float64) float64 {
	if ValidLength(v) {
		return v
	}
	return fallback
}
