// Package recipe resolves a cabinet's construction recipe: the board
// thicknesses, reveals, shelf and front layout and corner configuration the
// geometry assembler builds from.
package recipe

import (
	"fmt"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

// Key identifies a recipe by category and enumerated sub-kind
// (model.Kind.Variant, e.g. "corner:blind").
type Key struct {
	Category model.Category `json:"category"`
	SubKind  string         `json:"sub_kind"`
}

// KeyFor returns the lookup key for a cabinet of category c and kind k.
func KeyFor(c model.Category, k model.Kind) Key {
	if k == nil {
		k = model.Standard{}
	}
	return Key{Category: c, SubKind: k.Variant()}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Category, k.SubKind)
}

// Carcass holds the structural board thicknesses.
type Carcass struct {
	GableThickness  float64 `json:"gable_thickness"`
	BottomThickness float64 `json:"bottom_thickness"`
	TopThickness    float64 `json:"top_thickness"`
	BackThickness   float64 `json:"back_thickness"`
	BackSetback     float64 `json:"back_setback"` // hanging-rail clearance behind the back panel
}

// Shelves holds the shelf layout.
type Shelves struct {
	Count      int     `json:"count"`
	Adjustable bool    `json:"adjustable"`
	Setback    float64 `json:"setback"` // inset from the carcass front
}

// ToeKick holds the plinth configuration.
type ToeKick struct {
	Enabled bool    `json:"enabled"`
	Height  float64 `json:"height"`
	Setback float64 `json:"setback"` // plinth board recess from the carcass front
}

// Benchtop holds the benchtop configuration for base cabinets.
type Benchtop struct {
	Thickness float64 `json:"thickness"`
	Overhang  float64 `json:"overhang"`
}

// CornerConfig holds the corner sub-configuration.
type CornerConfig struct {
	Style         model.CornerType `json:"style"`
	LeftArmDepth  float64          `json:"left_arm_depth"`
	RightArmDepth float64          `json:"right_arm_depth"`
	BlindDepth    float64          `json:"blind_depth"`
	FillerWidth   float64          `json:"filler_width"`
	ReturnFiller  bool             `json:"return_filler"`
}

// Front holds the front layout.
type Front struct {
	Type          model.FrontType `json:"type"`
	Doors         int             `json:"doors"`
	Drawers       int             `json:"drawers"`
	HasFalseFront bool            `json:"has_false_front"`
	Corner        CornerConfig    `json:"corner"`
}

// Combination reports whether the front has both doors and drawers.
func (f Front) Combination() bool {
	return f.Doors > 0 && f.Drawers > 0
}

// Reveals are the gaps around and between fronts.
type Reveals struct {
	DoorGap   float64 `json:"door_gap"`
	DrawerGap float64 `json:"drawer_gap"`
	Top       float64 `json:"top"`
	Side      float64 `json:"side"`
	Bottom    float64 `json:"bottom"`
}

// Recipe is a fully populated construction recipe. It is a value; merging
// overrides produces a new Recipe and never changes a stored one.
type Recipe struct {
	Key         Key      `json:"key"`
	Name        string   `json:"name"`
	Synthesized bool     `json:"synthesized"`
	Carcass     Carcass  `json:"carcass"`
	Shelves     Shelves  `json:"shelves"`
	ToeKick     ToeKick  `json:"toe_kick"`
	Benchtop    Benchtop `json:"benchtop"`
	Front       Front    `json:"front"`
	Reveals     Reveals  `json:"reveals"`
}

// Hard defaults used when neither the recipe nor the globals say otherwise.
const (
	defaultBackSetback   = 20.0
	defaultShelfSetback  = 20.0
	defaultShelfCount    = 1
	defaultPlinthSetback = 50.0
	defaultBlindFiller   = 50.0

	defaultDoorGap      = 3.0
	defaultDrawerGap    = 3.0
	defaultTopReveal    = 3.0
	defaultSideReveal   = 1.5
	defaultBottomReveal = 0.0
)

// frontTypeFor derives the front type from the door and drawer counts.
func frontTypeFor(corner model.CornerType, doors, drawers int) model.FrontType {
	switch {
	case corner.IsCorner():
		return model.FrontCorner
	case doors > 0:
		return model.FrontDoor
	case drawers > 0:
		return model.FrontDrawer
	default:
		return model.FrontNone
	}
}
