package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Product is a read-only catalog record supplied by the catalog collaborator.
type Product struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       Category   `json:"category"`
	Kind           Kind       `json:"-"`
	DefaultDoors   int        `json:"default_doors"`
	DefaultDrawers int        `json:"default_drawers"`
	Defaults       Dimensions `json:"defaults"`
}

type productJSON struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       Category   `json:"category"`
	Kind           KindSpec   `json:"kind"`
	DefaultDoors   int        `json:"default_doors"`
	DefaultDrawers int        `json:"default_drawers"`
	Defaults       Dimensions `json:"defaults"`
}

// MarshalJSON writes the kind in its KindSpec form.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Kind:           SpecOf(p.Kind),
		DefaultDoors:   p.DefaultDoors,
		DefaultDrawers: p.DefaultDrawers,
		Defaults:       p.Defaults,
	})
}

// UnmarshalJSON validates the category and kind while decoding.
func (p *Product) UnmarshalJSON(b []byte) error {
	var raw productJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	cat, err := ParseCategory(string(raw.Category))
	if err != nil {
		return fmt.Errorf("product %q: %w", raw.ID, err)
	}
	kind, err := ParseKind(raw.Kind)
	if err != nil {
		return fmt.Errorf("product %q: %w", raw.ID, err)
	}
	*p = Product{
		ID:             raw.ID,
		Name:           raw.Name,
		Category:       cat,
		Kind:           kind,
		DefaultDoors:   raw.DefaultDoors,
		DefaultDrawers: raw.DefaultDrawers,
		Defaults:       raw.Defaults,
	}
	return nil
}

// RecipeOverrides is the partial per-instance record merged over a recipe.
// Nil pointers and zero lengths mean "not overridden".
type RecipeOverrides struct {
	DoorCount     *int       `json:"door_count,omitempty"`
	DrawerCount   *int       `json:"drawer_count,omitempty"`
	ShelfCount    *int       `json:"shelf_count,omitempty"`
	Corner        CornerType `json:"corner,omitempty"`
	LeftArmDepth  float64    `json:"left_arm_depth,omitempty"`
	RightArmDepth float64    `json:"right_arm_depth,omitempty"`
	FillerWidth   float64    `json:"filler_width,omitempty"`
	HasFalseFront *bool      `json:"has_false_front,omitempty"`
}

// Overrides are the instance-level property edits.
type Overrides struct {
	Recipe RecipeOverrides `json:"recipe"`

	HingeSide     Side    `json:"hinge_side,omitempty"`
	BlindSide     Side    `json:"blind_side,omitempty"`
	EndPanelLeft  bool    `json:"end_panel_left,omitempty"`
	EndPanelRight bool    `json:"end_panel_right,omitempty"`
	FillerLeft    float64 `json:"filler_left,omitempty"`  // mm, >= 0
	FillerRight   float64 `json:"filler_right,omitempty"` // mm, >= 0
	Tap           string  `json:"tap,omitempty"`
	Appliance     string  `json:"appliance,omitempty"`
}

// CabinetInstance is one placed cabinet. The owning session holds the
// authoritative copy; the core only reads instances and returns copies.
type CabinetInstance struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Position  Vec3      `json:"position"` // centre of the footprint; Y is the floor offset
	Rotation  Rotation  `json:"rotation"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Depth     float64   `json:"depth"`
	Overrides Overrides `json:"overrides"`
}

// NewCabinetInstance creates an instance of a product at its default size.
func NewCabinetInstance(p Product, x, z float64) CabinetInstance {
	return CabinetInstance{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Position:  Vec3{X: x, Z: z},
		Rotation:  Rotation0,
		Width:     p.Defaults.Width,
		Height:    p.Defaults.Height,
		Depth:     p.Defaults.Depth,
	}
}

// Dimensions returns the instance's width, height and depth.
func (c CabinetInstance) Dimensions() Dimensions {
	return Dimensions{Width: c.Width, Height: c.Height, Depth: c.Depth}
}

// Bounds returns the rotation-aware footprint of the instance.
func (c CabinetInstance) Bounds() BoundingBox {
	return NewBoundingBox(c.Position.X, c.Position.Z, c.Width, c.Depth, c.Rotation)
}

// Moved returns a copy of c at the given floor position and rotation.
func (c CabinetInstance) Moved(x, z float64, r Rotation) CabinetInstance {
	c.Position.X = x
	c.Position.Z = z
	c.Rotation = r
	return c
}
