// Package assembly turns a resolved construction recipe and an instance's
// dimensions into the ordered list of parts a renderer draws.
//
// Parts use the cabinet-local frame: the origin is the centre of the
// cabinet's bounding box, +Y is up and the front faces +Z. Part rotations
// are right-handed degrees about +Y, so 90 turns a front from +Z to +X.
// Corner cabinets sit in a back-left room corner: the right arm runs along
// the back (-Z) and the left arm along the left side (-X).
package assembly

import (
	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/piwi3910/KitchenCraft/internal/recipe"
)

// ShadowGap is the distance fronts stand proud of the carcass face. It is a
// visual separation constant, not a structural reveal.
const ShadowGap = 2.0

// Input is everything one assembly call needs.
type Input struct {
	Recipe     recipe.Recipe
	Category   model.Category
	Kind       model.Kind
	Dimensions model.Dimensions
	Overrides  model.Overrides
	Materials  map[model.MaterialSlot]string
}

// Assembly is the assembled cabinet.
type Assembly struct {
	Dimensions model.Dimensions `json:"dimensions"` // after substitution of invalid values
	Parts      []model.Part     `json:"parts"`
	Warnings   []model.Warning  `json:"warnings,omitempty"`
}

// PartsOf returns the parts of the given kind in assembly order.
func (a Assembly) PartsOf(kind model.PartKind) []model.Part {
	var out []model.Part
	for _, p := range a.Parts {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Count returns the number of parts of the given kind.
func (a Assembly) Count(kind model.PartKind) int {
	n := 0
	for _, p := range a.Parts {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// builder accumulates parts for one Assemble call.
type builder struct {
	in  Input
	rec recipe.Recipe
	g   model.GlobalDimensions

	w, h, d float64
	kick    float64
	t       float64 // gable thickness
	ft      float64 // front thickness

	carcassBottom float64
	carcassTop    float64

	parts    []model.Part
	warnings []model.Warning
	missing  map[model.MaterialSlot]bool
}

// Assemble builds the part list. It never fails: invalid dimensions are
// replaced with the category's standard framing and missing materials fall
// back to model.DefaultMaterial, each with a warning.
func Assemble(in Input, g model.GlobalDimensions) Assembly {
	if in.Kind == nil {
		in.Kind = model.Standard{}
	}
	b := &builder{in: in, rec: in.Recipe, g: g, missing: map[model.MaterialSlot]bool{}}

	dims, fixed := in.Dimensions.Sanitize(g.ForCategory(in.Category).Dimensions())
	for _, f := range fixed {
		b.warn(model.CodeInvalidDimension, "%s was not a positive length, using %s standard", f, in.Category)
	}
	b.w, b.h, b.d = dims.Width, dims.Height, dims.Depth
	b.t = positive(b.rec.Carcass.GableThickness, g.Board())
	b.ft = g.Front()

	if b.rec.ToeKick.Enabled {
		b.kick = b.rec.ToeKick.Height
		// Keep at least half the height for the carcass.
		if b.kick >= b.h/2 {
			b.kick = b.h / 2
		}
	}
	b.carcassBottom = -b.h/2 + b.kick
	b.carcassTop = b.h / 2

	corner := b.rec.Front.Corner.Style
	switch corner {
	case model.CornerLShape, model.CornerDiagonal:
		b.cornerCarcass(corner)
	default:
		b.carcass()
	}
	b.kickAndLegs(corner)

	switch corner {
	case model.CornerLShape, model.CornerDiagonal:
		b.cornerShelves(corner)
		b.cornerFronts(corner)
	default:
		b.standardFronts()
	}

	b.benchtop(corner)
	b.endPanelsAndFillers()

	return Assembly{Dimensions: dims, Parts: b.parts, Warnings: b.warnings}
}

// Build resolves the recipe for an instance and assembles it.
func Build(r *recipe.Resolver, p model.Product, inst model.CabinetInstance, materials map[model.MaterialSlot]string) Assembly {
	res := r.Resolve(p, inst.Overrides.Recipe)
	a := Assemble(Input{
		Recipe:     res.Recipe,
		Category:   p.Category,
		Kind:       p.Kind,
		Dimensions: inst.Dimensions(),
		Overrides:  inst.Overrides,
		Materials:  materials,
	}, r.Globals())
	a.Warnings = append(res.Warnings, a.Warnings...)
	return a
}

func (b *builder) warn(code model.Code, format string, args ...any) {
	b.warnings = append(b.warnings, model.NewWarning(code, format, args...))
}

// material returns the material for a part kind, recording a warning the
// first time a slot has no assignment.
func (b *builder) material(kind model.PartKind) string {
	slot := kind.Slot()
	if m, ok := b.in.Materials[slot]; ok && m != "" {
		return m
	}
	if !b.missing[slot] {
		b.missing[slot] = true
		b.warn(model.CodeMissingMaterial, "no %s material, using %s", slot, model.DefaultMaterial)
	}
	return model.DefaultMaterial
}

// add appends a part, filling in its material.
func (b *builder) add(p model.Part) {
	p.Material = b.material(p.Kind)
	b.parts = append(b.parts, p)
}

// box is a convenience constructor for an unrotated part.
func box(kind model.PartKind, name string, size, pos model.Vec3) model.Part {
	return model.Part{Kind: kind, Name: name, Size: size, Position: pos}
}

// carcassHeight is the height of the structural box above the kick.
func (b *builder) carcassHeight() float64 {
	return b.carcassTop - b.carcassBottom
}

// carcassCenterY is the vertical centre of the carcass: offset up by half
// the kick height.
func (b *builder) carcassCenterY() float64 {
	return b.kick / 2
}

// frontZ is the Z centre of a front on the carcass face.
func (b *builder) frontZ() float64 {
	return b.d/2 + ShadowGap + b.ft/2
}

// hasTop reports whether the carcass gets a top panel.
func (b *builder) hasTop() bool {
	return b.in.Category == model.CategoryWall || b.in.Category == model.CategoryTall
}

func positive(v, fallback float64) float64 {
	if model.ValidLength(v) {
		return v
	}
	return fallback
}
