package recipe

import (
	"fmt"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

// Resolution is the effective recipe for one assembly call together with
// the faults that were recovered while resolving it.
type Resolution struct {
	Recipe   Recipe          `json:"recipe"`
	Warnings []model.Warning `json:"warnings,omitempty"`
}

// Resolver maps products to construction recipes. It holds an immutable
// book and global dimensions; replace the Resolver to change either.
type Resolver struct {
	book    *Book
	globals model.GlobalDimensions
}

// NewResolver creates a Resolver. A nil book uses DefaultBook.
func NewResolver(book *Book, globals model.GlobalDimensions) *Resolver {
	if book == nil {
		book = DefaultBook()
	}
	return &Resolver{book: book, globals: globals}
}

// Globals returns the global dimensions the resolver falls back to.
func (r *Resolver) Globals() model.GlobalDimensions {
	return r.globals
}

// Resolve returns the effective recipe for product p with the instance
// overrides merged in. It never fails: a product without a recipe gets a
// synthesized default and a MISSING_RECIPE warning.
func (r *Resolver) Resolve(p model.Product, ov model.RecipeOverrides) Resolution {
	var res Resolution

	category, err := model.ParseCategory(string(p.Category))
	if err != nil {
		category = model.CategoryBase
		res.Warnings = append(res.Warnings, model.NewWarning(model.CodeMissingRecipe,
			"product %q has unknown category %q, using base", p.ID, p.Category))
	}
	kind := p.Kind
	if kind == nil {
		kind = model.Standard{}
	}

	def, key, found := r.book.Lookup(category, kind)
	if !found {
		key = KeyFor(category, kind)
		def = Definition{
			Name:     fmt.Sprintf("default %s", category),
			Category: category,
			Kind:     model.SpecOf(kind),
		}
		res.Warnings = append(res.Warnings, model.NewWarning(model.CodeMissingRecipe,
			"no recipe for %s, synthesized a default", KeyFor(category, kind)))
	}

	res.Recipe = r.build(def, key, category, kind, p, ov)
	res.Recipe.Synthesized = !found
	return res
}

// build fills every field of the effective recipe. Per-field priority is
// instance override, then the definition, then product defaults and globals,
// then hard defaults.
func (r *Resolver) build(def Definition, key Key, category model.Category, kind model.Kind,
	p model.Product, ov model.RecipeOverrides) Recipe {
	g := r.globals
	dims := g.ForCategory(category)
	board := g.Board()

	rec := Recipe{Key: key, Name: def.Name}

	rec.Carcass = Carcass{
		GableThickness:  positive(def.GableThickness, board),
		BottomThickness: positive(def.BottomThickness, board),
		TopThickness:    positive(def.TopThickness, board),
		BackThickness:   positive(def.BackThickness, g.Back()),
		BackSetback:     pick(def.BackSetback, defaultBackSetback),
	}

	// Corner construction: kind, then definition, then override.
	cornerType := model.CornerTypeOf(kind)
	if ov.Corner.IsCorner() {
		cornerType = ov.Corner
	}
	doors := pick(ov.DoorCount, pick(def.Doors, p.DefaultDoors))
	drawers := pick(ov.DrawerCount, pick(def.Drawers, p.DefaultDrawers))
	doors, drawers = nonNegative(doors), nonNegative(drawers)

	rec.Front = Front{
		Type:          frontTypeFor(cornerType, doors, drawers),
		Doors:         doors,
		Drawers:       drawers,
		HasFalseFront: pick(ov.HasFalseFront, pick(def.HasFalseFront, false)),
	}
	if cornerType.IsCorner() {
		arm := dims.Depth
		rec.Front.Corner = CornerConfig{
			Style:         cornerType,
			LeftArmDepth:  positive(ov.LeftArmDepth, positive(def.LeftArmDepth, arm)),
			RightArmDepth: positive(ov.RightArmDepth, positive(def.RightArmDepth, arm)),
			BlindDepth:    positive(def.BlindDepth, arm),
			FillerWidth:   positive(ov.FillerWidth, positive(def.FillerWidth, defaultBlindFiller)),
			ReturnFiller:  pick(def.ReturnFiller, false),
		}
	} else {
		rec.Front.Corner = CornerConfig{Style: model.CornerNone}
	}
	// A false front only exists on sinks.
	if _, sink := kind.(model.Sink); !sink {
		rec.Front.HasFalseFront = false
	}

	_, sink := kind.(model.Sink)
	_, appliance := kind.(model.ApplianceHousing)
	// Drawer banks keep the fallback shelf, fixed.
	rec.Shelves = Shelves{
		Count:      nonNegative(pick(ov.ShelfCount, pick(def.ShelfCount, defaultShelfCount))),
		Adjustable: pick(def.ShelfAdjustable, !(drawers > 0 || sink || appliance)),
		Setback:    pick(def.ShelfSetback, defaultShelfSetback),
	}

	rec.ToeKick = ToeKick{
		Enabled: pick(def.ToeKick, category.FloorStanding()),
		Height:  positive(def.ToeKickHeight, positive(g.ToeKickHeight, 150)),
		Setback: pick(def.ToeKickSetback, defaultPlinthSetback),
	}

	rec.Benchtop = Benchtop{
		Thickness: positive(def.BenchtopThickness, positive(g.BenchtopThickness, 33)),
		Overhang:  pick(def.BenchtopOverhang, g.BenchtopOverhang),
	}

	rec.Reveals = Reveals{
		DoorGap:   reveal(g.Reveals.DoorGap, def.Reveals.DoorGap, defaultDoorGap),
		DrawerGap: reveal(g.Reveals.DrawerGap, def.Reveals.DrawerGap, defaultDrawerGap),
		Top:       reveal(g.Reveals.Top, def.Reveals.Top, defaultTopReveal),
		Side:      reveal(g.Reveals.Side, def.Reveals.Side, defaultSideReveal),
		Bottom:    reveal(g.Reveals.Bottom, def.Reveals.Bottom, defaultBottomReveal),
	}
	return rec
}

// reveal applies the reveal priority: explicit global override, then the
// recipe's own reveal, then the hard default.
func reveal(global, recipe *float64, fallback float64) float64 {
	if global != nil && *global >= 0 {
		return *global
	}
	if recipe != nil && *recipe >= 0 {
		return *recipe
	}
	return fallback
}

func pick[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}

func positive(v, fallback float64) float64 {
	if model.ValidLength(v) {
		return v
	}
	return fallback
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
