package recipe

import (
	"fmt"
	"sort"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

// Definition is a recipe as stored in catalog data. Zero lengths and nil
// pointers mean "unspecified"; the resolver fills them from the global
// dimensions and hard defaults.
type Definition struct {
	Name     string         `json:"name"`
	Category model.Category `json:"category"`
	Kind     model.KindSpec `json:"kind"`

	GableThickness  float64  `json:"gable_thickness,omitempty"`
	BottomThickness float64  `json:"bottom_thickness,omitempty"`
	TopThickness    float64  `json:"top_thickness,omitempty"`
	BackThickness   float64  `json:"back_thickness,omitempty"`
	BackSetback     *float64 `json:"back_setback,omitempty"`

	ShelfCount      *int     `json:"shelf_count,omitempty"`
	ShelfAdjustable *bool    `json:"shelf_adjustable,omitempty"`
	ShelfSetback    *float64 `json:"shelf_setback,omitempty"`

	ToeKick        *bool    `json:"toe_kick,omitempty"`
	ToeKickHeight  float64  `json:"toe_kick_height,omitempty"`
	ToeKickSetback *float64 `json:"toe_kick_setback,omitempty"`

	BenchtopThickness float64  `json:"benchtop_thickness,omitempty"`
	BenchtopOverhang  *float64 `json:"benchtop_overhang,omitempty"`

	Doors         *int  `json:"doors,omitempty"`
	Drawers       *int  `json:"drawers,omitempty"`
	HasFalseFront *bool `json:"has_false_front,omitempty"`

	LeftArmDepth  float64 `json:"left_arm_depth,omitempty"`
	RightArmDepth float64 `json:"right_arm_depth,omitempty"`
	BlindDepth    float64 `json:"blind_depth,omitempty"`
	FillerWidth   float64 `json:"filler_width,omitempty"`
	ReturnFiller  *bool   `json:"return_filler,omitempty"`

	Reveals model.RevealOverrides `json:"reveals"`
}

// Book is a validated, keyed set of recipe definitions. It is built once at
// data-load time and is read-only afterwards.
type Book struct {
	defs  map[Key]Definition
	byTag map[tagKey]Key
}

type tagKey struct {
	category model.Category
	tag      model.KindTag
}

// NewBook validates defs and indexes them by key. Unknown categories, invalid
// kinds and duplicate keys are rejected.
func NewBook(defs []Definition) (*Book, error) {
	b := &Book{
		defs:  make(map[Key]Definition, len(defs)),
		byTag: make(map[tagKey]Key),
	}
	for i, d := range defs {
		cat, err := model.ParseCategory(string(d.Category))
		if err != nil {
			return nil, fmt.Errorf("recipe %d (%s): %w", i, d.Name, err)
		}
		kind, err := model.ParseKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("recipe %d (%s): %w", i, d.Name, err)
		}
		d.Category = cat
		d.Kind = model.SpecOf(kind)
		key := KeyFor(cat, kind)
		if _, dup := b.defs[key]; dup {
			return nil, fmt.Errorf("recipe %d (%s): duplicate key %s", i, d.Name, key)
		}
		b.defs[key] = d
		tk := tagKey{category: cat, tag: kind.Tag()}
		if _, ok := b.byTag[tk]; !ok {
			b.byTag[tk] = key
		}
	}
	return b, nil
}

// Len returns the number of definitions.
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.defs)
}

// Keys returns every key in a stable order.
func (b *Book) Keys() []Key {
	if b == nil {
		return nil
	}
	keys := make([]Key, 0, len(b.defs))
	for k := range b.defs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Category != keys[j].Category {
			return keys[i].Category < keys[j].Category
		}
		return keys[i].SubKind < keys[j].SubKind
	})
	return keys
}

// Lookup finds the definition for a category and kind: first the exact
// sub-kind, then any definition of the same kind tag in that category.
func (b *Book) Lookup(c model.Category, k model.Kind) (Definition, Key, bool) {
	if b == nil {
		return Definition{}, Key{}, false
	}
	key := KeyFor(c, k)
	if d, ok := b.defs[key]; ok {
		return d, key, true
	}
	if k == nil {
		k = model.Standard{}
	}
	if alt, ok := b.byTag[tagKey{category: c, tag: k.Tag()}]; ok {
		return b.defs[alt], alt, true
	}
	return Definition{}, Key{}, false
}

// Definitions returns the definitions in key order.
func (b *Book) Definitions() []Definition {
	keys := b.Keys()
	out := make([]Definition, len(keys))
	for i, k := range keys {
		out[i] = b.defs[k]
	}
	return out
}

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

// builtinDefinitions are the standard constructions shipped with the app.
func builtinDefinitions() []Definition {
	corner := func(cat model.Category, ct model.CornerType, arm float64) Definition {
		d := Definition{
			Name:          fmt.Sprintf("%s %s corner", cat, ct),
			Category:      cat,
			Kind:          model.KindSpec{Tag: string(model.KindCorner), Corner: string(ct)},
			LeftArmDepth:  arm,
			RightArmDepth: arm,
			ShelfCount:    intPtr(1),
		}
		if ct == model.CornerBlind {
			d.BlindDepth = arm
			d.FillerWidth = defaultBlindFiller
			d.ReturnFiller = boolPtr(true)
		}
		return d
	}
	appliance := func(cat model.Category, a model.Appliance, shelves int) Definition {
		return Definition{
			Name:            fmt.Sprintf("%s %s housing", cat, a),
			Category:        cat,
			Kind:            model.KindSpec{Tag: string(model.KindAppliance), Appliance: string(a)},
			ShelfCount:      intPtr(shelves),
			ShelfAdjustable: boolPtr(false),
		}
	}
	return []Definition{
		{Name: "base standard", Category: model.CategoryBase, Kind: model.KindSpec{Tag: "standard"}},
		{
			Name:          "base sink",
			Category:      model.CategoryBase,
			Kind:          model.KindSpec{Tag: "sink"},
			ShelfCount:    intPtr(0),
			BackSetback:   floatPtr(40),
			HasFalseFront: boolPtr(true),
		},
		appliance(model.CategoryBase, model.ApplianceDishwasher, 0),
		appliance(model.CategoryBase, model.ApplianceOven, 0),
		appliance(model.CategoryBase, model.ApplianceCooktop, 0),
		corner(model.CategoryBase, model.CornerLShape, 560),
		corner(model.CategoryBase, model.CornerBlind, 560),
		corner(model.CategoryBase, model.CornerDiagonal, 560),
		{
			Name:       "wall standard",
			Category:   model.CategoryWall,
			Kind:       model.KindSpec{Tag: "standard"},
			ShelfCount: intPtr(2),
			ToeKick:    boolPtr(false),
		},
		appliance(model.CategoryWall, model.ApplianceRangehood, 0),
		appliance(model.CategoryWall, model.ApplianceMicrowave, 1),
		corner(model.CategoryWall, model.CornerLShape, 350),
		corner(model.CategoryWall, model.CornerDiagonal, 350),
		{
			Name:       "tall standard",
			Category:   model.CategoryTall,
			Kind:       model.KindSpec{Tag: "standard"},
			ShelfCount: intPtr(4),
		},
		{
			Name:       "tall pantry",
			Category:   model.CategoryTall,
			Kind:       model.KindSpec{Tag: "pantry"},
			ShelfCount: intPtr(5),
		},
		appliance(model.CategoryTall, model.ApplianceOven, 2),
		appliance(model.CategoryTall, model.ApplianceFridge, 0),
	}
}

// With returns a new book holding b's definitions with defs layered on top:
// a definition with the same key replaces the existing one. b is unchanged.
func (b *Book) With(defs []Definition) (*Book, error) {
	over, err := NewBook(defs)
	if err != nil {
		return nil, err
	}
	merged := make([]Definition, 0, b.Len()+over.Len())
	for _, d := range b.Definitions() {
		if _, replaced := over.defs[keyOf(d)]; !replaced {
			merged = append(merged, d)
		}
	}
	return NewBook(append(merged, over.Definitions()...))
}

// keyOf returns the key of a definition already validated by NewBook.
func keyOf(d Definition) Key {
	kind, err := model.ParseKind(d.Kind)
	if err != nil {
		kind = model.Standard{}
	}
	return KeyFor(d.Category, kind)
}

// DefaultBook returns the built-in recipe book.
func DefaultBook() *Book {
	b, err := NewBook(builtinDefinitions())
	if err != nil {
		panic(fmt.Sprintf("recipe: invalid built-in definitions: %v", err))
	}
	return b
}
