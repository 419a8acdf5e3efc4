package recipe

import (
	"testing"

	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(cat model.Category, kind model.Kind, doors, drawers int) model.Product {
	return model.Product{ID: "p", Name: "test", Category: cat, Kind: kind, DefaultDoors: doors, DefaultDrawers: drawers}
}

func TestDefaultBook(t *testing.T) {
	b := DefaultBook()
	assert.Equal(t, 17, b.Len())

	keys := b.Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, Key{Category: model.CategoryBase, SubKind: "appliance:cooktop"}, keys[0])
	assert.Len(t, b.Definitions(), 17)
}

func TestNewBookRejectsBadDefinitions(t *testing.T) {
	_, err := NewBook([]Definition{
		{Name: "a", Category: model.CategoryBase, Kind: model.KindSpec{Tag: "sink"}},
		{Name: "b", Category: model.CategoryBase, Kind: model.KindSpec{Tag: "Sink"}},
	})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewBook([]Definition{{Name: "c", Category: "attic"}})
	assert.Error(t, err)

	_, err = NewBook([]Definition{{Name: "d", Category: model.CategoryBase, Kind: model.KindSpec{Tag: "corner"}}})
	assert.Error(t, err)
}

func TestResolveStandardBase(t *testing.T) {
	r := NewResolver(nil, model.DefaultGlobalDimensions())
	res := r.Resolve(product(model.CategoryBase, model.Standard{}, 2, 0), model.RecipeOverrides{})

	assert.Empty(t, res.Warnings)
	rec := res.Recipe
	assert.False(t, rec.Synthesized)
	assert.Equal(t, Key{Category: model.CategoryBase, SubKind: "standard"}, rec.Key)
	assert.Equal(t, model.FrontDoor, rec.Front.Type)
	assert.Equal(t, 2, rec.Front.Doors)
	assert.Equal(t, 18.0, rec.Carcass.GableThickness)
	assert.Equal(t, 6.0, rec.Carcass.BackThickness)
	assert.Equal(t, 20.0, rec.Carcass.BackSetback)
	assert.Equal(t, 1, rec.Shelves.Count)
	assert.True(t, rec.Shelves.Adjustable)
	assert.True(t, rec.ToeKick.Enabled)
	assert.Equal(t, 150.0, rec.ToeKick.Height)
	assert.Equal(t, 33.0, rec.Benchtop.Thickness)
	assert.Equal(t, 20.0, rec.Benchtop.Overhang)
	assert.Equal(t, Reveals{DoorGap: 3, DrawerGap: 3, Top: 3, Side: 1.5, Bottom: 0}, rec.Reveals)
	assert.Equal(t, model.CornerNone, rec.Front.Corner.Style)
}

func TestResolveOverridesWin(t *testing.T) {
	r := NewResolver(nil, model.DefaultGlobalDimensions())
	one, three := 1, 3
	ov := model.RecipeOverrides{
		DoorCount:    &one,
		ShelfCount:   &three,
		Corner:       model.CornerLShape,
		LeftArmDepth: 600,
	}
	rec := r.Resolve(product(model.CategoryBase, model.Standard{}, 2, 0), ov).Recipe

	assert.Equal(t, 1, rec.Front.Doors)
	assert.Equal(t, 3, rec.Shelves.Count)
	assert.Equal(t, model.FrontCorner, rec.Front.Type)
	assert.Equal(t, model.CornerLShape, rec.Front.Corner.Style)
	assert.Equal(t, 600.0, rec.Front.Corner.LeftArmDepth)
	// Unset arm falls back to the category depth.
	assert.Equal(t, 560.0, rec.Front.Corner.RightArmDepth)
}

func TestResolveRevealPriority(t *testing.T) {
	book, err := NewBook([]Definition{{
		Name:     "tight",
		Category: model.CategoryBase,
		Kind:     model.KindSpec{Tag: "standard"},
		Reveals:  model.RevealOverrides{DoorGap: floatPtr(2), Top: floatPtr(5)},
	}})
	require.NoError(t, err)

	g := model.DefaultGlobalDimensions()
	g.Reveals.DoorGap = floatPtr(4)
	rec := NewResolver(book, g).Resolve(product(model.CategoryBase, model.Standard{}, 1, 0), model.RecipeOverrides{}).Recipe

	assert.Equal(t, 4.0, rec.Reveals.DoorGap, "global override beats the recipe")
	assert.Equal(t, 5.0, rec.Reveals.Top, "recipe beats the hard default")
	assert.Equal(t, 1.5, rec.Reveals.Side, "hard default when nobody says otherwise")
}

func TestResolveMissingRecipeSynthesizes(t *testing.T) {
	r := NewResolver(nil, model.DefaultGlobalDimensions())
	res := r.Resolve(product(model.CategoryTall, model.Sink{}, 1, 0), model.RecipeOverrides{})

	assert.True(t, res.Recipe.Synthesized)
	assert.True(t, model.HasWarning(res.Warnings, model.CodeMissingRecipe))
	assert.Equal(t, Key{Category: model.CategoryTall, SubKind: "sink"}, res.Recipe.Key)
	assert.Equal(t, 1, res.Recipe.Front.Doors)
	assert.Equal(t, 18.0, res.Recipe.Carcass.GableThickness)
}

func TestResolveUnknownCategory(t *testing.T) {
	r := NewResolver(nil, model.DefaultGlobalDimensions())
	res := r.Resolve(product("attic", nil, 1, 0), model.RecipeOverrides{})

	assert.True(t, model.HasWarning(res.Warnings, model.CodeMissingRecipe))
	assert.Equal(t, model.CategoryBase, res.Recipe.Key.Category)
	assert.Equal(t, "standard", res.Recipe.Key.SubKind)
}

func TestResolveFallsBackByTag(t *testing.T) {
	r := NewResolver(nil, model.DefaultGlobalDimensions())
	res := r.Resolve(product(model.CategoryWall, model.Corner{Type: model.CornerBlind}, 1, 0), model.RecipeOverrides{})

	assert.False(t, res.Recipe.Synthesized)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, model.CornerBlind, res.Recipe.Front.Corner.Style, "the kind still decides the construction")
	assert.Equal(t, 350.0, res.Recipe.Front.Corner.LeftArmDepth)
}

func TestResolveKindSpecifics(t *testing.T) {
	r := NewResolver(nil, model.DefaultGlobalDimensions())

	sink := r.Resolve(product(model.CategoryBase, model.Sink{}, 2, 0), model.RecipeOverrides{}).Recipe
	assert.True(t, sink.Front.HasFalseFront)
	assert.Equal(t, 0, sink.Shelves.Count)
	assert.Equal(t, 40.0, sink.Carcass.BackSetback)

	drawers := r.Resolve(product(model.CategoryBase, model.Standard{}, 0, 3), model.RecipeOverrides{}).Recipe
	assert.Equal(t, model.FrontDrawer, drawers.Front.Type)
	assert.Equal(t, 1, drawers.Shelves.Count)
	assert.False(t, drawers.Shelves.Adjustable)

	wall := r.Resolve(product(model.CategoryWall, model.Standard{}, 1, 0), model.RecipeOverrides{}).Recipe
	assert.False(t, wall.ToeKick.Enabled)
	assert.Equal(t, 2, wall.Shelves.Count)

	micro := r.Resolve(product(model.CategoryWall, model.ApplianceHousing{Appliance: model.ApplianceMicrowave}, 1, 0), model.RecipeOverrides{}).Recipe
	assert.Equal(t, 1, micro.Shelves.Count)
	assert.False(t, micro.Shelves.Adjustable)

	blind := r.Resolve(product(model.CategoryBase, model.Corner{Type: model.CornerBlind}, 1, 0), model.RecipeOverrides{}).Recipe
	assert.Equal(t, 560.0, blind.Front.Corner.BlindDepth)
	assert.True(t, blind.Front.Corner.ReturnFiller)
	assert.Equal(t, 50.0, blind.Front.Corner.FillerWidth)
}

func TestResolveNeverMutatesBook(t *testing.T) {
	r := NewResolver(nil, model.DefaultGlobalDimensions())
	five := 5
	_ = r.Resolve(product(model.CategoryTall, model.Pantry{}, 2, 0), model.RecipeOverrides{ShelfCount: &five})
	rec := r.Resolve(product(model.CategoryTall, model.Pantry{}, 2, 0), model.RecipeOverrides{}).Recipe
	assert.Equal(t, 5, rec.Shelves.Count)

	seven := 7
	_ = r.Resolve(product(model.CategoryTall, model.Pantry{}, 2, 0), model.RecipeOverrides{ShelfCount: &seven})
	rec = r.Resolve(product(model.CategoryTall, model.Pantry{}, 2, 0), model.RecipeOverrides{}).Recipe
	assert.Equal(t, 5, rec.Shelves.Count)
}

func TestBookWithReplacesByKey(t *testing.T) {
	base := DefaultBook()
	custom, err := base.With([]Definition{
		{Name: "deep sink", Category: model.CategoryBase, Kind: model.KindSpec{Tag: "sink"}, BackSetback: floatPtr(60)},
		{Name: "tall sink", Category: model.CategoryTall, Kind: model.KindSpec{Tag: "sink"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 18, custom.Len())
	assert.Equal(t, 17, base.Len(), "the original book is untouched")

	d, _, ok := custom.Lookup(model.CategoryBase, model.Sink{})
	require.True(t, ok)
	assert.Equal(t, "deep sink", d.Name)

	_, err = base.With([]Definition{{Name: "bad", Category: "attic"}})
	assert.Error(t, err)
}
