package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/piwi3910/KitchenCraft/internal/recipe"
)

// Catalog is the product catalog plus any recipe definitions that extend or
// replace the built-in construction recipes.
type Catalog struct {
	Version  string              `json:"version"`
	Products []model.Product     `json:"products"`
	Recipes  []recipe.Definition `json:"recipes,omitempty"`
}

// DefaultCatalog returns a small built-in product range.
func DefaultCatalog() Catalog {
	base := model.Dimensions{Width: 600, Height: 870, Depth: 575}
	wall := model.Dimensions{Width: 600, Height: 720, Depth: 350}
	tall := model.Dimensions{Width: 600, Height: 2250, Depth: 575}
	corner := model.Dimensions{Width: 900, Height: 870, Depth: 900}
	with := func(d model.Dimensions, w float64) model.Dimensions {
		d.Width = w
		return d
	}
	return Catalog{
		Version: "1",
		Products: []model.Product{
			{ID: "base-300", Name: "Base 300 single door", Category: model.CategoryBase, Kind: model.Standard{}, DefaultDoors: 1, Defaults: with(base, 300)},
			{ID: "base-600", Name: "Base 600 single door", Category: model.CategoryBase, Kind: model.Standard{}, DefaultDoors: 1, Defaults: base},
			{ID: "base-900", Name: "Base 900 double door", Category: model.CategoryBase, Kind: model.Standard{}, DefaultDoors: 2, Defaults: with(base, 900)},
			{ID: "base-600-d3", Name: "Base 600 three drawers", Category: model.CategoryBase, Kind: model.Standard{}, DefaultDrawers: 3, Defaults: base},
			{ID: "base-600-dd", Name: "Base 600 drawer over door", Category: model.CategoryBase, Kind: model.Standard{}, DefaultDoors: 1, DefaultDrawers: 1, Defaults: base},
			{ID: "sink-800", Name: "Sink 800", Category: model.CategoryBase, Kind: model.Sink{}, DefaultDoors: 2, Defaults: with(base, 800)},
			{ID: "dishwasher-600", Name: "Dishwasher panel 600", Category: model.CategoryBase, Kind: model.ApplianceHousing{Appliance: model.ApplianceDishwasher}, DefaultDoors: 1, Defaults: base},
			{ID: "corner-l-900", Name: "L corner 900", Category: model.CategoryBase, Kind: model.Corner{Type: model.CornerLShape}, Defaults: corner},
			{ID: "corner-blind-1000", Name: "Blind corner 1000", Category: model.CategoryBase, Kind: model.Corner{Type: model.CornerBlind}, DefaultDoors: 1, Defaults: with(base, 1000)},
			{ID: "corner-diag-900", Name: "Diagonal corner 900", Category: model.CategoryBase, Kind: model.Corner{Type: model.CornerDiagonal}, Defaults: corner},
			{ID: "wall-600", Name: "Wall 600", Category: model.CategoryWall, Kind: model.Standard{}, DefaultDoors: 1, Defaults: wall},
			{ID: "wall-rangehood-600", Name: "Rangehood housing 600", Category: model.CategoryWall, Kind: model.ApplianceHousing{Appliance: model.ApplianceRangehood}, DefaultDoors: 1, Defaults: with(wall, 600)},
			{ID: "tall-pantry-600", Name: "Pantry 600", Category: model.CategoryTall, Kind: model.Pantry{}, DefaultDoors: 1, Defaults: tall},
			{ID: "tall-oven-600", Name: "Oven tower 600", Category: model.CategoryTall, Kind: model.ApplianceHousing{Appliance: model.ApplianceOven}, DefaultDoors: 1, DefaultDrawers: 2, Defaults: tall},
		},
	}
}

// Validate checks that product IDs are present and unique and that the
// catalog's recipes build into a book.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Products))
	for i, p := range c.Products {
		if p.ID == "" {
			return fmt.Errorf("product %d (%s): missing id", i, p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
	}
	_, err := c.Book()
	return err
}

// Product returns the product with the given ID.
func (c Catalog) Product(id string) (model.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Book returns the built-in recipe book with the catalog's recipes layered
// on top.
func (c Catalog) Book() (*recipe.Book, error) {
	if len(c.Recipes) == 0 {
		return recipe.DefaultBook(), nil
	}
	b, err := recipe.DefaultBook().With(c.Recipes)
	if err != nil {
		return nil, fmt.Errorf("catalog recipes: %w", err)
	}
	return b, nil
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, c Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads a catalog from a JSON file. An empty path returns the
// built-in catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	if c.Products == nil {
		c.Products = []model.Product{}
	}
	return c, nil
}
