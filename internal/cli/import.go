package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/KitchenCraft/internal/importer"
	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/piwi3910/KitchenCraft/internal/project"
)

// importCatalogCommand creates the "import-catalog" command.
func (c *CLI) importCatalogCommand() *cobra.Command {
	var (
		out   string
		merge bool
	)

	cmd := &cobra.Command{
		Use:   "import-catalog <file.csv|file.xlsx>",
		Short: "Import catalog products from a CSV or Excel sheet",
		Long: `Import-catalog reads products from a spreadsheet. Columns are matched by
header name (id, name, category, kind, doors, drawers, width, height, depth);
without a header they are read in that order. Kinds use the compact form,
e.g. "sink", "corner:blind" or "appliance:oven".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImportCatalog(args[0], out, merge)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the catalog to this JSON file instead of stdout")
	cmd.Flags().BoolVar(&merge, "merge", false, "merge into the current catalog, replacing products by id")

	return cmd
}

func (c *CLI) runImportCatalog(path, out string, merge bool) error {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		result = importer.ImportCatalogExcel(path)
	default:
		result = importer.ImportCatalogCSV(path)
	}

	for _, w := range result.Warnings {
		c.Logger.Warn(w)
	}
	for _, e := range result.Errors {
		c.Logger.Error(e)
	}
	if len(result.Products) == 0 {
		return fmt.Errorf("no products imported from %s", path)
	}
	c.Logger.Info("imported products", "file", path, "products", len(result.Products), "errors", len(result.Errors))

	cat := project.Catalog{Version: "1", Products: result.Products}
	if merge {
		base, err := c.catalog("")
		if err != nil {
			return err
		}
		cat = mergeCatalog(base, result.Products)
	}
	if err := cat.Validate(); err != nil {
		return err
	}

	if out == "" {
		return c.writeJSON(cat)
	}
	if err := project.SaveCatalog(out, cat); err != nil {
		return err
	}
	c.Logger.Info("catalog saved", "path", out)
	return nil
}

// mergeCatalog replaces products of base by id and appends new ones in
// import order.
func mergeCatalog(base project.Catalog, products []model.Product) project.Catalog {
	index := make(map[string]int, len(base.Products))
	merged := make([]model.Product, len(base.Products))
	copy(merged, base.Products)
	for i, p := range merged {
		index[p.ID] = i
	}
	for _, p := range products {
		if i, ok := index[p.ID]; ok {
			merged[i] = p
			continue
		}
		index[p.ID] = len(merged)
		merged = append(merged, p)
	}
	base.Products = merged
	return base
}

// importRoomCommand creates the "import-room" command.
func (c *CLI) importRoomCommand() *cobra.Command {
	var (
		projectPath string
		height      float64
	)

	cmd := &cobra.Command{
		Use:   "import-room <plan.dxf>",
		Short: "Import the room outline from a DXF floor plan",
		Long: `Import-room takes the largest closed outline in a DXF plan as the room walls.
Rectangles and six-corner L-shapes are recognised; other outlines use their
bounding rectangle. With --project the room is stored in the project, which is
created if it does not exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImportRoom(args[0], projectPath, height)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "project file to update")
	cmd.Flags().Float64Var(&height, "height", 0, "wall height in mm (default 2400)")

	return cmd
}

func (c *CLI) runImportRoom(path, projectPath string, height float64) error {
	result := importer.ImportRoomDXF(path, height)
	for _, w := range result.Warnings {
		c.Logger.Warn(w)
	}
	if len(result.Errors) > 0 {
		return errors.New(strings.Join(result.Errors, "; "))
	}
	room := result.Room
	c.Logger.Info("room imported", "file", path, "shape", room.Shape, "width", room.Width, "depth", room.Depth)

	if projectPath == "" {
		return c.writeJSON(room)
	}

	p, err := project.LoadProject(projectPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		p = model.NewProject()
		p.Name = strings.TrimSuffix(filepath.Base(projectPath), filepath.Ext(projectPath))
		c.Logger.Info("creating project", "path", projectPath)
	case err != nil:
		return err
	}
	p.Room = room
	if err := project.SaveProject(projectPath, p); err != nil {
		return err
	}
	c.rememberProject(projectPath)
	c.Logger.Info("project saved", "path", projectPath)
	return c.writeJSON(room)
}
