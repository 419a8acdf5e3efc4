package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/KitchenCraft/internal/assembly"
	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/piwi3910/KitchenCraft/internal/project"
	"github.com/piwi3910/KitchenCraft/internal/recipe"
)

type assembleOpts struct {
	catalog     string
	projectPath string
	item        string

	width, height, depth float64
	doors, drawers       int
	shelves              int
	hinge, blind         string
	endLeft, endRight    bool
	fillerLeft           float64
	fillerRight          float64
}

// assembleCommand creates the "assemble" command.
func (c *CLI) assembleCommand() *cobra.Command {
	var opts assembleOpts

	cmd := &cobra.Command{
		Use:   "assemble [product-id]",
		Short: "Assemble a cabinet into its parts",
		Long: `Assemble resolves the construction recipe for a catalog product and prints
the assembled parts as JSON. With --project and --item the instance stored in
the project is assembled instead, using the project's global dimensions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var productID string
			if len(args) == 1 {
				productID = args[0]
			}
			return c.runAssemble(cmd, productID, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.catalog, "catalog", "", "catalog JSON file (default: config catalog or built-in)")
	f.StringVar(&opts.projectPath, "project", "", "project file holding the instance")
	f.StringVar(&opts.item, "item", "", "instance ID inside --project")
	f.Float64Var(&opts.width, "width", 0, "cabinet width in mm (default: product size)")
	f.Float64Var(&opts.height, "height", 0, "cabinet height in mm (default: product size)")
	f.Float64Var(&opts.depth, "depth", 0, "cabinet depth in mm (default: product size)")
	f.IntVar(&opts.doors, "doors", 0, "override door count")
	f.IntVar(&opts.drawers, "drawers", 0, "override drawer count")
	f.IntVar(&opts.shelves, "shelves", 0, "override shelf count")
	f.StringVar(&opts.hinge, "hinge", "", "hinge side for single doors (left|right)")
	f.StringVar(&opts.blind, "blind", "", "blind side for blind corners (left|right)")
	f.BoolVar(&opts.endLeft, "end-left", false, "add a left end panel")
	f.BoolVar(&opts.endRight, "end-right", false, "add a right end panel")
	f.Float64Var(&opts.fillerLeft, "filler-left", 0, "left filler width in mm")
	f.Float64Var(&opts.fillerRight, "filler-right", 0, "right filler width in mm")

	return cmd
}

func (c *CLI) runAssemble(cmd *cobra.Command, productID string, opts assembleOpts) error {
	cat, err := c.catalog(opts.catalog)
	if err != nil {
		return err
	}
	book, err := cat.Book()
	if err != nil {
		return err
	}

	globals := c.config.Globals
	var inst model.CabinetInstance
	switch {
	case opts.projectPath != "":
		if opts.item == "" {
			return fmt.Errorf("--item is required with --project")
		}
		p, err := project.LoadProject(opts.projectPath)
		if err != nil {
			return err
		}
		found, ok := p.FindInstance(opts.item)
		if !ok {
			return fmt.Errorf("no instance %q in %s", opts.item, opts.projectPath)
		}
		inst, globals = found, p.Globals
		productID = inst.ProductID
	case productID == "":
		return fmt.Errorf("a product id or --project with --item is required")
	}

	product, ok := cat.Product(productID)
	if !ok {
		return fmt.Errorf("unknown product %q", productID)
	}
	if opts.projectPath == "" {
		inst = model.NewCabinetInstance(product, 0, 0)
	}
	if err := applyAssembleFlags(cmd, &inst, opts); err != nil {
		return err
	}

	r := recipe.NewResolver(book, globals)
	a := assembly.Build(r, product, inst, c.config.MaterialMap())
	c.Logger.Info("assembled", "product", product.ID, "parts", len(a.Parts), "warnings", len(a.Warnings))
	c.logWarnings(a.Warnings)
	return c.writeJSON(a)
}

// applyAssembleFlags copies the flags the user actually set onto inst.
func applyAssembleFlags(cmd *cobra.Command, inst *model.CabinetInstance, opts assembleOpts) error {
	f := cmd.Flags()
	if f.Changed("width") {
		inst.Width = opts.width
	}
	if f.Changed("height") {
		inst.Height = opts.height
	}
	if f.Changed("depth") {
		inst.Depth = opts.depth
	}

	ov := &inst.Overrides
	if f.Changed("doors") {
		ov.Recipe.DoorCount = &opts.doors
	}
	if f.Changed("drawers") {
		ov.Recipe.DrawerCount = &opts.drawers
	}
	if f.Changed("shelves") {
		ov.Recipe.ShelfCount = &opts.shelves
	}
	if f.Changed("hinge") {
		if err := ov.HingeSide.UnmarshalText([]byte(opts.hinge)); err != nil {
			return fmt.Errorf("--hinge: %w", err)
		}
	}
	if f.Changed("blind") {
		if err := ov.BlindSide.UnmarshalText([]byte(opts.blind)); err != nil {
			return fmt.Errorf("--blind: %w", err)
		}
	}
	if f.Changed("end-left") {
		ov.EndPanelLeft = opts.endLeft
	}
	if f.Changed("end-right") {
		ov.EndPanelRight = opts.endRight
	}
	if f.Changed("filler-left") {
		ov.FillerLeft = opts.fillerLeft
	}
	if f.Changed("filler-right") {
		ov.FillerRight = opts.fillerRight
	}
	return nil
}
