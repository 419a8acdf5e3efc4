package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/piwi3910/KitchenCraft/internal/placement"
	"github.com/piwi3910/KitchenCraft/internal/project"
)

type snapOpts struct {
	projectPath string
	catalog     string
	item        string
	product     string
	x, z        float64
	rotation    float64
	drag        string
	write       bool
}

// snapOutput is what the snap command prints.
type snapOutput struct {
	Item   model.CabinetInstance `json:"item"`
	Result *model.SnapResult     `json:"result,omitempty"`
	Moved  bool                  `json:"moved"`
}

// snapCommand creates the "snap" command.
func (c *CLI) snapCommand() *cobra.Command {
	var opts snapOpts

	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Resolve the placement of a cabinet dragged in a project",
		Long: `Snap resolves where a cabinet lands when dropped at --x/--z: walls first,
then neighbouring cabinets, then the grid, clamped to the room with a single
collision push. --drag replays a pointer path ("x,z;x,z;...") grabbed at the
cabinet's centre instead, so presses shorter than the drag threshold leave
the cabinet where it was. Use --item to move a placed cabinet or --product to
drop a new one from the catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSnap(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.projectPath, "project", "", "project file (required)")
	f.StringVar(&opts.catalog, "catalog", "", "catalog JSON file for --product")
	f.StringVar(&opts.item, "item", "", "ID of the placed cabinet to move")
	f.StringVar(&opts.product, "product", "", "catalog product to drop as a new cabinet")
	f.Float64Var(&opts.x, "x", 0, "drop position along the room width in mm")
	f.Float64Var(&opts.z, "z", 0, "drop position along the room depth in mm")
	f.Float64Var(&opts.rotation, "rotation", 0, "rotation in degrees (snapped to 0/90/180/270)")
	f.StringVar(&opts.drag, "drag", "", "pointer path to replay instead of --x/--z")
	f.BoolVar(&opts.write, "write", false, "save the placement back into the project")
	_ = cmd.MarkFlagRequired("project")
	cmd.MarkFlagsMutuallyExclusive("item", "product")
	cmd.MarkFlagsOneRequired("item", "product")

	return cmd
}

func (c *CLI) runSnap(cmd *cobra.Command, opts snapOpts) error {
	p, err := project.LoadProject(opts.projectPath)
	if err != nil {
		return err
	}

	var inst model.CabinetInstance
	isNew := opts.product != ""
	if isNew {
		cat, err := c.catalog(opts.catalog)
		if err != nil {
			return err
		}
		product, ok := cat.Product(opts.product)
		if !ok {
			return fmt.Errorf("unknown product %q", opts.product)
		}
		inst = model.NewCabinetInstance(product, opts.x, opts.z)
	} else {
		found, ok := p.FindInstance(opts.item)
		if !ok {
			return fmt.Errorf("no instance %q in %s", opts.item, opts.projectPath)
		}
		inst = found
	}
	if cmd.Flags().Changed("rotation") {
		inst.Rotation = model.NormalizeRotation(opts.rotation)
	}

	scene := placement.NewScene(p.Room, p.Instances)
	engine := placement.NewEngine(c.config.Snap)

	var out snapOutput
	if opts.drag != "" {
		path, err := parsePath(opts.drag)
		if err != nil {
			return fmt.Errorf("--drag: %w", err)
		}
		out = replayDrag(placement.NewSession(engine, placement.WithLogger(c.Logger)), scene, inst, path)
	} else {
		r := engine.Resolve(scene, placement.DragOf(inst, opts.x, opts.z))
		out = snapOutput{Item: inst.Moved(r.X, r.Z, r.Rotation), Result: &r, Moved: true}
	}

	if out.Result != nil {
		c.Logger.Info("placed", "item", out.Item.ID, "x", out.Result.X, "z", out.Result.Z,
			"rotation", int(out.Result.Rotation), "snapped_to", out.Result.SnappedTo)
		c.logWarnings(out.Result.Warnings)
	}

	if opts.write && out.Moved {
		if isNew {
			p.Instances = append(p.Instances, out.Item)
		} else {
			for i := range p.Instances {
				if p.Instances[i].ID == out.Item.ID {
					p.Instances[i] = out.Item
				}
			}
		}
		if err := project.SaveProject(opts.projectPath, p); err != nil {
			return err
		}
		c.rememberProject(opts.projectPath)
		c.Logger.Info("project saved", "path", opts.projectPath)
	}

	return c.writeJSON(out)
}

// replayDrag presses on the item's centre, feeds every pointer sample and
// releases on the last one.
func replayDrag(s *placement.Session, scene *placement.Scene, inst model.CabinetInstance, path [][2]float64) snapOutput {
	s.Begin(scene, inst, inst.Position.X, inst.Position.Z)
	for _, pt := range path {
		s.Move(pt[0], pt[1])
	}
	last, _ := s.Last()
	moved, ok := s.Confirm()
	if !ok {
		return snapOutput{Item: inst}
	}
	return snapOutput{Item: moved, Result: &last, Moved: true}
}

// parsePath parses "x,z;x,z;..." pointer samples.
func parsePath(s string) ([][2]float64, error) {
	var path [][2]float64
	for _, sample := range strings.Split(s, ";") {
		sample = strings.TrimSpace(sample)
		if sample == "" {
			continue
		}
		xs, zs, ok := strings.Cut(sample, ",")
		if !ok {
			return nil, fmt.Errorf("sample %q is not x,z", sample)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", sample, err)
		}
		z, err := strconv.ParseFloat(strings.TrimSpace(zs), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", sample, err)
		}
		path = append(path, [2]float64{x, z})
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("no samples")
	}
	return path, nil
}
