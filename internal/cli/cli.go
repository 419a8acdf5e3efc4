// Package cli implements the kitchencraft command-line interface.
//
// The commands drive the core packages directly: assemble a catalog product
// into parts, resolve a placement for a dragged cabinet, and import product
// catalogs and room plans. Results are printed as JSON on stdout; logs go to
// stderr through charmbracelet/log.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/KitchenCraft/internal/model"
	"github.com/piwi3910/KitchenCraft/internal/project"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	configPath string
	config     model.AppConfig
}

// New creates a CLI that writes results to out and logs to logs.
func New(out, logs io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logs, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Out:    out,
		config: model.DefaultAppConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The application config is loaded before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "kitchencraft",
		Short:        "KitchenCraft designs kitchen cabinet layouts",
		Long:         `KitchenCraft resolves cabinet construction recipes, assembles cabinets into parts and snaps them into place in a room.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("kitchencraft %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (.json or .toml, default "+project.DefaultConfigPath()+")")

	root.AddCommand(c.assembleCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.importCatalogCommand())
	root.AddCommand(c.importRoomCommand())
	root.AddCommand(c.configCommand())

	return root
}

func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		path = project.DefaultConfigPath()
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return err
	}
	c.configPath = path
	c.config = cfg
	c.Logger.Debug("config loaded", "path", path)
	return nil
}

// catalog loads the catalog named by path, falling back to the one in the
// app config and then the built-in catalog.
func (c *CLI) catalog(path string) (project.Catalog, error) {
	if path == "" {
		path = c.config.CatalogPath
	}
	cat, err := project.LoadCatalog(path)
	if err != nil {
		return project.Catalog{}, err
	}
	c.Logger.Debug("catalog loaded", "path", path, "products", len(cat.Products), "recipes", len(cat.Recipes))
	return cat, nil
}

// rememberProject records path in the recent projects list.
func (c *CLI) rememberProject(path string) {
	c.config = project.AddRecentProject(c.config, path, 10)
	if err := project.SaveAppConfig(c.configPath, c.config); err != nil {
		c.Logger.Warn("could not update recent projects", "err", err)
	}
}

// writeJSON prints v as indented JSON on the CLI's output.
func (c *CLI) writeJSON(v any) error {
	enc := json.NewEncoder(c.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// logWarnings reports core warnings at warn level.
func (c *CLI) logWarnings(ws []model.Warning) {
	for _, w := range ws {
		c.Logger.Warn(w.Message, "code", w.Code)
	}
}
