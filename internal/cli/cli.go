package cli

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gridpull/gridpull/pkg/buildinfo"
	"github.com/gridpull/gridpull/pkg/config"
	"github.com/gridpull/gridpull/pkg/progress"
	"github.com/gridpull/gridpull/pkg/store"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// packPath overrides the saved pack location (--pack flag).
	packPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridpull",
		Short:        "Gridpull loads and plays graph-grid pull puzzles",
		Long:         `Gridpull manages packs of graph-structured puzzle levels: grids of nodes joined by directed connector arcs, played by pulling a piece along the arcs from the start node to the goal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.packPath, "pack", "", "path to the saved level pack (default: the well-known save location)")

	// Attach the logger to the command context so subcommands can retrieve
	// it with loggerFromContext.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// resolvePaths loads the optional config file and resolves the pack path
// and progress directory, honoring the --pack flag above everything else.
func (c *CLI) resolvePaths() (packPath, progressDir string, err error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return "", "", err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return "", "", err
	}

	defaultPack, err := store.DefaultPackPath()
	if err != nil {
		return "", "", err
	}
	defaultData, err := store.DefaultDataDir()
	if err != nil {
		return "", "", err
	}

	packPath = cfg.PackPathOr(defaultPack)
	if c.packPath != "" {
		packPath = c.packPath
	}
	progressDir = cfg.ProgressDirOr(filepath.Join(defaultData, "progress"))
	return packPath, progressDir, nil
}

// openStore resolves paths and loads the level pack.
func (c *CLI) openStore() (*store.LevelStore, error) {
	packPath, _, err := c.resolvePaths()
	if err != nil {
		return nil, err
	}
	return store.Open(store.Options{
		Path:   packPath,
		Logger: c.Logger,
	})
}

// openProgress resolves paths and opens the progress store.
func (c *CLI) openProgress() (*progress.FileStore, error) {
	_, dir, err := c.resolvePaths()
	if err != nil {
		return nil, err
	}
	return progress.NewFileStore(dir)
}
