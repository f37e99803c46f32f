package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gridpull/gridpull/pkg/config"
)

// pathCommand creates the path command, printing where gridpull reads and
// writes its state.
func (c *CLI) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved config and data paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := config.DefaultPath()
			if err != nil {
				return err
			}
			packPath, progressDir, err := c.resolvePaths()
			if err != nil {
				return err
			}

			printKeyValue("config", annotateExists(cfgPath))
			printKeyValue("pack", annotateExists(packPath))
			printKeyValue("progress", annotateExists(progressDir))
			return nil
		},
	}
}

func annotateExists(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + " " + StyleDim.Render("(absent)")
	}
	return path
}
