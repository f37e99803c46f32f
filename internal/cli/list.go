package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridpull/gridpull/pkg/geom"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the levels in the loaded pack",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p := newProgress(logger)
			s, err := c.openStore()
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Loaded %d levels", s.LevelCount()))

			info := s.Info()
			title := info.Title
			if title == "" {
				title = "(untitled pack)"
			}
			if info.Version != "" {
				title += " " + StyleDim.Render("v"+info.Version)
			}
			fmt.Println(StyleTitle.Render(title))
			if info.Description != "" {
				printDetail("%s", info.Description)
			}
			printInfo("%d levels from %s", s.LevelCount(), s.Path())
			printNewline()

			for i := 0; i < s.LevelCount(); i++ {
				l := s.Level(i)
				name := l.Name()
				if name == "" {
					name = "(unnamed)"
				}
				line := fmt.Sprintf("%3d  %-20s %2d nodes %2d arcs  start %-8s goal %-8s",
					i, name, l.NodeCount(), len(l.Arcs()), l.StartNode(), l.FinalNode())
				if pull := l.StartPull(); pull != geom.DirNone {
					line += "  pull " + pull.String()
				}
				if l.Moves() > 0 || l.TimeElapsed() > 0 {
					line += StyleDim.Render(fmt.Sprintf("  (resumed: %d moves, %.0fs)", l.Moves(), l.TimeElapsed()))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
