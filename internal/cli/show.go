package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gridpull/gridpull/pkg/geom"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <level>",
		Short: "Render one level's board",
		Long:  `Show renders the board of a single level by its position in the pack (as printed by "gridpull list").`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("level must be a number, got %q", args[0])
			}

			s, err := c.openStore()
			if err != nil {
				return err
			}

			b := s.BuildLevel(idx)
			if b == nil {
				return fmt.Errorf("no level %d (pack has %d)", idx, s.LevelCount())
			}
			l := b.Level()

			name := l.Name()
			if name == "" {
				name = fmt.Sprintf("Level %d", idx)
			}
			fmt.Println(StyleTitle.Render(name))
			if l.Description() != "" {
				printDetail("%s", l.Description())
			}
			printNewline()
			fmt.Println(renderBoard(b, false))

			printKeyValue("start", l.StartNode().String())
			printKeyValue("goal", l.FinalNode().String())
			if pull := l.StartPull(); pull != geom.DirNone {
				printKeyValue("start pull", pull.String())
			}

			// Saved progress lives outside the pack file; surface it here
			// when present.
			ps, err := c.openProgress()
			if err != nil {
				return err
			}
			rec, err := ps.Get(cmd.Context(), idx)
			if err != nil {
				return err
			}
			if rec != nil {
				status := "in progress"
				if rec.Completed {
					status = "completed"
				}
				printKeyValue("progress", fmt.Sprintf("%d moves, %.0fs (%s)", rec.Moves, rec.TimeElapsed, status))
			}
			return nil
		},
	}
}
