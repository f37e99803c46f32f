package cli

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridpull/gridpull/pkg/board"
	"github.com/gridpull/gridpull/pkg/geom"
	"github.com/gridpull/gridpull/pkg/progress"
)

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play [level]",
		Short: "Play a level in the terminal",
		Long:  `Play runs an interactive session for one level. The piece starts on the start node (after any start pull) and moves along connector arcs; reach the goal node to win. Progress is saved when the session ends.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := 0
			if len(args) == 1 {
				i, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("level must be a number, got %q", args[0])
				}
				idx = i
			}

			s, err := c.openStore()
			if err != nil {
				return err
			}
			b := s.BuildLevel(idx)
			if b == nil {
				return fmt.Errorf("no level %d (pack has %d)", idx, s.LevelCount())
			}

			ps, err := c.openProgress()
			if err != nil {
				return err
			}
			prior, err := ps.Get(cmd.Context(), idx)
			if err != nil {
				return err
			}
			resumed := 0.0
			if prior != nil {
				resumed = prior.TimeElapsed
			}

			m := newPlayModel(b, idx, resumed)
			out, err := tea.NewProgram(m).Run()
			if err != nil {
				return fmt.Errorf("run session: %w", err)
			}
			final, ok := out.(playModel)
			if !ok {
				return nil
			}

			rec := &progress.Record{
				LevelIndex:  idx,
				LevelName:   b.Level().Name(),
				Moves:       b.Moves(),
				TimeElapsed: resumed + final.elapsed().Seconds(),
				Completed:   b.Completed(),
			}
			if prior != nil {
				rec.ID = prior.ID
			}
			if err := ps.Set(cmd.Context(), rec); err != nil {
				return err
			}

			if b.Completed() {
				printSuccess("Completed %q in %d moves", b.Level().Name(), b.Moves())
			} else {
				printInfo("Progress saved: %d moves", b.Moves())
			}
			return nil
		},
	}
}

// =============================================================================
// playModel - Interactive level session
// =============================================================================

// tickMsg refreshes the elapsed-time display once per second.
type tickMsg time.Time

func tickEverySecond() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// playModel is the bubbletea model for one play session.
type playModel struct {
	board   *board.Board
	index   int
	resumed float64 // seconds from an earlier session
	start   time.Time
	now     time.Time
}

func newPlayModel(b *board.Board, index int, resumed float64) playModel {
	now := time.Now()
	return playModel{board: b, index: index, resumed: resumed, start: now, now: now}
}

func (m playModel) elapsed() time.Duration {
	return m.now.Sub(m.start)
}

func (m playModel) Init() tea.Cmd {
	return tickEverySecond()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		if m.board.Completed() {
			return m, nil
		}
		return m, tickEverySecond()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.now = time.Now()
			return m, tea.Quit
		case "r":
			m.board.Reset()
		case "up", "k":
			m.board.Move(geom.DirUp)
		case "down", "j":
			m.board.Move(geom.DirDown)
		case "left", "h":
			m.board.Move(geom.DirLeft)
		case "right", "l":
			m.board.Move(geom.DirRight)
		}
		if m.board.Completed() {
			m.now = time.Now()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m playModel) View() string {
	l := m.board.Level()
	name := l.Name()
	if name == "" {
		name = fmt.Sprintf("Level %d", m.index)
	}

	view := StyleTitle.Render(name) + "\n"
	view += StyleDim.Render("↑↓←→/hjkl move  r restart  q quit") + "\n\n"
	view += renderBoard(m.board, true) + "\n"

	total := m.resumed + m.elapsed().Seconds()
	view += StyleDim.Render(fmt.Sprintf("moves %d · %s", m.board.Moves(), time.Duration(total*float64(time.Second)).Round(time.Second)))
	if m.board.Completed() {
		view += "\n" + StyleSuccess.Render("Goal reached!")
	}
	return view + "\n"
}
