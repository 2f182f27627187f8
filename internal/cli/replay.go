package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/config"
	"github.com/SeamusWaldron/twisty/internal/notation"
	"github.com/SeamusWaldron/twisty/internal/render"
)

const (
	minInterval = 50 * time.Millisecond
	maxInterval = 5 * time.Second
)

type replayKeyMap struct {
	Pause   key.Binding
	Step    key.Binding
	Restart key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Quit    key.Binding
}

func (k replayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Restart, k.Faster, k.Slower, k.Quit}
}

func (k replayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultReplayKeyMap() replayKeyMap {
	return replayKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next move"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newReplayCmd(a *app) *cobra.Command {
	var (
		step  bool
		noTUI bool
	)

	cmd := &cobra.Command{
		Use:   "replay <algorithm>...",
		Short: "Play back an algorithm move by move",
		Long: `Play back an algorithm on a solved cube, one move per interval.

Without a terminal, or with --no-tui, each move is printed with a short
description followed by the final cube.

Usage:
  twisty replay "R U R' U'"
  twisty replay --interval 1s "F R U R' U' F'"
  twisty replay --step "r U r'"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newCube()
			if err != nil {
				return err
			}

			alg := strings.Join(args, " ")
			moves, _ := twisty.ParseMoves(alg)
			if len(moves) == 0 {
				return fmt.Errorf("no moves in %q", alg)
			}

			out := cmd.OutOrStdout()
			if noTUI || !isTerminal(out) {
				return printReplay(out, c, moves, a.renderer(out))
			}

			a.logger.Debug("starting replay", "moves", len(moves), "interval", a.cfg.Interval)
			m := newReplayModel(c, moves, a.cfg.Interval, step, a.renderer(out))
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("replay error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Duration("interval", config.DefaultInterval, "Time between moves")
	cmd.Flags().BoolVarP(&step, "step", "t", false, "Start paused and step manually")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "Print the moves instead of animating them")
	a.bind(cmd, config.KeyInterval, "interval")

	return cmd
}

func printReplay(w io.Writer, c *twisty.Cube, moves []twisty.Move, r *render.Renderer) error {
	for i, m := range moves {
		c.ApplyMove(m)
		fmt.Fprintf(w, "%3d. %-4s %s\n", i+1, m.Notation(), notation.Describe(m))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, r.Net(c))
	return nil
}

// Replay model
type replayModel struct {
	cube     *twisty.Cube
	moves    []twisty.Move
	index    int // Moves applied so far
	interval time.Duration
	paused   bool
	stepMode bool
	tick     int // Generation of the pending tick; stale ticks are ignored
	renderer *render.Renderer
	keys     replayKeyMap
	help     help.Model
	quitting bool
}

type replayStepMsg struct{ tick int }

func newReplayModel(c *twisty.Cube, moves []twisty.Move, interval time.Duration, stepMode bool, r *render.Renderer) *replayModel {
	return &replayModel{
		cube:     c,
		moves:    moves,
		interval: interval,
		paused:   stepMode, // Start paused in step mode
		stepMode: stepMode,
		renderer: r,
		keys:     defaultReplayKeyMap(),
		help:     help.New(),
	}
}

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil // Wait for user input in step mode
	}
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if m.done() {
		return nil
	}
	m.tick++
	tick := m.tick
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return replayStepMsg{tick: tick}
	})
}

func (m *replayModel) done() bool {
	return m.index >= len(m.moves)
}

func (m *replayModel) advance() {
	if m.done() {
		return
	}
	m.cube.ApplyMove(m.moves[m.index])
	m.index++
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if !m.paused {
				return m, m.scheduleNext()
			}
			m.tick++ // Drop the pending tick

		case key.Matches(msg, m.keys.Step):
			if m.paused {
				m.advance()
			}

		case key.Matches(msg, m.keys.Restart):
			m.cube.Reset()
			m.index = 0
			m.tick++
			if !m.paused {
				return m, m.scheduleNext()
			}

		case key.Matches(msg, m.keys.Faster):
			m.interval = max(m.interval/2, minInterval)

		case key.Matches(msg, m.keys.Slower):
			m.interval = min(m.interval*2, maxInterval)
		}

	case replayStepMsg:
		if msg.tick != m.tick || m.paused {
			return m, nil
		}
		m.advance()
		return m, m.scheduleNext()
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("twisty replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%s per move)\n\n", m.interval))

	b.WriteString(m.renderer.Net(m.cube))
	b.WriteString("\n")

	if m.index > 0 {
		last := m.moves[m.index-1]
		b.WriteString(moveStyle.Render(fmt.Sprintf("%s  %s", last.Notation(), notation.Describe(last))))
		b.WriteString("\n")
	}
	if !m.done() {
		b.WriteString(statusStyle.Render("Next: " + m.moves[m.index].Notation()))
		b.WriteString("\n")
	} else if m.cube.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

var (
	_ tea.Model = (*replayModel)(nil)
	_ tea.Model = (*playModel)(nil)
)
