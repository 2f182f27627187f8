package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/config"
	"github.com/SeamusWaldron/twisty/internal/render"
)

var errNotTerminal = errors.New("play needs an interactive terminal")

// playKeyMap defines key bindings for the play screen.
type playKeyMap struct {
	Turn     key.Binding
	Prime    key.Binding
	Rotate   key.Binding
	Wide     key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Scramble key.Binding
	Reset    key.Binding
	Type     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Turn, k.Prime, k.Wide, k.Undo, k.Type, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Turn, k.Prime, k.Rotate, k.Wide},
		{k.Undo, k.Redo, k.Scramble, k.Reset},
		{k.Type, k.Help, k.Quit},
	}
}

func defaultPlayKeyMap() playKeyMap {
	return playKeyMap{
		Turn: key.NewBinding(
			key.WithKeys("u", "d", "l", "r", "f", "b"),
			key.WithHelp("udlrfb", "turn face"),
		),
		Prime: key.NewBinding(
			key.WithKeys("U", "D", "L", "R", "F", "B"),
			key.WithHelp("shift", "turn back"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("x", "y", "z", "X", "Y", "Z"),
			key.WithHelp("xyz", "rotate cube"),
		),
		Wide: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "wide on/off"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z", "backspace"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		Scramble: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "scramble"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Type: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "type moves"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Turn a cube interactively",
		Long: `Open an interactive cube. Press a face letter to turn it clockwise,
hold shift to turn it back, tab to switch to wide turns and : to type a
sequence in notation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errNotTerminal
			}

			c, err := a.newCube(twisty.WithCollisionPolicy(a.cfg.CollisionPolicy()))
			if err != nil {
				return err
			}

			m := newPlayModel(twisty.NewTracker(c), a.renderer(os.Stdout), a.cfg.Length)
			m.help.Width, _ = terminalSize()

			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("play error: %w", err)
			}
			return nil
		},
	}
}

// Model
type playModel struct {
	tracker  *twisty.Tracker
	renderer *render.Renderer
	keys     playKeyMap
	help     help.Model
	input    textinput.Model
	length   int // Scramble length

	typing   bool
	wide     bool
	status   string
	err      string
	quitting bool
}

func newPlayModel(t *twisty.Tracker, r *render.Renderer, length int) *playModel {
	ti := textinput.New()
	ti.Placeholder = "R U R' U'"
	ti.Prompt = "moves> "
	ti.CharLimit = 256

	if length <= 0 {
		length = config.DefaultLength
	}

	m := &playModel{
		tracker:  t,
		renderer: r,
		keys:     defaultPlayKeyMap(),
		help:     help.New(),
		input:    ti,
		length:   length,
	}
	t.OnSolved(func(moves int) {
		m.status = fmt.Sprintf("Solved after %d moves!", moves)
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *playModel) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.typing = false
		m.input.Blur()
		m.status = ""
		m.err = ""
		if skipped := m.tracker.ApplyNotation(m.input.Value()); len(skipped) > 0 {
			m.err = "skipped: " + strings.Join(skipped, " ")
		}
		m.input.Reset()
		return m, nil

	case tea.KeyEsc:
		m.typing = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Turn), key.Matches(msg, m.keys.Prime):
		m.status = ""
		m.tracker.Apply(m.faceMove(msg.String()))

	case key.Matches(msg, m.keys.Rotate):
		m.status = ""
		mv := twisty.Move{Symbol: twisty.Symbol(strings.ToLower(msg.String())), Turn: twisty.CW}
		if msg.String() != strings.ToLower(msg.String()) {
			mv.Turn = twisty.CCW
		}
		m.tracker.Apply(mv)

	case key.Matches(msg, m.keys.Wide):
		m.wide = !m.wide

	case key.Matches(msg, m.keys.Undo):
		if !m.tracker.Undo() {
			m.err = "nothing to undo"
		}

	case key.Matches(msg, m.keys.Redo):
		if !m.tracker.Redo() {
			m.err = "nothing to redo"
		}

	case key.Matches(msg, m.keys.Scramble):
		s, err := m.tracker.Scramble(m.length)
		if err != nil {
			m.err = err.Error()
			break
		}
		m.status = "Scramble: " + s.Notation()

	case key.Matches(msg, m.keys.Reset):
		m.tracker.Reset()
		m.status = ""

	case key.Matches(msg, m.keys.Type):
		m.typing = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// faceMove maps a face key to a move: lowercase turns clockwise, uppercase
// anticlockwise. Wide mode applies to both.
func (m *playModel) faceMove(k string) twisty.Move {
	mv := twisty.Move{Symbol: twisty.Symbol(strings.ToUpper(k)), Turn: twisty.CW, Wide: m.wide}
	if k == strings.ToUpper(k) {
		mv.Turn = twisty.CCW
	}
	return mv
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	c := m.tracker.Cube()

	b.WriteString(titleStyle.Render(fmt.Sprintf("twisty %dx%dx%d", c.Size(), c.Size(), c.Size())))
	if m.wide {
		b.WriteString(statusStyle.Render("  [WIDE]"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Net(c))
	b.WriteString("\n")

	history := m.tracker.History()
	b.WriteString(fmt.Sprintf("Moves: %d  ", len(history)))
	b.WriteString(moveStyle.Render(recentMoves(history, 20)))
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString(" ")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
