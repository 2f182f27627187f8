package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/config"
	"github.com/SeamusWaldron/twisty/internal/render"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "twisty "+version+"\n", out)
}

func TestScrambleText(t *testing.T) {
	out, _, err := run(t, "scramble", "--seed", "9", "--length", "12", "--solution")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Fields(lines[0]), 12)

	c := twisty.MustNew(3)
	c.DoAlgorithm(lines[0])
	c.DoAlgorithm(lines[1])
	assert.True(t, c.IsSolved(), "solution line should undo the scramble")
}

func TestScrambleSeedIsReproducible(t *testing.T) {
	a, _, err := run(t, "scramble", "--seed", "4")
	require.NoError(t, err)
	b, _, err := run(t, "scramble", "--seed", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScrambleJSON(t *testing.T) {
	out, _, err := run(t, "scramble", "-n", "4", "--seed", "3", "--format", "json", "--solution")
	require.NoError(t, err)

	var res scrambleOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 4, res.Size)
	assert.Equal(t, "resample", res.Policy)
	require.NotNil(t, res.Seed)
	assert.Equal(t, uint64(3), *res.Seed)
	assert.Equal(t, config.DefaultLength, res.Length)
	assert.Equal(t, res.Length, res.Count)
	assert.Len(t, strings.Fields(res.Moves), res.Count)

	c := twisty.MustNew(4)
	c.DoAlgorithm(res.Moves)
	c.DoAlgorithm(res.Solution)
	assert.True(t, c.IsSolved())
}

func TestScrambleYAMLSkipPolicy(t *testing.T) {
	out, _, err := run(t, "scramble", "--format", "yaml", "--policy", "skip", "--length", "30")
	require.NoError(t, err)

	var res scrambleOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "skip", res.Policy)
	assert.Nil(t, res.Seed)
	assert.Equal(t, 30, res.Length)
	assert.LessOrEqual(t, res.Count, 30)
	assert.Empty(t, res.Solution)
}

func TestScrambleRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"size", []string{"scramble", "--size", "1"}, config.ErrSizeInvalid},
		{"length", []string{"scramble", "--length", "-2"}, config.ErrLengthInvalid},
		{"policy", []string{"scramble", "--policy", "never"}, config.ErrPolicyUnknown},
		{"format", []string{"scramble", "--format", "toml"}, config.ErrFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScrambleFromEnv(t *testing.T) {
	t.Setenv("TWISTY_LENGTH", "7")
	out, _, err := run(t, "scramble")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 7)
}

func TestApply(t *testing.T) {
	out, errOut, err := run(t, "apply", "R U R' U'", "M", "Q", "--explain", "--simplify")
	require.NoError(t, err)

	assert.Contains(t, out, "Moves: R U R' U' (4)")
	assert.Contains(t, out, "Simplified: R U R' U' (4, 0 cancellations, 100% of original)")
	assert.Contains(t, out, "  1. R    Right clockwise")
	assert.Contains(t, out, "  4. U'   Up anticlockwise")
	assert.Contains(t, out, "Solved: false")
	assert.Contains(t, errOut, "skipped unrecognized tokens")
}

func TestApplyDrawsPlainNet(t *testing.T) {
	out, _, err := run(t, "apply", "-n", "2", "R", "R'")
	require.NoError(t, err)
	assert.Contains(t, out, twisty.MustNew(2).String())
	assert.Contains(t, out, "Solved: true (6/6 faces complete)")
}

func TestApplyView(t *testing.T) {
	out, _, err := run(t, "apply", "--view", "R")
	require.NoError(t, err)
	assert.Contains(t, out, "G G Y  R R R")
}

func TestReplayPrintsMoves(t *testing.T) {
	out, _, err := run(t, "replay", "--no-tui", "R U2 x")
	require.NoError(t, err)
	assert.Contains(t, out, "  1. R    Right clockwise")
	assert.Contains(t, out, "  2. U2   Up twice")
	assert.Contains(t, out, "  3. x    rotate x clockwise")
}

func TestReplayNeedsMoves(t *testing.T) {
	_, _, err := run(t, "replay", "nothing here")
	assert.Error(t, err)
}

func TestPlayNeedsTerminal(t *testing.T) {
	_, _, err := run(t, "play")
	assert.ErrorIs(t, err, errNotTerminal)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestPlay() *playModel {
	return newPlayModel(twisty.NewTracker(twisty.MustNew(3)), render.New(true), 10)
}

func TestPlayTurns(t *testing.T) {
	m := newTestPlay()
	m.Update(runes("r"))
	m.Update(runes("U"))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runes("f"))
	m.Update(runes("B"))
	m.Update(runes("y"))
	m.Update(runes("Z"))

	assert.Equal(t, "R U' f b' y z'", twisty.FormatMoves(m.tracker.History()))
	assert.True(t, m.wide)
	assert.Contains(t, m.View(), "[WIDE]")
}

func TestPlayUndoRedo(t *testing.T) {
	m := newTestPlay()
	m.Update(runes("r"))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.True(t, m.tracker.IsSolved())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "nothing to undo", m.err)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "R", twisty.FormatMoves(m.tracker.History()))
}

func TestPlaySolvedStatus(t *testing.T) {
	m := newTestPlay()
	m.Update(runes("r"))
	m.Update(runes("R"))
	assert.Equal(t, "Solved after 2 moves!", m.status)
	assert.Contains(t, m.View(), "SOLVED")
}

func TestPlayScrambleAndReset(t *testing.T) {
	m := newTestPlay()
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.tracker.IsSolved())
	assert.True(t, strings.HasPrefix(m.status, "Scramble: "))
	assert.Empty(t, m.tracker.History())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.tracker.IsSolved())
}

func TestPlayTyping(t *testing.T) {
	m := newTestPlay()
	m.Update(runes(":"))
	require.True(t, m.typing)

	// Face keys are text while typing.
	m.Update(runes("r"))
	assert.Empty(t, m.tracker.History())

	m.input.SetValue("R U nope")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.typing)
	assert.Equal(t, "R U", twisty.FormatMoves(m.tracker.History()))
	assert.Equal(t, "skipped: nope", m.err)

	m.Update(runes(":"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.typing)
}

func TestPlayQuit(t *testing.T) {
	m := newTestPlay()
	_, cmd := m.Update(runes("q"))
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func newTestReplay(t *testing.T, alg string, step bool) *replayModel {
	t.Helper()
	moves, err := twisty.ParseMoves(alg)
	require.NoError(t, err)
	return newReplayModel(twisty.MustNew(3), moves, 100*time.Millisecond, step, render.New(true))
}

func TestReplayTicks(t *testing.T) {
	m := newTestReplay(t, "R U R'", false)
	require.NotNil(t, m.Init())

	m.Update(replayStepMsg{tick: m.tick})
	assert.Equal(t, 1, m.index)

	// A stale tick does nothing.
	m.Update(replayStepMsg{tick: m.tick - 1})
	assert.Equal(t, 1, m.index)

	m.Update(replayStepMsg{tick: m.tick})
	_, cmd := m.Update(replayStepMsg{tick: m.tick})
	assert.Equal(t, 3, m.index)
	assert.Nil(t, cmd, "no tick after the last move")

	want := twisty.MustNew(3)
	want.Apply(twisty.R, twisty.U, twisty.RPrime)
	assert.True(t, m.cube.Equal(want))
}

func TestReplayStepMode(t *testing.T) {
	m := newTestReplay(t, "R U", true)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "[STEP MODE]")

	m.Update(runes("n"))
	assert.Equal(t, 1, m.index)

	m.Update(runes("r"))
	assert.Equal(t, 0, m.index)
	assert.True(t, m.cube.IsSolved())
}

func TestReplayPause(t *testing.T) {
	m := newTestReplay(t, "R U", false)
	m.Init()
	pending := m.tick

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.paused)
	m.Update(replayStepMsg{tick: pending})
	assert.Equal(t, 0, m.index, "pausing drops the pending tick")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.paused)
	assert.NotNil(t, cmd)
}

func TestReplaySpeed(t *testing.T) {
	m := newTestReplay(t, "R", false)
	for i := 0; i < 10; i++ {
		m.Update(runes("+"))
	}
	assert.Equal(t, minInterval, m.interval)

	for i := 0; i < 10; i++ {
		m.Update(runes("-"))
	}
	assert.Equal(t, maxInterval, m.interval)
}
