package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/twisty"
)

func scrambled(t *testing.T, n int) *twisty.Cube {
	t.Helper()
	c, err := twisty.New(n, twisty.WithSeed(11))
	require.NoError(t, err)
	_, err = c.Scramble(30)
	require.NoError(t, err)
	return c
}

func TestPlainNetMatchesString(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		c := scrambled(t, n)
		assert.Equal(t, c.String(), New(true).Net(c))
	}
}

func TestColorNetWidth(t *testing.T) {
	c := scrambled(t, 3)
	lines := strings.Split(strings.TrimSuffix(New(false).Net(c), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, 7+6, lipgloss.Width(lines[0]))
	assert.Equal(t, 4*6+3, lipgloss.Width(lines[3]))
}

func TestPanelsMatchFaceGrids(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		c := scrambled(t, n)
		up, front, right := Panels(c)
		assert.Equal(t, c.FaceGrid(twisty.Up), up, "n=%d up", n)
		assert.Equal(t, c.FaceGrid(twisty.Front), front, "n=%d front", n)
		assert.Equal(t, c.FaceGrid(twisty.Right), right, "n=%d right", n)
	}
}

// stub answers every query with the face's solved color.
type stub struct{ n int }

func (s stub) Size() int { return s.n }

func (s stub) Visible(x, y, z int, face twisty.Face) bool { return true }

func (s stub) FaceColor(x, y, z int, face twisty.Face) twisty.Color {
	return face.SolvedColor()
}

func TestViewUsesOnlyFaceletSource(t *testing.T) {
	out := New(true).View(stub{n: 2})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "W W", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "W W", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "G G  R R", strings.TrimRight(lines[2], " "))
	assert.Equal(t, "G G  R R", strings.TrimRight(lines[3], " "))
}

func TestViewAfterMove(t *testing.T) {
	c := twisty.MustNew(3)
	c.Right(twisty.CW, false)
	out := New(true).View(c)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)

	// R brings the front column up and the down column to the front.
	assert.Equal(t, "W W G", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "G G Y  R R R", strings.TrimRight(lines[3], " "))
}

func TestPlain(t *testing.T) {
	assert.True(t, New(true).Plain())
	assert.False(t, New(false).Plain())
}
