// Package render draws cubes for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/twisty"
)

// Sticker colors, close to the usual plastic.
var palette = map[twisty.Color]lipgloss.Color{
	twisty.White:  lipgloss.Color("#FFFFFF"),
	twisty.Yellow: lipgloss.Color("#FFD500"),
	twisty.Orange: lipgloss.Color("#FF5800"),
	twisty.Red:    lipgloss.Color("#C41E3A"),
	twisty.Green:  lipgloss.Color("#009E60"),
	twisty.Blue:   lipgloss.Color("#0051BA"),
	twisty.Black:  lipgloss.Color("#000000"),
}

// Renderer turns cube state into text. Every sticker is two cells wide.
type Renderer struct {
	plain  bool
	styles map[twisty.Color]lipgloss.Style
}

// New creates a renderer. In plain mode stickers are drawn as their color
// letter with no escape codes, for pipes and dumb terminals.
func New(plain bool) *Renderer {
	r := &Renderer{plain: plain, styles: make(map[twisty.Color]lipgloss.Style, len(palette))}
	for c, col := range palette {
		r.styles[c] = lipgloss.NewStyle().Background(col)
	}
	return r
}

// Plain reports whether r draws without color.
func (r *Renderer) Plain() bool {
	return r.plain
}

func (r *Renderer) sticker(c twisty.Color) string {
	if r.plain {
		return c.String() + " "
	}
	return r.styles[c].Render("  ")
}

func (r *Renderer) row(colors []twisty.Color) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(r.sticker(c))
	}
	return b.String()
}

// Net draws the unfolded cube: Up on top, then Left, Front, Right and Back
// side by side, then Down. In plain mode the output matches Cube.String.
func (r *Renderer) Net(c *twisty.Cube) string {
	n := c.Size()
	indent := strings.Repeat(" ", 2*n+1)
	grids := make([][][]twisty.Color, len(twisty.Faces))
	for _, f := range twisty.Faces {
		grids[f] = c.FaceGrid(f)
	}

	var b strings.Builder
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		b.WriteString(r.row(grids[twisty.Up][row]))
		b.WriteByte('\n')
	}
	for row := 0; row < n; row++ {
		for i, f := range []twisty.Face{twisty.Left, twisty.Front, twisty.Right, twisty.Back} {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(r.row(grids[f][row]))
		}
		b.WriteByte('\n')
	}
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		b.WriteString(r.row(grids[twisty.Down][row]))
		b.WriteByte('\n')
	}
	return b.String()
}

// Panels returns the three faces a viewer sees from the upper front right
// corner, read purely through the lattice.
//
// Each panel is indexed [row][col]. Up is seen from above with Back at the
// top, Front straight on, Right from the right with Up at the top.
func Panels(q twisty.FaceletSource) (up, front, right [][]twisty.Color) {
	n := q.Size()
	up, front, right = grid(n), grid(n), grid(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			up[row][col] = q.FaceColor(col, 0, n-1-row, twisty.Up)
			front[row][col] = q.FaceColor(col, row, 0, twisty.Front)
			right[row][col] = q.FaceColor(n-1, row, col, twisty.Right)
		}
	}
	return up, front, right
}

func grid(n int) [][]twisty.Color {
	g := make([][]twisty.Color, n)
	for i := range g {
		g[i] = make([]twisty.Color, n)
	}
	return g
}

// View draws the Up panel above the Front panel, with the Right panel
// beside it.
func (r *Renderer) View(q twisty.FaceletSource) string {
	up, front, right := Panels(q)

	block := func(g [][]twisty.Color) string {
		lines := make([]string, len(g))
		for i, row := range g {
			lines[i] = r.row(row)
		}
		return strings.Join(lines, "\n")
	}

	lower := lipgloss.JoinHorizontal(lipgloss.Top, block(front), " ", block(right))
	return lipgloss.JoinVertical(lipgloss.Left, block(up), lower) + "\n"
}
