package notation

import (
	"strings"

	"github.com/SeamusWaldron/twisty"
)

var layerNames = map[twisty.Symbol]string{
	twisty.SymU: "Up",
	twisty.SymD: "Down",
	twisty.SymL: "Left",
	twisty.SymR: "Right",
	twisty.SymF: "Front",
	twisty.SymB: "Back",
	twisty.SymM: "Middle slice",
	twisty.SymE: "Equator slice",
	twisty.SymS: "Standing slice",
}

func turnPhrase(t twisty.Turn) string {
	switch t {
	case twisty.CW:
		return "clockwise"
	case twisty.CCW:
		return "anticlockwise"
	case twisty.Double:
		return "twice"
	default:
		return "not at all"
	}
}

// Describe returns a plain-English phrase for a move.
//
// Examples:
//
//	U   -> "Up clockwise"
//	r'  -> "wide Right anticlockwise"
//	x2  -> "rotate x twice"
//	M   -> "Middle slice clockwise"
func Describe(m twisty.Move) string {
	if m.Symbol.IsRotation() {
		return "rotate " + string(m.Symbol) + " " + turnPhrase(m.Turn)
	}

	name, ok := layerNames[m.Symbol]
	if !ok {
		return m.Notation() // Fallback to standard notation
	}
	if m.Wide {
		name = "wide " + name
	}
	return name + " " + turnPhrase(m.Turn)
}

// DescribeSequence converts a slice of moves to phrases.
func DescribeSequence(moves []twisty.Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = Describe(m)
	}
	return result
}

// FormatDescribed formats moves as a comma-separated list of phrases.
func FormatDescribed(moves []twisty.Move) string {
	return strings.Join(DescribeSequence(moves), ", ")
}
