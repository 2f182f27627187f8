package twisty

import (
	"strings"
)

// Symbol is a move letter in standard notation.
type Symbol string

const (
	SymU Symbol = "U" // Up
	SymD Symbol = "D" // Down
	SymL Symbol = "L" // Left
	SymR Symbol = "R" // Right
	SymF Symbol = "F" // Front
	SymB Symbol = "B" // Back
	SymX Symbol = "x" // Whole cube with R
	SymY Symbol = "y" // Whole cube with U
	SymZ Symbol = "z" // Whole cube with F
	SymM Symbol = "M" // Slice with L
	SymE Symbol = "E" // Slice with D
	SymS Symbol = "S" // Slice with F
)

// faceSymbols maps Face to its notation letter.
var faceSymbols = [6]Symbol{SymU, SymL, SymF, SymR, SymB, SymD}

// SymbolFor returns the notation letter of a face turn.
func SymbolFor(f Face) Symbol {
	return faceSymbols[f]
}

// Face returns the face a face-turn symbol acts on.
func (s Symbol) Face() (Face, bool) {
	for f, sym := range faceSymbols {
		if sym == s {
			return Face(f), true
		}
	}
	return 0, false
}

// IsRotation reports whether s is a whole-cube rotation.
func (s Symbol) IsRotation() bool {
	return s == SymX || s == SymY || s == SymZ
}

// IsSlice reports whether s is a middle-layer move.
func (s Symbol) IsSlice() bool {
	return s == SymM || s == SymE || s == SymS
}

// Move is a single turn in notation form.
type Move struct {
	Symbol Symbol // Which layer or axis to turn
	Turn   Turn   // Direction and amount
	Wide   bool   // Face turns only: also turn the adjacent inner layers
}

// Notation returns the standard notation string for this move.
// Wide face turns are written in lowercase. Examples: R, R', R2, r', x2.
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	sym := string(m.Symbol)
	if _, ok := m.Symbol.Face(); ok && m.Wide {
		sym = strings.ToLower(sym)
	}
	return sym + suffix
}

// Inverse returns the move that undoes this one.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	m.Turn = m.Turn.Inverse()
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses one notation token into a Move.
// The letter is one of U D L R F B x y z, or u d l r f b for a wide turn,
// optionally followed by ' (anticlockwise) or 2 (double). 2' is read as a
// double turn.
// Returns ErrInvalidNotation for anything else.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var m Move
	switch s[0] {
	case 'U', 'D', 'L', 'R', 'F', 'B':
		m.Symbol = Symbol(s[:1])
	case 'u', 'd', 'l', 'r', 'f', 'b':
		m.Symbol = Symbol(strings.ToUpper(s[:1]))
		m.Wide = true
	case 'x', 'y', 'z':
		m.Symbol = Symbol(s[:1])
	default:
		return Move{}, ErrInvalidNotation
	}

	m.Turn = CW
	switch s[1:] {
	case "":
	case "'":
		m.Turn = CCW
	case "2", "2'":
		m.Turn = Double
	default:
		return Move{}, ErrInvalidNotation
	}

	return m, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Invalid tokens are skipped; the error is always nil and is kept for
// callers that want to treat parsing uniformly.
func ParseMoves(s string) ([]Move, error) {
	moves, _ := parseMoves(s)
	return moves, nil
}

// parseMoves is ParseMoves that also reports the skipped tokens.
func parseMoves(s string) ([]Move, []string) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	var skipped []string

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			skipped = append(skipped, part)
			continue
		}
		moves = append(moves, move)
	}

	return moves, skipped
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: reverse order, each
// turn inverted.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// ApplyMove applies a Move to the cube.
func (c *Cube) ApplyMove(m Move) {
	if face, ok := m.Symbol.Face(); ok {
		c.Turn(face, m.Turn, m.Wide)
		return
	}

	switch m.Symbol {
	case SymX:
		c.X(m.Turn)
	case SymY:
		c.Y(m.Turn)
	case SymZ:
		c.Z(m.Turn)
	case SymM:
		c.M(m.Turn)
	case SymE:
		c.E(m.Turn)
	case SymS:
		c.S(m.Turn)
	}
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []Move) {
	c.Apply(moves...)
}

// ApplyNotation parses a notation string and applies it. Unrecognized
// tokens are skipped, never partially applied, and returned so a caller can
// report them.
func (c *Cube) ApplyNotation(s string) (skipped []string) {
	moves, skipped := parseMoves(s)
	for _, tok := range skipped {
		c.cfg.logger.Debug("skipping unrecognized token", "token", tok)
	}
	c.Apply(moves...)
	return skipped
}

// DoAlgorithm applies a notation string, silently skipping unknown tokens.
func (c *Cube) DoAlgorithm(s string) {
	c.ApplyNotation(s)
}
