package twisty

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// scrambleTurns are the turn types a scramble samples from.
var scrambleTurns = [3]Turn{CW, CCW, Double}

// Scramble is a generated move sequence together with the sequence that
// undoes it.
type Scramble struct {
	ID       string // Random identifier for referring to this scramble
	Size     int    // Cube size it was generated for
	Moves    []Move
	Solution []Move
}

// Notation returns the scramble as a notation string.
func (s Scramble) Notation() string {
	return FormatMoves(s.Moves)
}

// SolutionNotation returns the solution as a notation string.
func (s Scramble) SolutionNotation() string {
	return FormatMoves(s.Solution)
}

// Scramble resets the cube to solved and applies length random face turns.
// No two consecutive moves turn the same face. What happens when the sampler
// picks the previous face again depends on the CollisionPolicy option.
func (c *Cube) Scramble(length int) (Scramble, error) {
	if length < 0 {
		return Scramble{}, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	c.Reset()
	rng := c.cfg.rng
	moves := make([]Move, 0, length)
	last := Face(-1)

	for i := 0; i < length; i++ {
		face := Face(rng.IntN(6))
		turn := scrambleTurns[rng.IntN(3)]
		if face == last {
			if c.cfg.collision == CollisionSkip {
				c.cfg.logger.Debug("scramble slot dropped", "slot", i, "face", face)
				continue
			}
			for face == last {
				face = Face(rng.IntN(6))
				turn = scrambleTurns[rng.IntN(3)]
			}
		}
		last = face

		m := Move{Symbol: SymbolFor(face), Turn: turn}
		c.ApplyMove(m)
		moves = append(moves, m)
	}

	return Scramble{
		ID:       uuid.New().String(),
		Size:     c.n,
		Moves:    moves,
		Solution: InvertMoves(moves),
	}, nil
}

// Shuffle scrambles the cube and returns the scramble in notation. When
// giveSolution is set the solution follows on a second line.
// A negative length scrambles nothing.
func (c *Cube) Shuffle(giveSolution bool, length int) string {
	s, err := c.Scramble(max(length, 0))
	if err != nil {
		return ""
	}
	if !giveSolution {
		return s.Notation()
	}
	return strings.Join([]string{s.Notation(), s.SolutionNotation()}, "\n")
}
