package twisty

// Tracker wraps a Cube and keeps the history of applied moves so they can
// be undone and redone.
type Tracker struct {
	cube      *Cube
	history   []Move
	undone    []Move // Most recently undone move last
	wasSolved bool
	onSolved  func(moves int)
}

// NewTracker creates a tracker over c. The cube's current state is the
// starting point; the history starts empty.
func NewTracker(c *Cube) *Tracker {
	return &Tracker{
		cube:      c,
		wasSolved: c.IsSolved(),
	}
}

// OnSolved sets a callback that fires when a move brings the cube into the
// solved state. It receives the number of moves in the history.
func (t *Tracker) OnSolved(cb func(moves int)) {
	t.onSolved = cb
}

// Apply applies moves and records them. Redo history is discarded.
func (t *Tracker) Apply(moves ...Move) {
	for _, m := range moves {
		t.cube.ApplyMove(m)
		t.history = append(t.history, m)
		t.checkSolved()
	}
	if len(moves) > 0 {
		t.undone = t.undone[:0]
	}
}

// ApplyNotation parses s, applies the recognized moves and returns the
// skipped tokens.
func (t *Tracker) ApplyNotation(s string) []string {
	moves, skipped := parseMoves(s)
	t.Apply(moves...)
	return skipped
}

// Undo reverts the last move. It returns false if there is nothing to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	m := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube.ApplyMove(m.Inverse())
	t.undone = append(t.undone, m)
	t.checkSolved()
	return true
}

// Redo reapplies the last undone move. It returns false if there is none.
func (t *Tracker) Redo() bool {
	if len(t.undone) == 0 {
		return false
	}
	m := t.undone[len(t.undone)-1]
	t.undone = t.undone[:len(t.undone)-1]
	t.cube.ApplyMove(m)
	t.history = append(t.history, m)
	t.checkSolved()
	return true
}

// Scramble scrambles the cube and clears the history, so that the
// scramble itself cannot be undone move by move.
func (t *Tracker) Scramble(length int) (Scramble, error) {
	s, err := t.cube.Scramble(length)
	if err != nil {
		return Scramble{}, err
	}
	t.clear()
	return s, nil
}

// Reset resets the cube to solved and clears the history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.clear()
}

func (t *Tracker) clear() {
	t.history = t.history[:0]
	t.undone = t.undone[:0]
	t.wasSolved = t.cube.IsSolved()
}

// checkSolved fires the callback on the transition into solved.
func (t *Tracker) checkSolved() {
	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.onSolved != nil {
		t.onSolved(len(t.history))
	}
	t.wasSolved = solved
}

// History returns a copy of the applied moves, oldest first.
func (t *Tracker) History() []Move {
	return append([]Move(nil), t.history...)
}

// CanUndo reports whether Undo would do anything.
func (t *Tracker) CanUndo() bool {
	return len(t.history) > 0
}

// CanRedo reports whether Redo would do anything.
func (t *Tracker) CanRedo() bool {
	return len(t.undone) > 0
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
