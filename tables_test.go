package twisty

import "testing"

var opposite = [6]Face{Up: Down, Left: Right, Front: Back, Right: Left, Back: Front, Down: Up}

func TestAdjacencySidesRing(t *testing.T) {
	for _, face := range Faces {
		adj := FaceAdjacency[face]
		seen := make(map[Face]bool)
		for _, side := range adj.Sides {
			if side == face || side == opposite[face] {
				t.Errorf("%v ring should not contain %v", face, side)
			}
			if seen[side] {
				t.Errorf("%v ring lists %v twice", face, side)
			}
			seen[side] = true
		}
	}
}

func TestBandCellsOnEdge(t *testing.T) {
	for _, n := range testSizes {
		for _, b := range []Band{BandTop, BandBottom, BandLeft, BandRight} {
			cells := make(map[[2]int]bool)
			for i := 0; i < n; i++ {
				row, col := b.cell(n, i)
				if row != 0 && row != n-1 && col != 0 && col != n-1 {
					t.Errorf("n=%d %v cell %d (%d,%d) is not on the edge", n, b, i, row, col)
				}
				cells[[2]int{row, col}] = true
			}
			if len(cells) != n {
				t.Errorf("n=%d %v has %d distinct cells, want %d", n, b, len(cells), n)
			}
		}
	}
}

func TestRotationSidesRing(t *testing.T) {
	for axis, rot := range AxisRotation {
		if opposite[rot.Leading] != rot.Trailing {
			t.Errorf("%v leading %v and trailing %v should be opposite", Axis(axis), rot.Leading, rot.Trailing)
		}
		for _, side := range rot.Sides {
			if side == rot.Leading || side == rot.Trailing {
				t.Errorf("%v sides should not contain %v", Axis(axis), side)
			}
		}
	}
}

func TestWidePairs(t *testing.T) {
	tests := []struct {
		face     Face
		slice    Slice
		inverted bool
	}{
		{Up, SliceE, true},
		{Left, SliceM, false},
		{Front, SliceS, false},
		{Right, SliceM, true},
		{Back, SliceS, true},
		{Down, SliceE, false},
	}

	for _, tt := range tests {
		got := FaceWidePair[tt.face]
		if got.Slice != tt.slice || got.Inverted != tt.inverted {
			t.Errorf("FaceWidePair[%v] = %v/%v, want %v/%v", tt.face, got.Slice, got.Inverted, tt.slice, tt.inverted)
		}
	}
}

func TestTurnQuarters(t *testing.T) {
	tests := []struct {
		turn     Turn
		quarters int
		inverse  Turn
	}{
		{TurnNone, 0, TurnNone},
		{CW, 1, CCW},
		{CCW, 3, CW},
		{Double, 2, Double},
	}

	for _, tt := range tests {
		if got := tt.turn.Quarters(); got != tt.quarters {
			t.Errorf("%v.Quarters() = %d, want %d", tt.turn, got, tt.quarters)
		}
		if got := tt.turn.Inverse(); got != tt.inverse {
			t.Errorf("%v.Inverse() = %v, want %v", tt.turn, got, tt.inverse)
		}
		if got := InverseTurn(tt.turn); got != tt.inverse {
			t.Errorf("InverseTurn(%v) = %v, want %v", tt.turn, got, tt.inverse)
		}
		if got := TurnFromQuarters(tt.quarters); got != tt.turn {
			t.Errorf("TurnFromQuarters(%d) = %v, want %v", tt.quarters, got, tt.turn)
		}
	}

	if got := TurnFromQuarters(-1); got != CCW {
		t.Errorf("TurnFromQuarters(-1) = %v, want %v", got, CCW)
	}
	if got := TurnFromQuarters(6); got != Double {
		t.Errorf("TurnFromQuarters(6) = %v, want %v", got, Double)
	}
}
