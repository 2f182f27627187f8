package twisty

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    Move
		wantErr bool
	}{
		{"R", R, false},
		{"R'", RPrime, false},
		{"R2", R2, false},
		{"U2'", U2, false},
		{"r", Wide(R), false},
		{"b'", Move{Symbol: SymB, Turn: CCW, Wide: true}, false},
		{"x", X, false},
		{"y'", YPrime, false},
		{"z2", Move{Symbol: SymZ, Turn: Double}, false},
		{" F ", F, false},
		{"", Move{}, true},
		{"M", Move{}, true},
		{"E'", Move{}, true},
		{"X", Move{}, true},
		{"R3", Move{}, true},
		{"R''", Move{}, true},
		{"Q", Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNotation) {
					t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves error: %v", err)
	}

	expected := []Move{R, U, RPrime, UPrime}
	if len(moves) != len(expected) {
		t.Fatalf("ParseMoves returned %d moves, want %d", len(moves), len(expected))
	}
	for i, m := range moves {
		if m != expected[i] {
			t.Errorf("move %d: got %v, want %v", i, m, expected[i])
		}
	}
}

func TestParseMovesSkipsUnknownTokens(t *testing.T) {
	moves, skipped := parseMoves("R  Q U\tM2 F'' x")
	if got := FormatMoves(moves); got != "R U x" {
		t.Errorf("parsed %q, want %q", got, "R U x")
	}
	want := []string{"Q", "M2", "F''"}
	if len(skipped) != len(want) {
		t.Fatalf("skipped %v, want %v", skipped, want)
	}
	for i := range want {
		if skipped[i] != want[i] {
			t.Errorf("skipped[%d] = %q, want %q", i, skipped[i], want[i])
		}
	}
}

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{R, "R"},
		{RPrime, "R'"},
		{R2, "R2"},
		{Wide(UPrime), "u'"},
		{Wide(X), "x"},
		{M, "M"},
		{EPrime, "E'"},
		{Move{Symbol: SymZ, Turn: Double}, "z2"},
	}

	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("%+v.Notation() = %q, want %q", tt.move, got, tt.want)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	const alg = "R U' F2 l b' d2 x y' z2"
	moves, _ := ParseMoves(alg)
	if got := FormatMoves(moves); got != alg {
		t.Errorf("FormatMoves(ParseMoves(%q)) = %q", alg, got)
	}
}

func TestInvertMoves(t *testing.T) {
	got := FormatMoves(InvertMoves([]Move{R, U2, Wide(FPrime), X}))
	want := "x' f U2 R'"
	if got != want {
		t.Errorf("InvertMoves = %q, want %q", got, want)
	}
	if FormatMoves(nil) != "" {
		t.Error("FormatMoves(nil) should be empty")
	}
}

func TestApplyNotationReportsSkipped(t *testing.T) {
	c := MustNew(3)
	skipped := c.ApplyNotation("R M U Q")

	want := MustNew(3)
	want.Apply(R, U)
	if !c.Equal(want) {
		t.Error("ApplyNotation should apply only the recognized moves")
	}
	if len(skipped) != 2 || skipped[0] != "M" || skipped[1] != "Q" {
		t.Errorf("skipped = %v, want [M Q]", skipped)
	}
}

func TestDoAlgorithmIgnoresGarbage(t *testing.T) {
	c := MustNew(3)
	c.DoAlgorithm("hello world ???")
	if !c.IsSolved() {
		t.Error("garbage notation should leave the cube untouched")
	}

	c.DoAlgorithm("")
	if !c.IsSolved() {
		t.Error("empty notation should leave the cube untouched")
	}
}

func TestTPermIsOrderTwo(t *testing.T) {
	c := MustNew(3)
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Fatal("T-perm should change the cube")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm applied twice should return to solved")
	}
}

func TestSymbolHelpers(t *testing.T) {
	for _, face := range Faces {
		f, ok := SymbolFor(face).Face()
		if !ok || f != face {
			t.Errorf("SymbolFor(%v).Face() = %v, %v", face, f, ok)
		}
	}
	if _, ok := SymX.Face(); ok {
		t.Error("x is not a face turn")
	}
	if !SymY.IsRotation() || SymM.IsRotation() {
		t.Error("IsRotation is wrong")
	}
	if !SymS.IsSlice() || SymR.IsSlice() {
		t.Error("IsSlice is wrong")
	}
}
