// Package notation provides move sequence utilities on top of the twisty
// notation: simplification and plain-English descriptions.
package notation

import (
	"github.com/SeamusWaldron/twisty"
)

// Merge is one place where two adjacent moves on the same layer were folded.
type Merge struct {
	Index  int    `json:"index" yaml:"index"`   // Position in the input of the first move
	First  string `json:"first" yaml:"first"`   // Notation of the first move
	Second string `json:"second" yaml:"second"` // Notation of the second move
	Result string `json:"result" yaml:"result"` // Merged move, empty for a full cancellation
}

// Report summarizes what Simplify removed.
type Report struct {
	Merges        []Merge `json:"merges" yaml:"merges"`
	Cancellations int     `json:"cancellations" yaml:"cancellations"`
	Saved         int     `json:"saved" yaml:"saved"` // Moves removed overall
}

// sameLayer reports whether a and b turn the same layers and so can merge.
func sameLayer(a, b twisty.Move) bool {
	return a.Symbol == b.Symbol && a.Wide == b.Wide
}

// mergeMoves folds two same-layer moves into one.
// Returns false if they cancel out (e.g., R + R' = nothing).
func mergeMoves(a, b twisty.Move) (twisty.Move, bool) {
	t := twisty.TurnFromQuarters(a.Turn.Quarters() + b.Turn.Quarters())
	if t == twisty.TurnNone {
		return twisty.Move{}, false
	}
	a.Turn = t
	return a, true
}

// Simplify returns moves with adjacent same-layer turns merged and full
// cancellations dropped. Merging repeats as cancellations expose new
// neighbors, so "R U U' R'" simplifies to nothing. TurnNone moves are
// dropped. The input is not modified.
func Simplify(moves []twisty.Move) []twisty.Move {
	out, _ := SimplifyReport(moves)
	return out
}

// SimplifyReport is Simplify that also describes each fold it made.
func SimplifyReport(moves []twisty.Move) ([]twisty.Move, Report) {
	var report Report
	result := make([]twisty.Move, 0, len(moves))
	origin := make([]int, 0, len(moves)) // input index of each kept move

	for i, move := range moves {
		if move.Turn == twisty.TurnNone {
			continue
		}
		if len(result) == 0 || !sameLayer(result[len(result)-1], move) {
			result = append(result, move)
			origin = append(origin, i)
			continue
		}

		last := &result[len(result)-1]
		merge := Merge{
			Index:  origin[len(origin)-1],
			First:  last.Notation(),
			Second: move.Notation(),
		}
		merged, ok := mergeMoves(*last, move)
		if !ok {
			// Full cancellation
			result = result[:len(result)-1]
			origin = origin[:len(origin)-1]
			report.Cancellations++
		} else {
			*last = merged
			merge.Result = merged.Notation()
		}
		report.Merges = append(report.Merges, merge)
	}

	report.Saved = len(moves) - len(result)
	return result, report
}

// Efficiency returns len(simplified)/len(original), 1 for an empty input.
func Efficiency(original, simplified []twisty.Move) float64 {
	if len(original) == 0 {
		return 1.0
	}
	return float64(len(simplified)) / float64(len(original))
}
