package twisty

// Progress reports which faces are finished.
type Progress struct {
	Faces       [6]bool // Faces[f] is true when face f is a single color
	SolvedFaces int     // Number of true entries in Faces
	Solved      bool    // Every face shows its canonical color
}

// Progress returns the per-face solving progress.
// A face counts as finished when it is monochrome, whatever its color, so a
// solved cube held in another orientation still reports six faces.
func (c *Cube) Progress() Progress {
	var p Progress
	for _, face := range Faces {
		if c.faceIs(face, c.facelets[face][0][0]) {
			p.Faces[face] = true
			p.SolvedFaces++
		}
	}
	p.Solved = c.IsSolved()
	return p
}

// IsFaceComplete reports whether a face is a single color.
func (c *Cube) IsFaceComplete(face Face) bool {
	return c.faceIs(face, c.facelets[face][0][0])
}
