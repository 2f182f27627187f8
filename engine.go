package twisty

// Turn applies a turn of one face. When wide is true the adjacent inner
// layers turn with it, by way of the paired slice move.
func (c *Cube) Turn(face Face, t Turn, wide bool) {
	if !face.Valid() {
		return
	}

	quarters := t.Quarters()
	c.rotateGrid(face, quarters)

	adj := FaceAdjacency[face]
	for k := 0; k < quarters; k++ {
		c.cycleBands(adj)
	}

	if wide {
		pair := FaceWidePair[face]
		st := t
		if pair.Inverted {
			st = t.Inverse()
		}
		c.Slice(pair.Slice, st)
	}
}

// Up turns the Up face.
func (c *Cube) Up(t Turn, wide bool) { c.Turn(Up, t, wide) }

// Down turns the Down face.
func (c *Cube) Down(t Turn, wide bool) { c.Turn(Down, t, wide) }

// Left turns the Left face.
func (c *Cube) Left(t Turn, wide bool) { c.Turn(Left, t, wide) }

// Right turns the Right face.
func (c *Cube) Right(t Turn, wide bool) { c.Turn(Right, t, wide) }

// Front turns the Front face.
func (c *Cube) Front(t Turn, wide bool) { c.Turn(Front, t, wide) }

// Back turns the Back face.
func (c *Cube) Back(t Turn, wide bool) { c.Turn(Back, t, wide) }

// Rotate turns the whole cube about an axis. Unlike a face turn no face is
// left in place: the leading and trailing faces spin and the four sides
// trade whole grids.
func (c *Cube) Rotate(axis Axis, t Turn) {
	if axis < AxisX || axis > AxisZ {
		return
	}

	rot := AxisRotation[axis]
	for k := 0; k < t.Quarters(); k++ {
		c.rotateGrid(rot.Leading, 1)
		c.rotateGrid(rot.Trailing, 3)
		for i, side := range rot.Sides {
			c.rotateGrid(side, rot.SideTurns[i].Quarters())
		}

		// Sides[i] moves onto Sides[i+1].
		s := rot.Sides
		last := c.facelets[s[3]]
		c.facelets[s[3]] = c.facelets[s[2]]
		c.facelets[s[2]] = c.facelets[s[1]]
		c.facelets[s[1]] = c.facelets[s[0]]
		c.facelets[s[0]] = last
	}
}

// X rotates the whole cube with R.
func (c *Cube) X(t Turn) { c.Rotate(AxisX, t) }

// Y rotates the whole cube with U.
func (c *Cube) Y(t Turn) { c.Rotate(AxisY, t) }

// Z rotates the whole cube with F.
func (c *Cube) Z(t Turn) { c.Rotate(AxisZ, t) }

// Slice turns the middle layers. Each slice is a rotation followed by the
// two bounding face turns, so it agrees with those primitives for every n.
// On cubes larger than 3 every inner layer between the two faces moves.
func (c *Cube) Slice(s Slice, t Turn) {
	inv := t.Inverse()
	switch s {
	case SliceM:
		c.X(inv)
		c.Turn(Left, inv, false)
		c.Turn(Right, t, false)
	case SliceE:
		c.Y(inv)
		c.Turn(Up, t, false)
		c.Turn(Down, inv, false)
	case SliceS:
		c.Z(t)
		c.Turn(Front, inv, false)
		c.Turn(Back, t, false)
	}
}

// M turns the slice between L and R, in the direction of L.
func (c *Cube) M(t Turn) { c.Slice(SliceM, t) }

// E turns the slice between U and D, in the direction of D.
func (c *Cube) E(t Turn) { c.Slice(SliceE, t) }

// S turns the slice between F and B, in the direction of F.
func (c *Cube) S(t Turn) { c.Slice(SliceS, t) }

// rotateGrid rotates a face's own grid clockwise by the given number of
// quarter turns.
func (c *Cube) rotateGrid(face Face, quarters int) {
	n := c.n
	f := c.facelets[face]
	for k := 0; k < quarters%4; k++ {
		// Walk the grid ring by ring, cycling four facelets at a time.
		for layer := 0; layer < n/2; layer++ {
			last := n - 1 - layer
			for i := layer; i < last; i++ {
				off := i - layer
				temp := f[layer][i]
				f[layer][i] = f[last-off][layer]
				f[last-off][layer] = f[last][last-off]
				f[last][last-off] = f[i][last]
				f[i][last] = temp
			}
		}
	}
}

// cycleBands moves the 4n facelets of a ring one side forward: the element
// at position i of the ring lands at position i+n.
func (c *Cube) cycleBands(adj Adjacency) {
	n := c.n
	ring := make([]Color, 4*n)
	for j, side := range adj.Sides {
		for i := 0; i < n; i++ {
			row, col := adj.Bands[j].cell(n, i)
			ring[j*n+i] = c.facelets[side][row][col]
		}
	}
	for j, side := range adj.Sides {
		for i := 0; i < n; i++ {
			row, col := adj.Bands[j].cell(n, i)
			src := (j*n + i - n + 4*n) % (4 * n)
			c.facelets[side][row][col] = ring[src]
		}
	}
}
