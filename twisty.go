// Package twisty models n×n×n twisty puzzles of the Rubik's cube family.
//
// # Features
//
//   - Any cube size from 2×2×2 up
//   - Face turns, wide turns, whole-cube rotations (x, y, z) and slices (M, E, S)
//   - Standard notation parsing
//   - Random scrambles with their exact solution
//   - Per sub-cube facelet lookup for 3D renderers
//
// # Quick Start
//
//	cube, err := twisty.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(twisty.R, twisty.U, twisty.RPrime, twisty.UPrime)
//
//	// Or from notation; lowercase letters are wide turns
//	cube.DoAlgorithm("F B2 l' D x2")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Faces
//
// Faces are numbered Up 0, Left 1, Front 2, Right 3, Back 4, Down 5. The
// adjacency tables in this package and the lattice lookup in FaceColor all
// use this numbering.
//
// # Scrambles
//
//	cube, _ := twisty.New(4, twisty.WithSeed(42))
//	s, _ := cube.Scramble(30)
//	fmt.Println(s.Notation())
//	fmt.Println(s.SolutionNotation())
//
// # Rendering
//
// A renderer walks the lattice and asks for each outer facelet:
//
//	for x := 0; x < n; x++ {
//	    // ...
//	    if cube.Visible(x, y, z, twisty.Front) {
//	        paint(cube.FaceColor(x, y, z, twisty.Front))
//	    }
//	}
package twisty
