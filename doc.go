// Package tcg composes signalling trajectories on a 3×3 grid.
//
// An agent walks from a start position to a finish position and, on the
// way, performs two communicative segments that tell an observer where a
// goal is and which way it faces. The segments come from a language: a
// location operator, an orientation operator and the order in which the
// two signals are given. Everything between the segments is filled in with
// direct (shortest, orthogonal) routes, so a single language and goal yield
// a finite family of trajectories.
//
// The module is organised as:
//
//	grid/        locations, orientations, positions, moves and turns
//	lattice/     the board as a 4-connected cell graph (BFS, path checks)
//	operator/    operator definitions, bound operators, the builtin catalog
//	language/    random language construction
//	route/       compositions and direct route enumeration
//	trajectory/  plans, seam handling and trajectory composition
//	notation/    textual syntax for positions, operator calls and languages
//	cmd/tcg/     command line front end
//
// Quick example:
//
//	lang, _ := language.New(locPool, orientPool, language.WithSeed(7))
//	seq, _ := trajectory.Compose(lang, goal, start, finish)
//	for t := range seq {
//		fmt.Println(t)
//	}
package tcg
