// SPDX-License-Identifier: MIT
// Package: tcg/route
//
// Package route enumerates direct routes: every shortest, monotone path
// between two locations of the board, as sequences of positions with a
// constant orientation.
//
// Construction:
//
// Let (Δx, Δy) = finish − start. Every x-step goes the same way (right when
// Δx ≥ 0, left otherwise) and every y-step goes the same way (up when
// Δy ≥ 0, down otherwise). A direct route is therefore fully described by a
// composition of |Δx| into |Δy|+1 ordered, non-negative parts i₁..i_k: put
// i_j x-steps before the j-th y-step, and i_k x-steps after the last one.
//
//	Δ = (2, 1)  compositions of 2 into 2 parts: [0 2] [1 1] [2 0]
//	            templates: U R R   R U R   R R U
//
// The number of routes is C(|Δx|+|Δy|, |Δy|); every route has
// |Δx|+|Δy|+1 positions. Equal start and finish give exactly one route
// containing only the start.
//
// Laziness:
//
// Direct and Compositions return iter.Seq values. Ranging over one computes
// the routes on the fly; ranging again recomputes them. Breaking out early
// is safe. Use Collect when several passes are needed.
//
// Orientation:
//
// Routes carry the start orientation throughout; the finish orientation is
// not consulted.
package route
