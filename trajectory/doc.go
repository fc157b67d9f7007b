// Package trajectory composes complete candidate trajectories: walks over
// the board that start at the sender's start position, perform the
// communicative sub-sequences produced by a language's operators in the
// language's signal order, and end at the finish position.
//
// What:
//
//   - Compose invokes the location and orientation operators of a Language
//     on the goal position, orders their outputs, connects start, the two
//     sub-sequences and finish with direct routes, and lazily yields every
//     combination of route choices as one stitched trajectory.
//   - NewPlan does the same for any number of communicative segments;
//     Compose is NewPlan with the two language segments.
//   - Count returns the number of trajectories without enumerating them.
//   - Validate checks a trajectory against the board.
//
// Seams:
//
// Adjacent pieces share their junction position. Stitching keeps it once:
// the leading route drops its last position, the trailing route drops its
// first, a connecting route drops both ends. When one segment already ends
// where the next begins, the connecting route is skipped and the next
// segment drops its first position.
//
//	start leg   seg₁          connector   seg₂        finish leg
//	[s … a)  ++ [a … b]  ++   (b … c)  ++ [c … d]  ++ (d … f]
//	                 b == c:          [b … d] minus its first element
//
// Failure:
//
// Operator errors and empty segments are reported by Compose / NewPlan
// before any trajectory is produced. Enumeration itself cannot fail.
//
// Complexity:
//
//   - Preparation: O(Σ routes per leg · leg length).
//   - Enumeration: O(Π routes per leg · trajectory length).
package trajectory
