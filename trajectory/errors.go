package trajectory

import "errors"

var (
	// ErrInvalidSegment indicates an empty communicative segment.
	ErrInvalidSegment = errors.New("trajectory: communicative segment must not be empty")
	// ErrEmptyTrajectory indicates a trajectory with no positions.
	ErrEmptyTrajectory = errors.New("trajectory: empty trajectory")
	// ErrEndpoints indicates a trajectory that does not start or end where expected.
	ErrEndpoints = errors.New("trajectory: wrong start or finish")
)
