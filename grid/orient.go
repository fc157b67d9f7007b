package grid

import "strconv"

// Orient is a token orientation. NoOrient (0) is used by rotation-invariant
// tokens; 1..4 are the four rotation states.
type Orient int

// NoOrient is the orientation of tokens without one. Rotating it yields itself.
const NoOrient Orient = 0

// orientModulus is the size of the orientation symbol space {0,..,4}.
const orientModulus = 5

// Valid reports whether o lies in the symbol space 0..4.
func (o Orient) Valid() bool {
	return o >= NoOrient && o < orientModulus
}

// Add rotates o clockwise by k steps.
func (o Orient) Add(k int) Orient {
	if o == NoOrient {
		return NoOrient
	}
	return Orient(mod(int(o)+k, orientModulus))
}

// Sub rotates o counter-clockwise by k steps.
func (o Orient) Sub(k int) Orient {
	if o == NoOrient {
		return NoOrient
	}
	return Orient(mod(int(o)-k, orientModulus))
}

func (o Orient) String() string {
	return strconv.Itoa(int(o))
}

// mod is the Euclidean remainder, non-negative for m > 0.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
