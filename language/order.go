package language

import (
	"fmt"
	"strings"
)

// SignalOrder says which meaning component is communicated first.
type SignalOrder int

const (
	// LocFirst signals the location, then the orientation.
	LocFirst SignalOrder = iota + 1
	// OrientFirst signals the orientation, then the location.
	OrientFirst
)

// Valid reports whether s is LocFirst or OrientFirst.
func (s SignalOrder) Valid() bool {
	return s == LocFirst || s == OrientFirst
}

func (s SignalOrder) String() string {
	switch s {
	case LocFirst:
		return "loc-orient"
	case OrientFirst:
		return "orient-loc"
	}
	return fmt.Sprintf("SignalOrder(%d)", int(s))
}

// ParseSignalOrder accepts "loc-orient", "orient-loc" and the comma
// separated forms "loc,orient", "orient,loc".
func ParseSignalOrder(s string) (SignalOrder, error) {
	switch strings.ReplaceAll(strings.TrimSpace(s), ",", "-") {
	case "loc-orient":
		return LocFirst, nil
	case "orient-loc":
		return OrientFirst, nil
	}
	return 0, fmt.Errorf("ParseSignalOrder(%q): %w", s, ErrInvalidOrder)
}
