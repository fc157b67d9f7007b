package trajectory

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/route"
)

// Trajectory is a full candidate walk from start to finish.
type Trajectory []grid.Position

func (t Trajectory) String() string {
	parts := make([]string, len(t))
	for i, p := range t {
		parts[i] = p.String()
	}
	return strings.Join(parts, " → ")
}

// Plan holds the communicative segments and the materialised connecting
// legs of one composition problem. Leg i connects the piece before segment
// i to segment i; the last leg connects the final segment to finish.
// A Plan is immutable once built.
type Plan struct {
	start, finish grid.Position
	segments      [][]grid.Position

	legs    [][]route.Route
	overlap []bool // overlap[i]: segments[i-1] ends where segments[i] starts (i ≥ 1)
	logger  *zap.Logger
}

// NewPlan prepares the connecting legs between start, segments and finish.
// Every segment must be non-empty. Segments are copied.
func NewPlan(start, finish grid.Position, segments [][]grid.Position, opts ...Option) (*Plan, error) {
	cfg := newConfig(opts...)
	segs := make([][]grid.Position, len(segments))
	for i, s := range segments {
		if len(s) == 0 {
			return nil, fmt.Errorf("NewPlan: segment %d: %w", i, ErrInvalidSegment)
		}
		segs[i] = slices.Clone(s)
	}

	p := &Plan{
		start:    start,
		finish:   finish,
		segments: segs,
		legs:     make([][]route.Route, len(segs)+1),
		overlap:  make([]bool, len(segs)+1),
		logger:   cfg.logger,
	}

	from := start
	for i, s := range segs {
		p.overlap[i] = i > 0 && from == s[0]
		p.legs[i] = route.All(from, s[0])
		from = s[len(s)-1]
	}
	p.legs[len(segs)] = route.All(from, finish)

	p.logger.Debug("trajectory plan prepared",
		zap.Int("segments", len(segs)),
		zap.Ints("leg_routes", p.LegCounts()),
		zap.Int("trajectories", p.Count()))

	return p, nil
}

// Start returns the start position.
func (p *Plan) Start() grid.Position { return p.start }

// Finish returns the finish position.
func (p *Plan) Finish() grid.Position { return p.finish }

// Segments returns a copy of the communicative segments.
func (p *Plan) Segments() [][]grid.Position {
	out := make([][]grid.Position, len(p.segments))
	for i, s := range p.segments {
		out[i] = slices.Clone(s)
	}
	return out
}

// LegCounts returns the number of direct routes for each leg.
func (p *Plan) LegCounts() []int {
	out := make([]int, len(p.legs))
	for i, l := range p.legs {
		out[i] = len(l)
	}
	return out
}

// Count returns the number of trajectories All yields.
func (p *Plan) Count() int {
	n := 1
	for _, l := range p.legs {
		n *= len(l)
	}
	return n
}

// All lazily yields every trajectory, one per combination of leg routes.
// The last leg varies fastest. Each yielded trajectory is freshly allocated.
func (p *Plan) All() iter.Seq[Trajectory] {
	return func(yield func(Trajectory) bool) {
		if p.Count() == 0 {
			return
		}
		idx := make([]int, len(p.legs))
		for {
			if !yield(p.stitch(idx)) {
				return
			}
			// Advance the odometer, last leg fastest.
			k := len(idx) - 1
			for ; k >= 0; k-- {
				idx[k]++
				if idx[k] < len(p.legs[k]) {
					break
				}
				idx[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}

// stitch assembles the trajectory for one choice of route per leg.
func (p *Plan) stitch(idx []int) Trajectory {
	n := len(p.segments)
	lead := p.legs[0][idx[0]]
	if n == 0 {
		return Trajectory(slices.Clone(lead))
	}
	tail := p.legs[n][idx[n]]

	out := make(Trajectory, 0, p.length(idx))
	out = append(out, lead[:len(lead)-1]...)
	out = append(out, p.segments[0]...)
	for i := 1; i < n; i++ {
		seg := p.segments[i]
		if p.overlap[i] {
			out = append(out, seg[1:]...)
			continue
		}
		// A connector between equal locations with different orientations
		// has a single position and contributes nothing.
		conn := p.legs[i][idx[i]]
		out = append(out, conn[1:max(1, len(conn)-1)]...)
		out = append(out, seg...)
	}
	return append(out, tail[1:]...)
}

// length is the exact size of stitch(idx).
func (p *Plan) length(idx []int) int {
	n := len(p.segments)
	total := len(p.legs[0][idx[0]]) - 1 + len(p.legs[n][idx[n]]) - 1
	for i, seg := range p.segments {
		total += len(seg)
		if i == 0 {
			continue
		}
		if p.overlap[i] {
			total--
		} else {
			total += max(0, len(p.legs[i][idx[i]])-2)
		}
	}
	return total
}
