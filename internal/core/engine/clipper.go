package engine

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// span is an interval [x0, x1] of an offset line lying inside the area.
type span struct {
	x0, x1 float64
}

// clipOffsetLine intersects the horizontal frame line y = d with the
// area rings and returns the inside intervals, sorted by x0. A line may
// yield zero spans (offset misses the area in that cross-section), one
// (convex region) or several (concave or multi-part areas). Spans at or
// below the snap tolerance are degenerate intersections and dropped.
//
// Crossings follow the half-open rule: an edge counts when one endpoint
// is at or below the line and the other strictly above. Edges collinear
// with the line (within the snap tolerance, which absorbs projection
// round-trip jitter) contribute their overlap directly, so rows lying
// exactly on a polygon edge survive (boundary offsets are inclusive).
func clipOffsetLine(rings [][]r2.Point, d float64) []span {
	const epsY = snapTol

	var crossings []float64
	var collinear []span

	for _, ring := range rings {
		for i := 0; i+1 < len(ring); i++ {
			a, b := ring[i], ring[i+1]
			y1 := snapZero(a.Y-d, epsY)
			y2 := snapZero(b.Y-d, epsY)

			if y1 == 0 && y2 == 0 {
				collinear = append(collinear, orderedSpan(a.X, b.X))
				continue
			}
			if (y1 <= 0 && y2 > 0) || (y2 <= 0 && y1 > 0) {
				t := y1 / (y1 - y2)
				crossings = append(crossings, a.X+t*(b.X-a.X))
			}
		}
	}

	sort.Float64s(crossings)

	spans := make([]span, 0, len(crossings)/2+len(collinear))
	for i := 0; i+1 < len(crossings); i += 2 {
		spans = append(spans, span{x0: crossings[i], x1: crossings[i+1]})
	}
	spans = append(spans, collinear...)

	spans = mergeSpans(spans)

	out := spans[:0]
	for _, s := range spans {
		if s.x1-s.x0 > snapTol {
			out = append(out, s)
		}
	}
	return out
}

func snapZero(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}
	return v
}

func orderedSpan(x0, x1 float64) span {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	return span{x0: x0, x1: x1}
}

// mergeSpans unions overlapping or touching intervals.
func mergeSpans(spans []span) []span {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].x0 < spans[j].x0 })

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.x0 <= last.x1+snapTol {
			if s.x1 > last.x1 {
				last.x1 = s.x1
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
