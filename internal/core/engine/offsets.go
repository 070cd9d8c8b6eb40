package engine

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats"
)

// offsetIndices returns the candidate offset indices k such that
// k·spacing lies within the polygon's perpendicular extent. The frame y
// coordinate of a vertex is exactly its projection onto the baseline
// normal, so the extent is the min/max over all ring vertices, widened
// by the snap tolerance. Boundary offsets are included; segments that
// clip to nothing are dropped later.
func offsetIndices(rings [][]r2.Point, spacing float64) []int {
	var ys []float64
	for _, ring := range rings {
		for _, p := range ring {
			ys = append(ys, p.Y)
		}
	}
	if len(ys) == 0 {
		return nil
	}

	minOff := floats.Min(ys)
	maxOff := floats.Max(ys)

	kMin := int(math.Ceil((minOff - snapTol) / spacing))
	kMax := int(math.Floor((maxOff + snapTol) / spacing))

	indices := make([]int, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		indices = append(indices, k)
	}
	return indices
}
