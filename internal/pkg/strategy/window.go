package strategy

import (
	"math"
)

//probFloor guards the aggregate against log of zero on degenerate model output
const probFloor = 1e-10

//CompareWindows compares two realizations of the same sentence by their
//character probabilities around the decision point. The realizations differ
//in length, so the window is aligned on the point itself: the extent to each
//side is the largest one available in both sequences, capped by radius. The
//result is aggregate(kept) - aggregate(removed), positive when the kept
//hyphen realization is more probable.
func CompareWindows(kept []float64, keptPoint int, removed []float64, removedPoint int, radius int) float64 {
	before := minInt(radius, minInt(keptPoint, removedPoint))
	after := minInt(radius, minInt(len(kept)-1-keptPoint, len(removed)-1-removedPoint))
	if before < 0 || after < 0 {
		return 0
	}
	return windowScore(kept, keptPoint, before, after) - windowScore(removed, removedPoint, before, after)
}

//windowScore sums character log probabilities over [point-before, point+after].
//Probabilities at or below zero are floored instead of producing an infinite penalty.
func windowScore(probs []float64, point, before, after int) float64 {
	result := 0.0
	for i := point - before; i <= point+after; i++ {
		p := probs[i]
		if p < probFloor {
			p = probFloor
		}
		result += math.Log(p)
	}
	return result
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
