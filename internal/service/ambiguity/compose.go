package ambiguity

import (
	"math"

	"numinterp/internal/model/number"
)

// Compose builds the cross product of per-token alternatives. Each candidate
// is a flat sequence; the boundaries between tokens are not kept.
func Compose(sets [][]number.Sequence) []number.Sequence {
	if len(sets) == 0 {
		return nil
	}

	candidates := make([]number.Sequence, len(sets[0]))
	copy(candidates, sets[0])

	for _, set := range sets[1:] {
		next := make([]number.Sequence, 0, len(candidates)*len(set))
		for _, prefix := range candidates {
			for _, alt := range set {
				next = append(next, prefix.Concat(alt))
			}
		}
		candidates = next
	}

	return candidates
}

// CandidateCount returns the number of sequences Compose would produce,
// capped at limit+1 when limit is positive and at math.MaxInt otherwise.
func CandidateCount(sets [][]number.Sequence, limit int) int {
	if len(sets) == 0 {
		return 0
	}
	count := 1
	for _, set := range sets {
		count = saturatingMul(count, len(set), limit)
	}
	return count
}

// saturatingMul multiplies a by b, stopping at limit+1 for a positive limit
// and at math.MaxInt otherwise.
func saturatingMul(a, b, limit int) int {
	ceiling := math.MaxInt
	if limit > 0 {
		ceiling = limit + 1
	}
	if a == 0 || b == 0 {
		return 0
	}
	if a > ceiling/b {
		return ceiling
	}
	if product := a * b; product < ceiling {
		return product
	}
	return ceiling
}
