package ambiguity

import (
	"math/big"

	"numinterp/internal/model/number"
)

// Segment is a run of chunks that resolves independently of its neighbours.
// A literal segment holds one unmarked chunk; a group segment starts at a
// round chunk and may absorb the chunks that follow it.
type Segment struct {
	Chunks number.Sequence
	Group  bool
}

// Alternatives returns the readings of the segment.
func (s Segment) Alternatives() []string {
	if !s.Group {
		return []string{s.Chunks[0].Digits}
	}
	return Expand(s.Chunks)
}

// Resolve splits a candidate sequence into literal and group segments,
// scanning left to right.
func Resolve(seq number.Sequence) []Segment {
	segments := make([]Segment, 0, len(seq))
	for i := 0; i < len(seq); {
		if !seq[i].Round {
			segments = append(segments, Segment{Chunks: seq[i : i+1]})
			i++
			continue
		}
		group := collideGroup(seq[i:])
		segments = append(segments, Segment{Chunks: group, Group: true})
		i += len(group)
	}
	return segments
}

// collideGroup grows a group from the round chunk at rest[0].
//
// The remaining zero count starts at the round chunk's zeros and drops by one
// per absorbed chunk. A chunk is absorbed while it holds a run of that many
// zeros. Once the count hits zero, or a chunk has no zeros at all, that chunk
// is absorbed only if it is strictly shorter than the last absorbed one, and
// the group ends.
func collideGroup(rest number.Sequence) number.Sequence {
	zeros := rest[0].ZeroCount()
	group := make(number.Sequence, 0, zeros+2)

	for _, chunk := range rest {
		if zeros == 0 || !chunk.HasZero() {
			if len(group) > 0 && chunk.Len() < group[len(group)-1].Len() {
				group = append(group, chunk)
			}
			break
		}
		if !chunk.HasZeroRun(zeros) {
			break
		}
		group = append(group, chunk)
		zeros--
	}

	return group
}

// Expand returns the sum and concatenation readings of a group. Each chunk
// after the first doubles the set: every running reading v becomes v+c
// followed by v||c, giving 2^(k-1) readings for k chunks.
func Expand(group number.Sequence) []string {
	if len(group) == 0 {
		return nil
	}

	readings := []string{group[0].Digits}
	for _, chunk := range group[1:] {
		next := make([]string, 0, 2*len(readings))
		for _, v := range readings {
			next = append(next, sum(v, chunk.Digits), v+chunk.Digits)
		}
		readings = next
	}
	return readings
}

func sum(a, b string) string {
	x, _ := new(big.Int).SetString(a, 10)
	y, _ := new(big.Int).SetString(b, 10)
	return x.Add(x, y).String()
}

// ReadingCount returns the number of readings Interpret would produce for
// seq, capped like CandidateCount.
func ReadingCount(seq number.Sequence, limit int) int {
	count := 1
	for _, segment := range Resolve(seq) {
		if !segment.Group {
			continue
		}
		count = saturatingMul(count, expansionSize(len(segment.Chunks), limit), limit)
	}
	return count
}

// expansionSize is 2^(k-1) for a group of k chunks, saturated.
func expansionSize(k, limit int) int {
	size := 1
	for i := 1; i < k; i++ {
		size = saturatingMul(size, 2, limit)
	}
	return size
}

// Interpret resolves one candidate sequence into its readings. Segment
// alternatives are crossed left to right with earlier segments varying slowest.
func Interpret(seq number.Sequence) []string {
	readings := []string{""}
	for _, segment := range Resolve(seq) {
		alternatives := segment.Alternatives()
		next := make([]string, 0, len(readings)*len(alternatives))
		for _, prefix := range readings {
			for _, alt := range alternatives {
				next = append(next, prefix+alt)
			}
		}
		readings = next
	}
	return readings
}
