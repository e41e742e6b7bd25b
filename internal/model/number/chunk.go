package number

import "strings"

// Chunk is one place-value part of a number reading.
type Chunk struct {
	Digits string // Digit content, never carries marker characters
	Round  bool   // Set for tokens like 20, 300, 9000 that anchor collide groups
}

// Len returns the number of digits in the chunk.
func (c Chunk) Len() int {
	return len(c.Digits)
}

// ZeroCount returns how many '0' digits the chunk holds.
func (c Chunk) ZeroCount() int {
	return strings.Count(c.Digits, "0")
}

// HasZero reports whether the chunk contains at least one '0'.
func (c Chunk) HasZero() bool {
	return strings.IndexByte(c.Digits, '0') >= 0
}

// HasZeroRun reports whether the chunk contains n consecutive zeros.
func (c Chunk) HasZeroRun(n int) bool {
	return strings.Contains(c.Digits, strings.Repeat("0", n))
}

// Sequence is an ordered list of chunks.
type Sequence []Chunk

// String returns the chunks as a space-separated string.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.Digits
	}
	return strings.Join(parts, " ")
}

// Concat returns a new sequence holding s followed by other.
func (s Sequence) Concat(other Sequence) Sequence {
	out := make(Sequence, 0, len(s)+len(other))
	out = append(out, s...)
	return append(out, other...)
}

// Interpretation is one fully resolved reading of an input line.
type Interpretation struct {
	Digits string `json:"digits"`
	Valid  bool   `json:"valid"`
	E164   string `json:"e164,omitempty"`
}
