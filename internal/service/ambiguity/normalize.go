package ambiguity

import "strings"

// Normalize strips everything but digits from a reading.
func Normalize(reading string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, reading)
}
