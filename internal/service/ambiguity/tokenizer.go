package ambiguity

import (
	"fmt"
	"regexp"
	"strings"

	"numinterp/internal/model/number"
)

// roundPattern matches round tokens such as 20, 300 or 9000.
var roundPattern = regexp.MustCompile(`^[2-9]0+$`)

// Tokenize splits a line of single-space separated digit groups into chunks
// and marks the round ones.
func Tokenize(line string) (number.Sequence, error) {
	if line == "" {
		return nil, fmt.Errorf("%w: empty line", ErrInvalidInput)
	}

	words := strings.Split(line, " ")
	tokens := make(number.Sequence, 0, len(words))
	for i, word := range words {
		if word == "" {
			return nil, fmt.Errorf("%w: empty token at position %d", ErrInvalidInput, i)
		}
		if !isDigits(word) {
			return nil, fmt.Errorf("%w: token %q is not a digit group", ErrInvalidInput, word)
		}
		tokens = append(tokens, number.Chunk{
			Digits: word,
			Round:  roundPattern.MatchString(word),
		})
	}
	return tokens, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
