package ambiguity

import (
	"math/big"
	"strings"

	"numinterp/internal/model/number"
)

var (
	bigTen      = big.NewInt(10)
	bigNineteen = big.NewInt(19)
)

// Divide returns every regrouping of a token's digits into place-value chunks.
//
// Digits are consumed from least to most significant. Each new digit either
// starts its own chunk carrying its place value ("400") or extends the leading
// chunk of an existing alternative ("4" onto "87" gives "487"). For "487" the
// result is [400 80 7] [480 7] [400 87] [487], in that order.
func Divide(token number.Chunk) []number.Sequence {
	if token.Round || !regroupable(token.Digits) {
		return []number.Sequence{{token}}
	}

	n := len(token.Digits)
	alternatives := []number.Sequence{{{Digits: token.Digits[n-1:]}}}

	for i := 1; i < n; i++ {
		digit := string(token.Digits[n-1-i])
		placed := number.Chunk{Digits: digit + strings.Repeat("0", i)}

		next := make([]number.Sequence, 0, 2*len(alternatives))
		for _, alt := range alternatives {
			next = append(next, number.Sequence{placed}.Concat(alt))

			extended := make(number.Sequence, len(alt))
			copy(extended, alt)
			extended[0] = number.Chunk{Digits: digit + alt[0].Digits}
			next = append(next, extended)
		}
		alternatives = next
	}

	return alternatives
}

// regroupable is false for values in [0,19] and for multiples of ten.
func regroupable(digits string) bool {
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return false
	}
	if value.Sign() >= 0 && value.Cmp(bigNineteen) <= 0 {
		return false
	}
	return new(big.Int).Mod(value, bigTen).Sign() != 0
}
