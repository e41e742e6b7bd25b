package ambiguity

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGenerator(limits Limits) *Generator {
	return NewGenerator(limits, zap.NewNop())
}

func TestGenerateAmbiguities(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"487", []string{"400807", "4807", "40087", "487"}},
		{"20 5", []string{"25", "205"}},
		{"20", []string{"20"}},
		{"100 5", []string{"1005"}},
		{"200 5", []string{"205", "2005"}},
		{"300 40 5", []string{"345", "3405", "30045", "300405"}},
		{"20 34", []string{"20304", "2034"}},
		{"69 44", []string{"609404", "60944", "69404", "6944"}},
		{"200 35", []string{"235", "2305", "20035", "200305", "235", "20035"}},
	}

	g := newTestGenerator(Limits{})
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := g.GenerateAmbiguities(context.Background(), tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateAmbiguities_NoOpAlwaysReachable(t *testing.T) {
	lines := []string{
		"487",
		"210 123 45 67",
		"69 40 30 20 10",
		"6900 45 678 9",
		"0030 2 10 300 40 5 6",
		"2000 400 80 7",
		"9000 201 55",
		"0",
	}

	g := newTestGenerator(Limits{})
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			got, err := g.GenerateAmbiguities(context.Background(), line)
			require.NoError(t, err)
			assert.Contains(t, got, strings.ReplaceAll(line, " ", ""))
			for _, reading := range got {
				assert.Equal(t, reading, Normalize(reading))
			}
		})
	}
}

func TestGenerateAmbiguities_InvalidInput(t *testing.T) {
	g := newTestGenerator(Limits{})
	for _, line := range []string{"", "12  3", "12x", " 1"} {
		_, err := g.GenerateAmbiguities(context.Background(), line)
		assert.ErrorIs(t, err, ErrInvalidInput, line)
	}
}

func TestGenerateAmbiguities_Limits(t *testing.T) {
	tests := []struct {
		name   string
		limits Limits
		line   string
	}{
		{"too many tokens", Limits{MaxTokens: 2}, "1 2 3"},
		{"token too long", Limits{MaxDigitsPerToken: 3}, "12 1234"},
		{"too many candidates", Limits{MaxCandidates: 3}, "487"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestGenerator(tt.limits).GenerateAmbiguities(context.Background(), tt.line)
			assert.ErrorIs(t, err, ErrInputTooLarge)
		})
	}

	got, err := newTestGenerator(Limits{MaxTokens: 3, MaxDigitsPerToken: 3, MaxCandidates: 4}).
		GenerateAmbiguities(context.Background(), "487")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestGenerateAmbiguities_InterpretationLimit(t *testing.T) {
	_, err := newTestGenerator(Limits{MaxInterpretations: 3}).
		GenerateAmbiguities(context.Background(), "20 5 20 5")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	got, err := newTestGenerator(Limits{MaxInterpretations: 4}).
		GenerateAmbiguities(context.Background(), "20 5 20 5")
	require.NoError(t, err)
	assert.Equal(t, []string{"2525", "25205", "20525", "205205"}, got)
}

func TestGenerateAmbiguities_CollideBlowUpRejected(t *testing.T) {
	limits := Limits{
		MaxTokens:          16,
		MaxDigitsPerToken:  14,
		MaxCandidates:      1 << 16,
		MaxInterpretations: 1 << 20,
	}
	line := "20000000000000 99999999999999 20 5 20 5 20 5 20 5 20 5 20 5 20 5"

	_, err := newTestGenerator(limits).GenerateAmbiguities(context.Background(), line)
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestGenerateAmbiguities_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGenerator(Limits{}).GenerateAmbiguities(ctx, "487")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, s := range []string{"", "487", "4 8 7", "2101234567"} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once))
	}
	assert.Equal(t, "487", Normalize("4 8 7"))
}
