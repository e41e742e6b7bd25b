package ambiguity

import (
	"context"
	"fmt"

	"numinterp/internal/model/number"

	"go.uber.org/zap"
)

// Limits bounds the expansion of a single line. Zero disables a limit.
type Limits struct {
	MaxTokens          int
	MaxDigitsPerToken  int
	MaxCandidates      int
	MaxInterpretations int
}

// Generator turns a line of digit groups into every literal reading.
type Generator struct {
	limits Limits
	logger *zap.Logger
}

// NewGenerator creates a generator enforcing the given limits.
func NewGenerator(limits Limits, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		limits: limits,
		logger: logger,
	}
}

// GenerateAmbiguities returns the final readings of line in traversal order.
// Results are neither sorted nor deduplicated. The line must consist of digit
// groups separated by single spaces.
func (g *Generator) GenerateAmbiguities(ctx context.Context, line string) ([]string, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	if err := g.checkTokens(tokens); err != nil {
		return nil, err
	}

	sets := make([][]number.Sequence, len(tokens))
	for i, token := range tokens {
		sets[i] = Divide(token)
		g.logger.Debug("Divide ambiguities",
			zap.String("token", token.Digits),
			zap.Bool("round", token.Round),
			zap.Int("alternatives", len(sets[i])))
	}

	if count := CandidateCount(sets, g.limits.MaxCandidates); g.limits.MaxCandidates > 0 && count > g.limits.MaxCandidates {
		return nil, fmt.Errorf("%w: more than %d candidate sequences", ErrInputTooLarge, g.limits.MaxCandidates)
	}

	candidates := Compose(sets)
	g.logger.Debug("Composed candidate sequences",
		zap.String("line", line),
		zap.Int("candidates", len(candidates)))

	if err := g.checkReadings(ctx, candidates); err != nil {
		return nil, err
	}

	var results []string
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		readings := Interpret(candidate)
		g.logger.Debug("Collide ambiguities",
			zap.Stringer("candidate", candidate),
			zap.Strings("readings", readings))
		for _, reading := range readings {
			results = append(results, Normalize(reading))
		}
	}

	return results, nil
}

func (g *Generator) checkTokens(tokens number.Sequence) error {
	if g.limits.MaxTokens > 0 && len(tokens) > g.limits.MaxTokens {
		return fmt.Errorf("%w: %d tokens, limit is %d", ErrInputTooLarge, len(tokens), g.limits.MaxTokens)
	}
	if g.limits.MaxDigitsPerToken > 0 {
		for _, token := range tokens {
			if token.Len() > g.limits.MaxDigitsPerToken {
				return fmt.Errorf("%w: token %q has %d digits, limit is %d",
					ErrInputTooLarge, token.Digits, token.Len(), g.limits.MaxDigitsPerToken)
			}
		}
	}
	return nil
}

// checkReadings sums the collide expansion of every candidate and fails
// once the total passes MaxInterpretations.
func (g *Generator) checkReadings(ctx context.Context, candidates []number.Sequence) error {
	limit := g.limits.MaxInterpretations
	if limit <= 0 {
		return nil
	}

	total := 0
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		total += ReadingCount(candidate, limit)
		if total > limit {
			return fmt.Errorf("%w: more than %d interpretations", ErrInputTooLarge, limit)
		}
	}
	return nil
}
