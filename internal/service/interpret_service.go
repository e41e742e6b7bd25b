package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"numinterp/internal/model/number"
	"numinterp/internal/service/ambiguity"
	"numinterp/internal/service/phone"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// inputPattern is the character class accepted from users.
var inputPattern = regexp.MustCompile(`^[\d\s]+$`)

// InterpretResult holds every reading of one input line.
type InterpretResult struct {
	Input           string                  `json:"input"`
	Interpretations []number.Interpretation `json:"interpretations"`
	ValidCount      int                     `json:"valid_count"`
	Error           string                  `json:"error,omitempty"`
}

// Valid returns only the interpretations flagged as phone numbers.
func (r *InterpretResult) Valid() []number.Interpretation {
	valid := make([]number.Interpretation, 0, r.ValidCount)
	for _, in := range r.Interpretations {
		if in.Valid {
			valid = append(valid, in)
		}
	}
	return valid
}

// InterpretService runs the ambiguity engine and flags phone numbers.
type InterpretService struct {
	generator        *ambiguity.Generator
	validator        phone.Validator
	region           string
	batchConcurrency int
	logger           *zap.Logger
}

// NewInterpretService creates a service. region is used to format valid
// numbers in E.164; batchConcurrency bounds InterpretBatch.
func NewInterpretService(generator *ambiguity.Generator, validator phone.Validator, region string, batchConcurrency int, logger *zap.Logger) *InterpretService {
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	return &InterpretService{
		generator:        generator,
		validator:        validator,
		region:           region,
		batchConcurrency: batchConcurrency,
		logger:           logger,
	}
}

// ValidatorName returns the name of the active phone validator.
func (s *InterpretService) ValidatorName() string {
	return s.validator.Name()
}

// PrepareLine rejects anything but digits and whitespace, then collapses
// whitespace runs into single spaces.
func PrepareLine(raw string) (string, error) {
	if !inputPattern.MatchString(raw) {
		return "", fmt.Errorf("%w: only digits and spaces are allowed", ambiguity.ErrInvalidInput)
	}
	return strings.Join(strings.Fields(raw), " "), nil
}

// IsInputError reports whether err was caused by the caller's input.
func IsInputError(err error) bool {
	return errors.Is(err, ambiguity.ErrInvalidInput) || errors.Is(err, ambiguity.ErrInputTooLarge)
}

// Interpret generates every reading of raw and validates each one.
func (s *InterpretService) Interpret(ctx context.Context, raw string) (*InterpretResult, error) {
	line, err := PrepareLine(raw)
	if err != nil {
		return nil, err
	}

	readings, err := s.generator.GenerateAmbiguities(ctx, line)
	if err != nil {
		return nil, fmt.Errorf("failed to interpret %q: %w", line, err)
	}

	result := &InterpretResult{
		Input:           line,
		Interpretations: make([]number.Interpretation, 0, len(readings)),
	}
	for _, digits := range readings {
		in := number.Interpretation{
			Digits: digits,
			Valid:  s.validator.IsValid(digits),
		}
		if in.Valid {
			in.E164 = phone.FormatE164(digits, s.region)
			result.ValidCount++
		}
		result.Interpretations = append(result.Interpretations, in)
	}

	s.logger.Debug("Interpreted line",
		zap.String("input", line),
		zap.Int("interpretations", len(result.Interpretations)),
		zap.Int("valid", result.ValidCount))
	return result, nil
}

// InterpretBatch interprets independent lines concurrently. Results keep the
// order of lines; a line with bad input gets its Error field set instead of
// failing the batch.
func (s *InterpretService) InterpretBatch(ctx context.Context, lines []string) ([]*InterpretResult, error) {
	results := make([]*InterpretResult, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i, line := range lines {
		g.Go(func() error {
			result, err := s.Interpret(gctx, line)
			if err != nil {
				if !IsInputError(err) {
					return err
				}
				s.logger.Warn("Rejected batch line", zap.Int("index", i), zap.Error(err))
				result = &InterpretResult{
					Input:           line,
					Interpretations: []number.Interpretation{},
					Error:           err.Error(),
				}
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
