// Package repl implements the line-oriented interactive loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"numinterp/internal/service"
	"numinterp/internal/service/ambiguity"

	"go.uber.org/zap"
)

const (
	Prompt         = "Enter phone number (or type 'exit' to quit): "
	InvalidMessage = "Invalid input. Please enter only digits and spaces."
	exitCommand    = "exit"
)

// Session reads lines from in and prints every interpretation to out.
type Session struct {
	interpretService *service.InterpretService
	in               io.Reader
	out              io.Writer
	showInvalid      bool
	logger           *zap.Logger
}

func NewSession(interpretService *service.InterpretService, in io.Reader, out io.Writer, showInvalid bool, logger *zap.Logger) *Session {
	return &Session{
		interpretService: interpretService,
		in:               in,
		out:              out,
		showInvalid:      showInvalid,
		logger:           logger,
	}
}

// Run loops until the exit command, end of input or context cancellation.
func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(s.out)
			return nil
		}

		raw := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(raw), exitCommand) {
			return nil
		}

		if err := s.handleLine(ctx, raw); err != nil {
			return err
		}
	}
}

func (s *Session) handleLine(ctx context.Context, raw string) error {
	result, err := s.interpretService.Interpret(ctx, raw)
	switch {
	case err == nil:
	case errors.Is(err, ambiguity.ErrInvalidInput):
		s.logger.Debug("Rejected input", zap.String("input", raw), zap.Error(err))
		fmt.Fprintln(s.out, InvalidMessage)
		return nil
	case errors.Is(err, ambiguity.ErrInputTooLarge):
		fmt.Fprintf(s.out, "Input rejected: %v\n", err)
		return nil
	default:
		return err
	}

	for i, in := range result.Interpretations {
		if !in.Valid && !s.showInvalid {
			continue
		}
		verdict := "[phone number: INVALID]"
		if in.Valid {
			verdict = "[phone number: VALID]"
		}
		fmt.Fprintf(s.out, "Interpretation: %d: %s  %s\n", i+1, in.Digits, verdict)
	}
	return nil
}
