package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	validOnly  bool
	jsonOutput bool
)

var interpretCmd = &cobra.Command{
	Use:   "interpret <digit groups...>",
	Short: "Interpret one line of digit groups and exit",
	Example: `  numinterp interpret 210 123 45 67
  numinterp interpret --valid-only --json "69 40 5 30 20 10"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newInterpretService(cfg, logger)
		if err != nil {
			return err
		}

		result, err := svc.Interpret(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			logger.Error("Interpretation failed", zap.Error(err))
			return err
		}
		if validOnly {
			result.Interpretations = result.Valid()
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		for _, in := range result.Interpretations {
			if in.Valid {
				fmt.Fprintf(out, "%s\tVALID\t%s\n", in.Digits, in.E164)
			} else {
				fmt.Fprintf(out, "%s\tINVALID\n", in.Digits)
			}
		}
		return nil
	},
}

func init() {
	interpretCmd.Flags().BoolVar(&validOnly, "valid-only", false, "Print only readings that are phone numbers")
	interpretCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
}
