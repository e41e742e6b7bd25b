package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"numinterp/internal/repl"

	"github.com/spf13/cobra"
)

var showInvalid bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read digit groups line by line and print every interpretation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func init() {
	replCmd.Flags().BoolVar(&showInvalid, "show-invalid", true, "Also print readings that are not phone numbers")
}

func runRepl(cmd *cobra.Command) error {
	svc, err := newInterpretService(cfg, logger)
	if err != nil {
		return err
	}

	show := cfg.App.ShowInvalid
	if cmd.Flags().Lookup("show-invalid") != nil && cmd.Flags().Changed("show-invalid") {
		show = showInvalid
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return repl.NewSession(svc, cmd.InOrStdin(), cmd.OutOrStdout(), show, logger).Run(ctx)
}
