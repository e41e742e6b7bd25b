package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"numinterp/internal/controller"
	"numinterp/internal/handler"
	"numinterp/pkg/mcp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and the MCP tool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		svc, err := newInterpretService(cfg, logger)
		if err != nil {
			return err
		}

		var mcpServer *mcp.InterpretServer
		if cfg.Mcp.Enabled {
			mcpServer = mcp.NewInterpretServer(svc, version, logger)
			logger.Info("MCP tool enabled", zap.String("path", cfg.Mcp.Path))
		}

		interpretController := controller.NewInterpretController(svc, cfg.Server.MaxBatchSize, logger)
		router := handler.SetupRouter(interpretController, mcpServer, cfg.Mcp.Path, logger)

		srv := &http.Server{
			Addr:              cfg.Server.GetAddress(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Starting server", zap.String("address", srv.Addr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Server failed", zap.Error(err))
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on (overrides configuration)")
}
