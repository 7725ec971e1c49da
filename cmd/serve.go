package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docnav/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sidebar API",
	Long: `Starts an HTTP server exposing the generated sidebar per session, including a
WebSocket channel that answers navigation events with the current page's sidebar.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("cors-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, data, err := loadSite()
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		Port:        cfg.Server.Port,
		AllowAll:    cfg.Server.AllowAllOrigins,
		SessionTTL:  cfg.Server.SessionTTL,
		MaxSessions: cfg.Server.MaxSessions,
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		srvCfg.Port = port
	}
	if all, _ := cmd.Flags().GetBool("cors-all"); all {
		srvCfg.AllowAll = true
	}

	logger := newLogger()
	srv := server.New(srvCfg, data, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
