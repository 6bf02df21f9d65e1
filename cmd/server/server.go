package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/saqib40/kit-and-adapter/internal/app"
	"github.com/saqib40/kit-and-adapter/internal/util/command"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the server",
		Long: `Starts the HTTP server

Serves the wallet page on /, its form actions on /actions/*,
the GraphQL API on /query and a liveness probe on /healthz.`,
		RunE: func(cmd *cobra.Command, _ []string /* args */) error {
			return command.WithApp(cmd.Context(), run)
		},
	}
}

func run(ctx context.Context, a *app.App) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.Config.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
