package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getmockd/ews/pkg/ewstest"
	"github.com/getmockd/ews/pkg/logging"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an in-memory EWS endpoint for local testing",
		Long: `Run an in-memory EWS endpoint for local testing.

Items live only for the lifetime of the process. Point other ewsctl
invocations at it with --endpoint http://<addr>/EWS/Exchange.asmx.`,
		Example: `  ewsctl serve --addr 127.0.0.1:8443`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelInfo
			if a.flags.logLevel != "" {
				l, err := logging.ParseLevelStrict(a.flags.logLevel)
				if err != nil {
					return err
				}
				level = l
			}
			logger := logging.New(logging.Config{Level: level, Format: logging.FormatText, Output: cmd.ErrOrStderr()})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, addr, cmd.OutOrStdout(), logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8443", "Listen address")
	return cmd
}

// runServe serves the in-memory endpoint on addr until ctx is done.
func runServe(ctx context.Context, addr string, out io.Writer, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           ewstest.NewServer(ewstest.WithLogger(logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	fmt.Fprintf(out, "Serving EWS on http://%s/EWS/Exchange.asmx\n", ln.Addr())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
