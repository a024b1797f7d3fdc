package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/dms-go/internal/mockserver"
)

func newLocalCmd(opts *options) *cobra.Command {
	var (
		port      int
		accountID string
	)

	localCmd := &cobra.Command{
		Use:   "local",
		Short: "Run an in-memory DMS server",
		Long: `Run an in-memory DMS server that speaks the DMS JSON protocol. Point
dmsctl or any AWS SDK at it with --endpoint http://localhost:<port>.
The server runs until it is interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = opts.cfg.Server.Port
			}
			if accountID == "" {
				accountID = opts.cfg.Server.AccountID
			}
			return runLocal(cmd, mockserver.Config{
				Port:      port,
				Region:    opts.cfg.AWS.Region,
				AccountID: accountID,
			})
		},
	}

	localCmd.Flags().IntVarP(&port, "port", "p", mockserver.DefaultPort, "Port to listen on (0 picks a free port)")
	localCmd.Flags().StringVar(&accountID, "account-id", "", "Account ID used in ARNs")
	return localCmd
}

func runLocal(cmd *cobra.Command, cfg mockserver.Config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mockserver.NewServer(cfg)
	if err := server.Listen(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "DMS server listening on %s (region %s)\n", server.URL(), server.Service().Region())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
