package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"syslang/internal/ipc"
	"syslang/internal/locale"
	"syslang/internal/logging"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer language RPC calls on the local socket until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, ctx)
		},
	}
}

func runServer(cmd *cobra.Command, ctx *commandContext) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	signalCtx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	socket, err := ctx.socketPath()
	if err != nil {
		return err
	}
	if err := ctx.ensureDirectories(); err != nil {
		return err
	}
	detector := locale.New(locale.WithLogger(logger))
	store, err := ctx.newStore()
	if err != nil {
		return err
	}

	srv, err := ipc.NewServer(signalCtx, socket, detector, store, logger)
	if err != nil {
		return fmt.Errorf("start rpc server: %w", err)
	}
	defer srv.Close()
	srv.Serve()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderStatusLine("Server", statusOK, "listening on "+socket, shouldColorize(out)))

	<-signalCtx.Done()
	logger.Info("syslang server shutting down", logging.String(logging.FieldEventType, "server_stop"))
	return nil
}
