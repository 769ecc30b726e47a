package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/lor/pizzeria/internal/session"
	"github.com/spf13/cobra"
)

func newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Start an interactive ordering session",
		Long: `Start an interactive ordering session on stdin/stdout.

You will be asked for a store location, the number of pizzas, and
for each pizza its name and any additional toppings.

Example:
  printf 'Sydney\n1\nInferno\n\n' | pizzeria order`,
		Args: cobra.NoArgs,
		RunE: runOrder,
	}
}

// runOrder runs one session. Customer mistakes end the session with a
// message but never fail the command.
func runOrder(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	watchInterrupts(ctx, cancel, cmd)

	s := session.New(env.catalog, cmd.InOrStdin(), cmd.OutOrStdout(), env.log)
	if _, err := s.Run(ctx); err != nil {
		if session.IsAbort(err) {
			env.log.Debug("order not placed", "reason", err)
			return nil
		}
		return fmt.Errorf("ordering session failed: %w", err)
	}
	return nil
}

// watchInterrupts ends the process cleanly on SIGINT/SIGTERM. The session
// blocks on console reads, so cancelling the context alone cannot stop it.
func watchInterrupts(ctx context.Context, cancel context.CancelFunc, cmd *cobra.Command) {
	ch := make(chan os.Signal, 1)
	notifySignals(ch)
	go func() {
		defer signal.Stop(ch)
		select {
		case <-ch:
			cancel()
			fmt.Fprintln(cmd.OutOrStdout(), "\nOrder cancelled.")
			os.Exit(0)
		case <-ctx.Done():
		}
	}()
}
