package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "crucible",
		Short: "Minimum heat-loss routing with bounded straight runs",
		Long: `Crucible computes the minimal total heat loss of a route across a grid
of digits, from the top-left to the bottom-right cell, when the route must
move in straight runs whose length lies between a minimum and a maximum and
may only turn 90 degrees between runs.

Each cell's digit is the heat lost when entering it; the start cell is free.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "verbose (debug) logging")
	cmd.PersistentFlags().StringVar(&gf.logFormat, "log-format", "text", "log format: text, json")

	cmd.AddCommand(newSolveCmd(gf))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger builds the structured logger for one invocation.
func newLogger(w io.Writer, gf *globalFlags) (*slog.Logger, error) {
	level := slog.LevelInfo
	if gf.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch gf.logFormat {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (must be text or json)", gf.logFormat)
	}
}
