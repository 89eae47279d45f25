package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/metrics"
)

// customProfile names the profile built from --min-run/--max-run.
const customProfile = "custom"

type solveFlags struct {
	config  string
	minRun  int
	maxRun  int
	timeout time.Duration
	path    bool
	reverse bool
	metrics bool
}

func newSolveCmd(gf *globalFlags) *cobra.Command {
	sf := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Compute the minimal heat loss for one or more run profiles",
		Long: `Solve reads a grid of digits from a file (or stdin when the file is
omitted or "-") and prints the minimal heat loss for each profile.

Profiles come from, in order of precedence:
  - --min-run/--max-run: one ad-hoc profile named "custom"
  - --config: every profile of a YAML file
  - the defaults: tight (runs of 1..3) and ultra (runs of 4..10)

Each profile prints one line, "<name>: <cost>", or "<name>: unreachable"
when no route satisfies the run bounds. An unreachable goal is not an error.

Examples:
  # Default profiles
  crucible solve input.txt

  # Ad-hoc profile with paths
  crucible solve input.txt --min-run 4 --max-run 10 --path

  # Profiles from a file, bounded by a timeout
  crucible solve input.txt --config profiles.yaml --timeout 10s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, gf, sf)
		},
	}

	cmd.Flags().StringVarP(&sf.config, "config", "c", "", "YAML profiles file")
	cmd.Flags().IntVar(&sf.minRun, "min-run", 0, "minimum straight run length (ad-hoc profile)")
	cmd.Flags().IntVar(&sf.maxRun, "max-run", 0, "maximum straight run length (ad-hoc profile)")
	cmd.Flags().DurationVar(&sf.timeout, "timeout", 0, "abort the searches after this long (0 = no limit)")
	cmd.Flags().BoolVar(&sf.path, "path", false, "print the cells and runs of each route")
	cmd.Flags().BoolVar(&sf.reverse, "reverse", false, "solve the grid rotated by 180 degrees")
	cmd.Flags().BoolVar(&sf.metrics, "metrics", false, "print Prometheus metrics after the results")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string, gf *globalFlags, sf *solveFlags) error {
	logger, err := newLogger(cmd.ErrOrStderr(), gf)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	profiles, err := resolveProfiles(cmd, sf)
	if err != nil {
		return err
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	grid, err := readGrid(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}
	if sf.reverse {
		grid = grid.Rotate180()
	}
	logger.Debug("grid loaded",
		"source", source,
		"rows", grid.Rows(),
		"cols", grid.Cols(),
		"reverse", sf.reverse,
		"profiles", len(profiles))

	ctx := cmd.Context()
	if sf.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sf.timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	results, err := solveProfiles(ctx, logger, collector, grid, profiles, sf.path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, p := range profiles {
		printResult(out, p.Name, results[i], sf.path)
	}

	if sf.metrics {
		return writeMetrics(out, reg)
	}
	return nil
}

// resolveProfiles picks the profiles to solve from the flags. Environment
// overrides apply whichever source the profiles come from.
func resolveProfiles(cmd *cobra.Command, sf *solveFlags) ([]config.Profile, error) {
	flags := cmd.Flags()
	adHoc := flags.Changed("min-run") || flags.Changed("max-run")

	var cfg *config.Config
	switch {
	case adHoc && sf.config != "":
		return nil, errors.New("--config cannot be combined with --min-run/--max-run")
	case adHoc:
		p := config.Profile{Name: customProfile}
		if flags.Changed("min-run") {
			p.MinRun = &sf.minRun
		}
		if flags.Changed("max-run") {
			p.MaxRun = &sf.maxRun
		}
		cfg = &config.Config{Profiles: []config.Profile{p}}
		config.ApplyDefaults(cfg)
	case sf.config != "":
		// Load applies the overrides and validates.
		loaded, err := config.Load(sf.config)
		if err != nil {
			return nil, err
		}
		return loaded.Profiles, nil
	default:
		cfg = config.Default()
	}

	if err := config.ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg.Profiles, nil
}

// readGrid parses the grid from the named file, or from stdin for "-".
func readGrid(stdin io.Reader, source string) (*gridgraph.Grid, error) {
	if source == "-" {
		g, err := gridgraph.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading grid from stdin: %w", err)
		}
		return g, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading grid %q: %w", source, err)
	}
	return g, nil
}

// solveProfiles searches every profile concurrently over the shared grid.
// results[i] belongs to profiles[i]. The first error cancels the rest.
func solveProfiles(
	ctx context.Context,
	logger *slog.Logger,
	collector *metrics.Collector,
	grid *gridgraph.Grid,
	profiles []config.Profile,
	withPath bool,
) ([]crucible.Result, error) {
	results := make([]crucible.Result, len(profiles))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range profiles {
		i, p := i, p
		eg.Go(func() error {
			opts, err := p.Options()
			if err != nil {
				return err
			}
			if withPath {
				opts = append(opts, crucible.WithReturnPath())
			}

			started := time.Now()
			res, err := crucible.Search(egCtx, grid, opts...)
			elapsed := time.Since(started)
			if err != nil {
				collector.RecordError(p.Name, elapsed)
				logger.Error("search failed", "profile", p.Name, "error", err)
				return fmt.Errorf("profile %q: %w", p.Name, err)
			}
			collector.RecordSearch(p.Name, res, elapsed)

			minRun, maxRun := p.RunBounds()
			logger.Info("search finished",
				"profile", p.Name,
				"min_run", minRun,
				"max_run", maxRun,
				"status", res.Status.String(),
				"cost", res.Cost,
				"expanded", res.Expanded,
				"duration", elapsed)

			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printResult(w io.Writer, name string, res crucible.Result, withPath bool) {
	if !res.Found() {
		fmt.Fprintf(w, "%s: %s\n", name, res.Status)
		return
	}
	fmt.Fprintf(w, "%s: %d\n", name, res.Cost)
	if !withPath {
		return
	}
	fmt.Fprintf(w, "  path: %v\n", res.Path)
	runs, err := crucible.Runs(res.Path)
	if err != nil || len(runs) == 0 {
		return
	}
	parts := make([]string, len(runs))
	for i, run := range runs {
		parts[i] = fmt.Sprintf("%s×%d", run.Dir, run.Length)
	}
	fmt.Fprintf(w, "  runs: %s\n", strings.Join(parts, " "))
}

// writeMetrics dumps the registry in the Prometheus text exposition format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
