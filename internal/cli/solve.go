package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coldbrew-labs/tspbb/internal/config"
	"github.com/coldbrew-labs/tspbb/internal/debugserver"
	"github.com/coldbrew-labs/tspbb/internal/progress"
	"github.com/coldbrew-labs/tspbb/internal/render"
	"github.com/coldbrew-labs/tspbb/internal/tui"
	"github.com/coldbrew-labs/tspbb/tsp"
)

// solveFlags holds the raw flag values bound by Cobra, before the
// config-file overlay (internal/config) is applied.
type solveFlags struct {
	workers    int
	threads    int
	bound      string
	mode       string
	redisAddr  string
	rank       int
	configPath string
	debugAddr  string
	tuiOn      bool
	graphOut   string
	logLevel   string
	logFormat  string
}

func (c *CLI) solveCommand() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Compute the exact optimal tour for a distance-matrix file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return newUsageError(fmt.Sprintf("solve requires exactly one file argument, got %d", len(args)))
			}

			return c.runSolve(cmd.Context(), args[0], f)
		},
	}

	cmd.Flags().IntVar(&f.workers, "workers", 1, "number of distributed workers (world size)")
	cmd.Flags().IntVar(&f.threads, "threads", runtime.NumCPU(), "goroutines per worker")
	cmd.Flags().StringVar(&f.bound, "bound", "twoedge", "lower-bound scheme: minedge|twoedge")
	cmd.Flags().StringVar(&f.mode, "mode", "local", "transport: local|redis")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", "", "redis address, required when --mode=redis")
	cmd.Flags().IntVar(&f.rank, "rank", 0, "this process's worker rank, only used in --mode=redis")
	cmd.Flags().StringVar(&f.configPath, "config", "", "optional TOML file of default flag values")
	cmd.Flags().StringVar(&f.debugAddr, "debug-addr", "", "optional address to serve a JSON progress snapshot on")
	cmd.Flags().BoolVar(&f.tuiOn, "tui", false, "show a live terminal progress view")
	cmd.Flags().StringVar(&f.graphOut, "graph-out", "", "optional PNG path to render the optimal tour")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "log format: text|json")

	return cmd
}

// runSolve implements the solve subcommand end to end: parse the instance,
// apply config-file overlay, build the requested Transport, run the
// Coordinator, and print the spec-mandated result line(s).
func (c *CLI) runSolve(ctx context.Context, path string, f solveFlags) error {
	fileCfg, err := config.Load(f.configPath)
	if err != nil {
		return newUsageError(err.Error())
	}
	f.workers = config.OverlayInt(f.workers, fileCfg.Workers)
	f.threads = config.OverlayInt(f.threads, fileCfg.Threads)
	f.bound = config.OverlayString(f.bound, fileCfg.Bound)
	f.mode = config.OverlayString(f.mode, fileCfg.Mode)
	f.redisAddr = config.OverlayString(f.redisAddr, fileCfg.RedisAddr)
	f.logLevel = config.OverlayString(f.logLevel, fileCfg.LogLevel)
	f.logFormat = config.OverlayString(f.logFormat, fileCfg.LogFormat)

	level := parseLogLevel(f.logLevel)
	c.Logger.SetLevel(level)
	if f.logFormat == "json" {
		c.Logger = newLogger(c.Stderr, level)
		c.Logger.SetFormatter(log.JSONFormatter)
	}

	runID := uuid.NewString()
	logger := c.Logger.With("run_id", runID, "rank", f.rank)

	file, err := os.Open(path)
	if err != nil {
		return newUsageError(fmt.Sprintf("opening %s: %v", path, err))
	}
	defer file.Close()

	dm, err := tsp.ParseDistanceFile(file)
	if err != nil {
		return err
	}

	scheme, err := parseBoundScheme(f.bound)
	if err != nil {
		return newUsageError(err.Error())
	}

	transport, cleanup, err := buildTransport(f, runID)
	if err != nil {
		return newUsageError(err.Error())
	}
	defer cleanup()

	feed := progress.NewFeed(runID, f.workers, f.threads)

	var debugSrv *debugserver.Server
	if f.debugAddr != "" {
		debugSrv = debugserver.New(f.debugAddr, feed)
		debugSrv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = debugSrv.Shutdown(shutdownCtx)
		}()
	}

	var program *tea.Program
	if f.tuiOn {
		program = tea.NewProgram(tui.NewModel(feed))
		go func() { _, _ = program.Run() }()
	}

	logger.Info("starting solve", "workers", f.workers, "threads", f.threads, "bound", f.bound, "mode", f.mode)

	sol, isReportingRank, err := solveWithMode(ctx, dm, f, scheme, transport, feed)
	feed.Update(sol.Cost, sol.Found, true)
	if program != nil {
		program.Quit()
	}
	if err != nil {
		return err
	}

	if !isReportingRank {
		return nil
	}

	if !sol.Found {
		fmt.Fprintln(c.Stdout, "No solution found!")

		return nil
	}

	elapsed := time.Since(feed.Snapshot().Started).Seconds()
	fmt.Fprintf(c.Stdout, "Optimal tour cost: %d   time: %.3f s   ranks: %d\n", sol.Cost, elapsed, f.workers)
	fmt.Fprintf(c.Stdout, "Optimal path: %s\n", formatPath(sol.Path))

	if f.graphOut != "" {
		if err := render.RenderPNG(sol.Path, sol.Cost, f.graphOut); err != nil {
			logger.Warn("failed to render tour graph", "err", err)
		}
	}

	return nil
}

// solveWithMode runs the Coordinator under the shape each transport mode
// actually requires. --mode=local simulates every rank of --workers as a
// goroutine inside this one process, sharing a single LocalTransport, since
// there is no second process to run them (spec §4.5's "all WorldSize
// workers are goroutines in one OS process"); --mode=redis runs exactly
// this process's own --rank, since each rank is a genuinely separate
// process coordinating through Redis. Either way, every rank's search
// reports live Progress into feed via OnProgress, so the debug server and
// TUI observe intermediate state instead of jumping straight to the final
// result. The returned bool reports whether this call owns rank 0's
// result, the only one cmd/tspbb prints to stdout.
func solveWithMode(ctx context.Context, dm *tsp.DistanceModel, f solveFlags, scheme tsp.BoundScheme, transport tsp.Transport, feed *progress.Feed) (tsp.Solution, bool, error) {
	onProgress := func(p tsp.Progress) {
		feed.Observe(p.Rank, p.BestCost, p.BestFound, p.NodesExplored)
	}

	if f.mode == "redis" {
		identity := tsp.WorkerIdentity{Rank: f.rank, WorldSize: f.workers}
		sol, err := tsp.Run(ctx, dm, tsp.CoordinatorOptions{
			Identity:   identity,
			Scheme:     scheme,
			Driver:     tsp.DriverOptions{Threads: f.threads},
			Transport:  transport,
			OnProgress: onProgress,
		})

		return sol, f.rank == 0, err
	}

	solutions := make([]tsp.Solution, f.workers)
	g, gctx := errgroup.WithContext(ctx)
	for rank := 0; rank < f.workers; rank++ {
		rank := rank
		g.Go(func() error {
			sol, err := tsp.Run(gctx, dm, tsp.CoordinatorOptions{
				Identity:   tsp.WorkerIdentity{Rank: rank, WorldSize: f.workers},
				Scheme:     scheme,
				Driver:     tsp.DriverOptions{Threads: f.threads},
				Transport:  transport,
				OnProgress: onProgress,
			})
			solutions[rank] = sol

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return tsp.Solution{}, false, err
	}

	return solutions[0], true, nil
}

func parseBoundScheme(s string) (tsp.BoundScheme, error) {
	switch s {
	case "minedge":
		return tsp.SchemeMinEdge, nil
	case "twoedge", "":
		return tsp.SchemeTwoEdgeAvg, nil
	default:
		return 0, fmt.Errorf("unknown --bound scheme %q (want minedge|twoedge)", s)
	}
}

// buildTransport constructs the Transport this process will coordinate
// through, plus a cleanup function to run once the solve completes.
func buildTransport(f solveFlags, runID string) (tsp.Transport, func(), error) {
	switch f.mode {
	case "local", "":
		return tsp.NewLocalTransport(f.workers), func() {}, nil
	case "redis":
		if f.redisAddr == "" {
			return nil, nil, fmt.Errorf("--redis-addr is required when --mode=redis")
		}
		client := redis.NewClient(&redis.Options{Addr: f.redisAddr})
		rt := tsp.NewRedisTransport(client, runID)

		return rt, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown --mode %q (want local|redis)", f.mode)
	}
}

func formatPath(path []int) string {
	var b strings.Builder
	for i, c := range path {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", c)
	}

	return b.String()
}
