// Command lruk-demo contrasts an LRU-K cache with a plain LRU under a
// scan-heavy workload: warm a hot working set, sweep a long one-shot
// scan through both caches, then measure how much of the hot set each
// of them kept.
package main

import (
	"fmt"
	"os"
	"time"

	lruk "github.com/farazdagi/lru-k"
	"github.com/farazdagi/lru-k/internal/workload"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var log, _ = newLogger()

func newLogger() (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.DisableCaller = true
	config.InitialFields = map[string]any{"service": "lruk-demo"}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func main() {
	app := &cli.App{
		Name:  "lruk-demo",
		Usage: "contrast LRU-K and plain LRU under a scan-heavy workload",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "capacity",
				Value:   1024,
				Usage:   "number of cache slots",
				EnvVars: []string{"LRUK_DEMO_CAPACITY"},
			},
			&cli.IntFlag{
				Name:    "hot-size",
				Value:   1024,
				Usage:   "distinct keys in the hot working set",
				EnvVars: []string{"LRUK_DEMO_HOT_SIZE"},
			},
			&cli.IntFlag{
				Name:    "scan-size",
				Value:   50_000,
				Usage:   "one-shot keys swept through the cache",
				EnvVars: []string{"LRUK_DEMO_SCAN_SIZE"},
			},
			&cli.IntFlag{
				Name:    "hot-ops",
				Value:   20_000,
				Usage:   "hot lookups per measurement window",
				EnvVars: []string{"LRUK_DEMO_HOT_OPS"},
			},
			&cli.IntFlag{
				Name:    "history-depth",
				Value:   lruk.DefaultHistoryDepth,
				Usage:   "reference stamps kept per entry (the K)",
				EnvVars: []string{"LRUK_DEMO_HISTORY_DEPTH"},
			},
			&cli.Uint64Flag{
				Name:    "window",
				Value:   lruk.DefaultCorrelationWindow,
				Usage:   "correlated-reference period in ticks (0 disables)",
				EnvVars: []string{"LRUK_DEMO_WINDOW"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Value:   0xC0FFEE,
				Usage:   "workload RNG seed",
				EnvVars: []string{"LRUK_DEMO_SEED"},
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalw("demo", "error", err)
	}
}

func run(ctx *cli.Context) error {
	var (
		capacity = ctx.Int("capacity")
		hotSize  = ctx.Int("hot-size")
		scanSize = ctx.Int("scan-size")
		hotOps   = ctx.Int("hot-ops")
		depth    = ctx.Int("history-depth")
		window   = ctx.Uint64("window")
		seed     = ctx.Int64("seed")
	)
	if capacity < 1 || hotSize < 1 {
		return cli.Exit("capacity and hot-size must be > 0", 2)
	}
	if scanSize < 1 {
		return cli.Exit("scan-size must be > 0", 2)
	}
	if depth < 1 {
		return cli.Exit("history-depth must be > 0", 2)
	}

	fmt.Println("LRU-K scan-resistance demo")
	fmt.Printf("capacity      = %d\n", capacity)
	fmt.Printf("hot_size      = %d\n", hotSize)
	fmt.Printf("scan_size     = %d\n", scanSize)
	fmt.Printf("hot_ops       = %d\n", hotOps)
	fmt.Printf("history_depth = %d\n", depth)
	fmt.Printf("window        = %d\n", window)
	fmt.Printf("seed          = %#x\n", seed)
	if capacity != hotSize {
		fmt.Println("Note: setting capacity == hot-size makes the effect starkest.")
	}

	kCache, err := lruk.NewK[int, int](capacity, depth, window)
	if err != nil {
		return err
	}
	plain, err := workload.NewPlainLRU(capacity)
	if err != nil {
		return err
	}
	contenders := []struct {
		name   string
		runner *workload.Runner
	}{
		{"lru-k", workload.NewRunner(kCache, hotSize, seed)},
		{"lru", workload.NewRunner(plain, hotSize, seed)},
	}
	for _, contender := range contenders {
		fmt.Printf("\n--- %s ---\n", contender.name)
		report(contender.name, contender.runner, hotSize, scanSize, hotOps)
	}

	fmt.Println("\nInterpretation:")
	fmt.Println("- Pre-scan: both caches serve the hot set near 100%.")
	fmt.Println("- After one cold scan: plain LRU collapses (polluted by single-touch keys);")
	fmt.Println("  LRU-K keeps its retained entries and barely moves.")
	fmt.Println("- Recovery shows the extra work plain LRU spends rebuilding the hot set.")
	return nil
}

func report(name string, runner *workload.Runner, hotSize, scanSize, hotOps int) {
	// Warm-up: teach the cache the hot set well.
	warmOps := max(hotOps, hotSize*2)
	start := time.Now()
	warm := runner.AccessHot(warmOps)
	warmTime := time.Since(start)
	log.Infow("phase",
		"cache", name, "event", "warm-up",
		"ops", warm.Ops(), "hit_rate", warm.HitRate(),
	)
	fmt.Printf("Warm-up: hot accesses = %d, hit_rate = %.2f%%, time = %v\n",
		warm.Ops(), warm.HitRate()*100, warmTime)

	pre := runner.AccessHot(hotOps)
	log.Infow("phase",
		"cache", name, "event", "pre-scan window",
		"hit_rate", pre.HitRate(),
	)
	fmt.Printf("Pre-scan hot window: hit_rate = %.2f%%\n", pre.HitRate()*100)

	start = time.Now()
	cold := runner.ScanCold(scanSize)
	scanTime := time.Since(start)
	log.Infow("phase",
		"cache", name, "event", "cold scan",
		"hits", cold.Hits, "misses", cold.Misses,
	)
	fmt.Printf("Cold scan: items = %d, hits = %d, misses = %d, time = %v\n",
		scanSize, cold.Hits, cold.Misses, scanTime)

	// Immediately after the scan, measure hot again.
	post := runner.AccessHot(hotOps)
	log.Infow("phase",
		"cache", name, "event", "post-scan window",
		"hit_rate", post.HitRate(),
	)
	fmt.Printf("Post-scan hot window: hit_rate = %.2f%%\n", post.HitRate()*100)

	const recoveryTarget = 0.90
	limit := hotSize * 10
	ops, recovered := runner.Recover(recoveryTarget, limit)
	log.Infow("phase",
		"cache", name, "event", "recovery",
		"ops", ops, "recovered", recovered,
	)
	if recovered {
		fmt.Printf("Recovery: ~%d hot ops needed to exceed %.0f%% hit rate again.\n",
			ops, recoveryTarget*100)
	} else {
		fmt.Printf("Recovery: did not exceed %.0f%% hit rate within %d ops.\n",
			recoveryTarget*100, limit)
	}
}
