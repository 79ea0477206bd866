// Package main is a demonstration pipeline for the rxstorm runtime.
//
// It wires a replay subject through a transformation and observeOn
// relocation onto the main context, feeds it from a background ticker,
// and shuts the schedulers down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/rxstorm/internal/config"
	"github.com/dshills/rxstorm/internal/logging"
	"github.com/dshills/rxstorm/internal/rx"
	"github.com/dshills/rxstorm/internal/rx/subject"
	"github.com/dshills/rxstorm/internal/sched"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "path to TOML config file")
		showVersion = flag.Bool("version", false, "print version and exit")
		duration    = flag.Duration("duration", 5*time.Second, "how long to run the demo pipeline")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("rxstorm %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Output: os.Stderr,
		Prefix: "rxstorm",
	})
	logging.Set(log)

	rx.SetStrict(cfg.Strict)

	// Bring up execution contexts.
	sched.Install()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := sched.Main().Stop(ctx); err != nil {
			log.Warn("main context did not drain cleanly: %v", err)
		}
	}()
	pool := sched.NewPool(
		sched.WithWorkers(cfg.Scheduler.Workers),
		sched.WithQueueSize(cfg.Scheduler.QueueSize),
		sched.WithPanicHandler(func(recovered any, stack []byte) {
			log.Error("task panic: %v\n%s", recovered, stack)
		}),
	)
	if err := pool.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start pool: %v\n", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := pool.Stop(ctx); err != nil {
			log.Warn("pool did not drain cleanly: %v", err)
		}
	}()

	log.Info("starting demo pipeline (workers=%d queue=%d strict=%v)",
		cfg.Scheduler.Workers, cfg.Scheduler.QueueSize, cfg.Strict)

	// Source: replay subject fed by a background ticker, so a late
	// subscriber still sees the most recent reading.
	readings := subject.NewReplay[int](1)

	stopFeed := make(chan struct{})
	feedDone := make(chan struct{})
	go func() {
		defer close(feedDone)
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		n := 0
		for {
			select {
			case <-ticker.C:
				n++
				readings.OnNext(n)
			case <-stopFeed:
				readings.OnCompleted()
				return
			}
		}
	}()

	// Pipeline: square each reading on the pool, deliver on main.
	squared := rx.Map(rx.ObserveOn[int](readings, pool), func(v int) int {
		return v * v
	})
	binder := rx.NewBinder(func(v int) {
		log.Info("reading squared: %d", v)
	}, rx.WithBinderLogger(log))
	sub := squared.Subscribe(binder)
	defer sub.Dispose()

	// Run until the duration elapses or a signal arrives.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		log.Info("received %v, shutting down", sig)
	case <-time.After(*duration):
		log.Info("demo duration elapsed, shutting down")
	}

	close(stopFeed)
	<-feedDone

	stats := pool.Stats()
	log.Info("pool stats: scheduled=%d executed=%d dropped=%d panicked=%d",
		stats.Scheduled, stats.Executed, stats.Dropped, stats.Panicked)

	return 0
}
