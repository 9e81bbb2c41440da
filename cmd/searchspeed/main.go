package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/searchspeed/internal/config"
	"github.com/kailas-cloud/searchspeed/internal/corpus"
	"github.com/kailas-cloud/searchspeed/internal/db"
	dbMongo "github.com/kailas-cloud/searchspeed/internal/db/mongodb"
	dbRedis "github.com/kailas-cloud/searchspeed/internal/db/redis"
	logpkg "github.com/kailas-cloud/searchspeed/internal/logger"
	"github.com/kailas-cloud/searchspeed/internal/metrics"
	"github.com/kailas-cloud/searchspeed/internal/report"
	documentrepo "github.com/kailas-cloud/searchspeed/internal/repository/document"
	searchrepo "github.com/kailas-cloud/searchspeed/internal/repository/search"
	benchmarkuc "github.com/kailas-cloud/searchspeed/internal/usecase/benchmark"
	"github.com/kailas-cloud/searchspeed/internal/version"
)

func main() {
	env := flag.String("env", config.GetEnv(), "config environment (config/<env>.yaml)")
	configPath := flag.String("config", "", "explicit config file path (overrides -env)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	var (
		cfg config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load(*env)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(cfg.LoggerEnv(*env, *configPath != ""), cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting searchspeed",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("date", version.Date),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("namespace", cfg.Database.Name+"."+cfg.Database.Collection),
		zap.String("index", cfg.Index.Name),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logpkg.ContextWithLogger(ctx, logger)

	if err := run(ctx, cfg); err != nil {
		stop()
		logger.Fatal("Benchmark failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logger := logpkg.FromContext(ctx)

	// Register benchmark metrics explicitly (no init())
	metrics.RegisterBenchmarkMetrics()

	inner, prefix, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	store := metrics.NewInstrumentedStore(inner, cfg.Database.Driver)
	defer store.Close()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database")

	// Create repositories (store handle passed explicitly)
	docs := documentrepo.New(store, cfg.Index.Name, prefix)
	search := searchrepo.New(store, cfg.Index.Name, prefix)

	out := report.New(os.Stdout)
	svc := benchmarkuc.New(docs, search, corpus.New(cfg.Benchmark.Seed), out)

	rep, err := svc.Run(ctx, benchmarkuc.Options{
		Paragraphs:    cfg.Benchmark.Paragraphs,
		Query:         cfg.Benchmark.Query,
		MaxResults:    cfg.Benchmark.MaxResults,
		Cleanup:       cfg.Benchmark.Cleanup,
		CreateIndex:   cfg.Index.Create,
		RecreateIndex: cfg.Index.Recreate,
	})
	if err != nil {
		return err
	}
	if err := out.Err(); err != nil {
		return err
	}

	logger.Info("Benchmark finished",
		zap.String("document_id", rep.DocumentID),
		zap.Uint64("size_bytes", rep.SizeBytes),
		zap.Int("hits", len(rep.Hits)),
		zap.Float64("elapsed_seconds", rep.Elapsed.Seconds()),
		zap.Int("documents", rep.Count),
	)

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		logger.Info("Metrics written", zap.String("path", cfg.Metrics.Textfile))
	}
	return nil
}

// openStore creates the store for the configured driver and returns the key
// prefix its documents live under (empty for collection-scoped stores).
func openStore(ctx context.Context, cfg config.Config) (db.Store, string, error) {
	switch cfg.Database.Driver {
	case config.DriverRedis:
		prefix := cfg.KeyPrefix()
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.Database.Addrs,
			Username:  cfg.Database.Username,
			Password:  cfg.Database.Password,
			DB:        cfg.Database.DB,
			KeyPrefix: prefix,
		})
		if err != nil {
			return nil, "", fmt.Errorf("create redis store: %w", err)
		}
		return store, prefix, nil
	case config.DriverMongo:
		store, err := dbMongo.NewStore(ctx, dbMongo.Config{
			URI:        cfg.Database.URI,
			Username:   cfg.Database.Username,
			Password:   cfg.Database.Password,
			Database:   cfg.Database.Name,
			Collection: cfg.Database.Collection,
			AppName:    "searchspeed",
		})
		if err != nil {
			return nil, "", fmt.Errorf("create mongo store: %w", err)
		}
		return store, "", nil
	default:
		return nil, "", fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
