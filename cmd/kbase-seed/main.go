// Command kbase-seed publishes a document collection to Valkey or Redis
// under the key the kbase server reads with the redis store backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kailas-cloud/kbase/internal/config"
	dbRedis "github.com/kailas-cloud/kbase/internal/db/redis"
	logpkg "github.com/kailas-cloud/kbase/internal/logger"
	docrepo "github.com/kailas-cloud/kbase/internal/repository/document"
	"github.com/kailas-cloud/kbase/internal/version"
)

type options struct {
	file     string
	addrs    []string
	password string
	key      string
	timeout  time.Duration
	dryRun   bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	flagSet := pflag.NewFlagSet("kbase-seed", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.file, "file", "f", "", "YAML or JSON collection to publish (default: built-in sample)")
	flagSet.StringSliceVar(&opts.addrs, "addr", []string{"localhost:6379"}, "Valkey/Redis address (repeatable)")
	flagSet.StringVar(&opts.password, "password", os.Getenv("REDIS_PASSWORD"), "database password")
	flagSet.StringVar(&opts.key, "key", docrepo.DefaultRedisKey, "key holding the collection snapshot")
	flagSet.DurationVar(&opts.timeout, "timeout", 10*time.Second, "how long to wait for the database")
	flagSet.BoolVar(&opts.dryRun, "dry-run", false, "validate the collection without writing it")
	showVersion := flagSet.Bool("version", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println("kbase-seed", version.String())
		return nil
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return fmt.Errorf("unexpected argument: %s", extra[0])
	}

	logger, err := logpkg.NewLogger(config.GetEnv())
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return seed(context.Background(), &opts, logger)
}

func loaderFor(opts *options) docrepo.Loader {
	if opts.file == "" {
		return docrepo.SampleLoader{}
	}
	return docrepo.FileLoader{Path: opts.file}
}

func seed(ctx context.Context, opts *options, logger *zap.Logger) error {
	docs, err := loaderFor(opts).Load(ctx)
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	// Same checks the server applies on startup.
	if _, err := docrepo.New(docs); err != nil {
		return fmt.Errorf("invalid collection: %w", err)
	}
	logger.Info("Collection validated", zap.Int("documents", len(docs)), zap.String("source", opts.file))

	if opts.dryRun {
		return nil
	}

	store, err := dbRedis.NewStore(dbRedis.Config{Addrs: opts.addrs, Password: opts.password})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, opts.timeout); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}
	if err := docrepo.Publish(ctx, store, opts.key, docs); err != nil {
		return err
	}
	logger.Info("Collection published", zap.String("key", opts.key), zap.Strings("addrs", opts.addrs))
	return nil
}
