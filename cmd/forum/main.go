package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"forum/config"
	"forum/internal/errors"
	logs "forum/internal/infra/log"
	"forum/internal/infra/persistence/migrations"
	"forum/internal/infra/persistence/postgres"
)

const usage = `Usage: forum <command> [flags]

Commands:
  serve                  run the HTTP API (default)
  migrate                apply or roll back database migrations
  cleanup-test-schemas   drop schemas left behind by integration tests
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		slog.Error("forum exited with error", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	command := "serve"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	switch command {
	case "serve":
		return runServe(ctx, args, stderr)
	case "migrate":
		return runMigrate(ctx, args, stderr)
	case "cleanup-test-schemas":
		return runCleanupTestSchemas(ctx, args, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stderr, usage)

		return nil
	default:
		fmt.Fprint(stderr, usage)

		return errors.Errorf("unknown command %q", command)
	}
}

func loadInfra() (*config.Config, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create logger")
	}
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	migrate := fs.Bool("migrate", false, "apply pending migrations before serving")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, logger, err := loadInfra()
	if err != nil {
		return err
	}

	if *migrate {
		if err := migrations.Up(cfg.Postgres.MasterURL(), logger); err != nil {
			return err
		}
	}

	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.close()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.server.Serve(ctx)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	// The signal context is already done; shutdown gets its own deadline.
	if err := app.server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		return err
	}

	return <-serveErr
}

func runMigrate(_ context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	down := fs.Int("down", 0, "roll back this many migrations instead of applying")
	showVersion := fs.Bool("version", false, "print the current schema version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, logger, err := loadInfra()
	if err != nil {
		return err
	}
	databaseURL := cfg.Postgres.MasterURL()

	switch {
	case *showVersion:
		version, dirty, err := migrations.Version(databaseURL)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "version=%d dirty=%t\n", version, dirty)

		return nil
	case *down > 0:
		return migrations.Down(databaseURL, *down, logger)
	default:
		if err := migrations.Up(databaseURL, logger); err != nil {
			return err
		}
		logger.Info("Migrations applied")

		return nil
	}
}

func runCleanupTestSchemas(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("cleanup-test-schemas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, logger, err := loadInfra()
	if err != nil {
		return err
	}

	client, err := postgres.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}()

	dropped, err := migrations.DropTestSchemas(ctx, client.DB)
	if err != nil {
		return err
	}
	logger.Info("Dropped test schemas", slog.Int("count", dropped))

	return nil
}
