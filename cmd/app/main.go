package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/kevinccbsg/twd-principles/internal"
	"github.com/kevinccbsg/twd-principles/internal/check"
	"github.com/kevinccbsg/twd-principles/internal/docservice"
	"github.com/kevinccbsg/twd-principles/internal/index"
	"github.com/kevinccbsg/twd-principles/internal/mcpserver"
	"github.com/kevinccbsg/twd-principles/internal/storage"
	pkgconfig "github.com/kevinccbsg/twd-principles/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

// runCheck validates the site without a server: it walks the content
// root directly, so no SQLite index is created.
func runCheck(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.NewFS(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	in, err := check.FromStore(store, cfg.Site)
	if err != nil {
		return fmt.Errorf("gather documents: %w", err)
	}

	report := check.Run(in)
	check.Render(os.Stdout, report)
	if report.HasErrors() {
		return cli.Exit("", 1)
	}
	return nil
}

func runMCP(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.NewFS(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	// Logs go to stderr: stdout belongs to the MCP stdio transport.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	if err := index.Sync(db, store, cfg.Site.Base, logger); err != nil {
		logger.Warn("initial sync failed", slog.String("error", err.Error()))
	}

	svc := docservice.NewService(store, db, cfg.Site)
	return mcpserver.New(svc, store).ServeStdio()
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:           "twd",
		Usage:          "Documentation site toolkit: Markdown content store, navigation resolution, and pre-build validation",
		Flags:          []cli.Flag{configFlag},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the preview server with live reload",
				Action: runServe,
			},
			{
				Name:   "check",
				Usage:  "Validate navigation links and document references, exit non-zero on errors",
				Action: runCheck,
			},
			{
				Name:   "mcp",
				Usage:  "Serve documentation tools over the Model Context Protocol (stdio)",
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
