package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/natserract/mailchimp-mcp/pkg/audit/postgres"
	"github.com/natserract/mailchimp-mcp/pkg/config"
	"github.com/natserract/mailchimp-mcp/pkg/mailchimp"
	"github.com/natserract/mailchimp-mcp/pkg/mcp"
	"github.com/natserract/mailchimp-mcp/pkg/tools"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		stop()
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	client := mailchimp.NewMailchimpWithLogger(cfg, logger)

	registry, err := tools.NewRegistry(client, logger)
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	opts := []mcp.Option{mcp.WithMetrics(mcp.NewMetrics())}

	// Auditing is optional; without a DSN invocations are only logged
	if cfg.AuditDSN != "" {
		db, err := postgres.New(ctx, postgres.NewConfig(cfg.AuditDSN), logger)
		if err != nil {
			return fmt.Errorf("failed to connect to audit database: %w", err)
		}
		defer db.Close()

		if err := db.InitSchema(ctx); err != nil {
			return err
		}
		opts = append(opts,
			mcp.WithRecorder(postgres.NewRecorder(db, logger)),
			mcp.WithHealthCheck(db.Ping))
	}

	server := mcp.NewServer(registry, logger, opts...)
	logger.Info("Starting Mailchimp MCP server",
		zap.String("transport", cfg.Transport),
		zap.String("base_url", client.BaseURL()),
		zap.Int("tools", len(registry.Definitions())),
		zap.Bool("audit", cfg.AuditDSN != ""))

	if cfg.Transport == config.TransportHTTP {
		return server.ListenAndServe(ctx, cfg.HTTPAddr)
	}
	return server.Serve(ctx)
}

// newLogger builds a production logger on stderr; stdout carries protocol frames
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
