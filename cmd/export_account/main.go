package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/natserract/mailchimp-mcp/pkg/config"
	"github.com/natserract/mailchimp-mcp/pkg/export"
	"github.com/natserract/mailchimp-mcp/pkg/mailchimp"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "exports", "Directory the snapshot is written to")
	concurrency := flag.Int("concurrency", 4, "Maximum concurrent Mailchimp requests")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := mailchimp.NewMailchimpWithLogger(cfg, logger)
	exporter := export.NewExporter(client, logger, *concurrency)

	snap, err := exporter.Snapshot(ctx)
	if err != nil {
		logger.Error("Snapshot failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Snapshot failed: %v\n", err)
		os.Exit(1)
	}

	path, err := export.WriteFile(*dir, snap)
	if err != nil {
		logger.Error("Failed to write export file", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to write export: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Export written",
		zap.String("path", path),
		zap.Int("lists", len(snap.Lists)),
		zap.Int("campaigns", len(snap.Campaigns)),
		zap.Int("automations", len(snap.Automations)),
		zap.Int("templates", len(snap.Templates)),
		zap.Int("reports", len(snap.Reports)),
		zap.Int("stores", len(snap.Stores)))
	fmt.Printf("Exported account snapshot to %s\n", path)
}
