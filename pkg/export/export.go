// Package export takes a point-in-time snapshot of a Mailchimp account's
// top-level resources and writes it to disk as JSON.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natserract/mailchimp-mcp/pkg/mailchimp"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	defaultMaxGoroutines = 4
	defaultFname         = "export.json"
)

// Snapshot is the exported account state
type Snapshot struct {
	ExportedAt  time.Time                  `json:"exported_at"`
	Account     *mailchimp.Account         `json:"account"`
	Lists       []mailchimp.List           `json:"lists"`
	Campaigns   []mailchimp.Campaign       `json:"campaigns"`
	Automations []mailchimp.Automation     `json:"automations"`
	Templates   []mailchimp.Template       `json:"templates"`
	Reports     []mailchimp.CampaignReport `json:"reports"`
	Stores      []mailchimp.Store          `json:"stores"`
}

// Exporter fetches snapshots through the Mailchimp client
type Exporter struct {
	client        mailchimp.MailchimpClient
	logger        *zap.Logger
	maxGoroutines int
	now           func() time.Time
}

// NewExporter creates an exporter. Resources are fetched concurrently with
// at most maxGoroutines requests in flight; values below 1 use the default.
func NewExporter(client mailchimp.MailchimpClient, logger *zap.Logger, maxGoroutines int) *Exporter {
	if maxGoroutines < 1 {
		maxGoroutines = defaultMaxGoroutines
	}
	return &Exporter{
		client:        client,
		logger:        logger,
		maxGoroutines: maxGoroutines,
		now:           time.Now,
	}
}

// Snapshot fetches every resource concurrently. The first failure cancels
// the remaining requests and is returned.
func (e *Exporter) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: e.now().UTC()}

	p := pool.New().
		WithMaxGoroutines(e.maxGoroutines).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	p.Go(func(ctx context.Context) error {
		account, err := e.client.GetAccountInfo(ctx)
		if err != nil {
			return fmt.Errorf("account: %w", err)
		}
		snap.Account = account
		return nil
	})
	p.Go(func(ctx context.Context) error {
		resp, err := e.client.ListLists(ctx)
		if err != nil {
			return fmt.Errorf("lists: %w", err)
		}
		snap.Lists = resp.Lists
		e.logger.Debug("Fetched lists", zap.Int("count", len(resp.Lists)))
		return nil
	})
	p.Go(func(ctx context.Context) error {
		resp, err := e.client.ListCampaigns(ctx)
		if err != nil {
			return fmt.Errorf("campaigns: %w", err)
		}
		snap.Campaigns = resp.Campaigns
		e.logger.Debug("Fetched campaigns", zap.Int("count", len(resp.Campaigns)))
		return nil
	})
	p.Go(func(ctx context.Context) error {
		resp, err := e.client.ListAutomations(ctx)
		if err != nil {
			return fmt.Errorf("automations: %w", err)
		}
		snap.Automations = resp.Automations
		e.logger.Debug("Fetched automations", zap.Int("count", len(resp.Automations)))
		return nil
	})
	p.Go(func(ctx context.Context) error {
		resp, err := e.client.ListTemplates(ctx)
		if err != nil {
			return fmt.Errorf("templates: %w", err)
		}
		snap.Templates = resp.Templates
		e.logger.Debug("Fetched templates", zap.Int("count", len(resp.Templates)))
		return nil
	})
	p.Go(func(ctx context.Context) error {
		resp, err := e.client.ListCampaignReports(ctx)
		if err != nil {
			return fmt.Errorf("reports: %w", err)
		}
		snap.Reports = resp.Reports
		e.logger.Debug("Fetched campaign reports", zap.Int("count", len(resp.Reports)))
		return nil
	})
	p.Go(func(ctx context.Context) error {
		resp, err := e.client.ListStores(ctx)
		if err != nil {
			return fmt.Errorf("stores: %w", err)
		}
		snap.Stores = resp.Stores
		e.logger.Debug("Fetched stores", zap.Int("count", len(resp.Stores)))
		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// WriteFile writes snap to dir/<account_id>.json and returns the path
func WriteFile(dir string, snap *Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	fname := defaultFname
	if snap.Account != nil && snap.Account.AccountID != "" {
		fname = snap.Account.AccountID + ".json"
	}
	path := filepath.Join(dir, fname)

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
