// Package mailchimp provides a read-only client for the Mailchimp Marketing API (v3.0).
//
// The Marketing API exposes audiences (lists) and their members, segments,
// merge fields and interests; campaigns and their reports; classic
// automations; templates, campaign folders, the File Manager and landing
// pages; connected e-commerce stores with their products, orders, customers,
// carts and promotions; and inbox conversations.
//
// Every call is a single authenticated GET. Collection endpoints are fetched
// as one page of up to 1000 items with a fixed sort order; single resources
// are fetched without query parameters. Bodies that callers only forward are
// returned as json.RawMessage so nothing is lost in re-encoding.
package mailchimp

import (
	"github.com/natserract/mailchimp-mcp/pkg/config"
	httpclient "github.com/natserract/mailchimp-mcp/pkg/http"
	"go.uber.org/zap"
)

// Mailchimp is the main client for interacting with the Mailchimp Marketing API
type Mailchimp struct {
	config     *config.Config
	baseURL    string
	authHeader string
	httpClient *httpclient.Client
	logger     *zap.Logger
}

// NewMailchimpWithLogger creates a new Mailchimp client with a custom logger
func NewMailchimpWithLogger(cfg *config.Config, logger *zap.Logger) *Mailchimp {
	return &Mailchimp{
		config:     cfg,
		baseURL:    cfg.BaseURL(),
		authHeader: basicAuth(cfg.APIKey),
		httpClient: httpclient.NewClientWithOptions(logger, httpclient.Options{
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RateLimit:  cfg.RateLimit,
			RateBurst:  cfg.RateBurst,
		}),
		logger: logger,
	}
}

// BaseURL returns the API root requests are sent to.
func (m *Mailchimp) BaseURL() string {
	return m.baseURL
}
