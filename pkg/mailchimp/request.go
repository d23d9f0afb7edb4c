package mailchimp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	httpclient "github.com/natserract/mailchimp-mcp/pkg/http"
	"go.uber.org/zap"
)

// PageSize is the number of items requested from every collection endpoint.
// It is the Marketing API's maximum page size; no further pages are fetched.
const PageSize = 1000

// Sort directions accepted by the Marketing API.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// APIError is returned when Mailchimp answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Mailchimp API Error: %d %s - %s", e.StatusCode, e.Status, e.Body)
}

// path joins escaped segments into an endpoint path, e.g.
// path("lists", id, "members") -> "/lists/<id>/members".
func path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// itoa renders a numeric identifier as a path segment.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// get fetches endpoint and returns the raw body. A non-2xx status yields *APIError.
func (m *Mailchimp) get(ctx context.Context, endpoint string, query map[string]string) ([]byte, error) {
	fullURL, err := httpclient.BuildURL(m.baseURL, endpoint, query)
	if err != nil {
		m.logger.Error("Failed to build URL", zap.Error(err), zap.String("endpoint", endpoint))
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	m.logger.Debug("Making GET request", zap.String("endpoint", fullURL))
	resp, err := m.httpClient.Get(ctx, fullURL, m.headers())
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			return nil, &APIError{
				StatusCode: statusErr.StatusCode,
				Status:     statusErr.Status,
				Body:       string(statusErr.Body),
			}
		}
		m.logger.Error("GET request failed", zap.Error(err), zap.String("endpoint", endpoint))
		return nil, fmt.Errorf("get %s request failed: %w", endpoint, err)
	}

	return resp.Body, nil
}

// getRaw fetches a single resource and returns its body untouched.
func (m *Mailchimp) getRaw(ctx context.Context, resource, endpoint string) (json.RawMessage, error) {
	m.logger.Info("Getting "+resource, zap.String("endpoint", endpoint))
	body, err := m.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("failed to parse %s response: invalid JSON", resource)
	}
	return json.RawMessage(body), nil
}

// listRaw fetches one page of a collection and returns its body untouched.
func (m *Mailchimp) listRaw(ctx context.Context, resource, endpoint, sortField, sortDir string) (json.RawMessage, error) {
	m.logger.Info("Listing "+resource,
		zap.String("endpoint", endpoint),
		zap.String("sort_field", sortField),
		zap.String("sort_dir", sortDir))
	body, err := m.get(ctx, endpoint, listQuery(sortField, sortDir))
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("failed to parse %s response: invalid JSON", resource)
	}
	return json.RawMessage(body), nil
}

// list fetches one page of a collection and decodes it into dest.
func (m *Mailchimp) list(ctx context.Context, resource, endpoint, sortField, sortDir string, dest any) error {
	body, err := m.listRaw(ctx, resource, endpoint, sortField, sortDir)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		m.logger.Error("Failed to parse response", zap.String("resource", resource), zap.Error(err))
		return fmt.Errorf("failed to parse %s response: %w", resource, err)
	}
	return nil
}

// getInto fetches a single resource and decodes it into dest.
func (m *Mailchimp) getInto(ctx context.Context, resource, endpoint string, dest any) error {
	body, err := m.getRaw(ctx, resource, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		m.logger.Error("Failed to parse response", zap.String("resource", resource), zap.Error(err))
		return fmt.Errorf("failed to parse %s response: %w", resource, err)
	}
	return nil
}

func listQuery(sortField, sortDir string) map[string]string {
	return map[string]string{
		"count":      strconv.Itoa(PageSize),
		"sort_field": sortField,
		"sort_dir":   sortDir,
	}
}
