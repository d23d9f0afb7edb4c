package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
	limiter    *rate.Limiter
	opts       Options
}

// Options tunes the transport. Zero values fall back to the defaults applied by
// NewClientWithOptions.
type Options struct {
	Timeout         time.Duration
	MaxRetries      int
	RateLimit       float64
	RateBurst       int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsed      time.Duration
}

type RequestOptions struct {
	Method  string
	URL     string
	Headers map[string]string
	Context context.Context
}

type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// StatusError is returned for any non-2xx response that is not retried, or
// that is still failing once retries are exhausted.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s - %s", e.StatusCode, e.Status, string(e.Body))
}

// NewClientWithOptions creates a new HTTP client with a custom logger and
// retry/rate-limit settings. A RateLimit of 0 disables client-side limiting.
func NewClientWithOptions(logger *zap.Logger, opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxElapsed == 0 {
		opts.MaxElapsed = 2 * time.Minute
	}
	if opts.InitialInterval == 0 {
		opts.InitialInterval = 100 * time.Millisecond
	}
	if opts.MaxInterval == 0 {
		opts.MaxInterval = 30 * time.Second
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		logger:  logger,
		limiter: limiter,
		opts:    opts,
	}
}

func (c *Client) Do(opts RequestOptions) (*Response, error) {
	// Create exponential backoff
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.opts.InitialInterval
	expBackoff.MaxInterval = c.opts.MaxInterval
	expBackoff.Reset()

	// Use context if provided
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	maxTries := uint(c.opts.MaxRetries + 1)
	attempt := uint(0)
	// throttled holds the 429 behind a pending Retry-After
	var throttled *StatusError

	operation := func() (*Response, error) {
		attempt++
		lastAttempt := attempt >= maxTries
		throttled = nil

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, backoff.Permanent(fmt.Errorf("rate limiter: %w", err))
			}
		}

		req, err := c.buildRequest(ctx, opts)
		if err != nil {
			c.logger.Error("Failed to build request", zap.Error(err), zap.String("method", opts.Method), zap.String("url", opts.URL))
			return nil, backoff.Permanent(err)
		}

		c.logger.Debug("Making HTTP request",
			zap.String("method", opts.Method),
			zap.String("url", opts.URL),
			zap.Uint("attempt", attempt))

		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			// Network errors are retryable
			c.logger.Warn("HTTP request failed, will retry",
				zap.Error(err),
				zap.String("method", opts.Method),
				zap.String("url", opts.URL))
			return nil, err
		}
		defer httpResp.Body.Close()

		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			c.logger.Error("Failed to read response body", zap.Error(err))
			return nil, backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		resp := &Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       body,
		}

		statusErr := &StatusError{
			StatusCode: httpResp.StatusCode,
			Status:     http.StatusText(httpResp.StatusCode),
			Body:       body,
		}

		// Mailchimp throttles with 429 and may say when to come back
		if httpResp.StatusCode == http.StatusTooManyRequests {
			c.logger.Warn("Rate limited by remote, will retry",
				zap.String("retry_after", httpResp.Header.Get("Retry-After")),
				zap.String("method", opts.Method),
				zap.String("url", opts.URL))
			if secs, err := strconv.Atoi(httpResp.Header.Get("Retry-After")); err == nil && secs > 0 && !lastAttempt {
				throttled = statusErr
				return nil, backoff.RetryAfter(secs)
			}
			return nil, statusErr
		}

		// Check if status code indicates retryable error
		if httpResp.StatusCode >= 500 {
			c.logger.Warn("Server error, will retry",
				zap.Int("status_code", httpResp.StatusCode),
				zap.String("method", opts.Method),
				zap.String("url", opts.URL))
			return nil, statusErr
		}

		// Remaining non-2xx statuses are not retryable
		if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
			c.logger.Error("Client error, not retryable",
				zap.Int("status_code", httpResp.StatusCode),
				zap.String("method", opts.Method),
				zap.String("url", opts.URL),
				zap.String("response", string(body)))
			return nil, backoff.Permanent(statusErr)
		}

		c.logger.Debug("HTTP request successful",
			zap.Int("status_code", httpResp.StatusCode),
			zap.String("method", opts.Method),
			zap.String("url", opts.URL))

		return resp, nil
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxElapsedTime(c.opts.MaxElapsed),
		backoff.WithMaxTries(maxTries),
	}

	resp, err := backoff.Retry(ctx, operation, retryOpts...)
	var retryAfter *backoff.RetryAfterError
	if errors.As(err, &retryAfter) && throttled != nil {
		// Retry-After ran past the elapsed budget
		err = throttled
	}
	if err != nil {
		c.logger.Error("HTTP request failed after retries",
			zap.Error(err),
			zap.String("method", opts.Method),
			zap.String("url", opts.URL),
			zap.Uint("attempts", attempt))
		return nil, err
	}

	c.logger.Info("HTTP request completed successfully",
		zap.Int("status_code", resp.StatusCode),
		zap.String("method", opts.Method),
		zap.String("url", opts.URL))

	return resp, nil
}

func (c *Client) buildRequest(ctx context.Context, opts RequestOptions) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set default headers
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	// Set custom headers
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.Do(RequestOptions{
		Method:  http.MethodGet,
		URL:     url,
		Headers: headers,
		Context: ctx,
	})
}
