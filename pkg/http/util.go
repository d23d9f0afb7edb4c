package http

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildURL appends path to the base URL's own path (so a base of
// https://us1.api.mailchimp.com/3.0 keeps its /3.0 prefix) and encodes the
// query parameters in key order. Path must already be escaped.
func BuildURL(baseURL, path string, queryParams map[string]string) (string, error) {
	// Parse the base URL
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	// Append the path
	joined := strings.TrimRight(parsedURL.EscapedPath(), "/") + "/" + strings.TrimLeft(path, "/")
	ref, err := url.Parse(joined)
	if err != nil {
		return "", fmt.Errorf("error parsing path %q: %w", path, err)
	}
	parsedURL.Path = ref.Path
	parsedURL.RawPath = ref.RawPath

	// Set query parameters dynamically
	q := url.Values{}
	for key, value := range queryParams {
		q.Set(key, value)
	}
	parsedURL.RawQuery = q.Encode()

	// Return the full URL as a string
	return parsedURL.String(), nil
}
