package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/natserract/mailchimp-mcp/pkg/mailchimp"
	"go.uber.org/zap"
)

// UnknownToolError is returned by Call for names missing from the catalog
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// Result is the payload of a successful tools/call.
type Result struct {
	Content []Content `json:"content"`
}

// Content holds a single piece of tool output
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textResult(text string) *Result {
	return &Result{Content: []Content{{Type: "text", Text: text}}}
}

// handler calls the client for one tool and returns the value to serialize.
type handler func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error)

type entry struct {
	descriptor Descriptor
	handle     handler
}

// Registry maps tool names to their descriptors and handlers
type Registry struct {
	client  mailchimp.MailchimpClient
	logger  *zap.Logger
	order   []string
	entries map[string]entry
}

// NewRegistry builds a registry from the embedded catalog. Every catalog
// entry must have a handler and every handler a catalog entry.
func NewRegistry(client mailchimp.MailchimpClient, logger *zap.Logger) (*Registry, error) {
	descriptors, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return newRegistry(client, logger, descriptors, handlers())
}

func newRegistry(client mailchimp.MailchimpClient, logger *zap.Logger, descriptors []Descriptor, hs map[string]handler) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Registry{
		client:  client,
		logger:  logger,
		order:   make([]string, 0, len(descriptors)),
		entries: make(map[string]entry, len(descriptors)),
	}
	for _, d := range descriptors {
		h, ok := hs[d.Name]
		if !ok {
			return nil, fmt.Errorf("tool %q has no handler", d.Name)
		}
		r.order = append(r.order, d.Name)
		r.entries[d.Name] = entry{descriptor: d, handle: h}
	}

	var orphans []string
	for name := range hs {
		if _, ok := r.entries[name]; !ok {
			orphans = append(orphans, name)
		}
	}
	if len(orphans) > 0 {
		return nil, fmt.Errorf("handlers missing from catalog: %s", strings.Join(orphans, ", "))
	}
	return r, nil
}

// Definitions returns the catalog in declaration order
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.entries[name].descriptor.Definition())
	}
	return defs
}

// Call validates args, invokes the named tool and renders its payload as
// indented JSON text.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (*Result, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	parsed, err := parseArgs(e.descriptor, args)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Calling tool", zap.String("tool", name))
	payload, err := e.handle(ctx, r.client, parsed)
	if err != nil {
		return nil, err
	}

	text, err := render(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s result: %w", name, err)
	}
	return textResult(text), nil
}

// render encodes v with two-space indentation and without HTML escaping so
// remote bodies keep <, > and & unescaped.
func render(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
