package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/natserract/mailchimp-mcp/pkg/audit"
	"github.com/natserract/mailchimp-mcp/pkg/tools"
	"go.uber.org/zap"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "mailchimp-mcp-server"
	serverVersion   = "1.0.0"

	// maxMessageSize bounds a single JSON-RPC message on either transport
	maxMessageSize = 1024 * 1024
)

// ToolProvider lists and invokes tools. *tools.Registry implements it.
type ToolProvider interface {
	Definitions() []tools.Definition
	Call(ctx context.Context, name string, args json.RawMessage) (*tools.Result, error)
}

// Server is an MCP server that exposes the tool catalog over JSON-RPC 2.0.
type Server struct {
	tools    ToolProvider
	logger   *zap.Logger
	recorder audit.Recorder
	metrics  *Metrics
	stdin    io.Reader
	stdout   io.Writer
	health   func(context.Context) error
	now      func() time.Time
}

// Option configures a Server
type Option func(*Server)

// WithRecorder sets the audit recorder. Write failures are logged, never returned.
func WithRecorder(r audit.Recorder) Option {
	return func(s *Server) {
		s.recorder = r
	}
}

// WithMetrics enables tool call metrics
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithHealthCheck makes GET /healthz report 503 while check fails
func WithHealthCheck(check func(context.Context) error) Option {
	return func(s *Server) {
		s.health = check
	}
}

// WithIO replaces stdin and stdout for the stdio transport
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Server) {
		s.stdin = in
		s.stdout = out
	}
}

// NewServer creates a server for the given tools
func NewServer(provider ToolProvider, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		tools:  provider,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recorder = audit.NewLoggingRecorder(s.recorder, logger)
	return s
}

// Serve reads JSON-RPC messages from stdin line-by-line and writes responses
// to stdout. It blocks until stdin is closed or ctx is done. A line longer
// than maxMessageSize is answered with an invalid request error and skipped.
func (s *Server) Serve(ctx context.Context) error {
	reader := bufio.NewReaderSize(s.stdin, 64*1024)

	lines := make(chan inputLine)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for {
			line, err := readLine(reader, maxMessageSize)
			if line.size > 0 {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
		}
	}()

	s.logger.Info("Mailchimp MCP server running on stdio")
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return fmt.Errorf("reading stdin: %w", err)
				default:
					return nil
				}
			}
			if line.data == nil {
				s.logger.Warn("Dropping oversized message",
					zap.Int("size", line.size),
					zap.Int("limit", maxMessageSize))
				s.writeResponse(newErrorResponse(nil, ErrCodeInvalidReq,
					fmt.Sprintf("message of %d bytes exceeds the %d byte limit", line.size, maxMessageSize)))
				continue
			}
			if len(bytes.TrimSpace(line.data)) == 0 {
				continue
			}
			if resp, reply := s.Handle(ctx, line.data); reply {
				s.writeResponse(resp)
			}
		}
	}
}

// inputLine is one newline-delimited message. data is nil when the line was
// longer than the limit and only its size was kept.
type inputLine struct {
	data []byte
	size int
}

// readLine reads up to the next newline. Content beyond limit is discarded
// and only counted.
func readLine(r *bufio.Reader, limit int) (inputLine, error) {
	var (
		line    inputLine
		buf     []byte
		tooLong bool
	)
	for {
		chunk, err := r.ReadSlice('\n')
		line.size += len(chunk)
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > limit && len(bytes.TrimRight(buf, "\r\n")) > limit {
				tooLong = true
				buf = nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if !tooLong {
			line.data = bytes.TrimRight(buf, "\r\n")
			if line.data == nil {
				line.data = []byte{}
			}
		}
		return line, err
	}
}

// Handle decodes one JSON-RPC message and dispatches it. The bool is false
// when the message is a notification and no response must be sent.
func (s *Server) Handle(ctx context.Context, data []byte) (Response, bool) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return newErrorResponse(nil, ErrCodeParse, "parse error: "+err.Error()), true
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		if req.IsNotification() {
			return Response{}, false
		}
		return newErrorResponse(req.ID, ErrCodeInvalidReq, "invalid request"), true
	}
	return s.dispatch(ctx, &req)
}

// dispatch routes a JSON-RPC request to the appropriate handler.
func (s *Server) dispatch(ctx context.Context, req *Request) (Response, bool) {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req), true

	case "notifications/initialized":
		return Response{}, false

	case "ping":
		return newResponse(req.ID, map[string]any{}), true

	case "tools/list":
		return s.handleToolsList(req), true

	case "tools/call":
		return s.handleToolsCall(ctx, req), true

	default:
		if req.IsNotification() {
			return Response{}, false
		}
		return newErrorResponse(req.ID, ErrCodeNoMethod, "method not found: "+req.Method), true
	}
}

func (s *Server) handleInitialize(req *Request) Response {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
	}
	return newResponse(req.ID, result)
}

func (s *Server) handleToolsList(req *Request) Response {
	return newResponse(req.ID, map[string]any{
		"tools": s.tools.Definitions(),
	})
}

// toolsCallParams holds the parameters for a tools/call request.
type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) Response {
	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return newErrorResponse(req.ID, ErrCodeInvalidParams, "invalid params: "+err.Error())
	}
	if params.Name == "" {
		return newErrorResponse(req.ID, ErrCodeInvalidParams, "invalid params: missing tool name")
	}

	entry := audit.NewEntry(params.Name, params.Arguments, s.now())
	result, err := s.tools.Call(ctx, params.Name, params.Arguments)
	outcome, code := classify(err)
	entry.Finish(outcome, err, s.now())

	label := params.Name
	if outcome == audit.OutcomeUnknownTool {
		label = "unknown"
	}
	s.metrics.Observe(label, string(outcome), entry.Duration)
	s.recorder.Record(context.WithoutCancel(ctx), entry)

	if err != nil {
		s.logger.Error("Mailchimp Error",
			zap.String("invocation_id", entry.ID.String()),
			zap.String("tool", params.Name),
			zap.Duration("duration", entry.Duration),
			zap.Error(err))
		return newErrorResponse(req.ID, code, err.Error())
	}

	s.logger.Debug("Tool call completed",
		zap.String("invocation_id", entry.ID.String()),
		zap.String("tool", params.Name),
		zap.Duration("duration", entry.Duration))
	return newResponse(req.ID, result)
}

// classify maps a tool call error to its audit outcome and JSON-RPC code
func classify(err error) (audit.Outcome, int) {
	if err == nil {
		return audit.OutcomeSuccess, 0
	}

	var argErr *tools.ArgumentError
	if errors.As(err, &argErr) {
		return audit.OutcomeInvalidArgument, ErrCodeInvalidParams
	}
	var unknown *tools.UnknownToolError
	if errors.As(err, &unknown) {
		return audit.OutcomeUnknownTool, ErrCodeInternal
	}
	return audit.OutcomeError, ErrCodeInternal
}

// writeResponse marshals a Response to JSON and writes it as a single line to stdout.
func (s *Server) writeResponse(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("Failed to marshal response", zap.Error(err))
		fmt.Fprintf(s.stdout, `{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"internal marshal error"}}`+"\n")
		return
	}
	fmt.Fprintf(s.stdout, "%s\n", data)
}
