package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/natserract/mailchimp-mcp/pkg/audit"
	"github.com/natserract/mailchimp-mcp/pkg/mailchimp"
	"github.com/natserract/mailchimp-mcp/pkg/tools"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"
)

type fakeTools struct {
	results map[string]*tools.Result
	errs    map[string]error
}

func (f *fakeTools) Definitions() []tools.Definition {
	return []tools.Definition{{
		Name:        "list_lists",
		Description: "List all lists in your Mailchimp account (for automation recipients)",
		InputSchema: tools.InputSchema{Type: "object", Properties: map[string]tools.SchemaProperty{}, Required: []string{}},
	}}
}

func (f *fakeTools) Call(_ context.Context, name string, _ json.RawMessage) (*tools.Result, error) {
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	if res, ok := f.results[name]; ok {
		return res, nil
	}
	return nil, &tools.UnknownToolError{Name: name}
}

type memoryRecorder struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (m *memoryRecorder) Record(_ context.Context, e audit.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func newFakeTools() *fakeTools {
	return &fakeTools{
		results: map[string]*tools.Result{
			"list_lists": {Content: []tools.Content{{Type: "text", Text: "[]"}}},
		},
		errs: map[string]error{
			"get_list":     &tools.ArgumentError{Tool: "get_list", Arg: "list_id", Reason: "is required"},
			"get_campaign": &mailchimp.APIError{StatusCode: 404, Status: "Not Found", Body: "{}"},
		},
	}
}

func decodeLines(t *testing.T, out string) []Response {
	t.Helper()
	var resps []Response
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var r struct {
			ID     json.RawMessage `json:"id"`
			Result json.RawMessage `json:"result"`
			Error  *RPCError       `json:"error"`
		}
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Fatalf("invalid response line %q: %v", line, err)
		}
		resps = append(resps, Response{ID: r.ID, Result: r.Result, Error: r.Error})
	}
	return resps
}

func TestServeStdio(t *testing.T) {
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/list"}`,
		`{not json`,
		`{"jsonrpc":"2.0","method":"notifications/cancelled"}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	s := NewServer(newFakeTools(), zaptest.NewLogger(t), WithIO(strings.NewReader(in), &out))
	if err := s.Serve(context.Background()); err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}

	resps := decodeLines(t, out.String())
	if len(resps) != 4 {
		t.Fatalf("expected 4 responses, got %d: %s", len(resps), out.String())
	}

	var init struct {
		ProtocolVersion string `json:"protocolVersion"`
		ServerInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
	}
	json.Unmarshal(resps[0].Result.(json.RawMessage), &init)
	if init.ProtocolVersion != "2024-11-05" || init.ServerInfo.Name != "mailchimp-mcp-server" || init.ServerInfo.Version != "1.0.0" {
		t.Fatalf("unexpected initialize result %+v", init)
	}

	if !strings.Contains(string(resps[1].Result.(json.RawMessage)), `"list_lists"`) {
		t.Fatalf("tools/list should include list_lists, got %s", resps[1].Result)
	}
	if resps[2].Error == nil || resps[2].Error.Code != ErrCodeNoMethod || string(resps[2].ID) != "3" {
		t.Fatalf("expected method not found for id 3, got %+v", resps[2])
	}
	if resps[3].Error == nil || resps[3].Error.Code != ErrCodeParse || string(resps[3].ID) != "null" {
		t.Fatalf("expected parse error with null id, got %+v", resps[3])
	}
}

func TestServeSkipsOversizedLine(t *testing.T) {
	in := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"list_lists","arguments":{"pad":"` +
		strings.Repeat("x", maxMessageSize) + `"}}}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"ping"}` + "\n"

	var out bytes.Buffer
	s := NewServer(newFakeTools(), zaptest.NewLogger(t), WithIO(strings.NewReader(in), &out))
	if err := s.Serve(context.Background()); err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}

	resps := decodeLines(t, out.String())
	if len(resps) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(resps))
	}
	if resps[0].Error == nil || resps[0].Error.Code != ErrCodeInvalidReq || string(resps[0].ID) != "null" {
		t.Fatalf("expected invalid request for oversized line, got %+v", resps[0])
	}
	if resps[1].Error != nil || string(resps[1].ID) != "2" {
		t.Fatalf("server should keep serving after an oversized line, got %+v", resps[1])
	}
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReaderSize(strings.NewReader("abc\r\n"+strings.Repeat("y", 40)+"\nlast"), 16)
	tests := []struct {
		data string
		dropped bool
		size int
	}{
		{data: "abc", size: 5},
		{dropped: true, size: 41},
		{data: "last", size: 4},
	}
	for i, tt := range tests {
		line, _ := readLine(r, 32)
		if line.size != tt.size || (line.data == nil) != tt.dropped || (!tt.dropped && string(line.data) != tt.data) {
			t.Errorf("line %d: got data=%q size=%d", i, line.data, line.size)
		}
	}
}

func TestToolsCallErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		tool    string
		code    int
		message string
	}{
		{name: "argument error", tool: "get_list", code: ErrCodeInvalidParams, message: `invalid argument "list_id" for get_list: is required`},
		{name: "unknown tool", tool: "drop_lists", code: ErrCodeInternal, message: "Unknown tool: drop_lists"},
		{name: "api error", tool: "get_campaign", code: ErrCodeInternal, message: "Mailchimp API Error: 404 Not Found - {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(newFakeTools(), zaptest.NewLogger(t))
			msg := `{"jsonrpc":"2.0","id":"req-1","method":"tools/call","params":{"name":"` + tt.tool + `","arguments":{}}}`
			resp, reply := s.Handle(context.Background(), []byte(msg))
			if !reply {
				t.Fatal("expected a reply")
			}
			if resp.Error == nil || resp.Error.Code != tt.code || resp.Error.Message != tt.message {
				t.Fatalf("unexpected error %+v", resp.Error)
			}
			if string(resp.ID) != `"req-1"` {
				t.Fatalf("id not echoed, got %s", resp.ID)
			}
		})
	}
}

func TestToolsCallInvalidParams(t *testing.T) {
	s := NewServer(newFakeTools(), zaptest.NewLogger(t))
	for _, msg := range []string{
		`{"jsonrpc":"2.0","id":1,"method":"tools/call"}`,
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"arguments":{}}}`,
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":[1,2]}`,
	} {
		resp, _ := s.Handle(context.Background(), []byte(msg))
		if resp.Error == nil || resp.Error.Code != ErrCodeInvalidParams {
			t.Errorf("%s: expected invalid params, got %+v", msg, resp.Error)
		}
	}
}

func TestInvalidRequest(t *testing.T) {
	s := NewServer(newFakeTools(), zaptest.NewLogger(t))
	resp, reply := s.Handle(context.Background(), []byte(`{"jsonrpc":"1.0","id":9,"method":"tools/list"}`))
	if !reply || resp.Error == nil || resp.Error.Code != ErrCodeInvalidReq {
		t.Fatalf("expected invalid request, got %+v", resp)
	}
}

func TestToolsCallRecordsAuditAndMetrics(t *testing.T) {
	rec := &memoryRecorder{}
	metrics := NewMetrics()
	s := NewServer(newFakeTools(), zaptest.NewLogger(t), WithRecorder(rec), WithMetrics(metrics))

	calls := []string{"list_lists", "get_campaign", "drop_lists"}
	for _, name := range calls {
		s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"`+name+`","arguments":{"list_id":"L1"}}}`))
	}

	if len(rec.entries) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(rec.entries))
	}
	want := []audit.Outcome{audit.OutcomeSuccess, audit.OutcomeError, audit.OutcomeUnknownTool}
	for i, e := range rec.entries {
		if e.Tool != calls[i] || e.Outcome != want[i] {
			t.Errorf("entry %d: tool=%s outcome=%s", i, e.Tool, e.Outcome)
		}
	}
	if string(rec.entries[0].Arguments) != `{"list_id":"L1"}` {
		t.Errorf("arguments not recorded, got %s", rec.entries[0].Arguments)
	}
	if rec.entries[1].Error == "" {
		t.Error("failed call should carry its error text")
	}

	if got := testutil.ToFloat64(metrics.calls.WithLabelValues("list_lists", "success")); got != 1 {
		t.Errorf("expected 1 successful list_lists call, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.calls.WithLabelValues("unknown", "unknown_tool")); got != 1 {
		t.Errorf("unknown tools should share one label, got %v", got)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	s := NewServer(newFakeTools(), zaptest.NewLogger(t), WithIO(pr, io.Discard))

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestHTTPTransport(t *testing.T) {
	metrics := NewMetrics()
	s := NewServer(newFakeTools(), zaptest.NewLogger(t), WithMetrics(metrics))
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	post := func(body string) *http.Response {
		resp, err := http.Post(srv.URL+"/mcp", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		return resp
	}

	resp := post(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"list_lists","arguments":{}}}`)
	var rpc struct {
		Result tools.Result `json:"result"`
	}
	json.NewDecoder(resp.Body).Decode(&rpc)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || len(rpc.Result.Content) != 1 || rpc.Result.Content[0].Text != "[]" {
		t.Fatalf("unexpected tools/call response: %d %+v", resp.StatusCode, rpc)
	}

	resp = post(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("notifications should get 202, got %d", resp.StatusCode)
	}

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz failed: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `mailchimp_mcp_tool_calls_total{outcome="success",tool="list_lists"} 1`) {
		t.Fatalf("metrics output missing tool call counter:\n%s", body)
	}

	resp, err = http.Get(srv.URL + "/mcp")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET /mcp should be rejected, got %d", resp.StatusCode)
	}
}

func TestHealthCheck(t *testing.T) {
	var down error
	s := NewServer(newFakeTools(), zaptest.NewLogger(t), WithHealthCheck(func(ctx context.Context) error { return down }))
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	for _, tt := range []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{errors.New("connection refused"), http.StatusServiceUnavailable},
	} {
		down = tt.err
		resp, err := http.Get(srv.URL + "/healthz")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("healthz with check error %v: got %d, want %d", tt.err, resp.StatusCode, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &tools.ArgumentError{Tool: "x", Arg: "y", Reason: "z"})
	if outcome, code := classify(wrapped); outcome != audit.OutcomeInvalidArgument || code != ErrCodeInvalidParams {
		t.Fatalf("wrapped argument errors should map to invalid params, got %s %d", outcome, code)
	}
	if outcome, _ := classify(nil); outcome != audit.OutcomeSuccess {
		t.Fatalf("nil error should be success, got %s", outcome)
	}
}
