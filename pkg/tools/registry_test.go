package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/natserract/mailchimp-mcp/pkg/config"
	"github.com/natserract/mailchimp-mcp/pkg/mailchimp"
	"go.uber.org/zap/zaptest"
)

func newTestRegistry(t *testing.T, handler http.HandlerFunc) (*Registry, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{APIKey: "abc123-us9", BaseURLOverride: srv.URL + "/3.0"}
	logger := zaptest.NewLogger(t)
	r, err := NewRegistry(mailchimp.NewMailchimpWithLogger(cfg, logger), logger)
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	return r, &gotPath
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func callText(t *testing.T, r *Registry, name, args string) string {
	t.Helper()
	res, err := r.Call(context.Background(), name, json.RawMessage(args))
	if err != nil {
		t.Fatalf("%s failed: %v", name, err)
	}
	if len(res.Content) != 1 || res.Content[0].Type != "text" {
		t.Fatalf("expected a single text item, got %+v", res.Content)
	}
	return res.Content[0].Text
}

func TestCatalogMatchesHandlers(t *testing.T) {
	r, err := NewRegistry(nil, nil)
	if err != nil {
		t.Fatalf("catalog and handlers disagree: %v", err)
	}

	defs := r.Definitions()
	if len(defs) != 79 {
		t.Fatalf("expected 79 tools, got %d", len(defs))
	}
	if defs[0].Name != "list_automations" {
		t.Fatalf("catalog order not preserved, first tool is %s", defs[0].Name)
	}
	if defs[0].Description != "List all automations in your Mailchimp account" {
		t.Fatalf("unexpected description %q", defs[0].Description)
	}

	for _, d := range defs {
		if d.InputSchema.Type != "object" {
			t.Errorf("%s: schema type %q", d.Name, d.InputSchema.Type)
		}
		if d.InputSchema.Required == nil {
			t.Errorf("%s: required must be an empty list, not null", d.Name)
		}
		if len(d.InputSchema.Required) != len(d.InputSchema.Properties) {
			t.Errorf("%s: every property should be required", d.Name)
		}
	}
}

func TestDefinitionSchema(t *testing.T) {
	r, err := NewRegistry(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	var seg Definition
	for _, d := range r.Definitions() {
		if d.Name == "get_segment" {
			seg = d
		}
	}

	raw, err := json.Marshal(seg.InputSchema)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"object","properties":{"list_id":{"type":"string","description":"The list ID"},"segment_id":{"type":"number","description":"The segment ID"}},"required":["list_id","segment_id"]}`
	if string(raw) != want {
		t.Fatalf("schema = %s\nwant     %s", raw, want)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate",
			yaml: "- name: a\n  params: []\n- name: a\n  params: []\n",
			want: "duplicate tool",
		},
		{
			name: "bad param type",
			yaml: "- name: a\n  params:\n    - name: x\n      type: boolean\n",
			want: "unsupported type",
		},
		{
			name: "missing name",
			yaml: "- description: nameless\n",
			want: "without a name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCatalog([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRegistryRejectsOrphans(t *testing.T) {
	descriptors := []Descriptor{{Name: "list_lists"}}
	hs := map[string]handler{
		"list_lists": handlers()["list_lists"],
		"extra":      handlers()["get_list"],
	}
	if _, err := newRegistry(nil, nil, descriptors, hs); err == nil || !strings.Contains(err.Error(), "extra") {
		t.Fatalf("expected orphan handler error, got %v", err)
	}
	if _, err := newRegistry(nil, nil, []Descriptor{{Name: "nope"}}, hs); err == nil {
		t.Fatal("expected missing handler error")
	}
}

func TestCallUnknownTool(t *testing.T) {
	r, _ := newTestRegistry(t, respond(`{}`))
	_, err := r.Call(context.Background(), "delete_everything", nil)
	var unknown *UnknownToolError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownToolError, got %v", err)
	}
	if err.Error() != "Unknown tool: delete_everything" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestCallArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args string
		arg  string
	}{
		{name: "missing", tool: "get_list", args: `{}`, arg: "list_id"},
		{name: "no arguments", tool: "get_list", args: ``, arg: "list_id"},
		{name: "null value", tool: "get_list", args: `{"list_id":null}`, arg: "list_id"},
		{name: "empty string", tool: "get_list", args: `{"list_id":"  "}`, arg: "list_id"},
		{name: "wrong type", tool: "get_list", args: `{"list_id":true}`, arg: "list_id"},
		{name: "second param missing", tool: "get_member", args: `{"list_id":"L1"}`, arg: "subscriber_hash"},
		{name: "fractional number", tool: "get_template", args: `{"template_id":1.5}`, arg: "template_id"},
		{name: "non-numeric string", tool: "get_template", args: `{"template_id":"abc"}`, arg: "template_id"},
		{name: "not an object", tool: "get_list", args: `["L1"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
				t.Errorf("no request expected, got %s", r.URL.Path)
			})
			_, err := r.Call(context.Background(), tt.tool, json.RawMessage(tt.args))
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected ArgumentError, got %v", err)
			}
			if argErr.Tool != tt.tool || argErr.Arg != tt.arg {
				t.Fatalf("unexpected error fields %+v", argErr)
			}
		})
	}
}

func TestNumericArguments(t *testing.T) {
	for _, args := range []string{
		`{"list_id":"L1","segment_id":42}`,
		`{"list_id":"L1","segment_id":"42"}`,
		`{"list_id":"L1","segment_id":42.0}`,
	} {
		r, path := newTestRegistry(t, respond(`{"id":42}`))
		callText(t, r, "get_segment", args)
		if *path != "/3.0/lists/L1/segments/42" {
			t.Errorf("%s: path = %q", args, *path)
		}
	}
}

func TestListAutomationsProjection(t *testing.T) {
	r, path := newTestRegistry(t, respond(`{"automations":[{"id":"a1","name":"Welcome","status":"sending","type":"regular","create_time":"2024-01-01T00:00:00+00:00","emails_sent":3,"settings":{"title":"Welcome"}}],"total_items":1}`))

	got := callText(t, r, "list_automations", `{}`)
	want := `[
  {
    "id": "a1",
    "name": "Welcome",
    "status": "sending",
    "type": "regular",
    "create_time": "2024-01-01T00:00:00+00:00"
  }
]`
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
	if *path != "/3.0/automations" {
		t.Fatalf("unexpected path %q", *path)
	}
}

func TestEmptyListProjection(t *testing.T) {
	r, _ := newTestRegistry(t, respond(`{"campaigns":[],"total_items":0}`))
	if got := callText(t, r, "list_campaigns", `{}`); got != "[]" {
		t.Fatalf("expected [], got %q", got)
	}
}

func TestProjections(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args string
		body string
		want string
	}{
		{
			tool: "list_automation_emails",
			args: `{"workflow_id":"w1"}`,
			body: `{"emails":[{"id":"e1","position":1,"status":"sending","emails_sent":9,"settings":{"subject_line":"Hi"}}]}`,
			want: `[{"id":"e1","position":1,"status":"sending","subject_line":"Hi","emails_sent":9}]`,
		},
		{
			tool: "list_automation_subscribers",
			args: `{"workflow_id":"w1","email_id":"e1"}`,
			body: `{"subscribers":[{"email_address":"a@example.com","status":"subscribed","merge_fields":{"FNAME":"Ann"}}]}`,
			want: `[{"email_address":"a@example.com","status":"subscribed","merge_fields":{"FNAME":"Ann"}}]`,
		},
		{
			name: "list_automation_subscribers empty status",
			tool: "list_automation_subscribers",
			args: `{"workflow_id":"w1","email_id":"e1"}`,
			body: `{"queue":[{"email_address":"a@example.com","status":""},{"email_address":"b@example.com"}]}`,
			want: `[{"email_address":"a@example.com","status":""},{"email_address":"b@example.com"}]`,
		},
		{
			tool: "list_lists",
			body: `{"lists":[{"id":"L1","name":"News","date_created":"2024-01-01","stats":{"member_count":5}}]}`,
			want: `[{"id":"L1","name":"News","member_count":5,"date_created":"2024-01-01"}]`,
		},
		{
			tool: "list_campaigns",
			body: `{"campaigns":[{"id":"c1","type":"regular","status":"sent","create_time":"t1","send_time":"t2"},{"id":"c2","type":"regular","status":"save","create_time":"t3"}]}`,
			want: `[{"id":"c1","type":"regular","status":"sent","create_time":"t1","send_time":"t2"},{"id":"c2","type":"regular","status":"save","create_time":"t3"}]`,
		},
		{
			name: "list_campaigns unsent",
			tool: "list_campaigns",
			body: `{"campaigns":[{"id":"c1","type":"regular","status":"save","create_time":"t1","send_time":""}]}`,
			want: `[{"id":"c1","type":"regular","status":"save","create_time":"t1","send_time":""}]`,
		},
		{
			tool: "list_members",
			args: `{"list_id":"L1"}`,
			body: `{"members":[{"id":"m1","email_address":"a@example.com","unique_email_id":"u","status":"subscribed","member_rating":4,"last_changed":"t","vip":true}]}`,
			want: `[{"id":"m1","email_address":"a@example.com","status":"subscribed","member_rating":4,"last_changed":"t"}]`,
		},
		{
			tool: "list_segments",
			args: `{"list_id":"L1"}`,
			body: `{"segments":[{"id":12,"name":"VIP","member_count":3,"type":"static","created_at":"t","updated_at":"u"}]}`,
			want: `[{"id":12,"name":"VIP","member_count":3,"type":"static","created_at":"t"}]`,
		},
		{
			tool: "list_merge_fields",
			args: `{"list_id":"L1"}`,
			body: `{"merge_fields":[{"merge_id":3,"tag":"FNAME","name":"First Name","type":"text","required":false,"public":true,"display_order":2}]}`,
			want: `[{"id":3,"name":"First Name","type":"text","required":false,"public":true,"display_order":2}]`,
		},
		{
			tool: "list_templates",
			body: `{"templates":[{"id":5,"type":"user","name":"Promo","drag_and_drop":true,"responsive":true,"category":"x","date_created":"t","active":true}]}`,
			want: `[{"id":5,"name":"Promo","type":"user","drag_and_drop":true,"responsive":true,"active":true,"date_created":"t"}]`,
		},
		{
			tool: "list_campaign_reports",
			body: `{"reports":[{"id":"c1","campaign_title":"Spring","type":"regular","list_id":"L1","emails_sent":100,"send_time":"t","opens":{"opens_total":40},"clicks":{"clicks_total":7}}]}`,
			want: `[{"id":"c1","campaign_title":"Spring","type":"regular","emails_sent":100,"send_time":"t","opens":{"opens_total":40},"clicks":{"clicks_total":7}}]`,
		},
		{
			tool: "list_folders",
			body: `{"folders":[{"id":"f1","name":"Archive","count":4}]}`,
			want: `[{"id":"f1","name":"Archive","count":4}]`,
		},
		{
			tool: "list_files",
			body: `{"files":[{"id":101,"name":"logo.png","size":2048,"created_at":"t"}]}`,
			want: `[{"id":101,"name":"logo.png","size":2048,"created_at":"t"}]`,
		},
		{
			tool: "list_landing_pages",
			body: `{"landing_pages":[{"id":"p1","name":"Signup","title":"Join","type":"signup","status":"published","created_at":"t"}]}`,
			want: `[{"id":"p1","name":"Signup","type":"signup","created_at":"t"}]`,
		},
		{
			tool: "list_stores",
			body: `{"stores":[{"id":"s1","name":"Shop","created_at":"t"},{"id":"s2","name":"Other","domain":"x.com","created_at":"t"}]}`,
			want: `[{"id":"s1","name":"Shop","created_at":"t"},{"id":"s2","name":"Other","domain":"x.com","created_at":"t"}]`,
		},
		{
			tool: "list_products",
			args: `{"store_id":"s1"}`,
			body: `{"products":[{"id":"p1","title":"Mug","handle":"mug","type":"kitchen","vendor":"Acme"}]}`,
			want: `[{"id":"p1","title":"Mug","type":"kitchen","vendor":"Acme"}]`,
		},
		{
			tool: "list_orders",
			args: `{"store_id":"s1"}`,
			body: `{"orders":[{"id":"o1","order_total":12.5,"currency_code":"USD","financial_status":"paid"}]}`,
			want: `[{"id":"o1","order_total":12.5,"currency_code":"USD","financial_status":"paid"}]`,
		},
		{
			tool: "list_conversations",
			body: `{"conversations":[{"id":"v1","message_count":2,"from_email":"a@example.com","subject":"Re: hi","timestamp":"t"}]}`,
			want: `[{"id":"v1","subject":"Re: hi","from_email":"a@example.com","timestamp":"t"}]`,
		},
	}
	for _, tt := range tests {
		name := tt.name
		if name == "" {
			name = tt.tool
		}
		t.Run(name, func(t *testing.T) {
			r, _ := newTestRegistry(t, respond(tt.body))
			args := tt.args
			if args == "" {
				args = `{}`
			}
			got := callText(t, r, tt.tool, args)

			var want bytes.Buffer
			if err := json.Indent(&want, []byte(tt.want), "", "  "); err != nil {
				t.Fatalf("bad expectation: %v", err)
			}
			if got != want.String() {
				t.Fatalf("got\n%s\nwant\n%s", got, want.String())
			}
		})
	}
}

func TestPassthroughReindents(t *testing.T) {
	r, path := newTestRegistry(t, respond(`{"id":"c1","html":"<b>hi</b> & bye","nested":{"k":[1,2]}}`))

	got := callText(t, r, "get_campaign_content", `{"campaign_id":"c1"}`)
	want := `{
  "id": "c1",
  "html": "<b>hi</b> & bye",
  "nested": {
    "k": [
      1,
      2
    ]
  }
}`
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
	if *path != "/3.0/campaigns/c1/content" {
		t.Fatalf("unexpected path %q", *path)
	}
}

func TestAPIErrorPropagates(t *testing.T) {
	r, _ := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"Resource Not Found"}`))
	})
	_, err := r.Call(context.Background(), "get_list", json.RawMessage(`{"list_id":"nope"}`))
	var apiErr *mailchimp.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected APIError 404, got %v", err)
	}
}
