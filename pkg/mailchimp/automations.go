package mailchimp

import (
	"context"
	"encoding/json"
)

// ListAutomations retrieves classic automations, newest first
func (m *Mailchimp) ListAutomations(ctx context.Context) (*AutomationsResponse, error) {
	var resp AutomationsResponse
	if err := m.list(ctx, "automations", "/automations", "create_time", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAutomation retrieves a single automation workflow
func (m *Mailchimp) GetAutomation(ctx context.Context, workflowID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "automation", path("automations", workflowID))
}

// ListAutomationEmails retrieves the emails of an automation, latest send first
func (m *Mailchimp) ListAutomationEmails(ctx context.Context, workflowID string) (*AutomationEmailsResponse, error) {
	var resp AutomationEmailsResponse
	if err := m.list(ctx, "automation emails", path("automations", workflowID, "emails"), "send_time", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAutomationEmail retrieves a single email of an automation
func (m *Mailchimp) GetAutomationEmail(ctx context.Context, workflowID, emailID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "automation email", path("automations", workflowID, "emails", emailID))
}

// ListAutomationSubscribers retrieves the subscribers queued for an automation email
func (m *Mailchimp) ListAutomationSubscribers(ctx context.Context, workflowID, emailID string) (*QueueResponse, error) {
	var resp QueueResponse
	if err := m.list(ctx, "automation subscribers", path("automations", workflowID, "emails", emailID, "queue"), "timestamp_signup", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAutomationQueue retrieves the full queue body of an automation email
func (m *Mailchimp) GetAutomationQueue(ctx context.Context, workflowID, emailID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "automation queue", path("automations", workflowID, "emails", emailID, "queue"), "timestamp_signup", SortDesc)
}

// GetAutomationReport retrieves the emails of an automation with their report summaries
func (m *Mailchimp) GetAutomationReport(ctx context.Context, workflowID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "automation report", path("automations", workflowID, "emails"))
}

// GetAutomationEmailReport retrieves a single automation email with its report summary
func (m *Mailchimp) GetAutomationEmailReport(ctx context.Context, workflowID, emailID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "automation email report", path("automations", workflowID, "emails", emailID))
}

// GetSubscriberActivity retrieves a queued subscriber's activity for an automation email
func (m *Mailchimp) GetSubscriberActivity(ctx context.Context, workflowID, emailID, subscriberHash string) (json.RawMessage, error) {
	return m.getRaw(ctx, "subscriber activity", path("automations", workflowID, "emails", emailID, "queue", subscriberHash, "activity"))
}
