package mailchimp

import (
	"context"
	"encoding/json"
)

// ListCampaigns retrieves campaigns, newest first
func (m *Mailchimp) ListCampaigns(ctx context.Context) (*CampaignsResponse, error) {
	var resp CampaignsResponse
	if err := m.list(ctx, "campaigns", "/campaigns", "create_time", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCampaign retrieves a single campaign
func (m *Mailchimp) GetCampaign(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign", path("campaigns", campaignID))
}

// GetCampaignContent retrieves the HTML and plain-text content of a campaign
func (m *Mailchimp) GetCampaignContent(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign content", path("campaigns", campaignID, "content"))
}

// GetCampaignFeedback retrieves the feedback comments on a campaign
func (m *Mailchimp) GetCampaignFeedback(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign feedback", path("campaigns", campaignID, "feedback"))
}

// GetCampaignSendChecklist retrieves the pre-send checklist of a campaign
func (m *Mailchimp) GetCampaignSendChecklist(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign send checklist", path("campaigns", campaignID, "send-checklist"))
}

// GetCampaignRecipients retrieves the recipients of a campaign
func (m *Mailchimp) GetCampaignRecipients(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign recipients", path("campaigns", campaignID, "recipients"))
}
