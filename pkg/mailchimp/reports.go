package mailchimp

import (
	"context"
	"encoding/json"
)

// ListCampaignReports retrieves campaign reports, latest send first
func (m *Mailchimp) ListCampaignReports(ctx context.Context) (*CampaignReportsResponse, error) {
	var resp CampaignReportsResponse
	if err := m.list(ctx, "campaign reports", "/reports", "send_time", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCampaignReport retrieves the report of a single campaign
func (m *Mailchimp) GetCampaignReport(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign report", path("reports", campaignID))
}

// GetCampaignOpens retrieves the open details of a campaign
func (m *Mailchimp) GetCampaignOpens(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign opens", path("reports", campaignID, "opens"))
}

// GetCampaignClicks retrieves the per-link click details of a campaign
func (m *Mailchimp) GetCampaignClicks(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign clicks", path("reports", campaignID, "click-details"))
}

// GetCampaignUnsubscribes retrieves the members who unsubscribed from a campaign
func (m *Mailchimp) GetCampaignUnsubscribes(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign unsubscribes", path("reports", campaignID, "unsubscribed"))
}

// GetCampaignBounces retrieves the bounces of a campaign
func (m *Mailchimp) GetCampaignBounces(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign bounces", path("reports", campaignID, "bounces"))
}

// GetCampaignAbuseReports retrieves the abuse complaints of a campaign
func (m *Mailchimp) GetCampaignAbuseReports(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign abuse reports", path("reports", campaignID, "abuse-reports"))
}

// GetCampaignForwards retrieves the forwards of a campaign
func (m *Mailchimp) GetCampaignForwards(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign forwards", path("reports", campaignID, "forwards"))
}

// GetCampaignOutboundActivity retrieves the outbound activity of a campaign
func (m *Mailchimp) GetCampaignOutboundActivity(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign outbound activity", path("reports", campaignID, "outbound-activity"))
}

// GetCampaignEmailActivity retrieves the per-recipient activity of a campaign
func (m *Mailchimp) GetCampaignEmailActivity(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign email activity", path("reports", campaignID, "email-activity"))
}

// GetCampaignSubscriberActivity retrieves one recipient's activity for a campaign
func (m *Mailchimp) GetCampaignSubscriberActivity(ctx context.Context, campaignID, subscriberHash string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign subscriber activity", path("reports", campaignID, "email-activity", subscriberHash))
}
