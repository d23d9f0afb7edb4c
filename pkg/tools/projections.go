package tools

import (
	"encoding/json"

	"github.com/natserract/mailchimp-mcp/pkg/mailchimp"
)

// Summaries returned by list tools. Field order is the output order.

type automationSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	CreateTime string `json:"create_time"`
}

func summarizeAutomations(resp *mailchimp.AutomationsResponse) []automationSummary {
	out := make([]automationSummary, 0, len(resp.Automations))
	for _, a := range resp.Automations {
		out = append(out, automationSummary{
			ID:         a.ID,
			Name:       a.Name,
			Status:     a.Status,
			Type:       a.Type,
			CreateTime: a.CreateTime,
		})
	}
	return out
}

type automationEmailSummary struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	Status      string `json:"status"`
	SubjectLine string `json:"subject_line"`
	EmailsSent  int    `json:"emails_sent"`
}

func summarizeAutomationEmails(resp *mailchimp.AutomationEmailsResponse) []automationEmailSummary {
	out := make([]automationEmailSummary, 0, len(resp.Emails))
	for _, e := range resp.Emails {
		out = append(out, automationEmailSummary{
			ID:          e.ID,
			Position:    e.Position,
			Status:      e.Status,
			SubjectLine: e.Settings.SubjectLine,
			EmailsSent:  e.EmailsSent,
		})
	}
	return out
}

type queueSummary struct {
	EmailAddress string          `json:"email_address"`
	Status       *string         `json:"status,omitempty"`
	MergeFields  json.RawMessage `json:"merge_fields,omitempty"`
}

func summarizeQueue(resp *mailchimp.QueueResponse) []queueSummary {
	entries := resp.Entries()
	out := make([]queueSummary, 0, len(entries))
	for _, q := range entries {
		out = append(out, queueSummary{
			EmailAddress: q.EmailAddress,
			Status:       q.Status,
			MergeFields:  q.MergeFields,
		})
	}
	return out
}

type listSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
	DateCreated string `json:"date_created"`
}

func summarizeLists(resp *mailchimp.ListsResponse) []listSummary {
	out := make([]listSummary, 0, len(resp.Lists))
	for _, l := range resp.Lists {
		out = append(out, listSummary{
			ID:          l.ID,
			Name:        l.Name,
			MemberCount: l.Stats.MemberCount,
			DateCreated: l.DateCreated,
		})
	}
	return out
}

type campaignSummary struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	CreateTime string  `json:"create_time"`
	SendTime   *string `json:"send_time,omitempty"`
}

func summarizeCampaigns(resp *mailchimp.CampaignsResponse) []campaignSummary {
	out := make([]campaignSummary, 0, len(resp.Campaigns))
	for _, c := range resp.Campaigns {
		out = append(out, campaignSummary{
			ID:         c.ID,
			Type:       c.Type,
			Status:     c.Status,
			CreateTime: c.CreateTime,
			SendTime:   c.SendTime,
		})
	}
	return out
}

type memberSummary struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
	MemberRating int    `json:"member_rating"`
	LastChanged  string `json:"last_changed"`
}

func summarizeMembers(resp *mailchimp.MembersResponse) []memberSummary {
	out := make([]memberSummary, 0, len(resp.Members))
	for _, m := range resp.Members {
		out = append(out, memberSummary{
			ID:           m.ID,
			EmailAddress: m.EmailAddress,
			Status:       m.Status,
			MemberRating: m.MemberRating,
			LastChanged:  m.LastChanged,
		})
	}
	return out
}

type segmentSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
	Type        string `json:"type"`
	CreatedAt   string `json:"created_at"`
}

func summarizeSegments(resp *mailchimp.SegmentsResponse) []segmentSummary {
	out := make([]segmentSummary, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		out = append(out, segmentSummary{
			ID:          s.ID,
			Name:        s.Name,
			MemberCount: s.MemberCount,
			Type:        s.Type,
			CreatedAt:   s.CreatedAt,
		})
	}
	return out
}

type templateSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	DragAndDrop bool   `json:"drag_and_drop"`
	Responsive  bool   `json:"responsive"`
	Active      bool   `json:"active"`
	DateCreated string `json:"date_created"`
}

func summarizeTemplates(resp *mailchimp.TemplatesResponse) []templateSummary {
	out := make([]templateSummary, 0, len(resp.Templates))
	for _, t := range resp.Templates {
		out = append(out, templateSummary{
			ID:          t.ID,
			Name:        t.Name,
			Type:        t.Type,
			DragAndDrop: t.DragAndDrop,
			Responsive:  t.Responsive,
			Active:      t.Active,
			DateCreated: t.DateCreated,
		})
	}
	return out
}

type campaignReportSummary struct {
	ID            string          `json:"id"`
	CampaignTitle string          `json:"campaign_title"`
	Type          string          `json:"type"`
	EmailsSent    int             `json:"emails_sent"`
	SendTime      string          `json:"send_time"`
	Opens         json.RawMessage `json:"opens,omitempty"`
	Clicks        json.RawMessage `json:"clicks,omitempty"`
}

func summarizeCampaignReports(resp *mailchimp.CampaignReportsResponse) []campaignReportSummary {
	out := make([]campaignReportSummary, 0, len(resp.Reports))
	for _, r := range resp.Reports {
		out = append(out, campaignReportSummary{
			ID:            r.ID,
			CampaignTitle: r.CampaignTitle,
			Type:          r.Type,
			EmailsSent:    r.EmailsSent,
			SendTime:      r.SendTime,
			Opens:         r.Opens,
			Clicks:        r.Clicks,
		})
	}
	return out
}

type folderSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func summarizeFolders(resp *mailchimp.FoldersResponse) []folderSummary {
	out := make([]folderSummary, 0, len(resp.Folders))
	for _, f := range resp.Folders {
		out = append(out, folderSummary{ID: f.ID, Name: f.Name, Count: f.Count})
	}
	return out
}

type mergeFieldSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	Public       bool   `json:"public"`
	DisplayOrder int    `json:"display_order"`
}

func summarizeMergeFields(resp *mailchimp.MergeFieldsResponse) []mergeFieldSummary {
	out := make([]mergeFieldSummary, 0, len(resp.MergeFields))
	for _, f := range resp.MergeFields {
		out = append(out, mergeFieldSummary{
			ID:           f.Identifier(),
			Name:         f.Name,
			Type:         f.Type,
			Required:     f.Required,
			Public:       f.Public,
			DisplayOrder: f.DisplayOrder,
		})
	}
	return out
}

type fileSummary struct {
	ID        json.Number `json:"id"`
	Name      string      `json:"name"`
	Size      int64       `json:"size"`
	CreatedAt string      `json:"created_at"`
}

func summarizeFiles(resp *mailchimp.FilesResponse) []fileSummary {
	out := make([]fileSummary, 0, len(resp.Files))
	for _, f := range resp.Files {
		out = append(out, fileSummary{ID: f.ID, Name: f.Name, Size: f.Size, CreatedAt: f.CreatedAt})
	}
	return out
}

type landingPageSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

func summarizeLandingPages(resp *mailchimp.LandingPagesResponse) []landingPageSummary {
	out := make([]landingPageSummary, 0, len(resp.LandingPages))
	for _, p := range resp.LandingPages {
		out = append(out, landingPageSummary{ID: p.ID, Name: p.Name, Type: p.Type, CreatedAt: p.CreatedAt})
	}
	return out
}

type storeSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Domain    *string `json:"domain,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func summarizeStores(resp *mailchimp.StoresResponse) []storeSummary {
	out := make([]storeSummary, 0, len(resp.Stores))
	for _, s := range resp.Stores {
		out = append(out, storeSummary{ID: s.ID, Name: s.Name, Domain: s.Domain, CreatedAt: s.CreatedAt})
	}
	return out
}

type productSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Type   string `json:"type"`
	Vendor string `json:"vendor"`
}

func summarizeProducts(resp *mailchimp.ProductsResponse) []productSummary {
	out := make([]productSummary, 0, len(resp.Products))
	for _, p := range resp.Products {
		out = append(out, productSummary{ID: p.ID, Title: p.Title, Type: p.Type, Vendor: p.Vendor})
	}
	return out
}

type orderSummary struct {
	ID              string  `json:"id"`
	OrderTotal      float64 `json:"order_total"`
	CurrencyCode    string  `json:"currency_code"`
	FinancialStatus string  `json:"financial_status"`
}

func summarizeOrders(resp *mailchimp.OrdersResponse) []orderSummary {
	out := make([]orderSummary, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		out = append(out, orderSummary{
			ID:              o.ID,
			OrderTotal:      o.OrderTotal,
			CurrencyCode:    o.CurrencyCode,
			FinancialStatus: o.FinancialStatus,
		})
	}
	return out
}

type conversationSummary struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	FromEmail string `json:"from_email"`
	Timestamp string `json:"timestamp"`
}

func summarizeConversations(resp *mailchimp.ConversationsResponse) []conversationSummary {
	out := make([]conversationSummary, 0, len(resp.Conversations))
	for _, c := range resp.Conversations {
		out = append(out, conversationSummary{ID: c.ID, Subject: c.Subject, FromEmail: c.FromEmail, Timestamp: c.Timestamp})
	}
	return out
}
