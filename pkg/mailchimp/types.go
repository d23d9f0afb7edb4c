package mailchimp

import "encoding/json"

// Link is a HATEOAS link attached to most Marketing API resources.
type Link struct {
	Rel          string `json:"rel"`
	Href         string `json:"href"`
	Method       string `json:"method"`
	TargetSchema string `json:"targetSchema,omitempty"`
	Schema       string `json:"schema,omitempty"`
}

// Automation represents a classic automation workflow
type Automation struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	CreateTime string `json:"create_time"`
	StartTime  string `json:"start_time,omitempty"`
	EmailsSent int    `json:"emails_sent"`
	Recipients struct {
		ListID   string `json:"list_id"`
		ListName string `json:"list_name"`
	} `json:"recipients"`
	Settings struct {
		Title        string `json:"title"`
		FromName     string `json:"from_name"`
		ReplyTo      string `json:"reply_to"`
		ToName       string `json:"to_name"`
		FolderID     string `json:"folder_id"`
		Authenticate bool   `json:"authenticate"`
	} `json:"settings"`
	ReportSummary *ReportSummary `json:"report_summary,omitempty"`
	Links         []Link         `json:"_links,omitempty"`
}

// ReportSummary is the aggregate stats block shared by automations and campaigns
type ReportSummary struct {
	Opens            int     `json:"opens"`
	UniqueOpens      int     `json:"unique_opens"`
	OpenRate         float64 `json:"open_rate"`
	Clicks           int     `json:"clicks"`
	SubscriberClicks int     `json:"subscriber_clicks"`
	ClickRate        float64 `json:"click_rate"`
}

// AutomationsResponse represents the response from ListAutomations
type AutomationsResponse struct {
	Automations []Automation `json:"automations"`
	TotalItems  int          `json:"total_items"`
}

// AutomationEmail represents a single email within an automation workflow
type AutomationEmail struct {
	ID          string `json:"id"`
	WorkflowID  string `json:"workflow_id"`
	Position    int    `json:"position"`
	Status      string `json:"status"`
	EmailsSent  int    `json:"emails_sent"`
	SendTime    string `json:"send_time,omitempty"`
	ContentType string `json:"content_type"`
	Settings    struct {
		SubjectLine string `json:"subject_line"`
		Title       string `json:"title"`
		FromName    string `json:"from_name"`
		ReplyTo     string `json:"reply_to"`
	} `json:"settings"`
	Links []Link `json:"_links,omitempty"`
}

// AutomationEmailsResponse represents the response from ListAutomationEmails
type AutomationEmailsResponse struct {
	Emails     []AutomationEmail `json:"emails"`
	TotalItems int               `json:"total_items"`
}

// QueueEntry represents a subscriber waiting in an automation email queue
type QueueEntry struct {
	ID           string          `json:"id"`
	EmailAddress string          `json:"email_address"`
	Status       *string         `json:"status,omitempty"`
	MergeFields  json.RawMessage `json:"merge_fields,omitempty"`
	NextSend     string          `json:"next_send,omitempty"`
	ListID       string          `json:"list_id,omitempty"`
	ListIsActive bool            `json:"list_is_active,omitempty"`
	WorkflowID   string          `json:"workflow_id,omitempty"`
	EmailID      string          `json:"email_id,omitempty"`
}

// QueueResponse represents the response from the automation email queue.
// The API returns entries under "queue"; "subscribers" is accepted as well.
type QueueResponse struct {
	WorkflowID  string       `json:"workflow_id"`
	EmailID     string       `json:"email_id"`
	Queue       []QueueEntry `json:"queue"`
	Subscribers []QueueEntry `json:"subscribers,omitempty"`
	TotalItems  int          `json:"total_items"`
}

// Entries returns the queue entries regardless of which key carried them.
func (q *QueueResponse) Entries() []QueueEntry {
	if len(q.Queue) > 0 {
		return q.Queue
	}
	return q.Subscribers
}

// List represents an audience
type List struct {
	ID          string `json:"id"`
	WebID       int    `json:"web_id"`
	Name        string `json:"name"`
	DateCreated string `json:"date_created"`
	ListRating  int    `json:"list_rating"`
	Visibility  string `json:"visibility"`
	DoubleOptin bool   `json:"double_optin"`
	Stats       struct {
		MemberCount      int     `json:"member_count"`
		UnsubscribeCount int     `json:"unsubscribe_count"`
		CleanedCount     int     `json:"cleaned_count"`
		CampaignCount    int     `json:"campaign_count"`
		CampaignLastSent string  `json:"campaign_last_sent"`
		MergeFieldCount  int     `json:"merge_field_count"`
		OpenRate         float64 `json:"open_rate"`
		ClickRate        float64 `json:"click_rate"`
	} `json:"stats"`
	Links []Link `json:"_links,omitempty"`
}

// ListsResponse represents the response from ListLists
type ListsResponse struct {
	Lists      []List `json:"lists"`
	TotalItems int    `json:"total_items"`
}

// Campaign represents a regular, plaintext, A/B, RSS or variate campaign
type Campaign struct {
	ID          string  `json:"id"`
	WebID       int     `json:"web_id"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	CreateTime  string  `json:"create_time"`
	SendTime    *string `json:"send_time,omitempty"`
	ArchiveURL  string  `json:"archive_url,omitempty"`
	EmailsSent  int     `json:"emails_sent"`
	ContentType string  `json:"content_type"`
	Recipients  struct {
		ListID   string `json:"list_id"`
		ListName string `json:"list_name"`
	} `json:"recipients"`
	Settings struct {
		SubjectLine string `json:"subject_line"`
		Title       string `json:"title"`
		FromName    string `json:"from_name"`
		FolderID    string `json:"folder_id"`
	} `json:"settings"`
	ReportSummary *ReportSummary `json:"report_summary,omitempty"`
	Links         []Link         `json:"_links,omitempty"`
}

// CampaignsResponse represents the response from ListCampaigns
type CampaignsResponse struct {
	Campaigns  []Campaign `json:"campaigns"`
	TotalItems int        `json:"total_items"`
}

// Member represents a list member (subscriber)
type Member struct {
	ID              string          `json:"id"`
	EmailAddress    string          `json:"email_address"`
	UniqueEmailID   string          `json:"unique_email_id"`
	EmailType       string          `json:"email_type"`
	Status          string          `json:"status"`
	MergeFields     json.RawMessage `json:"merge_fields,omitempty"`
	MemberRating    int             `json:"member_rating"`
	LastChanged     string          `json:"last_changed"`
	TimestampSignup string          `json:"timestamp_signup,omitempty"`
	VIP             bool            `json:"vip"`
	TagsCount       int             `json:"tags_count"`
	ListID          string          `json:"list_id"`
}

// MembersResponse represents the response from ListMembers
type MembersResponse struct {
	Members    []Member `json:"members"`
	ListID     string   `json:"list_id"`
	TotalItems int      `json:"total_items"`
}

// Segment represents a saved, static or fuzzy segment (static segments are tags)
type Segment struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
	Type        string `json:"type"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	ListID      string `json:"list_id"`
}

// SegmentsResponse represents the response from ListSegments
type SegmentsResponse struct {
	Segments   []Segment `json:"segments"`
	ListID     string    `json:"list_id"`
	TotalItems int       `json:"total_items"`
}

// Template represents an email template
type Template struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	DragAndDrop bool   `json:"drag_and_drop"`
	Responsive  bool   `json:"responsive"`
	Category    string `json:"category,omitempty"`
	DateCreated string `json:"date_created"`
	CreatedBy   string `json:"created_by"`
	Active      bool   `json:"active"`
	FolderID    string `json:"folder_id,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// TemplatesResponse represents the response from ListTemplates
type TemplatesResponse struct {
	Templates  []Template `json:"templates"`
	TotalItems int        `json:"total_items"`
}

// CampaignReport represents the report for a sent campaign. Opens and
// clicks are nested objects that are passed through untouched.
type CampaignReport struct {
	ID            string          `json:"id"`
	CampaignTitle string          `json:"campaign_title"`
	Type          string          `json:"type"`
	ListID        string          `json:"list_id"`
	ListName      string          `json:"list_name"`
	SubjectLine   string          `json:"subject_line"`
	EmailsSent    int             `json:"emails_sent"`
	AbuseReports  int             `json:"abuse_reports"`
	Unsubscribed  int             `json:"unsubscribed"`
	SendTime      string          `json:"send_time"`
	Opens         json.RawMessage `json:"opens,omitempty"`
	Clicks        json.RawMessage `json:"clicks,omitempty"`
}

// CampaignReportsResponse represents the response from ListCampaignReports
type CampaignReportsResponse struct {
	Reports    []CampaignReport `json:"reports"`
	TotalItems int              `json:"total_items"`
}

// Account represents the API root resource
type Account struct {
	AccountID        string `json:"account_id"`
	LoginID          string `json:"login_id"`
	AccountName      string `json:"account_name"`
	Email            string `json:"email"`
	AccountIndustry  string `json:"account_industry"`
	AccountTimezone  string `json:"account_timezone"`
	ProEnabled       bool   `json:"pro_enabled"`
	LastLogin        string `json:"last_login"`
	TotalSubscribers int    `json:"total_subscribers"`
}

// Folder represents a campaign folder
type Folder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FoldersResponse represents the response from ListFolders
type FoldersResponse struct {
	Folders    []Folder `json:"folders"`
	TotalItems int      `json:"total_items"`
}

// File represents a File Manager file
type File struct {
	ID          json.Number `json:"id"`
	FolderID    json.Number `json:"folder_id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Size        int64       `json:"size"`
	FullSizeURL string      `json:"full_size_url,omitempty"`
	CreatedAt   string      `json:"created_at"`
	CreatedBy   string      `json:"created_by"`
}

// FilesResponse represents the response from ListFiles
type FilesResponse struct {
	Files      []File `json:"files"`
	TotalItems int    `json:"total_items"`
}

// LandingPage represents a hosted landing page
type LandingPage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	ListID      string `json:"list_id,omitempty"`
	StoreID     string `json:"store_id,omitempty"`
	URL         string `json:"url"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	PublishedAt string `json:"published_at,omitempty"`
}

// LandingPagesResponse represents the response from ListLandingPages
type LandingPagesResponse struct {
	LandingPages []LandingPage `json:"landing_pages"`
	TotalItems   int           `json:"total_items"`
}

// Store represents a connected e-commerce store
type Store struct {
	ID           string  `json:"id"`
	ListID       string  `json:"list_id"`
	Name         string  `json:"name"`
	Platform     string  `json:"platform"`
	Domain       *string `json:"domain,omitempty"`
	IsSyncing    bool    `json:"is_syncing"`
	EmailAddress string  `json:"email_address"`
	CurrencyCode string  `json:"currency_code"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// StoresResponse represents the response from ListStores
type StoresResponse struct {
	Stores     []Store `json:"stores"`
	TotalItems int     `json:"total_items"`
}

// Product represents a store product
type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Handle   string `json:"handle"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Vendor   string `json:"vendor"`
	ImageURL string `json:"image_url,omitempty"`
}

// ProductsResponse represents the response from ListProducts
type ProductsResponse struct {
	StoreID    string    `json:"store_id"`
	Products   []Product `json:"products"`
	TotalItems int       `json:"total_items"`
}

// Order represents a store order
type Order struct {
	ID                 string  `json:"id"`
	StoreID            string  `json:"store_id"`
	CampaignID         string  `json:"campaign_id,omitempty"`
	FinancialStatus    string  `json:"financial_status"`
	FulfillmentStatus  string  `json:"fulfillment_status"`
	CurrencyCode       string  `json:"currency_code"`
	OrderTotal         float64 `json:"order_total"`
	DiscountTotal      float64 `json:"discount_total"`
	TaxTotal           float64 `json:"tax_total"`
	ShippingTotal      float64 `json:"shipping_total"`
	ProcessedAtForeign string  `json:"processed_at_foreign,omitempty"`
}

// OrdersResponse represents the response from ListOrders
type OrdersResponse struct {
	StoreID    string  `json:"store_id"`
	Orders     []Order `json:"orders"`
	TotalItems int     `json:"total_items"`
}

// Conversation represents an inbox conversation thread
type Conversation struct {
	ID             string `json:"id"`
	MessageCount   int    `json:"message_count"`
	CampaignID     string `json:"campaign_id,omitempty"`
	ListID         string `json:"list_id"`
	UnreadMessages int    `json:"unread_messages"`
	FromLabel      string `json:"from_label"`
	FromEmail      string `json:"from_email"`
	Subject        string `json:"subject"`
	Timestamp      string `json:"timestamp"`
}

// ConversationsResponse represents the response from ListConversations
type ConversationsResponse struct {
	Conversations []Conversation `json:"conversations"`
	TotalItems    int            `json:"total_items"`
}

// MergeField represents a list merge field. The API identifies merge fields
// by merge_id; some payloads also carry id.
type MergeField struct {
	ID           *int   `json:"id,omitempty"`
	MergeID      int    `json:"merge_id"`
	Tag          string `json:"tag"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"default_value,omitempty"`
	Public       bool   `json:"public"`
	DisplayOrder int    `json:"display_order"`
	HelpText     string `json:"help_text,omitempty"`
	ListID       string `json:"list_id"`
}

// Identifier returns id when present and merge_id otherwise.
func (f MergeField) Identifier() int {
	if f.ID != nil {
		return *f.ID
	}
	return f.MergeID
}

// MergeFieldsResponse represents the response from ListMergeFields
type MergeFieldsResponse struct {
	MergeFields []MergeField `json:"merge_fields"`
	ListID      string       `json:"list_id"`
	TotalItems  int          `json:"total_items"`
}
