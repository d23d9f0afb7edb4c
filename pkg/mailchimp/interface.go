package mailchimp

import (
	"context"
	"encoding/json"
)

// MailchimpClient defines the interface for Mailchimp Marketing API operations
type MailchimpClient interface {
	// ListAutomations retrieves classic automations, newest first
	ListAutomations(ctx context.Context) (*AutomationsResponse, error)

	// GetAutomation retrieves a single automation workflow
	GetAutomation(ctx context.Context, workflowID string) (json.RawMessage, error)

	// ListAutomationEmails retrieves the emails of an automation, latest send first
	ListAutomationEmails(ctx context.Context, workflowID string) (*AutomationEmailsResponse, error)

	// GetAutomationEmail retrieves a single email of an automation
	GetAutomationEmail(ctx context.Context, workflowID, emailID string) (json.RawMessage, error)

	// ListAutomationSubscribers retrieves the subscribers queued for an automation email
	ListAutomationSubscribers(ctx context.Context, workflowID, emailID string) (*QueueResponse, error)

	// GetAutomationQueue retrieves the full queue body of an automation email
	GetAutomationQueue(ctx context.Context, workflowID, emailID string) (json.RawMessage, error)

	// GetAutomationReport retrieves the emails of an automation with their report summaries
	GetAutomationReport(ctx context.Context, workflowID string) (json.RawMessage, error)

	// GetAutomationEmailReport retrieves a single automation email with its report summary
	GetAutomationEmailReport(ctx context.Context, workflowID, emailID string) (json.RawMessage, error)

	// GetSubscriberActivity retrieves a queued subscriber's activity for an automation email
	GetSubscriberActivity(ctx context.Context, workflowID, emailID, subscriberHash string) (json.RawMessage, error)

	// ListLists retrieves audiences, newest first
	ListLists(ctx context.Context) (*ListsResponse, error)

	// GetList retrieves a single audience
	GetList(ctx context.Context, listID string) (json.RawMessage, error)

	// ListMembers retrieves the members of a list, latest signup first
	ListMembers(ctx context.Context, listID string) (*MembersResponse, error)

	// GetMember retrieves a list member by subscriber hash (MD5 of the lowercased email)
	GetMember(ctx context.Context, listID, subscriberHash string) (json.RawMessage, error)

	// ListSegments retrieves the segments of a list, newest first
	ListSegments(ctx context.Context, listID string) (*SegmentsResponse, error)

	// GetSegment retrieves a single segment
	GetSegment(ctx context.Context, listID string, segmentID int64) (json.RawMessage, error)

	// ListMergeFields retrieves the merge fields of a list in display order
	ListMergeFields(ctx context.Context, listID string) (*MergeFieldsResponse, error)

	// GetMergeField retrieves a single merge field
	GetMergeField(ctx context.Context, listID string, mergeFieldID int64) (json.RawMessage, error)

	// ListInterestCategories retrieves the interest categories of a list
	ListInterestCategories(ctx context.Context, listID string) (json.RawMessage, error)

	// GetInterestCategory retrieves a single interest category
	GetInterestCategory(ctx context.Context, listID, categoryID string) (json.RawMessage, error)

	// ListInterests retrieves the interests of a category
	ListInterests(ctx context.Context, listID, categoryID string) (json.RawMessage, error)

	// GetInterest retrieves a single interest
	GetInterest(ctx context.Context, listID, categoryID, interestID string) (json.RawMessage, error)

	// ListTags retrieves the tags of a list. Tags are static segments and share
	// the segments endpoint.
	ListTags(ctx context.Context, listID string) (json.RawMessage, error)

	// GetTag retrieves a single tag
	GetTag(ctx context.Context, listID string, tagID int64) (json.RawMessage, error)

	// ListWebhooks retrieves the webhooks of a list
	ListWebhooks(ctx context.Context, listID string) (json.RawMessage, error)

	// GetWebhook retrieves a single webhook
	GetWebhook(ctx context.Context, listID, webhookID string) (json.RawMessage, error)

	// GetGrowthHistory retrieves month-by-month list growth
	GetGrowthHistory(ctx context.Context, listID string) (json.RawMessage, error)

	// GetActivityFeed retrieves recent daily list activity
	GetActivityFeed(ctx context.Context, listID string) (json.RawMessage, error)

	// GetClientStats retrieves the email clients used by list members
	GetClientStats(ctx context.Context, listID string) (json.RawMessage, error)

	// GetLocationStats retrieves the countries of list members
	GetLocationStats(ctx context.Context, listID string) (json.RawMessage, error)

	// ListMemberNotes retrieves the notes attached to a member
	ListMemberNotes(ctx context.Context, listID, subscriberHash string) (json.RawMessage, error)

	// GetMemberNote retrieves a single member note
	GetMemberNote(ctx context.Context, listID, subscriberHash, noteID string) (json.RawMessage, error)

	// ListGoals retrieves the goal events of a member
	ListGoals(ctx context.Context, listID, subscriberHash string) (json.RawMessage, error)

	// GetGoal retrieves a single goal event of a member
	GetGoal(ctx context.Context, listID, subscriberHash, goalID string) (json.RawMessage, error)

	// ListCampaigns retrieves campaigns, newest first
	ListCampaigns(ctx context.Context) (*CampaignsResponse, error)

	// GetCampaign retrieves a single campaign
	GetCampaign(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignContent retrieves the HTML and plain-text content of a campaign
	GetCampaignContent(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignFeedback retrieves the feedback comments on a campaign
	GetCampaignFeedback(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignSendChecklist retrieves the pre-send checklist of a campaign
	GetCampaignSendChecklist(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignRecipients retrieves the recipients of a campaign
	GetCampaignRecipients(ctx context.Context, campaignID string) (json.RawMessage, error)

	// ListCampaignReports retrieves campaign reports, latest send first
	ListCampaignReports(ctx context.Context) (*CampaignReportsResponse, error)

	// GetCampaignReport retrieves the report of a single campaign
	GetCampaignReport(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignOpens retrieves the open details of a campaign
	GetCampaignOpens(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignClicks retrieves the per-link click details of a campaign
	GetCampaignClicks(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignUnsubscribes retrieves the members who unsubscribed from a campaign
	GetCampaignUnsubscribes(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignBounces retrieves the bounces of a campaign
	GetCampaignBounces(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignAbuseReports retrieves the abuse complaints of a campaign
	GetCampaignAbuseReports(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignForwards retrieves the forwards of a campaign
	GetCampaignForwards(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignOutboundActivity retrieves the outbound activity of a campaign
	GetCampaignOutboundActivity(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignEmailActivity retrieves the per-recipient activity of a campaign
	GetCampaignEmailActivity(ctx context.Context, campaignID string) (json.RawMessage, error)

	// GetCampaignSubscriberActivity retrieves one recipient's activity for a campaign
	GetCampaignSubscriberActivity(ctx context.Context, campaignID, subscriberHash string) (json.RawMessage, error)

	// GetAccount retrieves the API root, which describes the account
	GetAccount(ctx context.Context) (json.RawMessage, error)

	// GetAccountInfo retrieves the API root decoded into Account
	GetAccountInfo(ctx context.Context) (*Account, error)

	// ListTemplates retrieves templates, newest first
	ListTemplates(ctx context.Context) (*TemplatesResponse, error)

	// GetTemplate retrieves a single template
	GetTemplate(ctx context.Context, templateID int64) (json.RawMessage, error)

	// ListFolders retrieves campaign folders by name
	ListFolders(ctx context.Context) (*FoldersResponse, error)

	// GetFolder retrieves a single campaign folder
	GetFolder(ctx context.Context, folderID string) (json.RawMessage, error)

	// ListFiles retrieves File Manager files, newest first
	ListFiles(ctx context.Context) (*FilesResponse, error)

	// GetFile retrieves a single File Manager file
	GetFile(ctx context.Context, fileID string) (json.RawMessage, error)

	// ListLandingPages retrieves landing pages, newest first
	ListLandingPages(ctx context.Context) (*LandingPagesResponse, error)

	// GetLandingPage retrieves a single landing page
	GetLandingPage(ctx context.Context, pageID string) (json.RawMessage, error)

	// ListConversations retrieves inbox conversations, latest first
	ListConversations(ctx context.Context) (*ConversationsResponse, error)

	// GetConversation retrieves a single conversation
	GetConversation(ctx context.Context, conversationID string) (json.RawMessage, error)

	// ListStores retrieves connected stores, newest first
	ListStores(ctx context.Context) (*StoresResponse, error)

	// GetStore retrieves a single store
	GetStore(ctx context.Context, storeID string) (json.RawMessage, error)

	// ListProducts retrieves the products of a store
	ListProducts(ctx context.Context, storeID string) (*ProductsResponse, error)

	// GetProduct retrieves a single product
	GetProduct(ctx context.Context, storeID, productID string) (json.RawMessage, error)

	// ListProductVariants retrieves the variants of a product
	ListProductVariants(ctx context.Context, storeID, productID string) (json.RawMessage, error)

	// GetProductVariant retrieves a single product variant
	GetProductVariant(ctx context.Context, storeID, productID, variantID string) (json.RawMessage, error)

	// ListOrders retrieves the orders of a store, latest processed first
	ListOrders(ctx context.Context, storeID string) (*OrdersResponse, error)

	// GetOrder retrieves a single order
	GetOrder(ctx context.Context, storeID, orderID string) (json.RawMessage, error)

	// GetOrderLines retrieves the line items of an order
	GetOrderLines(ctx context.Context, storeID, orderID string) (json.RawMessage, error)

	// ListCustomers retrieves the customers of a store
	ListCustomers(ctx context.Context, storeID string) (json.RawMessage, error)

	// GetCustomer retrieves a single customer
	GetCustomer(ctx context.Context, storeID, customerID string) (json.RawMessage, error)

	// ListCarts retrieves the carts of a store
	ListCarts(ctx context.Context, storeID string) (json.RawMessage, error)

	// GetCart retrieves a single cart
	GetCart(ctx context.Context, storeID, cartID string) (json.RawMessage, error)

	// GetCartLines retrieves the line items of a cart
	GetCartLines(ctx context.Context, storeID, cartID string) (json.RawMessage, error)

	// ListPromoRules retrieves the promo rules of a store
	ListPromoRules(ctx context.Context, storeID string) (json.RawMessage, error)

	// GetPromoRule retrieves a single promo rule
	GetPromoRule(ctx context.Context, storeID, promoRuleID string) (json.RawMessage, error)

	// ListPromoCodes retrieves the promo codes of a promo rule
	ListPromoCodes(ctx context.Context, storeID, promoRuleID string) (json.RawMessage, error)

	// GetPromoCode retrieves a single promo code
	GetPromoCode(ctx context.Context, storeID, promoRuleID, promoCodeID string) (json.RawMessage, error)
}

var _ MailchimpClient = (*Mailchimp)(nil)
