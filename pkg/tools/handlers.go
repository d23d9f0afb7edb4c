package tools

import (
	"context"

	"github.com/natserract/mailchimp-mcp/pkg/mailchimp"
)

// Argument names shared by the catalog and the handlers
const (
	argWorkflowID     = "workflow_id"
	argEmailID        = "email_id"
	argSubscriberHash = "subscriber_hash"
	argListID         = "list_id"
	argCampaignID     = "campaign_id"
	argSegmentID      = "segment_id"
	argTemplateID     = "template_id"
	argFolderID       = "folder_id"
	argMergeFieldID   = "merge_field_id"
	argFileID         = "file_id"
	argPageID         = "page_id"
	argStoreID        = "store_id"
	argProductID      = "product_id"
	argOrderID        = "order_id"
	argConversationID = "conversation_id"
	argCategoryID     = "category_id"
	argInterestID     = "interest_id"
	argTagID          = "tag_id"
	argWebhookID      = "webhook_id"
	argNoteID         = "note_id"
	argGoalID         = "goal_id"
	argCustomerID     = "customer_id"
	argVariantID      = "variant_id"
	argCartID         = "cart_id"
	argPromoRuleID    = "promo_rule_id"
	argPromoCodeID    = "promo_code_id"
)

func handlers() map[string]handler {
	return map[string]handler{
		// Automations
		"list_automations": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListAutomations(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeAutomations(resp), nil
		},
		"get_automation": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetAutomation(ctx, a.String(argWorkflowID))
		},
		"list_automation_emails": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			resp, err := c.ListAutomationEmails(ctx, a.String(argWorkflowID))
			if err != nil {
				return nil, err
			}
			return summarizeAutomationEmails(resp), nil
		},
		"get_automation_email": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetAutomationEmail(ctx, a.String(argWorkflowID), a.String(argEmailID))
		},
		"list_automation_subscribers": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			resp, err := c.ListAutomationSubscribers(ctx, a.String(argWorkflowID), a.String(argEmailID))
			if err != nil {
				return nil, err
			}
			return summarizeQueue(resp), nil
		},
		"get_automation_queue": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetAutomationQueue(ctx, a.String(argWorkflowID), a.String(argEmailID))
		},
		"list_lists": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListLists(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeLists(resp), nil
		},
		"get_list": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetList(ctx, a.String(argListID))
		},
		"get_automation_report": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetAutomationReport(ctx, a.String(argWorkflowID))
		},
		"get_automation_email_report": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetAutomationEmailReport(ctx, a.String(argWorkflowID), a.String(argEmailID))
		},
		"get_subscriber_activity": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetSubscriberActivity(ctx, a.String(argWorkflowID), a.String(argEmailID), a.String(argSubscriberHash))
		},

		// Campaigns
		"list_campaigns": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListCampaigns(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeCampaigns(resp), nil
		},
		"get_campaign": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaign(ctx, a.String(argCampaignID))
		},
		"get_campaign_content": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignContent(ctx, a.String(argCampaignID))
		},
		"get_campaign_feedback": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignFeedback(ctx, a.String(argCampaignID))
		},
		"get_campaign_send_checklist": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignSendChecklist(ctx, a.String(argCampaignID))
		},
		"get_campaign_recipients": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignRecipients(ctx, a.String(argCampaignID))
		},

		// Members, segments, merge fields
		"list_members": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			resp, err := c.ListMembers(ctx, a.String(argListID))
			if err != nil {
				return nil, err
			}
			return summarizeMembers(resp), nil
		},
		"get_member": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetMember(ctx, a.String(argListID), a.String(argSubscriberHash))
		},
		"list_segments": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			resp, err := c.ListSegments(ctx, a.String(argListID))
			if err != nil {
				return nil, err
			}
			return summarizeSegments(resp), nil
		},
		"get_segment": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetSegment(ctx, a.String(argListID), a.Int(argSegmentID))
		},
		"list_merge_fields": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			resp, err := c.ListMergeFields(ctx, a.String(argListID))
			if err != nil {
				return nil, err
			}
			return summarizeMergeFields(resp), nil
		},
		"get_merge_field": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetMergeField(ctx, a.String(argListID), a.Int(argMergeFieldID))
		},

		// Interest categories, tags, webhooks
		"list_interest_categories": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListInterestCategories(ctx, a.String(argListID))
		},
		"get_interest_category": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetInterestCategory(ctx, a.String(argListID), a.String(argCategoryID))
		},
		"list_interests": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListInterests(ctx, a.String(argListID), a.String(argCategoryID))
		},
		"get_interest": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetInterest(ctx, a.String(argListID), a.String(argCategoryID), a.String(argInterestID))
		},
		"list_tags": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListTags(ctx, a.String(argListID))
		},
		"get_tag": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetTag(ctx, a.String(argListID), a.Int(argTagID))
		},
		"list_webhooks": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListWebhooks(ctx, a.String(argListID))
		},
		"get_webhook": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetWebhook(ctx, a.String(argListID), a.String(argWebhookID))
		},

		// List statistics
		"get_growth_history": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetGrowthHistory(ctx, a.String(argListID))
		},
		"get_activity_feed": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetActivityFeed(ctx, a.String(argListID))
		},
		"get_client_stats": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetClientStats(ctx, a.String(argListID))
		},
		"get_location_stats": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetLocationStats(ctx, a.String(argListID))
		},

		// Member notes and goals
		"list_member_notes": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListMemberNotes(ctx, a.String(argListID), a.String(argSubscriberHash))
		},
		"get_member_note": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetMemberNote(ctx, a.String(argListID), a.String(argSubscriberHash), a.String(argNoteID))
		},
		"list_goals": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListGoals(ctx, a.String(argListID), a.String(argSubscriberHash))
		},
		"get_goal": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetGoal(ctx, a.String(argListID), a.String(argSubscriberHash), a.String(argGoalID))
		},

		// Templates
		"list_templates": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListTemplates(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeTemplates(resp), nil
		},
		"get_template": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetTemplate(ctx, a.Int(argTemplateID))
		},

		// Reports
		"list_campaign_reports": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListCampaignReports(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeCampaignReports(resp), nil
		},
		"get_campaign_report": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignReport(ctx, a.String(argCampaignID))
		},
		"get_campaign_opens": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignOpens(ctx, a.String(argCampaignID))
		},
		"get_campaign_clicks": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignClicks(ctx, a.String(argCampaignID))
		},
		"get_campaign_unsubscribes": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignUnsubscribes(ctx, a.String(argCampaignID))
		},
		"get_campaign_bounces": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignBounces(ctx, a.String(argCampaignID))
		},
		"get_campaign_abuse_reports": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignAbuseReports(ctx, a.String(argCampaignID))
		},
		"get_campaign_forwards": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignForwards(ctx, a.String(argCampaignID))
		},
		"get_campaign_outbound_activity": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignOutboundActivity(ctx, a.String(argCampaignID))
		},
		"get_campaign_email_activity": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignEmailActivity(ctx, a.String(argCampaignID))
		},
		"get_campaign_subscriber_activity": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCampaignSubscriberActivity(ctx, a.String(argCampaignID), a.String(argSubscriberHash))
		},

		// Account and content
		"get_account": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			return c.GetAccount(ctx)
		},
		"list_folders": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListFolders(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeFolders(resp), nil
		},
		"get_folder": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetFolder(ctx, a.String(argFolderID))
		},
		"list_files": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListFiles(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeFiles(resp), nil
		},
		"get_file": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetFile(ctx, a.String(argFileID))
		},
		"list_landing_pages": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListLandingPages(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeLandingPages(resp), nil
		},
		"get_landing_page": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetLandingPage(ctx, a.String(argPageID))
		},
		"list_conversations": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListConversations(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeConversations(resp), nil
		},
		"get_conversation": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetConversation(ctx, a.String(argConversationID))
		},

		// E-commerce
		"list_stores": func(ctx context.Context, c mailchimp.MailchimpClient, _ Args) (any, error) {
			resp, err := c.ListStores(ctx)
			if err != nil {
				return nil, err
			}
			return summarizeStores(resp), nil
		},
		"get_store": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetStore(ctx, a.String(argStoreID))
		},
		"list_products": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			resp, err := c.ListProducts(ctx, a.String(argStoreID))
			if err != nil {
				return nil, err
			}
			return summarizeProducts(resp), nil
		},
		"get_product": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetProduct(ctx, a.String(argStoreID), a.String(argProductID))
		},
		"list_product_variants": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListProductVariants(ctx, a.String(argStoreID), a.String(argProductID))
		},
		"get_product_variant": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetProductVariant(ctx, a.String(argStoreID), a.String(argProductID), a.String(argVariantID))
		},
		"list_orders": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			resp, err := c.ListOrders(ctx, a.String(argStoreID))
			if err != nil {
				return nil, err
			}
			return summarizeOrders(resp), nil
		},
		"get_order": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetOrder(ctx, a.String(argStoreID), a.String(argOrderID))
		},
		"get_order_lines": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetOrderLines(ctx, a.String(argStoreID), a.String(argOrderID))
		},
		"list_customers": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListCustomers(ctx, a.String(argStoreID))
		},
		"get_customer": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCustomer(ctx, a.String(argStoreID), a.String(argCustomerID))
		},
		"list_carts": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListCarts(ctx, a.String(argStoreID))
		},
		"get_cart": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCart(ctx, a.String(argStoreID), a.String(argCartID))
		},
		"get_cart_lines": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetCartLines(ctx, a.String(argStoreID), a.String(argCartID))
		},
		"list_promo_rules": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListPromoRules(ctx, a.String(argStoreID))
		},
		"get_promo_rule": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetPromoRule(ctx, a.String(argStoreID), a.String(argPromoRuleID))
		},
		"list_promo_codes": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.ListPromoCodes(ctx, a.String(argStoreID), a.String(argPromoRuleID))
		},
		"get_promo_code": func(ctx context.Context, c mailchimp.MailchimpClient, a Args) (any, error) {
			return c.GetPromoCode(ctx, a.String(argStoreID), a.String(argPromoRuleID), a.String(argPromoCodeID))
		},
	}
}
