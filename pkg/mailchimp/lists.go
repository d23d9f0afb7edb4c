package mailchimp

import (
	"context"
	"encoding/json"
)

// ListLists retrieves audiences, newest first
func (m *Mailchimp) ListLists(ctx context.Context) (*ListsResponse, error) {
	var resp ListsResponse
	if err := m.list(ctx, "lists", "/lists", "date_created", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetList retrieves a single audience
func (m *Mailchimp) GetList(ctx context.Context, listID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "list", path("lists", listID))
}

// ListMembers retrieves the members of a list, latest signup first
func (m *Mailchimp) ListMembers(ctx context.Context, listID string) (*MembersResponse, error) {
	var resp MembersResponse
	if err := m.list(ctx, "members", path("lists", listID, "members"), "timestamp_signup", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMember retrieves a list member by subscriber hash (MD5 of the lowercased email)
func (m *Mailchimp) GetMember(ctx context.Context, listID, subscriberHash string) (json.RawMessage, error) {
	return m.getRaw(ctx, "member", path("lists", listID, "members", subscriberHash))
}

// ListSegments retrieves the segments of a list, newest first
func (m *Mailchimp) ListSegments(ctx context.Context, listID string) (*SegmentsResponse, error) {
	var resp SegmentsResponse
	if err := m.list(ctx, "segments", path("lists", listID, "segments"), "created_at", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSegment retrieves a single segment
func (m *Mailchimp) GetSegment(ctx context.Context, listID string, segmentID int64) (json.RawMessage, error) {
	return m.getRaw(ctx, "segment", path("lists", listID, "segments", itoa(segmentID)))
}

// ListMergeFields retrieves the merge fields of a list in display order
func (m *Mailchimp) ListMergeFields(ctx context.Context, listID string) (*MergeFieldsResponse, error) {
	var resp MergeFieldsResponse
	if err := m.list(ctx, "merge fields", path("lists", listID, "merge-fields"), "display_order", SortAsc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMergeField retrieves a single merge field
func (m *Mailchimp) GetMergeField(ctx context.Context, listID string, mergeFieldID int64) (json.RawMessage, error) {
	return m.getRaw(ctx, "merge field", path("lists", listID, "merge-fields", itoa(mergeFieldID)))
}

// ListInterestCategories retrieves the interest categories of a list
func (m *Mailchimp) ListInterestCategories(ctx context.Context, listID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "interest categories", path("lists", listID, "interest-categories"), "display_order", SortAsc)
}

// GetInterestCategory retrieves a single interest category
func (m *Mailchimp) GetInterestCategory(ctx context.Context, listID, categoryID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "interest category", path("lists", listID, "interest-categories", categoryID))
}

// ListInterests retrieves the interests of a category
func (m *Mailchimp) ListInterests(ctx context.Context, listID, categoryID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "interests", path("lists", listID, "interest-categories", categoryID, "interests"), "display_order", SortAsc)
}

// GetInterest retrieves a single interest
func (m *Mailchimp) GetInterest(ctx context.Context, listID, categoryID, interestID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "interest", path("lists", listID, "interest-categories", categoryID, "interests", interestID))
}

// ListTags retrieves the tags of a list. Tags are static segments and share
// the segments endpoint.
func (m *Mailchimp) ListTags(ctx context.Context, listID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "tags", path("lists", listID, "segments"), "created_at", SortDesc)
}

// GetTag retrieves a single tag
func (m *Mailchimp) GetTag(ctx context.Context, listID string, tagID int64) (json.RawMessage, error) {
	return m.getRaw(ctx, "tag", path("lists", listID, "segments", itoa(tagID)))
}

// ListWebhooks retrieves the webhooks of a list
func (m *Mailchimp) ListWebhooks(ctx context.Context, listID string) (json.RawMessage, error) {
	return m.listRaw(ctx, "webhooks", path("lists", listID, "webhooks"), "created_at", SortDesc)
}

// GetWebhook retrieves a single webhook
func (m *Mailchimp) GetWebhook(ctx context.Context, listID, webhookID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "webhook", path("lists", listID, "webhooks", webhookID))
}

// GetGrowthHistory retrieves month-by-month list growth
func (m *Mailchimp) GetGrowthHistory(ctx context.Context, listID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "growth history", path("lists", listID, "growth-history"))
}

// GetActivityFeed retrieves recent daily list activity
func (m *Mailchimp) GetActivityFeed(ctx context.Context, listID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "activity feed", path("lists", listID, "activity"))
}

// GetClientStats retrieves the email clients used by list members
func (m *Mailchimp) GetClientStats(ctx context.Context, listID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "client stats", path("lists", listID, "clients"))
}

// GetLocationStats retrieves the countries of list members
func (m *Mailchimp) GetLocationStats(ctx context.Context, listID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "location stats", path("lists", listID, "locations"))
}

// ListMemberNotes retrieves the notes attached to a member
func (m *Mailchimp) ListMemberNotes(ctx context.Context, listID, subscriberHash string) (json.RawMessage, error) {
	return m.listRaw(ctx, "member notes", path("lists", listID, "members", subscriberHash, "notes"), "created_at", SortDesc)
}

// GetMemberNote retrieves a single member note
func (m *Mailchimp) GetMemberNote(ctx context.Context, listID, subscriberHash, noteID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "member note", path("lists", listID, "members", subscriberHash, "notes", noteID))
}

// ListGoals retrieves the goal events of a member
func (m *Mailchimp) ListGoals(ctx context.Context, listID, subscriberHash string) (json.RawMessage, error) {
	return m.listRaw(ctx, "member goals", path("lists", listID, "members", subscriberHash, "goals"), "created_at", SortDesc)
}

// GetGoal retrieves a single goal event of a member
func (m *Mailchimp) GetGoal(ctx context.Context, listID, subscriberHash, goalID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "member goal", path("lists", listID, "members", subscriberHash, "goals", goalID))
}
