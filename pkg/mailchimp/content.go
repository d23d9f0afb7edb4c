package mailchimp

import (
	"context"
	"encoding/json"
)

// GetAccount retrieves the API root, which describes the account
func (m *Mailchimp) GetAccount(ctx context.Context) (json.RawMessage, error) {
	return m.getRaw(ctx, "account", "/")
}

// GetAccountInfo retrieves the API root decoded into Account
func (m *Mailchimp) GetAccountInfo(ctx context.Context) (*Account, error) {
	var account Account
	if err := m.getInto(ctx, "account", "/", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ListTemplates retrieves templates, newest first
func (m *Mailchimp) ListTemplates(ctx context.Context) (*TemplatesResponse, error) {
	var resp TemplatesResponse
	if err := m.list(ctx, "templates", "/templates", "date_created", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTemplate retrieves a single template
func (m *Mailchimp) GetTemplate(ctx context.Context, templateID int64) (json.RawMessage, error) {
	return m.getRaw(ctx, "template", path("templates", itoa(templateID)))
}

// ListFolders retrieves campaign folders by name
func (m *Mailchimp) ListFolders(ctx context.Context) (*FoldersResponse, error) {
	var resp FoldersResponse
	if err := m.list(ctx, "campaign folders", "/campaign-folders", "name", SortAsc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFolder retrieves a single campaign folder
func (m *Mailchimp) GetFolder(ctx context.Context, folderID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "campaign folder", path("campaign-folders", folderID))
}

// ListFiles retrieves File Manager files, newest first
func (m *Mailchimp) ListFiles(ctx context.Context) (*FilesResponse, error) {
	var resp FilesResponse
	if err := m.list(ctx, "files", "/file-manager/files", "created_at", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFile retrieves a single File Manager file
func (m *Mailchimp) GetFile(ctx context.Context, fileID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "file", path("file-manager", "files", fileID))
}

// ListLandingPages retrieves landing pages, newest first
func (m *Mailchimp) ListLandingPages(ctx context.Context) (*LandingPagesResponse, error) {
	var resp LandingPagesResponse
	if err := m.list(ctx, "landing pages", "/landing-pages", "created_at", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLandingPage retrieves a single landing page
func (m *Mailchimp) GetLandingPage(ctx context.Context, pageID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "landing page", path("landing-pages", pageID))
}

// ListConversations retrieves inbox conversations, latest first
func (m *Mailchimp) ListConversations(ctx context.Context) (*ConversationsResponse, error) {
	var resp ConversationsResponse
	if err := m.list(ctx, "conversations", "/conversations", "timestamp", SortDesc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetConversation retrieves a single conversation
func (m *Mailchimp) GetConversation(ctx context.Context, conversationID string) (json.RawMessage, error) {
	return m.getRaw(ctx, "conversation", path("conversations", conversationID))
}
