package api

import (
	"context"
	"net/http"
)

// Conversation is one chat thread.
type Conversation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListConversations returns all of the user's conversations.
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	var conversations []Conversation
	if err := c.do(ctx, "list_conversations", http.MethodGet, "/conversations/", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// CreateConversation creates a new conversation with the given title.
func (c *Client) CreateConversation(ctx context.Context, title string) (*Conversation, error) {
	var conversation Conversation
	body := map[string]string{"title": title}
	if err := c.do(ctx, "create_conversation", http.MethodPost, "/conversations", body, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// RenameConversation updates a conversation's title.
func (c *Client) RenameConversation(ctx context.Context, id, title string) error {
	body := map[string]string{"title": title}
	return c.do(ctx, "rename_conversation", http.MethodPatch, "/conversations/"+id, body, nil)
}

// DeleteConversation removes a conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.do(ctx, "delete_conversation", http.MethodDelete, "/conversations/"+id, nil, nil)
}
