package api

import (
	"context"
	"net/http"
)

// MessageTypeText is the only message type the client produces.
const MessageTypeText = "text"

// Message is one persisted conversation message.
type Message struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Content     string `json:"content"`
	MessageType string `json:"message_type,omitempty"`
}

// CreateMessageRequest persists one message into a conversation.
type CreateMessageRequest struct {
	Role        string `json:"role"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

// ListMessages returns a conversation's message history.
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	var messages []Message
	err := c.do(ctx, "list_messages", http.MethodGet, "/conversations/"+conversationID+"/messages", nil, &messages)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateMessage appends a message to a conversation.
func (c *Client) CreateMessage(ctx context.Context, conversationID string, req CreateMessageRequest) error {
	if req.MessageType == "" {
		req.MessageType = MessageTypeText
	}
	return c.do(ctx, "create_message", http.MethodPost, "/conversations/"+conversationID+"/messages", req, nil)
}
