package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// ListGroups fetches the chat groups the user belongs to.
func (c *Client) ListGroups(ctx context.Context) ([]*domain.Group, error) {
	var data []groupPayload
	if err := c.do(ctx, http.MethodGet, "/api/groups", nil, &data); err != nil {
		return nil, err
	}

	groups := make([]*domain.Group, 0, len(data))
	for _, p := range data {
		groups = append(groups, p.toDomain())
	}
	return groups, nil
}

// ListMessages fetches a group's most recent messages, newest first,
// as the server orders them.
func (c *Client) ListMessages(ctx context.Context, groupID string, limit, offset int) ([]*domain.Message, error) {
	path := fmt.Sprintf("/api/messages/group/%s?limit=%d&offset=%d", groupID, limit, offset)
	var data struct {
		Messages []messagePayload `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}

	messages := make([]*domain.Message, 0, len(data.Messages))
	for _, p := range data.Messages {
		m, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// SendMessage posts a message to a group.
func (c *Client) SendMessage(ctx context.Context, groupID, content string) error {
	body := map[string]string{"groupId": groupID, "content": content}
	return c.do(ctx, http.MethodPost, "/api/messages", body, nil)
}
