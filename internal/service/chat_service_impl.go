package service

import (
	"context"
	"strings"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

type chatService struct {
	api ChatAPI
}

func NewChatService(api ChatAPI) ChatService {
	return &chatService{api: api}
}

func (s *chatService) Groups(ctx context.Context) ([]*domain.Group, error) {
	return s.api.ListGroups(ctx)
}

func (s *chatService) FindGroup(ctx context.Context, idOrName string) (*domain.Group, error) {
	groups, err := s.api.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.ID == idOrName {
			return g, nil
		}
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, idOrName) {
			return g, nil
		}
	}
	return nil, ErrGroupNotFound
}

func (s *chatService) Messages(ctx context.Context, groupID string, limit int) ([]*domain.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	messages, err := s.api.ListMessages(ctx, groupID, limit, 0)
	if err != nil {
		return nil, err
	}
	// The server returns newest first; the display wants oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (s *chatService) Send(ctx context.Context, groupID, content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ErrEmptyMessage
	}
	if len([]rune(trimmed)) > domain.MaxMessageLength {
		return ErrMessageTooLong
	}
	return s.api.SendMessage(ctx, groupID, trimmed)
}
