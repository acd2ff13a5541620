package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// envelope is the response wrapper the TeleTrack server puts around
// every payload: { success, data, message }.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (e *envelope) errorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// timeLayouts are tried in order when parsing server timestamps. The
// server emits RFC 3339 but accepts and occasionally echoes back
// offset-naive local timestamps from older clients.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseAPITime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

type sessionPayload struct {
	ID          json.Number `json:"id"`
	StartTime   string      `json:"startTime"`
	EndTime     *string     `json:"endTime"`
	Description *string     `json:"description"`
}

func (p sessionPayload) toDomain() (*domain.WorkSession, error) {
	start, err := parseAPITime(p.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parsing session startTime: %w", err)
	}
	s := &domain.WorkSession{
		ID:        p.ID.String(),
		StartTime: start,
	}
	if p.EndTime != nil && *p.EndTime != "" {
		end, err := parseAPITime(*p.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parsing session endTime: %w", err)
		}
		s.EndTime = &end
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	return s, nil
}

// sessionBody is the request body for creating or updating a session.
type sessionBody struct {
	StartTime   string  `json:"startTime"`
	EndTime     *string `json:"endTime,omitempty"`
	Description *string `json:"description"`
}

func newSessionBody(s *domain.WorkSession) sessionBody {
	body := sessionBody{StartTime: s.StartTime.Format(time.RFC3339)}
	if s.EndTime != nil {
		v := s.EndTime.Format(time.RFC3339)
		body.EndTime = &v
	}
	if s.Description != "" {
		v := s.Description
		body.Description = &v
	}
	return body
}

type userPayload struct {
	ID         json.Number `json:"id"`
	Email      string      `json:"email"`
	Nickname   string      `json:"nickname"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Address    string      `json:"address"`
	City       string      `json:"city"`
	PostalCode string      `json:"postalCode"`
	Province   string      `json:"province"`
	Country    string      `json:"country"`
}

func (p userPayload) toDomain() *domain.User {
	return &domain.User{
		ID:         p.ID.String(),
		Email:      p.Email,
		Nickname:   p.Nickname,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Address:    p.Address,
		City:       p.City,
		PostalCode: p.PostalCode,
		Province:   p.Province,
		Country:    p.Country,
	}
}

type groupPayload struct {
	ID    json.Number   `json:"id"`
	Name  string        `json:"name"`
	Users []userPayload `json:"Users"`
}

func (p groupPayload) toDomain() *domain.Group {
	return &domain.Group{
		ID:          p.ID.String(),
		Name:        p.Name,
		MemberCount: len(p.Users),
	}
}

type messagePayload struct {
	ID        json.Number  `json:"id"`
	GroupID   json.Number  `json:"groupId"`
	UserID    json.Number  `json:"userId"`
	Content   string       `json:"content"`
	CreatedAt string       `json:"createdAt"`
	User      *userPayload `json:"User"`
}

func (p messagePayload) toDomain() (*domain.Message, error) {
	created, err := parseAPITime(p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing message createdAt: %w", err)
	}
	m := &domain.Message{
		ID:        p.ID.String(),
		GroupID:   p.GroupID.String(),
		UserID:    p.UserID.String(),
		Content:   p.Content,
		CreatedAt: created,
	}
	if p.User != nil {
		m.Author = p.User.toDomain().DisplayName()
	}
	return m, nil
}

type settingsPayload struct {
	CalendarWeekStart string `json:"calendarWeekStart"`
}

func (p settingsPayload) toDomain() *domain.Settings {
	ws := domain.WeekStart(p.CalendarWeekStart)
	if ws != domain.WeekStartSunday {
		ws = domain.WeekStartMonday
	}
	return &domain.Settings{CalendarWeekStart: ws}
}
