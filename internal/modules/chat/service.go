package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	chats *repository.ChatRepository
	users *repository.UserRepository
	hub   *Hub
}

func NewService(chats *repository.ChatRepository, users *repository.UserRepository, hub *Hub) *Service {
	return &Service{chats: chats, users: users, hub: hub}
}

// OpenConversation returns the existing thread between the two users or
// creates one. The pair is unordered: (a,b) and (b,a) are the same thread,
// so the lookup runs before any insert.
func (s *Service) OpenConversation(ctx context.Context, userID, otherID int64) (*domain.Conversation, error) {
	if userID == otherID {
		return nil, ErrSelfConversation
	}
	if _, err := s.users.GetByID(ctx, otherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.chats.GetByParticipants(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.chats.GetConversationByID(ctx, existing.ID)
	}

	conv := &domain.Conversation{UserOneID: userID, UserTwoID: otherID}
	if err := s.chats.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}
	return s.chats.GetConversationByID(ctx, conv.ID)
}

func (s *Service) ListConversations(ctx context.Context, userID int64) ([]*ConversationView, error) {
	convs, err := s.chats.ListConversationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*ConversationView, 0, len(convs))
	for i := range convs {
		views = append(views, toConversationView(&convs[i], userID))
	}
	return views, nil
}

// SendMessage persists the message and then pushes it to both participants'
// live connections. The push is best effort: a recipient being offline never
// fails the send.
func (s *Service) SendMessage(ctx context.Context, userID, conversationID int64, req SendMessageRequest) (*domain.Message, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := s.loadConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}

	msg := &domain.Message{
		ConversationID: conv.ID,
		SenderID:       userID,
		Text:           text,
		SentAt:         time.Now(),
	}
	if err := s.chats.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	wire := toWireMessage(msg)
	s.hub.SendToUser(conv.Counterpart(userID), wire)
	s.hub.SendToUser(userID, wire)

	return msg, nil
}

func (s *Service) History(ctx context.Context, userID, conversationID int64, limit, offset int) ([]domain.Message, error) {
	conv, err := s.loadConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.chats.ListMessages(ctx, conversationID, limit, offset)
}

func (s *Service) loadConversation(ctx context.Context, id int64) (*domain.Conversation, error) {
	conv, err := s.chats.GetConversationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return conv, nil
}
