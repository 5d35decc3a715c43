package chat

import (
	"time"

	"servicehub/internal/domain"
)

type OpenConversationRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// ConversationView presents a thread from the caller's side: the counterpart
// is resolved so clients never have to compare ids themselves.
type ConversationView struct {
	ID          int64        `json:"id"`
	Counterpart *Participant `json:"counterpart,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

type Participant struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// WireMessage is what the hub pushes over the websocket.
type WireMessage struct {
	Type           string    `json:"type"`
	MessageID      int64     `json:"message_id"`
	ConversationID int64     `json:"conversation_id"`
	SenderID       int64     `json:"sender_id"`
	Text           string    `json:"text"`
	SentAt         time.Time `json:"sent_at"`
}

func toConversationView(conv *domain.Conversation, viewerID int64) *ConversationView {
	view := &ConversationView{ID: conv.ID, CreatedAt: conv.CreatedAt}

	other := conv.UserOne
	if conv.UserOneID == viewerID {
		other = conv.UserTwo
	}
	if other != nil {
		view.Counterpart = &Participant{ID: other.ID, FullName: other.FullName}
	}
	return view
}

func toWireMessage(m *domain.Message) WireMessage {
	return WireMessage{
		Type:           "message",
		MessageID:      m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Text:           m.Text,
		SentAt:         m.SentAt,
	}
}
