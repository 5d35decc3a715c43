package domain

import "time"

// Conversation is a direct thread between two users. The pair is unordered:
// lookups must try both orders before creating a new row.
type Conversation struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserOneID int64     `gorm:"column:user_one_id;index" json:"user_one_id"`
	UserTwoID int64     `gorm:"column:user_two_id;index" json:"user_two_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	UserOne *User `gorm:"foreignKey:UserOneID" json:"user_one,omitempty"`
	UserTwo *User `gorm:"foreignKey:UserTwoID" json:"user_two,omitempty"`
}

func (Conversation) TableName() string { return "conversations" }

// HasParticipant reports whether the user is one of the two sides.
func (c *Conversation) HasParticipant(userID int64) bool {
	return c.UserOneID == userID || c.UserTwoID == userID
}

// Counterpart returns the other participant's id.
func (c *Conversation) Counterpart(userID int64) int64 {
	if c.UserOneID == userID {
		return c.UserTwoID
	}
	return c.UserOneID
}

// Message belongs to a conversation; SentAt is server-assigned and immutable.
type Message struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	ConversationID int64     `gorm:"column:conversation_id;index" json:"conversation_id"`
	SenderID       int64     `gorm:"column:sender_id" json:"sender_id"`
	Text           string    `gorm:"column:text" json:"text"`
	SentAt         time.Time `gorm:"column:sent_at" json:"sent_at"`
}

func (Message) TableName() string { return "messages" }
