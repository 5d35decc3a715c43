package chat

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
	ErrUserNotFound         = errors.New("user not found")
	ErrSelfConversation     = errors.New("cannot open a conversation with yourself")
	ErrEmptyMessage         = errors.New("message text is empty")
)
