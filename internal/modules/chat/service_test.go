package chat

import (
	"context"
	"testing"

	"servicehub/internal/database"
	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := testDB(t)
	svc := NewService(repository.NewChatRepository(db), repository.NewUserRepository(db), NewHub())
	return svc, db
}

func seedPair(t *testing.T, db *gorm.DB) (alice, bob *domain.User) {
	alice = &domain.User{FullName: "Alice", Email: "alice@example.com", PasswordHash: "x", Role: domain.RoleCustomer}
	bob = &domain.User{FullName: "Bob", Email: "bob@example.com", PasswordHash: "x", Role: domain.RoleWorker}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)
	return alice, bob
}

// Opening (a,b) and then (b,a) must land on the same thread: the pair is
// unordered and deduplicated at lookup time.
func TestOpenConversation_UnorderedPairDedup(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	alice, bob := seedPair(t, db)

	first, err := svc.OpenConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	second, err := svc.OpenConversation(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&domain.Conversation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpenConversation_Guards(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	alice, _ := seedPair(t, db)

	_, err := svc.OpenConversation(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfConversation)

	_, err = svc.OpenConversation(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendMessage_PersistsWithServerSentAt(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	alice, bob := seedPair(t, db)

	conv, err := svc.OpenConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	msg, err := svc.SendMessage(ctx, alice.ID, conv.ID, SendMessageRequest{Text: "  hello  "})
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, alice.ID, msg.SenderID)
	assert.False(t, msg.SentAt.IsZero())

	var stored domain.Message
	require.NoError(t, db.First(&stored, msg.ID).Error)
	assert.Equal(t, conv.ID, stored.ConversationID)
}

func TestSendMessage_ParticipantsOnly(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	alice, bob := seedPair(t, db)
	eve := &domain.User{FullName: "Eve", Email: "eve@example.com", PasswordHash: "x", Role: domain.RoleCustomer}
	require.NoError(t, db.Create(eve).Error)

	conv, err := svc.OpenConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, eve.ID, conv.ID, SendMessageRequest{Text: "hi"})
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = svc.SendMessage(ctx, alice.ID, 9999, SendMessageRequest{Text: "hi"})
	assert.ErrorIs(t, err, ErrConversationNotFound)

	_, err = svc.SendMessage(ctx, alice.ID, conv.ID, SendMessageRequest{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestHistory_ParticipantsOnly(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	alice, bob := seedPair(t, db)

	conv, err := svc.OpenConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, alice.ID, conv.ID, SendMessageRequest{Text: "one"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, bob.ID, conv.ID, SendMessageRequest{Text: "two"})
	require.NoError(t, err)

	msgs, err := svc.History(ctx, bob.ID, conv.ID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	eve := &domain.User{FullName: "Eve", Email: "eve@example.com", PasswordHash: "x", Role: domain.RoleCustomer}
	require.NoError(t, db.Create(eve).Error)
	_, err = svc.History(ctx, eve.ID, conv.ID, 50, 0)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestListConversations_ResolvesCounterpart(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	alice, bob := seedPair(t, db)

	_, err := svc.OpenConversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	views, err := svc.ListConversations(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Counterpart)
	assert.Equal(t, bob.ID, views[0].Counterpart.ID)
	assert.Equal(t, "Bob", views[0].Counterpart.FullName)

	views, err = svc.ListConversations(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, alice.ID, views[0].Counterpart.ID)
}
