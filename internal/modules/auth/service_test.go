package auth

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

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func testDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := testDB(t)
	return NewService(repository.NewUserRepository(db), fakeJWT{}), db
}

func TestRegisterCustomer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.RegisterCustomer(ctx, RegisterRequest{
		FullName: "Alice Customer",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestRegisterCustomer_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := RegisterRequest{FullName: "Alice", Email: "a@example.com", Password: "secret123"}
	_, _, err := svc.RegisterCustomer(ctx, req)
	require.NoError(t, err)

	_, _, err = svc.RegisterCustomer(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterWorker_CreatesPendingApproval(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.RegisterWorker(ctx, RegisterRequest{
		FullName: "Bob Worker",
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleWorker, user.Role)

	var approvals []domain.WorkerApproval
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&approvals).Error)
	require.Len(t, approvals, 1)
	assert.Equal(t, domain.ApprovalPending, approvals[0].Status)
	assert.Nil(t, approvals[0].ReviewedAt)
	assert.False(t, approvals[0].RequestedAt.IsZero())
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.RegisterCustomer(ctx, RegisterRequest{
		FullName: "Alice", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginRequest{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "test-token", result.Token)

	_, err = svc.Login(ctx, LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.RegisterCustomer(ctx, RegisterRequest{
		FullName: "Alice", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{
		FullName: "Alice Smith", Phone: "+77001112233",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", updated.FullName)
	assert.Equal(t, "+77001112233", updated.Phone)

	_, err = svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{FullName: "X"})
	assert.ErrorIs(t, err, ErrValidation)
}
