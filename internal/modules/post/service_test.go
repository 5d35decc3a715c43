package post

import (
	"context"
	"testing"
	"time"

	"servicehub/internal/authz"
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
	svc := NewService(
		repository.NewCustomerPostRepository(db),
		repository.NewWorkerPostRepository(db),
		repository.NewCategoryRepository(db),
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, role domain.UserRole) *domain.User {
	u := &domain.User{
		FullName:     "User " + string(role),
		Email:        string(role) + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB) *domain.PostCategory {
	c := &domain.PostCategory{Name: "Plumbing", IsActive: true}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestCreateCustomerPost_OwnerAndStatusFromServer(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedUser(t, db, domain.RoleCustomer)
	cat := seedCategory(t, db)

	post, err := svc.CreateCustomerPost(ctx, authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}, CreateRequest{
		CategoryID:  cat.ID,
		Title:       "Fix my sink",
		Description: "Kitchen sink leaks",
		PriceFrom:   50,
		PriceTo:     100,
	})

	require.NoError(t, err)
	assert.Equal(t, customer.ID, post.UserID)
	assert.Equal(t, domain.CustomerPostOpen, post.Status)
	assert.True(t, post.IsActive)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreateCustomerPost_RoleGate(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	worker := seedUser(t, db, domain.RoleWorker)
	cat := seedCategory(t, db)

	_, err := svc.CreateCustomerPost(ctx, authz.Principal{UserID: worker.ID, Role: domain.RoleWorker}, CreateRequest{
		CategoryID:  cat.ID,
		Title:       "Nope",
		Description: "Workers do not place requests",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateCustomerPost_PriceRangeAndCategory(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedUser(t, db, domain.RoleCustomer)
	cat := seedCategory(t, db)
	p := authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}

	_, err := svc.CreateCustomerPost(ctx, p, CreateRequest{
		CategoryID: cat.ID, Title: "t", Description: "d", PriceFrom: 100, PriceTo: 50,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateCustomerPost(ctx, p, CreateRequest{
		CategoryID: 9999, Title: "t", Description: "d",
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// Whatever the edit payload carries, owner, created-at and status of the
// persisted row never move.
func TestUpdateCustomerPost_PreservesServerFields(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedUser(t, db, domain.RoleCustomer)
	cat := seedCategory(t, db)
	p := authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}

	created, err := svc.CreateCustomerPost(ctx, p, CreateRequest{
		CategoryID: cat.ID, Title: "Before", Description: "d", PriceFrom: 10, PriceTo: 20,
	})
	require.NoError(t, err)

	wasCreatedAt := created.CreatedAt
	time.Sleep(10 * time.Millisecond)

	newTitle := "After"
	updated, err := svc.UpdateCustomerPost(ctx, p, created.ID, UpdateRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, customer.ID, updated.UserID)
	assert.Equal(t, domain.CustomerPostOpen, updated.Status)
	assert.WithinDuration(t, wasCreatedAt, updated.CreatedAt, time.Millisecond)

	var stored domain.CustomerPost
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, customer.ID, stored.UserID)
	assert.Equal(t, domain.CustomerPostOpen, stored.Status)
	assert.WithinDuration(t, wasCreatedAt, stored.CreatedAt, time.Millisecond)
}

// Missing posts are NotFound to everyone; existing posts are Forbidden to
// strangers. The order never flips.
func TestCustomerPost_ForbiddenVsNotFound(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db, domain.RoleCustomer)
	stranger := seedUser(t, db, domain.RoleWorker)
	cat := seedCategory(t, db)

	created, err := svc.CreateCustomerPost(ctx, authz.Principal{UserID: owner.ID, Role: domain.RoleCustomer}, CreateRequest{
		CategoryID: cat.ID, Title: "Mine", Description: "d",
	})
	require.NoError(t, err)

	sp := authz.Principal{UserID: stranger.ID, Role: domain.RoleWorker}

	_, err = svc.UpdateCustomerPost(ctx, sp, created.ID, UpdateRequest{})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteCustomerPost(ctx, sp, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateCustomerPost(ctx, sp, 99999, UpdateRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteCustomerPost(ctx, sp, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerPost_AdminCanEditAndDelete(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db, domain.RoleCustomer)
	admin := seedUser(t, db, domain.RoleAdmin)
	cat := seedCategory(t, db)

	created, err := svc.CreateCustomerPost(ctx, authz.Principal{UserID: owner.ID, Role: domain.RoleCustomer}, CreateRequest{
		CategoryID: cat.ID, Title: "Moderated", Description: "d",
	})
	require.NoError(t, err)

	ap := authz.Principal{UserID: admin.ID, Role: domain.RoleAdmin}
	inactive := false
	updated, err := svc.UpdateCustomerPost(ctx, ap, created.ID, UpdateRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, owner.ID, updated.UserID)

	require.NoError(t, svc.DeleteCustomerPost(ctx, ap, created.ID))
	_, err = svc.GetCustomerPost(ctx, ap, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCustomerPosts_PublicShowsActiveOnly(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer := seedUser(t, db, domain.RoleCustomer)
	cat := seedCategory(t, db)
	p := authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}

	active, err := svc.CreateCustomerPost(ctx, p, CreateRequest{CategoryID: cat.ID, Title: "Active", Description: "d"})
	require.NoError(t, err)
	hidden, err := svc.CreateCustomerPost(ctx, p, CreateRequest{CategoryID: cat.ID, Title: "Hidden", Description: "d"})
	require.NoError(t, err)
	off := false
	_, err = svc.UpdateCustomerPost(ctx, p, hidden.ID, UpdateRequest{IsActive: &off})
	require.NoError(t, err)

	posts, total, err := svc.ListCustomerPosts(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, active.ID, posts[0].ID)

	mine, total, err := svc.ListMyCustomerPosts(ctx, p, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, mine, 2)
}

func TestWorkerPost_CreateAndOwnership(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	worker := seedUser(t, db, domain.RoleWorker)
	other := seedUser(t, db, domain.RoleCustomer)
	cat := seedCategory(t, db)

	created, err := svc.CreateWorkerPost(ctx, authz.Principal{UserID: worker.ID, Role: domain.RoleWorker}, CreateRequest{
		CategoryID: cat.ID, Title: "I fix sinks", Description: "d", PriceFrom: 40, PriceTo: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, worker.ID, created.UserID)
	assert.True(t, created.IsActive)

	_, err = svc.CreateWorkerPost(ctx, authz.Principal{UserID: other.ID, Role: domain.RoleCustomer}, CreateRequest{
		CategoryID: cat.ID, Title: "Nope", Description: "d",
	})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteWorkerPost(ctx, authz.Principal{UserID: other.ID, Role: domain.RoleCustomer}, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.DeleteWorkerPost(ctx, authz.Principal{UserID: worker.ID, Role: domain.RoleWorker}, created.ID))
}
