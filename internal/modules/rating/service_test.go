package rating

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
		repository.NewRatingRepository(db),
		repository.NewUserRepository(db),
		repository.NewCustomerPostRepository(db),
		repository.NewJobProgressRepository(db),
	)
	return svc, db
}

func seedPair(t *testing.T, db *gorm.DB) (customer, worker *domain.User) {
	customer = &domain.User{FullName: "Cust", Email: "cust@example.com", PasswordHash: "x", Role: domain.RoleCustomer}
	worker = &domain.User{FullName: "Work", Email: "work@example.com", PasswordHash: "x", Role: domain.RoleWorker}
	require.NoError(t, db.Create(customer).Error)
	require.NoError(t, db.Create(worker).Error)
	return customer, worker
}

func TestCreate_RaterFromSession(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer, worker := seedPair(t, db)

	r, err := svc.Create(ctx, authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}, CreateRequest{
		RatedID: worker.ID, Value: 5, Review: "great work",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, r.RaterID)
	assert.Equal(t, worker.ID, r.RatedID)
	assert.False(t, r.CreatedAt.IsZero())
}

// A second rating of the same person is a validation failure, not an upsert.
func TestCreate_DuplicatePairRejected(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer, worker := seedPair(t, db)
	p := authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}

	_, err := svc.Create(ctx, p, CreateRequest{RatedID: worker.ID, Value: 5})
	require.NoError(t, err)

	_, err = svc.Create(ctx, p, CreateRequest{RatedID: worker.ID, Value: 1})
	assert.ErrorIs(t, err, ErrAlreadyRated)

	var count int64
	require.NoError(t, db.Model(&domain.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreate_Guards(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer, _ := seedPair(t, db)
	p := authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}

	_, err := svc.Create(ctx, p, CreateRequest{RatedID: customer.ID, Value: 3})
	assert.ErrorIs(t, err, ErrSelfRating)

	_, err = svc.Create(ctx, p, CreateRequest{RatedID: 9999, Value: 3})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// Editing revises value and review only; rater, rated and created-at keep
// their original stored values.
func TestUpdate_PreservesPairAndCreatedAt(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer, worker := seedPair(t, db)
	p := authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}

	created, err := svc.Create(ctx, p, CreateRequest{RatedID: worker.ID, Value: 2, Review: "meh"})
	require.NoError(t, err)
	wasCreatedAt := created.CreatedAt
	time.Sleep(10 * time.Millisecond)

	v := 5
	rev := "actually great"
	updated, err := svc.Update(ctx, p, created.ID, UpdateRequest{Value: &v, Review: &rev})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Value)
	assert.Equal(t, "actually great", updated.Review)
	assert.Equal(t, customer.ID, updated.RaterID)
	assert.Equal(t, worker.ID, updated.RatedID)
	assert.WithinDuration(t, wasCreatedAt, updated.CreatedAt, time.Millisecond)

	var stored domain.Rating
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, customer.ID, stored.RaterID)
	assert.WithinDuration(t, wasCreatedAt, stored.CreatedAt, time.Millisecond)
}

// Only the rater may edit. Admins get no bypass on ratings.
func TestUpdate_RaterOnly(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer, worker := seedPair(t, db)

	created, err := svc.Create(ctx, authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}, CreateRequest{
		RatedID: worker.ID, Value: 4,
	})
	require.NoError(t, err)

	v := 1
	_, err = svc.Update(ctx, authz.Principal{UserID: worker.ID, Role: domain.RoleWorker}, created.ID, UpdateRequest{Value: &v})
	assert.ErrorIs(t, err, ErrForbidden)

	admin := &domain.User{FullName: "Admin", Email: "admin@example.com", PasswordHash: "x", Role: domain.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)
	_, err = svc.Update(ctx, authz.Principal{UserID: admin.ID, Role: domain.RoleAdmin}, created.ID, UpdateRequest{Value: &v})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}, 9999, UpdateRequest{Value: &v})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListForUser_Average(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer, worker := seedPair(t, db)
	second := &domain.User{FullName: "Cust2", Email: "cust2@example.com", PasswordHash: "x", Role: domain.RoleCustomer}
	require.NoError(t, db.Create(second).Error)

	_, err := svc.Create(ctx, authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer}, CreateRequest{RatedID: worker.ID, Value: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, authz.Principal{UserID: second.ID, Role: domain.RoleCustomer}, CreateRequest{RatedID: worker.ID, Value: 2})
	require.NoError(t, err)

	page, err := svc.ListForUser(ctx, worker.ID, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.InDelta(t, 3.5, page.Average, 0.001)

	_, err = svc.ListForUser(ctx, 9999, ListQuery{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateForPost(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	customer, worker := seedPair(t, db)

	cat := &domain.PostCategory{Name: "Repair", IsActive: true}
	require.NoError(t, db.Create(cat).Error)
	post := &domain.CustomerPost{UserID: customer.ID, CategoryID: cat.ID, Title: "t", Status: domain.CustomerPostOpen, IsActive: true}
	require.NoError(t, db.Create(post).Error)

	r, err := svc.CreateForPost(ctx, authz.Principal{UserID: worker.ID, Role: domain.RoleWorker}, CreatePostRatingRequest{
		CustomerPostID: post.ID, Value: 4, Review: "fair terms",
	})
	require.NoError(t, err)
	assert.Equal(t, worker.ID, r.RaterID)

	listed, err := svc.ListForPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = svc.CreateForPost(ctx, authz.Principal{UserID: worker.ID, Role: domain.RoleWorker}, CreatePostRatingRequest{
		CustomerPostID: 9999, Value: 4,
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreate_MarksCompletedJobRated(t *testing.T) {
	svc, db := newTestService(t)
	customer, worker := seedPair(t, db)

	job := &domain.JobProgress{
		RequestedByID: customer.ID,
		AssignedToID:  worker.ID,
		Status:        domain.JobCompleted,
		StartedAt:     time.Now(),
	}
	require.NoError(t, db.Create(job).Error)

	_, err := svc.Create(context.Background(),
		authz.Principal{UserID: customer.ID, Role: domain.RoleCustomer},
		CreateRequest{RatedID: worker.ID, Value: 5})
	require.NoError(t, err)

	var stored domain.JobProgress
	require.NoError(t, db.First(&stored, job.ID).Error)
	assert.True(t, stored.RatedByCustomer)
	assert.False(t, stored.RatedByWorker)

	_, err = svc.Create(context.Background(),
		authz.Principal{UserID: worker.ID, Role: domain.RoleWorker},
		CreateRequest{RatedID: customer.ID, Value: 4})
	require.NoError(t, err)

	require.NoError(t, db.First(&stored, job.ID).Error)
	assert.True(t, stored.RatedByWorker)
}
