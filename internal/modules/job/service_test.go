package job

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

type fixture struct {
	customer *domain.User
	worker   *domain.User
	job      *domain.JobProgress
}

func seedJob(t *testing.T, db *gorm.DB) fixture {
	customer := &domain.User{FullName: "Cust", Email: "cust@example.com", PasswordHash: "x", Role: domain.RoleCustomer}
	worker := &domain.User{FullName: "Work", Email: "work@example.com", PasswordHash: "x", Role: domain.RoleWorker}
	require.NoError(t, db.Create(customer).Error)
	require.NoError(t, db.Create(worker).Error)

	cat := &domain.PostCategory{Name: "Repair", IsActive: true}
	require.NoError(t, db.Create(cat).Error)
	post := &domain.CustomerPost{
		UserID: customer.ID, CategoryID: cat.ID, Title: "Fix door",
		Status: domain.CustomerPostClosed, IsActive: true,
	}
	require.NoError(t, db.Create(post).Error)

	j := &domain.JobProgress{
		CustomerPostID: post.ID,
		RequestedByID:  customer.ID,
		AssignedToID:   worker.ID,
		Status:         domain.JobInProgress,
		StartedAt:      time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(j).Error)
	return fixture{customer: customer, worker: worker, job: j}
}

func TestTransition_CompleteStampsCompletedAt(t *testing.T) {
	db := testDB(t)
	svc := NewService(repository.NewJobProgressRepository(db))
	ctx := context.Background()
	f := seedJob(t, db)
	startedAt := f.job.StartedAt

	j, err := svc.Transition(ctx, authz.Principal{UserID: f.worker.ID, Role: domain.RoleWorker}, f.job.ID, TransitionRequest{Action: "complete"})
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, j.Status)
	require.NotNil(t, j.CompletedAt)
	assert.WithinDuration(t, startedAt, j.StartedAt, time.Millisecond)

	var stored domain.JobProgress
	require.NoError(t, db.First(&stored, f.job.ID).Error)
	assert.WithinDuration(t, startedAt, stored.StartedAt, time.Millisecond)
}

func TestTransition_CancelLeavesCompletedAtNil(t *testing.T) {
	db := testDB(t)
	svc := NewService(repository.NewJobProgressRepository(db))
	ctx := context.Background()
	f := seedJob(t, db)

	j, err := svc.Transition(ctx, authz.Principal{UserID: f.customer.ID, Role: domain.RoleCustomer}, f.job.ID, TransitionRequest{Action: "cancel"})
	require.NoError(t, err)
	assert.Equal(t, domain.JobCancelled, j.Status)
	assert.Nil(t, j.CompletedAt)
}

func TestTransition_TerminalStatesRejectFurtherActions(t *testing.T) {
	db := testDB(t)
	svc := NewService(repository.NewJobProgressRepository(db))
	ctx := context.Background()
	f := seedJob(t, db)
	p := authz.Principal{UserID: f.worker.ID, Role: domain.RoleWorker}

	_, err := svc.Transition(ctx, p, f.job.ID, TransitionRequest{Action: "complete"})
	require.NoError(t, err)

	_, err = svc.Transition(ctx, p, f.job.ID, TransitionRequest{Action: "cancel"})
	assert.ErrorIs(t, err, ErrTerminal)
}

func TestTransition_ParticipantsOnly(t *testing.T) {
	db := testDB(t)
	svc := NewService(repository.NewJobProgressRepository(db))
	ctx := context.Background()
	f := seedJob(t, db)

	outsider := &domain.User{FullName: "Out", Email: "out@example.com", PasswordHash: "x", Role: domain.RoleWorker}
	require.NoError(t, db.Create(outsider).Error)

	_, err := svc.Transition(ctx, authz.Principal{UserID: outsider.ID, Role: domain.RoleWorker}, f.job.ID, TransitionRequest{Action: "complete"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Transition(ctx, authz.Principal{UserID: f.worker.ID, Role: domain.RoleWorker}, 9999, TransitionRequest{Action: "complete"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMine_BothSides(t *testing.T) {
	db := testDB(t)
	svc := NewService(repository.NewJobProgressRepository(db))
	ctx := context.Background()
	f := seedJob(t, db)

	jobs, total, err := svc.ListMine(ctx, authz.Principal{UserID: f.customer.ID, Role: domain.RoleCustomer}, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)

	jobs, total, err = svc.ListMine(ctx, authz.Principal{UserID: f.worker.ID, Role: domain.RoleWorker}, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
}
