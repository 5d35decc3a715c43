package upload

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

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

// fakeStorage records calls without touching the filesystem.
type fakeStorage struct {
	saved   []string
	removed []string
}

func (f *fakeStorage) Save(file *multipart.FileHeader, subdir string) (string, error) {
	url := "/static/uploads/" + subdir + "/" + file.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) Remove(fileURL string) error {
	f.removed = append(f.removed, fileURL)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeStorage, *gorm.DB) {
	db := testDB(t)
	storage := &fakeStorage{}
	svc := NewService(
		repository.NewMediaRepository(db),
		repository.NewCustomerPostRepository(db),
		repository.NewWorkerPostRepository(db),
		repository.NewUserRepository(db),
		storage,
	)
	return svc, storage, db
}

func seedCustomerPost(t *testing.T, db *gorm.DB) (*domain.User, *domain.CustomerPost) {
	owner := &domain.User{FullName: "Cust", Email: "cust@example.com", PasswordHash: "x", Role: domain.RoleCustomer}
	require.NoError(t, db.Create(owner).Error)
	cat := &domain.PostCategory{Name: "Repair", IsActive: true}
	require.NoError(t, db.Create(cat).Error)
	post := &domain.CustomerPost{UserID: owner.ID, CategoryID: cat.ID, Title: "t", Status: domain.CustomerPostOpen, IsActive: true}
	require.NoError(t, db.Create(post).Error)
	return owner, post
}

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestAttachToCustomerPost(t *testing.T) {
	svc, storage, db := newTestService(t)
	ctx := context.Background()
	owner, post := seedCustomerPost(t, db)
	p := authz.Principal{UserID: owner.ID, Role: domain.RoleCustomer}

	medium, err := svc.AttachToCustomerPost(ctx, p, post.ID, header("kitchen.jpg", 1024))
	require.NoError(t, err)
	require.NotNil(t, medium.CustomerPostID)
	assert.Equal(t, post.ID, *medium.CustomerPostID)
	assert.Nil(t, medium.WorkerPostID)
	assert.Equal(t, "kitchen.jpg", medium.OriginalName)
	assert.Len(t, storage.saved, 1)

	media, err := svc.ListForCustomerPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, media, 1)
}

func TestAttach_ExtensionAllowList(t *testing.T) {
	svc, _, db := newTestService(t)
	ctx := context.Background()
	owner, post := seedCustomerPost(t, db)
	p := authz.Principal{UserID: owner.ID, Role: domain.RoleCustomer}

	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.gif", "e.mp4", "f.mov", "g.webm"} {
		_, err := svc.AttachToCustomerPost(ctx, p, post.ID, header(name, 100))
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"evil.exe", "doc.pdf", "page.html", "noext"} {
		_, err := svc.AttachToCustomerPost(ctx, p, post.ID, header(name, 100))
		assert.ErrorIs(t, err, ErrInvalidFormat, name)
	}
}

func TestAttach_SizeLimit(t *testing.T) {
	svc, _, db := newTestService(t)
	ctx := context.Background()
	owner, post := seedCustomerPost(t, db)
	p := authz.Principal{UserID: owner.ID, Role: domain.RoleCustomer}

	_, err := svc.AttachToCustomerPost(ctx, p, post.ID, header("huge.mp4", MaxFileSize+1))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestAttach_OwnershipAndExistence(t *testing.T) {
	svc, _, db := newTestService(t)
	ctx := context.Background()
	_, post := seedCustomerPost(t, db)

	stranger := &domain.User{FullName: "S", Email: "s@example.com", PasswordHash: "x", Role: domain.RoleCustomer}
	require.NoError(t, db.Create(stranger).Error)
	sp := authz.Principal{UserID: stranger.ID, Role: domain.RoleCustomer}

	_, err := svc.AttachToCustomerPost(ctx, sp, post.ID, header("a.jpg", 100))
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.AttachToCustomerPost(ctx, sp, 9999, header("a.jpg", 100))
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDetach_RemovesRecordAndFile(t *testing.T) {
	svc, storage, db := newTestService(t)
	ctx := context.Background()
	owner, post := seedCustomerPost(t, db)
	p := authz.Principal{UserID: owner.ID, Role: domain.RoleCustomer}

	medium, err := svc.AttachToCustomerPost(ctx, p, post.ID, header("a.jpg", 100))
	require.NoError(t, err)

	require.NoError(t, svc.Detach(ctx, p, medium.ID))
	assert.Equal(t, []string{medium.FileURL}, storage.removed)

	err = svc.Detach(ctx, p, medium.ID)
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestDiskStorage_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	storage := NewDiskStorage(dir, "/static/uploads")

	// build a real multipart file header through an http request
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	fh := req.MultipartForm.File["file"][0]

	url, err := storage.Save(fh, "posts")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/uploads/posts/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored := filepath.Join(dir, "posts", filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, storage.Remove(url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestSetAvatar(t *testing.T) {
	svc, storage, db := newTestService(t)
	owner, _ := seedCustomerPost(t, db)

	user, err := svc.SetAvatar(context.Background(), owner.ID, header("me.png", 1024))
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/avatars/me.png", user.AvatarURL)
	assert.Empty(t, user.PasswordHash)

	var stored domain.User
	require.NoError(t, db.First(&stored, owner.ID).Error)
	assert.Equal(t, "/static/uploads/avatars/me.png", stored.AvatarURL)

	// Replacing the avatar drops the previous file.
	_, err = svc.SetAvatar(context.Background(), owner.ID, header("new.jpg", 1024))
	require.NoError(t, err)
	assert.Contains(t, storage.removed, "/static/uploads/avatars/me.png")

	_, err = svc.SetAvatar(context.Background(), owner.ID, header("clip.mp4", 1024))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
