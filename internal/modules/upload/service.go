package upload

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"servicehub/internal/authz"
	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"gorm.io/gorm"
)

// MaxFileSize caps a single attachment at 20 MB, enough for short clips.
const MaxFileSize = 20 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".mp4":  true,
	".mov":  true,
	".webm": true,
}

// Storage abstracts where files land; the default is local disk.
type Storage interface {
	Save(file *multipart.FileHeader, subdir string) (string, error)
	Remove(fileURL string) error
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type Service struct {
	media         *repository.MediaRepository
	customerPosts *repository.CustomerPostRepository
	workerPosts   *repository.WorkerPostRepository
	users         *repository.UserRepository
	storage       Storage
}

func NewService(
	media *repository.MediaRepository,
	customerPosts *repository.CustomerPostRepository,
	workerPosts *repository.WorkerPostRepository,
	users *repository.UserRepository,
	storage Storage,
) *Service {
	return &Service{media: media, customerPosts: customerPosts, workerPosts: workerPosts, users: users, storage: storage}
}

// AttachToCustomerPost stores the file and records it against the post.
// Only the post owner (or an admin) may attach media.
func (s *Service) AttachToCustomerPost(ctx context.Context, p authz.Principal, postID int64, file *multipart.FileHeader) (*domain.PostMedium, error) {
	post, err := s.customerPosts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if d := authz.CanAct(p, authz.OpCustomerPostEdit, post); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.attach(ctx, file, "posts", &postID, nil)
}

func (s *Service) AttachToWorkerPost(ctx context.Context, p authz.Principal, postID int64, file *multipart.FileHeader) (*domain.PostMedium, error) {
	post, err := s.workerPosts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if d := authz.CanAct(p, authz.OpWorkerPostEdit, post); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.attach(ctx, file, "posts", nil, &postID)
}

func (s *Service) attach(ctx context.Context, file *multipart.FileHeader, subdir string, customerPostID, workerPostID *int64) (*domain.PostMedium, error) {
	if err := validate(file); err != nil {
		return nil, err
	}

	fileURL, err := s.storage.Save(file, subdir)
	if err != nil {
		return nil, err
	}

	medium := &domain.PostMedium{
		CustomerPostID: customerPostID,
		WorkerPostID:   workerPostID,
		FileURL:        fileURL,
		OriginalName:   file.Filename,
	}
	if err := s.media.Create(ctx, medium); err != nil {
		// storage and DB must not drift apart
		_ = s.storage.Remove(fileURL)
		return nil, err
	}
	return medium, nil
}

// Detach removes the record and then the file. The ownership check walks
// through the post the medium is attached to.
func (s *Service) Detach(ctx context.Context, p authz.Principal, mediaID int64) error {
	medium, err := s.media.GetByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMediaNotFound
		}
		return err
	}

	switch {
	case medium.CustomerPostID != nil:
		post, err := s.customerPosts.GetByID(ctx, *medium.CustomerPostID)
		if err != nil {
			return err
		}
		if d := authz.CanAct(p, authz.OpCustomerPostEdit, post); !d.Allowed {
			return ErrForbidden
		}
	case medium.WorkerPostID != nil:
		post, err := s.workerPosts.GetByID(ctx, *medium.WorkerPostID)
		if err != nil {
			return err
		}
		if d := authz.CanAct(p, authz.OpWorkerPostEdit, post); !d.Allowed {
			return ErrForbidden
		}
	default:
		return ErrMissingTarget
	}

	if err := s.media.Delete(ctx, mediaID); err != nil {
		return err
	}
	return s.storage.Remove(medium.FileURL)
}

// SetAvatar stores a profile picture and points the caller's account at it.
// The previous file is removed only after the new link is saved.
func (s *Service) SetAvatar(ctx context.Context, userID int64, file *multipart.FileHeader) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if file.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
		return nil, ErrInvalidFormat
	}

	fileURL, err := s.storage.Save(file, "avatars")
	if err != nil {
		return nil, err
	}

	previous := user.AvatarURL
	user.AvatarURL = fileURL
	if err := s.users.Update(ctx, user); err != nil {
		_ = s.storage.Remove(fileURL)
		return nil, err
	}
	if previous != "" {
		_ = s.storage.Remove(previous)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListForCustomerPost(ctx context.Context, postID int64) ([]domain.PostMedium, error) {
	return s.media.ListByCustomerPost(ctx, postID)
}

func (s *Service) ListForWorkerPost(ctx context.Context, postID int64) ([]domain.PostMedium, error) {
	return s.media.ListByWorkerPost(ctx, postID)
}

func validate(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return ErrInvalidFormat
	}
	return nil
}
