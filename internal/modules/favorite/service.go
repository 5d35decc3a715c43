package favorite

import (
	"context"
	"errors"

	"servicehub/internal/domain"
	"servicehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	favorites     *repository.FavoriteRepository
	customerPosts *repository.CustomerPostRepository
	workerPosts   *repository.WorkerPostRepository
}

func NewService(
	favorites *repository.FavoriteRepository,
	customerPosts *repository.CustomerPostRepository,
	workerPosts *repository.WorkerPostRepository,
) *Service {
	return &Service{favorites: favorites, customerPosts: customerPosts, workerPosts: workerPosts}
}

func (s *Service) AddCustomerPost(ctx context.Context, userID, postID int64) (*domain.FavoriteCustomerPost, error) {
	if _, err := s.customerPosts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	fav, err := s.favorites.AddCustomerPost(ctx, userID, postID)
	if errors.Is(err, repository.ErrAlreadyFavorite) {
		return nil, ErrDuplicate
	}
	return fav, err
}

func (s *Service) RemoveCustomerPost(ctx context.Context, userID, postID int64) error {
	err := s.favorites.RemoveCustomerPost(ctx, userID, postID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrNotFavorite
	}
	return err
}

func (s *Service) ListCustomerPosts(ctx context.Context, userID int64, page, limit int) ([]domain.FavoriteCustomerPost, int64, error) {
	l, offset := pageToRange(page, limit)
	return s.favorites.ListCustomerPosts(ctx, userID, l, offset)
}

func (s *Service) AddWorkerPost(ctx context.Context, userID, postID int64) (*domain.FavoriteWorkerPost, error) {
	if _, err := s.workerPosts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	fav, err := s.favorites.AddWorkerPost(ctx, userID, postID)
	if errors.Is(err, repository.ErrAlreadyFavorite) {
		return nil, ErrDuplicate
	}
	return fav, err
}

func (s *Service) RemoveWorkerPost(ctx context.Context, userID, postID int64) error {
	err := s.favorites.RemoveWorkerPost(ctx, userID, postID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrNotFavorite
	}
	return err
}

func (s *Service) ListWorkerPosts(ctx context.Context, userID int64, page, limit int) ([]domain.FavoriteWorkerPost, int64, error) {
	l, offset := pageToRange(page, limit)
	return s.favorites.ListWorkerPosts(ctx, userID, l, offset)
}

func pageToRange(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return limit, (page - 1) * limit
}
