package service

import (
	"context"
	"time"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
)

func (s *Service) CreateStore(ctx context.Context, principal port.TokenPayload, store *domain.Store) (*domain.Store, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if store.Name == "" {
		return nil, domain.ErrBadRequest
	}
	return s.repo.CreateStore(ctx, store)
}

func (s *Service) GetStore(ctx context.Context, storeID uint64) (*domain.Store, error) {
	return s.repo.ReadStore(ctx, storeID)
}

func (s *Service) ListStores(ctx context.Context) ([]*domain.Store, error) {
	return s.repo.ListStores(ctx)
}

func (s *Service) UpdateStore(ctx context.Context, principal port.TokenPayload, store *domain.Store) (*domain.Store, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if store.Name == "" {
		return nil, domain.ErrBadRequest
	}
	if _, err := s.repo.ReadStore(ctx, store.ID); err != nil {
		return nil, err
	}
	return s.repo.UpdateStore(ctx, store)
}

func (s *Service) DeleteStore(ctx context.Context, principal port.TokenPayload, storeID uint64) error {
	if !principal.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.DeleteStore(ctx, storeID)
}

func (s *Service) validateMenuItem(item *domain.MenuItem) error {
	if item.Name == "" || item.Stock < 0 {
		return domain.ErrBadRequest
	}
	if item.SmallPrice.IsNeg() || item.LargePrice.IsNeg() {
		return domain.ErrBadRequest
	}
	return nil
}

func (s *Service) CreateMenuItem(ctx context.Context, principal port.TokenPayload, item *domain.MenuItem) (*domain.MenuItem, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := s.validateMenuItem(item); err != nil {
		return nil, err
	}
	if _, err := s.repo.ReadStore(ctx, item.StoreID); err != nil {
		return nil, err
	}
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *Service) GetMenuItem(ctx context.Context, itemID uint64) (*domain.MenuItem, error) {
	return s.repo.ReadMenuItem(ctx, itemID)
}

func (s *Service) ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx)
}

func (s *Service) ListMenuItemsByStore(ctx context.Context, storeID uint64) ([]*domain.MenuItem, error) {
	return s.repo.ListMenuItemsByStore(ctx, storeID)
}

// SearchMenuItems matches the query against item name, description and
// category.
func (s *Service) SearchMenuItems(ctx context.Context, query string) ([]*domain.MenuItem, error) {
	if query == "" {
		return nil, domain.ErrBadRequest
	}
	return s.repo.SearchMenuItems(ctx, query)
}

func (s *Service) UpdateMenuItem(ctx context.Context, principal port.TokenPayload, item *domain.MenuItem) (*domain.MenuItem, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := s.validateMenuItem(item); err != nil {
		return nil, err
	}
	if _, err := s.repo.ReadMenuItem(ctx, item.ID); err != nil {
		return nil, err
	}
	return s.repo.UpdateMenuItem(ctx, item)
}

func (s *Service) DeleteMenuItem(ctx context.Context, principal port.TokenPayload, itemID uint64) error {
	if !principal.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.DeleteMenuItem(ctx, itemID)
}

func (s *Service) CreateReview(ctx context.Context, principal port.TokenPayload, review *domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domain.ErrBadRequest
	}
	if _, err := s.repo.ReadMenuItem(ctx, review.ItemID); err != nil {
		return nil, err
	}

	review.UserID = principal.UserID
	review.ReviewTime = time.Now()
	return s.repo.CreateReview(ctx, review)
}

func (s *Service) ListReviewsByItem(ctx context.Context, itemID uint64) ([]*domain.Review, error) {
	return s.repo.ListReviewsByItem(ctx, itemID)
}

// UpdateReview rewrites rating and comment. Authorship and the reviewed item
// never change.
func (s *Service) UpdateReview(ctx context.Context, principal port.TokenPayload, review *domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domain.ErrBadRequest
	}
	existing, err := s.repo.ReadReview(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && existing.UserID != principal.UserID {
		return nil, domain.ErrForbidden
	}

	existing.Rating = review.Rating
	existing.Comment = review.Comment
	return s.repo.UpdateReview(ctx, existing)
}

func (s *Service) DeleteReview(ctx context.Context, principal port.TokenPayload, reviewID uint64) error {
	review, err := s.repo.ReadReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if !principal.IsAdmin() && review.UserID != principal.UserID {
		return domain.ErrForbidden
	}
	return s.repo.DeleteReview(ctx, reviewID)
}
