package app

import (
	"context"
	"fmt"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
)

// CommandService handles owner-management mutations. Every path that changes
// a record also evicts its cache entry so readers never see a stale detail.
type CommandService struct {
	repo  domain.ListingRepository
	cache domain.Cache
}

func NewCommandService(r domain.ListingRepository, c domain.Cache) *CommandService {
	return &CommandService{repo: r, cache: c}
}

// CreateListing stores a listing on behalf of ownerID. The owner always comes
// from the authenticated session, never from the request body.
func (s *CommandService) CreateListing(ctx context.Context, ownerID string, l domain.Listing) (domain.Listing, error) {
	if ownerID == "" {
		return domain.Listing{}, fmt.Errorf("%w: owner id is required", domain.ErrValidation)
	}
	l.OwnerID = ownerID
	return s.repo.Create(ctx, l)
}

// UpdateListing replaces the mutable fields of the owner's listing.
// Updating someone else's listing fails with ErrForbidden.
func (s *CommandService) UpdateListing(ctx context.Context, ownerID, id string, patch domain.Listing) (domain.Listing, error) {
	if err := s.checkOwnership(ctx, ownerID, id); err != nil {
		return domain.Listing{}, err
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Listing{}, err
	}
	_ = s.cache.Del(ctx, listingKey(id))
	return updated, nil
}

func (s *CommandService) DeleteListing(ctx context.Context, ownerID, id string) error {
	if err := s.checkOwnership(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, listingKey(id))
	return nil
}

func (s *CommandService) checkOwnership(ctx context.Context, ownerID, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		return fmt.Errorf("listing %s: %w", id, domain.ErrForbidden)
	}
	return nil
}
