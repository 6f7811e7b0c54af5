package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/geo"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/search"
)

type QueryService struct {
	repo     domain.ListingRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ListingRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func listingKey(id string) string { return fmt.Sprintf("listing:%s", id) }

func (s *QueryService) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	key := listingKey(id)
	var l domain.Listing
	if ok, _ := s.cache.Get(ctx, key, &l); ok {
		return l, nil
	}
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	_ = s.cache.Set(ctx, key, l, int(s.cacheTTL.Seconds()))
	return l, nil
}

// Search narrows the full collection by spec, then windows the result with
// load-more pagination. MapCenter follows the first match's college so the
// map view is centered on something relevant.
func (s *QueryService) Search(ctx context.Context, spec domain.FilterSpec, pageSize, pageNumber int) (domain.SearchPage, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.SearchPage{}, err
	}

	filtered := search.Filter(all, spec)

	college := ""
	if len(filtered) > 0 {
		college = filtered[0].CollegeName
	}

	if pageSize < 1 {
		pageSize = search.DefaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	return domain.SearchPage{
		Items:     search.Page(filtered, pageSize, pageNumber),
		Total:     len(filtered),
		Page:      pageNumber,
		PageSize:  pageSize,
		MapCenter: geo.Resolve(college),
	}, nil
}

func (s *QueryService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
