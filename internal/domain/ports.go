package domain

import "context"

type ListingRepository interface {
	// Write paths
	Create(ctx context.Context, l Listing) (Listing, error)
	Update(ctx context.Context, id string, patch Listing) (Listing, error)
	Delete(ctx context.Context, id string) error

	// Read paths
	GetByID(ctx context.Context, id string) (Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Listing, error)
	ListAll(ctx context.Context) ([]Listing, error)
}

type SuggestionClient interface {
	Suggest(ctx context.Context, req MatchRequest) (MatchResult, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Queries & read models

// PriceRange bounds are inclusive; the constraint applies only when both are set.
type PriceRange struct {
	Min *float64
	Max *float64
}

// FilterSpec is built fresh per search request and never mutated afterwards.
// The zero value is the identity filter: every field has an explicit
// "no constraint" representation.
type FilterSpec struct {
	PriceRange    PriceRange
	MaxDistanceKM float64 // <= 0 means no constraint
	Type          string  // "", "any" or "all" mean no constraint
	Amenities     []Amenity
	SearchTerm    string
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SearchPage struct {
	Items    []Listing `json:"items"`
	Total    int       `json:"total"` // matches before pagination
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	// MapCenter is the resolved location of the first result's college,
	// or the country-center fallback.
	MapCenter Coords `json:"mapCenter"`
}
