package app

import (
	"context"
	"strings"
	"time"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
)

// MatchService wraps the AI suggestion provider. The provider is opaque,
// possibly slow and possibly failing; every call is timeout-bounded and its
// failure never touches repository state.
type MatchService struct {
	client  domain.SuggestionClient
	timeout time.Duration
}

func NewMatchService(c domain.SuggestionClient, timeout time.Duration) *MatchService {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &MatchService{client: c, timeout: timeout}
}

// Suggest asks the provider for accommodations matching the student's
// budget, preferred amenities and free-text review notes.
func (s *MatchService) Suggest(ctx context.Context, budget float64, amenities []string, reviews string) (domain.MatchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := domain.MatchRequest{
		Budget:               budget,
		AmenitiesPreferences: strings.Join(amenities, ","),
		Reviews:              reviews,
	}
	return s.client.Suggest(ctx, req)
}
