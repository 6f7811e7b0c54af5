// Package search implements the pure listing filter and pagination helpers
// consumed by the search screen. Both are stateless and safe for concurrent use.
package search

import (
	"strings"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
)

// Filter narrows listings by spec, AND-composing the active criteria.
// It never errors: malformed spec fields impose no constraint instead of
// rejecting the request. The output is a fresh slice preserving the relative
// input order of the matches; the input is never mutated.
func Filter(listings []domain.Listing, spec domain.FilterSpec) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, spec) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l domain.Listing, spec domain.FilterSpec) bool {
	// Price bounds apply only when both are defined.
	if spec.PriceRange.Min != nil && spec.PriceRange.Max != nil {
		if l.Price < *spec.PriceRange.Min || l.Price > *spec.PriceRange.Max {
			return false
		}
	}

	// A positive distance constraint excludes listings that don't state a
	// distance: closeness can't be proven for them.
	if spec.MaxDistanceKM > 0 {
		if l.DistanceToCollege == nil || *l.DistanceToCollege > spec.MaxDistanceKM {
			return false
		}
	}

	if t := strings.ToLower(spec.Type); t != "" && t != domain.TypeAny && t != "all" {
		if !strings.EqualFold(string(l.Type), t) {
			return false
		}
	}

	if !hasAllAmenities(l.Amenities, spec.Amenities) {
		return false
	}

	if term := strings.ToLower(strings.TrimSpace(spec.SearchTerm)); term != "" {
		if !strings.Contains(strings.ToLower(l.Name), term) &&
			!strings.Contains(strings.ToLower(l.Address), term) &&
			!(l.CollegeName != "" && strings.Contains(strings.ToLower(l.CollegeName), term)) {
			return false
		}
	}

	return true
}

// hasAllAmenities reports whether have is a superset of want.
func hasAllAmenities(have, want []domain.Amenity) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
