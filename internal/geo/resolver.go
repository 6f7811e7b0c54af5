// Package geo resolves college names to map coordinates for the map view.
package geo

import (
	"strings"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
)

// DefaultCoords is the country-center fallback used whenever a name
// cannot be resolved.
var DefaultCoords = domain.Coords{Lat: 20.5937, Lng: 78.9629}

type entry struct {
	name   string // lowercase key
	coords domain.Coords
}

// Ordered on purpose: substring matching takes the first entry that is
// contained in the query, so iteration order is part of the contract.
var collegeTable = []entry{
	{"central university", domain.Coords{Lat: 28.6139, Lng: 77.2090}},
	{"city college", domain.Coords{Lat: 19.0760, Lng: 72.8777}},
	{"tech institute", domain.Coords{Lat: 12.9716, Lng: 77.5946}},
}

// Resolve maps a college name to coordinates. It always succeeds:
// exact match first, then the first table entry whose key is a substring
// of the normalized name, then the fixed default. Matching is lossy by
// contract; do not substitute a longest- or best-match policy.
func Resolve(name string) domain.Coords {
	if name == "" {
		return DefaultCoords
	}
	normalized := strings.ToLower(name)
	for _, e := range collegeTable {
		if e.name == normalized {
			return e.coords
		}
	}
	for _, e := range collegeTable {
		if strings.Contains(normalized, e.name) {
			return e.coords
		}
	}
	return DefaultCoords
}
