package search

import "github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"

// DefaultPageSize matches the search screen's items-per-page.
const DefaultPageSize = 9

// Page windows a filtered result set with cumulative "load more" semantics:
// page n returns elements [0, pageSize*n), so each increment of pageNumber
// extends the previous window rather than replacing it. Callers must reset
// pageNumber to 1 whenever the filter changes. Out-of-range arguments are
// clamped, never rejected.
func Page(filtered []domain.Listing, pageSize, pageNumber int) []domain.Listing {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	// Compare by division so huge page numbers clamp to the full set instead
	// of overflowing the multiplication into a negative length.
	end := len(filtered)
	if pageNumber <= len(filtered)/pageSize {
		end = pageSize * pageNumber
	}
	out := make([]domain.Listing, end)
	copy(out, filtered[:end])
	return out
}
