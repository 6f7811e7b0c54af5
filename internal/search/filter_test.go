package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
)

func fptr(f float64) *float64 { return &f }

func sample() []domain.Listing {
	return []domain.Listing{
		{
			ID: "1", Name: "Sunrise Premium Hostel",
			Address:     "123 University Ave, College Town",
			CollegeName: "Central University", DistanceToCollege: fptr(0.5),
			Price: 8000, Type: domain.TypeHostel,
			Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityLaundry, domain.AmenityMessFood, domain.AmenityStudyArea, domain.AmenityAC},
		},
		{
			ID: "2", Name: "Scholars PG for Girls",
			Address:     "45 Main Street, College Town",
			CollegeName: "City College", DistanceToCollege: fptr(1.2),
			Price: 6500, Type: domain.TypePG,
			Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityFurnished, domain.AmenityKitchen, domain.AmenityLaundry},
		},
		{
			ID: "3", Name: "Campus View Apartments",
			Address:     "789 College Rd, College Town",
			CollegeName: "Tech Institute", DistanceToCollege: fptr(0.8),
			Price: 15000, Type: domain.TypeApartment,
			Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityKitchen, domain.AmenityParking, domain.AmenityFurnished, domain.AmenityAC, domain.AmenityGym},
		},
		{
			ID: "4", Name: "Budget Friendly Rooms",
			Address:     "10 Old Mill Lane, College Town",
			CollegeName: "Community College", DistanceToCollege: fptr(2.5),
			Price: 4000, Type: domain.TypeRoom,
			Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityFurnished},
		},
		{
			ID: "5", Name: "The Study Nook PG (Co-ed)",
			Address:     "22 Academy St, College Town",
			CollegeName: "Central University", DistanceToCollege: fptr(0.3),
			Price: 7500, Type: domain.TypePG,
			Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityStudyArea, domain.AmenityMessFood, domain.AmenityLaundry, domain.AmenityAC},
		},
	}
}

func ids(ls []domain.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestFilter_IdentityWhenNoCriteria(t *testing.T) {
	in := sample()
	got := Filter(in, domain.FilterSpec{})
	assert.Equal(t, ids(in), ids(got))
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, domain.FilterSpec{SearchTerm: "anything"})
	assert.Empty(t, got)
}

func TestFilter_PriceRangeInclusive(t *testing.T) {
	got := Filter(sample(), domain.FilterSpec{
		PriceRange: domain.PriceRange{Min: fptr(5000), Max: fptr(8000)},
	})
	// 8000 is included (inclusive bounds), order is input order.
	assert.Equal(t, []string{"1", "2", "5"}, ids(got))
}

func TestFilter_PriceRangeNeedsBothBounds(t *testing.T) {
	// Only one bound set: the price criterion is inactive.
	got := Filter(sample(), domain.FilterSpec{
		PriceRange: domain.PriceRange{Min: fptr(10000)},
	})
	assert.Len(t, got, 5)
}

func TestFilter_PriceScenarioFromSearchScreen(t *testing.T) {
	got := Filter(sample(), domain.FilterSpec{
		PriceRange: domain.PriceRange{Min: fptr(5000), Max: fptr(8000)},
		Type:       "PG",
	})
	assert.Equal(t, []string{"2", "5"}, ids(got))
}

func TestFilter_DistanceExcludesUnknown(t *testing.T) {
	in := sample()
	in[0].DistanceToCollege = nil
	got := Filter(in, domain.FilterSpec{MaxDistanceKM: 1.0})
	// #1 lacks a distance, #2 and #4 are too far.
	assert.Equal(t, []string{"3", "5"}, ids(got))
}

func TestFilter_NegativeDistanceIsNoConstraint(t *testing.T) {
	in := sample()
	in[2].DistanceToCollege = nil
	got := Filter(in, domain.FilterSpec{MaxDistanceKM: -3})
	assert.Len(t, got, 5)
}

func TestFilter_TypeCaseInsensitiveAndSentinels(t *testing.T) {
	got := Filter(sample(), domain.FilterSpec{Type: "hostel"})
	assert.Equal(t, []string{"1"}, ids(got))

	for _, sentinel := range []string{"", "any", "all", "ALL"} {
		got := Filter(sample(), domain.FilterSpec{Type: sentinel})
		assert.Len(t, got, 5, "sentinel %q must not constrain", sentinel)
	}
}

func TestFilter_AmenitySuperset(t *testing.T) {
	got := Filter(sample(), domain.FilterSpec{
		Amenities: []domain.Amenity{domain.AmenityWifi, domain.AmenityAC},
	})
	assert.Equal(t, []string{"1", "3", "5"}, ids(got))
}

func TestFilter_AmenityMonotonic(t *testing.T) {
	in := sample()
	a := Filter(in, domain.FilterSpec{Amenities: []domain.Amenity{domain.AmenityLaundry}})
	ab := Filter(in, domain.FilterSpec{Amenities: []domain.Amenity{domain.AmenityLaundry, domain.AmenityMessFood}})
	// Adding a required amenity can only shrink the result set.
	assert.Subset(t, ids(a), ids(ab))
}

func TestFilter_SearchTermMatchesNameAddressCollege(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"sunrise", []string{"1"}},
		{"ACADEMY ST", []string{"5"}},
		{"central university", []string{"1", "5"}},
		{"nowhere at all", nil},
	}
	for _, tc := range tests {
		got := Filter(sample(), domain.FilterSpec{SearchTerm: tc.term})
		if tc.want == nil {
			assert.Empty(t, got, "term %q", tc.term)
			continue
		}
		assert.Equal(t, tc.want, ids(got), "term %q", tc.term)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sample()
	before := ids(in)
	_ = Filter(in, domain.FilterSpec{Type: "PG", SearchTerm: "pg"})
	assert.Equal(t, before, ids(in))
}
