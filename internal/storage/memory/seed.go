package memory

import (
	"context"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

// DemoOwnerA and DemoOwnerB own the demo dataset.
const (
	DemoOwnerA = "demo-owner-1"
	DemoOwnerB = "demo-owner-2"
)

// DemoListings is the built-in sample dataset used when SEED_DEMO is on.
func DemoListings() []domain.Listing {
	return []domain.Listing{
		{
			OwnerID:           DemoOwnerA,
			Name:              "Sunrise Premium Hostel",
			Address:           "123 University Ave, College Town, CT 12345",
			CollegeName:       "Central University",
			DistanceToCollege: fptr(0.5),
			Price:             8000,
			Type:              domain.TypeHostel,
			Amenities: []domain.Amenity{
				domain.AmenityWifi, domain.AmenityLaundry, domain.AmenityMessFood,
				domain.AmenityStudyArea, domain.AmenityAC,
			},
			Images: []string{
				"https://placehold.co/600x400.png?text=Hostel+Exterior",
				"https://placehold.co/600x400.png?text=Room+Interior",
				"https://placehold.co/600x400.png?text=Common+Area",
			},
			Description:  "A modern and comfortable hostel for male students, located right next to Central University. Includes three meals a day and high-speed internet.",
			Contact:      domain.Contact{Name: "Mr. John Doe", Phone: "555-1234", Email: "sunrisehostel@example.com"},
			Rating:       fptr(4.5),
			ReviewsCount: iptr(120),
			Availability: domain.AvailabilityAvailable,
			Gender:       domain.GenderMale,
			Rules:        []string{"No smoking indoors", "Quiet hours after 10 PM"},
		},
		{
			OwnerID:           DemoOwnerB,
			Name:              "Scholars PG for Girls",
			Address:           "45 Main Street, College Town, CT 12346",
			CollegeName:       "City College",
			DistanceToCollege: fptr(1.2),
			Price:             6500,
			Type:              domain.TypePG,
			Amenities: []domain.Amenity{
				domain.AmenityWifi, domain.AmenityFurnished, domain.AmenityKitchen, domain.AmenityLaundry,
			},
			Images: []string{
				"https://placehold.co/600x400.png?text=PG+Building",
				"https://placehold.co/600x400.png?text=Shared+Room",
			},
			Description:  "Secure and friendly paying guest accommodation for female students. Shared rooms with attached bath and access to a common kitchen.",
			Contact:      domain.Contact{Name: "Ms. Jane Smith", Email: "scholars.pg@example.com"},
			Rating:       fptr(4.2),
			ReviewsCount: iptr(85),
			Availability: domain.AvailabilityLimited,
			Gender:       domain.GenderFemale,
		},
		{
			OwnerID:           DemoOwnerA,
			Name:              "Campus View Apartments",
			Address:           "789 College Rd, College Town, CT 12347",
			CollegeName:       "Tech Institute",
			DistanceToCollege: fptr(0.8),
			Price:             15000,
			Type:              domain.TypeApartment,
			Amenities: []domain.Amenity{
				domain.AmenityWifi, domain.AmenityKitchen, domain.AmenityParking,
				domain.AmenityFurnished, domain.AmenityAC, domain.AmenityGym,
			},
			Images: []string{
				"https://placehold.co/600x400.png?text=Apartment+Complex",
				"https://placehold.co/600x400.png?text=Living+Room",
				"https://placehold.co/600x400.png?text=Bedroom",
			},
			Description:  "Spacious 2-BHK apartments ideal for students looking to share. Modern amenities and close proximity to Tech Institute.",
			Contact:      domain.Contact{Name: "Campus View Management", Phone: "555-5678"},
			Rating:       fptr(4.8),
			ReviewsCount: iptr(200),
			Availability: domain.AvailabilityAvailable,
			Gender:       domain.GenderCoed,
		},
		{
			OwnerID:           DemoOwnerB,
			Name:              "Budget Friendly Rooms",
			Address:           "10 Old Mill Lane, College Town, CT 12348",
			CollegeName:       "Community College",
			DistanceToCollege: fptr(2.5),
			Price:             4000,
			Type:              domain.TypeRoom,
			Amenities:         []domain.Amenity{domain.AmenityWifi, domain.AmenityFurnished},
			Images: []string{
				"https://placehold.co/600x400.png?text=Room+Exterior",
			},
			Description:  "Affordable single rooms in a shared house. Basic amenities provided. A bit further from campus but well-connected by bus.",
			Contact:      domain.Contact{Name: "Mr. Alex Brown", Phone: "555-8765"},
			Rating:       fptr(3.8),
			ReviewsCount: iptr(45),
			Availability: domain.AvailabilityAvailable,
		},
		{
			OwnerID:           DemoOwnerA,
			Name:              "The Study Nook PG (Co-ed)",
			Address:           "22 Academy St, College Town, CT 12345",
			CollegeName:       "Central University",
			DistanceToCollege: fptr(0.3),
			Price:             7500,
			Type:              domain.TypePG,
			Amenities: []domain.Amenity{
				domain.AmenityWifi, domain.AmenityStudyArea, domain.AmenityMessFood,
				domain.AmenityLaundry, domain.AmenityAC,
			},
			Images: []string{
				"https://placehold.co/600x400.png?text=PG+Front",
				"https://placehold.co/600x400.png?text=Study+Room",
			},
			Description:  "Co-ed PG focused on providing a quiet and conducive environment for studying. Close to Central University. AC rooms available.",
			Contact:      domain.Contact{Name: "The Study Nook Admin", Email: "studynook@example.com"},
			Rating:       fptr(4.0),
			ReviewsCount: iptr(92),
			Availability: domain.AvailabilityLimited,
			Gender:       domain.GenderCoed,
			Rules:        []string{"Strictly no parties", "Visitors allowed only in common areas until 8 PM"},
		},
	}
}

// SeedDemo loads the demo dataset into the repository.
func SeedDemo(ctx context.Context, r *Repo) error {
	for _, l := range DemoListings() {
		if _, err := r.Create(ctx, l); err != nil {
			return err
		}
	}
	return nil
}
