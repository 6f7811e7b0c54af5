package domain

// ListingType is the closed set of accommodation kinds.
type ListingType string

const (
	TypePG        ListingType = "PG"
	TypeHostel    ListingType = "Hostel"
	TypeApartment ListingType = "Apartment"
	TypeRoom      ListingType = "Room"
)

// TypeAny is the FilterSpec sentinel meaning "no type constraint".
// "all" is accepted as an alias for compatibility with the search UI.
const TypeAny = "any"

// Amenity values match the search UI's multi-select ids.
type Amenity string

const (
	AmenityWifi      Amenity = "wifi"
	AmenityLaundry   Amenity = "laundry"
	AmenityParking   Amenity = "parking"
	AmenityKitchen   Amenity = "kitchen"
	AmenityAC        Amenity = "ac"
	AmenityFurnished Amenity = "furnished"
	AmenityGym       Amenity = "gym"
	AmenityStudyArea Amenity = "study_area"
	AmenityMessFood  Amenity = "mess_food"
)

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityLimited   Availability = "limited"
	AvailabilityFull      Availability = "full"
)

// Gender is meaningful only for PG and Hostel listings.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderCoed   Gender = "co-ed"
)

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Listing is a rentable accommodation near a college.
type Listing struct {
	ID                string       `json:"id"`
	OwnerID           string       `json:"ownerId"`
	Name              string       `json:"name"`
	Address           string       `json:"address"`
	Description       string       `json:"description"`
	CollegeName       string       `json:"collegeName,omitempty"`
	DistanceToCollege *float64     `json:"distanceToCollege,omitempty"` // km
	Price             float64      `json:"price"`                       // per month, whole currency units
	Type              ListingType  `json:"type"`
	Amenities         []Amenity    `json:"amenities"`
	Images            []string     `json:"images"` // first entry is the cover image
	Contact           Contact      `json:"contact"`
	Rating            *float64     `json:"rating,omitempty"` // 0-5
	ReviewsCount      *int         `json:"reviewsCount,omitempty"`
	Availability      Availability `json:"availability"`
	Gender            Gender       `json:"gender,omitempty"`
	Rules             []string     `json:"rules,omitempty"`
}

func validType(t ListingType) bool {
	switch t {
	case TypePG, TypeHostel, TypeApartment, TypeRoom:
		return true
	}
	return false
}

func validAmenity(a Amenity) bool {
	switch a {
	case AmenityWifi, AmenityLaundry, AmenityParking, AmenityKitchen, AmenityAC,
		AmenityFurnished, AmenityGym, AmenityStudyArea, AmenityMessFood:
		return true
	}
	return false
}

func validAvailability(a Availability) bool {
	switch a {
	case AvailabilityAvailable, AvailabilityLimited, AvailabilityFull:
		return true
	}
	return false
}

func validGender(g Gender) bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderCoed:
		return true
	}
	return false
}

// Validate checks the data-model invariants enforced before any write.
func (l Listing) Validate() error {
	if l.Name == "" {
		return validationf("name is required")
	}
	if l.Address == "" {
		return validationf("address is required")
	}
	if !(l.Price > 0) {
		return validationf("price must be positive, got %v", l.Price)
	}
	if !validType(l.Type) {
		return validationf("unknown listing type %q", l.Type)
	}
	seen := make(map[Amenity]bool, len(l.Amenities))
	for _, a := range l.Amenities {
		if !validAmenity(a) {
			return validationf("unknown amenity %q", a)
		}
		if seen[a] {
			return validationf("duplicate amenity %q", a)
		}
		seen[a] = true
	}
	if len(l.Images) == 0 {
		return validationf("at least one image is required")
	}
	if l.Contact.Name == "" {
		return validationf("contact name is required")
	}
	if l.DistanceToCollege != nil && *l.DistanceToCollege < 0 {
		return validationf("distanceToCollege must be >= 0, got %v", *l.DistanceToCollege)
	}
	if l.Rating != nil && (*l.Rating < 0 || *l.Rating > 5) {
		return validationf("rating must be within 0..5, got %v", *l.Rating)
	}
	if l.ReviewsCount != nil && *l.ReviewsCount < 0 {
		return validationf("reviewsCount must be >= 0, got %d", *l.ReviewsCount)
	}
	if !validAvailability(l.Availability) {
		return validationf("unknown availability %q", l.Availability)
	}
	if !validGender(l.Gender) {
		return validationf("unknown gender %q", l.Gender)
	}
	return nil
}

// Clone returns a deep copy so repository consumers never alias stored state.
func (l Listing) Clone() Listing {
	out := l
	if l.DistanceToCollege != nil {
		d := *l.DistanceToCollege
		out.DistanceToCollege = &d
	}
	if l.Rating != nil {
		r := *l.Rating
		out.Rating = &r
	}
	if l.ReviewsCount != nil {
		n := *l.ReviewsCount
		out.ReviewsCount = &n
	}
	if l.Amenities != nil {
		out.Amenities = append([]Amenity(nil), l.Amenities...)
	}
	if l.Images != nil {
		out.Images = append([]string(nil), l.Images...)
	}
	if l.Rules != nil {
		out.Rules = append([]string(nil), l.Rules...)
	}
	return out
}
