package domain

// MatchRequest is the payload sent to the AI suggestion provider.
type MatchRequest struct {
	Budget float64 `json:"budget"`
	// AmenitiesPreferences is a comma-joined list, the format the provider expects.
	AmenitiesPreferences string `json:"amenitiesPreferences"`
	Reviews              string `json:"reviews"`
}

type MatchResult struct {
	AccommodationSuggestions []string `json:"accommodationSuggestions"`
	Reasoning                string   `json:"reasoning"`
}
