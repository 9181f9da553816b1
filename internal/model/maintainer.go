package model

import "time"

// Maintainer availability values. Anything else is rejected at create time.
const (
	AvailabilityFullTime  = "full-time"
	AvailabilityPartTime  = "part-time"
	AvailabilityVolunteer = "volunteer"
)

// ValidAvailability reports whether s is one of the recognized values.
func ValidAvailability(s string) bool {
	return s == AvailabilityFullTime || s == AvailabilityPartTime || s == AvailabilityVolunteer
}

// Maintainer is someone offering to maintain projects.
type Maintainer struct {
	ID               string     `json:"id"`
	GitHubUsername   string     `json:"github_username"`
	Name             string     `json:"name"`
	Bio              string     `json:"bio"`
	Skills           StringList `json:"skills"`
	Languages        StringList `json:"languages"`
	Experience       StringList `json:"experience"`
	Availability     string     `json:"availability"`
	InterestedInPaid bool       `json:"interested_in_paid"`
	PortfolioURL     string     `json:"portfolio_url"`
	UserID           string     `json:"user_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
