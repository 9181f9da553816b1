// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// GitHub OAuth is the only identity provider, so the external identifier is
// the GitHub user ID. We still generate our own internal string ID (uuid) so
// primary keys aren't tied to a third party's numbering scheme.
//
// GitHubID is a string, not an integer: it is an opaque identifier on the
// wire and in the users table, and clients POST it as a string.
//
// Email may be empty — GitHub hides it unless the user opts in. We use the
// empty string as the zero value rather than a nullable pointer; a user
// created before their email was visible gets it backfilled on a later login.
type User struct {
	ID             string    `json:"id"`
	GitHubID       string    `json:"github_id"`
	GitHubUsername string    `json:"github_username"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
