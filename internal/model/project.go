package model

import "time"

// Project statuses. A project starts open; there are no transition endpoints
// yet, so matched/closed only appear if set directly in the store.
const (
	ProjectStatusOpen    = "open"
	ProjectStatusMatched = "matched"
	ProjectStatusClosed  = "closed"
)

// Project is an open-source project looking for a maintainer.
//
// Compensation fields are flattened into the row (amount/currency/description)
// and are zero-valued when the project is unpaid.
type Project struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	Description             string     `json:"description"`
	RepositoryURL           string     `json:"repository_url"`
	Languages               StringList `json:"languages"`
	MaintainerRequirements  string     `json:"maintainer_requirements"`
	IsPaid                  bool       `json:"is_paid"`
	CompensationAmount      float64    `json:"compensation_amount"`
	CompensationCurrency    string     `json:"compensation_currency"`
	CompensationDescription string     `json:"compensation_description"`
	OwnerID                 string     `json:"owner_id"`
	Status                  string     `json:"status"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}
