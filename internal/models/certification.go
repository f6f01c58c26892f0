package models

import (
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID            uuid.UUID  `db:"id"`
	Title         string     `db:"title"`
	Issuer        string     `db:"issuer"`
	IssueDate     *time.Time `db:"issue_date"`
	ExpiryDate    *time.Time `db:"expiry_date"`
	CredentialURL *string    `db:"credential_url"`
}
