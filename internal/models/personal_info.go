package models

import (
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is a singleton record: the application enforces at most one row.
type PersonalInfo struct {
	ID              uuid.UUID `db:"id"`
	Name            string    `db:"name"`
	Title           *string   `db:"title"`
	Place           *string   `db:"place"`
	Country         *string   `db:"country"`
	Email           string    `db:"email"`
	Phone           *string   `db:"phone"`
	Bio             *string   `db:"bio"`
	ProfileImageURL *string   `db:"profile_image_url"`
	GithubURL       *string   `db:"github_url"`
	LinkedinURL     *string   `db:"linkedin_url"`
	TwitterURL      *string   `db:"twitter_url"`
	WebsiteURL      *string   `db:"website_url"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
