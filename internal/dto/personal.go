package dto

import (
	"time"

	"portfolio-api/internal/models"
)

type CreatePersonalInfoRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=255"`
	Title           *string `json:"title" validate:"omitempty,max=255"`
	Place           *string `json:"place" validate:"omitempty,max=255"`
	Country         *string `json:"country" validate:"omitempty,max=100"`
	Email           string  `json:"email" validate:"required,email,max=255"`
	Phone           *string `json:"phone" validate:"omitempty,max=50"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,max=500"`
	GithubURL       *string `json:"github_url" validate:"omitempty,max=500"`
	LinkedinURL     *string `json:"linkedin_url" validate:"omitempty,max=500"`
	TwitterURL      *string `json:"twitter_url" validate:"omitempty,max=500"`
	WebsiteURL      *string `json:"website_url" validate:"omitempty,max=500"`
}

// UpdatePersonalInfoRequest supports partial updates: only non-nil fields are
// applied.
type UpdatePersonalInfoRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=255"`
	Title           *string `json:"title" validate:"omitempty,max=255"`
	Place           *string `json:"place" validate:"omitempty,max=255"`
	Country         *string `json:"country" validate:"omitempty,max=100"`
	Email           *string `json:"email" validate:"omitempty,email,max=255"`
	Phone           *string `json:"phone" validate:"omitempty,max=50"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,max=500"`
	GithubURL       *string `json:"github_url" validate:"omitempty,max=500"`
	LinkedinURL     *string `json:"linkedin_url" validate:"omitempty,max=500"`
	TwitterURL      *string `json:"twitter_url" validate:"omitempty,max=500"`
	WebsiteURL      *string `json:"website_url" validate:"omitempty,max=500"`
}

type PersonalInfoResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Title           *string   `json:"title"`
	Place           *string   `json:"place"`
	Country         *string   `json:"country"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Bio             *string   `json:"bio"`
	ProfileImageURL *string   `json:"profile_image_url"`
	GithubURL       *string   `json:"github_url"`
	LinkedinURL     *string   `json:"linkedin_url"`
	TwitterURL      *string   `json:"twitter_url"`
	WebsiteURL      *string   `json:"website_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewPersonalInfoResponse(m *models.PersonalInfo) *PersonalInfoResponse {
	return &PersonalInfoResponse{
		ID:              m.ID.String(),
		Name:            m.Name,
		Title:           m.Title,
		Place:           m.Place,
		Country:         m.Country,
		Email:           m.Email,
		Phone:           m.Phone,
		Bio:             m.Bio,
		ProfileImageURL: m.ProfileImageURL,
		GithubURL:       m.GithubURL,
		LinkedinURL:     m.LinkedinURL,
		TwitterURL:      m.TwitterURL,
		WebsiteURL:      m.WebsiteURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
