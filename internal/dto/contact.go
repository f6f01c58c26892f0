package dto

import (
	"time"

	"portfolio-api/internal/models"
)

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message" validate:"required,min=10"`
}

type ContactRequestResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactRequestResponse(m *models.ContactRequest) *ContactRequestResponse {
	return &ContactRequestResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func NewContactRequestResponseList(requests []*models.ContactRequest) []*ContactRequestResponse {
	out := make([]*ContactRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewContactRequestResponse(r))
	}
	return out
}
