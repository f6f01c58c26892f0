package dto

import "portfolio-api/internal/models"

type CreateExperienceRequest struct {
	CompanyName string  `json:"company_name" validate:"required,min=1,max=255"`
	Role        string  `json:"role" validate:"required,min=1,max=255"`
	Description *string `json:"description"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	Learnings   *string `json:"learnings"`
}

type UpdateExperienceRequest struct {
	CompanyName *string `json:"company_name" validate:"omitempty,min=1,max=255"`
	Role        *string `json:"role" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	Learnings   *string `json:"learnings"`
}

type ExperienceResponse struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"company_name"`
	Role        string  `json:"role"`
	Description *string `json:"description"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	Learnings   *string `json:"learnings"`
}

func NewExperienceResponse(m *models.Experience) *ExperienceResponse {
	return &ExperienceResponse{
		ID:          m.ID.String(),
		CompanyName: m.CompanyName,
		Role:        m.Role,
		Description: m.Description,
		StartDate:   DateOf(m.StartDate),
		EndDate:     DateOf(m.EndDate),
		Learnings:   m.Learnings,
	}
}

func NewExperienceResponseList(entries []*models.Experience) []*ExperienceResponse {
	out := make([]*ExperienceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewExperienceResponse(e))
	}
	return out
}
