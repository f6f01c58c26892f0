package dto

import "portfolio-api/internal/models"

type CreateSkillRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	Category         string `json:"category" validate:"required,oneof=backend frontend devops other"`
	ProficiencyLevel *int   `json:"proficiency_level" validate:"omitempty,gte=1,lte=100"`
	IsHobby          bool   `json:"is_hobby"`
}

type UpdateSkillRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	Category         *string `json:"category" validate:"omitempty,oneof=backend frontend devops other"`
	ProficiencyLevel *int    `json:"proficiency_level" validate:"omitempty,gte=1,lte=100"`
	IsHobby          *bool   `json:"is_hobby"`
}

type SkillResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel *int   `json:"proficiency_level"`
	IsHobby          bool   `json:"is_hobby"`
}

func NewSkillResponse(m *models.Skill) *SkillResponse {
	return &SkillResponse{
		ID:               m.ID.String(),
		Name:             m.Name,
		Category:         string(m.Category),
		ProficiencyLevel: m.ProficiencyLevel,
		IsHobby:          m.IsHobby,
	}
}

func NewSkillResponseList(skills []*models.Skill) []*SkillResponse {
	out := make([]*SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, NewSkillResponse(s))
	}
	return out
}
