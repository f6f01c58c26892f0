package dto

import (
	"time"

	"portfolio-api/internal/models"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description *string  `json:"description"`
	TechStack   []string `json:"tech_stack"`
	GithubURL   *string  `json:"github_url" validate:"omitempty,max=500"`
	LiveURL     *string  `json:"live_url" validate:"omitempty,max=500"`
	ProjectType string   `json:"project_type" validate:"omitempty,oneof=personal professional"`
}

type UpdateProjectRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	TechStack   []string `json:"tech_stack"`
	GithubURL   *string  `json:"github_url" validate:"omitempty,max=500"`
	LiveURL     *string  `json:"live_url" validate:"omitempty,max=500"`
	ProjectType *string  `json:"project_type" validate:"omitempty,oneof=personal professional"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	GithubURL   *string   `json:"github_url"`
	LiveURL     *string   `json:"live_url"`
	ProjectType string    `json:"project_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewProjectResponse(m *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		TechStack:   m.TechStack,
		GithubURL:   m.GithubURL,
		LiveURL:     m.LiveURL,
		ProjectType: string(m.ProjectType),
		CreatedAt:   m.CreatedAt,
	}
}

func NewProjectResponseList(projects []*models.Project) []*ProjectResponse {
	out := make([]*ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
