package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProjectService struct {
	repo   *repository.ProjectRepository
	logger *zap.Logger
}

func NewProjectService(repo *repository.ProjectRepository, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProjectService) List(ctx context.Context, projectType string) ([]*models.Project, error) {
	projects, err := s.repo.List(ctx, projectType)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	projectType := models.ProjectTypePersonal
	if req.ProjectType != "" {
		projectType = models.ProjectType(req.ProjectType)
	}

	project := &models.Project{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		TechStack:   normalizeTechStack(req.TechStack),
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
		ProjectType: projectType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// normalizeTechStack keeps an omitted tech stack as an empty list. A nil
// slice would reach the driver as SQL NULL and trip the column's NOT NULL
// constraint.
func normalizeTechStack(stack []string) []string {
	if stack == nil {
		return []string{}
	}
	return stack
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.TechStack != nil {
		project.TechStack = req.TechStack
	}
	if req.GithubURL != nil {
		project.GithubURL = req.GithubURL
	}
	if req.LiveURL != nil {
		project.LiveURL = req.LiveURL
	}
	if req.ProjectType != nil {
		project.ProjectType = models.ProjectType(*req.ProjectType)
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
