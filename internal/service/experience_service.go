package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ExperienceService struct {
	repo   *repository.ExperienceRepository
	logger *zap.Logger
}

func NewExperienceService(repo *repository.ExperienceRepository, logger *zap.Logger) *ExperienceService {
	return &ExperienceService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ExperienceService) List(ctx context.Context) ([]*models.Experience, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	return entries, nil
}

func (s *ExperienceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	exp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return exp, nil
}

func (s *ExperienceService) Create(ctx context.Context, req *dto.CreateExperienceRequest) (*models.Experience, error) {
	exp := &models.Experience{
		ID:          uuid.New(),
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Description: req.Description,
		StartDate:   req.StartDate.TimeValue(),
		EndDate:     req.EndDate.TimeValue(),
		Learnings:   req.Learnings,
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}

	return exp, nil
}

func (s *ExperienceService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateExperienceRequest) (*models.Experience, error) {
	exp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		exp.CompanyName = *req.CompanyName
	}
	if req.Role != nil {
		exp.Role = *req.Role
	}
	if req.Description != nil {
		exp.Description = req.Description
	}
	if req.StartDate != nil {
		exp.StartDate = req.StartDate.TimeValue()
	}
	if req.EndDate != nil {
		exp.EndDate = req.EndDate.TimeValue()
	}
	if req.Learnings != nil {
		exp.Learnings = req.Learnings
	}

	if err := s.repo.Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}

	return exp, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	return nil
}
