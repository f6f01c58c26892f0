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

type SkillService struct {
	repo   *repository.SkillRepository
	logger *zap.Logger
}

func NewSkillService(repo *repository.SkillRepository, logger *zap.Logger) *SkillService {
	return &SkillService{
		repo:   repo,
		logger: logger,
	}
}

func (s *SkillService) List(ctx context.Context, category string) ([]*models.Skill, error) {
	skills, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

func (s *SkillService) GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) Create(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error) {
	skill := &models.Skill{
		ID:               uuid.New(),
		Name:             req.Name,
		Category:         models.SkillCategory(req.Category),
		ProficiencyLevel: req.ProficiencyLevel,
		IsHobby:          req.IsHobby,
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSkillRequest) (*models.Skill, error) {
	skill, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		skill.Category = models.SkillCategory(*req.Category)
	}
	if req.ProficiencyLevel != nil {
		skill.ProficiencyLevel = req.ProficiencyLevel
	}
	if req.IsHobby != nil {
		skill.IsHobby = *req.IsHobby
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}
