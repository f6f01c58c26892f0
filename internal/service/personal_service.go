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

type PersonalInfoService struct {
	repo   *repository.PersonalInfoRepository
	logger *zap.Logger
}

func NewPersonalInfoService(repo *repository.PersonalInfoRepository, logger *zap.Logger) *PersonalInfoService {
	return &PersonalInfoService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PersonalInfoService) Get(ctx context.Context) (*models.PersonalInfo, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get personal info: %w", err)
	}
	return info, nil
}

// Create inserts the singleton record. Fails with ErrAlreadyExists when a row
// is already present, regardless of payload.
func (s *PersonalInfoService) Create(ctx context.Context, req *dto.CreatePersonalInfoRequest) (*models.PersonalInfo, error) {
	existing, err := s.repo.Get(ctx)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check personal info: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	now := time.Now().UTC()
	info := &models.PersonalInfo{
		ID:              uuid.New(),
		Name:            req.Name,
		Title:           req.Title,
		Place:           req.Place,
		Country:         req.Country,
		Email:           req.Email,
		Phone:           req.Phone,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		GithubURL:       req.GithubURL,
		LinkedinURL:     req.LinkedinURL,
		TwitterURL:      req.TwitterURL,
		WebsiteURL:      req.WebsiteURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to create personal info: %w", err)
	}

	s.logger.Info("Personal info created", zap.String("id", info.ID.String()))
	return info, nil
}

// Update applies the non-nil fields of req to the existing record and
// refreshes updated_at.
func (s *PersonalInfoService) Update(ctx context.Context, req *dto.UpdatePersonalInfoRequest) (*models.PersonalInfo, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get personal info: %w", err)
	}

	if req.Name != nil {
		info.Name = *req.Name
	}
	if req.Title != nil {
		info.Title = req.Title
	}
	if req.Place != nil {
		info.Place = req.Place
	}
	if req.Country != nil {
		info.Country = req.Country
	}
	if req.Email != nil {
		info.Email = *req.Email
	}
	if req.Phone != nil {
		info.Phone = req.Phone
	}
	if req.Bio != nil {
		info.Bio = req.Bio
	}
	if req.ProfileImageURL != nil {
		info.ProfileImageURL = req.ProfileImageURL
	}
	if req.GithubURL != nil {
		info.GithubURL = req.GithubURL
	}
	if req.LinkedinURL != nil {
		info.LinkedinURL = req.LinkedinURL
	}
	if req.TwitterURL != nil {
		info.TwitterURL = req.TwitterURL
	}
	if req.WebsiteURL != nil {
		info.WebsiteURL = req.WebsiteURL
	}
	info.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to update personal info: %w", err)
	}

	return info, nil
}
