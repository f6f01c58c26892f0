package service

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService struct {
	repo   *repository.ContactRepository
	logger *zap.Logger
}

func NewContactService(repo *repository.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ContactService) Create(ctx context.Context, req *dto.CreateContactRequest) (*models.ContactRequest, error) {
	request := &models.ContactRequest{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}

	s.logger.Info("Contact request received", zap.String("id", request.ID.String()))
	return request, nil
}

func (s *ContactService) List(ctx context.Context) ([]*models.ContactRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	return requests, nil
}
