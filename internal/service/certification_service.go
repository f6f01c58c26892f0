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

type CertificationService struct {
	repo   *repository.CertificationRepository
	logger *zap.Logger
}

func NewCertificationService(repo *repository.CertificationRepository, logger *zap.Logger) *CertificationService {
	return &CertificationService{
		repo:   repo,
		logger: logger,
	}
}

func (s *CertificationService) List(ctx context.Context) ([]*models.Certification, error) {
	certs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	return certs, nil
}

func (s *CertificationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Certification, error) {
	cert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get certification: %w", err)
	}
	return cert, nil
}

func (s *CertificationService) Create(ctx context.Context, req *dto.CreateCertificationRequest) (*models.Certification, error) {
	cert := &models.Certification{
		ID:            uuid.New(),
		Title:         req.Title,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate.TimeValue(),
		ExpiryDate:    req.ExpiryDate.TimeValue(),
		CredentialURL: req.CredentialURL,
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, fmt.Errorf("failed to create certification: %w", err)
	}

	return cert, nil
}

func (s *CertificationService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCertificationRequest) (*models.Certification, error) {
	cert, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		cert.Title = *req.Title
	}
	if req.Issuer != nil {
		cert.Issuer = *req.Issuer
	}
	if req.IssueDate != nil {
		cert.IssueDate = req.IssueDate.TimeValue()
	}
	if req.ExpiryDate != nil {
		cert.ExpiryDate = req.ExpiryDate.TimeValue()
	}
	if req.CredentialURL != nil {
		cert.CredentialURL = req.CredentialURL
	}

	if err := s.repo.Update(ctx, cert); err != nil {
		return nil, fmt.Errorf("failed to update certification: %w", err)
	}

	return cert, nil
}

func (s *CertificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete certification: %w", err)
	}
	return nil
}
