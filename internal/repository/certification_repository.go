package repository

import (
	"context"

	"portfolio-api/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var certificationColumns = []string{"id", "title", "issuer", "issue_date", "expiry_date", "credential_url"}

type CertificationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCertificationRepository(db *pgxpool.Pool, logger *zap.Logger) *CertificationRepository {
	return &CertificationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CertificationRepository) Create(ctx context.Context, cert *models.Certification) error {
	query := squirrel.Insert("certifications").
		Columns(certificationColumns...).
		Values(cert.ID, cert.Title, cert.Issuer, cert.IssueDate, cert.ExpiryDate, cert.CredentialURL).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CertificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Certification, error) {
	query := squirrel.Select(certificationColumns...).
		From("certifications").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var cert models.Certification
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&cert.ID, &cert.Title, &cert.Issuer, &cert.IssueDate, &cert.ExpiryDate, &cert.CredentialURL,
	)
	if err != nil {
		return nil, err
	}

	return &cert, nil
}

func (r *CertificationRepository) List(ctx context.Context) ([]*models.Certification, error) {
	query := squirrel.Select(certificationColumns...).
		From("certifications").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []*models.Certification
	for rows.Next() {
		var cert models.Certification
		if err := rows.Scan(
			&cert.ID, &cert.Title, &cert.Issuer, &cert.IssueDate, &cert.ExpiryDate, &cert.CredentialURL,
		); err != nil {
			return nil, err
		}
		certs = append(certs, &cert)
	}

	return certs, rows.Err()
}

func (r *CertificationRepository) Update(ctx context.Context, cert *models.Certification) error {
	query := squirrel.Update("certifications").
		Set("title", cert.Title).
		Set("issuer", cert.Issuer).
		Set("issue_date", cert.IssueDate).
		Set("expiry_date", cert.ExpiryDate).
		Set("credential_url", cert.CredentialURL).
		Where(squirrel.Eq{"id": cert.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("certifications").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
