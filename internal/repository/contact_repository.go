package repository

import (
	"context"

	"portfolio-api/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var contactColumns = []string{"id", "name", "email", "message", "created_at"}

type ContactRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewContactRepository(db *pgxpool.Pool, logger *zap.Logger) *ContactRepository {
	return &ContactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ContactRepository) Create(ctx context.Context, req *models.ContactRequest) error {
	query := squirrel.Insert("contact_requests").
		Columns(contactColumns...).
		Values(req.ID, req.Name, req.Email, req.Message, req.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns all contact requests, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]*models.ContactRequest, error) {
	query := squirrel.Select(contactColumns...).
		From("contact_requests").
		OrderBy("created_at DESC").
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

	var requests []*models.ContactRequest
	for rows.Next() {
		var req models.ContactRequest
		if err := rows.Scan(&req.ID, &req.Name, &req.Email, &req.Message, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, &req)
	}

	return requests, rows.Err()
}
