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

var experienceColumns = []string{
	"id", "company_name", "role", "description", "start_date", "end_date", "learnings",
}

type ExperienceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExperienceRepository(db *pgxpool.Pool, logger *zap.Logger) *ExperienceRepository {
	return &ExperienceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExperienceRepository) Create(ctx context.Context, exp *models.Experience) error {
	query := squirrel.Insert("experience").
		Columns(experienceColumns...).
		Values(
			exp.ID, exp.CompanyName, exp.Role, exp.Description,
			exp.StartDate, exp.EndDate, exp.Learnings,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	query := squirrel.Select(experienceColumns...).
		From("experience").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var exp models.Experience
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&exp.ID, &exp.CompanyName, &exp.Role, &exp.Description,
		&exp.StartDate, &exp.EndDate, &exp.Learnings,
	)
	if err != nil {
		return nil, err
	}

	return &exp, nil
}

func (r *ExperienceRepository) List(ctx context.Context) ([]*models.Experience, error) {
	query := squirrel.Select(experienceColumns...).
		From("experience").
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

	var entries []*models.Experience
	for rows.Next() {
		var exp models.Experience
		if err := rows.Scan(
			&exp.ID, &exp.CompanyName, &exp.Role, &exp.Description,
			&exp.StartDate, &exp.EndDate, &exp.Learnings,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &exp)
	}

	return entries, rows.Err()
}

func (r *ExperienceRepository) Update(ctx context.Context, exp *models.Experience) error {
	query := squirrel.Update("experience").
		Set("company_name", exp.CompanyName).
		Set("role", exp.Role).
		Set("description", exp.Description).
		Set("start_date", exp.StartDate).
		Set("end_date", exp.EndDate).
		Set("learnings", exp.Learnings).
		Where(squirrel.Eq{"id": exp.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("experience").
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
