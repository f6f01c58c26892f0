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

var projectColumns = []string{
	"id", "title", "description", "tech_stack", "github_url", "live_url",
	"project_type", "created_at",
}

type ProjectRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(db *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := squirrel.Insert("projects").
		Columns(projectColumns...).
		Values(
			project.ID, project.Title, project.Description, project.TechStack,
			project.GithubURL, project.LiveURL, project.ProjectType, project.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := squirrel.Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var project models.Project
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&project.ID, &project.Title, &project.Description, &project.TechStack,
		&project.GithubURL, &project.LiveURL, &project.ProjectType, &project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// List returns all projects, optionally filtered by type when projectType is
// non-empty.
func (r *ProjectRepository) List(ctx context.Context, projectType string) ([]*models.Project, error) {
	query := squirrel.Select(projectColumns...).
		From("projects").
		PlaceholderFormat(squirrel.Dollar)
	if projectType != "" {
		query = query.Where(squirrel.Eq{"project_type": projectType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID, &project.Title, &project.Description, &project.TechStack,
			&project.GithubURL, &project.LiveURL, &project.ProjectType, &project.CreatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := squirrel.Update("projects").
		Set("title", project.Title).
		Set("description", project.Description).
		Set("tech_stack", project.TechStack).
		Set("github_url", project.GithubURL).
		Set("live_url", project.LiveURL).
		Set("project_type", project.ProjectType).
		Where(squirrel.Eq{"id": project.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("projects").
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
