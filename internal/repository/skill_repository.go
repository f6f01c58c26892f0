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

var skillColumns = []string{"id", "name", "category", "proficiency_level", "is_hobby"}

type SkillRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSkillRepository(db *pgxpool.Pool, logger *zap.Logger) *SkillRepository {
	return &SkillRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := squirrel.Insert("skills").
		Columns(skillColumns...).
		Values(skill.ID, skill.Name, skill.Category, skill.ProficiencyLevel, skill.IsHobby).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	query := squirrel.Select(skillColumns...).
		From("skills").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var skill models.Skill
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&skill.ID, &skill.Name, &skill.Category, &skill.ProficiencyLevel, &skill.IsHobby,
	)
	if err != nil {
		return nil, err
	}

	return &skill, nil
}

// List returns all skills, optionally filtered by category when category is
// non-empty.
func (r *SkillRepository) List(ctx context.Context, category string) ([]*models.Skill, error) {
	query := squirrel.Select(skillColumns...).
		From("skills").
		PlaceholderFormat(squirrel.Dollar)
	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
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

	var skills []*models.Skill
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(
			&skill.ID, &skill.Name, &skill.Category, &skill.ProficiencyLevel, &skill.IsHobby,
		); err != nil {
			return nil, err
		}
		skills = append(skills, &skill)
	}

	return skills, rows.Err()
}

func (r *SkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	query := squirrel.Update("skills").
		Set("name", skill.Name).
		Set("category", skill.Category).
		Set("proficiency_level", skill.ProficiencyLevel).
		Set("is_hobby", skill.IsHobby).
		Where(squirrel.Eq{"id": skill.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("skills").
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
