package repository

import (
	"context"

	"portfolio-api/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var personalInfoColumns = []string{
	"id", "name", "title", "place", "country", "email", "phone", "bio",
	"profile_image_url", "github_url", "linkedin_url", "twitter_url",
	"website_url", "created_at", "updated_at",
}

type PersonalInfoRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPersonalInfoRepository(db *pgxpool.Pool, logger *zap.Logger) *PersonalInfoRepository {
	return &PersonalInfoRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the singleton personal info row. pgx.ErrNoRows when none exists.
func (r *PersonalInfoRepository) Get(ctx context.Context) (*models.PersonalInfo, error) {
	query := squirrel.Select(personalInfoColumns...).
		From("personal_info").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var info models.PersonalInfo
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&info.ID, &info.Name, &info.Title, &info.Place, &info.Country,
		&info.Email, &info.Phone, &info.Bio, &info.ProfileImageURL,
		&info.GithubURL, &info.LinkedinURL, &info.TwitterURL, &info.WebsiteURL,
		&info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

func (r *PersonalInfoRepository) Create(ctx context.Context, info *models.PersonalInfo) error {
	query := squirrel.Insert("personal_info").
		Columns(personalInfoColumns...).
		Values(
			info.ID, info.Name, info.Title, info.Place, info.Country,
			info.Email, info.Phone, info.Bio, info.ProfileImageURL,
			info.GithubURL, info.LinkedinURL, info.TwitterURL, info.WebsiteURL,
			info.CreatedAt, info.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PersonalInfoRepository) Update(ctx context.Context, info *models.PersonalInfo) error {
	query := squirrel.Update("personal_info").
		Set("name", info.Name).
		Set("title", info.Title).
		Set("place", info.Place).
		Set("country", info.Country).
		Set("email", info.Email).
		Set("phone", info.Phone).
		Set("bio", info.Bio).
		Set("profile_image_url", info.ProfileImageURL).
		Set("github_url", info.GithubURL).
		Set("linkedin_url", info.LinkedinURL).
		Set("twitter_url", info.TwitterURL).
		Set("website_url", info.WebsiteURL).
		Set("updated_at", info.UpdatedAt).
		Where(squirrel.Eq{"id": info.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
