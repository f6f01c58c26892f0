package repository

import (
	"context"

	"portfolio-api/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// AIContextLogRepository is insert-only: log rows are never updated or
// deleted.
type AIContextLogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAIContextLogRepository(db *pgxpool.Pool, logger *zap.Logger) *AIContextLogRepository {
	return &AIContextLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AIContextLogRepository) Create(ctx context.Context, log *models.AIContextLog) error {
	query := squirrel.Insert("ai_context_logs").
		Columns("id", "user_question", "ai_response", "used_context", "created_at").
		Values(log.ID, log.UserQuestion, log.AIResponse, log.UsedContext, log.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
