package models

import (
	"time"

	"github.com/google/uuid"
)

// AIContextLog is an append-only audit record of one assistant interaction.
// Rows are immutable after insert.
type AIContextLog struct {
	ID           uuid.UUID `db:"id"`
	UserQuestion string    `db:"user_question"`
	AIResponse   string    `db:"ai_response"`
	UsedContext  []byte    `db:"used_context"` // JSON snapshot of the assembled context
	CreatedAt    time.Time `db:"created_at"`
}
