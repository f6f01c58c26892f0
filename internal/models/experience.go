package models

import (
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID  `db:"id"`
	CompanyName string     `db:"company_name"`
	Role        string     `db:"role"`
	Description *string    `db:"description"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"` // nil means current position
	Learnings   *string    `db:"learnings"`
}
