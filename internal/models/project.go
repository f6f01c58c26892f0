package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectType string

const (
	ProjectTypePersonal     ProjectType = "personal"
	ProjectTypeProfessional ProjectType = "professional"
)

type Project struct {
	ID          uuid.UUID   `db:"id"`
	Title       string      `db:"title"`
	Description *string     `db:"description"`
	TechStack   []string    `db:"tech_stack"`
	GithubURL   *string     `db:"github_url"`
	LiveURL     *string     `db:"live_url"`
	ProjectType ProjectType `db:"project_type"`
	CreatedAt   time.Time   `db:"created_at"`
}
