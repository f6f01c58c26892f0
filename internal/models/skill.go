package models

import "github.com/google/uuid"

type SkillCategory string

const (
	SkillCategoryBackend  SkillCategory = "backend"
	SkillCategoryFrontend SkillCategory = "frontend"
	SkillCategoryDevops   SkillCategory = "devops"
	SkillCategoryOther    SkillCategory = "other"
)

type Skill struct {
	ID               uuid.UUID     `db:"id"`
	Name             string        `db:"name"`
	Category         SkillCategory `db:"category"`
	ProficiencyLevel *int          `db:"proficiency_level"`
	IsHobby          bool          `db:"is_hobby"`
}
