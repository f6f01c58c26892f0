package models

import "testing"

func TestPortfolioContextEmpty(t *testing.T) {
	ctx := &PortfolioContext{}
	if !ctx.Empty() {
		t.Error("zero-value snapshot should be empty")
	}

	ctx.Skills = []SkillContext{{Name: "Go", Category: SkillCategoryBackend}}
	if ctx.Empty() {
		t.Error("snapshot with a skill should not be empty")
	}
}

func TestPortfolioContextEmptyPersonalOnly(t *testing.T) {
	ctx := &PortfolioContext{
		PersonalInfo: &PersonalSummary{Name: "Jordan Doe", Email: "jordan@example.com"},
	}
	if ctx.Empty() {
		t.Error("snapshot with personal info should not be empty")
	}
}
