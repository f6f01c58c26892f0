package service

import "testing"

func TestNormalizeTechStackOmitted(t *testing.T) {
	got := normalizeTechStack(nil)
	if got == nil {
		t.Fatal("omitted tech stack must become an empty list, not NULL")
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestNormalizeTechStackKeepsValues(t *testing.T) {
	stack := []string{"Go", "PostgreSQL"}
	got := normalizeTechStack(stack)
	if len(got) != 2 || got[0] != "Go" || got[1] != "PostgreSQL" {
		t.Errorf("tech stack altered: got %v", got)
	}
}

func TestNormalizeTechStackKeepsEmpty(t *testing.T) {
	got := normalizeTechStack([]string{})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}
