package service

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	question := "What backend languages do they know?"
	portfolioContext := "SKILLS:\n- Go (backend) - Proficiency: 95%"

	got := buildPrompt(question, portfolioContext)

	for _, want := range []string{
		"You are Rya",
		"PORTFOLIO DATA CONTEXT:",
		portfolioContext,
		"USER QUESTION:",
		question,
		"INSTRUCTIONS:",
		"RESPONSE:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Context must come before the question, the question before the
	// instruction block.
	ctxIdx := strings.Index(got, "PORTFOLIO DATA CONTEXT:")
	qIdx := strings.Index(got, "USER QUESTION:")
	instIdx := strings.Index(got, "INSTRUCTIONS:")
	if !(ctxIdx < qIdx && qIdx < instIdx) {
		t.Errorf("prompt sections out of order: context=%d question=%d instructions=%d", ctxIdx, qIdx, instIdx)
	}
}

func TestApologize(t *testing.T) {
	got := apologize(errors.New("connection refused"))

	want := "I apologize, but I'm having trouble processing your request right now. Error: connection refused"
	if got != want {
		t.Errorf("apologize: got %q, want %q", got, want)
	}
}
