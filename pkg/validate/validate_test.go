package validate

import "testing"

type contactForm struct {
	Name    string `validate:"required,min=1,max=255"`
	Email   string `validate:"required,email,max=255"`
	Message string `validate:"required,min=10"`
}

type skillForm struct {
	Name             string `validate:"required,min=1,max=100"`
	Category         string `validate:"required,oneof=backend frontend devops other"`
	ProficiencyLevel *int   `validate:"omitempty,gte=1,lte=100"`
}

func TestStructValid(t *testing.T) {
	form := contactForm{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Message: "I would like to discuss a project.",
	}

	if fields := Struct(&form); fields != nil {
		t.Errorf("valid struct rejected: %v", fields)
	}
}

func TestStructShortMessage(t *testing.T) {
	form := contactForm{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Message: "hi",
	}

	fields := Struct(&form)
	if fields == nil {
		t.Fatal("short message accepted")
	}
	if got := fields["message"]; got != "must be at least 10 characters" {
		t.Errorf("message error: got %q", got)
	}
}

func TestStructMissingRequired(t *testing.T) {
	fields := Struct(&contactForm{Email: "not-an-email"})
	if fields == nil {
		t.Fatal("empty struct accepted")
	}
	if got := fields["name"]; got != "field is required" {
		t.Errorf("name error: got %q", got)
	}
	if got := fields["email"]; got != "must be a valid email address" {
		t.Errorf("email error: got %q", got)
	}
	if got := fields["message"]; got != "field is required" {
		t.Errorf("message error: got %q", got)
	}
}

func TestStructOneof(t *testing.T) {
	fields := Struct(&skillForm{Name: "Go", Category: "gardening"})
	if fields == nil {
		t.Fatal("invalid category accepted")
	}
	if got := fields["category"]; got != "must be one of: backend, frontend, devops, other" {
		t.Errorf("category error: got %q", got)
	}
}

func TestStructRangeBounds(t *testing.T) {
	tooHigh := 150
	fields := Struct(&skillForm{Name: "Go", Category: "backend", ProficiencyLevel: &tooHigh})
	if fields == nil {
		t.Fatal("out-of-range proficiency accepted")
	}
	if got := fields["proficiency_level"]; got != "must be less than or equal to 100" {
		t.Errorf("proficiency error: got %q", got)
	}

	ok := 100
	if fields := Struct(&skillForm{Name: "Go", Category: "backend", ProficiencyLevel: &ok}); fields != nil {
		t.Errorf("boundary value rejected: %v", fields)
	}
}
