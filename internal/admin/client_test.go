package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-api/internal/dto"

	"go.uber.org/zap"
)

func TestClientListSkills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/skills" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*dto.SkillResponse{
			{ID: "11111111-1111-1111-1111-111111111111", Name: "Go", Category: "backend"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	skills, err := client.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "Go" {
		t.Errorf("unexpected skills: %+v", skills)
	}
}

func TestClientCreateSkill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/skills" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: got %q", ct)
		}

		var req dto.CreateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Docker" || req.Category != "devops" {
			t.Errorf("unexpected payload: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&dto.SkillResponse{
			ID:       "22222222-2222-2222-2222-222222222222",
			Name:     req.Name,
			Category: req.Category,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	skill, err := client.CreateSkill(context.Background(), &dto.CreateSkillRequest{
		Name:     "Docker",
		Category: "devops",
	})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	if skill.ID == "" || skill.Name != "Docker" {
		t.Errorf("unexpected response: %+v", skill)
	}
}

func TestClientDeleteSkillNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/skills/abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	if err := client.DeleteSkill(context.Background(), "abc"); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Skill not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	err := client.DeleteSkill(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status: got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Skill not found" {
		t.Errorf("message: got %q", apiErr.Message)
	}
}

func TestClientPersonalNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Personal info not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	personal, err := client.GetPersonal(context.Background())
	if personal != nil {
		t.Errorf("expected nil personal info, got %+v", personal)
	}
	if !isNotFound(err) {
		t.Errorf("expected not-found classification, got %v", err)
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/contact" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]*dto.ContactRequestResponse{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", zap.NewNop())
	if _, err := client.ListContacts(context.Background()); err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
}
