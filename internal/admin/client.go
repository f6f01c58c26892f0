package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"portfolio-api/internal/dto"

	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// APIError carries the status code and message of a failed API call so
// handlers can distinguish a 404 from a hard failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is the HTTP bridge between the admin panel and the REST API. The
// panel never talks to the database directly, everything goes through the
// public endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg := resp.Status
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) GetPersonal(ctx context.Context) (*dto.PersonalInfoResponse, error) {
	var out dto.PersonalInfoResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/personal", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePersonal(ctx context.Context, req *dto.CreatePersonalInfoRequest) (*dto.PersonalInfoResponse, error) {
	var out dto.PersonalInfoResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/personal", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePersonal(ctx context.Context, req *dto.UpdatePersonalInfoRequest) (*dto.PersonalInfoResponse, error) {
	var out dto.PersonalInfoResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/personal", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSkills(ctx context.Context) ([]*dto.SkillResponse, error) {
	var out []*dto.SkillResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSkill(ctx context.Context, req *dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	var out dto.SkillResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/skills", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/skills/"+id, nil, nil)
}

func (c *Client) ListCertifications(ctx context.Context) ([]*dto.CertificationResponse, error) {
	var out []*dto.CertificationResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/certifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCertification(ctx context.Context, req *dto.CreateCertificationRequest) (*dto.CertificationResponse, error) {
	var out dto.CertificationResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/certifications", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCertification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/certifications/"+id, nil, nil)
}

func (c *Client) ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	var out []*dto.ProjectResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	var out dto.ProjectResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/projects", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/projects/"+id, nil, nil)
}

func (c *Client) ListExperience(ctx context.Context) ([]*dto.ExperienceResponse, error) {
	var out []*dto.ExperienceResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/experience", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateExperience(ctx context.Context, req *dto.CreateExperienceRequest) (*dto.ExperienceResponse, error) {
	var out dto.ExperienceResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/experience", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/experience/"+id, nil, nil)
}

func (c *Client) ListContacts(ctx context.Context) ([]*dto.ContactRequestResponse, error) {
	var out []*dto.ContactRequestResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/contact", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
