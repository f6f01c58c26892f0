package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const contextDateLayout = "2006-01-02"

// Completer produces the assistant's answer for a question given the
// formatted portfolio context. Implementations must not return errors;
// provider failures are absorbed into the answer text.
type Completer interface {
	Answer(ctx context.Context, question, portfolioContext string) string
}

// RyaService runs the assistant pipeline: assemble the portfolio snapshot,
// format it, delegate to the completion client and log the interaction.
type RyaService struct {
	personalRepo *repository.PersonalInfoRepository
	skillRepo    *repository.SkillRepository
	certRepo     *repository.CertificationRepository
	projectRepo  *repository.ProjectRepository
	expRepo      *repository.ExperienceRepository
	logRepo      *repository.AIContextLogRepository
	completer    Completer
	logger       *zap.Logger
}

func NewRyaService(
	personalRepo *repository.PersonalInfoRepository,
	skillRepo *repository.SkillRepository,
	certRepo *repository.CertificationRepository,
	projectRepo *repository.ProjectRepository,
	expRepo *repository.ExperienceRepository,
	logRepo *repository.AIContextLogRepository,
	completer Completer,
	logger *zap.Logger,
) *RyaService {
	return &RyaService{
		personalRepo: personalRepo,
		skillRepo:    skillRepo,
		certRepo:     certRepo,
		projectRepo:  projectRepo,
		expRepo:      expRepo,
		logRepo:      logRepo,
		completer:    completer,
		logger:       logger,
	}
}

// Ask answers a visitor's question from current portfolio data and records
// one immutable audit row. Storage failures propagate; provider failures do
// not.
func (s *RyaService) Ask(ctx context.Context, question string) (string, error) {
	snapshot, err := s.BuildContext(ctx)
	if err != nil {
		return "", err
	}

	formatted := FormatContext(snapshot)
	answer := s.completer.Answer(ctx, question, formatted)

	if err := s.logInteraction(ctx, question, answer, snapshot); err != nil {
		return "", err
	}

	return answer, nil
}

// BuildContext assembles the aggregate snapshot from current database state.
// Absent data yields empty collections, never an error.
func (s *RyaService) BuildContext(ctx context.Context) (*models.PortfolioContext, error) {
	snapshot := &models.PortfolioContext{
		Skills:         []models.SkillContext{},
		Certifications: []models.CertificationContext{},
		Projects:       []models.ProjectContext{},
		Experience:     []models.ExperienceContext{},
	}

	info, err := s.personalRepo.Get(ctx)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to fetch personal info: %w", err)
	}
	if info != nil {
		snapshot.PersonalInfo = &models.PersonalSummary{
			Name:    info.Name,
			Place:   info.Place,
			Country: info.Country,
			Email:   info.Email,
			Bio:     info.Bio,
		}
	}

	skills, err := s.skillRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	for _, skill := range skills {
		snapshot.Skills = append(snapshot.Skills, models.SkillContext{
			Name:             skill.Name,
			Category:         skill.Category,
			ProficiencyLevel: skill.ProficiencyLevel,
			IsHobby:          skill.IsHobby,
		})
	}

	certs, err := s.certRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch certifications: %w", err)
	}
	for _, cert := range certs {
		snapshot.Certifications = append(snapshot.Certifications, models.CertificationContext{
			Title:     cert.Title,
			Issuer:    cert.Issuer,
			IssueDate: formatDate(cert.IssueDate),
		})
	}

	projects, err := s.projectRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	for _, project := range projects {
		snapshot.Projects = append(snapshot.Projects, models.ProjectContext{
			Title:       project.Title,
			Description: project.Description,
			TechStack:   project.TechStack,
			ProjectType: project.ProjectType,
			GithubURL:   project.GithubURL,
			LiveURL:     project.LiveURL,
		})
	}

	entries, err := s.expRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	for _, exp := range entries {
		snapshot.Experience = append(snapshot.Experience, models.ExperienceContext{
			CompanyName: exp.CompanyName,
			Role:        exp.Role,
			Description: exp.Description,
			StartDate:   formatDate(exp.StartDate),
			EndDate:     formatDate(exp.EndDate),
			Learnings:   exp.Learnings,
		})
	}

	return snapshot, nil
}

func (s *RyaService) logInteraction(ctx context.Context, question, answer string, snapshot *models.PortfolioContext) error {
	usedContext, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode context snapshot: %w", err)
	}

	log := &models.AIContextLog{
		ID:           uuid.New(),
		UserQuestion: question,
		AIResponse:   answer,
		UsedContext:  usedContext,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.logRepo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}

	return nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(contextDateLayout)
	return &formatted
}
