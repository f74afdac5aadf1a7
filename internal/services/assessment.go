package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/repositories"
)

type AssessmentService interface {
	Create(jobID uint, req *models.CreateAssessmentRequest) (*models.Assessment, error)
	ListByJob(jobID uint) ([]models.Assessment, error)
	Submit(jobID uint, req *models.SubmitAssessmentRequest) (*models.Submission, error)
}

type assessmentService struct {
	assessmentRepo repositories.AssessmentRepository
	submissionRepo repositories.SubmissionRepository
	jobRepo        repositories.JobRepository
	now            func() time.Time
}

func NewAssessmentService(
	assessmentRepo repositories.AssessmentRepository,
	submissionRepo repositories.SubmissionRepository,
	jobRepo repositories.JobRepository,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		submissionRepo: submissionRepo,
		jobRepo:        jobRepo,
		now:            time.Now,
	}
}

// Create implements AssessmentService. Sections and questions that arrive
// from the builder without ids get server-assigned ones; after creation the
// template is immutable.
func (s *assessmentService) Create(jobID uint, req *models.CreateAssessmentRequest) (*models.Assessment, error) {
	if len(req.Sections) == 0 {
		return nil, fmt.Errorf("at least one section is required: %w", models.ErrValidation)
	}
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		return nil, err
	}

	sections := make([]models.Section, len(req.Sections))
	copy(sections, req.Sections)
	for i := range sections {
		if sections[i].ID == "" {
			sections[i].ID = uuid.NewString()
		}
		questions := make([]models.Question, len(sections[i].Questions))
		copy(questions, sections[i].Questions)
		for j := range questions {
			if questions[j].ID == "" {
				questions[j].ID = uuid.NewString()
			}
		}
		sections[i].Questions = questions
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Assessment %s", s.now().Format("2006-01-02"))
	}

	assessment := &models.Assessment{
		ID:        uuid.New(),
		JobID:     jobID,
		Name:      name,
		Sections:  sections,
		CreatedAt: s.now(),
	}

	if err := s.assessmentRepo.Create(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *assessmentService) ListByJob(jobID uint) ([]models.Assessment, error) {
	return s.assessmentRepo.FindByJobID(jobID)
}

// Submit implements AssessmentService. Responses are stored as they arrived:
// required/range/length constraints were already enforced by the test runner
// upstream, and the server deliberately does not re-validate them against
// the question schema.
func (s *assessmentService) Submit(jobID uint, req *models.SubmitAssessmentRequest) (*models.Submission, error) {
	if len(req.Responses) == 0 {
		return nil, fmt.Errorf("responses are required: %w", models.ErrValidation)
	}

	submittedAt := s.now()
	if req.SubmittedAt != nil {
		submittedAt = *req.SubmittedAt
	}

	submission := &models.Submission{
		ID:           uuid.New(),
		JobID:        jobID,
		AssessmentID: req.AssessmentID,
		Responses:    req.Responses,
		SubmittedAt:  submittedAt,
	}

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}
