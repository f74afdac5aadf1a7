package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/repositories"
)

// PipelineService owns candidate stage transitions, the audit timeline, and
// notes.
type PipelineService interface {
	CreateCandidate(req *models.CreateCandidateRequest) (*models.Candidate, error)
	Transition(id uuid.UUID, stage models.Stage, at time.Time) (*models.Candidate, error)
	AddNote(id uuid.UUID, text string) (*models.Candidate, error)
	ListByJob(jobID uint) ([]models.Candidate, error)
	List(stage models.Stage, page, pageSize int) ([]models.Candidate, int, error)
	GetByID(id uuid.UUID) (*models.Candidate, error)
}

type pipelineService struct {
	candidateRepo repositories.CandidateRepository
	jobRepo       repositories.JobRepository
	now           func() time.Time
}

func NewPipelineService(candidateRepo repositories.CandidateRepository, jobRepo repositories.JobRepository) PipelineService {
	return &pipelineService{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		now:           time.Now,
	}
}

// CreateCandidate implements PipelineService. The referenced job must exist;
// every candidate starts in "applied" with a single matching timeline entry.
func (s *pipelineService) CreateCandidate(req *models.CreateCandidateRequest) (*models.Candidate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("email is required: %w", models.ErrValidation)
	}
	if _, err := s.jobRepo.FindByID(req.JobID); err != nil {
		return nil, fmt.Errorf("job %d: %w", req.JobID, err)
	}

	now := s.now()
	candidate := &models.Candidate{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		JobID:    req.JobID,
		Stage:    models.StageApplied,
		Timeline: []models.StageEvent{
			{Stage: models.StageApplied, Timestamp: now},
		},
		Notes:          []models.Note{},
		StageUpdatedAt: now,
	}

	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// Transition implements PipelineService. Timeline entries append in request
// arrival order; the engine never resequences them by timestamp even when
// timestamps arrive out of order.
func (s *pipelineService) Transition(id uuid.UUID, stage models.Stage, at time.Time) (*models.Candidate, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("unknown stage %q: %w", stage, models.ErrValidation)
	}

	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if candidate.Stage == stage {
		return nil, fmt.Errorf("candidate %s: %w", id, models.ErrNoStageChange)
	}

	if at.IsZero() {
		at = s.now()
	}

	candidate.Stage = stage
	candidate.Timeline = append(candidate.Timeline, models.StageEvent{
		Stage:     stage,
		Timestamp: at,
	})
	candidate.StageUpdatedAt = at

	if err := s.candidateRepo.Save(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// AddNote implements PipelineService. Notes are append-only and get a
// server-assigned timestamp.
func (s *pipelineService) AddNote(id uuid.UUID, text string) (*models.Candidate, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("note text is empty: %w", models.ErrValidation)
	}

	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	candidate.Notes = append(candidate.Notes, models.Note{
		Text:      text,
		Timestamp: s.now(),
	})

	if err := s.candidateRepo.Save(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *pipelineService) ListByJob(jobID uint) ([]models.Candidate, error) {
	return s.candidateRepo.FindByJobID(jobID)
}

// List returns one page of candidates, most recently active first, plus the
// total page count for the filter.
func (s *pipelineService) List(stage models.Stage, page, pageSize int) ([]models.Candidate, int, error) {
	var (
		candidates []models.Candidate
		err        error
	)
	if stage != "" {
		if !stage.Valid() {
			return nil, 0, fmt.Errorf("unknown stage %q: %w", stage, models.ErrValidation)
		}
		candidates, err = s.candidateRepo.FindByStage(stage)
	} else {
		candidates, err = s.candidateRepo.FindAll()
	}
	if err != nil {
		return nil, 0, err
	}

	if pageSize < 1 {
		pageSize = 50
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(candidates) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(candidates) {
		return []models.Candidate{}, totalPages, nil
	}
	end := start + pageSize
	if end > len(candidates) {
		end = len(candidates)
	}
	return candidates[start:end], totalPages, nil
}

func (s *pipelineService) GetByID(id uuid.UUID) (*models.Candidate, error) {
	return s.candidateRepo.FindByID(id)
}
