package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soul-eater04/talentflow-api/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	FindByJobID(jobID uint) ([]models.Candidate, error)
	FindByStage(stage models.Stage) ([]models.Candidate, error)
	FindAll() ([]models.Candidate, error)
	Save(candidate *models.Candidate) error
	Count() (int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByJobID(jobID uint) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Where("job_id = ?", jobID).
		Order("stage_updated_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates for job: %w", err)
	}
	return candidates, nil
}

// FindByStage returns candidates in a stage, most recently active first.
func (r *candidateRepository) FindByStage(stage models.Stage) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Where("stage = ?", stage).
		Order("stage_updated_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates by stage: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) FindAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("stage_updated_at DESC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) Save(candidate *models.Candidate) error {
	if err := r.db.Save(candidate).Error; err != nil {
		return fmt.Errorf("failed to save candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}
