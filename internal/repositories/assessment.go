package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/soul-eater04/talentflow-api/internal/models"
)

type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	FindByJobID(jobID uint) ([]models.Assessment, error)
	Count() (int64, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *models.Assessment) error {
	if err := r.db.Create(assessment).Error; err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepository) FindByJobID(jobID uint) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&assessments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

func (r *assessmentRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Assessment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assessments: %w", err)
	}
	return count, nil
}
