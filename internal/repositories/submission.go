package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/soul-eater04/talentflow-api/internal/models"
)

// SubmissionRepository is append-only on purpose: submissions are an audit
// record and never change after creation, so there is no update or delete.
type SubmissionRepository interface {
	Create(submission *models.Submission) error
	FindByJobID(jobID uint) ([]models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *models.Submission) error {
	if err := r.db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *submissionRepository) FindByJobID(jobID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.
		Where("job_id = ?", jobID).
		Order("submitted_at ASC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}
