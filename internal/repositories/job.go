package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/soul-eater04/talentflow-api/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uint) (*models.Job, error)
	FindBySlug(slug string) (*models.Job, error)
	FindAll() ([]models.Job, error)
	Save(job *models.Job) error
	UpdateOrder(id uint, order int) error
	Count() (int64, error)
	MaxID() (uint, error)
	MaxOrder() (int, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) FindBySlug(slug string) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("slug = ?", slug).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %q: %w", slug, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindAll returns every job sorted ascending by order, falling back to id so
// the result is stable even if an order is missing.
func (r *jobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("sort_order ASC, id ASC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) Save(job *models.Job) error {
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

func (r *jobRepository) UpdateOrder(id uint, order int) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", id).
		Update("sort_order", order)

	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *jobRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

func (r *jobRepository) MaxID() (uint, error) {
	var max int64
	if err := r.db.Model(&models.Job{}).Select("COALESCE(MAX(id), 0)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to read max id: %w", err)
	}
	return uint(max), nil
}

func (r *jobRepository) MaxOrder() (int, error) {
	var max int64
	if err := r.db.Model(&models.Job{}).Select("COALESCE(MAX(sort_order), 0)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to read max order: %w", err)
	}
	return int(max), nil
}
