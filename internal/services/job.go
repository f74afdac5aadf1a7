package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/repositories"
)

// JobListParams are the parsed query parameters for the jobs board.
type JobListParams struct {
	Search   string
	Status   models.JobStatus
	Sort     string // "field:dir", e.g. "title:asc"
	Page     int
	PageSize int
}

type JobService interface {
	List(params JobListParams) ([]models.Job, int, error)
	GetBySlug(slug string) (*models.Job, error)
	Create(req *models.CreateJobRequest) (*models.Job, error)
	Patch(id uint, req *models.PatchJobRequest) (*models.Job, error)
}

type jobService struct {
	jobRepo repositories.JobRepository
	now     func() time.Time
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

// List implements JobService. Filtering, sorting and paging happen over the
// full collection in memory, mirroring how the original backend treated its
// local database. The default sort is order ascending (id as tiebreak, which
// FindAll already applies); an explicit sort spec overrides it with a stable
// sort so equal keys keep their input order.
func (s *jobService) List(params JobListParams) ([]models.Job, int, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]models.Job, 0, len(jobs))
	search := strings.ToLower(strings.TrimSpace(params.Search))
	for _, job := range jobs {
		if search != "" && !strings.Contains(strings.ToLower(job.Title), search) {
			continue
		}
		if params.Status != "" && job.Status != params.Status {
			continue
		}
		filtered = append(filtered, job)
	}

	if params.Sort != "" {
		if err := sortJobs(filtered, params.Sort); err != nil {
			return nil, 0, err
		}
	}

	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	page := params.Page
	if page < 1 {
		page = 1
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []models.Job{}, totalPages, nil
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], totalPages, nil
}

// sortJobs applies a "field:dir" spec in place. Text fields compare
// lowercase, numeric fields numerically, date fields by time value.
func sortJobs(jobs []models.Job, spec string) error {
	field, dir := spec, "asc"
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		field, dir = spec[:i], spec[i+1:]
	}
	if dir != "asc" && dir != "desc" {
		return fmt.Errorf("bad sort direction %q: %w", dir, models.ErrValidation)
	}

	var less func(a, b models.Job) bool
	switch field {
	case "title":
		less = func(a, b models.Job) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case "order":
		less = func(a, b models.Job) bool { return a.Order < b.Order }
	case "id":
		less = func(a, b models.Job) bool { return a.ID < b.ID }
	case "vacancies":
		less = func(a, b models.Job) bool { return a.Vacancies < b.Vacancies }
	// The board UI sends createdAt; posting date is the creation timestamp.
	case "postingDate", "createdAt":
		less = func(a, b models.Job) bool { return a.PostingDate.Before(b.PostingDate) }
	default:
		return fmt.Errorf("bad sort field %q: %w", field, models.ErrValidation)
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		if dir == "desc" {
			return less(jobs[j], jobs[i])
		}
		return less(jobs[i], jobs[j])
	})
	return nil
}

func (s *jobService) GetBySlug(slug string) (*models.Job, error) {
	return s.jobRepo.FindBySlug(slug)
}

// Create implements JobService. The server assigns id and order as one past
// the current maximum, so a fresh job always lands at the end of the board.
func (s *jobService) Create(req *models.CreateJobRequest) (*models.Job, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required: %w", models.ErrValidation)
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", req.Status, models.ErrValidation)
	}
	if req.Vacancies < 0 {
		return nil, fmt.Errorf("vacancies must be non-negative: %w", models.ErrValidation)
	}

	maxID, err := s.jobRepo.MaxID()
	if err != nil {
		return nil, err
	}
	maxOrder, err := s.jobRepo.MaxOrder()
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		ID:          maxID + 1,
		Title:       req.Title,
		Slug:        Slugify(req.Title),
		Description: req.Description,
		Status:      req.Status,
		PostedBy:    req.PostedBy,
		Location:    req.Location,
		Vacancies:   req.Vacancies,
		Tags:        req.Tags,
		Order:       maxOrder + 1,
	}
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	if req.PostingDate != nil {
		job.PostingDate = *req.PostingDate
	} else {
		job.PostingDate = s.now()
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Patch implements JobService. Only fields present in the payload change;
// a title change recomputes the slug.
func (s *jobService) Patch(id uint, req *models.PatchJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("title cannot be empty: %w", models.ErrValidation)
		}
		job.Title = *req.Title
		job.Slug = Slugify(*req.Title)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("unknown status %q: %w", *req.Status, models.ErrValidation)
		}
		job.Status = *req.Status
	}
	if req.PostedBy != nil {
		job.PostedBy = *req.PostedBy
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Vacancies != nil {
		if *req.Vacancies < 0 {
			return nil, fmt.Errorf("vacancies must be non-negative: %w", models.ErrValidation)
		}
		job.Vacancies = *req.Vacancies
	}
	if req.Tags != nil {
		job.Tags = *req.Tags
	}
	if req.PostingDate != nil {
		job.PostingDate = *req.PostingDate
	}

	if err := s.jobRepo.Save(job); err != nil {
		return nil, err
	}
	return job, nil
}
