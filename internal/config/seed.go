package config

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soul-eater04/talentflow-api/internal/models"
)

// Seed loads the mock dataset. Each collection is seeded only when empty, so
// reseeding a non-empty database is a no-op and record counts never change.
func Seed(db *gorm.DB) error {
	if err := seedJobs(db); err != nil {
		return err
	}
	if err := seedCandidates(db); err != nil {
		return err
	}
	if err := seedAssessments(db); err != nil {
		return err
	}
	return nil
}

func seedJobs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if count > 0 {
		log.Println("Jobs already seeded.")
		return nil
	}

	jobs := []models.Job{
		{
			ID:          1,
			Title:       "Frontend Developer",
			Slug:        "frontend-developer",
			Description: "Build amazing UIs with React.",
			Status:      models.JobStatusActive,
			PostedBy:    "John Doe",
			PostingDate: time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC),
			Vacancies:   2,
			Location:    "Remote",
			Tags:        []string{"react", "ui", "javascript"},
			Order:       1,
		},
		{
			ID:          2,
			Title:       "Backend Engineer",
			Slug:        "backend-engineer",
			Description: "Build scalable APIs.",
			Status:      models.JobStatusArchived,
			PostedBy:    "Jane Smith",
			PostingDate: time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
			Vacancies:   1,
			Location:    "NYC",
			Tags:        []string{"go", "api", "sql"},
			Order:       2,
		},
		{
			ID:          3,
			Title:       "Data Analyst",
			Slug:        "data-analyst",
			Description: "Turn hiring data into insight.",
			Status:      models.JobStatusActive,
			PostedBy:    "Jane Smith",
			PostingDate: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
			Vacancies:   1,
			Location:    "Berlin",
			Tags:        []string{"sql", "python"},
			Order:       3,
		},
	}

	if err := db.Create(&jobs).Error; err != nil {
		return fmt.Errorf("failed to seed jobs: %w", err)
	}
	log.Printf("✅ Seeded %d jobs\n", len(jobs))
	return nil
}

// seedCandidates builds each candidate's timeline by walking the pipeline up
// to their current stage, one day per hop, so stage always matches the last
// timeline entry.
func seedCandidates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count candidates: %w", err)
	}
	if count > 0 {
		log.Println("Candidates already seeded.")
		return nil
	}

	base := time.Date(2025, 9, 28, 9, 0, 0, 0, time.UTC)
	specs := []struct {
		name, email, phone, location string
		jobID                        uint
		stage                        models.Stage
	}{
		{"Alice Johnson", "alice@example.com", "+1-555-0101", "Remote", 1, models.StageScreening},
		{"Bob Martin", "bob@example.com", "+1-555-0102", "Austin", 1, models.StageApplied},
		{"Carla Diaz", "carla@example.com", "+1-555-0103", "NYC", 1, models.StageTechnical},
		{"Dan Wright", "dan@example.com", "+1-555-0104", "NYC", 2, models.StageOffer},
		{"Elena Petrova", "elena@example.com", "+1-555-0105", "Berlin", 2, models.StageHired},
		{"Farid Khan", "farid@example.com", "+1-555-0106", "Remote", 3, models.StageRejected},
	}

	candidates := make([]models.Candidate, 0, len(specs))
	for i, spec := range specs {
		applied := base.Add(time.Duration(i) * time.Hour)
		timeline := []models.StageEvent{{Stage: models.StageApplied, Timestamp: applied}}
		for _, stage := range models.Stages[1:] {
			if timeline[len(timeline)-1].Stage == spec.stage {
				break
			}
			// rejected is reachable from any stage, not only the end of the
			// happy path, so jump straight to it.
			next := stage
			if spec.stage == models.StageRejected {
				next = models.StageRejected
			}
			timeline = append(timeline, models.StageEvent{
				Stage:     next,
				Timestamp: timeline[len(timeline)-1].Timestamp.Add(24 * time.Hour),
			})
		}

		candidates = append(candidates, models.Candidate{
			ID:             uuid.New(),
			Name:           spec.name,
			Email:          spec.email,
			Phone:          spec.phone,
			Location:       spec.location,
			JobID:          spec.jobID,
			Stage:          spec.stage,
			Timeline:       timeline,
			Notes:          []models.Note{},
			StageUpdatedAt: timeline[len(timeline)-1].Timestamp,
		})
	}

	if err := db.Create(&candidates).Error; err != nil {
		return fmt.Errorf("failed to seed candidates: %w", err)
	}
	log.Printf("✅ Seeded %d candidates\n", len(candidates))
	return nil
}

func seedAssessments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Assessment{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count assessments: %w", err)
	}
	if count > 0 {
		log.Println("Assessments already seeded.")
		return nil
	}

	maxYears := 40.0
	bioLength := 500

	assessment := models.Assessment{
		ID:    uuid.New(),
		JobID: 1,
		Name:  "Frontend Screening",
		Sections: []models.Section{
			{
				ID:    uuid.NewString(),
				Title: "Background",
				Questions: []models.Question{
					{
						ID:       uuid.NewString(),
						Type:     models.QuestionSingleChoice,
						Prompt:   "Have you shipped a production React app?",
						Required: true,
						Options:  []string{"Yes", "No"},
					},
					{
						ID:       uuid.NewString(),
						Type:     models.QuestionNumeric,
						Prompt:   "Years of frontend experience",
						Required: true,
						MaxRange: &maxYears,
					},
					{
						ID:        uuid.NewString(),
						Type:      models.QuestionLongText,
						Prompt:    "Tell us about a UI you are proud of.",
						MaxLength: &bioLength,
					},
				},
			},
		},
		CreatedAt: time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC),
	}

	if err := db.Create(&assessment).Error; err != nil {
		return fmt.Errorf("failed to seed assessments: %w", err)
	}
	log.Println("✅ Seeded 1 assessment")
	return nil
}
