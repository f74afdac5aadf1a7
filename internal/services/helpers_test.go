package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/repositories"
)

var testDBSeq int

// newTestDB opens a fresh in-memory sqlite database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Job{},
		&models.Candidate{},
		&models.Assessment{},
		&models.Submission{},
	))
	return db
}

// newTestQueue starts a mutation queue and stops it when the test ends.
func newTestQueue(t *testing.T) MutationQueue {
	t.Helper()

	queue := NewMutationQueue()
	queue.Start()
	t.Cleanup(queue.Stop)
	return queue
}

// createJobs inserts titled jobs with sequential ids and orders.
func createJobs(t *testing.T, repo repositories.JobRepository, titles ...string) []models.Job {
	t.Helper()

	jobs := make([]models.Job, 0, len(titles))
	for i, title := range titles {
		job := models.Job{
			ID:          uint(i + 1),
			Title:       title,
			Slug:        Slugify(title),
			Status:      models.JobStatusActive,
			Tags:        []string{},
			PostingDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Order:       i + 1,
		}
		require.NoError(t, repo.Create(&job))
		jobs = append(jobs, job)
	}
	return jobs
}
