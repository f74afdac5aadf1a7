package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soul-eater04/talentflow-api/internal/models"
)

var seedDBSeq int

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	seedDBSeq++
	cfg := &Config{
		Server:   ServerConfig{Env: "test"},
		Database: DatabaseConfig{Path: fmt.Sprintf("file:seed_test_%d?mode=memory&cache=shared", seedDBSeq)},
	}
	db, err := InitDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, Seed(db))
	return db
}

func counts(t *testing.T, db *gorm.DB) (jobs, candidates, assessments int64) {
	t.Helper()
	require.NoError(t, db.Model(&models.Job{}).Count(&jobs).Error)
	require.NoError(t, db.Model(&models.Candidate{}).Count(&candidates).Error)
	require.NoError(t, db.Model(&models.Assessment{}).Count(&assessments).Error)
	return
}

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	db := newSeededDB(t)

	jobs, candidates, assessments := counts(t, db)
	assert.Positive(t, jobs)
	assert.Positive(t, candidates)
	assert.Positive(t, assessments)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newSeededDB(t)
	jobsBefore, candidatesBefore, assessmentsBefore := counts(t, db)

	require.NoError(t, Seed(db))

	jobsAfter, candidatesAfter, assessmentsAfter := counts(t, db)
	assert.Equal(t, jobsBefore, jobsAfter)
	assert.Equal(t, candidatesBefore, candidatesAfter)
	assert.Equal(t, assessmentsBefore, assessmentsAfter)
}

func TestSeedJobsHoldDenseOrders(t *testing.T) {
	db := newSeededDB(t)

	var jobs []models.Job
	require.NoError(t, db.Order("sort_order ASC").Find(&jobs).Error)
	for i, job := range jobs {
		assert.Equal(t, i+1, job.Order)
	}
}

func TestSeedCandidatesHaveConsistentTimelines(t *testing.T) {
	db := newSeededDB(t)

	var candidates []models.Candidate
	require.NoError(t, db.Find(&candidates).Error)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		require.NotEmpty(t, c.Timeline, "timeline is never empty once a candidate exists")
		assert.Equal(t, models.StageApplied, c.Timeline[0].Stage)
		assert.Equal(t, c.Stage, c.Timeline[len(c.Timeline)-1].Stage,
			"stage must equal the last timeline entry")
	}
}
