package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/repositories"
)

func newPipeline(t *testing.T) (PipelineService, repositories.CandidateRepository) {
	t.Helper()
	db := newTestDB(t)
	jobRepo := repositories.NewJobRepository(db)
	createJobs(t, jobRepo, "Frontend Developer")
	repo := repositories.NewCandidateRepository(db)
	return NewPipelineService(repo, jobRepo), repo
}

func createCandidate(t *testing.T, svc PipelineService) *models.Candidate {
	t.Helper()
	candidate, err := svc.CreateCandidate(&models.CreateCandidateRequest{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
		JobID: 1,
	})
	require.NoError(t, err)
	return candidate
}

func TestCreateCandidateStartsApplied(t *testing.T) {
	svc, _ := newPipeline(t)

	candidate := createCandidate(t, svc)
	assert.Equal(t, models.StageApplied, candidate.Stage)
	require.Len(t, candidate.Timeline, 1)
	assert.Equal(t, models.StageApplied, candidate.Timeline[0].Stage)
}

func TestCreateCandidateRequiresNameAndEmail(t *testing.T) {
	svc, _ := newPipeline(t)

	_, err := svc.CreateCandidate(&models.CreateCandidateRequest{Email: "a@b.c"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	_, err = svc.CreateCandidate(&models.CreateCandidateRequest{Name: "Bob", Email: "   "})
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestCreateCandidateUnknownJob(t *testing.T) {
	svc, repo := newPipeline(t)

	_, err := svc.CreateCandidate(&models.CreateCandidateRequest{
		Name:  "Ghost Applicant",
		Email: "ghost@example.com",
		JobID: 9999,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// Nothing may be persisted against the missing job.
	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransitionAppendsTimeline(t *testing.T) {
	svc, repo := newPipeline(t)
	candidate := createCandidate(t, svc)

	t1 := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	updated, err := svc.Transition(candidate.ID, models.StageScreening, t1)
	require.NoError(t, err)

	assert.Equal(t, models.StageScreening, updated.Stage)
	require.Len(t, updated.Timeline, 2)
	assert.Equal(t, models.StageScreening, updated.Timeline[1].Stage)
	assert.True(t, updated.Timeline[1].Timestamp.Equal(t1))

	stored, err := repo.FindByID(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageScreening, stored.Stage)
}

func TestTransitionTimelineGrowth(t *testing.T) {
	svc, _ := newPipeline(t)
	candidate := createCandidate(t, svc)

	hops := []models.Stage{
		models.StageScreening,
		models.StageTechnical,
		models.StageOffer,
		models.StageHired,
	}
	for i, stage := range hops {
		updated, err := svc.Transition(candidate.ID, stage, time.Time{})
		require.NoError(t, err)
		// k distinct transitions leave k+1 entries, counting the initial
		// applied one.
		assert.Len(t, updated.Timeline, i+2)
	}
}

func TestTransitionToCurrentStageIsRejected(t *testing.T) {
	svc, repo := newPipeline(t)
	candidate := createCandidate(t, svc)

	_, err := svc.Transition(candidate.ID, models.StageScreening, time.Time{})
	require.NoError(t, err)

	_, err = svc.Transition(candidate.ID, models.StageScreening, time.Time{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNoStageChange))
	assert.False(t, errors.Is(err, models.ErrValidation))

	stored, err := repo.FindByID(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageScreening, stored.Stage)
	assert.Len(t, stored.Timeline, 2, "a rejected no-op must not grow the timeline")
}

func TestTransitionUnknownStage(t *testing.T) {
	svc, _ := newPipeline(t)
	candidate := createCandidate(t, svc)

	_, err := svc.Transition(candidate.ID, "limbo", time.Time{})
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestTransitionUnknownCandidate(t *testing.T) {
	svc, _ := newPipeline(t)

	_, err := svc.Transition(uuid.New(), models.StageScreening, time.Time{})
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestTransitionKeepsArrivalOrder(t *testing.T) {
	svc, _ := newPipeline(t)
	candidate := createCandidate(t, svc)

	later := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Transition(candidate.ID, models.StageScreening, later)
	require.NoError(t, err)
	updated, err := svc.Transition(candidate.ID, models.StageTechnical, earlier)
	require.NoError(t, err)

	// Entries stay in arrival order even though the timestamps are inverted;
	// the engine never resequences the timeline.
	require.Len(t, updated.Timeline, 3)
	assert.Equal(t, models.StageScreening, updated.Timeline[1].Stage)
	assert.Equal(t, models.StageTechnical, updated.Timeline[2].Stage)
	assert.True(t, updated.Timeline[1].Timestamp.After(updated.Timeline[2].Timestamp))
}

func TestAddNote(t *testing.T) {
	svc, _ := newPipeline(t)
	candidate := createCandidate(t, svc)

	for _, text := range []string{"", "   "} {
		_, err := svc.AddNote(candidate.ID, text)
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrValidation))
	}

	updated, err := svc.AddNote(candidate.ID, "looks strong")
	require.NoError(t, err)
	require.Len(t, updated.Notes, 1)
	assert.Equal(t, "looks strong", updated.Notes[0].Text)
	assert.False(t, updated.Notes[0].Timestamp.IsZero())
}

func TestAddNoteUnknownCandidate(t *testing.T) {
	svc, _ := newPipeline(t)

	_, err := svc.AddNote(uuid.New(), "hello")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestListSortsByRecentActivity(t *testing.T) {
	svc, _ := newPipeline(t)

	first := createCandidate(t, svc)
	second, err := svc.CreateCandidate(&models.CreateCandidateRequest{
		Name:  "Bob Martin",
		Email: "bob@example.com",
		JobID: 1,
	})
	require.NoError(t, err)

	// Touch the first candidate so it becomes the most recently active.
	_, err = svc.Transition(first.ID, models.StageScreening, time.Now().Add(time.Hour))
	require.NoError(t, err)

	page, totalPages, err := svc.List("", 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, totalPages)
	require.Len(t, page, 2)
	assert.Equal(t, first.ID, page[0].ID)
	assert.Equal(t, second.ID, page[1].ID)

	screening, _, err := svc.List(models.StageScreening, 1, 50)
	require.NoError(t, err)
	require.Len(t, screening, 1)
	assert.Equal(t, first.ID, screening[0].ID)
}

func TestListClampsNonPositivePageSize(t *testing.T) {
	svc, _ := newPipeline(t)
	createCandidate(t, svc)

	for _, pageSize := range []int{0, -3} {
		page, totalPages, err := svc.List("", 1, pageSize)
		require.NoError(t, err)
		assert.Equal(t, 1, totalPages)
		assert.Len(t, page, 1)
	}
}
