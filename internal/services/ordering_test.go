package services

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/repositories"
)

// requireDenseOrders asserts the order values are exactly {1..N}.
func requireDenseOrders(t *testing.T, repo repositories.JobRepository) {
	t.Helper()

	jobs, err := repo.FindAll()
	require.NoError(t, err)

	orders := make([]int, len(jobs))
	for i, job := range jobs {
		orders[i] = job.Order
	}
	sort.Ints(orders)
	for i, order := range orders {
		require.Equal(t, i+1, order, "order values must be the dense range 1..N")
	}
}

func TestReorderMoveToFront(t *testing.T) {
	repo := repositories.NewJobRepository(newTestDB(t))
	svc := NewOrderingService(repo, newTestQueue(t))

	jobs := createJobs(t, repo, "A", "B", "C")
	assert.Equal(t, "a", jobs[0].Slug)
	assert.Equal(t, "b", jobs[1].Slug)
	assert.Equal(t, "c", jobs[2].Slug)

	moved, err := svc.Reorder(jobs[2].ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Order)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Title)
	assert.Equal(t, "A", all[1].Title)
	assert.Equal(t, "B", all[2].Title)
	requireDenseOrders(t, repo)
}

func TestReorderMoveToBack(t *testing.T) {
	repo := repositories.NewJobRepository(newTestDB(t))
	svc := NewOrderingService(repo, newTestQueue(t))

	jobs := createJobs(t, repo, "A", "B", "C")

	moved, err := svc.Reorder(jobs[0].ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, moved.Order)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, "B", all[0].Title)
	assert.Equal(t, "C", all[1].Title)
	assert.Equal(t, "A", all[2].Title)
	requireDenseOrders(t, repo)
}

func TestReorderNoOp(t *testing.T) {
	repo := repositories.NewJobRepository(newTestDB(t))
	svc := NewOrderingService(repo, newTestQueue(t))

	createJobs(t, repo, "A", "B", "C")
	before, err := repo.FindAll()
	require.NoError(t, err)

	moved, err := svc.Reorder(before[1].ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, moved.Order)

	after, err := repo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestReorderClampsOutOfRangeDestinations(t *testing.T) {
	repo := repositories.NewJobRepository(newTestDB(t))
	svc := NewOrderingService(repo, newTestQueue(t))

	jobs := createJobs(t, repo, "A", "B", "C")

	moved, err := svc.Reorder(jobs[1].ID, 99)
	require.NoError(t, err)
	assert.Equal(t, 3, moved.Order)
	requireDenseOrders(t, repo)

	moved, err = svc.Reorder(jobs[1].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Order)
	requireDenseOrders(t, repo)
}

func TestReorderUnknownJob(t *testing.T) {
	repo := repositories.NewJobRepository(newTestDB(t))
	svc := NewOrderingService(repo, newTestQueue(t))

	createJobs(t, repo, "A", "B")
	before, err := repo.FindAll()
	require.NoError(t, err)

	_, err = svc.Reorder(42, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	after, err := repo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, before, after, "a failed reorder must not mutate anything")
}

func TestReorderRandomSequenceStaysDense(t *testing.T) {
	repo := repositories.NewJobRepository(newTestDB(t))
	svc := NewOrderingService(repo, newTestQueue(t))

	jobs := createJobs(t, repo, "A", "B", "C", "D", "E", "F", "G")
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		id := jobs[rng.Intn(len(jobs))].ID
		dest := rng.Intn(len(jobs)) + 1
		_, err := svc.Reorder(id, dest)
		require.NoError(t, err)
		requireDenseOrders(t, repo)
	}
}

func TestConcurrentReordersSerialize(t *testing.T) {
	repo := repositories.NewJobRepository(newTestDB(t))
	svc := NewOrderingService(repo, newTestQueue(t))

	jobs := createJobs(t, repo, "A", "B", "C", "D", "E")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := jobs[i%len(jobs)].ID
			dest := (i*3)%len(jobs) + 1
			_, err := svc.Reorder(id, dest)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	requireDenseOrders(t, repo)
}
