package services

import (
	"fmt"

	"github.com/soul-eater04/talentflow-api/internal/models"
	"github.com/soul-eater04/talentflow-api/internal/repositories"
)

// OrderingService moves jobs around the board while keeping the order values
// a dense 1..N permutation.
type OrderingService interface {
	Reorder(jobID uint, toOrder int) (*models.Job, error)
}

type orderingService struct {
	jobRepo repositories.JobRepository
	queue   MutationQueue
}

func NewOrderingService(jobRepo repositories.JobRepository, queue MutationQueue) OrderingService {
	return &orderingService{
		jobRepo: jobRepo,
		queue:   queue,
	}
}

// Reorder implements OrderingService using a full resequence: pull the moved
// job out of the order-sorted list, reinsert it at the destination, then
// rewrite every job's order to its 1-based index. That holds the dense
// invariant unconditionally, including boundary and no-op moves. The whole
// move runs inside the mutation queue so concurrent reorders apply FIFO and
// each one sees the complete effect of all prior moves.
func (s *orderingService) Reorder(jobID uint, toOrder int) (*models.Job, error) {
	var moved *models.Job

	err := s.queue.Do(func() error {
		jobs, err := s.jobRepo.FindAll()
		if err != nil {
			return err
		}

		idx := -1
		for i := range jobs {
			if jobs[i].ID == jobID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("job %d: %w", jobID, models.ErrNotFound)
		}

		job := jobs[idx]
		rest := append(jobs[:idx:idx], jobs[idx+1:]...)

		dest := toOrder - 1
		if dest < 0 {
			dest = 0
		}
		if dest > len(rest) {
			dest = len(rest)
		}

		resequenced := make([]models.Job, 0, len(jobs))
		resequenced = append(resequenced, rest[:dest]...)
		resequenced = append(resequenced, job)
		resequenced = append(resequenced, rest[dest:]...)

		for i := range resequenced {
			want := i + 1
			if resequenced[i].Order == want {
				continue
			}
			if err := s.jobRepo.UpdateOrder(resequenced[i].ID, want); err != nil {
				return err
			}
			resequenced[i].Order = want
			if resequenced[i].ID == jobID {
				job.Order = want
			}
		}

		moved = &job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}
