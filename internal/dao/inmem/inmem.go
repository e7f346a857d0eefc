// Package inmem is a map-backed dao.Store, used when cmd/scrambled is
// configured with no persistent database.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dekarrin/scramble/internal/dao"
	"github.com/google/uuid"
)

type store struct {
	runs *runsRepository
}

// NewDatastore builds an empty in-memory dao.Store.
func NewDatastore() dao.Store {
	return &store{runs: newRunsRepository()}
}

func (s *store) Runs() dao.RunRepository { return s.runs }
func (s *store) Close() error            { return nil }

type runsRepository struct {
	mu   sync.Mutex
	runs map[uuid.UUID]dao.Run
}

func newRunsRepository() *runsRepository {
	return &runsRepository{runs: make(map[uuid.UUID]dao.Run)}
}

func (r *runsRepository) Close() error { return nil }

func (r *runsRepository) Create(ctx context.Context, run dao.Run) (dao.Run, error) {
	newID, err := uuid.NewRandom()
	if err != nil {
		return dao.Run{}, err
	}

	run.ID = newID
	run.Created = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = run

	return run, nil
}

func (r *runsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[id]
	if !ok {
		return dao.Run{}, dao.ErrNotFound
	}
	return run, nil
}

func (r *runsRepository) GetAll(ctx context.Context) ([]dao.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]dao.Run, 0, len(r.runs))
	for _, run := range r.runs {
		all = append(all, run)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Created.Before(all[j].Created)
	})
	return all, nil
}
