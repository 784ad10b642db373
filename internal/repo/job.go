package repo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"huffzip_go/internal/model"
)

var ErrNotFound = errors.New("not found")

// 인터페이스
type JobRepo interface {
	Save(ctx context.Context, j *model.Job) error
	FindByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context) ([]*model.Job, error) // 최신순
}

type jobRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Job
}

func NewJobRepoInMemory() JobRepo {
	return &jobRepoInMemory{store: make(map[string]*model.Job)}
}

func (r *jobRepoInMemory) Save(_ context.Context, j *model.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *j
	r.store[j.ID] = &cp
	return nil
}

func (r *jobRepoInMemory) FindByID(_ context.Context, id string) (*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *jobRepoInMemory) List(_ context.Context) ([]*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Job, 0, len(r.store))
	for _, j := range r.store {
		cp := *j
		out = append(out, &cp)
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].ID < out[b].ID
	})
	return out, nil
}
