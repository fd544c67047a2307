// Package memory provides in-memory repository implementations backed by
// maps and mutexes. They satisfy the same interfaces as the postgresql
// implementations and are used by the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
)

type BranchRepository struct {
	mu       sync.RWMutex
	branches map[string]branch.Branch
}

func NewBranchRepository() *BranchRepository {
	return &BranchRepository{branches: make(map[string]branch.Branch)}
}

func (r *BranchRepository) Create(_ context.Context, b branch.Branch) (branch.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.branches {
		if existing.Code == b.Code {
			return branch.Branch{}, branch.ErrBranchCodeExists
		}
	}

	now := time.Now()
	b.ID = uuid.NewString()
	b.IsActive = true
	b.CreatedAt = now
	b.UpdatedAt = now
	r.branches[b.ID] = b

	return b, nil
}

func (r *BranchRepository) GetByID(_ context.Context, id string) (branch.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.branches[id]
	if !ok {
		return branch.Branch{}, branch.ErrBranchNotFound
	}
	return b, nil
}

func (r *BranchRepository) List(_ context.Context, activeOnly bool) ([]branch.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []branch.Branch
	for _, b := range r.branches {
		if activeOnly && !b.IsActive {
			continue
		}
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

func (r *BranchRepository) Update(_ context.Context, req branch.UpdateBranchRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.branches[req.ID]
	if !ok {
		return branch.ErrBranchNotFound
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Address != nil {
		b.Address = req.Address
	}
	if req.Phone != nil {
		b.Phone = req.Phone
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	b.UpdatedAt = time.Now()
	r.branches[b.ID] = b

	return nil
}

func (r *BranchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.branches[id]; !ok {
		return branch.ErrBranchNotFound
	}
	delete(r.branches, id)

	return nil
}
