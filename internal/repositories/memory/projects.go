package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// ProjectRepository stores projects in a Store.
type ProjectRepository struct {
	s *Store
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(s *Store) *ProjectRepository {
	return &ProjectRepository{s: s}
}

// Create inserts a project.
func (r *ProjectRepository) Create(ctx context.Context, project models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[project.ProjectID]; ok {
		return models.ErrAlreadyExists
	}
	r.s.projects[project.ProjectID] = project
	r.s.order = append(r.s.order, project.ProjectID)
	record(ctx, func() {
		delete(r.s.projects, project.ProjectID)
		for i := len(r.s.order) - 1; i >= 0; i-- {
			if r.s.order[i] == project.ProjectID {
				r.s.order = append(r.s.order[:i:i], r.s.order[i+1:]...)
				break
			}
		}
	})
	return nil
}

// GetByID returns one project.
func (r *ProjectRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("%w: project %s", models.ErrNotFound, projectID)
	}
	return &p, nil
}

// List returns every project in creation order.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Project, 0, len(r.s.order))
	for _, id := range r.s.order {
		out = append(out, r.s.projects[id])
	}
	return out, nil
}

// AddFunds increments the raised total. Undo subtracts amount instead of
// restoring a snapshot, leaving other users' donations in place.
func (r *ProjectRepository) AddFunds(ctx context.Context, projectID uuid.UUID, amount models.Amount) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("%w: project %s", models.ErrNotFound, projectID)
	}
	current, err := p.CurrentAmount.Add(amount)
	if err != nil {
		return nil, err
	}
	p.CurrentAmount = current
	r.s.projects[projectID] = p
	record(ctx, func() {
		cur := r.s.projects[projectID]
		cur.CurrentAmount -= amount
		r.s.projects[projectID] = cur
	})
	return &p, nil
}
