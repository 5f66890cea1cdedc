package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// ProjectStore persists projects and their funding totals.
type ProjectStore interface {
	Create(ctx context.Context, project models.Project) error
	GetByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	AddFunds(ctx context.Context, projectID uuid.UUID, amount models.Amount) (*models.Project, error) // Atomic increment
}

// ProjectFundingTracker keeps project totals in step with accepted donations.
type ProjectFundingTracker struct {
	store ProjectStore
	now   func() time.Time
}

// NewProjectFundingTracker creates a new ProjectFundingTracker.
func NewProjectFundingTracker(store ProjectStore) *ProjectFundingTracker {
	return &ProjectFundingTracker{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateProject registers a new fundraising project with nothing raised.
func (t *ProjectFundingTracker) CreateProject(ctx context.Context, title, description string, target models.Amount) (models.Project, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Project{}, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if !target.IsPositive() {
		return models.Project{}, fmt.Errorf("%w: target amount must be greater than zero", models.ErrValidation)
	}

	project := models.Project{
		ProjectID:    uuid.New(),
		Title:        title,
		Description:  strings.TrimSpace(description),
		TargetAmount: target,
		CreatedAt:    t.now(),
	}
	if err := t.store.Create(ctx, project); err != nil {
		logFailure("create project", err, "title", title)
		return models.Project{}, err
	}

	logger.Log.Infow("project created", "projectID", project.ProjectID, "target", target)
	return project, nil
}

// Get returns one project.
func (t *ProjectFundingTracker) Get(ctx context.Context, projectID uuid.UUID) (models.Project, error) {
	p, err := t.store.GetByID(ctx, projectID)
	if err != nil {
		logFailure("get project", err, "projectID", projectID)
		return models.Project{}, err
	}
	return *p, nil
}

// ListProjects returns every project in creation order.
func (t *ProjectFundingTracker) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := t.store.List(ctx)
	if err != nil {
		logFailure("list projects", err)
		return nil, err
	}
	return projects, nil
}

// ApplyDonation adds amount to the project total. No upper bound is enforced.
func (t *ProjectFundingTracker) ApplyDonation(ctx context.Context, projectID uuid.UUID, amount models.Amount) (models.Project, error) {
	if !amount.IsPositive() {
		return models.Project{}, fmt.Errorf("%w: amount must be greater than zero", models.ErrInvalidAmount)
	}
	p, err := t.store.AddFunds(ctx, projectID, amount)
	if err != nil {
		logFailure("apply donation", err, "projectID", projectID, "amount", amount)
		return models.Project{}, err
	}
	return *p, nil
}
