package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// ProjectRepository stores projects in PostgreSQL.
type ProjectRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectRepository {
	return &ProjectRepository{db: db, txGetter: txGetter}
}

func (r *ProjectRepository) Create(ctx context.Context, project models.Project) error {
	query := `
		INSERT INTO projects (project_id, title, description, target_amount, current_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{project.ProjectID, project.Title, project.Description, project.TargetAmount, project.CurrentAmount, project.CreatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, nil, err)

	return mapError(err, "project "+project.ProjectID.String())
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	const query = `
		SELECT project_id, title, description, target_amount, current_amount, created_at
		FROM projects
		WHERE project_id = $1
	`

	var p models.Project
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &p, query, projectID)

	logQuery(query, []any{projectID}, p, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: project %s", models.ErrNotFound, projectID)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every project in creation order.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	const query = `
		SELECT project_id, title, description, target_amount, current_amount, created_at
		FROM projects
		ORDER BY seq ASC
	`

	projects := []models.Project{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &projects, query)

	logQuery(query, nil, len(projects), err)

	if err != nil {
		return nil, err
	}
	return projects, nil
}

// AddFunds increments the raised total in place so concurrent donations never overwrite each other.
func (r *ProjectRepository) AddFunds(ctx context.Context, projectID uuid.UUID, amount models.Amount) (*models.Project, error) {
	query := `
		UPDATE projects
		SET current_amount = current_amount + $2
		WHERE project_id = $1
		RETURNING project_id, title, description, target_amount, current_amount, created_at
	`
	args := []any{projectID, amount}

	var p models.Project
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &p, query, args...)

	logQuery(query, args, p.CurrentAmount, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: project %s", models.ErrNotFound, projectID)
	}
	if err != nil {
		return nil, mapError(err, "project total")
	}
	return &p, nil
}
