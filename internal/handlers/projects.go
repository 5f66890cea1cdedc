package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

//go:generate mockgen -source=projects.go -destination=projects_mock_test.go -package=handlers

// ProjectLister returns every project.
type ProjectLister interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// ProjectCreator adds a project.
type ProjectCreator interface {
	CreateProject(ctx context.Context, title, description string, target models.Amount) (models.Project, error)
}

// ProjectResponse is a project with its funding progress
// swagger:model ProjectResponse
type ProjectResponse struct {
	models.Project

	// Funding progress capped at 100
	// default: 80
	ProgressPercent float64 `json:"progress_percent"`
}

// CreateProjectRequest represents the JSON body for a new project
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	// required: true
	// default: Clean Water
	Title string `json:"title"`

	Description string `json:"description"`

	// required: true
	// default: 10000.00
	TargetAmount models.Amount `json:"target_amount" swaggertype:"number"`
}

func projectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{Project: p, ProgressPercent: p.ProgressPercent()}
}

// NewListProjectsHandler returns every project in creation order.
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} handlers.ProjectResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /projects [get]
// @Security BearerAuth
func NewListProjectsHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := svc.ListProjects(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		resp := make([]ProjectResponse, 0, len(projects))
		for _, p := range projects {
			resp = append(resp, projectResponse(p))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateProjectHandler returns an HTTP handler for adding a project.
// @Summary Create project
// @Tags admin
// @Accept json
// @Produce json
// @Param createProjectRequest body handlers.CreateProjectRequest true "Project"
// @Success 201 {object} handlers.ProjectResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /admin/projects [post]
// @Security BearerAuth
func NewCreateProjectHandler(svc ProjectCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProjectRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		project, err := svc.CreateProject(r.Context(), req.Title, req.Description, req.TargetAmount)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, projectResponse(project))
	}
}
