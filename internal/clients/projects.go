package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"lab-portal/internal/dto"
	"lab-portal/pkg/config"

	"go.uber.org/zap"
)

type ProjectsClientInterface interface {
	ListActive(ctx context.Context) ([]dto.Project, error)
	ListCompleted(ctx context.Context) ([]dto.Project, error)
	Find(ctx context.Context, id int64) (*dto.Project, error)
	UserActive(ctx context.Context, userID int64) ([]dto.Project, error)
	UserCompleted(ctx context.Context, userID int64) ([]dto.Project, error)
	Create(ctx context.Context, payload dto.CreateProjectRequest) (*dto.Project, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*dto.Project, error)
	GenerateEquipment(ctx context.Context, payload dto.GenerateEquipmentRequest) ([]dto.EquipmentRequest, error)
}

type ProjectsClient struct {
	*Client
}

func NewProjectsClient(cfg config.UpstreamConfig, logger *zap.Logger) ProjectsClientInterface {
	return &ProjectsClient{Client: newClient("projects", cfg, logger)}
}

func (c *ProjectsClient) ListActive(ctx context.Context) ([]dto.Project, error) {
	var projects []dto.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *ProjectsClient) ListCompleted(ctx context.Context) ([]dto.Project, error) {
	var projects []dto.Project
	if err := c.do(ctx, http.MethodGet, "/projects/completed", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *ProjectsClient) Find(ctx context.Context, id int64) (*dto.Project, error) {
	var project dto.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *ProjectsClient) UserActive(ctx context.Context, userID int64) ([]dto.Project, error) {
	var projects []dto.Project
	path := fmt.Sprintf("/projects/user/%d/active", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *ProjectsClient) UserCompleted(ctx context.Context, userID int64) ([]dto.Project, error) {
	var projects []dto.Project
	path := fmt.Sprintf("/projects/user/%d/completed", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Create is the reservation phase: 201 carries the created record, 409
// means the chosen lab no longer has enough stock. Both non-2xx answers
// come back as UpstreamError for the project service to map.
func (c *ProjectsClient) Create(ctx context.Context, payload dto.CreateProjectRequest) (*dto.Project, error) {
	var created dto.Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStatus carries the uppercased status as a query parameter and
// returns the authoritative updated record.
func (c *ProjectsClient) UpdateStatus(ctx context.Context, id int64, status string) (*dto.Project, error) {
	var updated dto.Project
	path := fmt.Sprintf("/projects/%d/status", id)
	query := url.Values{"status": []string{status}}
	if err := c.do(ctx, http.MethodPut, path, query, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *ProjectsClient) GenerateEquipment(ctx context.Context, payload dto.GenerateEquipmentRequest) ([]dto.EquipmentRequest, error) {
	var suggestions []dto.EquipmentRequest
	if err := c.do(ctx, http.MethodPost, "/projects/generateEquipment", nil, payload, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}
