package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lab-portal/internal/clients"
	"lab-portal/internal/dto"
	apperrors "lab-portal/pkg/errors"
	"lab-portal/pkg/session"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type ProjectServiceInterface interface {
	ProjectLists(ctx context.Context) (active, past []dto.ProjectView, err error)
	UserProjects(ctx context.Context, userID int64) (active, past []dto.ProjectView, err error)
	ProjectDetail(ctx context.Context, id int64, current session.User) (*dto.ProjectDetailView, error)
	SearchLabs(ctx context.Context, requirements []dto.EquipmentRequest) ([]dto.LabView, error)
	CreateProject(ctx context.Context, current session.User, payload dto.NewProjectDTO) (*dto.Project, error)
	ChangeStatus(ctx context.Context, current session.User, id int64, status string) (*dto.Project, error)
	GenerateEquipment(ctx context.Context, description string, selected map[string]int) (map[string]int, error)
	NewProjectForm(ctx context.Context, current session.User) (*dto.NewProjectFormView, error)
}

type ProjectService struct {
	projects clients.ProjectsClientInterface
	users    clients.UsersClientInterface
	labs     clients.LabsClientInterface
	logger   *zap.Logger
}

func NewProjectService(
	projects clients.ProjectsClientInterface,
	users clients.UsersClientInterface,
	labs clients.LabsClientInterface,
	logger *zap.Logger,
) ProjectServiceInterface {
	return &ProjectService{
		projects: projects,
		users:    users,
		labs:     labs,
		logger:   logger,
	}
}

// userNames maps user ids to records for display joins. A failure here
// degrades the join, never the view: names fall back to raw ids.
func (s *ProjectService) userNames(ctx context.Context) map[int64]dto.User {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Warn("could not resolve user names", zap.Error(err))
		return map[int64]dto.User{}
	}
	byID := make(map[int64]dto.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID
}

func projectViewFrom(p dto.Project, names map[int64]dto.User) dto.ProjectView {
	leaderName := ""
	if u, ok := names[p.ProjectLeader]; ok {
		leaderName = u.Name
	}
	return dto.ProjectView{
		ID:           p.ID,
		Name:         p.Name,
		LabID:        p.LabID,
		Description:  p.Description,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		LeaderID:     p.ProjectLeader,
		LeaderName:   leaderName,
		Status:       p.Status,
		Participants: p.Participants,
		Equipment:    p.Equipment,
	}
}

func projectViewsFrom(projects []dto.Project, names map[int64]dto.User) []dto.ProjectView {
	views := make([]dto.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, projectViewFrom(p, names))
	}
	return views
}

func (s *ProjectService) ProjectLists(ctx context.Context) ([]dto.ProjectView, []dto.ProjectView, error) {
	active, err := s.projects.ListActive(ctx)
	if err != nil {
		return nil, nil, mapUpstreamError(err, "projects service is unavailable")
	}
	past, err := s.projects.ListCompleted(ctx)
	if err != nil {
		return nil, nil, mapUpstreamError(err, "projects service is unavailable")
	}

	names := s.userNames(ctx)
	return projectViewsFrom(active, names), projectViewsFrom(past, names), nil
}

func (s *ProjectService) UserProjects(ctx context.Context, userID int64) ([]dto.ProjectView, []dto.ProjectView, error) {
	active, err := s.projects.UserActive(ctx, userID)
	if err != nil {
		return nil, nil, mapUpstreamError(err, "projects service is unavailable")
	}
	past, err := s.projects.UserCompleted(ctx, userID)
	if err != nil {
		return nil, nil, mapUpstreamError(err, "projects service is unavailable")
	}

	names := s.userNames(ctx)
	return projectViewsFrom(active, names), projectViewsFrom(past, names), nil
}

func (s *ProjectService) ProjectDetail(ctx context.Context, id int64, current session.User) (*dto.ProjectDetailView, error) {
	project, err := s.projects.Find(ctx, id)
	if err != nil {
		if code, ok := upstreamStatus(err); ok && code == http.StatusNotFound {
			return nil, apperrors.NewHttpError(http.StatusNotFound, "project not found", err, nil)
		}
		return nil, mapUpstreamError(err, "projects service is unavailable")
	}

	names := s.userNames(ctx)
	view := dto.ProjectDetailView{
		ProjectView:     projectViewFrom(*project, names),
		CanChangeStatus: current.ID == project.ProjectLeader,
	}

	members := make([]dto.ProjectMemberView, 0, len(project.Participants)+1)
	members = append(members, memberViewFrom(project.ProjectLeader, "Project Leader", names))
	for _, pid := range project.Participants {
		members = append(members, memberViewFrom(pid, "Team Member", names))
	}
	view.Members = members
	return &view, nil
}

func memberViewFrom(userID int64, role string, names map[int64]dto.User) dto.ProjectMemberView {
	member := dto.ProjectMemberView{ID: userID, Role: role}
	if u, ok := names[userID]; ok {
		member.Name = u.Name
		member.Position = u.Position
	}
	return member
}

// SearchLabs is the first, read-only phase of project creation.
func (s *ProjectService) SearchLabs(ctx context.Context, requirements []dto.EquipmentRequest) ([]dto.LabView, error) {
	labs, err := s.labs.MatchLabs(ctx, requirements)
	if err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}
	views := make([]dto.LabView, 0, len(labs))
	for _, lab := range labs {
		views = append(views, dto.LabViewFrom(lab))
	}
	return views, nil
}

// CreateProject is the reservation phase. The project record is assembled
// server-side: the session user leads, participants never include the
// leader, the start date is today and the end date is open.
func (s *ProjectService) CreateProject(ctx context.Context, current session.User, payload dto.NewProjectDTO) (*dto.Project, error) {
	participants := make([]int64, 0, len(payload.Participants))
	for _, pid := range payload.Participants {
		if pid != current.ID {
			participants = append(participants, pid)
		}
	}

	request := dto.CreateProjectRequest{
		Project: dto.Project{
			Name:          payload.Name,
			LabID:         payload.LabID,
			Description:   payload.Description,
			StartDate:     time.Now().Format("2006-01-02"),
			EndDate:       null.String{},
			ProjectLeader: current.ID,
			Participants:  participants,
		},
		EquipmentRequests: payload.Equipment,
	}

	created, err := s.projects.Create(ctx, request)
	if err != nil {
		if code, ok := upstreamStatus(err); ok && code == http.StatusConflict {
			return nil, apperrors.NewHttpError(http.StatusConflict,
				"Reservation failed: not enough equipment available in selected lab", err, nil)
		}
		return nil, mapUpstreamError(err, "projects service is unavailable")
	}

	s.logger.Info("project created",
		zap.Int64("projectID", created.ID),
		zap.String("labId", created.LabID),
		zap.Int64("leader", current.ID),
	)
	return created, nil
}

// ChangeStatus is restricted to the project leader. The record returned by
// the projects service replaces local state; the submitted value is never
// echoed back.
func (s *ProjectService) ChangeStatus(ctx context.Context, current session.User, id int64, status string) (*dto.Project, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case dto.StatusActive, dto.StatusCompleted, dto.StatusCanceled:
	default:
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "status must be active, completed or canceled", nil, nil)
	}

	project, err := s.projects.Find(ctx, id)
	if err != nil {
		return nil, mapUpstreamError(err, "projects service is unavailable")
	}
	if project.ProjectLeader != current.ID {
		return nil, apperrors.NewHttpError(http.StatusForbidden, "only the project leader may change the project status", nil, nil)
	}

	updated, err := s.projects.UpdateStatus(ctx, id, strings.ToUpper(status))
	if err != nil {
		return nil, mapUpstreamError(err, "projects service is unavailable")
	}

	s.logger.Info("project status changed",
		zap.Int64("projectID", id),
		zap.String("status", updated.Status),
	)
	return updated, nil
}

// GenerateEquipment asks the projects service for suggestions derived from
// the description and merges them into the current selection.
func (s *ProjectService) GenerateEquipment(ctx context.Context, description string, selected map[string]int) (map[string]int, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "project description is required", nil, nil)
	}

	available, err := s.labs.EquipmentNames(ctx)
	if err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}

	suggestions, err := s.projects.GenerateEquipment(ctx, dto.GenerateEquipmentRequest{
		Description:        description,
		AvailableEquipment: available,
	})
	if err != nil {
		return nil, mapUpstreamError(err, "projects service is unavailable")
	}

	return MergeSuggestions(selected, available, suggestions), nil
}

// NewProjectForm gathers the equipment catalogue and the invitable
// colleagues. The current user leads the project and is excluded from
// the candidate list.
func (s *ProjectService) NewProjectForm(ctx context.Context, current session.User) (*dto.NewProjectFormView, error) {
	names, err := s.labs.EquipmentNames(ctx)
	if err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, mapUpstreamError(err, "users service is unavailable")
	}

	employees := make([]dto.User, 0, len(users))
	for _, u := range users {
		if u.ID == current.ID {
			continue
		}
		employees = append(employees, u)
	}

	return &dto.NewProjectFormView{
		EquipmentNames: names,
		Employees:      employees,
	}, nil
}

// MergeSuggestions folds suggested items into the selection. A suggestion
// counts only when its name case-insensitively matches a known available
// name; the canonical listed spelling wins and quantities are at least 1.
// Unmatched suggestions are dropped silently.
func MergeSuggestions(selected map[string]int, available []string, suggestions []dto.EquipmentRequest) map[string]int {
	merged := make(map[string]int, len(selected)+len(suggestions))
	for name, qty := range selected {
		merged[name] = qty
	}

	canonical := make(map[string]string, len(available))
	for _, name := range available {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			canonical[strings.ToLower(trimmed)] = name
		}
	}

	for _, suggestion := range suggestions {
		key := strings.ToLower(strings.TrimSpace(suggestion.Name))
		name, ok := canonical[key]
		if !ok {
			continue
		}
		qty := suggestion.Stock
		if qty < 1 {
			qty = 1
		}
		merged[name] = qty
	}
	return merged
}
