package services

import (
	"context"
	"strings"

	"lab-portal/internal/dto"

	"go.uber.org/zap"
)

// ProjectReportRow is one flattened line of the projects export.
type ProjectReportRow struct {
	ID         int64
	Name       string
	LabID      string
	LeaderName string
	Status     string
	StartDate  string
	EndDate    string
	Equipment  string
	TeamSize   int
}

type ReportServiceInterface interface {
	ProjectRows(ctx context.Context) ([]ProjectReportRow, error)
}

type ReportService struct {
	projects ProjectServiceInterface
	logger   *zap.Logger
}

func NewReportService(projects ProjectServiceInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{projects: projects, logger: logger}
}

// ProjectRows flattens active and past projects into export rows.
func (s *ReportService) ProjectRows(ctx context.Context) ([]ProjectReportRow, error) {
	active, past, err := s.projects.ProjectLists(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ProjectReportRow, 0, len(active)+len(past))
	for _, view := range append(active, past...) {
		rows = append(rows, rowFromView(view))
	}
	return rows, nil
}

func rowFromView(view dto.ProjectView) ProjectReportRow {
	items := make([]string, 0, len(view.Equipment))
	for _, eq := range view.Equipment {
		items = append(items, eq.Name)
	}

	endDate := "-"
	if view.EndDate.Valid {
		endDate = view.EndDate.String
	}

	leader := view.LeaderName
	if leader == "" {
		leader = "-"
	}

	return ProjectReportRow{
		ID:         view.ID,
		Name:       view.Name,
		LabID:      view.LabID,
		LeaderName: leader,
		Status:     strings.ToUpper(view.Status),
		StartDate:  view.StartDate,
		EndDate:    endDate,
		Equipment:  strings.Join(items, ", "),
		TeamSize:   len(view.Participants) + 1,
	}
}
