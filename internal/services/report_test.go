package services

import (
	"context"
	"testing"

	"lab-portal/internal/dto"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProjectRowsFlattenActiveAndPast(t *testing.T) {
	projects := &stubProjectsClient{
		listActiveFn: func(context.Context) ([]dto.Project, error) {
			return []dto.Project{{
				ID: 1, Name: "Sequencing", LabID: "lab-1", ProjectLeader: 7,
				StartDate: "2026-08-01", Status: "active",
				Participants: []int64{9, 11},
				Equipment:    []dto.EquipmentRequest{{Name: "Microscope", Stock: 2}, {Name: "Centrifuge", Stock: 1}},
			}}, nil
		},
		listCompletedFn: func(context.Context) ([]dto.Project, error) {
			return []dto.Project{{
				ID: 2, Name: "Archive", LabID: "lab-2", ProjectLeader: 9,
				StartDate: "2026-01-10", EndDate: null.StringFrom("2026-06-30"), Status: "COMPLETED",
			}}, nil
		},
	}
	users := &stubUsersClient{
		listUsersFn: func(context.Context) ([]dto.User, error) {
			return []dto.User{{ID: 7, Name: "Ada"}}, nil
		},
	}
	svc := NewReportService(newProjectService(projects, users, nil), zap.NewNop())

	rows, err := svc.ProjectRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ada", rows[0].LeaderName)
	assert.Equal(t, "ACTIVE", rows[0].Status)
	assert.Equal(t, "-", rows[0].EndDate)
	assert.Equal(t, "Microscope, Centrifuge", rows[0].Equipment)
	assert.Equal(t, 3, rows[0].TeamSize)

	assert.Equal(t, "-", rows[1].LeaderName, "unknown leader renders as a dash")
	assert.Equal(t, "2026-06-30", rows[1].EndDate)
	assert.Equal(t, 1, rows[1].TeamSize)
}
