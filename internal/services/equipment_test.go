package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"lab-portal/internal/clients"
	"lab-portal/internal/dto"
	apperrors "lab-portal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddEquipmentRefetchesOnSuccess(t *testing.T) {
	refetched := []dto.Equipment{
		{ID: 1, LabID: "lab-1", Name: "Microscope", Stock: 5},
	}
	var sentBatch []dto.EquipmentRequest
	labs := &stubLabsClient{
		addEquipmentFn: func(_ context.Context, labID string, batch []dto.EquipmentRequest) (bool, error) {
			assert.Equal(t, "lab-1", labID)
			sentBatch = batch
			return true, nil
		},
		listEquipmentFn: func(_ context.Context, labID string) ([]dto.Equipment, error) {
			return refetched, nil
		},
	}
	svc := NewEquipmentService(labs, 0, zap.NewNop())

	items, err := svc.AddEquipment(context.Background(), "lab-1", dto.EquipmentRequest{Name: "Microscope", Stock: 5})
	require.NoError(t, err)
	assert.Equal(t, refetched, items)
	require.Len(t, sentBatch, 1)
	assert.Equal(t, "Microscope", sentBatch[0].Name)
}

func TestAddEquipmentRejectedBatch(t *testing.T) {
	labs := &stubLabsClient{
		addEquipmentFn: func(context.Context, string, []dto.EquipmentRequest) (bool, error) {
			return false, nil
		},
	}
	svc := NewEquipmentService(labs, 0, zap.NewNop())

	_, err := svc.AddEquipment(context.Background(), "lab-1", dto.EquipmentRequest{Name: "Microscope", Stock: 1})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
}

func TestAddEquipmentUpstreamErrorSurfacesBody(t *testing.T) {
	labs := &stubLabsClient{
		addEquipmentFn: func(context.Context, string, []dto.EquipmentRequest) (bool, error) {
			return false, &clients.UpstreamError{Service: "labs", StatusCode: http.StatusConflict, Body: "duplicate equipment name"}
		},
	}
	svc := NewEquipmentService(labs, 0, zap.NewNop())

	_, err := svc.AddEquipment(context.Background(), "lab-1", dto.EquipmentRequest{Name: "Microscope", Stock: 1})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.Equal(t, "duplicate equipment name", httpErr.Message)
}

func TestListEquipmentServesSnapshotWithinTTL(t *testing.T) {
	fetches := 0
	labs := &stubLabsClient{
		listEquipmentFn: func(_ context.Context, labID string) ([]dto.Equipment, error) {
			fetches++
			return []dto.Equipment{{ID: 1, LabID: labID, Name: "Microscope", Stock: 5}}, nil
		},
	}
	svc := NewEquipmentService(labs, time.Minute, zap.NewNop())

	_, err := svc.ListEquipment(context.Background(), "lab-1")
	require.NoError(t, err)
	_, err = svc.ListEquipment(context.Background(), "lab-1")
	require.NoError(t, err)
	assert.Equal(t, 1, fetches, "a fresh snapshot answers without an upstream call")

	// A different lab gets its own collection and its own fetch.
	_, err = svc.ListEquipment(context.Background(), "lab-2")
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestAddEquipmentRejectionInvalidatesSnapshot(t *testing.T) {
	fetches := 0
	labs := &stubLabsClient{
		listEquipmentFn: func(_ context.Context, labID string) ([]dto.Equipment, error) {
			fetches++
			return []dto.Equipment{{ID: 1, LabID: labID, Name: "Microscope", Stock: 5}}, nil
		},
		addEquipmentFn: func(context.Context, string, []dto.EquipmentRequest) (bool, error) {
			return false, nil
		},
	}
	svc := NewEquipmentService(labs, time.Minute, zap.NewNop())

	_, err := svc.ListEquipment(context.Background(), "lab-1")
	require.NoError(t, err)

	_, err = svc.AddEquipment(context.Background(), "lab-1", dto.EquipmentRequest{Name: "Microscope", Stock: 1})
	require.Error(t, err)

	_, err = svc.ListEquipment(context.Background(), "lab-1")
	require.NoError(t, err)
	assert.Equal(t, 2, fetches, "a rejected batch forces the next read past the snapshot")
}

func TestDropLabDiscardsCachedEquipment(t *testing.T) {
	fetches := 0
	labs := &stubLabsClient{
		listEquipmentFn: func(_ context.Context, labID string) ([]dto.Equipment, error) {
			fetches++
			return []dto.Equipment{{ID: 1, LabID: labID, Name: "Microscope", Stock: 5}}, nil
		},
	}
	svc := NewEquipmentService(labs, time.Minute, zap.NewNop())

	_, err := svc.ListEquipment(context.Background(), "lab-1")
	require.NoError(t, err)

	svc.DropLab("lab-1")

	_, err = svc.ListEquipment(context.Background(), "lab-1")
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestRemoveEquipmentKeepsProjectionWhenRefetchFails(t *testing.T) {
	initial := []dto.Equipment{
		{ID: 1, LabID: "lab-1", Name: "Microscope", Stock: 5},
		{ID: 2, LabID: "lab-1", Name: "Centrifuge", Stock: 2},
	}
	listCalls := 0
	labs := &stubLabsClient{
		listEquipmentFn: func(context.Context, string) ([]dto.Equipment, error) {
			listCalls++
			if listCalls == 1 {
				return initial, nil
			}
			return nil, &clients.TransportError{Service: "labs", Err: errors.New("connection refused")}
		},
		removeEquipmentFn: func(context.Context, string, int64, int) (bool, error) {
			return true, nil
		},
	}
	svc := NewEquipmentService(labs, 0, zap.NewNop())

	_, err := svc.ListEquipment(context.Background(), "lab-1")
	require.NoError(t, err)

	items, err := svc.RemoveEquipment(context.Background(), "lab-1", 1, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Stock, "projection applies the stock rule when the refetch fails")
}

func TestRemoveEquipmentRejected(t *testing.T) {
	labs := &stubLabsClient{
		removeEquipmentFn: func(context.Context, string, int64, int) (bool, error) {
			return false, nil
		},
	}
	svc := NewEquipmentService(labs, 0, zap.NewNop())

	_, err := svc.RemoveEquipment(context.Background(), "lab-1", 1, 1)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
}

func TestApplyRemoval(t *testing.T) {
	base := []dto.Equipment{
		{ID: 1, Name: "Microscope", Stock: 5},
		{ID: 2, Name: "Centrifuge", Stock: 2},
	}

	tests := []struct {
		name        string
		equipmentID int64
		quantity    int
		wantStocks  map[int64]int
	}{
		{"partial removal decrements", 1, 2, map[int64]int{1: 3, 2: 2}},
		{"exact removal deletes the row", 2, 2, map[int64]int{1: 5}},
		{"over-removal deletes the row", 2, 10, map[int64]int{1: 5}},
		{"unknown id leaves everything", 99, 1, map[int64]int{1: 5, 2: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := make([]dto.Equipment, len(base))
			copy(in, base)

			out := ApplyRemoval(in, tc.equipmentID, tc.quantity)

			got := make(map[int64]int, len(out))
			for _, eq := range out {
				got[eq.ID] = eq.Stock
			}
			assert.Equal(t, tc.wantStocks, got)
		})
	}
}
