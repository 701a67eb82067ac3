package services

import (
	"context"
	"net/http"
	"time"

	"lab-portal/internal/clients"
	"lab-portal/internal/dto"
	"lab-portal/internal/viewmodel"
	apperrors "lab-portal/pkg/errors"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	ListEquipment(ctx context.Context, labID string) ([]dto.Equipment, error)
	AddEquipment(ctx context.Context, labID string, request dto.EquipmentRequest) ([]dto.Equipment, error)
	RemoveEquipment(ctx context.Context, labID string, equipmentID int64, quantity int) ([]dto.Equipment, error)
	DropLab(labID string)
}

type EquipmentService struct {
	labs        clients.LabsClientInterface
	perLab      *viewmodel.Keyed[dto.Equipment]
	snapshotTTL time.Duration
	logger      *zap.Logger
}

func NewEquipmentService(labs clients.LabsClientInterface, snapshotTTL time.Duration, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{
		labs:        labs,
		perLab:      viewmodel.NewKeyed[dto.Equipment](),
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

func (s *EquipmentService) fetchFor(labID string) func(context.Context) ([]dto.Equipment, error) {
	return func(ctx context.Context) ([]dto.Equipment, error) {
		return s.labs.ListEquipment(ctx, labID)
	}
}

// ListEquipment serves the equipment of one lab keyed by lab id, so rapid
// switching between labs cannot leak a stale list into the newer one. A
// snapshot younger than the TTL answers without an upstream call.
func (s *EquipmentService) ListEquipment(ctx context.Context, labID string) ([]dto.Equipment, error) {
	col := s.perLab.For(labID)
	if equipment, ok := col.Snapshot(s.snapshotTTL); ok {
		return equipment, nil
	}

	equipment, err := col.Load(ctx, s.fetchFor(labID))
	if err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}
	return equipment, nil
}

// AddEquipment submits a one-element batch. The upstream reply is only a
// boolean, so on success the authoritative list is re-fetched rather than
// guessed at.
func (s *EquipmentService) AddEquipment(ctx context.Context, labID string, request dto.EquipmentRequest) ([]dto.Equipment, error) {
	ok, err := s.labs.AddEquipment(ctx, labID, []dto.EquipmentRequest{request})
	if err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}
	if !ok {
		// The boolean reply says nothing about what was applied; force the
		// next read past the snapshot.
		s.perLab.For(labID).Invalidate()
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "labs service rejected the equipment batch", nil, nil)
	}

	refreshed, err := s.perLab.For(labID).Load(ctx, s.fetchFor(labID))
	if err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}
	s.logger.Info("equipment added", zap.String("labId", labID), zap.String("name", request.Name), zap.Int("stock", request.Stock))
	return refreshed, nil
}

// RemoveEquipment decrements stock by quantity. After the boolean
// confirmation the stock rule is applied to the cached list so the view is
// immediately consistent, then the authoritative list is re-fetched. If
// that refetch fails the local projection stands: the mutation itself
// already succeeded, so only a warning is logged.
func (s *EquipmentService) RemoveEquipment(ctx context.Context, labID string, equipmentID int64, quantity int) ([]dto.Equipment, error) {
	ok, err := s.labs.RemoveEquipment(ctx, labID, equipmentID, quantity)
	if err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}
	if !ok {
		s.perLab.For(labID).Invalidate()
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "labs service rejected the removal", nil, nil)
	}

	col := s.perLab.For(labID)
	col.Mutate(func(items []dto.Equipment) []dto.Equipment {
		return ApplyRemoval(items, equipmentID, quantity)
	})

	refreshed, err := col.Load(ctx, s.fetchFor(labID))
	if err != nil {
		s.logger.Warn("equipment refresh after removal failed, keeping local projection",
			zap.String("labId", labID), zap.Error(err))
		return col.Items(), nil
	}
	return refreshed, nil
}

// DropLab discards the cached equipment of a deleted lab so the keyed map
// does not accumulate entries for labs that no longer exist.
func (s *EquipmentService) DropLab(labID string) {
	s.perLab.Drop(labID)
}

// ApplyRemoval is the stock rule: removing at least the full stock deletes
// the row, anything less decrements it.
func ApplyRemoval(items []dto.Equipment, equipmentID int64, quantity int) []dto.Equipment {
	kept := make([]dto.Equipment, 0, len(items))
	for _, eq := range items {
		if eq.ID == equipmentID {
			newStock := eq.Stock - quantity
			if newStock <= 0 {
				continue
			}
			eq.Stock = newStock
		}
		kept = append(kept, eq)
	}
	return kept
}
