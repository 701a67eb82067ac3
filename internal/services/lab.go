package services

import (
	"context"
	"strings"
	"time"

	"lab-portal/internal/clients"
	"lab-portal/internal/dto"
	"lab-portal/internal/viewmodel"

	"go.uber.org/zap"
)

// DefaultOccupationReason is sent when the user confirms occupation
// without stating a reason.
const DefaultOccupationReason = "Occupied"

type LabServiceInterface interface {
	ListLabs(ctx context.Context) ([]dto.LabView, error)
	CreateLab(ctx context.Context, payload dto.CreateLabDTO) (*dto.LabView, error)
	DeleteLab(ctx context.Context, labID string) error
	OccupyLab(ctx context.Context, labID, reason string) (*dto.Occupancy, error)
	FreeLab(ctx context.Context, labID string) (*dto.Occupancy, error)
}

type LabService struct {
	labs        clients.LabsClientInterface
	cache       *viewmodel.Collection[dto.Lab]
	snapshotTTL time.Duration
	logger      *zap.Logger
}

func NewLabService(labs clients.LabsClientInterface, snapshotTTL time.Duration, logger *zap.Logger) *LabService {
	return &LabService{
		labs:        labs,
		cache:       viewmodel.NewCollection[dto.Lab](),
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// ListLabs answers from the cached collection while it is younger than the
// snapshot TTL; otherwise the list is refetched. Mutations keep the cache
// current, so a snapshot read never hides a change made through the portal.
func (s *LabService) ListLabs(ctx context.Context) ([]dto.LabView, error) {
	labs, ok := s.cache.Snapshot(s.snapshotTTL)
	if !ok {
		var err error
		labs, err = s.cache.Load(ctx, s.labs.ListLabs)
		if err != nil {
			return nil, mapUpstreamError(err, "labs service is unavailable")
		}
	}

	views := make([]dto.LabView, 0, len(labs))
	for _, lab := range labs {
		views = append(views, dto.LabViewFrom(lab))
	}
	return views, nil
}

// CreateLab appends the record returned by the labs service to the cached
// collection; a failure leaves the collection untouched.
func (s *LabService) CreateLab(ctx context.Context, payload dto.CreateLabDTO) (*dto.LabView, error) {
	created, err := s.labs.CreateLab(ctx, payload)
	if err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}

	s.cache.Mutate(func(labs []dto.Lab) []dto.Lab {
		return append(labs, *created)
	})

	view := dto.LabViewFrom(*created)
	s.logger.Info("lab created", zap.String("labId", created.LabID))
	return &view, nil
}

func (s *LabService) DeleteLab(ctx context.Context, labID string) error {
	if err := s.labs.DeleteLab(ctx, labID); err != nil {
		return mapUpstreamError(err, "labs service is unavailable")
	}

	s.cache.Mutate(func(labs []dto.Lab) []dto.Lab {
		kept := labs[:0]
		for _, lab := range labs {
			if lab.LabID != labID {
				kept = append(kept, lab)
			}
		}
		return kept
	})

	s.logger.Info("lab deleted", zap.String("labId", labID))
	return nil
}

// OccupyLab marks a lab occupied with the given reason, defaulting when
// the reason is blank.
func (s *LabService) OccupyLab(ctx context.Context, labID, reason string) (*dto.Occupancy, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultOccupationReason
	}

	if err := s.labs.SetOccupation(ctx, labID, reason); err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}

	s.setCachedOccupation(labID, reason)
	occ := dto.OccupancyFromType(reason)
	return &occ, nil
}

func (s *LabService) FreeLab(ctx context.Context, labID string) (*dto.Occupancy, error) {
	if err := s.labs.ClearOccupation(ctx, labID); err != nil {
		return nil, mapUpstreamError(err, "labs service is unavailable")
	}

	s.setCachedOccupation(labID, "Available")
	occ := dto.OccupancyFromType("Available")
	return &occ, nil
}

func (s *LabService) setCachedOccupation(labID, occupactionType string) {
	s.cache.Mutate(func(labs []dto.Lab) []dto.Lab {
		for i := range labs {
			if labs[i].LabID == labID {
				labs[i].OccupactionType = occupactionType
			}
		}
		return labs
	})
}
