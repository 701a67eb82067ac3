package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"lab-portal/internal/dto"
	"lab-portal/pkg/config"

	"go.uber.org/zap"
)

type LabsClientInterface interface {
	ListLabs(ctx context.Context) ([]dto.Lab, error)
	CreateLab(ctx context.Context, payload dto.CreateLabDTO) (*dto.Lab, error)
	DeleteLab(ctx context.Context, labID string) error
	EquipmentNames(ctx context.Context) ([]string, error)
	ListEquipment(ctx context.Context, labID string) ([]dto.Equipment, error)
	AddEquipment(ctx context.Context, labID string, batch []dto.EquipmentRequest) (bool, error)
	RemoveEquipment(ctx context.Context, labID string, equipmentID int64, quantity int) (bool, error)
	SetOccupation(ctx context.Context, labID, reason string) error
	ClearOccupation(ctx context.Context, labID string) error
	MatchLabs(ctx context.Context, requirements []dto.EquipmentRequest) ([]dto.Lab, error)
}

type LabsClient struct {
	*Client
}

func NewLabsClient(cfg config.UpstreamConfig, logger *zap.Logger) LabsClientInterface {
	return &LabsClient{Client: newClient("labs", cfg, logger)}
}

func (c *LabsClient) ListLabs(ctx context.Context) ([]dto.Lab, error) {
	var labs []dto.Lab
	if err := c.do(ctx, http.MethodGet, "/labs", nil, nil, &labs); err != nil {
		return nil, err
	}
	return labs, nil
}

func (c *LabsClient) CreateLab(ctx context.Context, payload dto.CreateLabDTO) (*dto.Lab, error) {
	var created dto.Lab
	if err := c.do(ctx, http.MethodPost, "/labs", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *LabsClient) DeleteLab(ctx context.Context, labID string) error {
	query := url.Values{"labId": []string{labID}}
	return c.do(ctx, http.MethodDelete, "/labs", query, nil, nil)
}

// EquipmentNames lists every equipment name known across labs; used to
// populate the new-project selection set.
func (c *LabsClient) EquipmentNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.do(ctx, http.MethodGet, "/labs/equipment", nil, nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *LabsClient) ListEquipment(ctx context.Context, labID string) ([]dto.Equipment, error) {
	var equipment []dto.Equipment
	path := fmt.Sprintf("/labs/%s/equipment", url.PathEscape(labID))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// AddEquipment submits a batch; the upstream success signal is a bare
// boolean, not the created records.
func (c *LabsClient) AddEquipment(ctx context.Context, labID string, batch []dto.EquipmentRequest) (bool, error) {
	var ok bool
	path := fmt.Sprintf("/labs/%s/equipment", url.PathEscape(labID))
	if err := c.do(ctx, http.MethodPost, path, nil, batch, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *LabsClient) RemoveEquipment(ctx context.Context, labID string, equipmentID int64, quantity int) (bool, error) {
	var ok bool
	path := fmt.Sprintf("/labs/%s/equipment/%d", url.PathEscape(labID), equipmentID)
	query := url.Values{"quantity": []string{strconv.Itoa(quantity)}}
	if err := c.do(ctx, http.MethodDelete, path, query, nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *LabsClient) SetOccupation(ctx context.Context, labID, reason string) error {
	path := fmt.Sprintf("/labs/%s/occupation", url.PathEscape(labID))
	return c.do(ctx, http.MethodPatch, path, nil, dto.OccupationPatch{OccupactionType: reason}, nil)
}

// ClearOccupation PATCHes without a body; the labs service resets the lab
// to Available.
func (c *LabsClient) ClearOccupation(ctx context.Context, labID string) error {
	path := fmt.Sprintf("/labs/%s/occupation", url.PathEscape(labID))
	return c.do(ctx, http.MethodPatch, path, nil, nil, nil)
}

// MatchLabs is the search phase of project creation: no mutation happens.
func (c *LabsClient) MatchLabs(ctx context.Context, requirements []dto.EquipmentRequest) ([]dto.Lab, error) {
	var labs []dto.Lab
	if err := c.do(ctx, http.MethodPost, "/labs/reservation", nil, requirements, &labs); err != nil {
		return nil, err
	}
	return labs, nil
}
