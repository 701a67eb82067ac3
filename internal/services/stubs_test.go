package services

import (
	"context"
	"errors"

	"lab-portal/internal/dto"
)

// Stub clients with overridable funcs; unset methods fail loudly so a test
// only has to wire what it exercises.

var errStubNotWired = errors.New("stub method not wired")

type stubLabsClient struct {
	listLabsFn        func(ctx context.Context) ([]dto.Lab, error)
	createLabFn       func(ctx context.Context, payload dto.CreateLabDTO) (*dto.Lab, error)
	deleteLabFn       func(ctx context.Context, labID string) error
	equipmentNamesFn  func(ctx context.Context) ([]string, error)
	listEquipmentFn   func(ctx context.Context, labID string) ([]dto.Equipment, error)
	addEquipmentFn    func(ctx context.Context, labID string, batch []dto.EquipmentRequest) (bool, error)
	removeEquipmentFn func(ctx context.Context, labID string, equipmentID int64, quantity int) (bool, error)
	setOccupationFn   func(ctx context.Context, labID, reason string) error
	clearOccupationFn func(ctx context.Context, labID string) error
	matchLabsFn       func(ctx context.Context, requirements []dto.EquipmentRequest) ([]dto.Lab, error)
}

func (s *stubLabsClient) ListLabs(ctx context.Context) ([]dto.Lab, error) {
	if s.listLabsFn == nil {
		return nil, errStubNotWired
	}
	return s.listLabsFn(ctx)
}

func (s *stubLabsClient) CreateLab(ctx context.Context, payload dto.CreateLabDTO) (*dto.Lab, error) {
	if s.createLabFn == nil {
		return nil, errStubNotWired
	}
	return s.createLabFn(ctx, payload)
}

func (s *stubLabsClient) DeleteLab(ctx context.Context, labID string) error {
	if s.deleteLabFn == nil {
		return errStubNotWired
	}
	return s.deleteLabFn(ctx, labID)
}

func (s *stubLabsClient) EquipmentNames(ctx context.Context) ([]string, error) {
	if s.equipmentNamesFn == nil {
		return nil, errStubNotWired
	}
	return s.equipmentNamesFn(ctx)
}

func (s *stubLabsClient) ListEquipment(ctx context.Context, labID string) ([]dto.Equipment, error) {
	if s.listEquipmentFn == nil {
		return nil, errStubNotWired
	}
	return s.listEquipmentFn(ctx, labID)
}

func (s *stubLabsClient) AddEquipment(ctx context.Context, labID string, batch []dto.EquipmentRequest) (bool, error) {
	if s.addEquipmentFn == nil {
		return false, errStubNotWired
	}
	return s.addEquipmentFn(ctx, labID, batch)
}

func (s *stubLabsClient) RemoveEquipment(ctx context.Context, labID string, equipmentID int64, quantity int) (bool, error) {
	if s.removeEquipmentFn == nil {
		return false, errStubNotWired
	}
	return s.removeEquipmentFn(ctx, labID, equipmentID, quantity)
}

func (s *stubLabsClient) SetOccupation(ctx context.Context, labID, reason string) error {
	if s.setOccupationFn == nil {
		return errStubNotWired
	}
	return s.setOccupationFn(ctx, labID, reason)
}

func (s *stubLabsClient) ClearOccupation(ctx context.Context, labID string) error {
	if s.clearOccupationFn == nil {
		return errStubNotWired
	}
	return s.clearOccupationFn(ctx, labID)
}

func (s *stubLabsClient) MatchLabs(ctx context.Context, requirements []dto.EquipmentRequest) ([]dto.Lab, error) {
	if s.matchLabsFn == nil {
		return nil, errStubNotWired
	}
	return s.matchLabsFn(ctx, requirements)
}

type stubUsersClient struct {
	loginFn     func(ctx context.Context, payload dto.LoginDTO) (*dto.User, error)
	registerFn  func(ctx context.Context, payload dto.RegisterRequest) (*dto.User, error)
	listUsersFn func(ctx context.Context) ([]dto.User, error)
}

func (s *stubUsersClient) Login(ctx context.Context, payload dto.LoginDTO) (*dto.User, error) {
	if s.loginFn == nil {
		return nil, errStubNotWired
	}
	return s.loginFn(ctx, payload)
}

func (s *stubUsersClient) Register(ctx context.Context, payload dto.RegisterRequest) (*dto.User, error) {
	if s.registerFn == nil {
		return nil, errStubNotWired
	}
	return s.registerFn(ctx, payload)
}

func (s *stubUsersClient) ListUsers(ctx context.Context) ([]dto.User, error) {
	if s.listUsersFn == nil {
		return nil, errStubNotWired
	}
	return s.listUsersFn(ctx)
}

type stubProjectsClient struct {
	listActiveFn        func(ctx context.Context) ([]dto.Project, error)
	listCompletedFn     func(ctx context.Context) ([]dto.Project, error)
	findFn              func(ctx context.Context, id int64) (*dto.Project, error)
	userActiveFn        func(ctx context.Context, userID int64) ([]dto.Project, error)
	userCompletedFn     func(ctx context.Context, userID int64) ([]dto.Project, error)
	createFn            func(ctx context.Context, payload dto.CreateProjectRequest) (*dto.Project, error)
	updateStatusFn      func(ctx context.Context, id int64, status string) (*dto.Project, error)
	generateEquipmentFn func(ctx context.Context, payload dto.GenerateEquipmentRequest) ([]dto.EquipmentRequest, error)
}

func (s *stubProjectsClient) ListActive(ctx context.Context) ([]dto.Project, error) {
	if s.listActiveFn == nil {
		return nil, errStubNotWired
	}
	return s.listActiveFn(ctx)
}

func (s *stubProjectsClient) ListCompleted(ctx context.Context) ([]dto.Project, error) {
	if s.listCompletedFn == nil {
		return nil, errStubNotWired
	}
	return s.listCompletedFn(ctx)
}

func (s *stubProjectsClient) Find(ctx context.Context, id int64) (*dto.Project, error) {
	if s.findFn == nil {
		return nil, errStubNotWired
	}
	return s.findFn(ctx, id)
}

func (s *stubProjectsClient) UserActive(ctx context.Context, userID int64) ([]dto.Project, error) {
	if s.userActiveFn == nil {
		return nil, errStubNotWired
	}
	return s.userActiveFn(ctx, userID)
}

func (s *stubProjectsClient) UserCompleted(ctx context.Context, userID int64) ([]dto.Project, error) {
	if s.userCompletedFn == nil {
		return nil, errStubNotWired
	}
	return s.userCompletedFn(ctx, userID)
}

func (s *stubProjectsClient) Create(ctx context.Context, payload dto.CreateProjectRequest) (*dto.Project, error) {
	if s.createFn == nil {
		return nil, errStubNotWired
	}
	return s.createFn(ctx, payload)
}

func (s *stubProjectsClient) UpdateStatus(ctx context.Context, id int64, status string) (*dto.Project, error) {
	if s.updateStatusFn == nil {
		return nil, errStubNotWired
	}
	return s.updateStatusFn(ctx, id, status)
}

func (s *stubProjectsClient) GenerateEquipment(ctx context.Context, payload dto.GenerateEquipmentRequest) ([]dto.EquipmentRequest, error) {
	if s.generateEquipmentFn == nil {
		return nil, errStubNotWired
	}
	return s.generateEquipmentFn(ctx, payload)
}
