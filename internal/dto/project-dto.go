package dto

import "github.com/aarondl/null/v8"

// Project statuses as the portal accepts them; the projects service
// stores the uppercased form.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

type Project struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	LabID         string             `json:"labId"`
	Description   string             `json:"description"`
	StartDate     string             `json:"startDate"`
	EndDate       null.String        `json:"endDate"`
	ProjectLeader int64              `json:"projectLeader"`
	Participants  []int64            `json:"participants"`
	Status        string             `json:"status"`
	Equipment     []EquipmentRequest `json:"equipment"`
}

// CreateProjectRequest is the two-part body of POST /projects upstream.
type CreateProjectRequest struct {
	Project           Project            `json:"project"`
	EquipmentRequests []EquipmentRequest `json:"equipmentRequests"`
}

type NewProjectDTO struct {
	Name         string             `json:"name" validate:"required"`
	LabID        string             `json:"labId" validate:"required"`
	Description  string             `json:"description"`
	Participants []int64            `json:"participants"`
	Equipment    []EquipmentRequest `json:"equipment" validate:"required,min=1,dive"`
}

type SearchLabsDTO struct {
	Equipment []EquipmentRequest `json:"equipment" validate:"required,min=1,dive"`
}

type ChangeStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type GenerateEquipmentDTO struct {
	Description string         `json:"description" validate:"required"`
	Selected    map[string]int `json:"selected"`
}

// GenerateEquipmentRequest is the upstream suggestion payload.
type GenerateEquipmentRequest struct {
	Description        string   `json:"description"`
	AvailableEquipment []string `json:"availableEquipment"`
}

type ProjectView struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	LabID        string             `json:"labId"`
	Description  string             `json:"description"`
	StartDate    string             `json:"startDate"`
	EndDate      null.String        `json:"endDate"`
	LeaderID     int64              `json:"leaderId"`
	LeaderName   string             `json:"leaderName"`
	Status       string             `json:"status"`
	Participants []int64            `json:"participants"`
	Equipment    []EquipmentRequest `json:"equipment"`
}

type ProjectMemberView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Role     string `json:"role"`
}

type ProjectDetailView struct {
	ProjectView
	Members         []ProjectMemberView `json:"members"`
	CanChangeStatus bool                `json:"canChangeStatus"`
}

// NewProjectFormView carries everything the creation form needs in one
// response: the equipment catalogue and the colleagues that can be
// invited as participants.
type NewProjectFormView struct {
	EquipmentNames []string `json:"equipmentNames"`
	Employees      []User   `json:"employees"`
}
