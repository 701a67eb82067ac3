package dto

import (
	"strings"

	"github.com/aarondl/null/v8"
)

// Lab is the labs-service wire record. OccupactionType is "Available" when
// the lab accepts new occupation; any other string is the occupation
// reason. The misspelling is the upstream field name, kept as-is.
type Lab struct {
	LabID           string `json:"labId"`
	Name            string `json:"name,omitempty"`
	Location        string `json:"location"`
	OccupactionType string `json:"occupactionType"`
}

type CreateLabDTO struct {
	LabID    string `json:"labId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// Occupancy is the collapsed tagged state the portal exposes instead of
// the raw occupactionType string.
type Occupancy struct {
	Occupied bool        `json:"occupied"`
	Reason   null.String `json:"reason"`
}

func OccupancyFromType(occupactionType string) Occupancy {
	if strings.EqualFold(strings.TrimSpace(occupactionType), "available") {
		return Occupancy{Occupied: false}
	}
	occ := Occupancy{Occupied: true}
	if reason := strings.TrimSpace(occupactionType); reason != "" {
		occ.Reason = null.StringFrom(reason)
	}
	return occ
}

type LabView struct {
	LabID     string    `json:"labId"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Occupancy Occupancy `json:"occupancy"`
}

func LabViewFrom(lab Lab) LabView {
	name := lab.Name
	if name == "" {
		name = lab.LabID
	}
	return LabView{
		LabID:     lab.LabID,
		Name:      name,
		Location:  lab.Location,
		Occupancy: OccupancyFromType(lab.OccupactionType),
	}
}

type OccupyLabDTO struct {
	Reason string `json:"reason"`
}

// OccupationPatch is the PATCH body the labs service expects when a lab
// is being occupied; freeing sends no body at all.
type OccupationPatch struct {
	OccupactionType string `json:"occupactionType"`
}
