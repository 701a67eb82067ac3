package dto

type Equipment struct {
	ID           int64  `json:"id"`
	LabID        string `json:"labId"`
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	CurrentUsage int    `json:"currentUsage"`
}

// EquipmentRequest is the {name, stock} pair used both when adding
// inventory and when stating a project's equipment needs.
type EquipmentRequest struct {
	Name  string `json:"name" validate:"required"`
	Stock int    `json:"stock" validate:"required,gte=1"`
}

type RemoveEquipmentDTO struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}
