package models

import "github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"

type Technician struct {
	ID     string                    `json:"id"`
	Name   string                    `json:"name"`
	Role   string                    `json:"role"`
	Status metadata.TechnicianStatus `json:"status"`
	Email  string                    `json:"email"`
	Image  string                    `json:"image,omitempty"`
}

type TechnicianRequest struct {
	Name   string                    `json:"name"`
	Role   string                    `json:"role"`
	Status metadata.TechnicianStatus `json:"status"`
	Email  string                    `json:"email"`
	Image  string                    `json:"image,omitempty"`
}

type TechnicianUpdate struct {
	Name   *string                    `json:"name,omitempty"`
	Role   *string                    `json:"role,omitempty"`
	Status *metadata.TechnicianStatus `json:"status,omitempty"`
	Email  *string                    `json:"email,omitempty"`
	Image  *string                    `json:"image,omitempty"`
}

func (u TechnicianUpdate) Apply(t *Technician) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Role != nil {
		t.Role = *u.Role
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Email != nil {
		t.Email = *u.Email
	}
	if u.Image != nil {
		t.Image = *u.Image
	}
}
