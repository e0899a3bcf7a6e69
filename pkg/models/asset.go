package models

import "github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"

type Asset struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Category        string               `json:"category"`
	Model           string               `json:"model"`
	SerialNumber    string               `json:"serialNumber"`
	InstallDate     string               `json:"installDate"`
	Location        string               `json:"location"`
	Status          metadata.AssetStatus `json:"status"`
	Uptime          float64              `json:"uptime"` // percentage, 0-100
	LastMaintenance string               `json:"lastMaintenance"`
	NextMaintenance string               `json:"nextMaintenance"`
	Image           string               `json:"image,omitempty"`
}

// AssetRequest carries the caller-supplied fields for a new asset.
// The ledger assigns the id.
type AssetRequest struct {
	Name            string               `json:"name"`
	Category        string               `json:"category"`
	Model           string               `json:"model"`
	SerialNumber    string               `json:"serialNumber"`
	InstallDate     string               `json:"installDate"`
	Location        string               `json:"location"`
	Status          metadata.AssetStatus `json:"status"`
	Uptime          float64              `json:"uptime"`
	LastMaintenance string               `json:"lastMaintenance"`
	NextMaintenance string               `json:"nextMaintenance"`
	Image           string               `json:"image,omitempty"`
}

// AssetUpdate is a partial update. Nil fields are left untouched.
type AssetUpdate struct {
	Name            *string               `json:"name,omitempty"`
	Category        *string               `json:"category,omitempty"`
	Model           *string               `json:"model,omitempty"`
	SerialNumber    *string               `json:"serialNumber,omitempty"`
	InstallDate     *string               `json:"installDate,omitempty"`
	Location        *string               `json:"location,omitempty"`
	Status          *metadata.AssetStatus `json:"status,omitempty"`
	Uptime          *float64              `json:"uptime,omitempty"`
	LastMaintenance *string               `json:"lastMaintenance,omitempty"`
	NextMaintenance *string               `json:"nextMaintenance,omitempty"`
	Image           *string               `json:"image,omitempty"`
}

func (u AssetUpdate) Apply(a *Asset) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.Model != nil {
		a.Model = *u.Model
	}
	if u.SerialNumber != nil {
		a.SerialNumber = *u.SerialNumber
	}
	if u.InstallDate != nil {
		a.InstallDate = *u.InstallDate
	}
	if u.Location != nil {
		a.Location = *u.Location
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Uptime != nil {
		a.Uptime = *u.Uptime
	}
	if u.LastMaintenance != nil {
		a.LastMaintenance = *u.LastMaintenance
	}
	if u.NextMaintenance != nil {
		a.NextMaintenance = *u.NextMaintenance
	}
	if u.Image != nil {
		a.Image = *u.Image
	}
}
