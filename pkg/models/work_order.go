package models

import "github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"

type WorkOrder struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description,omitempty"`
	AssetID     string                     `json:"assetId"`
	AssetName   string                     `json:"assetName"` // snapshot of the asset name at last write
	AssignedTo  string                     `json:"assignedTo"` // empty = unassigned
	Priority    metadata.WorkOrderPriority `json:"priority"`
	Status      metadata.WorkOrderStatus   `json:"status"`
	DueDate     string                     `json:"dueDate"`
	CreatedAt   string                     `json:"createdAt"`
	Type        metadata.WorkOrderType     `json:"type,omitempty"`
	PartsUsed   string                     `json:"partsUsed,omitempty"` // "<PartName> x<Qty>, ..." legacy text format
}

type WorkOrderRequest struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description,omitempty"`
	AssetID     string                     `json:"assetId"`
	AssetName   string                     `json:"assetName"`
	AssignedTo  string                     `json:"assignedTo"`
	Priority    metadata.WorkOrderPriority `json:"priority"`
	Status      metadata.WorkOrderStatus   `json:"status"`
	DueDate     string                     `json:"dueDate"`
	CreatedAt   string                     `json:"createdAt,omitempty"`
	Type        metadata.WorkOrderType     `json:"type,omitempty"`
	PartsUsed   string                     `json:"partsUsed,omitempty"`
}

type WorkOrderUpdate struct {
	Title       *string                     `json:"title,omitempty"`
	Description *string                     `json:"description,omitempty"`
	AssetID     *string                     `json:"assetId,omitempty"`
	AssetName   *string                     `json:"assetName,omitempty"`
	AssignedTo  *string                     `json:"assignedTo,omitempty"`
	Priority    *metadata.WorkOrderPriority `json:"priority,omitempty"`
	Status      *metadata.WorkOrderStatus   `json:"status,omitempty"`
	DueDate     *string                     `json:"dueDate,omitempty"`
	Type        *metadata.WorkOrderType     `json:"type,omitempty"`
	PartsUsed   *string                     `json:"partsUsed,omitempty"`
}

func (u WorkOrderUpdate) Apply(w *WorkOrder) {
	if u.Title != nil {
		w.Title = *u.Title
	}
	if u.Description != nil {
		w.Description = *u.Description
	}
	if u.AssetID != nil {
		w.AssetID = *u.AssetID
	}
	if u.AssetName != nil {
		w.AssetName = *u.AssetName
	}
	if u.AssignedTo != nil {
		w.AssignedTo = *u.AssignedTo
	}
	if u.Priority != nil {
		w.Priority = *u.Priority
	}
	if u.Status != nil {
		w.Status = *u.Status
	}
	if u.DueDate != nil {
		w.DueDate = *u.DueDate
	}
	if u.Type != nil {
		w.Type = *u.Type
	}
	if u.PartsUsed != nil {
		w.PartsUsed = *u.PartsUsed
	}
}
