package metadata

import "fmt"

type AssetStatus string

const (
	AssetRunning     AssetStatus = "Running"
	AssetDowntime    AssetStatus = "Downtime"
	AssetMaintenance AssetStatus = "Maintenance"
	AssetOffline     AssetStatus = "Offline"
)

func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetRunning, AssetDowntime, AssetMaintenance, AssetOffline:
		return true
	default:
		return false
	}
}

func (s AssetStatus) String() string {
	return string(s)
}

func NewAssetStatus(value string) (AssetStatus, error) {
	status := AssetStatus(value)
	if !status.IsValid() {
		return status, fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s, %s",
			AssetRunning, AssetDowntime, AssetMaintenance, AssetOffline,
		)
	}
	return status, nil
}

type WorkOrderStatus string

const (
	WorkOrderRequested  WorkOrderStatus = "Requested"
	WorkOrderPending    WorkOrderStatus = "Pending"
	WorkOrderInProgress WorkOrderStatus = "In Progress"
	WorkOrderOnHold     WorkOrderStatus = "On Hold"
	WorkOrderCompleted  WorkOrderStatus = "Completed"
)

func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderRequested, WorkOrderPending, WorkOrderInProgress, WorkOrderOnHold, WorkOrderCompleted:
		return true
	default:
		return false
	}
}

func (s WorkOrderStatus) String() string {
	return string(s)
}

func NewWorkOrderStatus(value string) (WorkOrderStatus, error) {
	status := WorkOrderStatus(value)
	if !status.IsValid() {
		return status, fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s, %s, %s",
			WorkOrderRequested, WorkOrderPending, WorkOrderInProgress, WorkOrderOnHold, WorkOrderCompleted,
		)
	}
	return status, nil
}

type WorkOrderPriority string

const (
	PriorityLow      WorkOrderPriority = "Low"
	PriorityMedium   WorkOrderPriority = "Medium"
	PriorityHigh     WorkOrderPriority = "High"
	PriorityCritical WorkOrderPriority = "Critical"
)

func (p WorkOrderPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

func (p WorkOrderPriority) String() string {
	return string(p)
}

func NewWorkOrderPriority(value string) (WorkOrderPriority, error) {
	priority := WorkOrderPriority(value)
	if !priority.IsValid() {
		return priority, fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s, %s",
			PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical,
		)
	}
	return priority, nil
}

type WorkOrderType string

const (
	TypeReactive   WorkOrderType = "Reactive"
	TypePreventive WorkOrderType = "Preventive"
)

func (t WorkOrderType) IsValid() bool {
	return t == TypeReactive || t == TypePreventive
}

func (t WorkOrderType) String() string {
	return string(t)
}

type TechnicianStatus string

const (
	TechnicianActive   TechnicianStatus = "Active"
	TechnicianInactive TechnicianStatus = "Inactive"
)

func (s TechnicianStatus) IsValid() bool {
	return s == TechnicianActive || s == TechnicianInactive
}

func (s TechnicianStatus) String() string {
	return string(s)
}

// Severity classifies activity log entries and notifications.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	default:
		return false
	}
}

func (s Severity) String() string {
	return string(s)
}
