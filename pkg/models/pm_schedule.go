package models

// LastRunNever marks a schedule that has not yet generated a work order.
const LastRunNever = "Never"

type PMSchedule struct {
	ID            string `json:"id"`
	TaskName      string `json:"taskName"`
	AssetID       string `json:"assetId"`
	AssetName     string `json:"assetName"`
	FrequencyDays int    `json:"frequencyDays"`
	LastRunDate   string `json:"lastRunDate"`
	NextDueDate   string `json:"nextDueDate"`
	AssignedTo    string `json:"assignedTo"`
}

type PMScheduleRequest struct {
	TaskName      string `json:"taskName"`
	AssetID       string `json:"assetId"`
	AssetName     string `json:"assetName"`
	FrequencyDays int    `json:"frequencyDays"`
	LastRunDate   string `json:"lastRunDate"`
	NextDueDate   string `json:"nextDueDate"`
	AssignedTo    string `json:"assignedTo"`
}

type PMScheduleUpdate struct {
	TaskName      *string `json:"taskName,omitempty"`
	AssetID       *string `json:"assetId,omitempty"`
	AssetName     *string `json:"assetName,omitempty"`
	FrequencyDays *int    `json:"frequencyDays,omitempty"`
	LastRunDate   *string `json:"lastRunDate,omitempty"`
	NextDueDate   *string `json:"nextDueDate,omitempty"`
	AssignedTo    *string `json:"assignedTo,omitempty"`
}

func (u PMScheduleUpdate) Apply(s *PMSchedule) {
	if u.TaskName != nil {
		s.TaskName = *u.TaskName
	}
	if u.AssetID != nil {
		s.AssetID = *u.AssetID
	}
	if u.AssetName != nil {
		s.AssetName = *u.AssetName
	}
	if u.FrequencyDays != nil {
		s.FrequencyDays = *u.FrequencyDays
	}
	if u.LastRunDate != nil {
		s.LastRunDate = *u.LastRunDate
	}
	if u.NextDueDate != nil {
		s.NextDueDate = *u.NextDueDate
	}
	if u.AssignedTo != nil {
		s.AssignedTo = *u.AssignedTo
	}
}
