package ledger

import (
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

// pmLeadTimeDays is how far out a generated work order is due.
const pmLeadTimeDays = 3

const pmAutoDescription = "Auto-generated preventive maintenance task."

// GenerateWorkOrderFromSchedule creates one Pending preventive work
// order from the schedule and rolls the schedule forward: last run
// becomes today, next due becomes today + frequency. Each of the two
// commits logs and notifies on its own. An unknown schedule id is a
// silent no-op. There is no timer behind this; recurrence only advances
// when a caller invokes it.
func (l *Ledger) GenerateWorkOrderFromSchedule(scheduleID string) (models.WorkOrder, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var schedule *models.PMSchedule
	for i := range l.schedules {
		if l.schedules[i].ID == scheduleID {
			schedule = &l.schedules[i]
			break
		}
	}
	if schedule == nil {
		return models.WorkOrder{}, false, nil
	}

	now := l.now()
	order, err := l.createWorkOrderLocked(models.WorkOrderRequest{
		Title:       "PM: " + schedule.TaskName,
		Description: pmAutoDescription,
		AssetID:     schedule.AssetID,
		AssetName:   schedule.AssetName,
		AssignedTo:  schedule.AssignedTo,
		Priority:    metadata.PriorityMedium,
		Status:      metadata.WorkOrderPending,
		DueDate:     now.AddDate(0, 0, pmLeadTimeDays).Format(dateLayout),
		CreatedAt:   now.Format(dateLayout),
		Type:        metadata.TypePreventive,
	})
	if err != nil {
		return order, true, err
	}

	lastRun := now.Format(dateLayout)
	nextDue := now.AddDate(0, 0, schedule.FrequencyDays).Format(dateLayout)
	_, err = l.updateScheduleLocked(scheduleID, models.PMScheduleUpdate{
		LastRunDate: &lastRun,
		NextDueDate: &nextDue,
	})

	return order, true, err
}
