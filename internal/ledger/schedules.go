package ledger

import (
	"fmt"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func (l *Ledger) Schedules() []models.PMSchedule {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.PMSchedule(nil), l.schedules...)
}

// DueSchedules lists schedules whose next due date is today or earlier.
// Date strings sort lexicographically, so a plain compare is enough.
func (l *Ledger) DueSchedules() []models.PMSchedule {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.today()
	var due []models.PMSchedule
	for _, s := range l.schedules {
		if s.NextDueDate != "" && s.NextDueDate <= today {
			due = append(due, s)
		}
	}
	return due
}

func (l *Ledger) CreateSchedule(req models.PMScheduleRequest) (models.PMSchedule, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	schedule := models.PMSchedule{
		ID:            l.newID("PM"),
		TaskName:      req.TaskName,
		AssetID:       req.AssetID,
		AssetName:     req.AssetName,
		FrequencyDays: req.FrequencyDays,
		LastRunDate:   req.LastRunDate,
		NextDueDate:   req.NextDueDate,
		AssignedTo:    req.AssignedTo,
	}
	if schedule.LastRunDate == "" {
		schedule.LastRunDate = models.LastRunNever
	}
	if schedule.NextDueDate == "" && schedule.FrequencyDays > 0 {
		schedule.NextDueDate = l.now().AddDate(0, 0, schedule.FrequencyDays).Format(dateLayout)
	}
	l.schedules = append(l.schedules, schedule)

	err := l.commit(keySchedules, l.schedules,
		fmt.Sprintf("Created PM schedule %s (%s)", schedule.ID, schedule.TaskName),
		"Preventive Maintenance Schedule created", metadata.SeveritySuccess)
	return schedule, err
}

func (l *Ledger) UpdateSchedule(id string, update models.PMScheduleUpdate) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.updateScheduleLocked(id, update)
}

func (l *Ledger) updateScheduleLocked(id string, update models.PMScheduleUpdate) (bool, error) {
	for i := range l.schedules {
		if l.schedules[i].ID != id {
			continue
		}

		update.Apply(&l.schedules[i])
		err := l.commit(keySchedules, l.schedules,
			fmt.Sprintf("Updated PM schedule %s (%s)", id, l.schedules[i].TaskName),
			"Schedule updated", metadata.SeverityInfo)
		return true, err
	}

	return false, nil
}

func (l *Ledger) DeleteSchedule(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.schedules {
		if s.ID != id {
			continue
		}

		l.schedules = append(l.schedules[:i], l.schedules[i+1:]...)
		err := l.commit(keySchedules, l.schedules,
			fmt.Sprintf("Deleted PM schedule %s (%s)", id, s.TaskName),
			"Schedule deleted", metadata.SeverityError)
		return true, err
	}

	return false, nil
}
