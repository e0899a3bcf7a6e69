package ledger

import (
	"fmt"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func (l *Ledger) Technicians() []models.Technician {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Technician(nil), l.technicians...)
}

func (l *Ledger) CreateTechnician(req models.TechnicianRequest) (models.Technician, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tech := models.Technician{
		ID:     l.newID("TCH"),
		Name:   req.Name,
		Role:   req.Role,
		Status: req.Status,
		Email:  req.Email,
		Image:  req.Image,
	}
	l.technicians = append(l.technicians, tech)

	err := l.commit(keyTechnicians, l.technicians,
		fmt.Sprintf("Registered technician %s (%s)", tech.ID, tech.Name),
		"Technician registered", metadata.SeveritySuccess)
	return tech, err
}

func (l *Ledger) UpdateTechnician(id string, update models.TechnicianUpdate) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.technicians {
		if l.technicians[i].ID != id {
			continue
		}

		update.Apply(&l.technicians[i])
		err := l.commit(keyTechnicians, l.technicians,
			fmt.Sprintf("Updated technician %s (%s)", id, l.technicians[i].Name),
			"Technician updated", metadata.SeverityInfo)
		return true, err
	}

	return false, nil
}

func (l *Ledger) DeleteTechnician(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, t := range l.technicians {
		if t.ID != id {
			continue
		}

		l.technicians = append(l.technicians[:i], l.technicians[i+1:]...)
		err := l.commit(keyTechnicians, l.technicians,
			fmt.Sprintf("Removed technician %s (%s)", id, t.Name),
			"Technician removed", metadata.SeverityError)
		return true, err
	}

	return false, nil
}
