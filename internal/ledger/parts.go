package ledger

import (
	"fmt"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func (l *Ledger) Parts() []models.Part {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Part(nil), l.parts...)
}

func (l *Ledger) GetPart(id string) (models.Part, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.parts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Part{}, false
}

// LowStockParts lists parts with quantity below the configured
// threshold.
func (l *Ledger) LowStockParts() []models.Part {
	l.mu.Lock()
	defer l.mu.Unlock()

	var low []models.Part
	for _, p := range l.parts {
		if p.Quantity < l.cfg.LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

func (l *Ledger) CreatePart(req models.PartRequest) (models.Part, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	part := models.Part{
		ID:        l.newID("PRT"),
		Name:      req.Name,
		SKU:       req.SKU,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Category:  req.Category,
		Image:     req.Image,
	}
	if part.Quantity < 0 {
		part.Quantity = 0
	}
	l.parts = append(l.parts, part)

	err := l.commit(keyParts, l.parts,
		fmt.Sprintf("Added part %s (%s)", part.ID, part.Name),
		"Part added to inventory", metadata.SeveritySuccess)
	return part, err
}

// UpdatePart is the manual stock-adjustment path. Unlike the work-order
// reconciliation batch it notifies, and a quantity change gets the
// stock-delta wording in the activity log.
func (l *Ledger) UpdatePart(id string, update models.PartUpdate) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.parts {
		if l.parts[i].ID != id {
			continue
		}

		prevQty := l.parts[i].Quantity
		update.Apply(&l.parts[i])
		if l.parts[i].Quantity < 0 {
			l.parts[i].Quantity = 0
		}

		action := fmt.Sprintf("Updated part %s (%s)", id, l.parts[i].Name)
		if update.Quantity != nil && l.parts[i].Quantity != prevQty {
			action = fmt.Sprintf("%s stock changed %d -> %d", l.parts[i].Name, prevQty, l.parts[i].Quantity)
		}

		err := l.commit(keyParts, l.parts, action, "Inventory updated", metadata.SeverityInfo)
		return true, err
	}

	return false, nil
}

func (l *Ledger) DeletePart(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.parts {
		if p.ID != id {
			continue
		}

		l.parts = append(l.parts[:i], l.parts[i+1:]...)
		err := l.commit(keyParts, l.parts,
			fmt.Sprintf("Removed part %s (%s)", id, p.Name),
			"Part removed", metadata.SeverityError)
		return true, err
	}

	return false, nil
}
