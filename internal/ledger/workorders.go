package ledger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

// WorkOrders returns the collection newest-first (creation prepends).
func (l *Ledger) WorkOrders() []models.WorkOrder {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.WorkOrder(nil), l.workOrders...)
}

func (l *Ledger) GetWorkOrder(id string) (models.WorkOrder, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, w := range l.workOrders {
		if w.ID == id {
			return w, true
		}
	}
	return models.WorkOrder{}, false
}

func (l *Ledger) CreateWorkOrder(req models.WorkOrderRequest) (models.WorkOrder, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.createWorkOrderLocked(req)
}

func (l *Ledger) createWorkOrderLocked(req models.WorkOrderRequest) (models.WorkOrder, error) {
	order := models.WorkOrder{
		ID:          l.newID("WO"),
		Title:       req.Title,
		Description: req.Description,
		AssetID:     req.AssetID,
		AssetName:   req.AssetName,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
		CreatedAt:   req.CreatedAt,
		Type:        req.Type,
		PartsUsed:   req.PartsUsed,
	}
	if order.CreatedAt == "" {
		order.CreatedAt = l.today()
	}

	// newest first
	l.workOrders = append([]models.WorkOrder{order}, l.workOrders...)

	err := l.commit(keyWorkOrders, l.workOrders,
		fmt.Sprintf("Created %s (%s)", order.ID, order.Title),
		"Work Order created", metadata.SeveritySuccess)
	return order, err
}

// UpdateWorkOrder merges the partial update. When the update moves the
// status from any non-Completed state to Completed, the parts listed on
// the order are deducted from inventory first; re-saving an order that
// is already Completed never deducts again. Moving out of Completed
// does not restock.
func (l *Ledger) UpdateWorkOrder(id string, update models.WorkOrderUpdate) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.workOrders {
		if l.workOrders[i].ID != id {
			continue
		}
		order := &l.workOrders[i]

		completing := update.Status != nil &&
			*update.Status == metadata.WorkOrderCompleted &&
			order.Status != metadata.WorkOrderCompleted

		if completing {
			partsUsed := order.PartsUsed
			if update.PartsUsed != nil {
				partsUsed = *update.PartsUsed
			}
			l.reconcileInventoryLocked(order.ID, partsUsed)
		}

		prevStatus := order.Status
		update.Apply(order)

		action := fmt.Sprintf("Updated %s (%s)", id, order.Title)
		if update.Status != nil && *update.Status != prevStatus {
			action = fmt.Sprintf("%s status changed to %s", id, *update.Status)
		}

		err := l.commit(keyWorkOrders, l.workOrders, action, "Work Order updated", metadata.SeverityInfo)
		return true, err
	}

	return false, nil
}

func (l *Ledger) DeleteWorkOrder(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, w := range l.workOrders {
		if w.ID != id {
			continue
		}

		l.workOrders = append(l.workOrders[:i], l.workOrders[i+1:]...)
		err := l.commit(keyWorkOrders, l.workOrders,
			fmt.Sprintf("Deleted %s (%s)", id, w.Title),
			"Work Order deleted", metadata.SeverityError)
		return true, err
	}

	return false, nil
}

// reconcileInventoryLocked deducts the consumed parts on a Completed
// transition. Matching is exact name, case sensitive, first match wins;
// quantities floor at zero; tokens that do not parse or do not match are
// skipped. The part collection is persisted once as a batch and no
// notification is emitted for the deduction itself.
func (l *Ledger) reconcileInventoryLocked(orderID, partsUsed string) {
	lines := ParsePartsUsed(partsUsed)
	if len(lines) == 0 {
		return
	}

	matched := 0
	for _, line := range lines {
		for i := range l.parts {
			if l.parts[i].Name != line.Name {
				continue
			}

			remaining := l.parts[i].Quantity - line.Qty
			if remaining < 0 {
				remaining = 0
			}
			l.parts[i].Quantity = remaining
			matched++
			break
		}
	}

	if matched == 0 {
		return
	}

	if err := l.persist(keyParts, l.parts); err != nil {
		l.log.Warn("could not persist inventory reconciliation",
			zap.String("workOrder", orderID), zap.Error(err))
		return
	}

	l.appendActivity(
		fmt.Sprintf("Deducted stock for %s (%d part line(s))", orderID, matched),
		metadata.SeverityInfo)
}
