package ledger

import "github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"

// KPISnapshot is the dashboard headline view over the collections.
type KPISnapshot struct {
	TotalAssets      int     `json:"totalAssets"`
	ActiveWorkOrders int     `json:"activeWorkOrders"`
	LowStockItems    int     `json:"lowStockItems"`
	AverageUptime    float64 `json:"averageUptime"`
}

// KPIs derives the snapshot. Active work orders are the ones being
// worked or waiting to be (In Progress or Pending).
func (l *Ledger) KPIs() KPISnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := KPISnapshot{TotalAssets: len(l.assets)}

	for _, w := range l.workOrders {
		if w.Status == metadata.WorkOrderInProgress || w.Status == metadata.WorkOrderPending {
			snapshot.ActiveWorkOrders++
		}
	}

	for _, p := range l.parts {
		if p.Quantity < l.cfg.LowStockThreshold {
			snapshot.LowStockItems++
		}
	}

	if len(l.assets) > 0 {
		var total float64
		for _, a := range l.assets {
			total += a.Uptime
		}
		snapshot.AverageUptime = total / float64(len(l.assets))
	}

	return snapshot
}
