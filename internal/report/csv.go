package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

var header = []string{"ID", "Title", "Asset", "Status", "Priority", "Assigned To", "Date Created", "Due Date"}

// Filename stamps the export with the current date.
func Filename(now time.Time) string {
	return fmt.Sprintf("work_orders_%s.csv", now.Format("2006-01-02"))
}

// WriteWorkOrders writes the work-order report, one row per order, in
// the order given (newest first as the ledger keeps them).
func WriteWorkOrders(w io.Writer, orders []models.WorkOrder) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("could not write report header: %w", err)
	}

	for _, order := range orders {
		row := []string{
			order.ID,
			order.Title,
			order.AssetName,
			order.Status.String(),
			order.Priority.String(),
			order.AssignedTo,
			order.CreatedAt,
			order.DueDate,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write report row for %s: %w", order.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
