package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func workOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workorders",
		Aliases: []string{"wo"},
		Short:   "Manage work orders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List work orders, newest first",
		Run: func(_ *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tASSET\tSTATUS\tPRIORITY\tASSIGNED\tDUE")
			for _, order := range app.Ledger.WorkOrders() {
				assigned := order.AssignedTo
				if assigned == "" {
					assigned = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					order.ID, order.Title, order.AssetName, order.Status,
					order.Priority, assigned, order.DueDate)
			}
			w.Flush()
		},
	})

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a reactive work order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			assetID, _ := cmd.Flags().GetString("asset")
			assignedTo, _ := cmd.Flags().GetString("assign")
			priorityRaw, _ := cmd.Flags().GetString("priority")
			dueDate, _ := cmd.Flags().GetString("due")

			priority, err := metadata.NewWorkOrderPriority(priorityRaw)
			if err != nil {
				return err
			}

			// denormalized snapshot of the asset name, if the asset exists
			var assetName string
			if asset, ok := app.Ledger.GetAsset(assetID); ok {
				assetName = asset.Name
			}

			order, err := app.Ledger.CreateWorkOrder(models.WorkOrderRequest{
				Title:       title,
				Description: description,
				AssetID:     assetID,
				AssetName:   assetName,
				AssignedTo:  assignedTo,
				Priority:    priority,
				Status:      metadata.WorkOrderRequested,
				DueDate:     dueDate,
				Type:        metadata.TypeReactive,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created %s\n", order.ID)
			return nil
		},
	}
	add.Flags().String("title", "", "Work order title")
	add.Flags().String("description", "", "Description")
	add.Flags().String("asset", "", "Asset id")
	add.Flags().String("assign", "", "Technician name (empty = unassigned)")
	add.Flags().String("priority", string(metadata.PriorityMedium), "Priority")
	add.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	add.MarkFlagRequired("title")
	cmd.AddCommand(add)

	status := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a work order to any status",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			newStatus, err := metadata.NewWorkOrderStatus(args[1])
			if err != nil {
				return err
			}

			ok, err := app.Ledger.UpdateWorkOrder(args[0], models.WorkOrderUpdate{Status: &newStatus})
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no work order %s\n", args[0])
				return nil
			}
			fmt.Printf("%s -> %s\n", args[0], newStatus)
			return nil
		},
	}
	cmd.AddCommand(status)

	complete := &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete a work order and deduct its consumed parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completed := metadata.WorkOrderCompleted
			update := models.WorkOrderUpdate{Status: &completed}

			if cmd.Flags().Changed("parts") {
				parts, _ := cmd.Flags().GetString("parts")
				update.PartsUsed = &parts
			}

			ok, err := app.Ledger.UpdateWorkOrder(args[0], update)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no work order %s\n", args[0])
				return nil
			}
			fmt.Printf("completed %s\n", args[0])
			return nil
		},
	}
	complete.Flags().String("parts", "", `Parts consumed, e.g. "Fuse 10A x2, V-Belt A45 x1"`)
	cmd.AddCommand(complete)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a work order",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := app.Ledger.DeleteWorkOrder(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no work order %s\n", args[0])
				return nil
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
