package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func pmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pm",
		Short: "Manage preventive maintenance schedules",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List schedules",
		Run: func(cmd *cobra.Command, _ []string) {
			dueOnly, _ := cmd.Flags().GetBool("due")

			schedules := app.Ledger.Schedules()
			if dueOnly {
				schedules = app.Ledger.DueSchedules()
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTASK\tASSET\tEVERY\tLAST RUN\tNEXT DUE\tASSIGNED")
			for _, s := range schedules {
				fmt.Fprintf(w, "%s\t%s\t%s\t%dd\t%s\t%s\t%s\n",
					s.ID, s.TaskName, s.AssetName, s.FrequencyDays,
					s.LastRunDate, s.NextDueDate, s.AssignedTo)
			}
			w.Flush()
		},
	}
	list.Flags().Bool("due", false, "Only schedules due today or earlier")
	cmd.AddCommand(list)

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			task, _ := cmd.Flags().GetString("task")
			assetID, _ := cmd.Flags().GetString("asset")
			frequency, _ := cmd.Flags().GetInt("every")
			assignedTo, _ := cmd.Flags().GetString("assign")

			if frequency <= 0 {
				return fmt.Errorf("invalid frequency %d, expected days > 0", frequency)
			}

			var assetName string
			if asset, ok := app.Ledger.GetAsset(assetID); ok {
				assetName = asset.Name
			}

			schedule, err := app.Ledger.CreateSchedule(models.PMScheduleRequest{
				TaskName:      task,
				AssetID:       assetID,
				AssetName:     assetName,
				FrequencyDays: frequency,
				AssignedTo:    assignedTo,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created %s\n", schedule.ID)
			return nil
		},
	}
	add.Flags().String("task", "", "Task name")
	add.Flags().String("asset", "", "Asset id")
	add.Flags().Int("every", 7, "Frequency in days")
	add.Flags().String("assign", "", "Technician name")
	add.MarkFlagRequired("task")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "run <id>",
		Short: "Generate a work order from a schedule and roll it forward",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			order, ok, err := app.Ledger.GenerateWorkOrderFromSchedule(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no schedule %s\n", args[0])
				return nil
			}
			fmt.Printf("generated %s (%s), due %s\n", order.ID, order.Title, order.DueDate)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := app.Ledger.DeleteSchedule(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no schedule %s\n", args[0])
				return nil
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
