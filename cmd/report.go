package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/report"
)

func activityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log, newest first",
		Run: func(_ *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tTYPE\tUSER\tACTION")
			for _, entry := range app.Ledger.Activities() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Timestamp, entry.Type, entry.User, entry.Action)
			}
			w.Flush()
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show headline KPIs",
		Run: func(_ *cobra.Command, _ []string) {
			kpis := app.Ledger.KPIs()
			fmt.Printf("Assets:            %d\n", kpis.TotalAssets)
			fmt.Printf("Active work orders: %d\n", kpis.ActiveWorkOrders)
			fmt.Printf("Low stock items:   %d\n", kpis.LowStockItems)
			fmt.Printf("Average uptime:    %.1f%%\n", kpis.AverageUptime)
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export work orders to a date-stamped CSV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("out")
			if path == "" {
				path = report.Filename(time.Now())
			}

			file, err := os.Create(path)
			if err != nil {
				return err
			}
			defer file.Close()

			if err := report.WriteWorkOrders(file, app.Ledger.WorkOrders()); err != nil {
				return err
			}

			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("out", "", "Output path (default work_orders_<date>.csv)")
	return cmd
}

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the store and reseed the default dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirmed, _ := cmd.Flags().GetBool("yes")
			if !confirmed {
				return fmt.Errorf("reset wipes all data; re-run with --yes to confirm")
			}

			if err := app.Ledger.Reset(); err != nil {
				return err
			}

			fmt.Println("store reset to defaults")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm the wipe")
	return cmd
}
