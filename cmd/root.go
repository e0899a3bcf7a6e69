package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/config"
	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/container"
)

var app *container.Container

func Execute() {
	rootCmd := &cobra.Command{
		Use:   "cmms",
		Short: "Maintenance management ledger",
		Long:  `Local maintenance ledger: assets, work orders, inventory, technicians and preventive maintenance schedules, persisted to an embedded key-value store.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			app, err = container.NewAppContainer(config.Load())
			return err
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				app.Close()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		assetsCmd(),
		workOrdersCmd(),
		partsCmd(),
		techniciansCmd(),
		pmCmd(),
		activityCmd(),
		dashboardCmd(),
		exportCmd(),
		resetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
