package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func assetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage assets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all assets",
		Run: func(_ *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tLOCATION\tSTATUS\tUPTIME")
			for _, a := range app.Ledger.Assets() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f%%\n",
					a.ID, a.Name, a.Category, a.Location, a.Status, a.Uptime)
			}
			w.Flush()
		},
	})

	add := &cobra.Command{
		Use:   "add",
		Short: "Register a new asset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			category, _ := cmd.Flags().GetString("category")
			model, _ := cmd.Flags().GetString("model")
			location, _ := cmd.Flags().GetString("location")
			statusRaw, _ := cmd.Flags().GetString("status")

			status, err := metadata.NewAssetStatus(statusRaw)
			if err != nil {
				return err
			}

			asset, err := app.Ledger.CreateAsset(models.AssetRequest{
				Name:     name,
				Category: category,
				Model:    model,
				Location: location,
				Status:   status,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created %s\n", asset.ID)
			return nil
		},
	}
	add.Flags().String("name", "", "Asset name")
	add.Flags().String("category", "", "Asset category")
	add.Flags().String("model", "", "Asset model")
	add.Flags().String("location", "", "Asset location")
	add.Flags().String("status", string(metadata.AssetRunning), "Lifecycle status")
	add.MarkFlagRequired("name")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an asset (work orders keep their stale reference)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := app.Ledger.DeleteAsset(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no asset %s\n", args[0])
				return nil
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
