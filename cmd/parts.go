package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func partsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parts",
		Short: "Manage spare-part inventory",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List inventory",
		Run: func(cmd *cobra.Command, _ []string) {
			lowOnly, _ := cmd.Flags().GetBool("low")

			parts := app.Ledger.Parts()
			if lowOnly {
				parts = app.Ledger.LowStockParts()
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSKU\tQTY\tUNIT PRICE\tCATEGORY")
			for _, p := range parts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\n",
					p.ID, p.Name, p.SKU, p.Quantity, p.UnitPrice, p.Category)
			}
			w.Flush()
		},
	}
	list.Flags().Bool("low", false, "Only parts below the low-stock threshold")
	cmd.AddCommand(list)

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a part to inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			sku, _ := cmd.Flags().GetString("sku")
			quantity, _ := cmd.Flags().GetInt("quantity")
			price, _ := cmd.Flags().GetFloat64("price")
			category, _ := cmd.Flags().GetString("category")

			part, err := app.Ledger.CreatePart(models.PartRequest{
				Name:      name,
				SKU:       sku,
				Quantity:  quantity,
				UnitPrice: price,
				Category:  category,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created %s\n", part.ID)
			return nil
		},
	}
	add.Flags().String("name", "", "Part name")
	add.Flags().String("sku", "", "SKU")
	add.Flags().Int("quantity", 0, "Initial quantity")
	add.Flags().Float64("price", 0, "Unit price")
	add.Flags().String("category", "", "Category")
	add.MarkFlagRequired("name")
	cmd.AddCommand(add)

	adjust := &cobra.Command{
		Use:   "adjust <id> <quantity>",
		Short: "Set the stock quantity of a part",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			ok, err := app.Ledger.UpdatePart(args[0], models.PartUpdate{Quantity: &quantity})
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no part %s\n", args[0])
				return nil
			}
			fmt.Printf("adjusted %s to %d\n", args[0], quantity)
			return nil
		},
	}
	cmd.AddCommand(adjust)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := app.Ledger.DeletePart(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no part %s\n", args[0])
				return nil
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
