package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

func techniciansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "technicians",
		Aliases: []string{"techs"},
		Short:   "Manage technicians",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List technicians",
		Run: func(_ *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tROLE\tSTATUS\tEMAIL")
			for _, t := range app.Ledger.Technicians() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Role, t.Status, t.Email)
			}
			w.Flush()
		},
	})

	add := &cobra.Command{
		Use:   "add",
		Short: "Register a technician",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetString("role")
			email, _ := cmd.Flags().GetString("email")

			tech, err := app.Ledger.CreateTechnician(models.TechnicianRequest{
				Name:   name,
				Role:   role,
				Status: metadata.TechnicianActive,
				Email:  email,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created %s\n", tech.ID)
			return nil
		},
	}
	add.Flags().String("name", "", "Technician name")
	add.Flags().String("role", "", "Role")
	add.Flags().String("email", "", "Email")
	add.MarkFlagRequired("name")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a technician",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := app.Ledger.DeleteTechnician(args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("no technician %s\n", args[0])
				return nil
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
