package commands

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAbsenceTypesCommand creates the absence-types command group.
func NewAbsenceTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absence-types",
		Short: "Work with absence types",
	}

	cmd.AddCommand(newAbsenceTypesListCommand())
	cmd.AddCommand(newAbsenceTypesGetCommand())

	return cmd
}

func newAbsenceTypesListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List absence types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			absenceTypes, err := client.AbsenceTypes().List(cmd.Context(), &personio.ListAbsenceTypesOptions{
				Limit: limit,
			})
			if err != nil {
				return fmt.Errorf("listing absence types: %w", err)
			}

			return renderOutput(absenceTypes, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Category", "Unit")

				for _, absenceType := range absenceTypes {
					_ = table.Append(absenceType.ID, absenceType.Name, absenceType.Category, string(absenceType.Unit))
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "page size")

	return cmd
}

func newAbsenceTypesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ABSENCE_TYPE_ID",
		Short: "Get a single absence type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			absenceType, err := client.AbsenceTypes().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting absence type: %w", err)
			}

			return renderOutput(absenceType, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")
				_ = table.Append("ID", absenceType.ID)
				_ = table.Append("Name", absenceType.Name)
				_ = table.Append("Category", absenceType.Category)
				_ = table.Append("Unit", string(absenceType.Unit))

				return table.Render()
			})
		},
	}
}
