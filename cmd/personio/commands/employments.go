package commands

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewEmploymentsCommand creates the employments command group.
func NewEmploymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employments",
		Short: "Work with employments",
	}

	cmd.AddCommand(newEmploymentsListCommand())
	cmd.AddCommand(newEmploymentsGetCommand())

	return cmd
}

func newEmploymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PERSON_ID EMPLOYMENT_ID",
		Short: "Get a single employment of a person",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			employment, err := client.Employments().Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("getting employment: %w", err)
			}

			return renderOutput(employment, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")
				_ = table.Append("ID", employment.ID)
				_ = table.Append("Position", employment.Position.Title)
				_ = table.Append("Status", string(employment.Status))
				_ = table.Append("Type", string(employment.Type))
				_ = table.Append("Start Date", employment.EmploymentStartDate)

				return table.Render()
			})
		},
	}
}

func newEmploymentsListCommand() *cobra.Command {
	var (
		limit int
		ids   []string
	)

	cmd := &cobra.Command{
		Use:   "list PERSON_ID",
		Short: "List the employments of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			employments, err := client.Employments().List(cmd.Context(), args[0], &personio.ListEmploymentsOptions{
				Limit: limit,
				IDs:   ids,
			})
			if err != nil {
				return fmt.Errorf("listing employments: %w", err)
			}

			return renderOutput(employments, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Position", "Status", "Type", "Start Date")

				for _, employment := range employments {
					_ = table.Append(
						employment.ID,
						employment.Position.Title,
						string(employment.Status),
						string(employment.Type),
						employment.EmploymentStartDate,
					)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "page size")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "filter by employment IDs")

	return cmd
}
