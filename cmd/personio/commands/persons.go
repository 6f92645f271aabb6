package commands

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPersonsCommand creates the persons command group.
func NewPersonsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persons",
		Short: "Work with persons",
	}

	cmd.AddCommand(newPersonsListCommand())

	return cmd
}

func newPersonsListCommand() *cobra.Command {
	var (
		limit         int
		email         string
		firstName     string
		lastName      string
		preferredName string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persons",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			persons, err := client.Persons().List(cmd.Context(), &personio.ListPersonsOptions{
				Limit:         limit,
				Email:         email,
				FirstName:     firstName,
				LastName:      lastName,
				PreferredName: preferredName,
			})
			if err != nil {
				return fmt.Errorf("listing persons: %w", err)
			}

			return renderOutput(persons, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Email", "First Name", "Last Name", "Status")

				for _, person := range persons {
					_ = table.Append(person.ID, person.Email, person.FirstName, person.LastName, string(person.Status))
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "page size")
	cmd.Flags().StringVar(&email, "email", "", "filter by email")
	cmd.Flags().StringVar(&firstName, "first-name", "", "filter by first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "filter by last name")
	cmd.Flags().StringVar(&preferredName, "preferred-name", "", "filter by preferred name")

	return cmd
}
