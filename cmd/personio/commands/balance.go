package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBalanceCommand creates the balance command.
func NewBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance EMPLOYEE_ID",
		Short: "Show the absence balances of an employee",
		Long:  "Fetches the absence balances of an employee from the legacy v1 endpoint. The employee ID must be numeric.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			balances, err := client.AbsenceBalances().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting absence balances: %w", err)
			}

			return renderOutput(balances, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Category", "Balance", "Available")

				for _, balance := range balances {
					_ = table.Append(
						strconv.FormatInt(balance.ID, 10),
						balance.Name,
						balance.Category,
						strconv.FormatFloat(balance.Balance, 'f', -1, 64),
						strconv.FormatFloat(balance.AvailableBalance, 'f', -1, 64),
					)
				}

				return table.Render()
			})
		},
	}
}
