package commands

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewOrgUnitsCommand creates the org-units command group.
func NewOrgUnitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org-units",
		Short: "Work with org units",
	}

	cmd.AddCommand(newOrgUnitsGetCommand())

	return cmd
}

func newOrgUnitsGetCommand() *cobra.Command {
	var (
		unitType           string
		includeParentChain bool
	)

	cmd := &cobra.Command{
		Use:   "get ORG_UNIT_ID",
		Short: "Get a single org unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			orgUnit, err := client.OrgUnits().Get(cmd.Context(), args[0], &personio.GetOrgUnitOptions{
				Type:               unitType,
				IncludeParentChain: includeParentChain,
			})
			if err != nil {
				return fmt.Errorf("getting org unit: %w", err)
			}

			return renderOutput(orgUnit, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")
				_ = table.Append("ID", orgUnit.ID)
				_ = table.Append("Type", orgUnit.Type)
				_ = table.Append("Name", orgUnit.Name)
				_ = table.Append("Abbreviation", orgUnit.Abbreviation)
				_ = table.Append("Parent ID", orgUnit.ParentID)

				for _, parent := range orgUnit.ParentChain {
					_ = table.Append("Ancestor", fmt.Sprintf("%s (%s)", parent.Name, parent.ID))
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().StringVar(&unitType, "type", "", "org unit type (required)")
	cmd.Flags().BoolVar(&includeParentChain, "include-parent-chain", false, "resolve the chain of ancestors")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
