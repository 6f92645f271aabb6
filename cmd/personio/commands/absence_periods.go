package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAbsencePeriodsCommand creates the absence-periods command group.
func NewAbsencePeriodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absence-periods",
		Short: "Work with absence periods",
	}

	cmd.AddCommand(newAbsencePeriodsListCommand())
	cmd.AddCommand(newAbsencePeriodsCreateCommand())

	return cmd
}

func newAbsencePeriodsListCommand() *cobra.Command {
	var (
		limit         int
		personID      string
		absenceTypeID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List absence periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			periods, err := client.AbsencePeriods().List(cmd.Context(), &personio.ListAbsencePeriodsOptions{
				Limit:         limit,
				PersonID:      personID,
				AbsenceTypeID: absenceTypeID,
			})
			if err != nil {
				return fmt.Errorf("listing absence periods: %w", err)
			}

			return renderOutput(periods, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Person", "Type", "Starts", "Ends")

				for _, period := range periods {
					ends := ""
					if period.EndsAt != nil {
						ends = period.EndsAt.DateTime.Format(time.RFC3339)
					}

					_ = table.Append(
						period.ID,
						period.Person.ID,
						period.AbsenceType.ID,
						period.StartsFrom.DateTime.Format(time.RFC3339),
						ends,
					)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "page size")
	cmd.Flags().StringVar(&personID, "person-id", "", "filter by person ID")
	cmd.Flags().StringVar(&absenceTypeID, "absence-type-id", "", "filter by absence type ID")

	return cmd
}

func newAbsencePeriodsCreateCommand() *cobra.Command {
	var (
		personID      string
		absenceTypeID string
		starts        string
		ends          string
		comment       string
		skipApproval  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an absence period",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			startsAt, err := time.Parse(time.RFC3339, starts)
			if err != nil {
				return fmt.Errorf("parsing --starts: %w", err)
			}

			req := &personio.CreateAbsencePeriodRequest{
				Person:      personio.PersonRef{ID: personID},
				AbsenceType: personio.AbsenceTypeRef{ID: absenceTypeID},
				StartsFrom:  personio.AbsenceBoundary{DateTime: startsAt},
				Comment:     comment,
			}

			if ends != "" {
				endsAt, err := time.Parse(time.RFC3339, ends)
				if err != nil {
					return fmt.Errorf("parsing --ends: %w", err)
				}

				req.EndsAt = &personio.AbsenceBoundary{DateTime: endsAt}
			}

			created, err := client.AbsencePeriods().Create(cmd.Context(), req, &personio.CreateAbsencePeriodOptions{
				SkipApproval: skipApproval,
			})
			if err != nil {
				return fmt.Errorf("creating absence period: %w", err)
			}

			return renderOutput(created, func() error {
				fmt.Printf("Created absence period %s\n", created.ID)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&personID, "person-id", "", "person the absence belongs to (required)")
	cmd.Flags().StringVar(&absenceTypeID, "absence-type-id", "", "absence type (required)")
	cmd.Flags().StringVar(&starts, "starts", "", "start time, RFC 3339 (required)")
	cmd.Flags().StringVar(&ends, "ends", "", "end time, RFC 3339")
	cmd.Flags().StringVar(&comment, "comment", "", "comment on the period")
	cmd.Flags().BoolVar(&skipApproval, "skip-approval", false, "create without running the approval workflow")
	_ = cmd.MarkFlagRequired("person-id")
	_ = cmd.MarkFlagRequired("absence-type-id")
	_ = cmd.MarkFlagRequired("starts")

	return cmd
}
