package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print a valid access token",
		Long:  "Fetches an access token with the configured client credentials and prints it, reusing a cached token while it is still valid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			token, err := client.GetToken(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting token: %w", err)
			}

			fmt.Println(token)

			return nil
		},
	}
}
