package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command. It prompts for credentials and
// stores them in the config file; the client secret is read without echo.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store API credentials in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			clientID, err := promptLine(reader, "Client ID: ")
			if err != nil {
				return err
			}

			fmt.Print("Client secret: ")

			secret, err := term.ReadPassword(int(os.Stdin.Fd()))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading client secret: %w", err)
			}

			partnerID, err := promptLine(reader, "Partner ID: ")
			if err != nil {
				return err
			}

			appID, err := promptLine(reader, "App ID: ")
			if err != nil {
				return err
			}

			viper.Set("client_id", clientID)
			viper.Set("client_secret", string(secret))
			viper.Set("partner_id", partnerID)
			viper.Set("app_id", appID)

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolving home directory: %w", err)
			}

			configDir := filepath.Join(home, ".personio")
			if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}

			configPath := filepath.Join(configDir, "config.yml")
			if err := viper.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			if err := os.Chmod(configPath, constants.ConfigFilePerm); err != nil {
				return fmt.Errorf("restricting config file permissions: %w", err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if _, err := client.GetToken(cmd.Context()); err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			fmt.Printf("Credentials verified and saved to %s\n", configPath)

			return nil
		},
	}
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
