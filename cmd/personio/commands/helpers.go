// Package commands implements the personio CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/fivetwenty-io/personio/internal/constants"
	"github.com/fivetwenty-io/personio/pkg/personio"
	"github.com/fivetwenty-io/personio/pkg/personioclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrMissingCredentials is returned when no client credentials are
// configured.
var ErrMissingCredentials = errors.New("client credentials not configured; run 'personio login' or set PERSONIO_CLIENT_ID and PERSONIO_CLIENT_SECRET")

// createClient builds an API client from the resolved configuration.
func createClient() (personio.Client, error) {
	clientID := viper.GetString("client_id")
	clientSecret := viper.GetString("client_secret")

	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	return personioclient.New(&personio.Config{
		BaseURL:      viper.GetString("base_url"),
		ClientID:     clientID,
		ClientSecret: clientSecret,
		PartnerID:    viper.GetString("partner_id"),
		AppID:        viper.GetString("app_id"),
		Debug:        viper.GetBool("debug"),
	})
}

// renderOutput writes data in the configured output format, falling back to
// the given table renderer.
func renderOutput(data interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return outputJSON(data)
	case constants.FormatYAML:
		return outputYAML(data)
	default:
		return renderTable()
	}
}

func outputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(data)
}

func outputYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(data)
}
