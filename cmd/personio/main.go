// Package main implements the personio command line interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/personio/cmd/personio/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "personio",
	Short: "Command line client for the Personio API",
	Long: `personio is a command line client for the Personio HR API.

It authenticates with OAuth2 client credentials and gives access to
persons, employments, absence types, absence periods, absence balances,
and org units.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.personio/config.yml)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (default is https://api.personio.de)")
	rootCmd.PersistentFlags().String("client-id", "", "OAuth2 client ID")
	rootCmd.PersistentFlags().String("client-secret", "", "OAuth2 client secret")
	rootCmd.PersistentFlags().String("partner-id", "", "partner identifier (upper snake case)")
	rootCmd.PersistentFlags().String("app-id", "", "app identifier (upper snake case)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("client_id", rootCmd.PersistentFlags().Lookup("client-id"))
	_ = viper.BindPFlag("client_secret", rootCmd.PersistentFlags().Lookup("client-secret"))
	_ = viper.BindPFlag("partner_id", rootCmd.PersistentFlags().Lookup("partner-id"))
	_ = viper.BindPFlag("app_id", rootCmd.PersistentFlags().Lookup("app-id"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(commands.NewVersionCommand())
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewPersonsCommand())
	rootCmd.AddCommand(commands.NewEmploymentsCommand())
	rootCmd.AddCommand(commands.NewAbsenceTypesCommand())
	rootCmd.AddCommand(commands.NewAbsencePeriodsCommand())
	rootCmd.AddCommand(commands.NewOrgUnitsCommand())
	rootCmd.AddCommand(commands.NewBalanceCommand())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".personio"))
			viper.SetConfigName("config")
			viper.SetConfigType("yml")
		}
	}

	viper.SetEnvPrefix("PERSONIO")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
