package main

import (
	"github.com/spf13/cobra"
)

var (
	apiURL string
	token  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "groomy",
	Short: "Groomy scheduling API server and command line client",
	Long: `Groomy serves a JSON API over customers, appointments, services and notes.
The serve and migrate commands work against the database; the other commands
call a running server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the API (defaults to API_URL)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Session token (defaults to GROOMY_TOKEN)")

	rootCmd.AddCommand(serveCmd, migrateCmd, loginCmd, customersCmd, notesCmd)
}
