package main

import (
	"fmt"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if _, err := openDatabase(cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Migration complete")
		return nil
	},
}
