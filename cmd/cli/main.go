// Package main implements the dbhealth CLI for probing the database from a shell.
package main

import (
	"fmt"
	"os"

	"github.com/dsjohal14/dbhealth/internal/libs/config"
	"github.com/dsjohal14/dbhealth/internal/libs/obs"
	"github.com/dsjohal14/dbhealth/internal/scope/db"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dbhealth",
		Short:        "Probe the configured database",
		SilenceUsage: true,
	}
	root.AddCommand(newCheckCmd(), newTablesCmd())
	return root
}

func openAccessor() (db.Accessor, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	obs.InitLogger(cfg.LogLevel)
	return db.Open(cfg), nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether a database connection can be established",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			acc, err := openAccessor()
			if err != nil {
				return err
			}
			defer acc.Close()

			ok, err := acc.CheckConnection(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Unhealthy")
				return fmt.Errorf("database unreachable")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Healthy!")
			return nil
		},
	}
}

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the number of tables in the database catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			acc, err := openAccessor()
			if err != nil {
				return err
			}
			defer acc.Close()

			count, err := acc.CountTables(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}
