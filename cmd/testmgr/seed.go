package main

import (
	"encoding/json"
	"fmt"

	"test-manager-backend/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		file     string
		attempts int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load user roles, test statuses, users and projects from a YAML file",
		Long: `Seed loads initial data through the service layer. Entries whose name
already exists are skipped, so the command can be run repeatedly.

Example:
  testmgr seed --file initial_data.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.SeedFile
			}

			services, db, err := a.services(attempts)
			if err != nil {
				return err
			}
			defer closeDB(db)

			summary, err := seed.NewLoader(services).LoadFile(file)
			if err != nil {
				return err
			}

			output, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal summary: %w", err)
			}
			fmt.Fprintln(a.out, string(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (default: SEED_FILE from config)")
	cmd.Flags().IntVar(&attempts, "wait", 60, "connection attempts, one second apart, while the database starts")
	return cmd
}
