package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations (postgres) or create indexes (mongo)",
		Long: `Apply pending schema migrations for the configured storage driver.

For postgres every .sql file of database.migrations_dir that has not been
recorded in schema_migrations is applied in file name order. For mongo the
unique and sort indexes of the faculty collection are created.

Examples:
  facultyctl migrate
  DB_DRIVER=mongo facultyctl migrate -c configs/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "Storage %s is up to date\n", s.storage.Driver)
			return nil
		},
	}
}
