package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/facultyhub/internal/seed"
)

func seedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the sample faculty records; existing records are skipped",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			res, err := seed.CreateDefaultData(ctx, s.deps.FacultyService, s.logger)
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d, skipped %d\n", res.Created, res.Skipped)
			return err
		},
	}
}
