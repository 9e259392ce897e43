package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/facultyhub/internal/app/jobs"
)

func refreshEligibilityCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-eligibility",
		Short: "Recompute the cached eligibility flag of every faculty record once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, *configPath, false)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			job := jobs.NewEligibilityRefresher(s.deps.FacultyService, s.cfg.Jobs.EligibilityRefreshSchedule, s.logger)
			changed, err := job.RunOnce(ctx)
			if err != nil {
				return fmt.Errorf("eligibility refresh failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d records\n", changed)
			return nil
		},
	}
}
