package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yigit/facultyhub/internal/app/eligibility"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

type checkOptions struct {
	designation  string
	joined       string
	teaching     int
	publications int
	asOf         string
}

func checkEligibilityCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check-eligibility",
		Short: "Evaluate the ratification rule for ad-hoc inputs without touching storage",
		Long: `Evaluate the ratification rule for a designation, joining date,
teaching experience and publication count.

Examples:
  facultyctl check-eligibility --designation "Assistant Professor" --joined 2022-07-01 --teaching 4 --publications 6
  facultyctl check-eligibility --designation Professor --joined 2025-01-10 --teaching 9 --publications 15 --as-of 2026-01-11`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckEligibility(cmd, opts, time.Now().UTC())
		},
	}

	cmd.Flags().StringVarP(&opts.designation, "designation", "d", "", "designation (Assistant Professor, Associate Professor, Professor)")
	cmd.Flags().StringVarP(&opts.joined, "joined", "j", "", "date of joining, YYYY-MM-DD")
	cmd.Flags().IntVarP(&opts.teaching, "teaching", "t", 0, "years of teaching experience")
	cmd.Flags().IntVarP(&opts.publications, "publications", "p", 0, "total publications")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "evaluate at this date instead of today, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("designation")
	_ = cmd.MarkFlagRequired("joined")

	return cmd
}

func runCheckEligibility(cmd *cobra.Command, opts checkOptions, now time.Time) error {
	designation := models.Designation(opts.designation)
	rule, ok := eligibility.Thresholds(designation)
	if !ok {
		return fmt.Errorf("unknown designation %q", opts.designation)
	}

	joined, err := helpers.ParseDate(opts.joined)
	if err != nil {
		return fmt.Errorf("invalid --joined date: %w", err)
	}
	if opts.asOf != "" {
		if now, err = helpers.ParseDate(opts.asOf); err != nil {
			return fmt.Errorf("invalid --as-of date: %w", err)
		}
	}

	eligible := eligibility.Evaluate(eligibility.Input{
		DateOfJoining:     joined,
		Designation:       designation,
		TeachingYears:     opts.teaching,
		TotalPublications: opts.publications,
	}, now)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Designation:      %s\n", designation)
	fmt.Fprintf(out, "Years of service: %.2f (min %.0f)\n", eligibility.YearsOfService(joined, now), rule.MinYearsOfService)
	fmt.Fprintf(out, "Teaching years:   %d (min %d)\n", opts.teaching, rule.MinTeachingExperience)
	fmt.Fprintf(out, "Publications:     %d (min %d)\n", opts.publications, rule.MinPublications)
	fmt.Fprintf(out, "Eligible:         %t\n", eligible)
	return nil
}
