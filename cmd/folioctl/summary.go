package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"folio/internal/report"
	"folio/internal/server"
	"folio/internal/services"
)

// summaryCmd prints the dashboard of one user.
type summaryCmd struct {
	userID string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print a user's portfolio summary" }
func (*summaryCmd) Usage() string {
	return `folioctl summary -user <id>

  Prints the totals, category and currency breakdowns and the yearly
  projection that the dashboard shows for the user.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "User id")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.userID == "" {
		fmt.Fprintln(os.Stderr, "summary: -user is required")
		return subcommands.ExitUsageError
	}
	cfg := configFrom(args)

	repo, closeFn, err := openRepository(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	dashboard := services.NewDashboardService(repo, server.SessionConfig(cfg))
	snap, err := dashboard.GetDashboard(ctx, c.userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	yearly, err := dashboard.GetYearlyProjection(ctx, c.userID, cfg.ProjectionWindowFrom, cfg.ProjectionWindowTo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading projections: %v\n", err)
		return subcommands.ExitFailure
	}

	title := "Portfolio of " + c.userID
	if snap.Stale {
		title += " (stale)"
	}
	if err := report.Summary(os.Stdout, title, snap.Stats, yearly); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
