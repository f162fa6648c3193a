package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"folio/internal/config"
	"folio/internal/seed"
)

// seedCmd loads the demo dataset.
type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "load the demo users, products, investments and projections" }
func (*seedCmd) Usage() string {
	return `folioctl seed

  Loads the demo portfolio into the configured store. Existing rows are
  left alone and projections are upserted, so it is safe to run twice.
  Run migrations first when STORE=postgres.
`
}

func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (*seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := configFrom(args)
	if cfg.Store == config.StoreMemory {
		fmt.Fprintln(os.Stderr, "seed: STORE=memory keeps nothing after exit; the API seeds its own memory store")
		return subcommands.ExitUsageError
	}

	repo, closeFn, err := openRepository(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	res, err := seed.Load(ctx, repo, seed.Demo())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("users: %d, products: %d, investments: %d, projections: %d\n",
		res.Users, res.Products, res.Investments, res.Projections)
	return subcommands.ExitSuccess
}
