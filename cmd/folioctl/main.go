// Command folioctl runs operator tasks against the folio record store:
// seeding the demo portfolio, issuing access tokens and printing a
// portfolio summary.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/logger"
	"folio/internal/seed"
	"folio/internal/store"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&seedCmd{}, "data")
	commander.Register(&summaryCmd{}, "data")
	commander.Register(&tokenCmd{}, "auth")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development")
		logger.Get().Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.Env)
	defer logger.Sync()

	os.Exit(int(commander.Execute(context.Background(), cfg)))
}

// openRepository opens the configured record store. The memory store comes
// pre-loaded with the demo portfolio. The returned close function releases
// the database connection, if any.
func openRepository(ctx context.Context, cfg *config.Config) (*store.Repository, func(), error) {
	if cfg.Store == config.StoreMemory {
		repo := store.NewRepository(store.NewMemory())
		if _, err := seed.Load(ctx, repo, seed.Demo()); err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
	m, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := m.Close(); err != nil {
			logger.Get().Warnf("database close error: %v", err)
		}
	}
	return store.NewRepository(store.NewGormStore(m.DB())), closeFn, nil
}

// configFrom extracts the *config.Config passed to Execute.
func configFrom(args []interface{}) *config.Config {
	for _, a := range args {
		if cfg, ok := a.(*config.Config); ok {
			return cfg
		}
	}
	return config.Get()
}
