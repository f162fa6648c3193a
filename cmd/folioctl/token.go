package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"folio/internal/middleware"
	"folio/internal/services"
)

// tokenCmd issues an access token for an existing user.
type tokenCmd struct {
	email string
	ttl   time.Duration
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "issue an API access token for a user" }
func (*tokenCmd) Usage() string {
	return `folioctl token -email <address> [-ttl <duration>]

  Prints a signed bearer token for the user with the given email.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the user to issue the token for")
	f.DurationVar(&c.ttl, "ttl", 0, "Token lifetime (defaults to JWT_EXPIRES_IN)")
}

func (c *tokenCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.email == "" {
		fmt.Fprintln(os.Stderr, "token: -email is required")
		return subcommands.ExitUsageError
	}
	cfg := configFrom(args)
	ttl := c.ttl
	if ttl <= 0 {
		ttl = cfg.JWTExpirationDur
	}

	repo, closeFn, err := openRepository(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	user, err := services.NewUserService(repo).GetUserByEmail(ctx, c.email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding user %q: %v\n", c.email, err)
		return subcommands.ExitFailure
	}

	token, err := middleware.GenerateAccessToken(user, cfg.JWTSecret, ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(token)
	return subcommands.ExitSuccess
}
