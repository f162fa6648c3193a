// Package seed loads a fixed dataset into a record store.
package seed

import (
	"context"

	"folio/internal/logger"
	"folio/internal/models"
	"folio/internal/store"
)

// Dataset is a full set of rows to load.
type Dataset struct {
	Users       []models.User
	Products    []models.Product
	Investments []models.Investment
	Projections []models.PerformanceProjection
}

// Result counts what Load wrote.
type Result struct {
	Users       int
	Products    int
	Investments int
	Projections int
}

// Load writes ds into repo. Users, products and investments whose id
// already exists are skipped; projections are upserted on
// (investment_id, year), so running Load twice is harmless.
func Load(ctx context.Context, repo *store.Repository, ds Dataset) (Result, error) {
	var res Result
	log := logger.Named("seed")

	for _, u := range ds.Users {
		existing, err := repo.GetUser(ctx, u.ID)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		if _, err := repo.CreateUser(ctx, u); err != nil {
			return res, err
		}
		res.Users++
	}

	for _, p := range ds.Products {
		existing, err := repo.GetProduct(ctx, p.ID)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		if _, err := repo.CreateProduct(ctx, p); err != nil {
			return res, err
		}
		res.Products++
	}

	for _, inv := range ds.Investments {
		existing, err := repo.GetInvestment(ctx, inv.ID)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}
		if _, err := repo.CreateInvestment(ctx, inv); err != nil {
			return res, err
		}
		res.Investments++
	}

	for _, p := range ds.Projections {
		if _, err := repo.UpsertProjection(ctx, p); err != nil {
			return res, err
		}
		res.Projections++
	}

	log.Infow("seed complete",
		"users", res.Users,
		"products", res.Products,
		"investments", res.Investments,
		"projections", res.Projections,
	)
	return res, nil
}
