package fx

import (
	"context"
	"math"
	"sync"
	"testing"

	"folio/internal/testutil"
)

func TestFixedMultiplier(t *testing.T) {
	ctx := context.Background()
	c := NewFixedMultiplier(1.2)

	tests := []struct {
		name     string
		amount   float64
		currency string
		want     float64
	}{
		{"usd unchanged", 40000, "USD", 40000},
		{"lowercase usd unchanged", 10, "usd", 10},
		{"gbp", 25000, "GBP", 30000},
		{"eur", 27000, "EUR", 32400},
		{"rounded to cents", 0.01, "EUR", 0.01},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.ToUSD(ctx, tc.amount, tc.currency)
			testutil.AssertNoError(t, err)
			testutil.AssertAmount(t, tc.name, got, tc.want)
		})
	}
}

func TestStaticRates(t *testing.T) {
	ctx := context.Background()
	c := NewStaticRates(DefaultRates)

	t.Run("known currency", func(t *testing.T) {
		got, err := c.ToUSD(ctx, 25000, "gbp")
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "gbp", got, 33000)
	})

	t.Run("usd is identity", func(t *testing.T) {
		got, err := c.ToUSD(ctx, 123.45, "USD")
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "usd", got, 123.45)
	})

	t.Run("unsupported currency", func(t *testing.T) {
		_, err := c.ToUSD(ctx, 1, "CHF")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("set rate", func(t *testing.T) {
		c.SetRate("CHF", 1.1)
		got, err := c.ToUSD(ctx, 100, "CHF")
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "chf", got, 110)
	})

	t.Run("concurrent access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if i%2 == 0 {
					c.SetRate("SEK", 0.095)
					return
				}
				_, _ = c.ToUSD(ctx, 10, "EUR")
			}(i)
		}
		wg.Wait()
	})
}

func TestConversionOverflow(t *testing.T) {
	ctx := context.Background()
	converters := map[string]Converter{
		"multiplier": NewFixedMultiplier(1.2),
		"static":     NewStaticRates(map[string]float64{"GBP": 1.32}),
	}
	for name, c := range converters {
		t.Run(name, func(t *testing.T) {
			_, err := c.ToUSD(ctx, 1.5e308, "GBP")
			testutil.AssertAppError(t, err, "INVALID_INPUT")

			_, err = c.ToUSD(ctx, math.NaN(), "GBP")
			testutil.AssertAppError(t, err, "INVALID_INPUT")

			_, err = c.ToUSD(ctx, math.Inf(1), "USD")
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		})
	}
}
