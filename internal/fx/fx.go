// Package fx converts investment amounts to USD using fixed mock rates.
// There is no live rate source.
package fx

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	apperrors "folio/internal/errors"
)

// USD is the reporting currency.
const USD = "USD"

// Converter turns an amount in some currency into USD.
type Converter interface {
	ToUSD(ctx context.Context, amount float64, currency string) (float64, error)
}

// FixedMultiplier converts every non-USD amount with the same multiplier.
type FixedMultiplier struct {
	multiplier decimal.Decimal
}

// NewFixedMultiplier creates a FixedMultiplier. The dashboard default is 1.2.
func NewFixedMultiplier(multiplier float64) *FixedMultiplier {
	return &FixedMultiplier{multiplier: decimal.NewFromFloat(multiplier)}
}

func (f *FixedMultiplier) ToUSD(_ context.Context, amount float64, currency string) (float64, error) {
	if err := checkFinite(amount); err != nil {
		return 0, err
	}
	if strings.EqualFold(currency, USD) {
		return amount, nil
	}
	return round(decimal.NewFromFloat(amount).Mul(f.multiplier))
}

// StaticRates converts with a per-currency table of USD rates
// (1 unit of currency = rate USD).
type StaticRates struct {
	mu    sync.RWMutex
	rates map[string]decimal.Decimal
}

// DefaultRates is the table used when no rates are configured.
var DefaultRates = map[string]float64{
	"EUR": 1.19,
	"GBP": 1.32,
	"JPY": 0.0067,
}

// NewStaticRates creates a converter seeded with rates.
func NewStaticRates(rates map[string]float64) *StaticRates {
	s := &StaticRates{rates: make(map[string]decimal.Decimal, len(rates))}
	for code, r := range rates {
		s.SetRate(code, r)
	}
	return s
}

// SetRate sets or replaces the USD rate of a currency.
func (s *StaticRates) SetRate(currency string, rate float64) {
	s.mu.Lock()
	s.rates[strings.ToUpper(currency)] = decimal.NewFromFloat(rate)
	s.mu.Unlock()
}

// Rate returns the USD rate of currency.
func (s *StaticRates) Rate(currency string) (decimal.Decimal, bool) {
	code := strings.ToUpper(currency)
	if code == USD {
		return decimal.NewFromInt(1), true
	}
	s.mu.RLock()
	r, ok := s.rates[code]
	s.mu.RUnlock()
	return r, ok
}

func (s *StaticRates) ToUSD(_ context.Context, amount float64, currency string) (float64, error) {
	rate, ok := s.Rate(currency)
	if !ok {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported currency "+strings.ToUpper(currency))
	}
	if err := checkFinite(amount); err != nil {
		return 0, err
	}
	return round(decimal.NewFromFloat(amount).Mul(rate))
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount is not a finite number")
	}
	return nil
}

// round rounds to cents. A product too large for float64 is rejected.
func round(d decimal.Decimal) (float64, error) {
	f := d.Round(2).InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Converted USD amount is out of range")
	}
	return f, nil
}
