package services

import (
	"log/slog"
	"sort"

	"sidequest/internal/models"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"PLN": "zł",
	"JPY": "¥",
}

// CurrencyService converts amounts between the base currency (USD) and a
// display currency using a fixed rate table. Rates are units of the target
// currency per one USD.
type CurrencyService struct {
	rates  map[string]decimal.Decimal
	logger *slog.Logger
}

// NewCurrencyService creates a currency service with the built-in rate table
func NewCurrencyService(logger *slog.Logger) CurrencyServiceInterface {
	return &CurrencyService{
		rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromFloat(1.0),
			"EUR": decimal.NewFromFloat(0.92),
			"GBP": decimal.NewFromFloat(0.79),
			"PLN": decimal.NewFromFloat(3.95),
			"JPY": decimal.NewFromFloat(152.0),
		},
		logger: logger,
	}
}

// Convert converts an amount between two currencies. No rounding happens
// here; callers round once at display time.
func (s *CurrencyService) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	return s.FromBase(s.ToBase(amount, from), to)
}

// ToBase converts an amount in the given currency to the base currency
func (s *CurrencyService) ToBase(amount decimal.Decimal, from string) decimal.Decimal {
	if from == models.DefaultCurrency {
		return amount
	}
	return amount.Div(s.rateFor(from))
}

// FromBase converts a base currency amount to the given display currency
func (s *CurrencyService) FromBase(amount decimal.Decimal, to string) decimal.Decimal {
	if to == models.DefaultCurrency {
		return amount
	}
	return amount.Mul(s.rateFor(to))
}

// Symbol returns the display symbol for a currency code, or the code itself
// when no symbol is known
func (s *CurrencyService) Symbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

// IsSupported reports whether the code has an entry in the rate table
func (s *CurrencyService) IsSupported(code string) bool {
	_, ok := s.rates[code]
	return ok
}

// SupportedCurrencies returns the known currency codes in sorted order
func (s *CurrencyService) SupportedCurrencies() []string {
	codes := make([]string, 0, len(s.rates))
	for code := range s.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// rateFor falls back to 1:1 for unknown codes so a stale stored currency
// never breaks reads.
func (s *CurrencyService) rateFor(code string) decimal.Decimal {
	rate, ok := s.rates[code]
	if !ok {
		s.logger.Warn("unknown currency code, using 1:1 rate", "currency", code)
		return decimal.NewFromInt(1)
	}
	return rate
}
