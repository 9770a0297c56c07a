package services

import (
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	service CurrencyServiceInterface
}

func (s *CurrencyServiceTestSuite) SetupTest() {
	s.service = NewCurrencyService(slog.Default())
}

func TestCurrencyServiceSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

func (s *CurrencyServiceTestSuite) TestFromBase() {
	amount := decimal.NewFromInt(100)

	s.Equal("100", s.service.FromBase(amount, "USD").String())
	s.Equal("92", s.service.FromBase(amount, "EUR").String())
	s.Equal("79", s.service.FromBase(amount, "GBP").String())
	s.Equal("395", s.service.FromBase(amount, "PLN").String())
	s.Equal("15200", s.service.FromBase(amount, "JPY").String())
}

func (s *CurrencyServiceTestSuite) TestToBase() {
	s.Equal("100", s.service.ToBase(decimal.NewFromInt(92), "EUR").String())
	s.Equal("100", s.service.ToBase(decimal.NewFromInt(100), "USD").String())
}

func (s *CurrencyServiceTestSuite) TestConvert_SameCurrency() {
	amount := decimal.RequireFromString("123.456")
	s.Equal("123.456", s.service.Convert(amount, "EUR", "EUR").String())
}

func (s *CurrencyServiceTestSuite) TestConvert_CrossCurrency() {
	// 92 EUR -> 100 USD -> 79 GBP
	got := s.service.Convert(decimal.NewFromInt(92), "EUR", "GBP")
	s.Equal("79", got.String())
}

func (s *CurrencyServiceTestSuite) TestUnknownCurrencyFallsBackToParity() {
	amount := decimal.NewFromInt(50)
	s.Equal("50", s.service.FromBase(amount, "XXX").String())
	s.Equal("50", s.service.ToBase(amount, "XXX").String())
}

func (s *CurrencyServiceTestSuite) TestConversionDoesNotRound() {
	got := s.service.FromBase(decimal.RequireFromString("33.333"), "EUR")
	s.Equal("30.66636", got.String())

	// display rounding is the caller's job
	s.Equal("30.67", got.StringFixed(2))
}

func (s *CurrencyServiceTestSuite) TestRoundTripIdentity() {
	epsilon := decimal.RequireFromString("0.0000000001")
	amounts := []string{"1000", "10", "123.456", "0.01"}

	for _, code := range s.service.SupportedCurrencies() {
		for _, raw := range amounts {
			amount := decimal.RequireFromString(raw)
			back := s.service.FromBase(s.service.ToBase(amount, code), code)
			drift := back.Sub(amount).Abs()
			s.True(drift.LessThan(epsilon),
				"round trip %s %s drifted by %s", raw, code, drift.String())
		}
	}
}

func (s *CurrencyServiceTestSuite) TestIsSupported() {
	s.True(s.service.IsSupported("USD"))
	s.True(s.service.IsSupported("PLN"))
	s.False(s.service.IsSupported("usd"))
	s.False(s.service.IsSupported("XXX"))
}

func (s *CurrencyServiceTestSuite) TestSupportedCurrencies() {
	s.Equal([]string{"EUR", "GBP", "JPY", "PLN", "USD"}, s.service.SupportedCurrencies())
}

func (s *CurrencyServiceTestSuite) TestSymbol() {
	s.Equal("$", s.service.Symbol("USD"))
	s.Equal("€", s.service.Symbol("EUR"))
	s.Equal("XXX", s.service.Symbol("XXX"))
}
