package orders

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentBTC          PaymentMethod = "btc"
	PaymentLTC          PaymentMethod = "ltc"
	PaymentETH          PaymentMethod = "eth"
	PaymentUSDT         PaymentMethod = "usdt"
	PaymentBankTransfer PaymentMethod = "transferencia_mx"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case PaymentBTC, PaymentLTC, PaymentETH, PaymentUSDT, PaymentBankTransfer:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown payment method %q", ErrValidation, s)
}

func (m PaymentMethod) Currency() string {
	return strings.ToUpper(string(m))
}

// paymentPlan resolves the fixed destination and the exact amount for a
// USD total. Crypto amounts carry 8 fractional digits, fiat 2.
func (s *Service) paymentPlan(method PaymentMethod, total decimal.Decimal) (address, amount string, err error) {
	switch method {
	case PaymentBTC:
		return s.Destinations.BTC, total.Div(s.Rates.BTCUSD).StringFixed(8), nil
	case PaymentLTC:
		return s.Destinations.LTC, total.Div(s.Rates.LTCUSD).StringFixed(8), nil
	case PaymentETH:
		return s.Destinations.ETH, total.Div(s.Rates.ETHUSD).StringFixed(8), nil
	case PaymentUSDT:
		return s.Destinations.USDT, total.Div(s.Rates.USDTUSD).StringFixed(2), nil
	case PaymentBankTransfer:
		return s.Destinations.BankTransfer, total.Mul(s.Rates.MXNPerUSD).StringFixed(2), nil
	}
	return "", "", fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
}
