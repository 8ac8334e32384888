package gpapi

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateFormat = "2006-01-02"

var gatewayTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	dateFormat,
}

// parseGatewayTime accepts the timestamp shapes GP-API emits; anything else
// yields the zero time.
func parseGatewayTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range gatewayTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

// toAmount converts a minor-unit numeric string ("1099") to a decimal amount
// (10.99). Absent or malformed input is zero.
func toAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Shift(-2)
}

// toNumericCurrencyString renders an amount in minor units, the way GP-API
// expects it on the wire.
func toNumericCurrencyString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.Shift(2).StringFixed(0)
}

// Amount returns a pointer to v, for the builders' optional amount fields.
func Amount(v decimal.Decimal) *decimal.Decimal {
	return &v
}
