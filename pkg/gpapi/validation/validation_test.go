package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type kind int

const (
	kindCapture kind = iota + 1
	kindRefund
	kindTokenUpdate
)

func (k kind) String() string {
	switch k {
	case kindCapture:
		return "capture"
	case kindRefund:
		return "refund"
	case kindTokenUpdate:
		return "tokenUpdate"
	}
	return "unknown"
}

type fields map[string]any

func (f fields) FieldValue(name string) any { return f[name] }

type tokenized interface{ token() string }

type card struct{}

func (card) token() string { return "PMT_1" }

type cheque struct{}

func rules() *Validations[kind] {
	v := New[kind]()
	v.Of(kindCapture).Check("transactionId").IsNotNil()
	v.Of(kindRefund).When("amount").IsNotNil().Check("currency").IsNotNil()
	v.Of(kindTokenUpdate).
		Check("paymentMethod").IsNotNil().
		Check("paymentMethod").ConformsTo(Implements[tokenized]()).
		Check("paymentMethod").IsInstanceOf(InstanceOf[card]())
	v.Of(kindCapture, kindRefund).Check("voidReason").IsNil()
	return v
}

func TestValidateRequiredField(t *testing.T) {
	err := rules().Validate(kindCapture, fields{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "transactionId", verr.Field)
	require.Equal(t, "capture", verr.TransactionType)
	require.EqualError(t, err, "transactionId cannot be nil for capture transaction type")

	require.NoError(t, rules().Validate(kindCapture, fields{"transactionId": "TRN_1"}))
}

func TestValidateWhenGate(t *testing.T) {
	v := rules()
	require.NoError(t, v.Validate(kindRefund, fields{}))

	err := v.Validate(kindRefund, fields{"amount": 10})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "currency", verr.Field)

	require.NoError(t, v.Validate(kindRefund, fields{"amount": 10, "currency": "USD"}))
}

func TestValidateFirstFailureWins(t *testing.T) {
	err := rules().Validate(kindCapture, fields{"voidReason": "FRAUD"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "transactionId", verr.Field)

	err = rules().Validate(kindCapture, fields{"transactionId": "TRN_1", "voidReason": "FRAUD"})
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "voidReason", verr.Field)
	require.Equal(t, "must be nil", verr.Rule)
}

func TestValidateCapabilityChecks(t *testing.T) {
	v := rules()

	err := v.Validate(kindTokenUpdate, fields{"paymentMethod": cheque{}})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Rule, "must conform to")

	require.NoError(t, v.Validate(kindTokenUpdate, fields{"paymentMethod": card{}}))
}

func TestRulesForOtherTypesAreInert(t *testing.T) {
	require.NoError(t, rules().Validate(kind(99), fields{}))
}

func TestIsNil(t *testing.T) {
	var p *card
	var m map[string]string
	require.True(t, IsNil(nil))
	require.True(t, IsNil(""))
	require.True(t, IsNil(p))
	require.True(t, IsNil(m))
	require.False(t, IsNil("x"))
	require.False(t, IsNil(0))
	require.False(t, IsNil(map[string]string{}))
}
