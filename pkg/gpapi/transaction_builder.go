package gpapi

import (
	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/validation"
)

// transactionBuilder holds what every transaction-family builder shares.
// Builders are single-use and not safe for concurrent mutation.
type transactionBuilder struct {
	transactionType entities.TransactionType
	paymentMethod   entities.PaymentMethod
	multiCapture    bool
	validations     *validation.Validations[entities.TransactionType]
}

func newTransactionBuilder(t entities.TransactionType, pm entities.PaymentMethod) transactionBuilder {
	return transactionBuilder{
		transactionType: t,
		paymentMethod:   pm,
		validations:     validation.New[entities.TransactionType](),
	}
}

// TransactionType reports the operation the builder will perform.
func (b *transactionBuilder) TransactionType() entities.TransactionType { return b.transactionType }

// PaymentMethod returns the payment method the builder acts on.
func (b *transactionBuilder) PaymentMethod() entities.PaymentMethod { return b.paymentMethod }

func (b *transactionBuilder) validate(target validation.Target) error {
	return b.validations.Validate(b.transactionType, target)
}
