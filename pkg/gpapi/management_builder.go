package gpapi

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/validation"
)

// ManagementBuilder follows up an existing transaction or stored token:
// capture, refund, reversal, edit, hold, release and token maintenance.
type ManagementBuilder struct {
	transactionBuilder

	amount                      *decimal.Decimal
	currency                    string
	description                 string
	gratuity                    *decimal.Decimal
	poNumber                    string
	taxAmount                   *decimal.Decimal
	taxType                     entities.TaxType
	payerAuthenticationResponse string
	invoiceNumber               string
	multiCaptureSequence        int
	multiCapturePaymentCount    int
	voidReason                  string
	idempotencyKey              string
}

// NewManagementBuilder starts a follow-up operation of type t on pm.
func NewManagementBuilder(t entities.TransactionType, pm entities.PaymentMethod) *ManagementBuilder {
	b := &ManagementBuilder{transactionBuilder: newTransactionBuilder(t, pm)}
	b.setupValidations()
	return b
}

// Capture settles a previously authorized transaction.
func Capture(ref *entities.TransactionReference, amount *decimal.Decimal) *ManagementBuilder {
	return NewManagementBuilder(entities.Capture, ref).WithAmount(amount)
}

// Refund returns funds for a previously captured transaction.
func Refund(ref *entities.TransactionReference, amount *decimal.Decimal) *ManagementBuilder {
	return NewManagementBuilder(entities.Refund, ref).WithAmount(amount)
}

// Reverse cancels a transaction before settlement.
func Reverse(ref *entities.TransactionReference, amount *decimal.Decimal) *ManagementBuilder {
	return NewManagementBuilder(entities.Reversal, ref).WithAmount(amount)
}

// Edit adjusts the amount or gratuity of an authorized transaction.
func Edit(ref *entities.TransactionReference) *ManagementBuilder {
	return NewManagementBuilder(entities.Edit, ref)
}

// UpdateTokenExpiry pushes the card's expiry date to its stored token.
func UpdateTokenExpiry(card *entities.CreditCardData) *ManagementBuilder {
	return NewManagementBuilder(entities.TokenUpdate, card)
}

// DeleteToken removes a stored card token.
func DeleteToken(pm entities.Tokenizable) *ManagementBuilder {
	return NewManagementBuilder(entities.TokenDelete, pm)
}

// WithAmount sets the amount to capture, refund, reverse or adjust to.
func (b *ManagementBuilder) WithAmount(amount *decimal.Decimal) *ManagementBuilder {
	b.amount = amount
	return b
}

// WithCurrency sets the ISO 4217 currency code; required on a refund with an amount.
func (b *ManagementBuilder) WithCurrency(currency string) *ManagementBuilder {
	b.currency = currency
	return b
}

// WithDescription is sent as the operation description.
func (b *ManagementBuilder) WithDescription(description string) *ManagementBuilder {
	b.description = description
	return b
}

// WithGratuity is informational and does not change the authorized amount.
func (b *ManagementBuilder) WithGratuity(gratuity *decimal.Decimal) *ManagementBuilder {
	b.gratuity = gratuity
	return b
}

// WithPONumber sets the purchase order number sent with the order details.
func (b *ManagementBuilder) WithPONumber(poNumber string) *ManagementBuilder {
	b.poNumber = poNumber
	return b
}

// WithTaxAmount sets the order tax amount.
func (b *ManagementBuilder) WithTaxAmount(amount *decimal.Decimal) *ManagementBuilder {
	b.taxAmount = amount
	return b
}

// WithTaxType sets how the order tax amount is classified.
func (b *ManagementBuilder) WithTaxType(taxType entities.TaxType) *ManagementBuilder {
	b.taxType = taxType
	return b
}

// WithPayerAuthenticationResponse sets the 3-D Secure PaRes checked by VerifySignature.
func (b *ManagementBuilder) WithPayerAuthenticationResponse(response string) *ManagementBuilder {
	b.payerAuthenticationResponse = response
	return b
}

// WithInvoiceNumber is sent as the order reference.
func (b *ManagementBuilder) WithInvoiceNumber(invoiceNumber string) *ManagementBuilder {
	b.invoiceNumber = invoiceNumber
	return b
}

// WithMultiCapture marks a capture as one of paymentCount partial captures.
func (b *ManagementBuilder) WithMultiCapture(sequence, paymentCount int) *ManagementBuilder {
	if sequence <= 0 {
		sequence = 1
	}
	if paymentCount <= 0 {
		paymentCount = 1
	}
	b.multiCapture = true
	b.multiCaptureSequence = sequence
	b.multiCapturePaymentCount = paymentCount
	return b
}

// WithVoidReason records why a transaction is voided; other operations reject it.
func (b *ManagementBuilder) WithVoidReason(reason string) *ManagementBuilder {
	b.voidReason = reason
	return b
}

// WithPaymentMethod replaces the payment method the operation acts on.
func (b *ManagementBuilder) WithPaymentMethod(pm entities.PaymentMethod) *ManagementBuilder {
	b.paymentMethod = pm
	return b
}

// WithIdempotencyKey is passed through to the gateway unchanged.
func (b *ManagementBuilder) WithIdempotencyKey(key string) *ManagementBuilder {
	b.idempotencyKey = key
	return b
}

func (b *ManagementBuilder) reference() *entities.TransactionReference {
	ref, _ := b.paymentMethod.(*entities.TransactionReference)
	return ref
}

// TransactionID is read off a TransactionReference payment method.
func (b *ManagementBuilder) TransactionID() string {
	if ref := b.reference(); ref != nil {
		return ref.TransactionID
	}
	return ""
}

// AuthorizationCode is read off a TransactionReference payment method.
func (b *ManagementBuilder) AuthorizationCode() string {
	if ref := b.reference(); ref != nil {
		return ref.AuthCode
	}
	return ""
}

// ClientTransactionID is read off a TransactionReference payment method.
func (b *ManagementBuilder) ClientTransactionID() string {
	if ref := b.reference(); ref != nil {
		return ref.ClientTransactionID
	}
	return ""
}

// OrderID is read off a TransactionReference payment method.
func (b *ManagementBuilder) OrderID() string {
	if ref := b.reference(); ref != nil {
		return ref.OrderID
	}
	return ""
}

// FieldValue exposes builder fields to the validation table.
func (b *ManagementBuilder) FieldValue(name string) any {
	switch name {
	case "transactionId":
		return b.TransactionID()
	case "orderId":
		return b.OrderID()
	case "amount":
		return b.amount
	case "currency":
		return b.currency
	case "payerAuthenticationResponse":
		return b.payerAuthenticationResponse
	case "paymentMethod":
		return b.paymentMethod
	case "voidReason":
		return b.voidReason
	}
	return nil
}

func (b *ManagementBuilder) setupValidations() {
	v := b.validations

	v.Of(entities.Capture, entities.Edit, entities.Hold, entities.Release).
		Check("transactionId").IsNotNil()

	v.Of(entities.Refund).
		When("amount").IsNotNil().
		Check("currency").IsNotNil()

	v.Of(entities.VerifySignature).
		Check("payerAuthenticationResponse").IsNotNil().
		Check("amount").IsNotNil().
		Check("currency").IsNotNil().
		Check("orderId").IsNotNil()

	v.Of(entities.TokenDelete, entities.TokenUpdate).
		Check("paymentMethod").IsNotNil().
		Check("paymentMethod").ConformsTo(validation.Implements[entities.Tokenizable]())

	v.Of(entities.TokenUpdate).
		Check("paymentMethod").IsInstanceOf(validation.InstanceOf[*entities.CreditCardData]())

	v.Of(entities.Capture, entities.Edit, entities.Hold, entities.Release, entities.TokenUpdate,
		entities.TokenDelete, entities.VerifySignature, entities.Refund).
		Check("voidReason").IsNil()
}

// Execute validates the builder and runs it against the default configuration.
func (b *ManagementBuilder) Execute(ctx context.Context) (*entities.Transaction, error) {
	return b.ExecuteWithConfig(ctx, DefaultConfigName)
}

// ExecuteWithConfig validates the builder and runs it against a named configuration.
func (b *ManagementBuilder) ExecuteWithConfig(ctx context.Context, configName string) (*entities.Transaction, error) {
	if err := b.validate(b); err != nil {
		return nil, err
	}

	conn, err := services.Connector(configName)
	if err != nil {
		return nil, err
	}

	return conn.ManageTransaction(ctx, b)
}
