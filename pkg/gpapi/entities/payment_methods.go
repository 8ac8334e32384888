package entities

// PaymentMethodType tags the concrete payment method behind a PaymentMethod.
type PaymentMethodType string

const (
	PaymentMethodCredit    PaymentMethodType = "CREDIT"
	PaymentMethodReference PaymentMethodType = "REFERENCE"
	PaymentMethodRecurring PaymentMethodType = "RECURRING"
)

// PaymentMethod is anything a builder can charge, reference or tokenize.
type PaymentMethod interface {
	PaymentMethodType() PaymentMethodType
}

// Tokenizable payment methods carry a multi-use gateway token.
type Tokenizable interface {
	PaymentMethod
	GetToken() string
}

// CreditCardData is a keyed card or a stored card token.
type CreditCardData struct {
	Number         string
	ExpMonth       int
	ExpYear        int
	Cvn            string
	CardHolderName string
	Token          string
}

func (c *CreditCardData) PaymentMethodType() PaymentMethodType { return PaymentMethodCredit }

func (c *CreditCardData) GetToken() string { return c.Token }

// TransactionReference points at a transaction already known to the gateway.
type TransactionReference struct {
	TransactionID          string
	AuthCode               string
	ClientTransactionID    string
	OrderID                string
	AlternativePaymentType string
}

func (r *TransactionReference) PaymentMethodType() PaymentMethodType { return PaymentMethodReference }

// NewTransactionReference builds a reference from a gateway transaction id.
func NewTransactionReference(transactionID string) *TransactionReference {
	return &TransactionReference{TransactionID: transactionID}
}
