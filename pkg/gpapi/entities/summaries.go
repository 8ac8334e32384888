package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the outcome of a management or token operation.
type Transaction struct {
	TransactionID     string            `json:"transaction_id"`
	Status            TransactionStatus `json:"status,omitempty"`
	ResponseCode      string            `json:"response_code,omitempty"`
	ResponseMessage   string            `json:"response_message,omitempty"`
	AuthorizationCode string            `json:"authorization_code,omitempty"`
	ReferenceNumber   string            `json:"reference_number,omitempty"`
	BatchID           string            `json:"batch_id,omitempty"`
	Amount            decimal.Decimal   `json:"amount"`
	Currency          string            `json:"currency,omitempty"`
	Timestamp         time.Time         `json:"timestamp"`
	Token             string            `json:"token,omitempty"`
	CardBrand         string            `json:"card_brand,omitempty"`
	CardLast4         string            `json:"card_last4,omitempty"`
	BrandReference    string            `json:"brand_reference,omitempty"`
}

// Reference returns a reference usable for follow-up operations.
func (t *Transaction) Reference() *TransactionReference {
	return &TransactionReference{
		TransactionID: t.TransactionID,
		AuthCode:      t.AuthorizationCode,
	}
}

// TransactionSummary is one row of a transaction report.
type TransactionSummary struct {
	TransactionID           string            `json:"transaction_id"`
	TransactionDate         time.Time         `json:"transaction_date"`
	TransactionStatus       TransactionStatus `json:"transaction_status,omitempty"`
	TransactionType         string            `json:"transaction_type,omitempty"`
	Channel                 string            `json:"channel,omitempty"`
	Amount                  decimal.Decimal   `json:"amount"`
	Currency                string            `json:"currency,omitempty"`
	ReferenceNumber         string            `json:"reference_number,omitempty"`
	ClientTransactionID     string            `json:"client_transaction_id,omitempty"`
	BatchSequenceNumber     string            `json:"batch_sequence_number,omitempty"`
	Country                 string            `json:"country,omitempty"`
	OriginalTransactionID   string            `json:"original_transaction_id,omitempty"`
	GatewayResponseMessage  string            `json:"gateway_response_message,omitempty"`
	EntryMode               string            `json:"entry_mode,omitempty"`
	CardHolderName          string            `json:"card_holder_name,omitempty"`
	CardType                string            `json:"card_type,omitempty"`
	AuthCode                string            `json:"auth_code,omitempty"`
	BrandReference          string            `json:"brand_reference,omitempty"`
	AcquirerReferenceNumber string            `json:"acquirer_reference_number,omitempty"`
	MaskedCardNumber        string            `json:"masked_card_number,omitempty"`
	DepositReference        string            `json:"deposit_reference,omitempty"`
	DepositDate             time.Time         `json:"deposit_date"`
	DepositStatus           DepositStatus     `json:"deposit_status,omitempty"`
}

// DepositSummary is one funding deposit with its settlement totals.
type DepositSummary struct {
	DepositID             string          `json:"deposit_id"`
	DepositDate           time.Time       `json:"deposit_date"`
	Status                string          `json:"status,omitempty"`
	Type                  string          `json:"type,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	Currency              string          `json:"currency,omitempty"`
	MerchantNumber        string          `json:"merchant_number,omitempty"`
	MerchantHierarchy     string          `json:"merchant_hierarchy,omitempty"`
	MerchantName          string          `json:"merchant_name,omitempty"`
	MerchantDbaName       string          `json:"merchant_dba_name,omitempty"`
	SalesTotalCount       int             `json:"sales_total_count"`
	SalesTotalAmount      decimal.Decimal `json:"sales_total_amount"`
	RefundsTotalCount     int             `json:"refunds_total_count"`
	RefundsTotalAmount    decimal.Decimal `json:"refunds_total_amount"`
	ChargebackTotalCount  int             `json:"chargeback_total_count"`
	ChargebackTotalAmount decimal.Decimal `json:"chargeback_total_amount"`
	AdjustmentTotalCount  int             `json:"adjustment_total_count"`
	AdjustmentTotalAmount decimal.Decimal `json:"adjustment_total_amount"`
	FeesTotalAmount       decimal.Decimal `json:"fees_total_amount"`
}

// DisputeDocument references evidence attached to a dispute.
type DisputeDocument struct {
	ID   string       `json:"id"`
	Type DocumentType `json:"type"`
}

// DisputeSummary is one dispute case.
type DisputeSummary struct {
	CaseID                      string            `json:"case_id"`
	CaseIDTime                  time.Time         `json:"case_id_time"`
	CaseStatus                  string            `json:"case_status,omitempty"`
	CaseStage                   DisputeStage      `json:"case_stage,omitempty"`
	CaseAmount                  decimal.Decimal   `json:"case_amount"`
	CaseCurrency                string            `json:"case_currency,omitempty"`
	CaseMerchantID              string            `json:"case_merchant_id,omitempty"`
	MerchantHierarchy           string            `json:"merchant_hierarchy,omitempty"`
	TransactionMaskedCardNumber string            `json:"transaction_masked_card_number,omitempty"`
	TransactionARN              string            `json:"transaction_arn,omitempty"`
	TransactionCardType         string            `json:"transaction_card_type,omitempty"`
	Reason                      string            `json:"reason,omitempty"`
	ReasonCode                  string            `json:"reason_code,omitempty"`
	RespondByDate               time.Time         `json:"respond_by_date"`
	Documents                   []DisputeDocument `json:"documents,omitempty"`
	LastAdjustmentFunding       AdjustmentFunding `json:"last_adjustment_funding,omitempty"`
	LastAdjustmentAmount        decimal.Decimal   `json:"last_adjustment_amount"`
	LastAdjustmentCurrency      string            `json:"last_adjustment_currency,omitempty"`
	Result                      string            `json:"result,omitempty"`
}

// DisputeAction is the gateway's answer to accepting or challenging a dispute.
type DisputeAction struct {
	Reference         string          `json:"reference"`
	Status            DisputeStatus   `json:"status,omitempty"`
	Stage             DisputeStage    `json:"stage,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency,omitempty"`
	ReasonCode        string          `json:"reason_code,omitempty"`
	ReasonDescription string          `json:"reason_description,omitempty"`
	Result            DisputeResult   `json:"result,omitempty"`
	Documents         []string        `json:"documents,omitempty"`
}

// DocumentInfo is evidence uploaded when challenging a dispute.
type DocumentInfo struct {
	Type       DocumentType `json:"type"`
	B64Content string       `json:"b64_content"`
}

// DocumentMetadata is a dispute document with its decoded content.
type DocumentMetadata struct {
	ID      string `json:"id"`
	Content []byte `json:"content"`
}
