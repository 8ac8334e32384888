package gpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// SearchCriteria narrows a report query. Zero-valued fields are not sent.
type SearchCriteria struct {
	PaymentType              entities.PaymentType
	Channel                  entities.Channel
	Amount                   *decimal.Decimal
	Currency                 string
	CardNumberFirstSix       string
	CardNumberLastFour       string
	TokenFirstSix            string
	TokenLastFour            string
	AccountName              string
	CardBrand                string
	BrandReference           string
	AuthCode                 string
	ReferenceNumber          string
	TransactionStatus        entities.TransactionStatus
	Country                  string
	BatchID                  string
	PaymentEntryMode         entities.PaymentEntryMode
	Name                     string
	DepositStatus            entities.DepositStatus
	AcquirerReferenceNumber  string
	DepositReference         string
	StartDepositDate         *time.Time
	EndDepositDate           *time.Time
	StartBatchDate           *time.Time
	EndBatchDate             *time.Time
	MerchantID               string
	SystemHierarchy          string
	DisputeStatus            entities.DisputeStatus
	DisputeStage             entities.DisputeStage
	StartStageDate           *time.Time
	EndStageDate             *time.Time
	AdjustmentFunding        entities.AdjustmentFunding
	StartAdjustmentDate      *time.Time
	EndAdjustmentDate        *time.Time
	DisputeReference         string
	SettlementDisputeID      string
	DisputeDocumentReference string
}

// Date is a convenience for the optional date filters.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
