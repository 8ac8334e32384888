package entities

// The string enums below carry their GP-API wire value.

// Environment selects the gateway host.
type Environment string

const (
	EnvironmentTest       Environment = "test"
	EnvironmentProduction Environment = "production"
)

type TransactionStatus string

const (
	TransactionStatusInitiated     TransactionStatus = "INITIATED"
	TransactionStatusAuthenticated TransactionStatus = "AUTHENTICATED"
	TransactionStatusPending       TransactionStatus = "PENDING"
	TransactionStatusDeclined      TransactionStatus = "DECLINED"
	TransactionStatusPreauthorized TransactionStatus = "PREAUTHORIZED"
	TransactionStatusCaptured      TransactionStatus = "CAPTURED"
	TransactionStatusBatched       TransactionStatus = "BATCHED"
	TransactionStatusReversed      TransactionStatus = "REVERSED"
	TransactionStatusFunded        TransactionStatus = "FUNDED"
	TransactionStatusRejected      TransactionStatus = "REJECTED"
)

// ParseTransactionStatus returns "" for values the gateway may add later.
func ParseTransactionStatus(v string) TransactionStatus {
	return parseEnum(v, TransactionStatusInitiated, TransactionStatusAuthenticated, TransactionStatusPending,
		TransactionStatusDeclined, TransactionStatusPreauthorized, TransactionStatusCaptured,
		TransactionStatusBatched, TransactionStatusReversed, TransactionStatusFunded, TransactionStatusRejected)
}

type DepositStatus string

const (
	DepositStatusFunded    DepositStatus = "FUNDED"
	DepositStatusSplitFund DepositStatus = "SPLIT_FUNDING"
	DepositStatusDelayed   DepositStatus = "DELAYED"
	DepositStatusReserved  DepositStatus = "RESERVED"
	DepositStatusIrregular DepositStatus = "IRREG"
	DepositStatusReleased  DepositStatus = "RELEASED"
)

func ParseDepositStatus(v string) DepositStatus {
	return parseEnum(v, DepositStatusFunded, DepositStatusSplitFund, DepositStatusDelayed,
		DepositStatusReserved, DepositStatusIrregular, DepositStatusReleased)
}

type DisputeStatus string

const (
	DisputeStatusUnderReview  DisputeStatus = "UNDER_REVIEW"
	DisputeStatusWithMerchant DisputeStatus = "WITH_MERCHANT"
	DisputeStatusClosed       DisputeStatus = "CLOSED"
)

func ParseDisputeStatus(v string) DisputeStatus {
	return parseEnum(v, DisputeStatusUnderReview, DisputeStatusWithMerchant, DisputeStatusClosed)
}

type DisputeStage string

const (
	DisputeStageRetrieval        DisputeStage = "RETRIEVAL"
	DisputeStageChargeback       DisputeStage = "CHARGEBACK"
	DisputeStageReversal         DisputeStage = "REVERSAL"
	DisputeStageSecondChargeback DisputeStage = "SECOND_CHARGEBACK"
	DisputeStagePreArbitration   DisputeStage = "PRE_ARBITRATION"
	DisputeStageArbitration      DisputeStage = "ARBITRATION"
	DisputeStagePreCompliance    DisputeStage = "PRE_COMPLIANCE"
	DisputeStageCompliance       DisputeStage = "COMPLIANCE"
	DisputeStageGoodfaith        DisputeStage = "GOODFAITH"
)

func ParseDisputeStage(v string) DisputeStage {
	return parseEnum(v, DisputeStageRetrieval, DisputeStageChargeback, DisputeStageReversal,
		DisputeStageSecondChargeback, DisputeStagePreArbitration, DisputeStageArbitration,
		DisputeStagePreCompliance, DisputeStageCompliance, DisputeStageGoodfaith)
}

type DisputeResult string

const (
	DisputeResultWon  DisputeResult = "WON"
	DisputeResultLost DisputeResult = "LOST"
)

func ParseDisputeResult(v string) DisputeResult {
	return parseEnum(v, DisputeResultWon, DisputeResultLost)
}

type AdjustmentFunding string

const (
	AdjustmentFundingCredit AdjustmentFunding = "CREDIT"
	AdjustmentFundingDebit  AdjustmentFunding = "DEBIT"
)

func ParseAdjustmentFunding(v string) AdjustmentFunding {
	return parseEnum(v, AdjustmentFundingCredit, AdjustmentFundingDebit)
}

type DocumentType string

const (
	DocumentTypeSalesReceipt       DocumentType = "SALES_RECEIPT"
	DocumentTypeProofOfDelivery    DocumentType = "PROOF_OF_DELIVERY"
	DocumentTypeRefundPolicy       DocumentType = "REFUND_POLICY"
	DocumentTypeTermsAndConditions DocumentType = "TERMS_AND_CONDITIONS"
	DocumentTypeCancelationPolicy  DocumentType = "CANCELLATION_POLICY"
	DocumentTypeOther              DocumentType = "OTHER"
)

func ParseDocumentType(v string) DocumentType {
	return parseEnum(v, DocumentTypeSalesReceipt, DocumentTypeProofOfDelivery, DocumentTypeRefundPolicy,
		DocumentTypeTermsAndConditions, DocumentTypeCancelationPolicy, DocumentTypeOther)
}

type Channel string

const (
	ChannelCardPresent    Channel = "CP"
	ChannelCardNotPresent Channel = "CNP"
)

type PaymentType string

const (
	PaymentTypeSale   PaymentType = "SALE"
	PaymentTypeRefund PaymentType = "REFUND"
)

type PaymentEntryMode string

const (
	EntryModeMoto        PaymentEntryMode = "MOTO"
	EntryModeEcom        PaymentEntryMode = "ECOM"
	EntryModeInApp       PaymentEntryMode = "IN_APP"
	EntryModeChip        PaymentEntryMode = "CHIP"
	EntryModeSwipe       PaymentEntryMode = "SWIPE"
	EntryModeManual      PaymentEntryMode = "MANUAL"
	EntryModeContactless PaymentEntryMode = "CONTACTLESS_CHIP"
)

type SortDirection string

const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

type TransactionSortProperty string

const (
	TransactionSortID          TransactionSortProperty = "ID"
	TransactionSortTimeCreated TransactionSortProperty = "TIME_CREATED"
	TransactionSortStatus      TransactionSortProperty = "STATUS"
	TransactionSortType        TransactionSortProperty = "TYPE"
	TransactionSortDepositID   TransactionSortProperty = "DEPOSIT_ID"
)

type DepositSortProperty string

const (
	DepositSortTimeCreated DepositSortProperty = "TIME_CREATED"
	DepositSortStatus      DepositSortProperty = "STATUS"
	DepositSortType        DepositSortProperty = "TYPE"
	DepositSortDepositID   DepositSortProperty = "DEPOSIT_ID"
)

type DisputeSortProperty string

const (
	DisputeSortID                   DisputeSortProperty = "id"
	DisputeSortARN                  DisputeSortProperty = "arn"
	DisputeSortBrand                DisputeSortProperty = "brand"
	DisputeSortStatus               DisputeSortProperty = "status"
	DisputeSortStage                DisputeSortProperty = "stage"
	DisputeSortFromStageTimeCreated DisputeSortProperty = "from_stage_time_created"
	DisputeSortToStageTimeCreated   DisputeSortProperty = "to_stage_time_created"
)

// IntervalToExpire bounds the lifetime of a GP-API access token.
type IntervalToExpire string

const (
	IntervalWeek          IntervalToExpire = "WEEK"
	IntervalDay           IntervalToExpire = "DAY"
	IntervalTwelveHours   IntervalToExpire = "12_HOURS"
	IntervalSixHours      IntervalToExpire = "6_HOURS"
	IntervalThreeHours    IntervalToExpire = "3_HOURS"
	IntervalOneHour       IntervalToExpire = "1_HOUR"
	IntervalThirtyMinutes IntervalToExpire = "30_MINUTES"
	IntervalTenMinutes    IntervalToExpire = "10_MINUTES"
	IntervalFiveMinutes   IntervalToExpire = "5_MINUTES"
)

// PaymentSchedule indicates when in the month a recurring schedule runs.
type PaymentSchedule string

const (
	PaymentScheduleDynamic         PaymentSchedule = "DYNAMIC"
	PaymentScheduleFirstDayOfMonth PaymentSchedule = "FIRST_DAY_OF_THE_MONTH"
	PaymentScheduleLastDayOfMonth  PaymentSchedule = "LAST_DAY_OF_THE_MONTH"
)

type TaxType string

const (
	TaxTypeNotUsed   TaxType = "NOT_USED"
	TaxTypeSalesTax  TaxType = "SALES_TAX"
	TaxTypeTaxExempt TaxType = "TAX_EXEMPT"
)

func parseEnum[E ~string](v string, known ...E) E {
	for _, k := range known {
		if string(k) == v {
			return k
		}
	}
	return ""
}
