package entities

// ReportType selects the query or dispute action a report builder performs.
type ReportType int

const (
	ReportTypeUnknown ReportType = iota
	ReportTransactionDetail
	ReportFindTransactions
	ReportFindSettlementTransactions
	ReportDepositDetail
	ReportFindDeposits
	ReportDisputeDetail
	ReportFindDisputes
	ReportFindSettlementDisputes
	ReportSettlementDisputeDetail
	ReportAcceptDispute
	ReportChallengeDispute
	ReportDisputeDocument
	ReportActivity
	ReportBatchDetail
	ReportOpenAuths
)

var reportTypeNames = map[ReportType]string{
	ReportTransactionDetail:          "transactionDetail",
	ReportFindTransactions:           "findTransactions",
	ReportFindSettlementTransactions: "findSettlementTransactions",
	ReportDepositDetail:              "depositDetail",
	ReportFindDeposits:               "findDeposits",
	ReportDisputeDetail:              "disputeDetail",
	ReportFindDisputes:               "findDisputes",
	ReportFindSettlementDisputes:     "findSettlementDisputes",
	ReportSettlementDisputeDetail:    "settlementDisputeDetail",
	ReportAcceptDispute:              "acceptDispute",
	ReportChallengeDispute:           "challengeDispute",
	ReportDisputeDocument:            "disputeDocument",
	ReportActivity:                   "activity",
	ReportBatchDetail:                "batchDetail",
	ReportOpenAuths:                  "openAuths",
}

func (r ReportType) String() string {
	if name, ok := reportTypeNames[r]; ok {
		return name
	}
	return "unknown"
}
