package gpapi

import (
	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// TransactionDetail fetches one transaction.
func TransactionDetail(transactionID string) *TransactionReportBuilder[*entities.TransactionSummary] {
	return newReport(entities.ReportTransactionDetail, mapTransactionSummary).WithTransactionID(transactionID)
}

// FindTransactions searches processed transactions.
func FindTransactions() *TransactionReportBuilder[[]*entities.TransactionSummary] {
	return newReport(entities.ReportFindTransactions, mapTransactionSummaryList)
}

// FindSettlementTransactions searches settled transactions.
func FindSettlementTransactions() *TransactionReportBuilder[[]*entities.TransactionSummary] {
	return newReport(entities.ReportFindSettlementTransactions, mapTransactionSummaryList)
}

// DepositDetail fetches one deposit.
func DepositDetail(depositID string) *TransactionReportBuilder[*entities.DepositSummary] {
	return newReport(entities.ReportDepositDetail, mapDepositSummary).
		Where(func(c *SearchCriteria) { c.DepositReference = depositID })
}

// FindDeposits searches deposits.
func FindDeposits() *TransactionReportBuilder[[]*entities.DepositSummary] {
	return newReport(entities.ReportFindDeposits, mapDepositSummaryList)
}

// DisputeDetail fetches one dispute.
func DisputeDetail(disputeID string) *TransactionReportBuilder[*entities.DisputeSummary] {
	return newReport(entities.ReportDisputeDetail, mapDisputeSummary).
		Where(func(c *SearchCriteria) { c.DisputeReference = disputeID })
}

// SettlementDisputeDetail fetches one settled dispute.
func SettlementDisputeDetail(settlementDisputeID string) *TransactionReportBuilder[*entities.DisputeSummary] {
	return newReport(entities.ReportSettlementDisputeDetail, mapDisputeSummary).
		Where(func(c *SearchCriteria) { c.SettlementDisputeID = settlementDisputeID })
}

// FindDisputes searches disputes.
func FindDisputes() *TransactionReportBuilder[[]*entities.DisputeSummary] {
	return newReport(entities.ReportFindDisputes, mapDisputeSummaryList)
}

// FindSettlementDisputes searches settled disputes.
func FindSettlementDisputes() *TransactionReportBuilder[[]*entities.DisputeSummary] {
	return newReport(entities.ReportFindSettlementDisputes, mapDisputeSummaryList)
}

// AcceptDispute concedes a dispute.
func AcceptDispute(disputeID string) *TransactionReportBuilder[*entities.DisputeAction] {
	return newReport(entities.ReportAcceptDispute, mapDisputeAction).
		Where(func(c *SearchCriteria) { c.DisputeReference = disputeID })
}

// ChallengeDispute contests a dispute with supporting documents.
func ChallengeDispute(disputeID string, documents []entities.DocumentInfo) *TransactionReportBuilder[*entities.DisputeAction] {
	return newReport(entities.ReportChallengeDispute, mapDisputeAction).
		Where(func(c *SearchCriteria) { c.DisputeReference = disputeID }).
		WithDisputeDocuments(documents)
}

// DocumentDisputeDetail downloads a document attached to a dispute. The
// result is nil when the gateway returns undecodable content.
func DocumentDisputeDetail(disputeID, documentID string) *TransactionReportBuilder[*entities.DocumentMetadata] {
	return newReport(entities.ReportDisputeDocument, mapDocumentMetadata).
		Where(func(c *SearchCriteria) {
			c.DisputeReference = disputeID
			c.DisputeDocumentReference = documentID
		})
}
