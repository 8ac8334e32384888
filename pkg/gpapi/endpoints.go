package gpapi

import (
	"fmt"
	"net/url"
)

func escape(id string) string { return url.PathEscape(id) }

func endpointTransactions() string { return "/transactions" }

func endpointTransaction(id string) string { return "/transactions/" + escape(id) }

func endpointTransactionAction(id, action string) string {
	return fmt.Sprintf("/transactions/%s/%s", escape(id), action)
}

func endpointSettlementTransactions() string { return "/settlement/transactions" }

func endpointDeposits() string { return "/settlement/deposits" }

func endpointDeposit(id string) string { return "/settlement/deposits/" + escape(id) }

func endpointDisputes() string { return "/disputes" }

func endpointDispute(id string) string { return "/disputes/" + escape(id) }

func endpointSettlementDisputes() string { return "/settlement/disputes" }

func endpointSettlementDispute(id string) string { return "/settlement/disputes/" + escape(id) }

func endpointAcceptDispute(id string) string { return endpointDispute(id) + "/acceptance" }

func endpointChallengeDispute(id string) string { return endpointDispute(id) + "/challenge" }

func endpointDisputeDocument(disputeID, documentID string) string {
	return fmt.Sprintf("/disputes/%s/documents/%s", escape(disputeID), escape(documentID))
}

func endpointPaymentMethod(id string) string { return "/payment-methods/" + escape(id) }
