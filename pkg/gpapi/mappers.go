package gpapi

import (
	"encoding/base64"

	"github.com/tidwall/gjson"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// mapList maps every element of doc[key] in order. A missing or non-array
// value yields an empty slice.
func mapList[T any](doc gjson.Result, key string, mapItem func(gjson.Result) T) []T {
	v := doc.Get(key)
	if !v.IsArray() {
		return []T{}
	}
	items := v.Array()
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, mapItem(item))
	}
	return out
}

func mapTransactionSummaryList(doc gjson.Result) []*entities.TransactionSummary {
	return mapList(doc, "transactions", mapTransactionSummary)
}

func mapDepositSummaryList(doc gjson.Result) []*entities.DepositSummary {
	return mapList(doc, "deposits", mapDepositSummary)
}

func mapDisputeSummaryList(doc gjson.Result) []*entities.DisputeSummary {
	return mapList(doc, "disputes", mapDisputeSummary)
}

func mapTransactionSummary(doc gjson.Result) *entities.TransactionSummary {
	paymentMethod := doc.Get("payment_method")
	card := paymentMethod.Get("card")

	return &entities.TransactionSummary{
		TransactionID:           doc.Get("id").String(),
		TransactionDate:         parseGatewayTime(doc.Get("time_created").String()),
		TransactionStatus:       entities.ParseTransactionStatus(doc.Get("status").String()),
		TransactionType:         doc.Get("type").String(),
		Channel:                 doc.Get("channel").String(),
		Amount:                  toAmount(doc.Get("amount").String()),
		Currency:                doc.Get("currency").String(),
		ReferenceNumber:         doc.Get("reference").String(),
		ClientTransactionID:     doc.Get("reference").String(),
		BatchSequenceNumber:     doc.Get("batch_id").String(),
		Country:                 doc.Get("country").String(),
		OriginalTransactionID:   doc.Get("parent_resource_id").String(),
		GatewayResponseMessage:  paymentMethod.Get("message").String(),
		EntryMode:               paymentMethod.Get("entry_mode").String(),
		CardHolderName:          paymentMethod.Get("name").String(),
		CardType:                card.Get("brand").String(),
		AuthCode:                card.Get("authcode").String(),
		BrandReference:          card.Get("brand_reference").String(),
		AcquirerReferenceNumber: card.Get("arn").String(),
		MaskedCardNumber:        card.Get("masked_number_first6last4").String(),
		DepositReference:        doc.Get("deposit_id").String(),
		DepositDate:             parseGatewayTime(doc.Get("deposit_time_created").String()),
		DepositStatus:           entities.ParseDepositStatus(doc.Get("deposit_status").String()),
	}
}

func mapDepositSummary(doc gjson.Result) *entities.DepositSummary {
	system := doc.Get("system")

	return &entities.DepositSummary{
		DepositID:             doc.Get("id").String(),
		DepositDate:           parseGatewayTime(doc.Get("time_created").String()),
		Status:                doc.Get("status").String(),
		Type:                  doc.Get("funding_type").String(),
		Amount:                toAmount(doc.Get("amount").String()),
		Currency:              doc.Get("currency").String(),
		MerchantNumber:        system.Get("mid").String(),
		MerchantHierarchy:     system.Get("hierarchy").String(),
		MerchantName:          system.Get("name").String(),
		MerchantDbaName:       system.Get("dba").String(),
		SalesTotalCount:       int(doc.Get("sales.count").Int()),
		SalesTotalAmount:      toAmount(doc.Get("sales.amount").String()),
		RefundsTotalCount:     int(doc.Get("refunds.count").Int()),
		RefundsTotalAmount:    toAmount(doc.Get("refunds.amount").String()),
		ChargebackTotalCount:  int(doc.Get("disputes.chargebacks.count").Int()),
		ChargebackTotalAmount: toAmount(doc.Get("disputes.chargebacks.amount").String()),
		AdjustmentTotalCount:  int(doc.Get("disputes.reversals.count").Int()),
		AdjustmentTotalAmount: toAmount(doc.Get("disputes.reversals.amount").String()),
		FeesTotalAmount:       toAmount(doc.Get("fees.amount").String()),
	}
}

func mapDisputeSummary(doc gjson.Result) *entities.DisputeSummary {
	card := doc.Get("payment_method.card")

	summary := &entities.DisputeSummary{
		CaseID:                      doc.Get("id").String(),
		CaseIDTime:                  parseGatewayTime(doc.Get("time_created").String()),
		CaseStatus:                  doc.Get("status").String(),
		CaseStage:                   entities.ParseDisputeStage(doc.Get("stage").String()),
		CaseAmount:                  toAmount(doc.Get("amount").String()),
		CaseCurrency:                doc.Get("currency").String(),
		CaseMerchantID:              doc.Get("system.mid").String(),
		MerchantHierarchy:           doc.Get("system.hierarchy").String(),
		TransactionMaskedCardNumber: card.Get("number").String(),
		TransactionARN:              card.Get("arn").String(),
		TransactionCardType:         card.Get("brand").String(),
		Reason:                      doc.Get("reason_description").String(),
		ReasonCode:                  doc.Get("reason_code").String(),
		RespondByDate:               parseGatewayTime(doc.Get("time_to_respond_by").String()),
		LastAdjustmentFunding:       entities.ParseAdjustmentFunding(doc.Get("last_adjustment_funding").String()),
		LastAdjustmentAmount:        toAmount(doc.Get("last_adjustment_amount").String()),
		LastAdjustmentCurrency:      doc.Get("last_adjustment_currency").String(),
		Result:                      doc.Get("result").String(),
	}

	for _, d := range doc.Get("documents").Array() {
		id := d.Get("id").String()
		docType := entities.ParseDocumentType(d.Get("type").String())
		if id == "" || docType == "" {
			continue
		}
		summary.Documents = append(summary.Documents, entities.DisputeDocument{ID: id, Type: docType})
	}

	return summary
}

func mapDisputeAction(doc gjson.Result) *entities.DisputeAction {
	action := &entities.DisputeAction{
		Reference:         doc.Get("id").String(),
		Status:            entities.ParseDisputeStatus(doc.Get("status").String()),
		Stage:             entities.ParseDisputeStage(doc.Get("stage").String()),
		Amount:            toAmount(doc.Get("amount").String()),
		Currency:          doc.Get("currency").String(),
		ReasonCode:        doc.Get("reason_code").String(),
		ReasonDescription: doc.Get("reason_description").String(),
		Result:            entities.ParseDisputeResult(doc.Get("result").String()),
	}

	for _, d := range doc.Get("documents").Array() {
		if id := d.Get("id").String(); id != "" {
			action.Documents = append(action.Documents, id)
		}
	}

	return action
}

// mapDocumentMetadata returns nil when the id or content is missing or the
// content is not valid base64.
func mapDocumentMetadata(doc gjson.Result) *entities.DocumentMetadata {
	id := doc.Get("id")
	b64 := doc.Get("b64_content")
	if !id.Exists() || !b64.Exists() {
		return nil
	}

	content, err := base64.StdEncoding.DecodeString(b64.String())
	if err != nil {
		return nil
	}

	return &entities.DocumentMetadata{ID: id.String(), Content: content}
}
