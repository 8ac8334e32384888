package gpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// reportRequest is a report's gateway request, awaiting the data account
// name that only the access token knows.
type reportRequest struct {
	gatewayRequest
	withDataAccount bool
}

type queryParams map[string]string

// add skips empty values; no parameter is ever sent as an empty string.
func (q queryParams) add(key, value string) {
	if value == "" {
		return
	}
	q[key] = value
}

func (q queryParams) addInt(key string, value int) {
	if value > 0 {
		q[key] = strconv.Itoa(value)
	}
}

// dateOrToday formats t, substituting today's date when t is absent.
func dateOrToday(t *time.Time, now time.Time) string {
	if t == nil || t.IsZero() {
		return now.Format(dateFormat)
	}
	return t.Format(dateFormat)
}

// buildReportRequest maps a report query onto exactly one endpoint and its
// parameters. Report types without a GP-API endpoint are rejected rather than
// sent as an empty request.
func buildReportRequest(q *reportQuery, now time.Time) (reportRequest, error) {
	params := queryParams{}
	req := reportRequest{gatewayRequest: gatewayRequest{Method: http.MethodGet, Query: params}}
	sc := &q.criteria
	reportName := q.reportType.String()

	switch q.reportType {
	case entities.ReportTransactionDetail:
		if q.transactionID == "" {
			return reportRequest{}, missingField("transactionId", reportName)
		}
		req.Endpoint = endpointTransaction(q.transactionID)

	case entities.ReportFindTransactions:
		req.Endpoint = endpointTransactions()
		params.addInt("page", q.page)
		params.addInt("page_size", q.pageSize)
		params.add("order_by", string(q.transactionSort))
		params.add("order", string(q.transactionOrder))
		params.add("id", q.transactionID)
		params.add("type", string(sc.PaymentType))
		params.add("channel", string(sc.Channel))
		params.add("amount", toNumericCurrencyString(sc.Amount))
		params.add("currency", sc.Currency)
		params.add("number_first6", sc.CardNumberFirstSix)
		params.add("number_last4", sc.CardNumberLastFour)
		params.add("token_first6", sc.TokenFirstSix)
		params.add("token_last4", sc.TokenLastFour)
		params.add("account_name", sc.AccountName)
		params.add("brand", sc.CardBrand)
		params.add("brand_reference", sc.BrandReference)
		params.add("authcode", sc.AuthCode)
		params.add("reference", sc.ReferenceNumber)
		params.add("status", string(sc.TransactionStatus))
		params.add("from_time_created", dateOrToday(q.startDate, now))
		params.add("to_time_created", formatDate(q.endDate))
		params.add("country", sc.Country)
		params.add("batch_id", sc.BatchID)
		params.add("entry_mode", string(sc.PaymentEntryMode))
		params.add("name", sc.Name)

	case entities.ReportFindSettlementTransactions:
		req.Endpoint = endpointSettlementTransactions()
		req.withDataAccount = true
		params.addInt("page", q.page)
		params.addInt("page_size", q.pageSize)
		params.add("order_by", string(q.transactionSort))
		params.add("order", string(q.transactionOrder))
		params.add("number_first6", sc.CardNumberFirstSix)
		params.add("number_last4", sc.CardNumberLastFour)
		params.add("deposit_status", string(sc.DepositStatus))
		params.add("brand", sc.CardBrand)
		params.add("arn", sc.AcquirerReferenceNumber)
		params.add("brand_reference", sc.BrandReference)
		params.add("authcode", sc.AuthCode)
		params.add("reference", sc.ReferenceNumber)
		params.add("status", string(sc.TransactionStatus))
		params.add("from_time_created", dateOrToday(q.startDate, now))
		params.add("to_time_created", formatDate(q.endDate))
		params.add("deposit_id", sc.DepositReference)
		params.add("from_deposit_time_created", formatDate(sc.StartDepositDate))
		params.add("to_deposit_time_created", formatDate(sc.EndDepositDate))
		params.add("from_batch_time_created", formatDate(sc.StartBatchDate))
		params.add("to_batch_time_created", formatDate(sc.EndBatchDate))
		params.add("system.mid", sc.MerchantID)
		params.add("system.hierarchy", sc.SystemHierarchy)

	case entities.ReportFindDeposits:
		req.Endpoint = endpointDeposits()
		req.withDataAccount = true
		params.addInt("page", q.page)
		params.addInt("page_size", q.pageSize)
		params.add("status", string(q.depositStatus))
		params.add("order_by", string(q.depositSort))
		params.add("order", string(q.depositOrder))
		params.add("from_time_created", dateOrToday(q.startDate, now))
		params.add("to_time_created", formatDate(q.endDate))
		params.add("id", sc.DepositReference)
		params.add("system.mid", sc.MerchantID)
		params.add("system.hierarchy", sc.SystemHierarchy)

	case entities.ReportDepositDetail:
		if sc.DepositReference == "" {
			return reportRequest{}, missingField("depositReference", reportName)
		}
		req.Endpoint = endpointDeposit(sc.DepositReference)

	case entities.ReportFindDisputes, entities.ReportFindSettlementDisputes:
		req.Endpoint = endpointDisputes()
		if q.reportType == entities.ReportFindSettlementDisputes {
			req.Endpoint = endpointSettlementDisputes()
			req.withDataAccount = true
		}
		params.addInt("page", q.page)
		params.addInt("page_size", q.pageSize)
		params.add("order_by", string(q.disputeSort))
		params.add("order", string(q.disputeOrder))
		params.add("arn", sc.AcquirerReferenceNumber)
		params.add("brand", sc.CardBrand)
		params.add("status", string(sc.DisputeStatus))
		params.add("stage", string(sc.DisputeStage))
		params.add("from_stage_time_created", dateOrToday(sc.StartStageDate, now))
		params.add("to_stage_time_created", formatDate(sc.EndStageDate))
		params.add("adjustment_funding", string(sc.AdjustmentFunding))
		params.add("from_adjustment_time_created", formatDate(sc.StartAdjustmentDate))
		params.add("to_adjustment_time_created", formatDate(sc.EndAdjustmentDate))
		params.add("system.mid", sc.MerchantID)
		params.add("system.hierarchy", sc.SystemHierarchy)

	case entities.ReportDisputeDetail:
		if sc.DisputeReference == "" {
			return reportRequest{}, missingField("disputeReference", reportName)
		}
		req.Endpoint = endpointDispute(sc.DisputeReference)

	case entities.ReportSettlementDisputeDetail:
		if sc.SettlementDisputeID == "" {
			return reportRequest{}, missingField("settlementDisputeId", reportName)
		}
		req.Endpoint = endpointSettlementDispute(sc.SettlementDisputeID)
		req.withDataAccount = true

	case entities.ReportAcceptDispute:
		if sc.DisputeReference == "" {
			return reportRequest{}, missingField("disputeReference", reportName)
		}
		req.Method = http.MethodPost
		req.Endpoint = endpointAcceptDispute(sc.DisputeReference)

	case entities.ReportChallengeDispute:
		if sc.DisputeReference == "" {
			return reportRequest{}, missingField("disputeReference", reportName)
		}
		if len(q.disputeDocuments) == 0 {
			return reportRequest{}, missingField("disputeDocuments", reportName)
		}
		req.Method = http.MethodPost
		req.Endpoint = endpointChallengeDispute(sc.DisputeReference)
		req.Body = map[string][]entities.DocumentInfo{"documents": q.disputeDocuments}

	case entities.ReportDisputeDocument:
		if sc.DisputeReference == "" {
			return reportRequest{}, missingField("disputeReference", reportName)
		}
		if sc.DisputeDocumentReference == "" {
			return reportRequest{}, missingField("disputeDocumentReference", reportName)
		}
		req.Endpoint = endpointDisputeDocument(sc.DisputeReference, sc.DisputeDocumentReference)

	default:
		return reportRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedReport, reportName)
	}

	return req, nil
}

// processReport authenticates, fills in the data account and performs the call.
// Every report type, including dispute challenges, goes through here.
func (c *GpAPIConnector) processReport(ctx context.Context, req reportRequest) (string, error) {
	if req.withDataAccount {
		tok, err := c.verifyAuthentication(ctx)
		if err != nil {
			return "", err
		}
		params := queryParams{}
		for k, v := range req.Query {
			params[k] = v
		}
		params.add("account_name", tok.dataAccountName)
		req.Query = params
	}

	return c.doTransaction(ctx, req.gatewayRequest)
}
