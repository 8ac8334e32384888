package gpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// managementRequest carries a management call and whether the token's
// transaction processing account name still has to be added to its body.
type managementRequest struct {
	gatewayRequest
	withTransactionAccount bool
}

// ManageTransaction sends a validated management builder to GP-API.
func (c *GpAPIConnector) ManageTransaction(ctx context.Context, b *ManagementBuilder) (*entities.Transaction, error) {
	req, err := buildManagementRequest(b, c.config)
	if err != nil {
		return nil, err
	}

	if req.withTransactionAccount {
		tok, err := c.verifyAuthentication(ctx)
		if err != nil {
			return nil, err
		}
		if body, ok := req.Body.(map[string]any); ok {
			addBodyParam(body, "account_name", tok.transactionProcessingAccountName)
		}
	}

	raw, err := c.doTransaction(ctx, req.gatewayRequest)
	if err != nil {
		return nil, err
	}

	return mapTransaction(gjson.Parse(raw)), nil
}

func buildManagementRequest(b *ManagementBuilder, cfg *GpAPIConfig) (managementRequest, error) {
	req := managementRequest{gatewayRequest: gatewayRequest{Method: http.MethodPost, IdempotencyKey: b.idempotencyKey}}
	txnType := b.transactionType.String()

	switch b.transactionType {
	case entities.Capture, entities.Refund, entities.Reversal, entities.Void, entities.Edit:
		id := b.TransactionID()
		if id == "" {
			return managementRequest{}, missingField("transactionId", txnType)
		}
		body := map[string]any{}
		addBodyParam(body, "amount", toNumericCurrencyString(b.amount))
		if cfg != nil {
			addBodyParam(body, "channel", string(cfg.Channel))
			addBodyParam(body, "country", cfg.Country)
		}

		switch b.transactionType {
		case entities.Capture:
			req.Endpoint = endpointTransactionAction(id, "capture")
			addBodyParam(body, "gratuity_amount", toNumericCurrencyString(b.gratuity))
			addBodyParam(body, "description", b.description)
			if b.multiCapture {
				body["multi_capture_sequence"] = b.multiCaptureSequence
				body["multi_capture_payment_count"] = b.multiCapturePaymentCount
			}
			addOrder(body, b)
		case entities.Refund:
			req.Endpoint = endpointTransactionAction(id, "refund")
			addBodyParam(body, "currency", b.currency)
			addBodyParam(body, "description", b.description)
		case entities.Reversal, entities.Void:
			req.Endpoint = endpointTransactionAction(id, "reversal")
		case entities.Edit:
			req.Endpoint = endpointTransactionAction(id, "adjustment")
			addBodyParam(body, "gratuity_amount", toNumericCurrencyString(b.gratuity))
			addBodyParam(body, "description", b.description)
			addOrder(body, b)
		}
		req.Body = body

	case entities.TokenUpdate:
		card, ok := b.paymentMethod.(*entities.CreditCardData)
		if !ok || card == nil || card.Token == "" {
			return managementRequest{}, missingField("token", txnType)
		}
		req.Method = http.MethodPatch
		req.Endpoint = endpointPaymentMethod(card.Token)
		req.Body = map[string]any{
			"usage_mode": "MULTIPLE",
			"card": map[string]string{
				"expiry_month": fmt.Sprintf("%02d", card.ExpMonth),
				"expiry_year":  twoDigitYear(card.ExpYear),
			},
		}
		req.withTransactionAccount = true

	case entities.TokenDelete:
		pm, ok := b.paymentMethod.(entities.Tokenizable)
		if !ok || pm.GetToken() == "" {
			return managementRequest{}, missingField("token", txnType)
		}
		token := pm.GetToken()
		req.Method = http.MethodDelete
		req.Endpoint = endpointPaymentMethod(token)

	default:
		return managementRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedTransaction, txnType)
	}

	return req, nil
}

// addOrder attaches the order block only when one of its fields is set.
func addOrder(body map[string]any, b *ManagementBuilder) {
	order := map[string]any{}
	addBodyParam(order, "reference", b.invoiceNumber)
	addBodyParam(order, "purchase_order_number", b.poNumber)
	addBodyParam(order, "tax_amount", toNumericCurrencyString(b.taxAmount))
	addBodyParam(order, "tax_type", string(b.taxType))
	if len(order) > 0 {
		body["order"] = order
	}
}

func addBodyParam(body map[string]any, key, value string) {
	if value == "" {
		return
	}
	body[key] = value
}

func twoDigitYear(year int) string {
	return fmt.Sprintf("%02d", year%100)
}

func mapTransaction(doc gjson.Result) *entities.Transaction {
	card := doc.Get("payment_method.card")

	txn := &entities.Transaction{
		TransactionID:     doc.Get("id").String(),
		Status:            entities.ParseTransactionStatus(doc.Get("status").String()),
		ResponseCode:      doc.Get("action.result_code").String(),
		ResponseMessage:   doc.Get("status").String(),
		AuthorizationCode: card.Get("authcode").String(),
		ReferenceNumber:   doc.Get("reference").String(),
		BatchID:           doc.Get("batch_id").String(),
		Amount:            toAmount(doc.Get("amount").String()),
		Currency:          doc.Get("currency").String(),
		Timestamp:         parseGatewayTime(doc.Get("time_created").String()),
		CardBrand:         card.Get("brand").String(),
		CardLast4:         card.Get("masked_number_last4").String(),
		BrandReference:    card.Get("brand_reference").String(),
	}
	if strings.HasPrefix(txn.TransactionID, "PMT_") {
		txn.Token = txn.TransactionID
	}

	return txn
}
