package gpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

func TestRefundWithoutCurrencyFailsBeforeNetwork(t *testing.T) {
	gw := newFakeGateway(t, nil)
	name, _ := gw.configure(t)

	ref := entities.NewTransactionReference("TRN_1")
	_, err := Refund(ref, Amount(decimal.NewFromInt(10))).ExecuteWithConfig(context.Background(), name)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "currency", verr.Field)
	require.EqualError(t, err, "currency cannot be nil for refund transaction type")
	require.Empty(t, gw.Calls())
	require.Zero(t, gw.TokenRequests())
}

func TestRefundWithoutAmountSkipsCurrencyRule(t *testing.T) {
	gw := newFakeGateway(t, respondJSON(`{"id":"TRN_2","status":"CAPTURED"}`))
	name, _ := gw.configure(t)

	txn, err := Refund(entities.NewTransactionReference("TRN_1"), nil).ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)
	require.Equal(t, "TRN_2", txn.TransactionID)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "/transactions/TRN_1/refund", calls[0].Path)
	require.JSONEq(t, `{"channel":"CNP"}`, string(calls[0].Body))
}

func TestCaptureRequestAndResponse(t *testing.T) {
	gw := newFakeGateway(t, respondJSON(`{
		"id": "TRN_1",
		"time_created": "2024-03-15T10:30:00Z",
		"status": "CAPTURED",
		"amount": "1000",
		"currency": "USD",
		"reference": "order-1",
		"batch_id": "BAT_1",
		"action": {"result_code": "SUCCESS"},
		"payment_method": {"card": {"brand": "VISA", "authcode": "A1B2", "masked_number_last4": "XXXXXXXXXXXX4242", "brand_reference": "BR_9"}}
	}`))
	name, _ := gw.configure(t)

	txn, err := Capture(entities.NewTransactionReference("TRN_1"), Amount(decimal.NewFromInt(10))).
		WithIdempotencyKey("idem-1").
		ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, http.MethodPost, calls[0].Method)
	require.Equal(t, "/transactions/TRN_1/capture", calls[0].Path)
	require.Equal(t, "idem-1", calls[0].Header.Get("x-gp-idempotency"))
	require.JSONEq(t, `{"amount":"1000","channel":"CNP"}`, string(calls[0].Body))

	require.Equal(t, "TRN_1", txn.TransactionID)
	require.Equal(t, entities.TransactionStatusCaptured, txn.Status)
	require.Equal(t, "SUCCESS", txn.ResponseCode)
	require.Equal(t, "CAPTURED", txn.ResponseMessage)
	require.Equal(t, "A1B2", txn.AuthorizationCode)
	require.Equal(t, "order-1", txn.ReferenceNumber)
	require.Equal(t, "BAT_1", txn.BatchID)
	require.Equal(t, "10.00", txn.Amount.StringFixed(2))
	require.Equal(t, "USD", txn.Currency)
	require.True(t, txn.Timestamp.Equal(time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)))
	require.Equal(t, "VISA", txn.CardBrand)
	require.Equal(t, "XXXXXXXXXXXX4242", txn.CardLast4)
	require.Equal(t, "BR_9", txn.BrandReference)
	require.Empty(t, txn.Token)
	require.Equal(t, "TRN_1", txn.Reference().TransactionID)
}

func TestCaptureRequiresTransactionID(t *testing.T) {
	_, err := Capture(&entities.TransactionReference{}, nil).ExecuteWithConfig(context.Background(), "unused")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "transactionId", verr.Field)
	require.Equal(t, "capture", verr.TransactionType)
}

func TestVoidReasonRejectedOnCapture(t *testing.T) {
	_, err := Capture(entities.NewTransactionReference("TRN_1"), nil).
		WithVoidReason("customer cancelled").
		ExecuteWithConfig(context.Background(), "unused")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "voidReason", verr.Field)
}

func TestBuildManagementRequestBodies(t *testing.T) {
	ref := entities.NewTransactionReference("TRN_7")
	cfg := &GpAPIConfig{Channel: entities.ChannelCardNotPresent, Country: "GB"}

	tests := []struct {
		name     string
		builder  *ManagementBuilder
		endpoint string
		body     string
	}{
		{
			name:     "capture with gratuity",
			builder:  Capture(ref, Amount(decimal.RequireFromString("12.50"))).WithGratuity(Amount(decimal.RequireFromString("2"))),
			endpoint: "/transactions/TRN_7/capture",
			body:     `{"amount":"1250","gratuity_amount":"200","channel":"CNP","country":"GB"}`,
		},
		{
			name:     "refund",
			builder:  Refund(ref, Amount(decimal.RequireFromString("5"))).WithCurrency("EUR"),
			endpoint: "/transactions/TRN_7/refund",
			body:     `{"amount":"500","currency":"EUR","channel":"CNP","country":"GB"}`,
		},
		{
			name:     "refund with description",
			builder:  Refund(ref, nil).WithDescription("damaged item"),
			endpoint: "/transactions/TRN_7/refund",
			body:     `{"description":"damaged item","channel":"CNP","country":"GB"}`,
		},
		{
			name:     "reversal",
			builder:  Reverse(ref, nil),
			endpoint: "/transactions/TRN_7/reversal",
			body:     `{"channel":"CNP","country":"GB"}`,
		},
		{
			name:     "edit",
			builder:  Edit(ref).WithAmount(Amount(decimal.RequireFromString("1"))).WithGratuity(Amount(decimal.RequireFromString("0.25"))),
			endpoint: "/transactions/TRN_7/adjustment",
			body:     `{"amount":"100","gratuity_amount":"25","channel":"CNP","country":"GB"}`,
		},
		{
			name: "multi capture with order details",
			builder: Capture(ref, Amount(decimal.NewFromInt(10))).
				WithMultiCapture(2, 3).
				WithDescription("desc").
				WithInvoiceNumber("INV-1").
				WithTaxAmount(Amount(decimal.NewFromInt(1))).
				WithPONumber("PO-1"),
			endpoint: "/transactions/TRN_7/capture",
			body: `{
				"amount": "1000",
				"channel": "CNP",
				"country": "GB",
				"description": "desc",
				"multi_capture_sequence": 2,
				"multi_capture_payment_count": 3,
				"order": {"reference": "INV-1", "purchase_order_number": "PO-1", "tax_amount": "100"}
			}`,
		},
		{
			name: "edit with tax type",
			builder: Edit(ref).
				WithDescription("tip added").
				WithTaxAmount(Amount(decimal.RequireFromString("0.50"))).
				WithTaxType(entities.TaxTypeSalesTax),
			endpoint: "/transactions/TRN_7/adjustment",
			body: `{
				"channel": "CNP",
				"country": "GB",
				"description": "tip added",
				"order": {"tax_amount": "50", "tax_type": "SALES_TAX"}
			}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := buildManagementRequest(tc.builder, cfg)
			require.NoError(t, err)
			require.Equal(t, http.MethodPost, req.Method)
			require.Equal(t, tc.endpoint, req.Endpoint)

			body, err := json.Marshal(req.Body)
			require.NoError(t, err)
			require.JSONEq(t, tc.body, string(body))
		})
	}
}

func TestUpdateTokenExpiry(t *testing.T) {
	gw := newFakeGateway(t, respondJSON(`{"id":"PMT_abc","status":"ACTIVE"}`))
	name, _ := gw.configure(t)

	card := &entities.CreditCardData{Token: "PMT_abc", ExpMonth: 3, ExpYear: 2029}
	txn, err := UpdateTokenExpiry(card).ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)
	require.Equal(t, "PMT_abc", txn.Token)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, http.MethodPatch, calls[0].Method)
	require.Equal(t, "/payment-methods/PMT_abc", calls[0].Path)
	require.JSONEq(t, `{"usage_mode":"MULTIPLE","account_name":"Transaction_Processing","card":{"expiry_month":"03","expiry_year":"29"}}`, string(calls[0].Body))
}

func TestTokenUpdateRequiresCard(t *testing.T) {
	_, err := NewManagementBuilder(entities.TokenUpdate, &entities.RecurringPaymentMethod{ID: "PMT_1"}).
		ExecuteWithConfig(context.Background(), "unused")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "paymentMethod", verr.Field)
}

func TestTokenDeleteRequiresTokenizable(t *testing.T) {
	_, err := NewManagementBuilder(entities.TokenDelete, entities.NewTransactionReference("TRN_1")).
		ExecuteWithConfig(context.Background(), "unused")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "paymentMethod", verr.Field)
}

func TestDeleteToken(t *testing.T) {
	gw := newFakeGateway(t, respondJSON(`{"id":"PMT_9","status":"DELETED"}`))
	name, _ := gw.configure(t)

	_, err := DeleteToken(&entities.RecurringPaymentMethod{ID: "PMT_9"}).ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, http.MethodDelete, calls[0].Method)
	require.Equal(t, "/payment-methods/PMT_9", calls[0].Path)
}

func TestUnsupportedManagementTypes(t *testing.T) {
	gw := newFakeGateway(t, nil)
	name, _ := gw.configure(t)

	for _, tt := range []entities.TransactionType{entities.Hold, entities.Release} {
		_, err := NewManagementBuilder(tt, entities.NewTransactionReference("TRN_1")).
			ExecuteWithConfig(context.Background(), name)
		require.ErrorIs(t, err, ErrUnsupportedTransaction, tt.String())
	}
	require.Empty(t, gw.Calls())
}
