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

func TestFetchRecurringRequiresKey(t *testing.T) {
	gw := newFakeGateway(t, nil)
	name, _ := gw.configure(t)

	_, err := FetchRecurring(&entities.Customer{}).ExecuteWithConfig(context.Background(), name)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "key", verr.Field)
	require.Equal(t, "fetch", verr.TransactionType)
	require.Empty(t, gw.Calls())
}

func TestSearchRecurringRequiresCriteria(t *testing.T) {
	_, err := SearchRecurring(&entities.Customer{}).ExecuteWithConfig(context.Background(), "unused")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "searchCriteria", verr.Field)
}

func TestRecurringRequiresEntity(t *testing.T) {
	_, err := CreateRecurring[*entities.Customer](nil).ExecuteWithConfig(context.Background(), "unused")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "entity", verr.Field)
}

func TestCreateRecurringCustomer(t *testing.T) {
	gw := newFakeGateway(t, respondJSON(`{"id":"CUS_1","first_name":"Ada","last_name":"Lovelace","status":"ACTIVE"}`))
	name, _ := gw.configure(t)

	created, err := CreateRecurring(&entities.Customer{FirstName: "Ada", LastName: "Lovelace"}).
		ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)
	require.Equal(t, &entities.Customer{ID: "CUS_1", FirstName: "Ada", LastName: "Lovelace", Status: "ACTIVE"}, created)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, http.MethodPost, calls[0].Method)
	require.Equal(t, "/customers", calls[0].Path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(calls[0].Body, &sent))
	require.Equal(t, map[string]any{"first_name": "Ada", "last_name": "Lovelace"}, sent)
}

func TestCreateRecurringScheduleSendsMinorUnits(t *testing.T) {
	gw := newFakeGateway(t, respondJSON(`{"id":"SCH_1","amount":"1099","currency":"USD","start_date":"2024-03-01","status":"ACTIVE"}`))
	name, _ := gw.configure(t)

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	created, err := CreateRecurring(&entities.Schedule{
		Amount:    decimal.RequireFromString("10.99"),
		Currency:  "USD",
		StartDate: &start,
	}).ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)
	require.Equal(t, "SCH_1", created.ID)
	require.Equal(t, "10.99", created.Amount.StringFixed(2))
	require.True(t, start.Equal(*created.StartDate))

	calls := gw.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "/schedules", calls[0].Path)
	require.JSONEq(t, `{"amount":"1099","currency":"USD","start_date":"2024-03-01"}`, string(calls[0].Body))
}

func TestEditAndDeleteRecurringUseKey(t *testing.T) {
	gw := newFakeGateway(t, nil)
	name, _ := gw.configure(t)

	pm := &entities.RecurringPaymentMethod{ID: "PMT_1", Name: "primary"}
	_, err := EditRecurring(pm).ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)
	_, err = DeleteRecurring(pm).ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)
	_, err = FetchRecurring(&entities.Schedule{}).WithKey("SCH_1").ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)

	calls := gw.Calls()
	require.Len(t, calls, 3)
	require.Equal(t, http.MethodPatch, calls[0].Method)
	require.Equal(t, "/payment-methods/PMT_1", calls[0].Path)
	require.Equal(t, http.MethodDelete, calls[1].Method)
	require.Equal(t, "/payment-methods/PMT_1", calls[1].Path)
	require.Empty(t, calls[1].Body)
	require.Equal(t, http.MethodGet, calls[2].Method)
	require.Equal(t, "/schedules/SCH_1", calls[2].Path)
}

func TestSearchRecurringDecodesList(t *testing.T) {
	gw := newFakeGateway(t, respondJSON(`{
		"paging": {"page": 1},
		"customers": [
			{"id": "CUS_1", "email": "a@example.com"},
			{"id": "CUS_2", "email": "b@example.com"}
		]
	}`))
	name, _ := gw.configure(t)

	found, err := SearchRecurring(&entities.Customer{}).
		AddSearchCriteria("email", "a@example.com").
		AddSearchCriteria("status", "").
		ExecuteWithConfig(context.Background(), name)
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, "CUS_1", found[0].ID)
	require.Equal(t, "b@example.com", found[1].Email)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "/customers", calls[0].Path)
	require.Equal(t, map[string]string{"email": "a@example.com"}, calls[0].Query)
}
