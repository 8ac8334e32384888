// Package gpapi is a client for the GlobalPayments GP-API gateway.
//
// Requests are assembled with fluent builders, validated against a per
// transaction-type rule table, and executed against a connector registered
// with ConfigureService:
//
//	err := gpapi.ConfigureService(&gpapi.GpAPIConfig{AppID: id, AppKey: key})
//	deposits, err := gpapi.FindDeposits().
//		WithPaging(1, 25).
//		WithDepositStatus(entities.DepositStatusFunded).
//		Execute(ctx)
//
// Builders are single-use and not safe for concurrent mutation. Connectors
// are safe for concurrent use; the access token is refreshed lazily.
package gpapi
