package gpapi

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/validation"
)

var (
	// ErrConfig marks an invalid service configuration.
	ErrConfig = errors.New("invalid gpapi configuration")
	// ErrNotConfigured is returned when no connector is registered under a config name.
	ErrNotConfigured = errors.New("gpapi service not configured")
	// ErrUnsupportedReport marks report types the GP-API connector has no endpoint for.
	ErrUnsupportedReport = errors.New("report type not supported by gp-api")
	// ErrUnsupportedTransaction marks management operations GP-API does not offer.
	ErrUnsupportedTransaction = errors.New("transaction type not supported by gp-api")
)

// ValidationError is raised before any network call when a builder rule fails.
type ValidationError = validation.ValidationError

// AuthenticationError wraps a failed access-token exchange.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("gpapi authentication failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// GatewayError surfaces non-successful HTTP responses from GP-API.
type GatewayError struct {
	StatusCode        int
	ErrorCode         string
	DetailedErrorCode string
	Message           string
	Body              string
}

func (e *GatewayError) Error() string {
	if e.ErrorCode == "" {
		return fmt.Sprintf("gpapi error: status=%d body=%s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("gpapi error: status=%d code=%s detail=%s: %s",
		e.StatusCode, e.ErrorCode, e.DetailedErrorCode, e.Message)
}

func newGatewayError(status int, body []byte) *GatewayError {
	doc := gjson.ParseBytes(body)
	return &GatewayError{
		StatusCode:        status,
		ErrorCode:         doc.Get("error_code").String(),
		DetailedErrorCode: doc.Get("detailed_error_code").String(),
		Message:           doc.Get("detailed_error_description").String(),
		Body:              string(body),
	}
}

func missingField(field, txnType string) error {
	return &ValidationError{Field: field, Rule: "cannot be nil", TransactionType: txnType}
}
