package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/globalpayments/gpapi-go/pkg/gpapi"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

type request struct {
	method string
	path   string
	query  string
	body   []byte
}

// runCLI executes the root command against a stub gateway with a preset
// access token, so no token exchange takes place.
func runCLI(t *testing.T, handler http.HandlerFunc, args ...string) (string, []request, error) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []request
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, request{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: body})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	defer server.Close()

	t.Setenv("GP_API_SERVICE_URL", server.URL)
	t.Setenv("GP_API_ACCESS_TOKEN", "cli-token")
	t.Setenv("GP_API_DATA_ACCOUNT_NAME", "Settlement Reporting")
	t.Setenv("LOG_LEVEL", "error")

	name := t.Name()
	t.Cleanup(func() { gpapi.RemoveConfiguration(name) })

	out := &bytes.Buffer{}
	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "--config-name", name}, args...))

	err := cmd.ExecuteContext(context.Background())

	mu.Lock()
	defer mu.Unlock()
	return out.String(), requests, err
}

func TestTransactionsGet(t *testing.T) {
	out, reqs, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"TRN_1","status":"CAPTURED","amount":"1999","currency":"USD"}`))
	}, "transactions", "get", "TRN_1")
	require.NoError(t, err)

	require.Len(t, reqs, 1)
	require.Equal(t, "/transactions/TRN_1", reqs[0].path)

	var txn entities.TransactionSummary
	require.NoError(t, json.Unmarshal([]byte(out), &txn))
	require.Equal(t, "TRN_1", txn.TransactionID)
	require.Equal(t, entities.TransactionStatusCaptured, txn.TransactionStatus)
	require.Equal(t, "19.99", txn.Amount.StringFixed(2))
}

func TestDepositsListFlags(t *testing.T) {
	out, reqs, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"deposits":[{"id":"DEP_1"},{"id":"DEP_2"}]}`))
	}, "deposits", "list", "--page", "3", "--page-size", "5", "--from", "2024-01-01", "--status", "FUNDED")
	require.NoError(t, err)

	require.Len(t, reqs, 1)
	require.Equal(t, "/settlement/deposits", reqs[0].path)
	require.Equal(t,
		"account_name=Settlement+Reporting&from_time_created=2024-01-01&page=3&page_size=5&status=FUNDED",
		reqs[0].query)

	var deposits []entities.DepositSummary
	require.NoError(t, json.Unmarshal([]byte(out), &deposits))
	require.Len(t, deposits, 2)
}

func TestRefundRequiresCurrencyWithAmount(t *testing.T) {
	_, reqs, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {}, "transactions", "refund", "TRN_1", "--amount", "5")

	var verr *gpapi.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "currency", verr.Field)
	require.Empty(t, reqs)
}

func TestCaptureSendsMinorUnits(t *testing.T) {
	t.Setenv("GP_API_COUNTRY", "US")
	_, reqs, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"TRN_1","status":"CAPTURED"}`))
	}, "transactions", "capture", "TRN_1", "--amount", "10.50")
	require.NoError(t, err)

	require.Len(t, reqs, 1)
	require.Equal(t, http.MethodPost, reqs[0].method)
	require.Equal(t, "/transactions/TRN_1/capture", reqs[0].path)
	require.JSONEq(t, `{"amount":"1050","channel":"CNP","country":"US"}`, string(reqs[0].body))
}

func TestDisputesChallenge(t *testing.T) {
	evidence := filepath.Join(t.TempDir(), "receipt.txt")
	require.NoError(t, os.WriteFile(evidence, []byte("hello"), 0o600))

	_, reqs, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"DIS_1","status":"UNDER_REVIEW"}`))
	}, "disputes", "challenge", "DIS_1", "--document", "sales_receipt="+evidence)
	require.NoError(t, err)

	require.Len(t, reqs, 1)
	require.Equal(t, "/disputes/DIS_1/challenge", reqs[0].path)
	require.JSONEq(t, `{"documents":[{"type":"SALES_RECEIPT","b64_content":"aGVsbG8="}]}`, string(reqs[0].body))
}

func TestReadDocumentsRejectsBadSpecs(t *testing.T) {
	_, err := readDocuments([]string{"receipt.pdf"})
	require.ErrorContains(t, err, "want TYPE=path")

	_, err = readDocuments([]string{"SELFIE=receipt.pdf"})
	require.ErrorContains(t, err, "unknown document type")
}

func TestToken(t *testing.T) {
	out, reqs, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {}, "token")
	require.NoError(t, err)
	require.Equal(t, "cli-token\n", out)
	require.Empty(t, reqs)
}
