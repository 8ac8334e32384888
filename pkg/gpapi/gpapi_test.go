package gpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeGateway is an httptest-backed GP-API stand-in that records every call.
type fakeGateway struct {
	t       *testing.T
	server  *httptest.Server
	mu      sync.Mutex
	calls   []recordedCall
	tokens  int
	handler func(w http.ResponseWriter, r *http.Request, body []byte)
}

type recordedCall struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   []byte
}

func newFakeGateway(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, body []byte)) *fakeGateway {
	t.Helper()
	g := &fakeGateway{t: t, handler: handler}
	g.server = httptest.NewServer(http.HandlerFunc(g.serve))
	t.Cleanup(g.server.Close)
	return g
}

func (g *fakeGateway) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	if r.URL.Path == "/accesstoken" {
		g.mu.Lock()
		g.tokens++
		g.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":             "tok-123",
			"type":              "Bearer",
			"seconds_to_expire": 3600,
			"scope": map[string]any{
				"accounts": []map[string]string{
					{"id": "DAA_1", "name": "Settlement Reporting"},
					{"id": "TRA_1", "name": "Transaction_Processing"},
				},
			},
		})
		return
	}

	query := map[string]string{}
	for k := range r.URL.Query() {
		query[k] = r.URL.Query().Get(k)
	}
	g.mu.Lock()
	g.calls = append(g.calls, recordedCall{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  query,
		Header: r.Header.Clone(),
		Body:   body,
	})
	g.mu.Unlock()

	if g.handler == nil {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
		return
	}
	g.handler(w, r, body)
}

func (g *fakeGateway) Calls() []recordedCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]recordedCall(nil), g.calls...)
}

func (g *fakeGateway) TokenRequests() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tokens
}

// configure registers the fake under a per-test config name.
func (g *fakeGateway) configure(t *testing.T) (string, *GpAPIConnector) {
	t.Helper()
	name := t.Name()
	err := ConfigureService(&GpAPIConfig{
		Configuration: Configuration{ServiceURL: g.server.URL},
		AppID:         "app-id",
		AppKey:        "app-key",
	}, name)
	require.NoError(t, err)
	t.Cleanup(func() { RemoveConfiguration(name) })

	conn, err := services.Connector(name)
	require.NoError(t, err)
	return name, conn
}

func respondJSON(payload string) func(w http.ResponseWriter, r *http.Request, body []byte) {
	return func(w http.ResponseWriter, r *http.Request, body []byte) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}
}

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
