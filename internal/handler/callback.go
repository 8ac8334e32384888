package handler

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultCallbackTimeout = 15 * time.Second

// Callback request headers.
const (
	HeaderReportAction    = "X-Report-Action"
	HeaderReportSignature = "X-Report-Signature"
)

// HTTPSCallbackSender posts report outcomes to an HTTP(S) endpoint. When a
// secret is set, the body is signed with HMAC-SHA256.
type HTTPSCallbackSender struct {
	url        string
	secret     []byte
	httpClient *http.Client
}

// NewHTTPSCallbackSender builds a callback client for an absolute http or https URL.
func NewHTTPSCallbackSender(rawURL, secret string, client *http.Client) (*HTTPSCallbackSender, error) {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return nil, fmt.Errorf("callback URL %q must be an absolute http(s) URL", rawURL)
	}

	if client == nil {
		client = &http.Client{Timeout: defaultCallbackTimeout}
	}

	return &HTTPSCallbackSender{
		url:        rawURL,
		secret:     []byte(secret),
		httpClient: client,
	}, nil
}

// Sign returns "sha256=" and the hex HMAC-SHA256 of body under secret, the
// X-Report-Signature value.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Send transmits the report response as JSON to the configured endpoint.
func (h *HTTPSCallbackSender) Send(ctx context.Context, payload ReportResponse) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode callback payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build callback request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderReportAction, payload.Action)
	if len(h.secret) > 0 {
		req.Header.Set(HeaderReportSignature, Sign(h.secret, body))
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send callback request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("callback endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return nil
}
