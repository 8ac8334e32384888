package gpapi

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const apiVersion = "2021-03-22"

// GpAPIConnector authenticates against GP-API and executes requests built by
// the builders in this package.
type GpAPIConnector struct {
	config        *GpAPIConfig
	httpClient    *http.Client
	baseURL       string
	logger        *zap.Logger
	requestLogger RequestLogger
	now           func() time.Time

	authMu sync.Mutex
	token  *accessToken
}

type accessToken struct {
	value                            string
	expiresAt                        time.Time
	dataAccountName                  string
	transactionProcessingAccountName string
}

func (t *accessToken) valid(now time.Time) bool {
	if t == nil || t.value == "" {
		return false
	}
	return t.expiresAt.IsZero() || now.Before(t.expiresAt)
}

// gatewayRequest is one HTTP exchange with GP-API.
type gatewayRequest struct {
	Method         string
	Endpoint       string
	Query          map[string]string
	Body           any
	IdempotencyKey string
}

// NewConnector builds a connector from a validated config.
func NewConnector(cfg *GpAPIConfig) *GpAPIConnector {
	c := &GpAPIConnector{
		config:        cfg,
		httpClient:    cfg.HTTPClient,
		baseURL:       cfg.ServiceURL,
		logger:        cfg.Logger.Named("gpapi"),
		requestLogger: cfg.RequestLogger,
		now:           time.Now,
	}

	if info := cfg.AccessTokenInfo; info != nil && info.Token != "" {
		c.token = &accessToken{value: info.Token}
		c.applyAccountNames(c.token)
	}

	return c
}

// AccessToken returns the current token, fetching one if needed.
func (c *GpAPIConnector) AccessToken(ctx context.Context) (string, error) {
	tok, err := c.verifyAuthentication(ctx)
	if err != nil {
		return "", err
	}
	return tok.value, nil
}

// verifyAuthentication ensures a usable access token exists.
func (c *GpAPIConnector) verifyAuthentication(ctx context.Context) (*accessToken, error) {
	c.authMu.Lock()
	tok := c.token
	c.authMu.Unlock()

	if tok.valid(c.now()) {
		return tok, nil
	}

	tok, err := c.authorize(ctx)
	if err != nil {
		c.logger.Warn("access token request failed", zap.Error(err))
		return nil, &AuthenticationError{Err: err}
	}

	c.authMu.Lock()
	c.token = tok
	c.authMu.Unlock()

	c.logger.Debug("access token refreshed", zap.Time("expires_at", tok.expiresAt))
	return tok, nil
}

type accessTokenRequest struct {
	AppID            string `json:"app_id"`
	Nonce            string `json:"nonce"`
	Secret           string `json:"secret"`
	GrantType        string `json:"grant_type"`
	SecondsToExpire  int    `json:"seconds_to_expire,omitempty"`
	IntervalToExpire string `json:"interval_to_expire,omitempty"`
}

type accessTokenResponse struct {
	Token           string `json:"token"`
	Type            string `json:"type"`
	AppID           string `json:"app_id"`
	AppName         string `json:"app_name"`
	SecondsToExpire int    `json:"seconds_to_expire"`
	Scope           struct {
		MerchantID   string `json:"merchant_id"`
		MerchantName string `json:"merchant_name"`
		Accounts     []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"accounts"`
	} `json:"scope"`
}

func (c *GpAPIConnector) authorize(ctx context.Context) (*accessToken, error) {
	if c.config.AppID == "" || c.config.AppKey == "" {
		return nil, errors.New("access token expired and no app credentials are configured")
	}

	nonce := uuid.NewString()
	sum := sha512.Sum512([]byte(nonce + c.config.AppKey))
	payload := accessTokenRequest{
		AppID:            c.config.AppID,
		Nonce:            nonce,
		Secret:           hex.EncodeToString(sum[:]),
		GrantType:        "client_credentials",
		SecondsToExpire:  c.config.SecondsToExpire,
		IntervalToExpire: string(c.config.IntervalToExpire),
	}

	body, err := c.send(ctx, "", gatewayRequest{Method: http.MethodPost, Endpoint: "/accesstoken", Body: payload})
	if err != nil {
		return nil, err
	}

	var resp accessTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode access token response: %w", err)
	}
	if resp.Token == "" {
		return nil, errors.New("access token response missing token")
	}

	lifetime := time.Duration(resp.SecondsToExpire) * time.Second
	if lifetime <= 0 {
		lifetime = 5 * time.Minute
	}
	buffer := time.Minute
	if lifetime <= buffer {
		buffer = lifetime / 2
	}

	tok := &accessToken{
		value:     resp.Token,
		expiresAt: c.now().Add(lifetime - buffer),
	}
	for _, acct := range resp.Scope.Accounts {
		switch {
		case strings.HasPrefix(acct.ID, "DAA_"):
			tok.dataAccountName = acct.Name
		case strings.HasPrefix(acct.ID, "TRA_"):
			tok.transactionProcessingAccountName = acct.Name
		}
	}
	c.applyAccountNames(tok)

	return tok, nil
}

// applyAccountNames lets configured account names win over the token scope.
func (c *GpAPIConnector) applyAccountNames(tok *accessToken) {
	info := c.config.AccessTokenInfo
	if info == nil {
		return
	}
	if info.DataAccountName != "" {
		tok.dataAccountName = info.DataAccountName
	}
	if info.TransactionProcessingAccountName != "" {
		tok.transactionProcessingAccountName = info.TransactionProcessingAccountName
	}
}

// doTransaction authenticates and performs one gateway call, returning the
// raw response body or an error, never both.
func (c *GpAPIConnector) doTransaction(ctx context.Context, req gatewayRequest) (string, error) {
	tok, err := c.verifyAuthentication(ctx)
	if err != nil {
		return "", err
	}

	body, err := c.send(ctx, tok.value, req)
	if err != nil {
		var gwErr *GatewayError
		if errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusUnauthorized {
			c.invalidateToken(tok)
		}
		c.logger.Warn("gateway request failed",
			zap.String("method", req.Method),
			zap.String("endpoint", req.Endpoint),
			zap.Error(err),
		)
		return "", err
	}

	return string(body), nil
}

func (c *GpAPIConnector) invalidateToken(tok *accessToken) {
	c.authMu.Lock()
	if c.token == tok {
		c.token = nil
	}
	c.authMu.Unlock()
}

func (c *GpAPIConnector) send(ctx context.Context, token string, req gatewayRequest) ([]byte, error) {
	var payload []byte
	if req.Body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(req.Body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.TrimRight(buf.Bytes(), "\n")
	}

	target := c.baseURL + req.Endpoint
	if len(req.Query) > 0 {
		values := url.Values{}
		for k, v := range req.Query {
			values.Set(k, v)
		}
		target += "?" + values.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-GP-Version", apiVersion)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("x-gp-idempotency", req.IdempotencyKey)
	}

	if c.requestLogger != nil {
		c.requestLogger.RequestSent(req.Method, target, payload)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if c.requestLogger != nil {
		c.requestLogger.ResponseReceived(resp.StatusCode, data)
	}

	if resp.StatusCode >= 400 {
		return nil, newGatewayError(resp.StatusCode, data)
	}

	return data, nil
}
