package gpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

const (
	defaultTimeout = 65 * time.Second

	sandboxURL    = "https://apis.sandbox.globalpay.com/ucp"
	productionURL = "https://apis.globalpay.com/ucp"
)

// RequestLogger observes raw gateway traffic.
type RequestLogger interface {
	RequestSent(method, url string, body []byte)
	ResponseReceived(statusCode int, body []byte)
}

// Configuration is the gateway-agnostic part of a service configuration.
type Configuration struct {
	// Timeout bounds each gateway call; 65s when zero.
	Timeout       time.Duration
	Environment   entities.Environment
	ServiceURL    string
	RequestLogger RequestLogger
}

// Validate fills defaults. It is idempotent.
func (c *Configuration) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrConfig)
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	switch c.Environment {
	case "":
		c.Environment = entities.EnvironmentTest
	case entities.EnvironmentTest, entities.EnvironmentProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrConfig, c.Environment)
	}
	return nil
}

// AccessTokenInfo pins a pre-issued token and the account names used with it.
type AccessTokenInfo struct {
	Token                            string
	DataAccountName                  string
	TransactionProcessingAccountName string
}

// GpAPIConfig configures a GP-API connector.
type GpAPIConfig struct {
	Configuration

	AppID            string
	AppKey           string
	SecondsToExpire  int
	IntervalToExpire entities.IntervalToExpire
	Channel          entities.Channel
	Country          string
	AccessTokenInfo  *AccessTokenInfo

	Logger     *zap.Logger
	HTTPClient *http.Client
}

// Validate checks credentials and fills defaults. It is idempotent.
func (c *GpAPIConfig) Validate() error {
	if c.AccessTokenInfo == nil || c.AccessTokenInfo.Token == "" {
		if strings.TrimSpace(c.AppID) == "" || strings.TrimSpace(c.AppKey) == "" {
			return fmt.Errorf("%w: AppID and AppKey are required when no access token is supplied", ErrConfig)
		}
	}
	if c.SecondsToExpire < 0 {
		return fmt.Errorf("%w: SecondsToExpire must not be negative", ErrConfig)
	}

	if err := c.Configuration.Validate(); err != nil {
		return err
	}

	if c.ServiceURL == "" {
		c.ServiceURL = sandboxURL
		if c.Environment == entities.EnvironmentProduction {
			c.ServiceURL = productionURL
		}
	}
	c.ServiceURL = strings.TrimSuffix(c.ServiceURL, "/")

	if c.Channel == "" {
		c.Channel = entities.ChannelCardNotPresent
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}

	return nil
}

type zapRequestLogger struct {
	logger *zap.Logger
}

// NewZapRequestLogger logs gateway traffic at debug level.
func NewZapRequestLogger(logger *zap.Logger) RequestLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapRequestLogger{logger: logger.Named("gpapi.http")}
}

func (l *zapRequestLogger) RequestSent(method, url string, body []byte) {
	l.logger.Debug("request sent",
		zap.String("method", method),
		zap.String("url", url),
		zap.ByteString("body", body),
	)
}

func (l *zapRequestLogger) ResponseReceived(statusCode int, body []byte) {
	l.logger.Debug("response received",
		zap.Int("status", statusCode),
		zap.ByteString("body", body),
	)
}
