package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// Actions accepted by the Lambda entry point.
const (
	ActionTransaction  = "transaction"
	ActionTransactions = "transactions"
	ActionDeposits     = "deposits"
	ActionDisputes     = "disputes"
	ActionDispute      = "dispute"
)

const eventDateFormat = "2006-01-02"

// ReportingClient is the subset of GP-API reporting used by the processor.
type ReportingClient interface {
	TransactionDetail(ctx context.Context, id string) (*entities.TransactionSummary, error)
	FindTransactions(ctx context.Context, q Query) ([]*entities.TransactionSummary, error)
	FindDeposits(ctx context.Context, q Query) ([]*entities.DepositSummary, error)
	FindDisputes(ctx context.Context, q Query) ([]*entities.DisputeSummary, error)
	DisputeDetail(ctx context.Context, id string) (*entities.DisputeSummary, error)
}

// Query carries the paging and date window of a list action.
type Query struct {
	Page      int
	PageSize  int
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
}

// ReportEvent represents the payload sent to the Lambda function. Wait makes
// the transaction action poll until the transaction leaves the INITIATED or
// PENDING state.
type ReportEvent struct {
	Action    string `json:"action"`
	ID        string `json:"id,omitempty"`
	Page      int    `json:"page,omitempty"`
	PageSize  int    `json:"page_size,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Status    string `json:"status,omitempty"`
	Wait      bool   `json:"wait,omitempty"`
}

// ReportResponse is emitted after processing completes.
type ReportResponse struct {
	Action       string                         `json:"action"`
	Status       string                         `json:"status"`
	Found        bool                           `json:"found"`
	Transaction  *entities.TransactionSummary   `json:"transaction,omitempty"`
	Transactions []*entities.TransactionSummary `json:"transactions,omitempty"`
	Deposits     []*entities.DepositSummary     `json:"deposits,omitempty"`
	Disputes     []*entities.DisputeSummary     `json:"disputes,omitempty"`
	Dispute      *entities.DisputeSummary       `json:"dispute,omitempty"`
	Message      string                         `json:"message,omitempty"`
	Request      ReportEvent                    `json:"request"`
}

// CallbackSender delivers report outcomes to downstream systems.
type CallbackSender interface {
	Send(ctx context.Context, payload ReportResponse) error
}

// Processor runs reporting actions against GP-API.
type Processor struct {
	client       ReportingClient
	pollInterval time.Duration
	timeout      time.Duration
	logger       *zap.Logger
	callback     CallbackSender
}

// Option customizes the processor.
type Option func(*Processor)

// WithPollInterval adjusts the delay between transaction lookups.
func WithPollInterval(d time.Duration) Option {
	return func(p *Processor) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// WithTimeout overrides the total polling timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Processor) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger lets callers supply a custom logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithCallbackSender wires a callback destination invoked after processing concludes.
func WithCallbackSender(sender CallbackSender) Option {
	return func(p *Processor) {
		p.callback = sender
	}
}

// NewProcessor builds a Processor with sane defaults.
func NewProcessor(client ReportingClient, opts ...Option) *Processor {
	p := &Processor{
		client:       client,
		pollInterval: 5 * time.Second,
		timeout:      5 * time.Minute,
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Handle implements the AWS Lambda handler entry point.
func (p *Processor) Handle(ctx context.Context, event ReportEvent) (ReportResponse, error) {
	query, err := validateEvent(event)
	if err != nil {
		return ReportResponse{}, err
	}

	log := p.logger.With(zap.String("action", event.Action), zap.String("id", event.ID))
	log.Info("processing report event")

	resp := ReportResponse{Action: event.Action, Status: "ok", Found: true, Request: event}

	switch event.Action {
	case ActionTransaction:
		if event.Wait {
			return p.awaitTransaction(ctx, event, log)
		}
		resp.Transaction, err = p.client.TransactionDetail(ctx, event.ID)
	case ActionTransactions:
		resp.Transactions, err = p.client.FindTransactions(ctx, query)
		resp.Found = len(resp.Transactions) > 0
	case ActionDeposits:
		resp.Deposits, err = p.client.FindDeposits(ctx, query)
		resp.Found = len(resp.Deposits) > 0
	case ActionDisputes:
		resp.Disputes, err = p.client.FindDisputes(ctx, query)
		resp.Found = len(resp.Disputes) > 0
	case ActionDispute:
		resp.Dispute, err = p.client.DisputeDetail(ctx, event.ID)
	}
	if err != nil {
		return ReportResponse{}, fmt.Errorf("%s failed: %w", event.Action, err)
	}

	p.emitCallback(ctx, resp)
	return resp, nil
}

func (p *Processor) awaitTransaction(ctx context.Context, event ReportEvent, log *zap.Logger) (ReportResponse, error) {
	txn, err := p.pollTransaction(ctx, event.ID, log)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			resp := ReportResponse{
				Action:      event.Action,
				Status:      "pending",
				Found:       txn != nil,
				Transaction: txn,
				Message:     fmt.Sprintf("transaction not settled within %s", p.timeout),
				Request:     event,
			}
			p.emitCallback(ctx, resp)
			return resp, nil
		}
		return ReportResponse{}, err
	}

	resp := ReportResponse{
		Action:      event.Action,
		Status:      string(txn.TransactionStatus),
		Found:       true,
		Transaction: txn,
		Request:     event,
	}
	p.emitCallback(ctx, resp)
	return resp, nil
}

// pollTransaction returns the last summary seen alongside a context error
// when the transaction never leaves a pending state.
func (p *Processor) pollTransaction(ctx context.Context, id string, log *zap.Logger) (*entities.TransactionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	var last *entities.TransactionSummary
	for {
		txn, err := p.client.TransactionDetail(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return last, ctx.Err()
			}
			return nil, fmt.Errorf("transaction lookup failed: %w", err)
		}
		last = txn

		if !pending(txn.TransactionStatus) {
			log.Info("transaction settled", zap.String("status", string(txn.TransactionStatus)))
			return txn, nil
		}

		log.Debug("transaction pending", zap.String("status", string(txn.TransactionStatus)),
			zap.Duration("wait", p.pollInterval))

		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
		}
	}
}

func pending(status entities.TransactionStatus) bool {
	return status == entities.TransactionStatusInitiated || status == entities.TransactionStatusPending
}

func validateEvent(event ReportEvent) (Query, error) {
	q := Query{Page: event.Page, PageSize: event.PageSize, Status: event.Status}

	switch event.Action {
	case ActionTransaction, ActionDispute:
		if strings.TrimSpace(event.ID) == "" {
			return Query{}, errors.New("id is required")
		}
	case ActionTransactions, ActionDeposits, ActionDisputes:
	default:
		return Query{}, fmt.Errorf("unknown action %q", event.Action)
	}

	if event.Page < 0 || event.PageSize < 0 {
		return Query{}, errors.New("page and page_size must not be negative")
	}

	var err error
	if q.StartDate, err = parseEventDate("start_date", event.StartDate); err != nil {
		return Query{}, err
	}
	if q.EndDate, err = parseEventDate("end_date", event.EndDate); err != nil {
		return Query{}, err
	}
	return q, nil
}

func parseEventDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(eventDateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("%s must be YYYY-MM-DD: %w", field, err)
	}
	return &t, nil
}

func (p *Processor) emitCallback(ctx context.Context, resp ReportResponse) {
	if p.callback == nil {
		return
	}
	if err := p.callback.Send(ctx, resp); err != nil {
		p.logger.Warn("callback delivery failed", zap.Error(err))
	}
}
