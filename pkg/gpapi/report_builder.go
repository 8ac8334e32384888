package gpapi

import (
	"context"
	"time"

	"github.com/tidwall/gjson"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// ReportBuilder is a read-only gateway query yielding T.
type ReportBuilder[T any] interface {
	ReportType() entities.ReportType
	Execute(ctx context.Context) (T, error)
	ExecuteWithConfig(ctx context.Context, configName string) (T, error)
}

// reportQuery is the untyped state the connector turns into a request.
type reportQuery struct {
	reportType       entities.ReportType
	page             int
	pageSize         int
	startDate        *time.Time
	endDate          *time.Time
	transactionID    string
	transactionOrder entities.SortDirection
	transactionSort  entities.TransactionSortProperty
	depositOrder     entities.SortDirection
	depositSort      entities.DepositSortProperty
	disputeOrder     entities.SortDirection
	disputeSort      entities.DisputeSortProperty
	depositStatus    entities.DepositStatus
	disputeDocuments []entities.DocumentInfo
	criteria         SearchCriteria
}

// TransactionReportBuilder queries transactions, deposits and disputes, and
// accepts or challenges disputes. Each constructor binds the mapper that
// turns the gateway response into T.
type TransactionReportBuilder[T any] struct {
	reportQuery
	mapper func(gjson.Result) T
}

var _ ReportBuilder[*entities.TransactionSummary] = (*TransactionReportBuilder[*entities.TransactionSummary])(nil)

func newReport[T any](t entities.ReportType, mapper func(gjson.Result) T) *TransactionReportBuilder[T] {
	return &TransactionReportBuilder[T]{
		reportQuery: reportQuery{reportType: t},
		mapper:      mapper,
	}
}

// ReportType reports which query the builder runs.
func (b *TransactionReportBuilder[T]) ReportType() entities.ReportType { return b.reportType }

// WithTransactionID filters on, or selects, a single transaction.
func (b *TransactionReportBuilder[T]) WithTransactionID(id string) *TransactionReportBuilder[T] {
	b.transactionID = id
	return b
}

// WithPaging sets the 1-based page and its size.
func (b *TransactionReportBuilder[T]) WithPaging(page, pageSize int) *TransactionReportBuilder[T] {
	b.page = page
	b.pageSize = pageSize
	return b
}

// WithStartDate sets the inclusive lower date bound; searches that need one default to today.
func (b *TransactionReportBuilder[T]) WithStartDate(t time.Time) *TransactionReportBuilder[T] {
	b.startDate = &t
	return b
}

// WithEndDate sets the inclusive upper date bound.
func (b *TransactionReportBuilder[T]) WithEndDate(t time.Time) *TransactionReportBuilder[T] {
	b.endDate = &t
	return b
}

// WithDepositStatus filters deposits by status.
func (b *TransactionReportBuilder[T]) WithDepositStatus(status entities.DepositStatus) *TransactionReportBuilder[T] {
	b.depositStatus = status
	return b
}

// WithDisputeDocuments sets the evidence submitted by a dispute challenge.
func (b *TransactionReportBuilder[T]) WithDisputeDocuments(docs []entities.DocumentInfo) *TransactionReportBuilder[T] {
	b.disputeDocuments = docs
	return b
}

// OrderByTransaction sorts transaction searches.
func (b *TransactionReportBuilder[T]) OrderByTransaction(prop entities.TransactionSortProperty, dir entities.SortDirection) *TransactionReportBuilder[T] {
	b.transactionSort = prop
	b.transactionOrder = dir
	return b
}

// OrderByDeposit sorts deposit searches.
func (b *TransactionReportBuilder[T]) OrderByDeposit(prop entities.DepositSortProperty, dir entities.SortDirection) *TransactionReportBuilder[T] {
	b.depositSort = prop
	b.depositOrder = dir
	return b
}

// OrderByDispute sorts dispute searches.
func (b *TransactionReportBuilder[T]) OrderByDispute(prop entities.DisputeSortProperty, dir entities.SortDirection) *TransactionReportBuilder[T] {
	b.disputeSort = prop
	b.disputeOrder = dir
	return b
}

// Where edits the search criteria in place.
func (b *TransactionReportBuilder[T]) Where(fn func(c *SearchCriteria)) *TransactionReportBuilder[T] {
	fn(&b.criteria)
	return b
}

// Execute runs the report against the default configuration.
func (b *TransactionReportBuilder[T]) Execute(ctx context.Context) (T, error) {
	return b.ExecuteWithConfig(ctx, DefaultConfigName)
}

// ExecuteWithConfig runs the report against a named configuration.
func (b *TransactionReportBuilder[T]) ExecuteWithConfig(ctx context.Context, configName string) (T, error) {
	var zero T

	conn, err := services.Connector(configName)
	if err != nil {
		return zero, err
	}

	req, err := buildReportRequest(&b.reportQuery, conn.now())
	if err != nil {
		return zero, err
	}

	raw, err := conn.processReport(ctx, req)
	if err != nil {
		return zero, err
	}

	return b.mapper(gjson.Parse(raw)), nil
}
