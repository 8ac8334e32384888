package handler

import (
	"context"

	"github.com/globalpayments/gpapi-go/pkg/gpapi"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

// Gateway implements ReportingClient with the gpapi report builders.
type Gateway struct {
	configName string
}

// NewGateway runs reports against the named gpapi configuration.
func NewGateway(configName string) *Gateway {
	return &Gateway{configName: configName}
}

// TransactionDetail fetches one transaction by id.
func (g *Gateway) TransactionDetail(ctx context.Context, id string) (*entities.TransactionSummary, error) {
	return gpapi.TransactionDetail(id).ExecuteWithConfig(ctx, g.configName)
}

// FindTransactions searches transactions with q.Status as the status filter.
func (g *Gateway) FindTransactions(ctx context.Context, q Query) ([]*entities.TransactionSummary, error) {
	b := gpapi.FindTransactions().Where(func(c *gpapi.SearchCriteria) {
		c.TransactionStatus = entities.TransactionStatus(q.Status)
	})
	return applyQuery(b, q).ExecuteWithConfig(ctx, g.configName)
}

// FindDeposits searches settlement deposits with q.Status as the deposit status.
func (g *Gateway) FindDeposits(ctx context.Context, q Query) ([]*entities.DepositSummary, error) {
	b := gpapi.FindDeposits().WithDepositStatus(entities.DepositStatus(q.Status))
	return applyQuery(b, q).ExecuteWithConfig(ctx, g.configName)
}

// FindDisputes searches disputes by status and stage date range.
func (g *Gateway) FindDisputes(ctx context.Context, q Query) ([]*entities.DisputeSummary, error) {
	b := gpapi.FindDisputes().Where(func(c *gpapi.SearchCriteria) {
		c.DisputeStatus = entities.DisputeStatus(q.Status)
		c.StartStageDate = q.StartDate
		c.EndStageDate = q.EndDate
	})
	return applyQuery(b, q).ExecuteWithConfig(ctx, g.configName)
}

// DisputeDetail fetches one dispute by id.
func (g *Gateway) DisputeDetail(ctx context.Context, id string) (*entities.DisputeSummary, error) {
	return gpapi.DisputeDetail(id).ExecuteWithConfig(ctx, g.configName)
}

func applyQuery[T any](b *gpapi.TransactionReportBuilder[T], q Query) *gpapi.TransactionReportBuilder[T] {
	b.WithPaging(q.Page, q.PageSize)
	if q.StartDate != nil {
		b.WithStartDate(*q.StartDate)
	}
	if q.EndDate != nil {
		b.WithEndDate(*q.EndDate)
	}
	return b
}
