package gpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
)

func processRecurring[T any](ctx context.Context, c *GpAPIConnector, b *RecurringBuilder[T]) (T, error) {
	var out T

	req, err := buildRecurringRequest(b.transactionType, b.entity, b.key, b.searchCriteria)
	if err != nil {
		return out, err
	}

	raw, err := c.doTransaction(ctx, req)
	if err != nil {
		return out, err
	}
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}

	data := raw
	if b.transactionType == entities.Search {
		list := gjson.Get(raw, b.entity.ListKey())
		if !list.Exists() {
			return out, nil
		}
		data = list.Raw
	}

	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", b.transactionType, err)
	}
	return out, nil
}

func buildRecurringRequest(t entities.TransactionType, entity entities.Recurring, key string, criteria map[string]string) (gatewayRequest, error) {
	resource := entity.ResourcePath()
	item := resource + "/" + url.PathEscape(key)

	switch t {
	case entities.Create:
		return gatewayRequest{Method: http.MethodPost, Endpoint: resource, Body: entity}, nil
	case entities.Edit:
		return gatewayRequest{Method: http.MethodPatch, Endpoint: item, Body: entity}, nil
	case entities.Delete:
		return gatewayRequest{Method: http.MethodDelete, Endpoint: item}, nil
	case entities.Fetch:
		return gatewayRequest{Method: http.MethodGet, Endpoint: item}, nil
	case entities.Search:
		query := make(map[string]string, len(criteria))
		for k, v := range criteria {
			if v != "" {
				query[k] = v
			}
		}
		return gatewayRequest{Method: http.MethodGet, Endpoint: resource, Query: query}, nil
	}

	return gatewayRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedTransaction, t)
}
