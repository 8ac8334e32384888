package gpapi

import (
	"context"

	"github.com/globalpayments/gpapi-go/pkg/gpapi/entities"
	"github.com/globalpayments/gpapi-go/pkg/gpapi/validation"
)

// RecurringBuilder creates, edits, deletes, fetches or searches stored
// recurring entities. T is the decoded response type.
type RecurringBuilder[T any] struct {
	transactionBuilder

	key            string
	entity         entities.Recurring
	searchCriteria map[string]string
}

// NewRecurringBuilder starts a recurring operation of type t on entity.
func NewRecurringBuilder[T any](t entities.TransactionType, entity entities.Recurring) *RecurringBuilder[T] {
	b := &RecurringBuilder[T]{transactionBuilder: newTransactionBuilder(t, nil)}
	if !validation.IsNil(entity) {
		b.entity = entity
		b.key = entity.Key()
	}
	b.setupValidations()
	return b
}

// CreateRecurring stores a new entity.
func CreateRecurring[T entities.Recurring](entity T) *RecurringBuilder[T] {
	return NewRecurringBuilder[T](entities.Create, entity)
}

// EditRecurring updates a stored entity.
func EditRecurring[T entities.Recurring](entity T) *RecurringBuilder[T] {
	return NewRecurringBuilder[T](entities.Edit, entity)
}

// DeleteRecurring removes a stored entity.
func DeleteRecurring[T entities.Recurring](entity T) *RecurringBuilder[T] {
	return NewRecurringBuilder[T](entities.Delete, entity)
}

// FetchRecurring loads a stored entity by key.
func FetchRecurring[T entities.Recurring](entity T) *RecurringBuilder[T] {
	return NewRecurringBuilder[T](entities.Fetch, entity)
}

// SearchRecurring lists entities of prototype's kind matching the search criteria.
func SearchRecurring[T entities.Recurring](prototype T) *RecurringBuilder[[]T] {
	return NewRecurringBuilder[[]T](entities.Search, prototype)
}

// WithKey overrides the key taken from the entity.
func (b *RecurringBuilder[T]) WithKey(key string) *RecurringBuilder[T] {
	b.key = key
	return b
}

// AddSearchCriteria sets one search filter; a repeated key replaces the earlier value.
func (b *RecurringBuilder[T]) AddSearchCriteria(key, value string) *RecurringBuilder[T] {
	if b.searchCriteria == nil {
		b.searchCriteria = make(map[string]string)
	}
	b.searchCriteria[key] = value
	return b
}

// FieldValue exposes builder fields to the validation table.
func (b *RecurringBuilder[T]) FieldValue(name string) any {
	switch name {
	case "key":
		return b.key
	case "searchCriteria":
		return b.searchCriteria
	case "entity":
		return b.entity
	}
	return nil
}

func (b *RecurringBuilder[T]) setupValidations() {
	b.validations.
		Of(entities.Edit, entities.Delete, entities.Fetch).
		Check("key").IsNotNil()

	b.validations.
		Of(entities.Search).
		Check("searchCriteria").IsNotNil()

	b.validations.
		Of(entities.Create, entities.Edit, entities.Delete, entities.Fetch, entities.Search).
		Check("entity").IsNotNil()
}

// Execute validates the builder and runs it against the default configuration.
func (b *RecurringBuilder[T]) Execute(ctx context.Context) (T, error) {
	return b.ExecuteWithConfig(ctx, DefaultConfigName)
}

// ExecuteWithConfig validates the builder and runs it against a named configuration.
func (b *RecurringBuilder[T]) ExecuteWithConfig(ctx context.Context, configName string) (T, error) {
	var zero T
	if err := b.validate(b); err != nil {
		return zero, err
	}

	conn, err := services.Connector(configName)
	if err != nil {
		return zero, err
	}

	return processRecurring(ctx, conn, b)
}
