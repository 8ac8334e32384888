// Package validation holds the declarative rule table builders run before
// any request reaches the gateway.
package validation

import (
	"fmt"
	"reflect"
)

// Target exposes builder fields to the rule table by name.
type Target interface {
	FieldValue(name string) any
}

// ValidationError names the first rule a builder failed.
type ValidationError struct {
	Field           string
	Rule            string
	TransactionType string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s for %s transaction type", e.Field, e.Rule, e.TransactionType)
}

// Predicate tests a field value that is already known to be present.
type Predicate struct {
	Name string
	Test func(any) bool
}

// Implements passes values satisfying interface I.
func Implements[I any]() Predicate {
	var zero *I
	name := reflect.TypeOf(zero).Elem().String()
	return Predicate{
		Name: "must conform to " + name,
		Test: func(v any) bool {
			_, ok := v.(I)
			return ok
		},
	}
}

// InstanceOf passes values whose dynamic type is exactly T.
func InstanceOf[T any]() Predicate {
	var zero *T
	name := reflect.TypeOf(zero).Elem().String()
	return Predicate{
		Name: "must be an instance of " + name,
		Test: func(v any) bool {
			_, ok := v.(T)
			return ok
		},
	}
}

type check struct {
	field string
	rule  string
	pass  func(any) bool
}

// Group is the set of checks declared after a single Of call.
type Group[T comparable] struct {
	types  map[T]struct{}
	when   *check
	checks []check
}

// Validations is an ordered rule table keyed by transaction type.
type Validations[T comparable] struct {
	groups []*Group[T]
}

// New returns an empty rule table.
func New[T comparable]() *Validations[T] {
	return &Validations[T]{}
}

// Of opens a group of checks applying to the given transaction types.
func (v *Validations[T]) Of(types ...T) *Group[T] {
	g := &Group[T]{types: make(map[T]struct{}, len(types))}
	for _, t := range types {
		g.types[t] = struct{}{}
	}
	v.groups = append(v.groups, g)
	return g
}

// Validate runs every group applying to txnType and returns the first failure.
func (v *Validations[T]) Validate(txnType T, target Target) error {
	for _, g := range v.groups {
		if _, ok := g.types[txnType]; !ok {
			continue
		}
		if g.when != nil && !g.when.pass(target.FieldValue(g.when.field)) {
			continue
		}
		for _, c := range g.checks {
			if !c.pass(target.FieldValue(c.field)) {
				return &ValidationError{
					Field:           c.field,
					Rule:            c.rule,
					TransactionType: fmt.Sprint(txnType),
				}
			}
		}
	}
	return nil
}

// FieldCheck is a pending check awaiting its condition.
type FieldCheck[T comparable] struct {
	group *Group[T]
	field string
	when  bool
}

// Check starts a check on field.
func (g *Group[T]) Check(field string) *FieldCheck[T] {
	return &FieldCheck[T]{group: g, field: field}
}

// When gates the group's checks on a condition over field.
func (g *Group[T]) When(field string) *FieldCheck[T] {
	return &FieldCheck[T]{group: g, field: field, when: true}
}

func (f *FieldCheck[T]) add(rule string, pass func(any) bool) *Group[T] {
	c := check{field: f.field, rule: rule, pass: pass}
	if f.when {
		f.group.when = &c
	} else {
		f.group.checks = append(f.group.checks, c)
	}
	return f.group
}

// IsNotNil requires the field to be present.
func (f *FieldCheck[T]) IsNotNil() *Group[T] {
	return f.add("cannot be nil", func(v any) bool { return !IsNil(v) })
}

// IsNil requires the field to be absent.
func (f *FieldCheck[T]) IsNil() *Group[T] {
	return f.add("must be nil", IsNil)
}

// ConformsTo requires a present field satisfying p; absent fields pass.
func (f *FieldCheck[T]) ConformsTo(p Predicate) *Group[T] {
	return f.add(p.Name, func(v any) bool { return IsNil(v) || p.Test(v) })
}

// IsInstanceOf requires a present field of the predicate's type; absent fields pass.
func (f *FieldCheck[T]) IsInstanceOf(p Predicate) *Group[T] {
	return f.add(p.Name, func(v any) bool { return IsNil(v) || p.Test(v) })
}

// IsNil reports whether v counts as absent: nil, a nil pointer, map, slice or
// interface, or an empty string.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
