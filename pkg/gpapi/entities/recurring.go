package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Recurring is a stored entity managed through a RecurringBuilder.
type Recurring interface {
	// Key is the gateway identifier; empty until the entity is created.
	Key() string
	// ResourcePath is the collection endpoint, e.g. "/payment-methods".
	ResourcePath() string
	// ListKey names the array holding search results.
	ListKey() string
}

// Customer is a stored payer profile.
type Customer struct {
	ID        string `json:"id,omitempty"`
	Reference string `json:"reference,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status,omitempty"`
}

func (c *Customer) Key() string          { return c.ID }
func (c *Customer) ResourcePath() string { return "/customers" }
func (c *Customer) ListKey() string      { return "customers" }

// RecurringPaymentMethod is a stored, tokenized payment method owned by a customer.
type RecurringPaymentMethod struct {
	ID          string `json:"id,omitempty"`
	CustomerKey string `json:"customer_id,omitempty"`
	Name        string `json:"name,omitempty"`
	UsageMode   string `json:"usage_mode,omitempty"`
	Status      string `json:"status,omitempty"`
	Card        *Card  `json:"card,omitempty"`
}

// Card is the card block of a stored payment method.
type Card struct {
	Number       string `json:"number,omitempty"`
	MaskedNumber string `json:"masked_number_last4,omitempty"`
	Brand        string `json:"brand,omitempty"`
	ExpiryMonth  string `json:"expiry_month,omitempty"`
	ExpiryYear   string `json:"expiry_year,omitempty"`
}

func (p *RecurringPaymentMethod) Key() string          { return p.ID }
func (p *RecurringPaymentMethod) ResourcePath() string { return "/payment-methods" }
func (p *RecurringPaymentMethod) ListKey() string      { return "payment_methods" }

func (p *RecurringPaymentMethod) PaymentMethodType() PaymentMethodType { return PaymentMethodRecurring }

func (p *RecurringPaymentMethod) GetToken() string { return p.ID }

// Schedule charges a stored payment method on a fixed cadence.
type Schedule struct {
	ID               string          `json:"id,omitempty"`
	CustomerKey      string          `json:"customer_id,omitempty"`
	PaymentKey       string          `json:"payment_method_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency,omitempty"`
	StartDate        *time.Time      `json:"start_date,omitempty"`
	EndDate          *time.Time      `json:"end_date,omitempty"`
	Frequency        string          `json:"frequency,omitempty"`
	PaymentSchedule  PaymentSchedule `json:"payment_schedule,omitempty"`
	NumberOfPayments int             `json:"number_of_payments,omitempty"`
	Status           string          `json:"status,omitempty"`
}

func (s *Schedule) Key() string          { return s.ID }
func (s *Schedule) ResourcePath() string { return "/schedules" }
func (s *Schedule) ListKey() string      { return "schedules" }

const scheduleDateFormat = "2006-01-02"

type scheduleFields Schedule

// scheduleWire is the gateway shape of a Schedule: the amount in minor units
// and dates without a time of day.
type scheduleWire struct {
	scheduleFields
	Amount    string `json:"amount"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func (s Schedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(scheduleWire{
		scheduleFields: scheduleFields(s),
		Amount:         s.Amount.Shift(2).StringFixed(0),
		StartDate:      formatScheduleDate(s.StartDate),
		EndDate:        formatScheduleDate(s.EndDate),
	})
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	var w scheduleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	start, err := parseScheduleDate(w.StartDate)
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	end, err := parseScheduleDate(w.EndDate)
	if err != nil {
		return fmt.Errorf("end_date: %w", err)
	}

	*s = Schedule(w.scheduleFields)
	s.Amount = decimal.Zero
	if minor, err := decimal.NewFromString(w.Amount); err == nil {
		s.Amount = minor.Shift(-2)
	}
	s.StartDate = start
	s.EndDate = end
	return nil
}

func formatScheduleDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(scheduleDateFormat)
}

// parseScheduleDate also accepts full timestamps, which some gateway
// responses carry.
func parseScheduleDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(scheduleDateFormat, v)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, v); err != nil {
			return nil, err
		}
	}
	return &t, nil
}
