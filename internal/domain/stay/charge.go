package stay

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNonPositiveAmount = errors.New("charge amount must be greater than zero")
	ErrEmptyServiceType  = errors.New("service type cannot be empty")
)

// IncidentalCharge is a billable service consumed during a stay, outside the
// room rate. Charges are append-only: never mutated or deleted once created.
type IncidentalCharge struct {
	id          int64
	stayID      int64
	serviceType string
	description string
	amountCents int64
	chargedAt   time.Time
}

func NewIncidentalCharge(stayID int64, serviceType, description string, amountCents int64, now time.Time) (*IncidentalCharge, error) {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return nil, ErrEmptyServiceType
	}
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &IncidentalCharge{
		stayID:      stayID,
		serviceType: serviceType,
		description: strings.TrimSpace(description),
		amountCents: amountCents,
		chargedAt:   now,
	}, nil
}

func ReconstructIncidentalCharge(id, stayID int64, serviceType, description string, amountCents int64, chargedAt time.Time) *IncidentalCharge {
	return &IncidentalCharge{
		id:          id,
		stayID:      stayID,
		serviceType: serviceType,
		description: description,
		amountCents: amountCents,
		chargedAt:   chargedAt,
	}
}

func (c *IncidentalCharge) ID() int64            { return c.id }
func (c *IncidentalCharge) StayID() int64        { return c.stayID }
func (c *IncidentalCharge) ServiceType() string  { return c.serviceType }
func (c *IncidentalCharge) Description() string  { return c.description }
func (c *IncidentalCharge) AmountCents() int64   { return c.amountCents }
func (c *IncidentalCharge) ChargedAt() time.Time { return c.chargedAt }
