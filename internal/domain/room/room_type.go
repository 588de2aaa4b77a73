package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTypeName        = errors.New("room type name cannot be empty")
	ErrEmptyTypeDescription = errors.New("room type description cannot be empty")
	ErrNonPositiveOccupancy = errors.New("max occupancy must be greater than zero")
	ErrNonPositivePrice     = errors.New("base price must be greater than zero")
	ErrInvalidTaxRate       = errors.New("tax rate must be in [0,1)")
)

// RoomType describes a bookable category of rooms. Identity (name) is
// immutable; pricing is mutable via UpdatePricing only.
type RoomType struct {
	id             int64
	name           string
	description    string
	maxOccupancy   int
	basePriceCents int64
	taxRate        float64
}

func NewRoomType(name, description string, maxOccupancy int, basePriceCents int64, taxRate float64) (*RoomType, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return nil, ErrEmptyTypeName
	}
	if description == "" {
		return nil, ErrEmptyTypeDescription
	}
	if maxOccupancy <= 0 {
		return nil, ErrNonPositiveOccupancy
	}
	if basePriceCents <= 0 {
		return nil, ErrNonPositivePrice
	}
	if taxRate < 0 || taxRate >= 1 {
		return nil, ErrInvalidTaxRate
	}

	return &RoomType{
		name:           name,
		description:    description,
		maxOccupancy:   maxOccupancy,
		basePriceCents: basePriceCents,
		taxRate:        taxRate,
	}, nil
}

func ReconstructRoomType(id int64, name, description string, maxOccupancy int, basePriceCents int64, taxRate float64) *RoomType {
	return &RoomType{
		id:             id,
		name:           name,
		description:    description,
		maxOccupancy:   maxOccupancy,
		basePriceCents: basePriceCents,
		taxRate:        taxRate,
	}
}

func (t *RoomType) ID() int64             { return t.id }
func (t *RoomType) Name() string          { return t.name }
func (t *RoomType) Description() string   { return t.description }
func (t *RoomType) MaxOccupancy() int     { return t.maxOccupancy }
func (t *RoomType) BasePriceCents() int64 { return t.basePriceCents }
func (t *RoomType) TaxRate() float64      { return t.taxRate }

// NameEquals compares type names case-insensitively; type names are unique
// under this comparison.
func (t *RoomType) NameEquals(name string) bool {
	return strings.EqualFold(t.name, strings.TrimSpace(name))
}

func (t *RoomType) UpdatePricing(basePriceCents int64, taxRate float64) error {
	if basePriceCents <= 0 {
		return ErrNonPositivePrice
	}
	if taxRate < 0 || taxRate >= 1 {
		return ErrInvalidTaxRate
	}
	t.basePriceCents = basePriceCents
	t.taxRate = taxRate
	return nil
}

// Fits reports whether the type can sleep the requested occupant count.
func (t *RoomType) Fits(occupancy int) bool {
	return occupancy > 0 && occupancy <= t.maxOccupancy
}
