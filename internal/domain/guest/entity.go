package guest

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName  = errors.New("guest name cannot be empty")
	ErrEmptyEmail = errors.New("guest email cannot be empty")
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) String() string {
	return string(s)
}

// Guest is a registered hotel guest. The engine only ever looks guests up;
// registration and profile upkeep live here as the guest directory.
type Guest struct {
	id                   int64
	name                 string
	email                string
	phone                string
	identificationNumber string
	status               Status
	statusJustification  string
}

func NewGuest(name, email, phone, identificationNumber string) (*Guest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}

	return &Guest{
		name:                 name,
		email:                email,
		phone:                strings.TrimSpace(phone),
		identificationNumber: strings.TrimSpace(identificationNumber),
		status:               StatusActive,
	}, nil
}

func ReconstructGuest(id int64, name, email, phone, identificationNumber string, status Status, justification string) *Guest {
	return &Guest{
		id:                   id,
		name:                 name,
		email:                email,
		phone:                phone,
		identificationNumber: identificationNumber,
		status:               status,
		statusJustification:  justification,
	}
}

func (g *Guest) ID() int64                    { return g.id }
func (g *Guest) Name() string                 { return g.name }
func (g *Guest) Email() string                { return g.email }
func (g *Guest) Phone() string                { return g.phone }
func (g *Guest) IdentificationNumber() string { return g.identificationNumber }
func (g *Guest) Status() Status               { return g.status }
func (g *Guest) StatusJustification() string  { return g.statusJustification }

func (g *Guest) UpdateProfile(name, email, phone, identificationNumber string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return ErrEmptyName
	}
	if email == "" {
		return ErrEmptyEmail
	}
	g.name = name
	g.email = email
	g.phone = strings.TrimSpace(phone)
	g.identificationNumber = strings.TrimSpace(identificationNumber)
	return nil
}

func (g *Guest) Deactivate(justification string) {
	g.status = StatusInactive
	g.statusJustification = strings.TrimSpace(justification)
}

// MatchesSearch reports whether the guest matches a free-text search term
// across name, email, phone, and identification number.
func (g *Guest) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(g.name), term) ||
		strings.Contains(strings.ToLower(g.email), term) ||
		strings.Contains(g.phone, term) ||
		strings.Contains(g.identificationNumber, term)
}
