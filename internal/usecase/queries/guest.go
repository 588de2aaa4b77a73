package queries

import (
	"context"
	"strings"

	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/errs"
)

var ErrGuestNotFound = errs.New("guest not found")

type GuestView struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	IdentificationNumber string `json:"identification_number"`
	Status               string `json:"status"`
	StatusJustification  string `json:"status_justification,omitempty"`
}

type GuestQueries interface {
	GetGuest(ctx context.Context, id int64) (*GuestView, error)
	// SearchGuests matches term as a case-insensitive substring of name,
	// email, phone or identification number. An empty term lists all
	// active guests.
	SearchGuests(ctx context.Context, term string) ([]*GuestView, error)
}

type GuestReadStore interface {
	FindByID(ctx context.Context, id int64) (*GuestView, error)
	Search(ctx context.Context, term string) ([]*GuestView, error)
	ListActive(ctx context.Context) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	readStore GuestReadStore
}

func NewGuestQueries(readStore GuestReadStore) GuestQueries {
	return &guestQueriesImpl{readStore: readStore}
}

func (q *guestQueriesImpl) GetGuest(ctx context.Context, id int64) (*GuestView, error) {
	g, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return g, nil
}

func (q *guestQueriesImpl) SearchGuests(ctx context.Context, term string) ([]*GuestView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return q.readStore.ListActive(ctx)
	}
	return q.readStore.Search(ctx, term)
}
