package commands

import (
	"context"
	"log/slog"

	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/errs"
)

type GuestProfileParams struct {
	Name                 string
	Email                string
	Phone                string
	IdentificationNumber string
}

type GuestCommands interface {
	RegisterGuest(ctx context.Context, params GuestProfileParams) (*guest.Guest, error)
	UpdateGuestProfile(ctx context.Context, guestID int64, params GuestProfileParams) (*guest.Guest, error)
	DeactivateGuest(ctx context.Context, guestID int64, justification string) (*guest.Guest, error)
}

type guestCommands struct {
	guests GuestRepository
	logger *slog.Logger
}

func NewGuestCommands(guests GuestRepository, logger *slog.Logger) GuestCommands {
	return &guestCommands{guests: guests, logger: logger}
}

func (c *guestCommands) RegisterGuest(ctx context.Context, params GuestProfileParams) (*guest.Guest, error) {
	g, err := guest.NewGuest(params.Name, params.Email, params.Phone, params.IdentificationNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.guests.Create(ctx, g)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.logger.Info("registered guest", "guest_id", id, "email", g.Email())
	return c.guests.FindByID(ctx, id)
}

func (c *guestCommands) UpdateGuestProfile(ctx context.Context, guestID int64, params GuestProfileParams) (*guest.Guest, error) {
	g, err := c.guests.Mutate(ctx, guestID, func(g *guest.Guest) error {
		return g.UpdateProfile(params.Name, params.Email, params.Phone, params.IdentificationNumber)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrGuestNotFound)
		case infra.IsKind(err, infra.KindDBFailure):
			return nil, errs.Mark(err, ErrStoreFailure)
		default:
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	c.logger.Info("updated guest profile", "guest_id", guestID)
	return g, nil
}

// DeactivateGuest soft-deletes: the profile stays reachable for billing
// history, but the guest no longer appears in active listings.
func (c *guestCommands) DeactivateGuest(ctx context.Context, guestID int64, justification string) (*guest.Guest, error) {
	g, err := c.guests.Mutate(ctx, guestID, func(g *guest.Guest) error {
		g.Deactivate(justification)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGuestNotFound)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.logger.Info("deactivated guest", "guest_id", guestID)
	return g, nil
}
