package commands

import "hoteltrack/internal/pkg/errs"

// Sentinel errors surfaced by the command side. Handlers map these onto
// HTTP statuses; tests assert on them with errors.Is.
var (
	ErrGuestNotFound       = errs.New("guest not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrRoomTypeNotFound    = errs.New("room type not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrStayNotFound        = errs.New("stay not found")
	ErrInvoiceNotFound     = errs.New("invoice not found")

	ErrDomainValidation  = errs.New("domain validation error")
	ErrDuplicateRoomType = errs.New("room type name already exists")
	ErrDuplicateRoom     = errs.New("room number already exists")

	ErrStateConflict   = errs.New("operation conflicts with current status")
	ErrRoomUnavailable = errs.New("room is not available for the requested dates")
	ErrNoRoomAssigned  = errs.New("reservation has no room assigned")
	ErrStayNotActive   = errs.New("stay is not active")

	ErrStoreFailure = errs.New("store operation failed")
)
