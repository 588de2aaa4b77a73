package commands

import (
	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/errs"
)

// markLookupErr maps a repository lookup failure onto the given not-found
// sentinel; anything else is a store failure.
func markLookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrStoreFailure)
}
