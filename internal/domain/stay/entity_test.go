//go:build unit

package stay_test

import (
	"testing"
	"time"

	"hoteltrack/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkIn = time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC)

func TestStayClose(t *testing.T) {
	resID := int64(5)
	s := stay.NewStay(&resID, 1, 2, "KEY-1234", checkIn)

	assert.True(t, s.IsActive())
	assert.Nil(t, s.CheckOutTime())

	checkOut := checkIn.Add(48 * time.Hour)
	require.NoError(t, s.Close(checkOut))
	assert.False(t, s.IsActive())
	require.NotNil(t, s.CheckOutTime())
	assert.Equal(t, checkOut, *s.CheckOutTime())

	assert.ErrorIs(t, s.Close(checkOut), stay.ErrAlreadyCheckedOut)
}

func TestStayNights(t *testing.T) {
	s := stay.NewStay(nil, 1, 2, "KEY-1234", checkIn)

	cases := []struct {
		name     string
		checkout time.Time
		want     int
	}{
		{"same instant", checkIn, 1},
		{"same day", checkIn.Add(4 * time.Hour), 1},
		{"exactly one night", checkIn.Add(24 * time.Hour), 1},
		{"one night and a bit", checkIn.Add(26 * time.Hour), 2},
		{"three nights", checkIn.Add(72 * time.Hour), 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Nights(tc.checkout))
		})
	}
}

func TestNewIncidentalCharge(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		c, err := stay.NewIncidentalCharge(1, " Room Service ", " club sandwich ", 1500, checkIn)
		require.NoError(t, err)
		assert.Equal(t, "Room Service", c.ServiceType())
		assert.Equal(t, "club sandwich", c.Description())
		assert.Equal(t, int64(1500), c.AmountCents())
	})

	t.Run("rejects empty service type", func(t *testing.T) {
		_, err := stay.NewIncidentalCharge(1, "  ", "x", 1500, checkIn)
		assert.ErrorIs(t, err, stay.ErrEmptyServiceType)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := stay.NewIncidentalCharge(1, "Spa", "", 0, checkIn)
		assert.ErrorIs(t, err, stay.ErrNonPositiveAmount)
	})
}
