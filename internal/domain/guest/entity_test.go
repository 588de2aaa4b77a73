//go:build unit

package guest_test

import (
	"testing"

	"hoteltrack/internal/domain/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuest(t *testing.T) *guest.Guest {
	t.Helper()
	g, err := guest.NewGuest("Alice Smith", "alice@example.com", "+1-555-0100", "P1234567")
	require.NoError(t, err)
	return g
}

func TestNewGuest(t *testing.T) {
	t.Run("starts active", func(t *testing.T) {
		g := newTestGuest(t)
		assert.Equal(t, guest.StatusActive, g.Status())
		assert.Empty(t, g.StatusJustification())
	})

	t.Run("requires name and email", func(t *testing.T) {
		_, err := guest.NewGuest("  ", "a@b.c", "", "")
		assert.ErrorIs(t, err, guest.ErrEmptyName)

		_, err = guest.NewGuest("Alice", "  ", "", "")
		assert.ErrorIs(t, err, guest.ErrEmptyEmail)
	})
}

func TestGuestDeactivate(t *testing.T) {
	g := newTestGuest(t)
	g.Deactivate("  repeated no-shows ")

	assert.Equal(t, guest.StatusInactive, g.Status())
	assert.Equal(t, "repeated no-shows", g.StatusJustification())
}

func TestGuestMatchesSearch(t *testing.T) {
	g := newTestGuest(t)

	cases := []struct {
		name  string
		term  string
		match bool
	}{
		{"partial name case-insensitive", "alice", true},
		{"email domain", "example.com", true},
		{"phone fragment", "555-0100", true},
		{"identification number", "P1234567", true},
		{"no match", "bob", false},
		{"empty term", "  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.match, g.MatchesSearch(tc.term))
		})
	}
}
