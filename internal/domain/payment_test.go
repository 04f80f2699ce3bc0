package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutMetadataRoundTrip(t *testing.T) {
	md := CheckoutMetadata{
		UserID: 42,
		ShowID: 7,
		Seats:  []string{"A1", "B2", "C3"},
	}

	got, err := ParseCheckoutMetadata(md.Encode())
	require.NoError(t, err)

	assert.Equal(t, md, got)
}

func TestParseCheckoutMetadata(t *testing.T) {
	tests := []struct {
		name string
		md   map[string]string
	}{
		{"missing user id", map[string]string{"show_id": "7", "seats": "A1"}},
		{"malformed user id", map[string]string{"user_id": "abc", "show_id": "7", "seats": "A1"}},
		{"missing show id", map[string]string{"user_id": "42", "seats": "A1"}},
		{"missing seats", map[string]string{"user_id": "42", "show_id": "7"}},
		{"empty metadata", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCheckoutMetadata(tt.md)
			assert.Error(t, err)
		})
	}
}
