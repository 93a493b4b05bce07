package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceKey(t *testing.T) {
	partyID := uuid.New()

	tests := []struct {
		name        string
		number      string
		model       string
		series      string
		partyID     uuid.UUID
		expectError bool
	}{
		{
			name:    "valid key",
			number:  "12345",
			model:   "55",
			series:  "1",
			partyID: partyID,
		},
		{
			name:        "empty number",
			number:      "",
			model:       "55",
			series:      "1",
			partyID:     partyID,
			expectError: true,
		},
		{
			name:        "empty model",
			number:      "12345",
			model:       "",
			series:      "1",
			partyID:     partyID,
			expectError: true,
		},
		{
			name:        "empty series",
			number:      "12345",
			model:       "55",
			series:      "",
			partyID:     partyID,
			expectError: true,
		},
		{
			name:        "nil party",
			number:      "12345",
			model:       "55",
			series:      "1",
			partyID:     uuid.Nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewInvoiceKey(tt.number, tt.model, tt.series, tt.partyID)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.number, key.Number)
		})
	}
}

func TestInvoiceKey_Equals(t *testing.T) {
	partyID := uuid.New()
	a, err := NewInvoiceKey("100", "55", "1", partyID)
	require.NoError(t, err)

	b, err := NewInvoiceKey("100", "55", "1", partyID)
	require.NoError(t, err)
	assert.True(t, a.Equals(b))

	c, err := NewInvoiceKey("100", "55", "2", partyID)
	require.NoError(t, err)
	assert.False(t, a.Equals(c))

	d, err := NewInvoiceKey("100", "55", "1", uuid.New())
	require.NoError(t, err)
	assert.False(t, a.Equals(d))
}
