package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentCondition(t *testing.T) {
	tests := []struct {
		name        string
		condName    string
		entries     []PaymentConditionEntry
		expectError bool
	}{
		{
			name:     "valid three-way split",
			condName: "30/60/90",
			entries: []PaymentConditionEntry{
				{Number: 1, OffsetDays: 30, Percentage: d("33.33")},
				{Number: 2, OffsetDays: 60, Percentage: d("33.33")},
				{Number: 3, OffsetDays: 90, Percentage: d("33.34")},
			},
		},
		{
			name:     "cash condition with no entries",
			condName: "Cash",
			entries:  nil,
		},
		{
			name:     "single entry at 100%",
			condName: "Net 30",
			entries: []PaymentConditionEntry{
				{Number: 1, OffsetDays: 30, Percentage: d("100")},
			},
		},
		{
			name:        "empty name",
			condName:    "",
			expectError: true,
		},
		{
			name:     "entries out of sequence",
			condName: "Broken",
			entries: []PaymentConditionEntry{
				{Number: 1, OffsetDays: 0, Percentage: d("50")},
				{Number: 3, OffsetDays: 30, Percentage: d("50")},
			},
			expectError: true,
		},
		{
			name:     "negative offset",
			condName: "Broken",
			entries: []PaymentConditionEntry{
				{Number: 1, OffsetDays: -5, Percentage: d("100")},
			},
			expectError: true,
		},
		{
			name:     "zero percentage entry",
			condName: "Broken",
			entries: []PaymentConditionEntry{
				{Number: 1, OffsetDays: 0, Percentage: decimal.Zero},
				{Number: 2, OffsetDays: 30, Percentage: d("100")},
			},
			expectError: true,
		},
		{
			name:     "percentages not summing to 100",
			condName: "Broken",
			entries: []PaymentConditionEntry{
				{Number: 1, OffsetDays: 0, Percentage: d("60")},
				{Number: 2, OffsetDays: 30, Percentage: d("30")},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := NewPaymentCondition(tt.condName, tt.entries)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, pc.Active)
			assert.Equal(t, len(tt.entries), pc.EntryCount())
		})
	}
}

func TestPaymentCondition_Deactivate(t *testing.T) {
	pc, err := NewPaymentCondition("Net 30", []PaymentConditionEntry{
		{Number: 1, OffsetDays: 30, Percentage: d("100")},
	})
	require.NoError(t, err)

	pc.Deactivate()
	assert.False(t, pc.Active)
}
