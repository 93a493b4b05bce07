package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDaysLate(t *testing.T) {
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		paymentDate time.Time
		expected    int
	}{
		{
			name:        "same day",
			paymentDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expected:    0,
		},
		{
			name:        "same day ignores time of day",
			paymentDate: time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC),
			expected:    0,
		},
		{
			name:        "one day late",
			paymentDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			expected:    1,
		},
		{
			name:        "ten days late",
			paymentDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			expected:    10,
		},
		{
			name:        "early payment is negative",
			paymentDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			expected:    -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysLate(due, tt.paymentDate))
		})
	}
}

func TestSimpleAccrual(t *testing.T) {
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		base             decimal.Decimal
		paymentDate      time.Time
		expectedInterest decimal.Decimal
		expectedPenalty  decimal.Decimal
	}{
		{
			name:             "on time accrues nothing",
			base:             d("1000"),
			paymentDate:      due,
			expectedInterest: decimal.Zero,
			expectedPenalty:  decimal.Zero,
		},
		{
			name:             "early payment accrues nothing",
			base:             d("1000"),
			paymentDate:      due.AddDate(0, 0, -3),
			expectedInterest: decimal.Zero,
			expectedPenalty:  decimal.Zero,
		},
		{
			name:             "ten days late",
			base:             d("1000"),
			paymentDate:      due.AddDate(0, 0, 10),
			expectedInterest: d("3.30"),
			expectedPenalty:  d("20.00"),
		},
		{
			name:             "seven days late with cents",
			base:             d("1234.56"),
			paymentDate:      due.AddDate(0, 0, 7),
			expectedInterest: d("2.85"),
			expectedPenalty:  d("24.69"),
		},
		{
			name:             "one day late",
			base:             d("100"),
			paymentDate:      due.AddDate(0, 0, 1),
			expectedInterest: d("0.03"),
			expectedPenalty:  d("2.00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accrual := SimpleAccrual{}.Accrue(tt.base, due, tt.paymentDate)
			assert.True(t, tt.expectedInterest.Equal(accrual.Interest),
				"interest: expected %s, got %s", tt.expectedInterest, accrual.Interest)
			assert.True(t, tt.expectedPenalty.Equal(accrual.Penalty),
				"penalty: expected %s, got %s", tt.expectedPenalty, accrual.Penalty)
		})
	}
}

func TestCompoundDailyAccrual(t *testing.T) {
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		monthlyRate      decimal.Decimal
		penaltyRate      decimal.Decimal
		base             decimal.Decimal
		paymentDate      time.Time
		expectedInterest decimal.Decimal
		expectedPenalty  decimal.Decimal
	}{
		{
			name:             "on time accrues nothing even with rates configured",
			monthlyRate:      d("3"),
			penaltyRate:      d("2"),
			base:             d("1000"),
			paymentDate:      due,
			expectedInterest: decimal.Zero,
			expectedPenalty:  decimal.Zero,
		},
		{
			name:             "ten days late at 3% monthly",
			monthlyRate:      d("3"),
			penaltyRate:      d("2"),
			base:             d("1000"),
			paymentDate:      due.AddDate(0, 0, 10),
			expectedInterest: d("10.05"),
			expectedPenalty:  d("20.00"),
		},
		{
			name:             "five days late at 6% monthly without penalty",
			monthlyRate:      d("6"),
			penaltyRate:      decimal.Zero,
			base:             d("500"),
			paymentDate:      due.AddDate(0, 0, 5),
			expectedInterest: d("5.02"),
			expectedPenalty:  decimal.Zero,
		},
		{
			name:             "three days late at 1.5% monthly",
			monthlyRate:      d("1.5"),
			penaltyRate:      d("2"),
			base:             d("2000"),
			paymentDate:      due.AddDate(0, 0, 3),
			expectedInterest: d("3.00"),
			expectedPenalty:  d("40.00"),
		},
		{
			name:             "zero rates accrue nothing when late",
			monthlyRate:      decimal.Zero,
			penaltyRate:      decimal.Zero,
			base:             d("1000"),
			paymentDate:      due.AddDate(0, 0, 30),
			expectedInterest: decimal.Zero,
			expectedPenalty:  decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCompoundDailyAccrual(tt.monthlyRate, tt.penaltyRate)
			accrual := calc.Accrue(tt.base, due, tt.paymentDate)
			assert.True(t, tt.expectedInterest.Equal(accrual.Interest),
				"interest: expected %s, got %s", tt.expectedInterest, accrual.Interest)
			assert.True(t, tt.expectedPenalty.Equal(accrual.Penalty),
				"penalty: expected %s, got %s", tt.expectedPenalty, accrual.Penalty)
		})
	}
}

func TestCompoundDailyAccrual_IntermediateRounding(t *testing.T) {
	// The running amount is rounded to 4 decimal places after every daily
	// step, so the iterated result can diverge from a one-shot power.
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	calc := NewCompoundDailyAccrual(d("3"), decimal.Zero)

	accrual := calc.Accrue(d("1000"), due, due.AddDate(0, 0, 2))

	// 1000 -> 1001.0000 -> 1002.0010
	assert.True(t, d("2.00").Equal(accrual.Interest),
		"expected 2.00, got %s", accrual.Interest)
}
