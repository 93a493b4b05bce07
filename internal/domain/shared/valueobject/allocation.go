package valueobject

import (
	"errors"

	"github.com/shopspring/decimal"
)

// SplitEven splits a total into n parts rounded half-up to the given number
// of decimal places. The last part absorbs any rounding drift so the parts
// always sum exactly to the total; for non-negative totals every part stays
// non-negative.
func SplitEven(total decimal.Decimal, n int, places int32) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, errors.New("parts must be positive")
	}
	if n == 1 {
		return []decimal.Decimal{total}, nil
	}

	count := decimal.NewFromInt(int64(n))
	base := total.Div(count).Round(places)
	// a rounded-up base overshoots tiny totals and would push the last
	// part negative; fall back to rounding toward zero
	if base.Mul(decimal.NewFromInt(int64(n - 1))).GreaterThan(total) {
		base = total.Div(count).RoundDown(places)
	}
	parts := make([]decimal.Decimal, n)
	allocated := decimal.Zero
	for i := 0; i < n-1; i++ {
		parts[i] = base
		allocated = allocated.Add(base)
	}
	parts[n-1] = total.Sub(allocated)
	return parts, nil
}

// SplitProportional allocates a pool across the given weights pro rata,
// rounding each share half-up to the given number of decimal places. The
// share of the last weight is computed as the pool minus the shares already
// allocated, so the shares always sum exactly to the pool.
//
// A zero weight sum yields all-zero shares (no allocation is possible).
func SplitProportional(pool decimal.Decimal, weights []decimal.Decimal, places int32) ([]decimal.Decimal, error) {
	if len(weights) == 0 {
		return nil, errors.New("weights must not be empty")
	}

	shares := make([]decimal.Decimal, len(weights))
	sum := decimal.Zero
	for _, w := range weights {
		sum = sum.Add(w)
	}
	if sum.IsZero() {
		for i := range shares {
			shares[i] = decimal.Zero
		}
		return shares, nil
	}

	allocated := decimal.Zero
	for i, w := range weights {
		if i == len(weights)-1 {
			shares[i] = pool.Sub(allocated)
			break
		}
		share := pool.Mul(w).Div(sum).Round(places)
		shares[i] = share
		allocated = allocated.Add(share)
	}
	return shares, nil
}
