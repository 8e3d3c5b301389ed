package keeper

import (
	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// Checked uint64 arithmetic. All reserve, share and allowance math in
// the module routes through these; a failure aborts the invocation and
// no wraparound ever reaches the store.

// safeAdd adds two uint64 values, failing on overflow.
func safeAdd(a, b uint64) (uint64, error) {
	c := a + b
	if c < a {
		return 0, types.ErrArithmetic.Wrapf("add overflow: %d + %d", a, b)
	}
	return c, nil
}

// safeSub subtracts b from a, failing on underflow.
func safeSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, types.ErrArithmetic.Wrapf("sub underflow: %d - %d", a, b)
	}
	return a - b, nil
}

// safeMul multiplies two uint64 values, failing on overflow.
func safeMul(a, b uint64) (uint64, error) {
	if a == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return 0, types.ErrArithmetic.Wrapf("mul overflow: %d * %d", a, b)
	}
	return c, nil
}

// safeDiv divides a by b, failing on division by zero. The quotient is
// truncated; reserve invariants depend on this rounding always
// favoring the pool.
func safeDiv(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, types.ErrArithmetic.Wrapf("div by zero: %d / 0", a)
	}
	return a / b, nil
}

// safeMulDiv computes (a * b) / c with the intermediate product
// overflow-checked.
func safeMulDiv(a, b, c uint64) (uint64, error) {
	product, err := safeMul(a, b)
	if err != nil {
		return 0, err
	}
	return safeDiv(product, c)
}
