package types

import (
	"cosmossdk.io/errors"
)

// Swap module sentinel errors. Every handler failure wraps one of these;
// the hosting environment discards all state written by the failed
// invocation, so none of them leave partial state behind.
var (
	ErrInvalidInstruction    = errors.Register(ModuleName, 2, "invalid instruction")
	ErrCurrencyMismatch      = errors.Register(ModuleName, 3, "deposited currency does not match expected")
	ErrDeadlineExpired       = errors.Register(ModuleName, 4, "deadline is up")
	ErrSlippage              = errors.Register(ModuleName, 5, "did not meet expectations")
	ErrArithmetic            = errors.Register(ModuleName, 6, "arithmetic fault")
	ErrInvalidAmount         = errors.Register(ModuleName, 7, "invalid amount")
	ErrPairNotFound          = errors.Register(ModuleName, 8, "token contract does not register")
	ErrPairExists            = errors.Register(ModuleName, 9, "pair exists already")
	ErrShareExists           = errors.Register(ModuleName, 10, "mint record exists already")
	ErrInsufficientShares    = errors.Register(ModuleName, 11, "insufficient liquidity shares")
	ErrInsufficientAllowance = errors.Register(ModuleName, 12, "transfer_from overdrawn balance")
	ErrAllowanceNotFound     = errors.Register(ModuleName, 13, "allowance does not exist")
	ErrInsufficientReserve   = errors.Register(ModuleName, 14, "overdrawn reserve balance")
	ErrListingNotFound       = errors.Register(ModuleName, 15, "listing candidate does not exist")
	ErrListingExists         = errors.Register(ModuleName, 16, "listing candidate exists already")
	ErrDuplicateVote         = errors.Register(ModuleName, 17, "vote exists already")
	ErrSameToken             = errors.Register(ModuleName, 18, "bought token must differ from sold token")
	ErrUnknownCurrency       = errors.Register(ModuleName, 19, "currency does not exist on the asset ledger")
	ErrPairNotInitialized    = errors.Register(ModuleName, 20, "pair has no liquidity supply")
)
