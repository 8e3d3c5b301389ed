package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TradingPair is the pool record for one listed currency traded against
// the base currency. A pair with TotalShares == 0 has been promoted by
// the vote gate but never received its first liquidity provision; once
// TotalShares turns positive it never returns to zero (pairs are never
// deleted).
type TradingPair struct {
	TokenDenom   string `json:"token_denom"`
	TotalShares  uint64 `json:"total_shares"`
	TokenReserve uint64 `json:"token_reserve"`
	BaseReserve  uint64 `json:"base_reserve"`
}

// Validate checks structural well-formedness of a pair record.
func (p TradingPair) Validate() error {
	if err := sdk.ValidateDenom(p.TokenDenom); err != nil {
		return fmt.Errorf("invalid token denom: %w", err)
	}
	return nil
}

// PendingListing is a listing candidate awaiting quorum. It carries the
// same reserve fields as TradingPair (all zero until promotion) plus the
// running vote tally. At most one PendingListing or TradingPair exists
// per currency at any time, never both.
type PendingListing struct {
	TokenDenom   string `json:"token_denom"`
	TotalShares  uint64 `json:"total_shares"`
	TokenReserve uint64 `json:"token_reserve"`
	BaseReserve  uint64 `json:"base_reserve"`
	TotalVotes   uint64 `json:"total_votes"`
}

// Validate checks structural well-formedness of a listing record.
func (l PendingListing) Validate() error {
	if err := sdk.ValidateDenom(l.TokenDenom); err != nil {
		return fmt.Errorf("invalid token denom: %w", err)
	}
	return nil
}

// Promote converts the candidate into a trading pair with its reserve
// fields carried over and the vote tally dropped.
func (l PendingListing) Promote() TradingPair {
	return TradingPair{
		TokenDenom:   l.TokenDenom,
		TotalShares:  l.TotalShares,
		TokenReserve: l.TokenReserve,
		BaseReserve:  l.BaseReserve,
	}
}

// LiquidityShareRecord is the genesis/export form of one provider's
// share in a pair. Zero-share records are legal and retained; removal
// of an exhausted position is the provider's choice, not automatic.
type LiquidityShareRecord struct {
	TokenDenom string `json:"token_denom"`
	Provider   string `json:"provider"`
	Shares     uint64 `json:"shares"`
}

// AllowanceRecord is the genesis/export form of one escrow balance.
// Unlike share records, allowances are erased once fully consumed.
type AllowanceRecord struct {
	TokenDenom string `json:"token_denom"`
	Owner      string `json:"owner"`
	Amount     uint64 `json:"amount"`
}

// VoteRecord marks that a voter already voted for a listing candidate.
type VoteRecord struct {
	TokenDenom string `json:"token_denom"`
	Voter      string `json:"voter"`
}

// FundingEvent is one inbound transfer into the exchange's custody,
// optionally carrying an instruction string. The hosting app delivers
// these synchronously; a non-nil error from the handler voids every
// state mutation of the invocation.
type FundingEvent struct {
	From        sdk.AccAddress
	To          sdk.AccAddress
	Amount      sdk.Coin
	Instruction string
}

// Validate rejects structurally broken events before dispatch.
func (ev FundingEvent) Validate() error {
	if ev.From.Empty() || ev.To.Empty() {
		return fmt.Errorf("funding event addresses cannot be empty")
	}
	if err := ev.Amount.Validate(); err != nil {
		return fmt.Errorf("invalid funding amount: %w", err)
	}
	return nil
}
