package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values. The fee fraction and listing quorum follow
// the canonical constant-product deployment: a 0.3% fee taken from the
// input side and a 100-vote listing gate.
const (
	DefaultBaseDenom      = "uswp"
	DefaultFeeNumerator   = uint64(997)
	DefaultFeeDenominator = uint64(1000)
	DefaultListingQuorum  = uint64(100)

	// DefaultListingFee is 100 whole units of the 4-decimal base currency.
	DefaultListingFee = uint64(100 * 10000)

	// DefaultListingPrecision is the exponent a candidate currency's
	// display unit must carry on the asset ledger to be listable.
	DefaultListingPrecision = uint32(4)
)

// Params holds the swap module parameters.
type Params struct {
	BaseDenom        string `json:"base_denom"`
	FeeNumerator     uint64 `json:"fee_numerator"`
	FeeDenominator   uint64 `json:"fee_denominator"`
	ListingFee       uint64 `json:"listing_fee"`
	ListingQuorum    uint64 `json:"listing_quorum"`
	ListingPrecision uint32 `json:"listing_precision"`
}

// DefaultParams returns the default swap module parameters.
func DefaultParams() Params {
	return Params{
		BaseDenom:        DefaultBaseDenom,
		FeeNumerator:     DefaultFeeNumerator,
		FeeDenominator:   DefaultFeeDenominator,
		ListingFee:       DefaultListingFee,
		ListingQuorum:    DefaultListingQuorum,
		ListingPrecision: DefaultListingPrecision,
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.BaseDenom); err != nil {
		return fmt.Errorf("invalid base denom: %w", err)
	}
	if p.FeeDenominator == 0 {
		return fmt.Errorf("fee denominator must be positive")
	}
	if p.FeeNumerator > p.FeeDenominator {
		return fmt.Errorf("fee numerator %d exceeds denominator %d", p.FeeNumerator, p.FeeDenominator)
	}
	if p.ListingFee == 0 {
		return fmt.Errorf("listing fee must be positive")
	}
	if p.ListingQuorum == 0 {
		return fmt.Errorf("listing quorum must be positive")
	}
	return nil
}
