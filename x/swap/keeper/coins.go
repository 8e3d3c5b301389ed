package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// coinMagnitude extracts a deposit's magnitude as the uint64 the pool
// math operates on. Deposits must be positive and within uint64 range.
func coinMagnitude(coin sdk.Coin) (uint64, error) {
	if !coin.Amount.IsPositive() {
		return 0, types.ErrInvalidAmount.Wrapf("deposit of %s must be positive", coin.Denom)
	}
	if !coin.Amount.IsUint64() {
		return 0, types.ErrArithmetic.Wrapf("deposit %s exceeds uint64 range", coin.Amount)
	}
	return coin.Amount.Uint64(), nil
}

func sdkIntFromUint64(amount uint64) sdkmath.Int {
	return sdkmath.NewIntFromUint64(amount)
}

// displayExponent resolves a currency's decimal precision from its bank
// metadata, taken as the exponent of the display unit.
func displayExponent(meta banktypes.Metadata) uint32 {
	for _, unit := range meta.DenomUnits {
		if unit.Denom == meta.Display {
			return unit.Exponent
		}
	}
	return 0
}
