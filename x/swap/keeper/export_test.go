package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Test-only exports.

var (
	SafeAdd    = safeAdd
	SafeSub    = safeSub
	SafeMul    = safeMul
	SafeDiv    = safeDiv
	SafeMulDiv = safeMulDiv
)

func (k Keeper) GetInputPrice(ctx sdk.Context, input, inputReserve, outputReserve uint64) (uint64, error) {
	return k.getInputPrice(ctx, input, inputReserve, outputReserve)
}

func (k Keeper) SetShare(ctx sdk.Context, denom string, provider sdk.AccAddress, shares uint64) {
	k.setShare(ctx, denom, provider, shares)
}

func (k Keeper) SetAllowance(ctx sdk.Context, denom string, owner sdk.AccAddress, amount uint64) {
	k.setAllowance(ctx, denom, owner, amount)
}

func (k Keeper) SetVote(ctx sdk.Context, denom string, voter sdk.AccAddress) {
	k.setVote(ctx, denom, voter)
}
