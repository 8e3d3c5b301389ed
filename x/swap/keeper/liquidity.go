package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// GetShare returns a provider's liquidity share in a pair. The second
// return distinguishes "no record" from a recorded zero: exhausted
// positions are retained until the provider chooses otherwise, and a
// create-pair is refused while any record exists for the creator.
func (k Keeper) GetShare(ctx context.Context, denom string, provider sdk.AccAddress) (uint64, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ShareKey(denom, provider))
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

// setShare writes a share record. Zero values are stored, not deleted.
func (k Keeper) setShare(ctx context.Context, denom string, provider sdk.AccAddress, shares uint64) {
	store := k.getStore(ctx)
	store.Set(ShareKey(denom, provider), sdk.Uint64ToBigEndian(shares))
}

// IterateShares iterates over all share records of one pair.
func (k Keeper) IterateShares(ctx context.Context, denom string, cb func(provider sdk.AccAddress, shares uint64) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ShareKeyDenomPrefix(denom))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		_, provider := splitAccountScopedKey(iterator.Key(), ShareKeyPrefix)
		if cb(provider, sdk.BigEndianToUint64(iterator.Value())) {
			break
		}
	}
}

// IterateAllShares iterates over every share record of every pair.
func (k Keeper) IterateAllShares(ctx context.Context, cb func(denom string, provider sdk.AccAddress, shares uint64) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ShareKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom, provider := splitAccountScopedKey(iterator.Key(), ShareKeyPrefix)
		if cb(denom, provider, sdk.BigEndianToUint64(iterator.Value())) {
			break
		}
	}
}

// CreatePair performs the one-time initial liquidity provision for a
// promoted pair. The deposited base amount seeds the base reserve, the
// declared token amount is pulled from the creator's escrow allowance,
// and the initial liquidity supply equals the base reserve by
// convention.
func (k Keeper) CreatePair(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin, cmd types.CreatePairCommand) error {
	if cmd.MaxTokens == 0 {
		return types.ErrInvalidAmount.Wrap("invalid max_tokens")
	}
	if err := k.checkDeadline(ctx, cmd.Deadline); err != nil {
		return err
	}

	pair, found := k.GetPair(ctx, cmd.TokenDenom)
	if !found {
		return types.ErrPairNotFound.Wrapf("%s has not been listed", cmd.TokenDenom)
	}
	if pair.TotalShares != 0 {
		return types.ErrPairExists.Wrapf("pair %s is already initialized", cmd.TokenDenom)
	}

	depositAmount, err := coinMagnitude(deposit)
	if err != nil {
		return err
	}
	initialShares, err := safeAdd(pair.BaseReserve, depositAmount)
	if err != nil {
		return err
	}

	if _, exists := k.GetShare(ctx, cmd.TokenDenom, from); exists {
		return types.ErrShareExists.Wrapf("share record for %s on %s", from, cmd.TokenDenom)
	}

	if err := k.pullEscrow(ctx, from, &pair, cmd.MaxTokens); err != nil {
		return err
	}
	k.setShare(ctx, cmd.TokenDenom, from, initialShares)

	pair.BaseReserve, err = safeAdd(pair.BaseReserve, depositAmount)
	if err != nil {
		return err
	}
	pair.TotalShares = initialShares

	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyToken, cmd.TokenDenom),
			sdk.NewAttribute(types.AttributeKeyAmount, deposit.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprintf("%d", initialShares)),
		),
	)

	if k.metrics != nil {
		k.metrics.PairsCreated.Inc()
		k.metrics.LiquidityAdded.WithLabelValues(cmd.TokenDenom).Add(float64(depositAmount))
	}
	return nil
}

// AddLiquidity adds to an initialized pair. The required token amount
// follows the reserve ratio plus one minimal unit; minted liquidity is
// deposit * supply / baseReserve, truncated. Both are bounded by the
// caller's declarations.
func (k Keeper) AddLiquidity(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin, cmd types.AddLiquidityCommand) error {
	if cmd.MinLiquidity == 0 {
		return types.ErrInvalidAmount.Wrap("invalid min_liquidity")
	}
	if cmd.MaxTokens == 0 {
		return types.ErrInvalidAmount.Wrap("invalid max_tokens")
	}
	if err := k.checkDeadline(ctx, cmd.Deadline); err != nil {
		return err
	}

	pair, found := k.GetPair(ctx, cmd.TokenDenom)
	if !found {
		return types.ErrPairNotFound.Wrapf("%s has not been listed", cmd.TokenDenom)
	}
	if pair.TotalShares == 0 {
		return types.ErrPairNotInitialized.Wrapf("pair %s", cmd.TokenDenom)
	}

	depositAmount, err := coinMagnitude(deposit)
	if err != nil {
		return err
	}

	// Token requirement rounds up by one minimal unit rather than a
	// true ceiling; when the division is exact the provider gets a
	// one-unit discount. Kept bit-for-bit from the deployed pricing.
	tokenAmount, err := safeMulDiv(pair.TokenReserve, depositAmount, pair.BaseReserve)
	if err != nil {
		return err
	}
	tokenAmount, err = safeAdd(tokenAmount, 1)
	if err != nil {
		return err
	}

	minted, err := safeMulDiv(depositAmount, pair.TotalShares, pair.BaseReserve)
	if err != nil {
		return err
	}

	if tokenAmount > cmd.MaxTokens || minted < cmd.MinLiquidity {
		return types.ErrSlippage.Wrapf(
			"token requirement %d (max %d), minted liquidity %d (min %d)",
			tokenAmount, cmd.MaxTokens, minted, cmd.MinLiquidity)
	}

	shares, _ := k.GetShare(ctx, cmd.TokenDenom, from)
	shares, err = safeAdd(shares, minted)
	if err != nil {
		return err
	}

	if err := k.pullEscrow(ctx, from, &pair, tokenAmount); err != nil {
		return err
	}
	k.setShare(ctx, cmd.TokenDenom, from, shares)

	pair.BaseReserve, err = safeAdd(pair.BaseReserve, depositAmount)
	if err != nil {
		return err
	}
	pair.TotalShares, err = safeAdd(pair.TotalShares, minted)
	if err != nil {
		return err
	}

	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyToken, cmd.TokenDenom),
			sdk.NewAttribute(types.AttributeKeyAmount, deposit.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprintf("%d", minted)),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(cmd.TokenDenom).Add(float64(depositAmount))
	}
	return nil
}

// RemoveLiquidity burns liquidity units for a proportional cut of both
// reserves and transfers them out, then echoes back the incidental
// deposit that carried the command.
func (k Keeper) RemoveLiquidity(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin, cmd types.RemoveLiquidityCommand) error {
	if cmd.Amount == 0 {
		return types.ErrInvalidAmount.Wrap("invalid amount")
	}
	if cmd.MinBase == 0 {
		return types.ErrInvalidAmount.Wrap("invalid min_eos")
	}
	if cmd.MinTokens == 0 {
		return types.ErrInvalidAmount.Wrap("invalid min_tokens")
	}
	if err := k.checkDeadline(ctx, cmd.Deadline); err != nil {
		return err
	}
	if deposit.Denom != cmd.TokenDenom {
		return types.ErrCurrencyMismatch.Wrapf(
			"remove_liquidity must be funded with %s, got %s", cmd.TokenDenom, deposit.Denom)
	}

	pair, found := k.GetPair(ctx, cmd.TokenDenom)
	if !found {
		return types.ErrPairNotFound.Wrapf("%s has not been listed", cmd.TokenDenom)
	}
	if pair.TotalShares == 0 {
		return types.ErrPairNotInitialized.Wrapf("pair %s", cmd.TokenDenom)
	}

	baseOut, err := safeMulDiv(pair.BaseReserve, cmd.Amount, pair.TotalShares)
	if err != nil {
		return err
	}
	tokenOut, err := safeMulDiv(pair.TokenReserve, cmd.Amount, pair.TotalShares)
	if err != nil {
		return err
	}
	if baseOut < cmd.MinBase || tokenOut < cmd.MinTokens {
		return types.ErrSlippage.Wrapf(
			"base out %d (min %d), token out %d (min %d)",
			baseOut, cmd.MinBase, tokenOut, cmd.MinTokens)
	}

	shares, found := k.GetShare(ctx, cmd.TokenDenom, from)
	if !found || shares < cmd.Amount {
		return types.ErrInsufficientShares.Wrapf("have %d, burning %d", shares, cmd.Amount)
	}
	shares, err = safeSub(shares, cmd.Amount)
	if err != nil {
		return err
	}
	// Exhausted positions stay recorded; removal is not automatic.
	k.setShare(ctx, cmd.TokenDenom, from, shares)

	pair.TokenReserve, err = safeSub(pair.TokenReserve, tokenOut)
	if err != nil {
		return err
	}
	pair.BaseReserve, err = safeSub(pair.BaseReserve, baseOut)
	if err != nil {
		return err
	}
	pair.TotalShares, err = safeSub(pair.TotalShares, cmd.Amount)
	if err != nil {
		return err
	}

	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}

	params := k.GetParams(ctx)
	baseCoin := sdk.NewCoin(params.BaseDenom, sdkIntFromUint64(baseOut))
	tokenCoin := sdk.NewCoin(pair.TokenDenom, sdkIntFromUint64(tokenOut))

	if err := k.sendFunds(ctx, from, baseCoin, "remove liquidity"); err != nil {
		return err
	}
	if err := k.sendFunds(ctx, from, tokenCoin, "remove liquidity"); err != nil {
		return err
	}
	if err := k.sendFunds(ctx, from, deposit, "returns"); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyToken, cmd.TokenDenom),
			sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprintf("%d", cmd.Amount)),
			sdk.NewAttribute(types.AttributeKeyAmountOut, fmt.Sprintf("%d%s,%d%s", baseOut, params.BaseDenom, tokenOut, pair.TokenDenom)),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(cmd.TokenDenom).Add(float64(baseOut))
	}
	return nil
}

// checkDeadline rejects commands whose absolute deadline has passed.
func (k Keeper) checkDeadline(ctx sdk.Context, deadline uint64) error {
	now := uint64(ctx.BlockTime().Unix())
	if deadline <= now {
		return types.ErrDeadlineExpired.Wrapf("deadline %d, block time %d", deadline, now)
	}
	return nil
}
