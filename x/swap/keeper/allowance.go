package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// GetAllowance returns an owner's escrow allowance for a pair. The
// second return distinguishes "no record" from a zero balance; zero
// balances never persist because consumption erases the record.
func (k Keeper) GetAllowance(ctx context.Context, denom string, owner sdk.AccAddress) (uint64, bool) {
	store := k.getStore(ctx)
	bz := store.Get(AllowanceKey(denom, owner))
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

// setAllowance writes an allowance record, erasing it at zero.
func (k Keeper) setAllowance(ctx context.Context, denom string, owner sdk.AccAddress, amount uint64) {
	store := k.getStore(ctx)
	if amount == 0 {
		store.Delete(AllowanceKey(denom, owner))
		return
	}
	store.Set(AllowanceKey(denom, owner), sdk.Uint64ToBigEndian(amount))
}

// IterateAllowances iterates over every allowance record.
func (k Keeper) IterateAllowances(ctx context.Context, cb func(denom string, owner sdk.AccAddress, amount uint64) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, AllowanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom, owner := splitAccountScopedKey(iterator.Key(), AllowanceKeyPrefix)
		if cb(denom, owner, sdk.BigEndianToUint64(iterator.Value())) {
			break
		}
	}
}

// Approve places a deposited amount of a pair's token into the
// sender's escrow allowance, creating or topping up the record. The
// deposit must be the pair's own currency and the pair must already be
// active on the exchange.
func (k Keeper) Approve(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin) error {
	pair, found := k.GetPair(ctx, deposit.Denom)
	if !found {
		return types.ErrPairNotFound.Wrapf("no pair for deposited currency %s", deposit.Denom)
	}

	amount, err := coinMagnitude(deposit)
	if err != nil {
		return err
	}

	balance, _ := k.GetAllowance(ctx, pair.TokenDenom, from)
	balance, err = safeAdd(balance, amount)
	if err != nil {
		return err
	}
	k.setAllowance(ctx, pair.TokenDenom, from, balance)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApprove,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyToken, pair.TokenDenom),
			sdk.NewAttribute(types.AttributeKeyAmount, deposit.Amount.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.AllowancesGranted.WithLabelValues(pair.TokenDenom).Inc()
	}
	return nil
}

// CancelApprove erases the sender's allowance for a pair, returns its
// full remaining balance, and echoes back the incidental deposit that
// carried the command.
func (k Keeper) CancelApprove(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin, cmd types.CancelApproveCommand) error {
	balance, found := k.GetAllowance(ctx, cmd.TokenDenom, from)
	if !found {
		return types.ErrAllowanceNotFound.Wrapf("no allowance for %s by %s", cmd.TokenDenom, from)
	}

	k.setAllowance(ctx, cmd.TokenDenom, from, 0)

	refund := sdk.NewCoin(cmd.TokenDenom, sdkIntFromUint64(balance))
	if err := k.sendFunds(ctx, from, refund, "cancel approve"); err != nil {
		return err
	}
	if err := k.sendFunds(ctx, from, deposit, "returns"); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCancelApprove,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyToken, cmd.TokenDenom),
			sdk.NewAttribute(types.AttributeKeyAmount, refund.Amount.String()),
		),
	)
	return nil
}

// pullEscrow is the internal pull-withdrawal primitive: it consumes
// amount from the owner's allowance and credits the pair's token
// reserve in place. No outbound ledger call is made; the funds were
// already received into custody by the prior approve deposit. The
// caller persists the mutated pair.
func (k Keeper) pullEscrow(ctx sdk.Context, owner sdk.AccAddress, pair *types.TradingPair, amount uint64) error {
	balance, found := k.GetAllowance(ctx, pair.TokenDenom, owner)
	if !found || balance < amount {
		return types.ErrInsufficientAllowance.Wrapf(
			"allowance %d of %s is below required %d", balance, pair.TokenDenom, amount)
	}

	remaining, err := safeSub(balance, amount)
	if err != nil {
		return err
	}
	k.setAllowance(ctx, pair.TokenDenom, owner, remaining)

	pair.TokenReserve, err = safeAdd(pair.TokenReserve, amount)
	return err
}
