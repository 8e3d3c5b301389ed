package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// Keeper of the swap store. It owns all exchange state exclusively;
// the asset ledger behind bankKeeper owns the real balances.
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper
	metrics    *Metrics

	// moduleAddr is computed once; it is both the custody account on
	// the asset ledger and the address funding events must target.
	moduleAddr sdk.AccAddress
}

// NewKeeper creates a new swap Keeper instance.
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		moduleAddr: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// WithMetrics attaches prometheus metrics to the keeper. Metrics are
// optional; all recording sites nil-guard.
func (k *Keeper) WithMetrics(m *Metrics) *Keeper {
	k.metrics = m
	return k
}

// GetModuleAddress returns the exchange's custody account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// getStore returns the KVStore for the swap module.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// sendFunds issues one outbound transfer from the module's custody to
// a recipient and records the memo on the event stream. Delivery is
// part of the same atomic unit of work as the calling invocation.
func (k Keeper) sendFunds(ctx sdk.Context, to sdk.AccAddress, amount sdk.Coin, memo string) error {
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, sdk.NewCoins(amount)); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransferOut,
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyMemo, memo),
		),
	)
	return nil
}
