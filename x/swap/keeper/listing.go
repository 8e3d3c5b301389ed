package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// HasVote reports whether an account already voted for a listing.
func (k Keeper) HasVote(ctx context.Context, denom string, voter sdk.AccAddress) bool {
	store := k.getStore(ctx)
	return store.Has(VoteKey(denom, voter))
}

func (k Keeper) setVote(ctx context.Context, denom string, voter sdk.AccAddress) {
	store := k.getStore(ctx)
	store.Set(VoteKey(denom, voter), []byte{1})
}

// IterateVotes iterates over every vote record of every listing.
func (k Keeper) IterateVotes(ctx context.Context, cb func(denom string, voter sdk.AccAddress) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, VoteKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom, voter := splitAccountScopedKey(iterator.Key(), VoteKeyPrefix)
		if cb(denom, voter) {
			break
		}
	}
}

// purgeVotes deletes every vote record of one listing.
func (k Keeper) purgeVotes(ctx context.Context, denom string) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, VoteKeyDenomPrefix(denom))
	defer iterator.Close()

	var keys [][]byte
	for ; iterator.Valid(); iterator.Next() {
		keys = append(keys, iterator.Key())
	}
	for _, key := range keys {
		store.Delete(key)
	}
}

// ListToken opens a community listing for a token. The deposit must be
// the exact listing fee in base currency, the token must be a live
// supply on the bank with the declared symbol at the supported
// precision, and the token must not already be listed or pending.
func (k Keeper) ListToken(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin, cmd types.ListTokenCommand) error {
	params := k.GetParams(ctx)

	if cmd.TokenDenom == params.BaseDenom {
		return types.ErrSameToken.Wrap("cannot list the base currency against itself")
	}

	depositAmount, err := coinMagnitude(deposit)
	if err != nil {
		return err
	}
	if depositAmount != params.ListingFee {
		return types.ErrInvalidAmount.Wrapf("listing fee is %d%s, got %d", params.ListingFee, params.BaseDenom, depositAmount)
	}

	if !k.bankKeeper.HasSupply(ctx, cmd.TokenDenom) {
		return types.ErrUnknownCurrency.Wrapf("%s has no supply", cmd.TokenDenom)
	}
	meta, found := k.bankKeeper.GetDenomMetaData(ctx, cmd.TokenDenom)
	if !found {
		return types.ErrUnknownCurrency.Wrapf("%s has no metadata", cmd.TokenDenom)
	}
	if meta.Symbol != cmd.Symbol {
		return types.ErrUnknownCurrency.Wrapf("symbol %s does not match %s", cmd.Symbol, meta.Symbol)
	}
	if exp := displayExponent(meta); exp != params.ListingPrecision {
		return types.ErrUnknownCurrency.Wrapf("precision %d is not supported, want %d", exp, params.ListingPrecision)
	}

	if k.HasPair(ctx, cmd.TokenDenom) {
		return types.ErrPairExists.Wrapf("%s is already listed", cmd.TokenDenom)
	}
	if k.HasListing(ctx, cmd.TokenDenom) {
		return types.ErrListingExists.Wrapf("%s is already pending", cmd.TokenDenom)
	}

	listing := types.PendingListing{
		TokenDenom: cmd.TokenDenom,
		TotalVotes: 0,
	}
	if err := k.SetListing(ctx, listing); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeListingProposed,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyToken, cmd.TokenDenom),
			sdk.NewAttribute(types.AttributeKeyAmount, deposit.Amount.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.ListingsProposed.Inc()
	}
	return nil
}

// Vote records a listing vote. Reaching the quorum promotes the
// listing into an empty trading pair and discards the vote records,
// including the one that tipped the tally.
func (k Keeper) Vote(ctx sdk.Context, voter sdk.AccAddress, denom string) error {
	listing, found := k.GetListing(ctx, denom)
	if !found {
		return types.ErrListingNotFound.Wrapf("%s is not pending", denom)
	}
	if k.HasVote(ctx, denom, voter) {
		return types.ErrDuplicateVote.Wrapf("%s already voted for %s", voter, denom)
	}

	total, err := safeAdd(listing.TotalVotes, 1)
	if err != nil {
		return err
	}
	listing.TotalVotes = total

	params := k.GetParams(ctx)
	if total >= params.ListingQuorum {
		k.purgeVotes(ctx, denom)
		k.deleteListing(ctx, denom)
		if err := k.SetPair(ctx, listing.Promote()); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeListingPromoted,
				sdk.NewAttribute(types.AttributeKeyToken, denom),
				sdk.NewAttribute(types.AttributeKeyTotalVotes, fmt.Sprintf("%d", total)),
			),
		)

		if k.metrics != nil {
			k.metrics.ListingsPromoted.Inc()
		}
		return nil
	}

	k.setVote(ctx, denom, voter)
	if err := k.SetListing(ctx, listing); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVote,
			sdk.NewAttribute(types.AttributeKeyVoter, voter.String()),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyTotalVotes, fmt.Sprintf("%d", total)),
		),
	)
	return nil
}
