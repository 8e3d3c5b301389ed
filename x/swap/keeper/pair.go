package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// GetPair retrieves the trading pair for a paired currency. The second
// return is false when the currency has never been promoted.
func (k Keeper) GetPair(ctx context.Context, denom string) (types.TradingPair, bool) {
	store := k.getStore(ctx)
	bz := store.Get(PairKey(denom))
	if bz == nil {
		return types.TradingPair{}, false
	}

	var pair types.TradingPair
	k.cdc.MustUnmarshal(bz, &pair)
	return pair, true
}

// SetPair saves a trading pair record.
func (k Keeper) SetPair(ctx context.Context, pair types.TradingPair) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(pair)
	if err != nil {
		return fmt.Errorf("SetPair: marshal pair %s: %w", pair.TokenDenom, err)
	}
	store.Set(PairKey(pair.TokenDenom), bz)
	return nil
}

// HasPair reports whether an active trading pair exists for a currency.
func (k Keeper) HasPair(ctx context.Context, denom string) bool {
	return k.getStore(ctx).Has(PairKey(denom))
}

// IteratePairs iterates over all trading pairs in denom order.
func (k Keeper) IteratePairs(ctx context.Context, cb func(pair types.TradingPair) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PairKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pair types.TradingPair
		k.cdc.MustUnmarshal(iterator.Value(), &pair)
		if cb(pair) {
			break
		}
	}
}

// GetAllPairs returns every trading pair.
func (k Keeper) GetAllPairs(ctx context.Context) []types.TradingPair {
	var pairs []types.TradingPair
	k.IteratePairs(ctx, func(pair types.TradingPair) bool {
		pairs = append(pairs, pair)
		return false
	})
	return pairs
}

// GetListing retrieves the pending listing for a candidate currency.
func (k Keeper) GetListing(ctx context.Context, denom string) (types.PendingListing, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ListingKey(denom))
	if bz == nil {
		return types.PendingListing{}, false
	}

	var listing types.PendingListing
	k.cdc.MustUnmarshal(bz, &listing)
	return listing, true
}

// SetListing saves a pending listing record.
func (k Keeper) SetListing(ctx context.Context, listing types.PendingListing) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(listing)
	if err != nil {
		return fmt.Errorf("SetListing: marshal listing %s: %w", listing.TokenDenom, err)
	}
	store.Set(ListingKey(listing.TokenDenom), bz)
	return nil
}

// HasListing reports whether a currency has a pending listing.
func (k Keeper) HasListing(ctx context.Context, denom string) bool {
	return k.getStore(ctx).Has(ListingKey(denom))
}

// deleteListing removes a pending listing record. Only promotion does
// this; there is no reverse transition out of Proposed.
func (k Keeper) deleteListing(ctx context.Context, denom string) {
	k.getStore(ctx).Delete(ListingKey(denom))
}

// IterateListings iterates over all pending listings in denom order.
func (k Keeper) IterateListings(ctx context.Context, cb func(listing types.PendingListing) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ListingKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var listing types.PendingListing
		k.cdc.MustUnmarshal(iterator.Value(), &listing)
		if cb(listing) {
			break
		}
	}
}

// GetAllListings returns every pending listing.
func (k Keeper) GetAllListings(ctx context.Context) []types.PendingListing {
	var listings []types.PendingListing
	k.IterateListings(ctx, func(listing types.PendingListing) bool {
		listings = append(listings, listing)
		return false
	})
	return listings
}
