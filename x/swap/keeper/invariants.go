package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// RegisterInvariants registers all swap invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "vote-tally", VoteTallyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "listing-overlap", ListingOverlapInvariant(k))
}

// AllInvariants runs all invariants of the swap module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = VoteTallyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ListingOverlapInvariant(k)(ctx)
	}
}

// ShareSupplyInvariant checks that per-pair share records sum to the
// pair's recorded liquidity supply.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		sums := make(map[string]uint64)
		k.IterateAllShares(ctx, func(denom string, _ sdk.AccAddress, shares uint64) bool {
			sums[denom] += shares
			return false
		})

		k.IteratePairs(ctx, func(pair types.TradingPair) bool {
			if sums[pair.TokenDenom] != pair.TotalShares {
				count++
				msg += fmt.Sprintf("\tpair %s: share records sum to %d, supply is %d\n",
					pair.TokenDenom, sums[pair.TokenDenom], pair.TotalShares)
			}
			delete(sums, pair.TokenDenom)
			return false
		})
		for denom := range sums {
			count++
			msg += fmt.Sprintf("\tshare records exist for unknown pair %s\n", denom)
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "share-supply",
			fmt.Sprintf("%d pairs with inconsistent share supply\n%s", count, msg)), broken
	}
}

// VoteTallyInvariant checks that per-candidate vote records match the
// candidate's stored tally.
func VoteTallyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		tallies := make(map[string]uint64)
		k.IterateVotes(ctx, func(denom string, _ sdk.AccAddress) bool {
			tallies[denom]++
			return false
		})

		k.IterateListings(ctx, func(listing types.PendingListing) bool {
			if tallies[listing.TokenDenom] != listing.TotalVotes {
				count++
				msg += fmt.Sprintf("\tcandidate %s: %d vote records, tally is %d\n",
					listing.TokenDenom, tallies[listing.TokenDenom], listing.TotalVotes)
			}
			delete(tallies, listing.TokenDenom)
			return false
		})
		for denom := range tallies {
			count++
			msg += fmt.Sprintf("\tvote records exist for unknown candidate %s\n", denom)
		}

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "vote-tally",
			fmt.Sprintf("%d candidates with inconsistent tallies\n%s", count, msg)), broken
	}
}

// ListingOverlapInvariant checks that no currency is simultaneously a
// trading pair and a pending candidate.
func ListingOverlapInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IterateListings(ctx, func(listing types.PendingListing) bool {
			if k.HasPair(ctx, listing.TokenDenom) {
				count++
				msg += fmt.Sprintf("\t%s is both listed and pending\n", listing.TokenDenom)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(types.ModuleName, "listing-overlap",
			fmt.Sprintf("%d currencies listed and pending at once\n%s", count, msg)), broken
	}
}
