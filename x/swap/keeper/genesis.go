package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// InitGenesis loads the module state from a validated genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	for _, pair := range genState.Pairs {
		if err := k.SetPair(ctx, pair); err != nil {
			panic(err)
		}
	}
	for _, listing := range genState.Listings {
		if err := k.SetListing(ctx, listing); err != nil {
			panic(err)
		}
	}
	for _, share := range genState.Shares {
		provider := sdk.MustAccAddressFromBech32(share.Provider)
		k.setShare(ctx, share.TokenDenom, provider, share.Shares)
	}
	for _, allowance := range genState.Allowances {
		owner := sdk.MustAccAddressFromBech32(allowance.Owner)
		k.setAllowance(ctx, allowance.TokenDenom, owner, allowance.Amount)
	}
	for _, vote := range genState.Votes {
		voter := sdk.MustAccAddressFromBech32(vote.Voter)
		k.setVote(ctx, vote.TokenDenom, voter)
	}
}

// ExportGenesis dumps the full module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := types.GenesisState{
		Params:     k.GetParams(ctx),
		Pairs:      k.GetAllPairs(ctx),
		Listings:   k.GetAllListings(ctx),
		Shares:     []types.LiquidityShareRecord{},
		Allowances: []types.AllowanceRecord{},
		Votes:      []types.VoteRecord{},
	}

	k.IterateAllShares(ctx, func(denom string, provider sdk.AccAddress, shares uint64) bool {
		genState.Shares = append(genState.Shares, types.LiquidityShareRecord{
			TokenDenom: denom,
			Provider:   provider.String(),
			Shares:     shares,
		})
		return false
	})
	k.IterateAllowances(ctx, func(denom string, owner sdk.AccAddress, amount uint64) bool {
		genState.Allowances = append(genState.Allowances, types.AllowanceRecord{
			TokenDenom: denom,
			Owner:      owner.String(),
			Amount:     amount,
		})
		return false
	})
	k.IterateVotes(ctx, func(denom string, voter sdk.AccAddress) bool {
		genState.Votes = append(genState.Votes, types.VoteRecord{
			TokenDenom: denom,
			Voter:      voter.String(),
		})
		return false
	})

	return &genState
}
