package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

var (
	genAlice = sdk.AccAddress("alice_______________").String()
	genBob   = sdk.AccAddress("bob_________________").String()
)

func validGenesis() types.GenesisState {
	return types.GenesisState{
		Params: types.DefaultParams(),
		Pairs: []types.TradingPair{
			{TokenDenom: "utok", TotalShares: 100, TokenReserve: 100, BaseReserve: 100},
		},
		Listings: []types.PendingListing{
			{TokenDenom: "uoth", TotalVotes: 1},
		},
		Shares: []types.LiquidityShareRecord{
			{TokenDenom: "utok", Provider: genAlice, Shares: 100},
		},
		Allowances: []types.AllowanceRecord{
			{TokenDenom: "utok", Owner: genBob, Amount: 5},
		},
		Votes: []types.VoteRecord{
			{TokenDenom: "uoth", Voter: genAlice},
		},
	}
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
	require.NoError(t, validGenesis().Validate())
}

func TestGenesisValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.GenesisState)
	}{
		{"duplicate pair", func(gs *types.GenesisState) {
			gs.Pairs = append(gs.Pairs, gs.Pairs[0])
		}},
		{"pair and listing overlap", func(gs *types.GenesisState) {
			gs.Listings[0].TokenDenom = "utok"
			gs.Votes[0].TokenDenom = "utok"
		}},
		{"share sum mismatch", func(gs *types.GenesisState) {
			gs.Shares[0].Shares = 99
		}},
		{"share for unknown pair", func(gs *types.GenesisState) {
			gs.Shares = append(gs.Shares, types.LiquidityShareRecord{
				TokenDenom: "unknown", Provider: genAlice, Shares: 1,
			})
		}},
		{"exhausted allowance retained", func(gs *types.GenesisState) {
			gs.Allowances[0].Amount = 0
		}},
		{"vote tally mismatch", func(gs *types.GenesisState) {
			gs.Listings[0].TotalVotes = 2
		}},
		{"duplicate vote", func(gs *types.GenesisState) {
			gs.Votes = append(gs.Votes, gs.Votes[0])
			gs.Listings[0].TotalVotes = 2
		}},
		{"listing at quorum", func(gs *types.GenesisState) {
			gs.Listings[0].TotalVotes = gs.Params.ListingQuorum
			gs.Votes = nil
		}},
		{"base currency paired with itself", func(gs *types.GenesisState) {
			gs.Pairs[0].TokenDenom = gs.Params.BaseDenom
			gs.Shares[0].TokenDenom = gs.Params.BaseDenom
			gs.Allowances[0].TokenDenom = gs.Params.BaseDenom
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(&gs)
			require.Error(t, gs.Validate())
		})
	}
}
