package keeper_test

import (
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/swapnet-labs/swapnet/testutil/keeper"
	"github.com/swapnet-labs/swapnet/x/swap/keeper"
	"github.com/swapnet-labs/swapnet/x/swap/types"
)

func listingFee(k *keeper.Keeper, ctx sdk.Context) sdk.Coin {
	params := k.GetParams(ctx)
	return coin(params.BaseDenom, params.ListingFee)
}

func TestListToken(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	bank.RegisterToken(tokenDenom, "TOK", 4)

	require.NoError(t, k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	}))

	listing, found := k.GetListing(ctx, tokenDenom)
	require.True(t, found)
	require.Equal(t, uint64(0), listing.TotalVotes)
}

func TestListTokenWrongFee(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	bank.RegisterToken(tokenDenom, "TOK", 4)

	err := k.ListToken(ctx, alice, coin(baseDenom, 1), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	})
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestListTokenUnknownCurrency(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)

	err := k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	})
	require.ErrorIs(t, err, types.ErrUnknownCurrency)

	// Wrong precision is as unknown as a missing supply.
	bank.RegisterToken(otherDenom, "OTH", 6)
	err = k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: otherDenom,
		Symbol:     "OTH",
	})
	require.ErrorIs(t, err, types.ErrUnknownCurrency)
}

func TestListTokenSymbolMatchIsExact(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	bank.RegisterToken(tokenDenom, "TOK", 4)

	// Case variants of the registered symbol do not match.
	err := k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "tok",
	})
	require.ErrorIs(t, err, types.ErrUnknownCurrency)

	require.NoError(t, k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	}))
}

func TestListTokenRejectsDuplicates(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	bank.RegisterToken(tokenDenom, "TOK", 4)

	require.NoError(t, k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	}))
	err := k.ListToken(ctx, bob, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	})
	require.ErrorIs(t, err, types.ErrListingExists)

	// An active pair blocks a fresh application too.
	bank.RegisterToken(otherDenom, "OTH", 4)
	require.NoError(t, k.SetPair(ctx, types.TradingPair{TokenDenom: otherDenom}))
	err = k.ListToken(ctx, bob, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: otherDenom,
		Symbol:     "OTH",
	})
	require.ErrorIs(t, err, types.ErrPairExists)
}

func voterAddr(i int) sdk.AccAddress {
	return sdk.AccAddress([]byte(fmt.Sprintf("voter_%014d", i)))
}

func TestVoteQuorumPromotes(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	bank.RegisterToken(tokenDenom, "TOK", 4)

	require.NoError(t, k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	}))

	quorum := k.GetParams(ctx).ListingQuorum
	for i := uint64(0); i < quorum-1; i++ {
		require.NoError(t, k.Vote(ctx, voterAddr(int(i)), tokenDenom))
	}

	listing, found := k.GetListing(ctx, tokenDenom)
	require.True(t, found)
	require.Equal(t, quorum-1, listing.TotalVotes)
	require.False(t, k.HasPair(ctx, tokenDenom))

	// The hundredth vote promotes and clears the candidate state.
	require.NoError(t, k.Vote(ctx, voterAddr(int(quorum-1)), tokenDenom))

	_, found = k.GetListing(ctx, tokenDenom)
	require.False(t, found)
	require.True(t, k.HasPair(ctx, tokenDenom))

	votes := 0
	k.IterateVotes(ctx, func(string, sdk.AccAddress) bool {
		votes++
		return false
	})
	require.Zero(t, votes)

	// Voting continues to fail once the candidate is gone.
	err := k.Vote(ctx, voterAddr(0), tokenDenom)
	require.ErrorIs(t, err, types.ErrListingNotFound)
}

func TestVoteDeduplicates(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	bank.RegisterToken(tokenDenom, "TOK", 4)

	require.NoError(t, k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	}))

	require.NoError(t, k.Vote(ctx, bob, tokenDenom))
	err := k.Vote(ctx, bob, tokenDenom)
	require.ErrorIs(t, err, types.ErrDuplicateVote)

	listing, _ := k.GetListing(ctx, tokenDenom)
	require.Equal(t, uint64(1), listing.TotalVotes)
}

func TestMsgServerVote(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	bank.RegisterToken(tokenDenom, "TOK", 4)

	require.NoError(t, k.ListToken(ctx, alice, listingFee(k, ctx), types.ListTokenCommand{
		TokenDenom: tokenDenom,
		Symbol:     "TOK",
	}))

	ms := keeper.NewMsgServerImpl(*k)
	resp, err := ms.Vote(ctx, types.NewMsgVote(bob, tokenDenom))
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.TotalVotes)
	require.False(t, resp.Promoted)
}
