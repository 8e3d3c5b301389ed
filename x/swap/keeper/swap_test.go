package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/swapnet-labs/swapnet/testutil/keeper"
	"github.com/swapnet-labs/swapnet/x/swap/types"
)

func TestGetInputPrice(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)

	// 1000 in against 1,000,000/1,000,000 reserves at the 997/1000 fee
	// yields 996 out, truncated.
	out, err := k.GetInputPrice(ctx, 1_000, 1_000_000, 1_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(996), out)

	out, err = k.GetInputPrice(ctx, 0, 1_000_000, 1_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(0), out)

	_, err = k.GetInputPrice(ctx, 1_000, 0, 1_000_000)
	require.ErrorIs(t, err, types.ErrInsufficientReserve)
}

func TestGetInputPriceProperties(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)

	rapid.Check(t, func(t *rapid.T) {
		// Ranges keep the fee-scaled intermediate products inside uint64.
		reserveIn := rapid.Uint64Range(1, 1<<40).Draw(t, "reserveIn")
		reserveOut := rapid.Uint64Range(1, 1<<32).Draw(t, "reserveOut")
		input := rapid.Uint64Range(1, 1<<20).Draw(t, "input")

		out, err := k.GetInputPrice(ctx, input, reserveIn, reserveOut)
		require.NoError(t, err)

		// The pool can never be drained below its last unit.
		require.Less(t, out, reserveOut)

		// More input never buys less output.
		bigger, err := k.GetInputPrice(ctx, input+1, reserveIn, reserveOut)
		require.NoError(t, err)
		require.GreaterOrEqual(t, bigger, out)
	})
}

func TestSwapBaseToToken(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	setupActivePair(t, k, ctx, tokenDenom)

	cmd := types.BaseToTokenCommand{
		TokenDenom: tokenDenom,
		Deadline:   futureDeadline(ctx),
		MinTokens:  1,
	}
	require.NoError(t, k.SwapBaseToToken(ctx, bob, coin(baseDenom, 1_000), cmd))

	pair, _ := k.GetPair(ctx, tokenDenom)
	require.Equal(t, uint64(1_001_000), pair.BaseReserve)
	require.Equal(t, uint64(999_004), pair.TokenReserve)

	sent := lastSent(t, bank)
	require.Equal(t, bob, sent.Recipient)
	require.Equal(t, coin(tokenDenom, 996), sent.Amount[0])
}

func TestSwapBaseToTokenSlippage(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)
	setupActivePair(t, k, ctx, tokenDenom)

	err := k.SwapBaseToToken(ctx, bob, coin(baseDenom, 1_000), types.BaseToTokenCommand{
		TokenDenom: tokenDenom,
		Deadline:   futureDeadline(ctx),
		MinTokens:  997,
	})
	require.ErrorIs(t, err, types.ErrSlippage)
}

func TestSwapTokenToBase(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	setupActivePair(t, k, ctx, tokenDenom)

	cmd := types.TokenToBaseCommand{
		Deadline: futureDeadline(ctx),
		MinBase:  1,
	}
	require.NoError(t, k.SwapTokenToBase(ctx, bob, coin(tokenDenom, 1_000), cmd))

	pair, _ := k.GetPair(ctx, tokenDenom)
	require.Equal(t, uint64(1_001_000), pair.TokenReserve)
	require.Equal(t, uint64(999_004), pair.BaseReserve)

	sent := lastSent(t, bank)
	require.Equal(t, coin(baseDenom, 996), sent.Amount[0])
}

func TestSwapTokenToToken(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	setupActivePair(t, k, ctx, tokenDenom)

	require.NoError(t, k.SetPair(ctx, types.TradingPair{TokenDenom: otherDenom}))
	require.NoError(t, k.Approve(ctx, alice, coin(otherDenom, 2_000_000)))
	require.NoError(t, k.CreatePair(ctx, alice, coin(baseDenom, 1_000_000), types.CreatePairCommand{
		TokenDenom: otherDenom,
		Deadline:   futureDeadline(ctx),
		MaxTokens:  1_000_000,
	}))

	cmd := types.TokenToTokenCommand{
		BoughtDenom:     otherDenom,
		Deadline:        futureDeadline(ctx),
		MinTokensBought: 1,
		MinBaseBought:   1,
	}
	require.NoError(t, k.SwapTokenToToken(ctx, bob, coin(tokenDenom, 1_000), cmd))

	// First leg: 1,000 tokens in, 996 base out of the sell pair.
	sellPair, _ := k.GetPair(ctx, tokenDenom)
	require.Equal(t, uint64(1_001_000), sellPair.TokenReserve)
	require.Equal(t, uint64(999_004), sellPair.BaseReserve)

	// Second leg: 996 base in, 992 tokens out of the buy pair.
	buyPair, _ := k.GetPair(ctx, otherDenom)
	require.Equal(t, uint64(1_000_996), buyPair.BaseReserve)
	require.Equal(t, uint64(999_008), buyPair.TokenReserve)

	sent := lastSent(t, bank)
	require.Equal(t, coin(otherDenom, 992), sent.Amount[0])
}

func TestSwapTokenToTokenSameToken(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)
	setupActivePair(t, k, ctx, tokenDenom)

	err := k.SwapTokenToToken(ctx, bob, coin(tokenDenom, 1_000), types.TokenToTokenCommand{
		BoughtDenom:     tokenDenom,
		Deadline:        futureDeadline(ctx),
		MinTokensBought: 1,
		MinBaseBought:   1,
	})
	require.ErrorIs(t, err, types.ErrSameToken)
}

func TestSwapUnlistedPair(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)

	err := k.SwapBaseToToken(ctx, bob, coin(baseDenom, 1_000), types.BaseToTokenCommand{
		TokenDenom: tokenDenom,
		Deadline:   futureDeadline(ctx),
		MinTokens:  1,
	})
	require.ErrorIs(t, err, types.ErrPairNotFound)
}
