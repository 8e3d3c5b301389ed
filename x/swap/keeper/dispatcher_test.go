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

func fundingEvent(k *keeper.Keeper, from sdk.AccAddress, amount sdk.Coin, instruction string) types.FundingEvent {
	return types.FundingEvent{
		From:        from,
		To:          k.GetModuleAddress(),
		Amount:      amount,
		Instruction: instruction,
	}
}

func TestHandleFundingEventPlainDeposit(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)

	err := k.HandleFundingEvent(ctx, fundingEvent(k, alice, coin(baseDenom, 100), ""))
	require.NoError(t, err)
}

func TestHandleFundingEventUnknownAction(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)

	err := k.HandleFundingEvent(ctx, fundingEvent(k, alice, coin(baseDenom, 100), "action:stake,amount:5"))
	require.NoError(t, err)
}

func TestHandleFundingEventMalformedInstruction(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)

	err := k.HandleFundingEvent(ctx, fundingEvent(k, alice, coin(baseDenom, 100), "not an instruction"))
	require.ErrorIs(t, err, types.ErrInvalidInstruction)

	// A known action missing a required field fails too.
	err = k.HandleFundingEvent(ctx, fundingEvent(k, alice, coin(baseDenom, 100),
		fmt.Sprintf("action:eos_to_token,token_contract:%s", tokenDenom)))
	require.ErrorIs(t, err, types.ErrInvalidInstruction)
}

func TestHandleFundingEventIgnoresUnrelatedTransfers(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)

	// Not addressed to the exchange.
	err := k.HandleFundingEvent(ctx, types.FundingEvent{
		From:        alice,
		To:          bob,
		Amount:      coin(baseDenom, 100),
		Instruction: "action:approve",
	})
	require.NoError(t, err)

	// Our own outbound transfer echoed back.
	err = k.HandleFundingEvent(ctx, types.FundingEvent{
		From:        k.GetModuleAddress(),
		To:          k.GetModuleAddress(),
		Amount:      coin(baseDenom, 100),
		Instruction: "returns",
	})
	require.NoError(t, err)
}

func TestHandleFundingEventCurrencyGates(t *testing.T) {
	k, ctx, _ := testkeeper.SwapKeeper(t)
	setupActivePair(t, k, ctx, tokenDenom)

	deadline := futureDeadline(ctx)

	// Base-funded actions reject token deposits.
	memo := fmt.Sprintf("action:eos_to_token,token_contract:%s,deadline:%d,min_tokens:1", tokenDenom, deadline)
	err := k.HandleFundingEvent(ctx, fundingEvent(k, bob, coin(tokenDenom, 100), memo))
	require.ErrorIs(t, err, types.ErrCurrencyMismatch)

	// Token-funded actions reject base deposits.
	memo = fmt.Sprintf("action:token_to_eos,deadline:%d,min_eos:1", deadline)
	err = k.HandleFundingEvent(ctx, fundingEvent(k, bob, coin(baseDenom, 100), memo))
	require.ErrorIs(t, err, types.ErrCurrencyMismatch)

	err = k.HandleFundingEvent(ctx, fundingEvent(k, bob, coin(baseDenom, 100), "action:approve"))
	require.ErrorIs(t, err, types.ErrCurrencyMismatch)
}

func TestHandleFundingEventFullFlow(t *testing.T) {
	k, ctx, bank := testkeeper.SwapKeeper(t)
	bank.RegisterToken(tokenDenom, "TOK", 4)

	fee := k.GetParams(ctx).ListingFee
	deadline := futureDeadline(ctx)

	// Apply for a listing and push it through the vote gate.
	memo := fmt.Sprintf("action:apply,token_contract:%s,symbol_code:TOK", tokenDenom)
	require.NoError(t, k.HandleFundingEvent(ctx, fundingEvent(k, alice, coin(baseDenom, fee), memo)))

	quorum := k.GetParams(ctx).ListingQuorum
	for i := uint64(0); i < quorum; i++ {
		require.NoError(t, k.Vote(ctx, voterAddr(int(i)), tokenDenom))
	}
	require.True(t, k.HasPair(ctx, tokenDenom))

	// Escrow tokens, then initialize the pair.
	require.NoError(t, k.HandleFundingEvent(ctx, fundingEvent(k, alice, coin(tokenDenom, 2_000_000), "action:approve")))

	memo = fmt.Sprintf("action:create_pair,token_contract:%s,deadline:%d,max_tokens:1000000", tokenDenom, deadline)
	require.NoError(t, k.HandleFundingEvent(ctx, fundingEvent(k, alice, coin(baseDenom, 1_000_000), memo)))

	// Trade against it.
	memo = fmt.Sprintf("action:eos_to_token,token_contract:%s,deadline:%d,min_tokens:1", tokenDenom, deadline)
	require.NoError(t, k.HandleFundingEvent(ctx, fundingEvent(k, bob, coin(baseDenom, 1_000), memo)))

	sent := lastSent(t, bank)
	require.Equal(t, bob, sent.Recipient)
	require.Equal(t, coin(tokenDenom, 996), sent.Amount[0])
}
