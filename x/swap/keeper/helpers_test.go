package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/swapnet-labs/swapnet/testutil/keeper"
	"github.com/swapnet-labs/swapnet/x/swap/keeper"
	"github.com/swapnet-labs/swapnet/x/swap/types"
)

const (
	baseDenom  = "uswp"
	tokenDenom = "utok"
	otherDenom = "uoth"
)

var (
	alice = sdk.AccAddress("alice_______________")
	bob   = sdk.AccAddress("bob_________________")
	carol = sdk.AccAddress("carol_______________")
)

func coin(denom string, amount uint64) sdk.Coin {
	return sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount))
}

// futureDeadline is safely past the harness block time.
func futureDeadline(ctx sdk.Context) uint64 {
	return uint64(ctx.BlockTime().Unix()) + 3600
}

// setupActivePair promotes a pair record for denom and funds it with
// initial liquidity from alice: 1,000,000 base against 1,000,000
// tokens, yielding 1,000,000 liquidity units.
func setupActivePair(t *testing.T, k *keeper.Keeper, ctx sdk.Context, denom string) {
	t.Helper()

	require.NoError(t, k.SetPair(ctx, types.TradingPair{TokenDenom: denom}))
	require.NoError(t, k.Approve(ctx, alice, coin(denom, 2_000_000)))
	require.NoError(t, k.CreatePair(ctx, alice, coin(baseDenom, 1_000_000), types.CreatePairCommand{
		TokenDenom: denom,
		Deadline:   futureDeadline(ctx),
		MaxTokens:  1_000_000,
	}))
}

// lastSent returns the most recent outbound transfer of the mock bank.
func lastSent(t *testing.T, bank *testkeeper.MockBankKeeper) testkeeper.SentCoin {
	t.Helper()
	require.NotEmpty(t, bank.Sent)
	return bank.Sent[len(bank.Sent)-1]
}
