package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"

	"github.com/swapnet-labs/swapnet/x/swap/keeper"
	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// SentCoin records one outbound transfer made through the mock bank.
type SentCoin struct {
	Recipient sdk.AccAddress
	Amount    sdk.Coins
}

// MockBankKeeper satisfies types.BankKeeper with in-memory fixtures.
// Outbound sends always succeed and are recorded for assertions.
type MockBankKeeper struct {
	Sent     []SentCoin
	Supplies map[string]bool
	Metadata map[string]banktypes.Metadata
}

// NewMockBankKeeper returns an empty mock bank.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		Supplies: make(map[string]bool),
		Metadata: make(map[string]banktypes.Metadata),
	}
}

// RegisterToken declares a live token supply with bank metadata at the
// given decimal precision.
func (m *MockBankKeeper) RegisterToken(denom, symbol string, precision uint32) {
	m.Supplies[denom] = true
	m.Metadata[denom] = banktypes.Metadata{
		Base:    denom,
		Display: symbol,
		Symbol:  symbol,
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: symbol, Exponent: precision},
		},
	}
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, _ string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	m.Sent = append(m.Sent, SentCoin{Recipient: recipientAddr, Amount: amt})
	return nil
}

func (m *MockBankKeeper) HasSupply(_ context.Context, denom string) bool {
	return m.Supplies[denom]
}

func (m *MockBankKeeper) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	meta, ok := m.Metadata[denom]
	return meta, ok
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

// SwapKeeper creates a test keeper for the swap module backed by an
// in-memory store and a mock bank.
func SwapKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	types.RegisterLegacyAminoCodec(cdc)

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(cdc, storeKey, bank)

	header := cmtproto.Header{Time: time.Unix(1700000000, 0)}
	ctx := sdk.NewContext(stateStore, header, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, ctx, bank
}
