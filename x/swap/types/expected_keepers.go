package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// BankKeeper is the slice of the external asset ledger the swap module
// relies on. The ledger holds the authoritative balances backing the
// module's reserve and allowance bookkeeping; the module only ever
// pushes funds out of its own account and queries currency existence
// and precision. Custody increase happens exclusively through inbound
// funding events, never through a pull issued here.
type BankKeeper interface {
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	HasSupply(ctx context.Context, denom string) bool
	GetDenomMetaData(ctx context.Context, denom string) (banktypes.Metadata, bool)
}
