package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PairKeyPrefix is the prefix for trading pair records, keyed by
	// the paired currency's denom.
	PairKeyPrefix = []byte{0x01}

	// ListingKeyPrefix is the prefix for pending listing records.
	ListingKeyPrefix = []byte{0x02}

	// ShareKeyPrefix is the prefix for liquidity share records, keyed
	// by (denom, provider).
	ShareKeyPrefix = []byte{0x03}

	// AllowanceKeyPrefix is the prefix for escrow allowance records,
	// keyed by (denom, owner).
	AllowanceKeyPrefix = []byte{0x04}

	// VoteKeyPrefix is the prefix for listing vote records, keyed by
	// (denom, voter).
	VoteKeyPrefix = []byte{0x05}

	// ParamsKey is the key for module parameters.
	ParamsKey = []byte{0x06}
)

// PairKey returns the store key for a trading pair.
func PairKey(denom string) []byte {
	return append(PairKeyPrefix, []byte(denom)...)
}

// ListingKey returns the store key for a pending listing.
func ListingKey(denom string) []byte {
	return append(ListingKeyPrefix, []byte(denom)...)
}

// ShareKey returns the store key for a provider's liquidity share.
// The denom segment is length-prefixed so (denom, account) pairs
// cannot collide across denom boundaries.
func ShareKey(denom string, provider sdk.AccAddress) []byte {
	return accountScopedKey(ShareKeyPrefix, denom, provider)
}

// ShareKeyDenomPrefix returns the iteration prefix covering every
// share record of one pair.
func ShareKeyDenomPrefix(denom string) []byte {
	return denomScopedPrefix(ShareKeyPrefix, denom)
}

// AllowanceKey returns the store key for an owner's escrow allowance.
func AllowanceKey(denom string, owner sdk.AccAddress) []byte {
	return accountScopedKey(AllowanceKeyPrefix, denom, owner)
}

// AllowanceKeyDenomPrefix returns the iteration prefix covering every
// allowance of one pair.
func AllowanceKeyDenomPrefix(denom string) []byte {
	return denomScopedPrefix(AllowanceKeyPrefix, denom)
}

// VoteKey returns the store key for one listing vote.
func VoteKey(denom string, voter sdk.AccAddress) []byte {
	return accountScopedKey(VoteKeyPrefix, denom, voter)
}

// VoteKeyDenomPrefix returns the iteration prefix covering every vote
// for one candidate.
func VoteKeyDenomPrefix(denom string) []byte {
	return denomScopedPrefix(VoteKeyPrefix, denom)
}

func denomScopedPrefix(prefix []byte, denom string) []byte {
	key := make([]byte, 0, len(prefix)+1+len(denom))
	key = append(key, prefix...)
	key = append(key, byte(len(denom)))
	key = append(key, []byte(denom)...)
	return key
}

func accountScopedKey(prefix []byte, denom string, account sdk.AccAddress) []byte {
	key := denomScopedPrefix(prefix, denom)
	return append(key, account.Bytes()...)
}

// splitAccountScopedKey recovers (denom, account) from a key built by
// accountScopedKey under the given prefix.
func splitAccountScopedKey(key, prefix []byte) (string, sdk.AccAddress) {
	rest := key[len(prefix):]
	denomLen := int(rest[0])
	denom := string(rest[1 : 1+denomLen])
	account := sdk.AccAddress(rest[1+denomLen:])
	return denom, account
}
