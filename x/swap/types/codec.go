package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc is the amino codec used for the module's store records and
// genesis JSON. The record types are plain structs, so amino handles
// them without generated code.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
}

// RegisterLegacyAminoCodec registers the swap module's concrete types
// on the given codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgVote{}, "swap/MsgVote", nil)
}
