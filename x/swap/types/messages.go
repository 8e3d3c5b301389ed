package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgVote = "vote"
)

var _ sdk.Msg = &MsgVote{}

// MsgVote casts one listing vote for a candidate currency. The voter's
// authorization comes from the transaction signature; a voter may vote
// at most once per candidate and votes cannot be withdrawn.
type MsgVote struct {
	Voter      string `json:"voter"`
	TokenDenom string `json:"token_denom"`
}

// NewMsgVote builds a MsgVote.
func NewMsgVote(voter sdk.AccAddress, tokenDenom string) *MsgVote {
	return &MsgVote{
		Voter:      voter.String(),
		TokenDenom: tokenDenom,
	}
}

// Reset implements proto.Message.
func (m *MsgVote) Reset() { *m = MsgVote{} }

// String implements proto.Message.
func (m *MsgVote) String() string {
	return fmt.Sprintf("MsgVote{Voter: %s, TokenDenom: %s}", m.Voter, m.TokenDenom)
}

// ProtoMessage implements proto.Message.
func (*MsgVote) ProtoMessage() {}

// ValidateBasic performs stateless validation of MsgVote.
func (m *MsgVote) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Voter); err != nil {
		return fmt.Errorf("invalid voter address: %w", err)
	}
	if err := sdk.ValidateDenom(m.TokenDenom); err != nil {
		return fmt.Errorf("invalid candidate denom: %w", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgVote.
// Assumes address is valid (validated in ValidateBasic).
func (m *MsgVote) GetSigners() []sdk.AccAddress {
	voter, _ := sdk.AccAddressFromBech32(m.Voter)
	return []sdk.AccAddress{voter}
}

// MsgVoteResponse reports the tally after the vote landed.
type MsgVoteResponse struct {
	TotalVotes uint64 `json:"total_votes"`
	Promoted   bool   `json:"promoted"`
}

// MsgServer is the transaction surface of the swap module.
type MsgServer interface {
	Vote(ctx sdk.Context, msg *MsgVote) (*MsgVoteResponse, error)
}
