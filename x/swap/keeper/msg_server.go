package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the swap MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Vote handles a listing vote transaction
func (ms msgServer) Vote(ctx sdk.Context, msg *types.MsgVote) (*types.MsgVoteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Vote: validate: %w", err)
	}

	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		return nil, fmt.Errorf("Vote: invalid voter address: %w", err)
	}

	if err := ms.Keeper.Vote(ctx, voter, msg.TokenDenom); err != nil {
		return nil, fmt.Errorf("Vote: %w", err)
	}

	// The candidate disappears on promotion, so its absence after a
	// successful vote means the quorum was reached.
	listing, found := ms.Keeper.GetListing(ctx, msg.TokenDenom)
	if !found {
		quorum := ms.Keeper.GetParams(ctx).ListingQuorum
		return &types.MsgVoteResponse{TotalVotes: quorum, Promoted: true}, nil
	}
	return &types.MsgVoteResponse{TotalVotes: listing.TotalVotes}, nil
}
