package types

// Event types for the swap module
const (
	EventTypeDeposit          = "swap_deposit"
	EventTypeTransferOut      = "swap_transfer_out"
	EventTypePairCreated      = "swap_pair_created"
	EventTypeLiquidityAdded   = "swap_liquidity_added"
	EventTypeLiquidityRemoved = "swap_liquidity_removed"
	EventTypeSwap             = "swap_executed"
	EventTypeApprove          = "swap_approve"
	EventTypeCancelApprove    = "swap_cancel_approve"
	EventTypeListingProposed  = "swap_listing_proposed"
	EventTypeVote             = "swap_listing_vote"
	EventTypeListingPromoted  = "swap_listing_promoted"
)

// Event attribute keys
const (
	AttributeKeySender     = "sender"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyToken      = "token_denom"
	AttributeKeyAmount     = "amount"
	AttributeKeyAmountIn   = "amount_in"
	AttributeKeyAmountOut  = "amount_out"
	AttributeKeyMemo       = "memo"
	AttributeKeyShares     = "shares"
	AttributeKeyVoter      = "voter"
	AttributeKeyTotalVotes = "total_votes"
)
