package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the full exported state of the swap module.
type GenesisState struct {
	Params     Params                 `json:"params"`
	Pairs      []TradingPair          `json:"pairs"`
	Listings   []PendingListing       `json:"listings"`
	Shares     []LiquidityShareRecord `json:"shares"`
	Allowances []AllowanceRecord      `json:"allowances"`
	Votes      []VoteRecord           `json:"votes"`
}

// DefaultGenesis returns the default genesis state for the swap module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pairs:      []TradingPair{},
		Listings:   []PendingListing{},
		Shares:     []LiquidityShareRecord{},
		Allowances: []AllowanceRecord{},
		Votes:      []VoteRecord{},
	}
}

// Validate ensures the genesis state is well-formed: records are
// structurally valid, each currency appears as a pair or a listing but
// never both, and per-pair share sums equal the pair's total supply.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	pairs := make(map[string]TradingPair, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return err
		}
		if pair.TokenDenom == gs.Params.BaseDenom {
			return fmt.Errorf("pair %s: base currency cannot be paired with itself", pair.TokenDenom)
		}
		if _, ok := pairs[pair.TokenDenom]; ok {
			return fmt.Errorf("duplicate pair for %s", pair.TokenDenom)
		}
		pairs[pair.TokenDenom] = pair
	}

	listings := make(map[string]PendingListing, len(gs.Listings))
	for _, listing := range gs.Listings {
		if err := listing.Validate(); err != nil {
			return err
		}
		if _, ok := pairs[listing.TokenDenom]; ok {
			return fmt.Errorf("%s is both listed and pending", listing.TokenDenom)
		}
		if _, ok := listings[listing.TokenDenom]; ok {
			return fmt.Errorf("duplicate listing for %s", listing.TokenDenom)
		}
		if listing.TotalVotes >= gs.Params.ListingQuorum {
			return fmt.Errorf("listing %s reached quorum without promotion", listing.TokenDenom)
		}
		listings[listing.TokenDenom] = listing
	}

	shareSums := make(map[string]uint64, len(pairs))
	for _, share := range gs.Shares {
		if _, err := sdk.AccAddressFromBech32(share.Provider); err != nil {
			return fmt.Errorf("share record for %s: invalid provider: %w", share.TokenDenom, err)
		}
		if _, ok := pairs[share.TokenDenom]; !ok {
			return fmt.Errorf("share record references unknown pair %s", share.TokenDenom)
		}
		sum := shareSums[share.TokenDenom] + share.Shares
		if sum < shareSums[share.TokenDenom] {
			return fmt.Errorf("share sum overflow for pair %s", share.TokenDenom)
		}
		shareSums[share.TokenDenom] = sum
	}
	for denom, pair := range pairs {
		if shareSums[denom] != pair.TotalShares {
			return fmt.Errorf("pair %s: share sum %d does not equal total supply %d",
				denom, shareSums[denom], pair.TotalShares)
		}
	}

	for _, allowance := range gs.Allowances {
		if _, err := sdk.AccAddressFromBech32(allowance.Owner); err != nil {
			return fmt.Errorf("allowance for %s: invalid owner: %w", allowance.TokenDenom, err)
		}
		if allowance.Amount == 0 {
			return fmt.Errorf("allowance for %s/%s: exhausted allowances must be erased",
				allowance.TokenDenom, allowance.Owner)
		}
		if _, ok := pairs[allowance.TokenDenom]; !ok {
			return fmt.Errorf("allowance references unknown pair %s", allowance.TokenDenom)
		}
	}

	voteCounts := make(map[string]uint64, len(listings))
	seenVotes := make(map[string]struct{}, len(gs.Votes))
	for _, vote := range gs.Votes {
		if _, err := sdk.AccAddressFromBech32(vote.Voter); err != nil {
			return fmt.Errorf("vote for %s: invalid voter: %w", vote.TokenDenom, err)
		}
		if _, ok := listings[vote.TokenDenom]; !ok {
			return fmt.Errorf("vote references unknown candidate %s", vote.TokenDenom)
		}
		key := vote.TokenDenom + "/" + vote.Voter
		if _, ok := seenVotes[key]; ok {
			return fmt.Errorf("duplicate vote by %s for %s", vote.Voter, vote.TokenDenom)
		}
		seenVotes[key] = struct{}{}
		voteCounts[vote.TokenDenom]++
	}
	for denom, listing := range listings {
		if voteCounts[denom] != listing.TotalVotes {
			return fmt.Errorf("candidate %s: %d vote records but tally is %d",
				denom, voteCounts[denom], listing.TotalVotes)
		}
	}

	return nil
}
