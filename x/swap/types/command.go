package types

import (
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Instruction action names. These form the wire vocabulary of funding
// event instructions and must not change across releases.
const (
	ActionCreatePair      = "create_pair"
	ActionAddLiquidity    = "add_liquidity"
	ActionRemoveLiquidity = "remove_liquidity"
	ActionBaseToToken     = "eos_to_token"
	ActionTokenToBase     = "token_to_eos"
	ActionTokenToToken    = "token_to_token"
	ActionApprove         = "approve"
	ActionCancelApprove   = "cancel_approve"
	ActionListToken       = "apply"
)

// Command is one parsed funding event instruction. The set of
// implementations is closed; the dispatcher switches over it.
type Command interface {
	isCommand()
}

// CreatePairCommand seeds the first liquidity of a promoted pair. The
// deposited base amount becomes the base reserve; MaxTokens of the
// paired currency are pulled from the sender's escrow allowance.
type CreatePairCommand struct {
	TokenDenom string
	Deadline   uint64
	MaxTokens  uint64
}

// AddLiquidityCommand adds liquidity to an initialized pair, bounded by
// the sender's slippage declarations.
type AddLiquidityCommand struct {
	TokenDenom   string
	Deadline     uint64
	MinLiquidity uint64
	MaxTokens    uint64
}

// RemoveLiquidityCommand burns Amount liquidity units for a
// proportional share of both reserves.
type RemoveLiquidityCommand struct {
	TokenDenom string
	Amount     uint64
	MinBase    uint64
	MinTokens  uint64
	Deadline   uint64
}

// BaseToTokenCommand swaps the deposited base amount for the paired
// currency.
type BaseToTokenCommand struct {
	TokenDenom string
	Deadline   uint64
	MinTokens  uint64
}

// TokenToBaseCommand swaps the deposited token for base currency. The
// pair is inferred from the deposited currency, so it carries no denom.
type TokenToBaseCommand struct {
	Deadline uint64
	MinBase  uint64
}

// TokenToTokenCommand sells the deposited token for base internally,
// then buys BoughtDenom with the intermediate base amount.
type TokenToTokenCommand struct {
	BoughtDenom     string
	Deadline        uint64
	MinTokensBought uint64
	MinBaseBought   uint64
}

// ApproveCommand places the deposited tokens into the sender's escrow
// allowance for the deposited currency's pair.
type ApproveCommand struct{}

// CancelApproveCommand erases the sender's allowance for TokenDenom and
// returns its balance.
type CancelApproveCommand struct {
	TokenDenom string
}

// ListTokenCommand proposes a currency for listing; the deposit must be
// exactly the listing fee.
type ListTokenCommand struct {
	TokenDenom string
	Symbol     string
}

func (CreatePairCommand) isCommand()      {}
func (AddLiquidityCommand) isCommand()    {}
func (RemoveLiquidityCommand) isCommand() {}
func (BaseToTokenCommand) isCommand()     {}
func (TokenToBaseCommand) isCommand()     {}
func (TokenToTokenCommand) isCommand()    {}
func (ApproveCommand) isCommand()         {}
func (CancelApproveCommand) isCommand()   {}
func (ListTokenCommand) isCommand()       {}

// instructionFields gives positional access to the key:value tokens
// following the action token.
type instructionFields struct {
	keys []string
	vals []string
}

func (f instructionFields) denom(i int, key string) (string, error) {
	v, err := f.value(i, key)
	if err != nil {
		return "", err
	}
	if err := sdk.ValidateDenom(v); err != nil {
		return "", ErrInvalidInstruction.Wrapf("field %q: invalid denom %q", key, v)
	}
	return v, nil
}

func (f instructionFields) uint(i int, key string) (uint64, error) {
	v, err := f.value(i, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, ErrInvalidInstruction.Wrapf("field %q: %q is not a valid amount", key, v)
	}
	return n, nil
}

func (f instructionFields) value(i int, key string) (string, error) {
	if i >= len(f.keys) {
		return "", ErrInvalidInstruction.Wrapf("missing field %q", key)
	}
	if f.keys[i] != key {
		return "", ErrInvalidInstruction.Wrapf("expected field %q at position %d, got %q", key, i+1, f.keys[i])
	}
	return f.vals[i], nil
}

// ParseInstruction parses a non-empty instruction string into a typed
// command. The first token must be action:<name>. An unknown action
// name yields (nil, nil): the deposit is accepted with no further
// action. A malformed or incomplete instruction fails the whole event.
func ParseInstruction(instruction string) (Command, error) {
	tokens := strings.Split(instruction, ",")

	fields := instructionFields{
		keys: make([]string, 0, len(tokens)),
		vals: make([]string, 0, len(tokens)),
	}
	for _, tok := range tokens {
		key, val, found := strings.Cut(tok, ":")
		if !found {
			return nil, ErrInvalidInstruction.Wrapf("token %q is not key:value", tok)
		}
		fields.keys = append(fields.keys, key)
		fields.vals = append(fields.vals, val)
	}

	if fields.keys[0] != "action" {
		return nil, ErrInvalidInstruction.Wrap("instruction must start with action:<name>")
	}
	action := fields.vals[0]

	// Drop the action token so required fields are positional from 0.
	fields.keys = fields.keys[1:]
	fields.vals = fields.vals[1:]

	switch action {
	case ActionCreatePair:
		return parseCreatePair(fields)
	case ActionAddLiquidity:
		return parseAddLiquidity(fields)
	case ActionRemoveLiquidity:
		return parseRemoveLiquidity(fields)
	case ActionBaseToToken:
		return parseBaseToToken(fields)
	case ActionTokenToBase:
		return parseTokenToBase(fields)
	case ActionTokenToToken:
		return parseTokenToToken(fields)
	case ActionApprove:
		return ApproveCommand{}, nil
	case ActionCancelApprove:
		return parseCancelApprove(fields)
	case ActionListToken:
		return parseListToken(fields)
	default:
		// Unknown actions are a no-op: the funds are accepted as a
		// plain deposit and no pool action is taken.
		return nil, nil
	}
}

func parseCreatePair(f instructionFields) (Command, error) {
	var (
		cmd CreatePairCommand
		err error
	)
	if cmd.TokenDenom, err = f.denom(0, "token_contract"); err != nil {
		return nil, err
	}
	if cmd.Deadline, err = f.uint(1, "deadline"); err != nil {
		return nil, err
	}
	if cmd.MaxTokens, err = f.uint(2, "max_tokens"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseAddLiquidity(f instructionFields) (Command, error) {
	var (
		cmd AddLiquidityCommand
		err error
	)
	if cmd.TokenDenom, err = f.denom(0, "token_contract"); err != nil {
		return nil, err
	}
	if cmd.Deadline, err = f.uint(1, "deadline"); err != nil {
		return nil, err
	}
	if cmd.MinLiquidity, err = f.uint(2, "min_liquidity"); err != nil {
		return nil, err
	}
	if cmd.MaxTokens, err = f.uint(3, "max_tokens"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseRemoveLiquidity(f instructionFields) (Command, error) {
	var (
		cmd RemoveLiquidityCommand
		err error
	)
	if cmd.TokenDenom, err = f.denom(0, "token_contract"); err != nil {
		return nil, err
	}
	if cmd.Amount, err = f.uint(1, "amount"); err != nil {
		return nil, err
	}
	if cmd.MinBase, err = f.uint(2, "min_eos"); err != nil {
		return nil, err
	}
	if cmd.MinTokens, err = f.uint(3, "min_tokens"); err != nil {
		return nil, err
	}
	if cmd.Deadline, err = f.uint(4, "deadline"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseBaseToToken(f instructionFields) (Command, error) {
	var (
		cmd BaseToTokenCommand
		err error
	)
	if cmd.TokenDenom, err = f.denom(0, "token_contract"); err != nil {
		return nil, err
	}
	if cmd.Deadline, err = f.uint(1, "deadline"); err != nil {
		return nil, err
	}
	if cmd.MinTokens, err = f.uint(2, "min_tokens"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseTokenToBase(f instructionFields) (Command, error) {
	var (
		cmd TokenToBaseCommand
		err error
	)
	if cmd.Deadline, err = f.uint(0, "deadline"); err != nil {
		return nil, err
	}
	if cmd.MinBase, err = f.uint(1, "min_eos"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseTokenToToken(f instructionFields) (Command, error) {
	var (
		cmd TokenToTokenCommand
		err error
	)
	if cmd.BoughtDenom, err = f.denom(0, "token_contract"); err != nil {
		return nil, err
	}
	if cmd.Deadline, err = f.uint(1, "deadline"); err != nil {
		return nil, err
	}
	if cmd.MinTokensBought, err = f.uint(2, "min_tokens_bought"); err != nil {
		return nil, err
	}
	if cmd.MinBaseBought, err = f.uint(3, "min_eos_bought"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseCancelApprove(f instructionFields) (Command, error) {
	var (
		cmd CancelApproveCommand
		err error
	)
	if cmd.TokenDenom, err = f.denom(0, "token_contract"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseListToken(f instructionFields) (Command, error) {
	var (
		cmd ListTokenCommand
		err error
	)
	if cmd.TokenDenom, err = f.denom(0, "token_contract"); err != nil {
		return nil, err
	}
	if cmd.Symbol, err = f.value(1, "symbol_code"); err != nil {
		return nil, err
	}
	if cmd.Symbol == "" {
		return nil, ErrInvalidInstruction.Wrap("field \"symbol_code\": cannot be empty")
	}
	return cmd, nil
}
