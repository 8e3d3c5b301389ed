package keeper

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// HandleFundingEvent is the exchange's single entry point. The hosting
// app calls it for every transfer whose recipient is the module
// account; the carried instruction selects the operation and the
// transferred coin funds it. A nil error commits, any other error
// voids the whole invocation including the funding transfer.
func (k Keeper) HandleFundingEvent(ctx sdk.Context, ev types.FundingEvent) error {
	if err := ev.Validate(); err != nil {
		return types.ErrInvalidInstruction.Wrap(err.Error())
	}

	// Outbound and self transfers carry our own memos back to us.
	if !ev.To.Equals(k.moduleAddr) || ev.From.Equals(k.moduleAddr) {
		return nil
	}

	if strings.TrimSpace(ev.Instruction) == "" {
		k.emitDeposit(ctx, ev)
		return nil
	}

	cmd, err := types.ParseInstruction(ev.Instruction)
	if err != nil {
		return err
	}
	if cmd == nil {
		// Plain deposit, or an action we do not operate. Funds are
		// accepted and stay with the exchange.
		k.emitDeposit(ctx, ev)
		return nil
	}

	params := k.GetParams(ctx)

	switch c := cmd.(type) {
	case types.CreatePairCommand:
		if err := k.requireBase(params, ev.Amount, types.ActionCreatePair); err != nil {
			return err
		}
		err = k.CreatePair(ctx, ev.From, ev.Amount, c)
	case types.AddLiquidityCommand:
		if err := k.requireBase(params, ev.Amount, types.ActionAddLiquidity); err != nil {
			return err
		}
		err = k.AddLiquidity(ctx, ev.From, ev.Amount, c)
	case types.RemoveLiquidityCommand:
		err = k.RemoveLiquidity(ctx, ev.From, ev.Amount, c)
	case types.BaseToTokenCommand:
		if err := k.requireBase(params, ev.Amount, types.ActionBaseToToken); err != nil {
			return err
		}
		err = k.SwapBaseToToken(ctx, ev.From, ev.Amount, c)
	case types.TokenToBaseCommand:
		if err := k.requireToken(params, ev.Amount, types.ActionTokenToBase); err != nil {
			return err
		}
		err = k.SwapTokenToBase(ctx, ev.From, ev.Amount, c)
	case types.TokenToTokenCommand:
		if err := k.requireToken(params, ev.Amount, types.ActionTokenToToken); err != nil {
			return err
		}
		err = k.SwapTokenToToken(ctx, ev.From, ev.Amount, c)
	case types.ApproveCommand:
		if err := k.requireToken(params, ev.Amount, types.ActionApprove); err != nil {
			return err
		}
		err = k.Approve(ctx, ev.From, ev.Amount)
	case types.CancelApproveCommand:
		err = k.CancelApprove(ctx, ev.From, ev.Amount, c)
	case types.ListTokenCommand:
		if err := k.requireBase(params, ev.Amount, types.ActionListToken); err != nil {
			return err
		}
		err = k.ListToken(ctx, ev.From, ev.Amount, c)
	default:
		err = types.ErrInvalidInstruction.Wrapf("unhandled command %T", cmd)
	}
	if err != nil {
		return err
	}

	k.emitDeposit(ctx, ev)
	return nil
}

// requireBase gates actions that must be funded in base currency.
func (k Keeper) requireBase(params types.Params, deposit sdk.Coin, action string) error {
	if deposit.Denom != params.BaseDenom {
		return types.ErrCurrencyMismatch.Wrapf("%s must be funded with %s, got %s", action, params.BaseDenom, deposit.Denom)
	}
	return nil
}

// requireToken gates actions that must be funded with a listed token.
func (k Keeper) requireToken(params types.Params, deposit sdk.Coin, action string) error {
	if deposit.Denom == params.BaseDenom {
		return types.ErrCurrencyMismatch.Wrapf("%s cannot be funded with the base currency", action)
	}
	return nil
}

func (k Keeper) emitDeposit(ctx sdk.Context, ev types.FundingEvent) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeySender, ev.From.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, ev.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyMemo, ev.Instruction),
		),
	)
	if k.metrics != nil {
		k.metrics.FundingEvents.Inc()
	}
}
