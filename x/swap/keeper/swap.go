package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

// getInputPrice quotes the output amount for a given input against a
// reserve pair under the constant-product rule, with the fee applied
// to the input side and the result truncated toward zero.
func (k Keeper) getInputPrice(ctx sdk.Context, input, inputReserve, outputReserve uint64) (uint64, error) {
	if inputReserve == 0 || outputReserve == 0 {
		return 0, types.ErrInsufficientReserve.Wrap("empty reserve")
	}
	params := k.GetParams(ctx)

	inputWithFee, err := safeMul(input, params.FeeNumerator)
	if err != nil {
		return 0, err
	}
	numerator, err := safeMul(inputWithFee, outputReserve)
	if err != nil {
		return 0, err
	}
	scaledReserve, err := safeMul(inputReserve, params.FeeDenominator)
	if err != nil {
		return 0, err
	}
	denominator, err := safeAdd(scaledReserve, inputWithFee)
	if err != nil {
		return 0, err
	}
	return safeDiv(numerator, denominator)
}

// SwapBaseToToken sells the deposited base currency for the pair's
// token and transfers the proceeds to the sender.
func (k Keeper) SwapBaseToToken(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin, cmd types.BaseToTokenCommand) error {
	if cmd.MinTokens == 0 {
		return types.ErrInvalidAmount.Wrap("invalid min_tokens")
	}
	if err := k.checkDeadline(ctx, cmd.Deadline); err != nil {
		return err
	}

	pair, found := k.GetPair(ctx, cmd.TokenDenom)
	if !found {
		return types.ErrPairNotFound.Wrapf("%s has not been listed", cmd.TokenDenom)
	}

	inputAmount, err := coinMagnitude(deposit)
	if err != nil {
		return err
	}
	tokensBought, err := k.getInputPrice(ctx, inputAmount, pair.BaseReserve, pair.TokenReserve)
	if err != nil {
		return err
	}
	if tokensBought < cmd.MinTokens {
		return types.ErrSlippage.Wrapf("bought %d, min_tokens %d", tokensBought, cmd.MinTokens)
	}

	pair.BaseReserve, err = safeAdd(pair.BaseReserve, inputAmount)
	if err != nil {
		return err
	}
	pair.TokenReserve, err = safeSub(pair.TokenReserve, tokensBought)
	if err != nil {
		return err
	}
	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}

	out := sdk.NewCoin(pair.TokenDenom, sdkIntFromUint64(tokensBought))
	if err := k.sendFunds(ctx, from, out, "buy token"); err != nil {
		return err
	}

	k.emitSwap(ctx, from, pair.TokenDenom, deposit, out)
	return nil
}

// SwapTokenToBase sells the deposited token for base currency. The
// deposit currency must match the traded pair.
func (k Keeper) SwapTokenToBase(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin, cmd types.TokenToBaseCommand) error {
	if cmd.MinBase == 0 {
		return types.ErrInvalidAmount.Wrap("invalid min_eos")
	}
	if err := k.checkDeadline(ctx, cmd.Deadline); err != nil {
		return err
	}

	pair, found := k.GetPair(ctx, deposit.Denom)
	if !found {
		return types.ErrPairNotFound.Wrapf("%s has not been listed", deposit.Denom)
	}

	inputAmount, err := coinMagnitude(deposit)
	if err != nil {
		return err
	}
	baseBought, err := k.getInputPrice(ctx, inputAmount, pair.TokenReserve, pair.BaseReserve)
	if err != nil {
		return err
	}
	if baseBought < cmd.MinBase {
		return types.ErrSlippage.Wrapf("bought %d, min_eos %d", baseBought, cmd.MinBase)
	}

	pair.TokenReserve, err = safeAdd(pair.TokenReserve, inputAmount)
	if err != nil {
		return err
	}
	pair.BaseReserve, err = safeSub(pair.BaseReserve, baseBought)
	if err != nil {
		return err
	}
	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}

	params := k.GetParams(ctx)
	out := sdk.NewCoin(params.BaseDenom, sdkIntFromUint64(baseBought))
	if err := k.sendFunds(ctx, from, out, "sell token"); err != nil {
		return err
	}

	k.emitSwap(ctx, from, deposit.Denom, deposit, out)
	return nil
}

// SwapTokenToToken sells the deposited token for base through its own
// pair and immediately buys the target token with the proceeds. Both
// legs reprice their pool; only the final output leaves the module.
func (k Keeper) SwapTokenToToken(ctx sdk.Context, from sdk.AccAddress, deposit sdk.Coin, cmd types.TokenToTokenCommand) error {
	if cmd.MinTokensBought == 0 {
		return types.ErrInvalidAmount.Wrap("invalid min_tokens_bought")
	}
	if cmd.MinBaseBought == 0 {
		return types.ErrInvalidAmount.Wrap("invalid min_eos_bought")
	}
	if err := k.checkDeadline(ctx, cmd.Deadline); err != nil {
		return err
	}
	if deposit.Denom == cmd.BoughtDenom {
		return types.ErrSameToken.Wrap("cannot trade a token against itself")
	}

	sellPair, found := k.GetPair(ctx, deposit.Denom)
	if !found {
		return types.ErrPairNotFound.Wrapf("%s has not been listed", deposit.Denom)
	}
	buyPair, found := k.GetPair(ctx, cmd.BoughtDenom)
	if !found {
		return types.ErrPairNotFound.Wrapf("%s has not been listed", cmd.BoughtDenom)
	}

	inputAmount, err := coinMagnitude(deposit)
	if err != nil {
		return err
	}

	baseBought, err := k.getInputPrice(ctx, inputAmount, sellPair.TokenReserve, sellPair.BaseReserve)
	if err != nil {
		return err
	}
	if baseBought < cmd.MinBaseBought {
		return types.ErrSlippage.Wrapf("intermediate %d, min_eos_bought %d", baseBought, cmd.MinBaseBought)
	}

	sellPair.TokenReserve, err = safeAdd(sellPair.TokenReserve, inputAmount)
	if err != nil {
		return err
	}
	sellPair.BaseReserve, err = safeSub(sellPair.BaseReserve, baseBought)
	if err != nil {
		return err
	}
	if err := k.SetPair(ctx, sellPair); err != nil {
		return err
	}

	tokensBought, err := k.getInputPrice(ctx, baseBought, buyPair.BaseReserve, buyPair.TokenReserve)
	if err != nil {
		return err
	}
	if tokensBought < cmd.MinTokensBought {
		return types.ErrSlippage.Wrapf("bought %d, min_tokens_bought %d", tokensBought, cmd.MinTokensBought)
	}

	buyPair.BaseReserve, err = safeAdd(buyPair.BaseReserve, baseBought)
	if err != nil {
		return err
	}
	buyPair.TokenReserve, err = safeSub(buyPair.TokenReserve, tokensBought)
	if err != nil {
		return err
	}
	if err := k.SetPair(ctx, buyPair); err != nil {
		return err
	}

	out := sdk.NewCoin(buyPair.TokenDenom, sdkIntFromUint64(tokensBought))
	if err := k.sendFunds(ctx, from, out, "convert token"); err != nil {
		return err
	}

	k.emitSwap(ctx, from, cmd.BoughtDenom, deposit, out)
	return nil
}

func (k Keeper) emitSwap(ctx sdk.Context, from sdk.AccAddress, denom string, in, out sdk.Coin) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyAmountIn, in.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, out.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.SwapsExecuted.WithLabelValues(denom).Inc()
		if v, ok := outMagnitude(out); ok {
			k.metrics.SwapVolume.WithLabelValues(denom).Add(v)
		}
	}
}

// outMagnitude is a metrics-only conversion; values beyond uint64 are
// skipped rather than reported wrong.
func outMagnitude(c sdk.Coin) (float64, bool) {
	if !c.Amount.IsUint64() {
		return 0, false
	}
	return float64(c.Amount.Uint64()), true
}
