// Package keeper implements the swap module keeper.
//
// The swap module is a memo-driven constant-product exchange. Every
// currency trades against the chain's base currency in its own pool,
// and every operation is funded by a transfer into the module's
// custody account whose memo carries the instruction.
//
// # Core Functionality
//
// Funding events: HandleFundingEvent is the single entry point. It
// parses the transfer memo into a typed command and routes it; a
// transfer with no memo or an unknown action is accepted as a plain
// deposit.
//
// Escrow allowances: Token-side funds are supplied pull-style. An
// approve deposit builds an allowance, pair initialization and
// liquidity provision consume it, and cancel_approve refunds whatever
// remains.
//
// Liquidity pools: create_pair seeds a promoted pair, add_liquidity
// joins at the reserve ratio plus one minimal token unit, and
// remove_liquidity burns liquidity units for a proportional cut of
// both reserves.
//
// Token swaps: eos_to_token, token_to_eos and token_to_token price
// through the constant-product formula with a 997/1000 input-side fee
// and truncating division.
//
// Listing gate: apply opens a candidate for a fixed base-currency fee;
// one hundred distinct votes promote it into an empty trading pair.
//
// # Arithmetic
//
// All pool, share and allowance math is checked uint64 arithmetic. Any
// overflow, underflow or division by zero aborts the invocation, and
// the hosting transaction discards every write of a failed invocation.
//
// # Metrics
//
// The keeper optionally exposes Prometheus counters for funding
// events, swaps, liquidity changes and listings via Metrics.
package keeper
