package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the swap module
type Metrics struct {
	// Funding and escrow metrics
	FundingEvents     prometheus.Counter
	AllowancesGranted *prometheus.CounterVec

	// Swap metrics
	SwapsExecuted *prometheus.CounterVec
	SwapVolume    *prometheus.CounterVec

	// Liquidity metrics
	PairsCreated     prometheus.Counter
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec

	// Listing metrics
	ListingsProposed prometheus.Counter
	ListingsPromoted prometheus.Counter
}

var (
	swapMetricsOnce sync.Once
	swapMetrics     *Metrics
)

// NewMetrics creates and registers swap metrics (singleton pattern)
func NewMetrics() *Metrics {
	swapMetricsOnce.Do(func() {
		swapMetrics = &Metrics{
			FundingEvents: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "funding_events_total",
					Help:      "Total number of funding events accepted",
				},
			),
			AllowancesGranted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "allowances_granted_total",
					Help:      "Total number of escrow approvals granted",
				},
				[]string{"token_denom"},
			),
			SwapsExecuted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"token_denom"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "swap_volume_total",
					Help:      "Total swap output volume in minimal units",
				},
				[]string{"token_denom"},
			),
			PairsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "pairs_created_total",
					Help:      "Total number of pairs that received initial liquidity",
				},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "liquidity_added_total",
					Help:      "Total base currency added as liquidity",
				},
				[]string{"token_denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "liquidity_removed_total",
					Help:      "Total base currency withdrawn from liquidity",
				},
				[]string{"token_denom"},
			),
			ListingsProposed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "listings_proposed_total",
					Help:      "Total number of listing applications opened",
				},
			),
			ListingsPromoted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "swapnet",
					Subsystem: "swap",
					Name:      "listings_promoted_total",
					Help:      "Total number of listings promoted to trading pairs",
				},
			),
		}
	})
	return swapMetrics
}
