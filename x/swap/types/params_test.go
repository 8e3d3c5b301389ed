package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swapnet-labs/swapnet/x/swap/types"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.BaseDenom = ""
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.FeeDenominator = 0
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.FeeNumerator = p.FeeDenominator + 1
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.ListingQuorum = 0
	require.Error(t, p.Validate())
}
