package pairing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdraw/pairing"
)

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, pairing.DefaultOptions().Validate())
	require.NoError(t, pairing.Options{}.Validate())

	bad := []func(o *pairing.Options){
		func(o *pairing.Options) { o.HistoryPenalty = -1 },
		func(o *pairing.Options) { o.InstitutionPenalty = -1 },
		func(o *pairing.Options) { o.SidePenalty = -5 },
		func(o *pairing.Options) { o.MaxTimesOnOneSide = -1 },
		func(o *pairing.Options) { o.SideAllocations = "coin-toss" },
		func(o *pairing.Options) { o.UnrankedRoomRank = "middle" },
	}
	for i, mutate := range bad {
		o := pairing.DefaultOptions()
		mutate(&o)
		assert.ErrorIs(t, o.Validate(), pairing.ErrInvalidOptions, "case %d", i)
	}
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "hist_2", pairing.Tag{Kind: pairing.TagHistory, Count: 2}.String())
	assert.Equal(t, "inst", pairing.Tag{Kind: pairing.TagInstitution}.String())
	assert.Equal(t, "side_imb_3", pairing.Tag{Kind: pairing.TagSideImbalance, Count: 3}.String())
	assert.Equal(t, "side_imb_-2", pairing.Tag{Kind: pairing.TagSideImbalance, Count: -2}.String())
	assert.Equal(t, "side_cap_4", pairing.Tag{Kind: pairing.TagSideCap, Count: 4}.String())
}
