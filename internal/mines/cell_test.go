package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellStatePredicates(t *testing.T) {
	tests := []struct {
		state                  CellState
		mined, flagged, opened bool
	}{
		{Empty, false, false, false},
		{Mined, true, false, false},
		{Flagged, false, true, false},
		{Open, false, false, true},
		{OpenMine, true, false, true},
		{FlaggedMine, true, true, false},
	}
	for _, test := range tests {
		t.Run(test.state.String(), func(t *testing.T) {
			assert.Equal(t, test.mined, test.state.IsMined())
			assert.Equal(t, test.flagged, test.state.IsFlagged())
			assert.Equal(t, test.opened, test.state.IsOpen())
			assert.Equal(t, !test.opened, test.state.IsHidden())
		})
	}
}

func TestCellStateBits(t *testing.T) {
	assert.Equal(t, OpenMine, Mined.With(Open))
	assert.Equal(t, FlaggedMine, Mined.Toggle(Flagged))
	assert.Equal(t, Mined, FlaggedMine.Toggle(Flagged))
	assert.Equal(t, Mined, OpenMine.Without(Open))
	assert.True(t, OpenMine.Has(Mined))
	assert.True(t, OpenMine.Has(OpenMine))
	assert.False(t, OpenMine.Has(FlaggedMine))
	assert.Equal(t, "CellState(6)", (Open | Flagged).String())
}
