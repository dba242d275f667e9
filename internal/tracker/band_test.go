package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor_Boundaries(t *testing.T) {
	tests := []struct {
		ratio int
		want  Band
	}{
		{0, BandLow},
		{24, BandLow},
		{25, BandElevated},
		{35, BandElevated},
		{49, BandElevated},
		{50, BandMid},
		{74, BandMid},
		{75, BandHigh},
		{98, BandHigh},
		{99, BandComplete},
		{100, BandComplete},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, BandFor(tc.ratio), "ratio %d", tc.ratio)
	}
}
