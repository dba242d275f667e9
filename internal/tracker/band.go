package tracker

// Band is a named bucket of completion percentage used for color-coding
// progress displays.
type Band string

const (
	BandLow      Band = "low"
	BandElevated Band = "elevated"
	BandMid      Band = "mid"
	BandHigh     Band = "high"
	BandComplete Band = "complete"
)

// BandFor maps a completion ratio (0..100) to its band. The 99 boundary is
// part of the contract: 99 and 100 both map to "complete", 98 does not.
func BandFor(ratio int) Band {
	switch {
	case ratio < 25:
		return BandLow
	case ratio < 50:
		return BandElevated
	case ratio < 75:
		return BandMid
	case ratio < 99:
		return BandHigh
	default:
		return BandComplete
	}
}
