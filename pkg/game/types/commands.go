package types

// SpeedTier selects one of the player's movement speeds.
type SpeedTier uint8

const (
	SpeedStop SpeedTier = iota
	SpeedSlow
	SpeedMedium
	SpeedFast
)

// RangeTier selects one of the player's missile ranges.
type RangeTier uint8

const (
	RangeNone RangeTier = iota
	RangeShort
	RangeMedium
	RangeLong
)

// PowerTier selects one of the player's missile powers.
type PowerTier uint8

const (
	PowerNone PowerTier = iota
	PowerLow
	PowerMedium
	PowerHigh
)
