package engine

import (
	"fmt"
	"math"

	"github.com/cbodonnell/arena/pkg/game/constants"
	"github.com/cbodonnell/arena/pkg/game/types"
)

// Config holds the static tuning of a game.
type Config struct {
	FieldWidth  float64
	FieldHeight float64
	WallThick   float64
	NumWalls    int
	NumNPCs     int

	PlayerWidth   float64
	PlayerHeight  float64
	NPCWidth      float64
	NPCHeight     float64
	MissileWidth  float64
	MissileHeight float64

	NPCSpeed       float64
	NPCMinMoveTime float64
	NPCMoveChance  float64
	MissileSpeed   float64

	HealthPlayer   float64
	HealthNPC      float64
	HealthWall     float64
	HealthMissile  float64
	InfiniteHealth float64

	DyingTime    float64
	GameOverTime float64
	MaxTotalTime float64

	MoveManaCostRate    float64
	MissileManaCostRate float64

	SpeedTiers [4]types.Tier
	RangeTiers [4]types.Tier
	PowerTiers [4]types.Tier
	Mana       types.ManaTables

	MinResolution        float64
	MaxPlacementAttempts int
}

// DefaultConfig returns the standard arena tuning.
func DefaultConfig() Config {
	return Config{
		FieldWidth:  constants.FieldWidth,
		FieldHeight: constants.FieldHeight,
		WallThick:   constants.WallThick,
		NumWalls:    constants.NumWalls,
		NumNPCs:     constants.NumNPCs,

		PlayerWidth:   constants.PlayerWidth,
		PlayerHeight:  constants.PlayerHeight,
		NPCWidth:      constants.NPCWidth,
		NPCHeight:     constants.NPCHeight,
		MissileWidth:  constants.MissileWidth,
		MissileHeight: constants.MissileHeight,

		NPCSpeed:       constants.NPCSpeed,
		NPCMinMoveTime: constants.NPCMinMoveTime,
		NPCMoveChance:  constants.NPCMoveChance,
		MissileSpeed:   constants.MissileSpeed,

		HealthPlayer:   constants.HealthPlayer,
		HealthNPC:      constants.HealthNPC,
		HealthWall:     constants.HealthWall,
		HealthMissile:  constants.HealthMissile,
		InfiniteHealth: constants.InfiniteHealth,

		DyingTime:    constants.DyingTime,
		GameOverTime: constants.GameOverTime,
		MaxTotalTime: constants.MaxTotalTime,

		MoveManaCostRate:    constants.MoveManaCostRate,
		MissileManaCostRate: constants.MissileManaCostRate,

		SpeedTiers: [4]types.Tier{
			types.SpeedStop:   constants.PlayerSpeedStop,
			types.SpeedSlow:   constants.PlayerSpeedSlow,
			types.SpeedMedium: constants.PlayerSpeedMedium,
			types.SpeedFast:   constants.PlayerSpeedFast,
		},
		RangeTiers: [4]types.Tier{
			types.RangeNone:   constants.MissileRangeNone,
			types.RangeShort:  constants.MissileRangeShort,
			types.RangeMedium: constants.MissileRangeMedium,
			types.RangeLong:   constants.MissileRangeLong,
		},
		PowerTiers: [4]types.Tier{
			types.PowerNone:   constants.MissilePowerNone,
			types.PowerLow:    constants.MissilePowerLow,
			types.PowerMedium: constants.MissilePowerMedium,
			types.PowerHigh:   constants.MissilePowerHigh,
		},
		Mana: types.ManaTables{
			MissileManaMax:          constants.MissileManaMax,
			MissileManaRechargeRate: constants.MissileManaRechargeRate,
			MoveManaMax:             constants.MoveManaMax,
			MoveManaRechargeRate:    constants.MoveManaRechargeRate,
		},

		MinResolution:        constants.MinResolution,
		MaxPlacementAttempts: constants.MaxPlacementAttempts,
	}
}

// Validate checks the values the simulation divides by or samples from.
func (c Config) Validate() error {
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return fmt.Errorf("field must have positive dimensions, got %vx%v", c.FieldWidth, c.FieldHeight)
	}
	if c.minSize() <= 0 {
		return fmt.Errorf("object dimensions must be positive")
	}
	if c.DyingTime <= 0 || c.GameOverTime <= 0 {
		return fmt.Errorf("dying time and game over time must be positive")
	}
	if c.MinResolution <= 0 {
		return fmt.Errorf("min resolution must be positive")
	}
	if c.MaxPlacementAttempts <= 0 {
		return fmt.Errorf("max placement attempts must be positive")
	}
	return nil
}

// minSize is the smallest dimension of any object kind.
func (c Config) minSize() float64 {
	return math.Min(
		math.Min(math.Min(c.PlayerWidth, c.PlayerHeight), c.WallThick),
		math.Min(math.Min(c.NPCWidth, c.NPCHeight), math.Min(c.MissileWidth, c.MissileHeight)),
	)
}
