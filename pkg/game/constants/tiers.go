package constants

import "github.com/cbodonnell/arena/pkg/game/types"

// Player speed tiers
var (
	PlayerSpeedStop   = types.Tier{Value: 0.0, MinExperience: 0.0}
	PlayerSpeedSlow   = types.Tier{Value: 20.0, MinExperience: 0.0}
	PlayerSpeedMedium = types.Tier{Value: 40.0, MinExperience: 40.0}
	PlayerSpeedFast   = types.Tier{Value: 80.0, MinExperience: 150.0}
)

// Missile range tiers
var (
	MissileRangeNone   = types.Tier{Value: 0.0, MinExperience: 0.0}
	MissileRangeShort  = types.Tier{Value: 100.0, MinExperience: 0.0}
	MissileRangeMedium = types.Tier{Value: 200.0, MinExperience: 40.0}
	MissileRangeLong   = types.Tier{Value: 400.0, MinExperience: 150.0}
)

// Missile power tiers
var (
	MissilePowerNone   = types.Tier{Value: 0.0, MinExperience: 0.0}
	MissilePowerLow    = types.Tier{Value: 5.0, MinExperience: 0.0}
	MissilePowerMedium = types.Tier{Value: 10.0, MinExperience: 40.0}
	MissilePowerHigh   = types.Tier{Value: 20.0, MinExperience: 150.0}
)

// Mana pools and recharge rates grow with experience
var (
	MissileManaMax = types.TierTable{
		{Value: 20.0, MinExperience: 0.0},
		{Value: 40.0, MinExperience: 100.0},
		{Value: 80.0, MinExperience: 300.0},
	}
	MissileManaRechargeRate = types.TierTable{
		{Value: 2.0, MinExperience: 0.0},
		{Value: 4.0, MinExperience: 100.0},
		{Value: 8.0, MinExperience: 300.0},
	}
	MoveManaMax = types.TierTable{
		{Value: 10.0, MinExperience: 0.0},
		{Value: 20.0, MinExperience: 100.0},
		{Value: 40.0, MinExperience: 300.0},
	}
	MoveManaRechargeRate = types.TierTable{
		{Value: 0.5, MinExperience: 0.0},
		{Value: 1.0, MinExperience: 100.0},
		{Value: 2.0, MinExperience: 300.0},
	}
)
