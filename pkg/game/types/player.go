package types

import "math"

// ManaTables select a player's mana pools from its experience.
type ManaTables struct {
	MissileManaMax          TierTable
	MissileManaRechargeRate TierTable
	MoveManaMax             TierTable
	MoveManaRechargeRate    TierTable
}

type Player struct {
	Entity

	missileDX    float64
	missileDY    float64
	missileRange float64
	missilePower float64

	missileMana             float64
	missileManaMax          float64
	missileManaRechargeRate float64

	moveMana             float64
	moveManaMax          float64
	moveManaRechargeRate float64

	experience float64
	quit       bool
	tables     ManaTables
}

// NewPlayer creates a player with empty mana pools sized for zero experience.
func NewPlayer(box Box, health float64, tables ManaTables) *Player {
	p := &Player{
		Entity: NewEntity(KindPlayer, box, health),
		tables: tables,
	}
	p.SetMissileDirectionDegrees(0)
	p.refreshTiers()
	return p
}

func (p *Player) SetQuit() {
	p.quit = true
}

func (p *Player) HasQuit() bool {
	return p.quit
}

// SetSpeedTier sets the movement speed when the tier is unlocked.
func (p *Player) SetSpeedTier(tier Tier) bool {
	if !tier.Unlocked(p.experience) {
		return false
	}
	p.SetSpeed(tier.Value)
	return true
}

func (p *Player) MissileDirection() (float64, float64) {
	return p.missileDX, p.missileDY
}

func (p *Player) SetMissileDirectionDegrees(degrees float64) {
	r := degrees * math.Pi / 180
	dx, dy := math.Cos(r), math.Sin(r)
	if math.Abs(dx-p.missileDX) > Epsilon || math.Abs(dy-p.missileDY) > Epsilon {
		p.touch()
	}
	p.missileDX = dx
	p.missileDY = dy
}

func (p *Player) MissileRange() float64 {
	return p.missileRange
}

// SetMissileRangeTier sets the missile range when the tier is unlocked.
func (p *Player) SetMissileRangeTier(tier Tier) bool {
	if !tier.Unlocked(p.experience) {
		return false
	}
	if math.Abs(tier.Value-p.missileRange) > Epsilon {
		p.touch()
	}
	p.missileRange = tier.Value
	return true
}

func (p *Player) MissilePower() float64 {
	return p.missilePower
}

// SetMissilePowerTier sets the missile power when the tier is unlocked.
func (p *Player) SetMissilePowerTier(tier Tier) bool {
	if !tier.Unlocked(p.experience) {
		return false
	}
	if math.Abs(tier.Value-p.missilePower) > Epsilon {
		p.touch()
	}
	p.missilePower = tier.Value
	return true
}

func (p *Player) MissileMana() float64 {
	return p.missileMana
}

func (p *Player) MissileManaMax() float64 {
	return p.missileManaMax
}

func (p *Player) MissileManaRechargeRate() float64 {
	return p.missileManaRechargeRate
}

// SetMissileMana sets the missile mana, clamped to [0, max].
func (p *Player) SetMissileMana(value float64) {
	p.missileMana = clamp(value, 0, p.missileManaMax)
	p.touch()
}

func (p *Player) RechargeMissileMana(amount float64) {
	if p.missileMana >= p.missileManaMax {
		return
	}
	p.missileMana = math.Min(p.missileMana+amount, p.missileManaMax)
	p.touch()
}

// ConsumeMissileMana deducts amount and reports whether there was enough mana.
func (p *Player) ConsumeMissileMana(amount float64) bool {
	if p.missileMana < amount-Epsilon {
		return false
	}
	p.missileMana = math.Max(p.missileMana-amount, 0)
	p.touch()
	return true
}

func (p *Player) MoveMana() float64 {
	return p.moveMana
}

func (p *Player) MoveManaMax() float64 {
	return p.moveManaMax
}

func (p *Player) MoveManaRechargeRate() float64 {
	return p.moveManaRechargeRate
}

// SetMoveMana sets the move mana, clamped to [0, max].
func (p *Player) SetMoveMana(value float64) {
	p.moveMana = clamp(value, 0, p.moveManaMax)
	p.touch()
}

func (p *Player) RechargeMoveMana(amount float64) {
	if p.moveMana >= p.moveManaMax {
		return
	}
	p.moveMana = math.Min(p.moveMana+amount, p.moveManaMax)
	p.touch()
}

// ConsumeMoveMana deducts amount and reports whether there was enough mana.
func (p *Player) ConsumeMoveMana(amount float64) bool {
	if p.moveMana < amount-Epsilon {
		return false
	}
	p.moveMana = math.Max(p.moveMana-amount, 0)
	p.touch()
	return true
}

func (p *Player) Experience() float64 {
	return p.experience
}

// AddExperience grows the experience and re-selects the mana tiers.
// Negative amounts are ignored so experience never decreases.
func (p *Player) AddExperience(amount float64) {
	if amount <= 0 {
		return
	}
	p.experience += amount
	p.refreshTiers()
	p.touch()
}

func (p *Player) refreshTiers() {
	set := func(field *float64, value float64) {
		if math.Abs(value-*field) > Epsilon {
			*field = value
			p.touch()
		}
	}
	set(&p.missileManaMax, TierFor(p.experience, p.tables.MissileManaMax))
	set(&p.missileManaRechargeRate, TierFor(p.experience, p.tables.MissileManaRechargeRate))
	set(&p.moveManaMax, TierFor(p.experience, p.tables.MoveManaMax))
	set(&p.moveManaRechargeRate, TierFor(p.experience, p.tables.MoveManaRechargeRate))
}

func (p *Player) Snapshot() EntitySnapshot {
	s := p.Entity.Snapshot()
	s.Player = &PlayerSnapshot{
		MissileDX:               p.missileDX,
		MissileDY:               p.missileDY,
		MissileRange:            p.missileRange,
		MissilePower:            p.missilePower,
		MissileMana:             p.missileMana,
		MissileManaMax:          p.missileManaMax,
		MissileManaRechargeRate: p.missileManaRechargeRate,
		MoveMana:                p.moveMana,
		MoveManaMax:             p.moveManaMax,
		MoveManaRechargeRate:    p.moveManaRechargeRate,
		Experience:              p.experience,
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
