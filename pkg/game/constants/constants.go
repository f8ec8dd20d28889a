package constants

import "time"

const (
	// TickRate is the number of simulation ticks per second
	TickRate float64 = 30.0
	// TickInterval is the target duration of one tick
	TickInterval = time.Second / 30

	// MinResolution is the smallest step size the collision bisection refines to
	MinResolution float64 = 0.25

	// FieldWidth is the width of the arena
	FieldWidth float64 = 1024.0
	// FieldHeight is the height of the arena
	FieldHeight float64 = 768.0

	// WallThick is the thickness of the boundary walls and the size of random walls
	WallThick float64 = 16.0
	// NumWalls is the number of randomly placed walls
	NumWalls int = 24

	// Player Width
	PlayerWidth float64 = 16.0
	// Player Height
	PlayerHeight float64 = 16.0

	// NPC Width
	NPCWidth float64 = 16.0
	// NPC Height
	NPCHeight float64 = 16.0
	// NumNPCs is the NPC population the engine tops up to every tick
	NumNPCs int = 6
	// NPCSpeed is the speed NPCs walk at
	NPCSpeed float64 = 20.0
	// NPCMinMoveTime is the minimum time between NPC direction changes
	NPCMinMoveTime float64 = 3.0 // seconds
	// NPCMoveChance is the per-tick chance an NPC picks a new direction once NPCMinMoveTime has passed
	NPCMoveChance float64 = 0.01

	// Missile Width
	MissileWidth float64 = 4.0
	// Missile Height
	MissileHeight float64 = 4.0
	// MissileSpeed is the travel speed of every missile
	MissileSpeed float64 = 200.0

	// Health pools
	HealthObject   float64 = 1.0
	HealthPlayer   float64 = 100.0
	HealthNPC      float64 = 20.0
	HealthWall     float64 = 1000.0
	HealthMissile  float64 = 1.0
	InfiniteHealth float64 = 1e9

	// DyingTime is how long an entity spends DYING before it is DEAD
	DyingTime float64 = 1.0 // seconds
	// GameOverTime is how long the game over phase lasts before the session ends
	GameOverTime float64 = 3.0 // seconds
	// MaxTotalTime caps the length of a match
	MaxTotalTime float64 = 30 * 60 // seconds

	// MoveManaCostRate scales the move mana drained per second: rate * ln(speed/10)
	MoveManaCostRate float64 = 1.0
	// MissileManaCostRate scales the missile cost: rate * ln(range) * ln(10*power)
	MissileManaCostRate float64 = 0.5

	// MaxPlacementAttempts bounds rejection sampling when placing entities
	MaxPlacementAttempts int = 10000
)
