package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/cbodonnell/arena/pkg/game/types"
	"github.com/cbodonnell/arena/pkg/log"
)

// Engine owns every entity of one game and advances them in fixed order.
// It is not safe for concurrent use; a single session goroutine drives it.
type Engine struct {
	config  Config
	rand    *rand.Rand
	ids     IDAllocator
	minSize float64

	objects  map[types.ID]types.Object
	order    []types.ID
	players  map[types.ID]*types.Player
	npcs     map[types.ID]*types.NPC
	walls    map[types.ID]*types.Wall
	missiles map[types.ID]*types.Missile

	player1 types.ID
	player2 types.ID

	dirty     *types.DirtySet
	events    []types.Event
	deadSince map[types.ID]uint64

	tick             uint64
	totalTime        float64
	gameOver         bool
	gameOverFraction float64
	winner           types.ID
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	Config Config
	// Rand drives placement and NPC walks. A time-seeded source is used when nil.
	Rand *rand.Rand
	// IDs allocates entity ids. SequentialIDs is used when nil.
	IDs IDAllocator
}

// New creates an engine with an empty world. Call NewGame to populate it.
func New(opts NewEngineOptions) (*Engine, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %v", err)
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ids := opts.IDs
	if ids == nil {
		ids = &SequentialIDs{}
	}
	e := &Engine{
		config:  opts.Config,
		rand:    r,
		ids:     ids,
		minSize: opts.Config.minSize(),
	}
	e.reset()
	return e, nil
}

func (e *Engine) reset() {
	e.objects = make(map[types.ID]types.Object)
	e.order = nil
	e.players = make(map[types.ID]*types.Player)
	e.npcs = make(map[types.ID]*types.NPC)
	e.walls = make(map[types.ID]*types.Wall)
	e.missiles = make(map[types.ID]*types.Missile)
	e.player1 = 0
	e.player2 = 0
	e.dirty = types.NewDirtySet()
	e.events = nil
	e.deadSince = make(map[types.ID]uint64)
	e.tick = 0
	e.totalTime = 0
	e.gameOver = false
	e.gameOverFraction = 0
	e.winner = 0
}

// NewGame builds a fresh arena: boundary walls, random walls, two players and the NPCs.
func (e *Engine) NewGame() error {
	e.reset()
	if err := e.makeWalls(); err != nil {
		return fmt.Errorf("failed to make walls: %w", err)
	}
	if err := e.placePlayers(); err != nil {
		return fmt.Errorf("failed to place players: %w", err)
	}
	if err := e.makeNPCs(); err != nil {
		return fmt.Errorf("failed to make npcs: %w", err)
	}
	return nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// add binds obj to a new id and registers it in every index.
func (e *Engine) add(obj types.Object) types.ID {
	id := e.ids.Next()
	obj.Base().Bind(id, e.dirty)
	e.objects[id] = obj
	e.order = append(e.order, id)
	if n := len(e.order); n > 1 && e.order[n-2] > id {
		sort.Slice(e.order, func(i, j int) bool { return e.order[i] < e.order[j] })
	}
	switch o := obj.(type) {
	case *types.Player:
		e.players[id] = o
	case *types.NPC:
		e.npcs[id] = o
	case *types.Wall:
		e.walls[id] = o
	case *types.Missile:
		e.missiles[id] = o
	}
	return id
}

func (e *Engine) remove(id types.ID) {
	delete(e.objects, id)
	delete(e.players, id)
	delete(e.npcs, id)
	delete(e.walls, id)
	delete(e.missiles, id)
	delete(e.deadSince, id)
	e.dirty.Remove(id)
	for i, oid := range e.order {
		if oid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// AddWall adds a wall at the given box.
func (e *Engine) AddWall(box types.Box) *types.Wall {
	w := types.NewWall(box, e.config.HealthWall)
	e.add(w)
	return w
}

// AddPlayer adds a player at (x, y) and assigns it to the first free player slot.
// New players start with short range and low power.
func (e *Engine) AddPlayer(x, y float64) *types.Player {
	p := e.newPlayer(x, y)
	e.addPlayer(p)
	return p
}

func (e *Engine) addPlayer(p *types.Player) {
	id := e.add(p)
	switch {
	case e.player1 == 0:
		e.player1 = id
	case e.player2 == 0:
		e.player2 = id
	}
	p.SetMissileRangeTier(e.config.RangeTiers[types.RangeShort])
	p.SetMissilePowerTier(e.config.PowerTiers[types.PowerLow])
}

// AddNPC adds an NPC at (x, y).
func (e *Engine) AddNPC(x, y float64) *types.NPC {
	n := e.newNPC(x, y)
	e.add(n)
	return n
}

func (e *Engine) newPlayer(x, y float64) *types.Player {
	box := types.Box{X: x, Y: y, W: e.config.PlayerWidth, H: e.config.PlayerHeight}
	return types.NewPlayer(box, e.config.HealthPlayer, e.config.Mana)
}

func (e *Engine) newNPC(x, y float64) *types.NPC {
	box := types.Box{X: x, Y: y, W: e.config.NPCWidth, H: e.config.NPCHeight}
	return types.NewNPC(box, e.config.HealthNPC)
}

// Evolve advances the world by dt seconds.
func (e *Engine) Evolve(dt float64) {
	e.tick++
	e.totalTime += dt

	if e.gameOver {
		e.gameOverFraction += dt / e.config.GameOverTime
		for _, id := range e.order {
			e.progressDying(e.objects[id].Base(), dt)
		}
		return
	}

	e.killQuitters()

	for _, id := range e.order {
		e.evolveObject(e.objects[id], dt)
	}

	for _, id := range e.order {
		if hitID := e.objects[id].Base().HitID(); hitID != 0 {
			e.handleCollision(id, hitID)
		}
	}

	e.reapDead()
	e.topUpNPCs()
	e.checkGameOver()
}

func (e *Engine) killQuitters() {
	for _, id := range e.order {
		p, ok := e.players[id]
		if !ok || !p.HasQuit() {
			continue
		}
		if p.IsAlive() {
			log.Debug("Player %d quit and is killed", id)
		}
		p.ApplyDamage(p.Health() + 1)
		e.disarm(p)
	}
}

// disarm removes a player's ability to fight or move.
func (e *Engine) disarm(p *types.Player) {
	p.SetMissilePowerTier(e.config.PowerTiers[types.PowerNone])
	p.SetMissileRangeTier(e.config.RangeTiers[types.RangeNone])
	p.SetSpeedTier(e.config.SpeedTiers[types.SpeedStop])
}

func (e *Engine) progressDying(ent *types.Entity, dt float64) {
	if ent.AddDyingFraction(dt, e.config.DyingTime) {
		e.deadSince[ent.ID()] = e.tick
	}
}

// reapDead removes entities that died on an earlier tick,
// so every death is broadcast at least once before removal.
func (e *Engine) reapDead() {
	var dead []types.ID
	for _, id := range e.order {
		if since, ok := e.deadSince[id]; ok && since < e.tick {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		log.Trace("Removing dead %s %d", e.objects[id].Base().Kind(), id)
		e.remove(id)
	}
}

func (e *Engine) topUpNPCs() {
	for len(e.npcs) < e.config.NumNPCs {
		n, err := e.placeNPC()
		if err != nil {
			log.Warn("Failed to respawn NPC: %v", err)
			return
		}
		e.add(n)
	}
}

func (e *Engine) checkGameOver() {
	alive := 0
	var last types.ID
	for _, id := range e.order {
		if p, ok := e.players[id]; ok && p.IsAlive() {
			alive++
			last = id
		}
	}
	if alive < 2 || e.totalTime > e.config.MaxTotalTime {
		log.Debug("Game over after %.2fs with %d players alive", e.totalTime, alive)
		e.gameOver = true
		e.gameOverFraction = 0
	}
	if alive == 1 {
		e.winner = last
	}
}

func (e *Engine) addEvent(event types.Event) {
	e.events = append(e.events, event)
}

// DrainEvents returns the events queued since the last drain and clears them.
func (e *Engine) DrainEvents() []types.Event {
	events := e.events
	e.events = nil
	return events
}

// DrainChanged snapshots every changed entity in id order and clears the changed set.
func (e *Engine) DrainChanged() []types.EntitySnapshot {
	ids := e.dirty.Drain()
	snapshots := make([]types.EntitySnapshot, 0, len(ids))
	for _, id := range ids {
		if obj, ok := e.objects[id]; ok {
			snapshots = append(snapshots, obj.Snapshot())
		}
	}
	return snapshots
}

// IsChanged reports whether the entity has changes not yet drained.
func (e *Engine) IsChanged(id types.ID) bool {
	return e.dirty.Has(id)
}

// Object returns the entity with the given id.
func (e *Engine) Object(id types.ID) (types.Object, bool) {
	obj, ok := e.objects[id]
	return obj, ok
}

// Player returns the player with the given id.
func (e *Engine) Player(id types.ID) (*types.Player, bool) {
	p, ok := e.players[id]
	return p, ok
}

// Objects returns every entity in id order.
func (e *Engine) Objects() []types.Object {
	objects := make([]types.Object, 0, len(e.order))
	for _, id := range e.order {
		objects = append(objects, e.objects[id])
	}
	return objects
}

// CountKind returns the number of live entities of the given kind.
func (e *Engine) CountKind(kind types.Kind) int {
	switch kind {
	case types.KindPlayer:
		return len(e.players)
	case types.KindNPC:
		return len(e.npcs)
	case types.KindWall:
		return len(e.walls)
	case types.KindMissile:
		return len(e.missiles)
	default:
		return 0
	}
}

// Player1ID is the id of the first player placed by NewGame.
func (e *Engine) Player1ID() types.ID {
	return e.player1
}

// Player2ID is the id of the second player placed by NewGame.
func (e *Engine) Player2ID() types.ID {
	return e.player2
}

// WinnerID is the last player standing, or 0 when there is none.
func (e *Engine) WinnerID() types.ID {
	return e.winner
}

// GameOverTriggered reports whether the game over phase has begun.
func (e *Engine) GameOverTriggered() bool {
	return e.gameOver
}

// GameOverFraction is the progress of the game over phase, from 0 to 1.
func (e *Engine) GameOverFraction() float64 {
	return e.gameOverFraction
}

// GameOver reports whether the game over phase has completed.
func (e *Engine) GameOver() bool {
	return e.gameOverFraction >= 1
}

// TotalTime is the simulated time in seconds since NewGame.
func (e *Engine) TotalTime() float64 {
	return e.totalTime
}
