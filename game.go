package main

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // physics ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	// Cell size is 2x the largest entity diameter (player radius 20), so
	// realistically-sized bodies rarely straddle more cells than the
	// point-sample broad phase can pair up.
	CollisionCellSize = 80.0
)

const (
	maxProjectilesPerSession = 500
	maxPlayersPerSession     = 8
	maxEnemiesPerSession     = 60
	maxPickupsPerSession     = 5

	enemySpawnInterval  = 0.5 // seconds between spawns while a wave fills in
	pickupSpawnInterval = 8.0
	waveBaseEnemies     = 4
	waveEnemiesPerWave  = 2
)

// Broadcaster is the client connection as seen from the game loop
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game holds the state for one survival session
type Game struct {
	mu          sync.RWMutex
	players     map[string]*Player
	enemies     map[string]*Enemy
	projectiles map[string]*Projectile
	pickups     map[string]*Pickup
	obstacles   []BoundingBox
	world       *CollisionWorld
	clients     map[string]Broadcaster // playerID -> client
	db          *DB

	bodies []Body // per-tick scratch for the collision world

	tick        uint64
	wave        int
	spawnQueue  int     // enemies still to spawn for the current wave
	spawnTimer  float64 // countdown to next enemy spawn
	pickupTimer float64
	running     bool
	stop        chan struct{}
}

// NewGame creates a new survival session. db may be nil (no persistence).
func NewGame(db *DB) *Game {
	return &Game{
		players:     make(map[string]*Player),
		enemies:     make(map[string]*Enemy),
		projectiles: make(map[string]*Projectile),
		pickups:     make(map[string]*Pickup),
		obstacles:   BuildArena(WorldWidth, WorldHeight),
		world:       NewCollisionWorld(WorldWidth, WorldHeight, CollisionCellSize),
		clients:     make(map[string]Broadcaster),
		db:          db,
		stop:        make(chan struct{}),
	}
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// AddPlayer adds a new player to the session
func (g *Game) AddPlayer(name string) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.players) >= maxPlayersPerSession {
		return nil
	}

	player := NewPlayer(GenerateID(4), name)
	g.players[player.ID] = player
	return player
}

// RemovePlayer removes a player from the session
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.players, id)
	delete(g.clients, id)
}

// HasPlayer reports whether a player is in the session
func (g *Game) HasPlayer(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.players[id]
	return ok
}

// SetClient associates a broadcaster with a player
func (g *Game) SetClient(playerID string, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[playerID] = client
}

// HandleInput processes input from a player
func (g *Game) HandleInput(playerID string, input ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[playerID]
	if !ok {
		return
	}
	// Only update target rotation when the pointer is far enough from the
	// player to produce a stable angle (avoids flickering when idle)
	if DistanceSq(p.X, p.Y, input.MX, input.MY) > 25 { // > 5px distance
		p.TargetR = Angle(p.X, p.Y, input.MX, input.MY)
	}
	p.Firing = input.Fire
	p.Boosting = input.Boost
	p.TargetX = input.MX
	p.TargetY = input.MY
	p.SlowThresh = Clamp(input.Thresh, 50, 400)
}

// PlayerCount returns the number of players
func (g *Game) PlayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.players)
}

// Wave returns the current wave number
func (g *Game) Wave() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.wave
}

// update runs one game tick
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	dt := 1.0 / float64(TickRate)
	g.tick++

	g.updateWave(dt)

	// Update players
	for _, p := range g.players {
		p.Update(dt)

		if p.CanFire() && len(g.projectiles) < maxProjectilesPerSession {
			proj := NewProjectile(p)
			g.projectiles[proj.ID] = proj
			p.FireCD = FireCooldown
		}
	}

	// Update enemies
	for _, e := range g.enemies {
		e.Update(dt, g.players)
	}

	// Update projectiles; they die on obstacles as well as by lifetime
	for id, proj := range g.projectiles {
		proj.Update(dt)
		if proj.Alive && HitsObstacle(Circle{X: proj.X, Y: proj.Y, Radius: ProjectileRadius}, g.obstacles) {
			proj.Alive = false
		}
		if !proj.Alive {
			delete(g.projectiles, id)
		}
	}

	// Update pickups
	for id, pk := range g.pickups {
		pk.Update(dt)
		if !pk.Alive {
			delete(g.pickups, id)
		}
	}

	// Push moving circles out of the static boxes
	for _, p := range g.players {
		if p.Alive {
			p.X, p.Y = ResolveObstacles(Circle{X: p.X, Y: p.Y, Radius: PlayerRadius}, g.obstacles)
		}
	}
	for _, e := range g.enemies {
		if e.Alive {
			e.X, e.Y = ResolveObstacles(Circle{X: e.X, Y: e.Y, Radius: EnemyRadius}, g.obstacles)
		}
	}

	// Broad phase: rebuild the collision world and consume candidate pairs
	g.bodies = g.bodies[:0]
	for _, p := range g.players {
		g.bodies = append(g.bodies, p)
	}
	for _, e := range g.enemies {
		g.bodies = append(g.bodies, e)
	}
	for _, proj := range g.projectiles {
		g.bodies = append(g.bodies, proj)
	}
	for _, pk := range g.pickups {
		g.bodies = append(g.bodies, pk)
	}
	g.world.Update(g.bodies)

	for _, pair := range g.world.CandidatePairs() {
		g.resolvePair(pair.A, pair.B)
	}

	// Reap enemies killed this tick
	for id, e := range g.enemies {
		if !e.Alive {
			delete(g.enemies, id)
		}
	}

	g.spawnPickups(dt)

	// Broadcast state
	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

// updateWave advances the wave counter and trickles in enemy spawns.
// Waves only run once a connected client is attached, so the first wave
// announcement is never sent into the void.
func (g *Game) updateWave(dt float64) {
	if len(g.players) == 0 || len(g.clients) == 0 {
		return
	}

	if len(g.enemies) == 0 && g.spawnQueue == 0 {
		g.wave++
		g.spawnQueue = waveBaseEnemies + waveEnemiesPerWave*(g.wave-1)
		g.spawnTimer = 0
		g.broadcastMsg(Envelope{T: MsgWave, Data: WaveMsg{
			Wave:    g.wave,
			Enemies: g.spawnQueue,
		}})
	}

	if g.spawnQueue > 0 {
		g.spawnTimer -= dt
		if g.spawnTimer <= 0 && len(g.enemies) < maxEnemiesPerSession {
			e := NewEnemy(g.wave)
			g.enemies[e.ID] = e
			g.spawnQueue--
			g.spawnTimer = enemySpawnInterval
		}
	}
}

// spawnPickups keeps a trickle of health orbs on the map
func (g *Game) spawnPickups(dt float64) {
	g.pickupTimer -= dt
	if g.pickupTimer > 0 || len(g.pickups) >= maxPickupsPerSession {
		return
	}
	g.pickupTimer = pickupSpawnInterval

	pk := NewPickup()
	// Retry once if the spot is already occupied by something solid
	if len(g.world.CheckAgainst(pk, g.bodies)) > 0 {
		pk = NewPickup()
	}
	g.pickups[pk.ID] = pk
}

// resolvePair runs the narrow phase on one broad-phase candidate pair and
// applies the gameplay outcome
func (g *Game) resolvePair(a, b Body) {
	switch x := a.(type) {
	case *Projectile:
		if e, ok := b.(*Enemy); ok {
			g.hitEnemy(x, e)
		}
	case *Enemy:
		switch y := b.(type) {
		case *Projectile:
			g.hitEnemy(y, x)
		case *Player:
			g.touchPlayer(x, y)
		case *Enemy:
			g.separateEnemies(x, y)
		}
	case *Player:
		switch y := b.(type) {
		case *Enemy:
			g.touchPlayer(y, x)
		case *Pickup:
			g.collectPickup(x, y)
		}
	case *Pickup:
		if p, ok := b.(*Player); ok {
			g.collectPickup(p, x)
		}
	}
}

// hitEnemy applies projectile damage to an enemy
func (g *Game) hitEnemy(proj *Projectile, e *Enemy) {
	if !proj.Alive || !e.Alive {
		return
	}
	if !g.world.CheckPair(proj, e).Collided {
		return
	}
	proj.Alive = false
	delete(g.projectiles, proj.ID)

	if e.TakeDamage(proj.Damage) {
		if killer, ok := g.players[proj.OwnerID]; ok {
			killer.Score += EnemyKillScore + (g.wave-1)*2
			killer.Kills++
			killer.RunKills++
		}
	}
}

// touchPlayer applies enemy contact damage and knockback to a player
func (g *Game) touchPlayer(e *Enemy, p *Player) {
	if !e.CanTouch() || !p.Alive {
		return
	}
	res := g.world.CheckPair(e, p)
	if !res.Collided {
		return
	}
	e.ContactCD = EnemyContactCD

	// Knock the player back along the contact normal
	p.VX += res.Normal.X * 200
	p.VY += res.Normal.Y * 200

	if p.TakeDamage(EnemyContactDamage) {
		g.handlePlayerDeath(p)
	}
}

// separateEnemies nudges overlapping enemies apart so they don't stack
func (g *Game) separateEnemies(a, b *Enemy) {
	res := g.world.CheckPair(a, b)
	if !res.Collided {
		return
	}
	push := res.Overlap / 2
	if res.Normal.X == 0 && res.Normal.Y == 0 {
		// Exactly coincident centers; pick an arbitrary axis
		a.X -= push
		b.X += push
		return
	}
	a.X -= res.Normal.X * push
	a.Y -= res.Normal.Y * push
	b.X += res.Normal.X * push
	b.Y += res.Normal.Y * push
}

// collectPickup heals the player and consumes the pickup
func (g *Game) collectPickup(p *Player, pk *Pickup) {
	if !p.Alive || !pk.Alive {
		return
	}
	if !g.world.CheckPair(p, pk).Collided {
		return
	}
	pk.Alive = false
	delete(g.pickups, pk.ID)
	p.Heal(PickupHeal)
}

// handlePlayerDeath notifies the player and records the finished run
func (g *Game) handlePlayerDeath(p *Player) {
	if client, ok := g.clients[p.ID]; ok {
		client.SendJSON(Envelope{T: MsgDeath, Data: DeathMsg{
			Wave:  g.wave,
			Kills: p.RunKills,
			Score: p.Score,
		}})
	}

	if g.db != nil && p.AuthPlayerID != 0 {
		authID := p.AuthPlayerID
		wave := g.wave
		kills := p.RunKills
		score := p.Score
		duration := float64(g.tick) / TickRate
		go func() {
			if err := g.db.RecordRun(authID, wave, kills, score, duration); err != nil {
				log.Printf("record run: %v", err)
			}
		}()
	}
}

// broadcastState sends the current game state to all clients as msgpack
func (g *Game) broadcastState() {
	state := GameState{
		Players:     make([]PlayerState, 0, len(g.players)),
		Enemies:     make([]EnemyState, 0, len(g.enemies)),
		Projectiles: make([]ProjectileState, 0, len(g.projectiles)),
		Pickups:     make([]PickupState, 0, len(g.pickups)),
		Wave:        g.wave,
		Tick:        g.tick,
	}

	for _, p := range g.players {
		state.Players = append(state.Players, p.ToState())
	}
	for _, e := range g.enemies {
		state.Enemies = append(state.Enemies, e.ToState())
	}
	for _, proj := range g.projectiles {
		state.Projectiles = append(state.Projectiles, proj.ToState())
	}
	for _, pk := range g.pickups {
		state.Pickups = append(state.Pickups, pk.ToState())
	}

	data, err := msgpack.Marshal(state)
	if err != nil {
		log.Printf("state marshal: %v", err)
		return
	}

	for _, client := range g.clients {
		client.SendBinary(data)
	}
}

// broadcastMsg sends a control message to all clients in the session
func (g *Game) broadcastMsg(msg Envelope) {
	for _, client := range g.clients {
		client.SendJSON(msg)
	}
}

// ObstacleStates converts the static boxes for the welcome message
func (g *Game) ObstacleStates() []ObstacleState {
	states := make([]ObstacleState, 0, len(g.obstacles))
	for _, box := range g.obstacles {
		states = append(states, ObstacleState{
			X: math.Round(box.X),
			Y: math.Round(box.Y),
			W: math.Round(box.Width),
			H: math.Round(box.Height),
		})
	}
	return states
}
