package main

import (
	"crypto/rand"
	"math"
)

const (
	PlayerRadius   = 20.0
	PlayerMaxHP    = 100
	PlayerAccel    = 600.0 // pixels/s²
	PlayerMaxSpeed = 350.0 // pixels/s
	PlayerFriction = 0.97  // velocity multiplier per tick
	PlayerBoostMul = 1.6   // boost speed multiplier
	FireCooldown   = 0.15  // seconds between shots
	RespawnTime    = 3.0   // seconds before respawn
	TurnSpeed      = 8.0   // radians/s max turn rate
	WorldWidth     = 2400.0
	WorldHeight    = 1800.0
)

// Player is a survivor in the arena
type Player struct {
	ID         string
	Name       string
	X, Y       float64
	VX, VY     float64
	Rotation   float64
	HP         int
	MaxHP      int
	Score      int
	Kills      int
	Alive      bool
	FireCD     float64 // fire cooldown remaining
	RespawnT   float64 // respawn timer remaining
	TargetR    float64 // target rotation (toward pointer)
	Firing     bool
	Boosting   bool
	TargetX    float64 // pointer world X (for distance calc)
	TargetY    float64 // pointer world Y (for distance calc)
	SlowThresh float64 // distance threshold for speed modulation

	// Stats for the current run, recorded to the DB on death
	RunKills     int
	RunStartWave int

	AuthPlayerID int64 // 0 = guest

	collider Collider
}

// NewPlayer creates a new player at a random position
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		X:        WorldWidth/4 + randFloat()*WorldWidth/2,
		Y:        WorldHeight/4 + randFloat()*WorldHeight/2,
		HP:       PlayerMaxHP,
		MaxHP:    PlayerMaxHP,
		Alive:    true,
		collider: CircleCollider(PlayerRadius),
	}
}

// Position implements Body
func (p *Player) Position() (float64, float64) { return p.X, p.Y }

// Collider implements Body
func (p *Player) Collider() Collider { return p.collider }

// CanCollide implements Body
func (p *Player) CanCollide() bool { return p.Alive }

// Update moves the player one tick (dt in seconds)
func (p *Player) Update(dt float64) {
	if !p.Alive {
		p.RespawnT -= dt
		if p.RespawnT <= 0 {
			p.Respawn()
		}
		return
	}

	// Rotate toward target
	diff := NormalizeAngle(p.TargetR - p.Rotation)
	maxTurn := TurnSpeed * dt
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	p.Rotation += diff

	// Accelerate in facing direction
	accel := PlayerAccel * dt
	if p.Boosting {
		accel *= PlayerBoostMul
	}

	// Distance-based speed modulation: slow down as pointer approaches
	dist := Distance(p.X, p.Y, p.TargetX, p.TargetY)
	thresh := p.SlowThresh
	if thresh < 20 {
		thresh = 20
	}
	const deadZone = 50.0
	var speedFactor float64 = 1.0
	if dist <= deadZone {
		accel = 0
		speedFactor = 0
	} else if dist < thresh {
		speedFactor = (dist - deadZone) / (thresh - deadZone)
		accel *= speedFactor
	}

	p.VX += math.Cos(p.Rotation) * accel
	p.VY += math.Sin(p.Rotation) * accel

	// Apply friction — use heavy braking when the pointer is near the
	// player so they actually stop instead of coasting forever
	friction := PlayerFriction
	if speedFactor < 1.0 {
		friction = 0.95 + speedFactor*(PlayerFriction-0.95)
	}
	p.VX *= friction
	p.VY *= friction

	// Clamp speed
	maxSpd := PlayerMaxSpeed
	if p.Boosting {
		maxSpd *= PlayerBoostMul
	}
	speed := math.Sqrt(p.VX*p.VX + p.VY*p.VY)
	if speed > maxSpd {
		scale := maxSpd / speed
		p.VX *= scale
		p.VY *= scale
	}

	// Move; the arena walls push back in the obstacle pass
	p.X += p.VX * dt
	p.Y += p.VY * dt

	// Cooldown
	if p.FireCD > 0 {
		p.FireCD -= dt
	}
}

// Respawn resets the player after death, starting a fresh run
func (p *Player) Respawn() {
	p.X = WorldWidth/4 + randFloat()*WorldWidth/2
	p.Y = WorldHeight/4 + randFloat()*WorldHeight/2
	p.VX = 0
	p.VY = 0
	p.HP = PlayerMaxHP
	p.Alive = true
	p.FireCD = 0
	p.RespawnT = 0
	p.RunKills = 0
}

// TakeDamage reduces HP and returns true if the player died
func (p *Player) TakeDamage(dmg int) bool {
	if !p.Alive {
		return false
	}
	p.HP -= dmg
	if p.HP <= 0 {
		p.HP = 0
		p.Alive = false
		p.RespawnT = RespawnTime
		return true
	}
	return false
}

// Heal restores HP up to the max
func (p *Player) Heal(amount int) {
	if !p.Alive {
		return
	}
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// CanFire returns true if the player can fire a projectile
func (p *Player) CanFire() bool {
	return p.Alive && p.Firing && p.FireCD <= 0
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{
		ID:    p.ID,
		Name:  p.Name,
		X:     round1(p.X),
		Y:     round1(p.Y),
		R:     round1(p.Rotation),
		VX:    round1(p.VX),
		VY:    round1(p.VY),
		HP:    p.HP,
		MaxHP: p.MaxHP,
		Score: p.Score,
		Kills: p.Kills,
		Alive: p.Alive,
		Boost: p.Boosting,
	}
}

// randFloat returns a random float64 in [0, 1)
var randSrc uint64

func randFloat() float64 {
	// Simple xorshift for non-crypto random
	randSrc ^= randSrc << 13
	randSrc ^= randSrc >> 7
	randSrc ^= randSrc << 17
	if randSrc == 0 {
		randSrc = 1
	}
	return float64(randSrc%10000) / 10000.0
}

func init() {
	// Seed from crypto/rand
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	for i, v := range b {
		randSrc |= uint64(v) << (uint(i) * 8)
	}
	if randSrc == 0 {
		randSrc = 1
	}
}
