package main

import "math"

const (
	EnemyRadius        = 18.0
	EnemyBaseHP        = 40
	EnemyHPPerWave     = 8
	EnemyBaseSpeed     = 140.0
	EnemySpeedPerWave  = 6.0
	EnemyMaxSpeedCap   = 320.0
	EnemyAccel         = 260.0
	EnemyFriction      = 0.95
	EnemyTurnSpeed     = 5.0
	EnemyDetectRange   = 900.0
	EnemyDetectRangeSq = EnemyDetectRange * EnemyDetectRange
	EnemyContactDamage = 15
	EnemyContactCD     = 0.8 // seconds between contact hits
	EnemyKillScore     = 10
	EnemyWanderDrift   = 1.2 // max radians/s the wander angle changes
)

// Enemy is an AI-controlled creature that chases the nearest survivor
type Enemy struct {
	ID          string
	X, Y        float64
	VX, VY      float64
	Rotation    float64
	HP          int
	MaxHP       int
	Alive       bool
	ContactCD   float64 // cooldown until next contact hit
	WanderAngle float64 // desired heading when no target in range
	maxSpeed    float64

	collider Collider
}

// NewEnemy spawns an enemy at a random map edge, scaled to the wave number
func NewEnemy(wave int) *Enemy {
	hp := EnemyBaseHP + EnemyHPPerWave*(wave-1)
	speed := EnemyBaseSpeed + EnemySpeedPerWave*float64(wave-1)
	if speed > EnemyMaxSpeedCap {
		speed = EnemyMaxSpeedCap
	}
	e := &Enemy{
		ID:       GenerateID(4),
		HP:       hp,
		MaxHP:    hp,
		Alive:    true,
		maxSpeed: speed,
		collider: CircleCollider(EnemyRadius),
	}

	// Pick a random edge just inside the boundary walls:
	// 0=left, 1=right, 2=top, 3=bottom
	const inset = ArenaWallThickness + EnemyRadius
	span := func(max float64) float64 {
		return inset + randFloat()*(max-2*inset)
	}
	edge := int(randFloat() * 4)
	switch edge {
	case 0:
		e.X = inset
		e.Y = span(WorldHeight)
	case 1:
		e.X = WorldWidth - inset
		e.Y = span(WorldHeight)
	case 2:
		e.X = span(WorldWidth)
		e.Y = inset
	default:
		e.X = span(WorldWidth)
		e.Y = WorldHeight - inset
	}

	// Face toward center
	e.Rotation = Angle(e.X, e.Y, WorldWidth/2, WorldHeight/2)
	e.WanderAngle = e.Rotation
	return e
}

// Position implements Body
func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }

// Collider implements Body
func (e *Enemy) Collider() Collider { return e.collider }

// CanCollide implements Body
func (e *Enemy) CanCollide() bool { return e.Alive }

// Update steers the enemy toward the nearest alive player, or wanders
func (e *Enemy) Update(dt float64, players map[string]*Player) {
	if !e.Alive {
		return
	}

	if e.ContactCD > 0 {
		e.ContactCD -= dt
	}

	// Find nearest alive player within detect range
	var targetX, targetY float64
	bestDist := math.MaxFloat64
	found := false
	for _, p := range players {
		if !p.Alive {
			continue
		}
		d2 := DistanceSq(e.X, e.Y, p.X, p.Y)
		if d2 < EnemyDetectRangeSq && d2 < bestDist {
			bestDist = d2
			targetX = p.X
			targetY = p.Y
			found = true
		}
	}

	var desiredR float64
	if found {
		desiredR = Angle(e.X, e.Y, targetX, targetY)
	} else {
		// Drift the wander angle gently, then head toward it
		e.WanderAngle += (randFloat()*2 - 1) * EnemyWanderDrift * dt
		desiredR = e.WanderAngle
	}

	diff := NormalizeAngle(desiredR - e.Rotation)
	maxTurn := EnemyTurnSpeed * dt
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	e.Rotation += diff

	// Accelerate in facing direction
	accel := EnemyAccel * dt
	e.VX += math.Cos(e.Rotation) * accel
	e.VY += math.Sin(e.Rotation) * accel

	// Friction
	e.VX *= EnemyFriction
	e.VY *= EnemyFriction

	// Clamp speed
	speed := math.Sqrt(e.VX*e.VX + e.VY*e.VY)
	if speed > e.maxSpeed {
		scale := e.maxSpeed / speed
		e.VX *= scale
		e.VY *= scale
	}

	// Move; arena walls push back in the obstacle pass
	e.X += e.VX * dt
	e.Y += e.VY * dt
}

// TakeDamage reduces HP and returns true if the enemy died
func (e *Enemy) TakeDamage(dmg int) bool {
	if !e.Alive {
		return false
	}
	e.HP -= dmg
	if e.HP <= 0 {
		e.HP = 0
		e.Alive = false
		return true
	}
	return false
}

// CanTouch returns true if the enemy may deal contact damage this tick
func (e *Enemy) CanTouch() bool {
	return e.Alive && e.ContactCD <= 0
}

// ToState converts to protocol state
func (e *Enemy) ToState() EnemyState {
	return EnemyState{
		ID:    e.ID,
		X:     round1(e.X),
		Y:     round1(e.Y),
		R:     round1(e.Rotation),
		HP:    e.HP,
		MaxHP: e.MaxHP,
		Alive: e.Alive,
	}
}
