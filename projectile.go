package main

import "math"

const (
	ProjectileSpeed    = 800.0 // pixels/s
	ProjectileLifetime = 1.5   // seconds
	ProjectileRadius   = 4.0
	ProjectileDamage   = 20
	ProjectileOffset   = 30.0 // spawn distance from player center
)

// Projectile is a shot fired by a player
type Projectile struct {
	ID       string
	OwnerID  string
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Life     float64
	Damage   int
	Alive    bool

	collider Collider
}

// NewProjectile creates a projectile from a player's position and facing direction
func NewProjectile(owner *Player) *Projectile {
	vx := math.Cos(owner.Rotation) * ProjectileSpeed
	vy := math.Sin(owner.Rotation) * ProjectileSpeed
	return &Projectile{
		ID:       GenerateID(3),
		OwnerID:  owner.ID,
		X:        owner.X + math.Cos(owner.Rotation)*ProjectileOffset,
		Y:        owner.Y + math.Sin(owner.Rotation)*ProjectileOffset,
		VX:       vx + owner.VX*0.3, // inherit some of the player's velocity
		VY:       vy + owner.VY*0.3,
		Rotation: owner.Rotation,
		Life:     ProjectileLifetime,
		Damage:   ProjectileDamage,
		Alive:    true,
		collider: CircleCollider(ProjectileRadius),
	}
}

// Position implements Body
func (pr *Projectile) Position() (float64, float64) { return pr.X, pr.Y }

// Collider implements Body
func (pr *Projectile) Collider() Collider { return pr.collider }

// CanCollide implements Body
func (pr *Projectile) CanCollide() bool { return pr.Alive }

// Update moves the projectile and expires it
func (pr *Projectile) Update(dt float64) {
	if !pr.Alive {
		return
	}
	pr.X += pr.VX * dt
	pr.Y += pr.VY * dt
	pr.Life -= dt
	if pr.Life <= 0 {
		pr.Alive = false
	}
	// Shots die at the arena bounds instead of flying forever
	if pr.X < 0 || pr.X > WorldWidth || pr.Y < 0 || pr.Y > WorldHeight {
		pr.Alive = false
	}
}

// ToState converts to protocol state
func (pr *Projectile) ToState() ProjectileState {
	return ProjectileState{
		ID:    pr.ID,
		X:     round1(pr.X),
		Y:     round1(pr.Y),
		R:     round1(pr.Rotation),
		Owner: pr.OwnerID,
	}
}
