package main

const (
	PickupSize    = 15.0 // square sprite size, reused as collision radius
	PickupHeal    = 25
	PickupTimeout = 30.0
)

// Pickup is a health orb that heals the survivor who touches it
type Pickup struct {
	ID    string
	X, Y  float64
	Life  float64
	Alive bool

	collider Collider
}

// NewPickup spawns a pickup at a random position away from the walls
func NewPickup() *Pickup {
	return &Pickup{
		ID:       GenerateID(4),
		X:        ArenaWallThickness + 50 + randFloat()*(WorldWidth-2*ArenaWallThickness-100),
		Y:        ArenaWallThickness + 50 + randFloat()*(WorldHeight-2*ArenaWallThickness-100),
		Life:     PickupTimeout,
		Alive:    true,
		collider: SizeCollider(PickupSize),
	}
}

// Position implements Body
func (pk *Pickup) Position() (float64, float64) { return pk.X, pk.Y }

// Collider implements Body
func (pk *Pickup) Collider() Collider { return pk.collider }

// CanCollide implements Body
func (pk *Pickup) CanCollide() bool { return pk.Alive }

// Update ticks down the pickup lifetime
func (pk *Pickup) Update(dt float64) {
	if !pk.Alive {
		return
	}
	pk.Life -= dt
	if pk.Life <= 0 {
		pk.Alive = false
	}
}

// ToState converts to protocol state
func (pk *Pickup) ToState() PickupState {
	return PickupState{
		ID: pk.ID,
		X:  round1(pk.X),
		Y:  round1(pk.Y),
	}
}
