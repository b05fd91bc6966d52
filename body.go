package main

// DefaultColliderRadius is used for bodies that declare no shape data.
const DefaultColliderRadius = 10.0

// ColliderKind records where a body's collision radius came from.
type ColliderKind uint8

const (
	ColliderCircle  ColliderKind = iota // explicit radius
	ColliderSize                        // square size reused as radius
	ColliderDefault                     // no shape data, DefaultColliderRadius
)

// Collider is a body's collision shape, resolved once when the entity is
// created rather than re-derived on every check.
type Collider struct {
	Kind   ColliderKind
	Radius float64
}

// CircleCollider builds a collider from an explicit radius.
func CircleCollider(radius float64) Collider {
	return Collider{Kind: ColliderCircle, Radius: radius}
}

// SizeCollider builds a collider from a square entity size.
func SizeCollider(size float64) Collider {
	return Collider{Kind: ColliderSize, Radius: size}
}

// DefaultCollider is the fallback for bodies with no shape data.
func DefaultCollider() Collider {
	return Collider{Kind: ColliderDefault, Radius: DefaultColliderRadius}
}

// Body is the read-only view the collision core takes of a game entity for
// the duration of one call. Entities are owned and mutated by the game loop.
type Body interface {
	// Position returns the current world coordinates.
	Position() (x, y float64)
	// Collider returns the collision shape resolved at entity creation.
	Collider() Collider
	// CanCollide gates participation: active and not dead.
	CanCollide() bool
}

// CollisionPair is an unordered broad-phase candidate pair. It carries no
// geometric result; narrow-phase testing is deferred to the consumer.
type CollisionPair struct {
	A, B Body
}

// BodyHit couples a target body with its resolved collision result.
type BodyHit struct {
	Target Body
	Result CollisionResult
}

// bodyCircle builds the narrow-phase circle for a body.
func bodyCircle(b Body) Circle {
	x, y := b.Position()
	return Circle{X: x, Y: y, Radius: b.Collider().Radius}
}
