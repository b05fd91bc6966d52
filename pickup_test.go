package main

import "testing"

func TestNewPickup(t *testing.T) {
	for i := 0; i < 20; i++ {
		pk := NewPickup()
		if !pk.Alive {
			t.Fatal("pickup should be alive")
		}
		// Spawns clear of the boundary walls
		if pk.X < ArenaWallThickness || pk.X > WorldWidth-ArenaWallThickness {
			t.Fatalf("pickup X = %v, inside a wall", pk.X)
		}
		if pk.Y < ArenaWallThickness || pk.Y > WorldHeight-ArenaWallThickness {
			t.Fatalf("pickup Y = %v, inside a wall", pk.Y)
		}
	}
}

func TestPickupExpiry(t *testing.T) {
	pk := NewPickup()
	pk.Life = 0.01
	pk.Update(0.02)
	if pk.Alive {
		t.Error("pickup should expire")
	}
	if pk.CanCollide() {
		t.Error("expired pickup should not collide")
	}
}
