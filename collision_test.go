package main

import "testing"

func TestCollisionWorldEmptyBeforeUpdate(t *testing.T) {
	w := NewCollisionWorld(800, 600, 50)

	if pairs := w.CandidatePairs(); len(pairs) != 0 {
		t.Errorf("expected no pairs before first Update, got %d", len(pairs))
	}
	if results := w.Query(100, 100, 50); len(results) != 0 {
		t.Errorf("expected no query results before first Update, got %d", len(results))
	}
}

func TestCollisionWorldUpdate(t *testing.T) {
	w := NewCollisionWorld(800, 600, 50)

	a := newTestBody(10, 10, 5)
	b := newTestBody(20, 20, 5)
	far := newTestBody(700, 500, 5)
	w.Update([]Body{a, b, far})

	pairs := w.CandidatePairs()
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}

	// Pairs are stable until the next Update
	if again := w.CandidatePairs(); len(again) != 1 {
		t.Error("pairs changed between calls without an Update")
	}

	// Next Update rebuilds from scratch
	w.Update([]Body{far})
	if pairs = w.CandidatePairs(); len(pairs) != 0 {
		t.Errorf("expected 0 pairs after rebuild, got %d", len(pairs))
	}
}

func TestCollisionWorldSkipsNonColliding(t *testing.T) {
	w := NewCollisionWorld(800, 600, 50)

	a := newTestBody(10, 10, 5)
	dead := newTestBody(15, 15, 5)
	dead.dead = true
	w.Update([]Body{a, dead})

	if pairs := w.CandidatePairs(); len(pairs) != 0 {
		t.Errorf("expected dead body excluded, got %d pairs", len(pairs))
	}
	// Dead bodies are not inserted at all
	for _, r := range w.Query(15, 15, 25) {
		if r == Body(dead) {
			t.Error("dead body found in query results")
		}
	}
}

func TestCheckPair(t *testing.T) {
	w := NewCollisionWorld(800, 600, 50)

	a := newTestBody(100, 100, 20)
	b := newTestBody(110, 110, 15)
	res := w.CheckPair(a, b)
	if !res.Collided {
		t.Fatal("expected collision")
	}
	if res.Overlap <= 0 {
		t.Errorf("overlap = %v, want positive", res.Overlap)
	}
}

func TestCheckPairDefaultRadius(t *testing.T) {
	w := NewCollisionWorld(800, 600, 50)

	// Bodies with no shape data use the default radius
	a := &testBody{x: 0, y: 0, collider: DefaultCollider()}
	b := &testBody{x: 15, y: 0, collider: DefaultCollider()}
	if !w.CheckPair(a, b).Collided {
		t.Error("default-radius bodies 15 apart should collide (10+10 > 15)")
	}

	c := &testBody{x: 25, y: 0, collider: DefaultCollider()}
	if w.CheckPair(a, c).Collided {
		t.Error("default-radius bodies 25 apart should not collide")
	}
}

func TestCheckAgainst(t *testing.T) {
	w := NewCollisionWorld(800, 600, 50)

	body := newTestBody(100, 100, 20)
	hit := newTestBody(110, 100, 10)
	miss := newTestBody(300, 300, 10)
	dead := newTestBody(105, 100, 10)
	dead.dead = true

	hits := w.CheckAgainst(body, []Body{body, hit, miss, dead})
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Target != Body(hit) {
		t.Error("hit target mismatch")
	}
	if !hits[0].Result.Collided {
		t.Error("hit result not marked collided")
	}
}
