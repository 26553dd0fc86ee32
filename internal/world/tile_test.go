package world

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindAir, "air"},
		{KindFlux, "flux"},
		{KindUnbreakable, "unbreakable"},
		{KindPlayer, "player"},
		{KindStone, "stone"},
		{KindBox, "box"},
		{KindKey, "key"},
		{KindLockedDoor, "locked_door"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestFallStateString(t *testing.T) {
	tests := []struct {
		state    FallState
		expected string
	}{
		{Resting, "resting"},
		{Falling, "falling"},
		{FallState(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("FallState(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestTileQueries(t *testing.T) {
	tests := []struct {
		name     string
		tile     Tile
		air      bool
		player   bool
		lock1    bool
		lock2    bool
		fallable bool
	}{
		{"air", Air(), true, false, false, false, false},
		{"flux", Flux(), false, false, false, false, false},
		{"unbreakable", Unbreakable(), false, false, false, false, false},
		{"player", Player(), false, true, false, false, false},
		{"stone", Stone(Resting), false, false, false, false, true},
		{"box", Box(Falling), false, false, false, false, true},
		{"key1", Key(1), false, false, false, false, false},
		{"lock1", LockedDoor(1), false, false, true, false, false},
		{"lock2", LockedDoor(2), false, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tile.IsAir(); got != tt.air {
				t.Errorf("IsAir() = %v, want %v", got, tt.air)
			}
			if got := tt.tile.IsPlayer(); got != tt.player {
				t.Errorf("IsPlayer() = %v, want %v", got, tt.player)
			}
			if got := tt.tile.IsLock(1); got != tt.lock1 {
				t.Errorf("IsLock(1) = %v, want %v", got, tt.lock1)
			}
			if got := tt.tile.IsLock(2); got != tt.lock2 {
				t.Errorf("IsLock(2) = %v, want %v", got, tt.lock2)
			}
			if got := tt.tile.IsFallable(); got != tt.fallable {
				t.Errorf("IsFallable() = %v, want %v", got, tt.fallable)
			}
		})
	}
}

func TestTileRuneMatchesLegend(t *testing.T) {
	for r, code := range legend {
		tile, err := TileFromCode(code, DefaultKeys())
		if err != nil {
			t.Fatalf("TileFromCode(%d): %v", code, err)
		}
		if got := tile.Rune(); got != r {
			t.Errorf("TileFromCode(%d).Rune() = %q, want %q", code, got, r)
		}
	}
}
