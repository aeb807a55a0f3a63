package state

import (
	"testing"

	"github.com/hmseo/gungwol/pkg/world"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState()

	if gs.CurrentLocation != world.MainGate {
		t.Errorf("Expected start at main gate, got %q", gs.CurrentLocation)
	}
	if len(gs.Inventory) != 0 {
		t.Errorf("Expected empty inventory, got %v", gs.Inventory)
	}
	if gs.HasReadScroll || gs.HasFoundSecret || gs.HasBeenBanished {
		t.Error("Expected all narrative flags to start false")
	}

	if len(gs.SacredPlaces) != 2 {
		t.Fatalf("Expected 2 sacred places, got %d", len(gs.SacredPlaces))
	}
	for loc, required := range map[world.Location]world.Item{
		world.Temple:     world.Incense,
		world.ThroneHall: world.Binyeo,
	} {
		sp, ok := gs.SacredPlaces[loc]
		if !ok {
			t.Fatalf("Expected sacred place at %s", loc)
		}
		if sp.Blessed {
			t.Errorf("Expected %s to start unblessed", loc)
		}
		if sp.RequiredItem == nil || *sp.RequiredItem != required {
			t.Errorf("Expected %s to require %s", loc, required)
		}
	}
}

func TestGameState_AddItem(t *testing.T) {
	gs := NewGameState()

	if !gs.AddItem(world.Binyeo) {
		t.Fatal("Expected first AddItem to succeed")
	}
	if gs.AddItem(world.Binyeo) {
		t.Error("Expected duplicate AddItem to fail")
	}
	if len(gs.Inventory) != 1 {
		t.Fatalf("Expected 1 item in inventory, got %d", len(gs.Inventory))
	}

	gs.AddItem(world.Scroll)
	gs.AddItem(world.Incense)
	expected := []world.Item{world.Binyeo, world.Scroll, world.Incense}
	for i, item := range expected {
		if gs.Inventory[i] != item {
			t.Errorf("Expected inventory[%d] = %s, got %s", i, item, gs.Inventory[i])
		}
	}
}

func TestGameState_IsBlessed(t *testing.T) {
	gs := NewGameState()

	if gs.IsBlessed(world.Temple) {
		t.Error("Expected temple to start unblessed")
	}
	if gs.IsBlessed(world.Library) {
		t.Error("Expected location without a sacred place to never be blessed")
	}

	gs.SacredPlaces[world.Temple].Bless(world.Incense)
	if !gs.IsBlessed(world.Temple) {
		t.Error("Expected temple to be blessed")
	}
}

func TestGameState_DescribeInventory(t *testing.T) {
	gs := NewGameState()

	if got := gs.DescribeInventory(); got != "Your inventory is empty." {
		t.Errorf("Unexpected empty-inventory message: %q", got)
	}

	gs.AddItem(world.Binyeo)
	gs.AddItem(world.Scroll)
	expected := "You are carrying: binyeo, scroll."
	if got := gs.DescribeInventory(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
