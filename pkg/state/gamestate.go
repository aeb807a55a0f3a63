package state

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hmseo/gungwol/pkg/world"
)

// GameState is the complete mutable state of one play session.
// It is owned by a single game.Controller and mutated only while that
// controller is handling one line of input.
type GameState struct {
	ID              uuid.UUID                             `json:"id"`
	CurrentLocation world.Location                        `json:"current_location"`
	Inventory       []world.Item                          `json:"inventory,omitempty"`
	SacredPlaces    map[world.Location]*world.SacredPlace `json:"sacred_places"`
	HasReadScroll   bool                                  `json:"has_read_scroll"`
	HasFoundSecret  bool                                  `json:"has_found_secret"`
	HasBeenBanished bool                                  `json:"has_been_banished"`
}

// NewGameState returns a fresh session at the main gate with an empty
// inventory and the two sacred places still unblessed.
func NewGameState() *GameState {
	return &GameState{
		ID:              uuid.New(),
		CurrentLocation: world.MainGate,
		Inventory:       make([]world.Item, 0),
		SacredPlaces: map[world.Location]*world.SacredPlace{
			world.Temple:     world.NewSacredPlace(world.Incense),
			world.ThroneHall: world.NewSacredPlace(world.Binyeo),
		},
	}
}

// HasItem reports whether the item has been picked up.
func (gs *GameState) HasItem(item world.Item) bool {
	for _, held := range gs.Inventory {
		if held == item {
			return true
		}
	}
	return false
}

// AddItem appends the item to the inventory. Returns false without
// modifying anything if the item is already held.
func (gs *GameState) AddItem(item world.Item) bool {
	if gs.HasItem(item) {
		return false
	}
	gs.Inventory = append(gs.Inventory, item)
	return true
}

// IsBlessed reports whether the location has a sacred place that has
// been blessed. Locations without a sacred place are never blessed.
func (gs *GameState) IsBlessed(loc world.Location) bool {
	sp, ok := gs.SacredPlaces[loc]
	return ok && sp.Blessed
}

// DescribeInventory renders the held items for the player.
func (gs *GameState) DescribeInventory() string {
	if len(gs.Inventory) == 0 {
		return "Your inventory is empty."
	}
	names := make([]string, len(gs.Inventory))
	for i, item := range gs.Inventory {
		names[i] = item.String()
	}
	return "You are carrying: " + strings.Join(names, ", ") + "."
}
