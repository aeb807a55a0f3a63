package world

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Direction is a compass direction the player can walk in.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// ParseDirection resolves a normalized token to a Direction.
// Returns false for anything outside the four compass directions.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case North, South, East, West:
		return Direction(s), true
	}
	return "", false
}

// Location is a place in the palace. The value doubles as the
// lowercase display token.
type Location string

const (
	MainGate   Location = "main gate"
	Courtyard  Location = "courtyard"
	ThroneHall Location = "throne hall"
	Library    Location = "library"
	Garden     Location = "garden"
	Temple     Location = "temple"
)

// DisplayName returns the location name in title case for UI panels.
func (l Location) DisplayName() string {
	return cases.Title(language.English).String(string(l))
}

// Item is an object the player can pick up and use. The value is the
// lowercase token used both for display and for parsing typed commands.
type Item string

const (
	Binyeo  Item = "binyeo"
	Scroll  Item = "scroll"
	Incense Item = "incense"
)

func (i Item) String() string { return string(i) }

// DisplayName returns the item name in title case for UI panels.
func (i Item) DisplayName() string {
	return cases.Title(language.English).String(string(i))
}

// ParseItem resolves a player-typed name to an Item.
// Unrecognized names return false, never an error.
func ParseItem(name string) (Item, bool) {
	switch Item(name) {
	case Binyeo, Scroll, Incense:
		return Item(name), true
	}
	return "", false
}

// Exits is the fixed adjacency table of the palace grounds.
// A missing entry means there is no path in that direction.
var Exits = map[Location]map[Direction]Location{
	MainGate:   {North: Courtyard},
	Courtyard:  {North: ThroneHall, East: Library, South: MainGate},
	ThroneHall: {East: Garden, South: Courtyard},
	Library:    {West: Courtyard},
	Garden:     {North: Temple, West: ThroneHall},
	Temple:     {South: Garden},
}

// Move looks up the destination for a (location, direction) pair.
func Move(from Location, dir Direction) (Location, bool) {
	to, ok := Exits[from][dir]
	return to, ok
}

// Pickups maps each location to the single item that can be taken there.
var Pickups = map[Location]Item{
	Courtyard: Binyeo,
	Library:   Scroll,
	Garden:    Incense,
}
