package game

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hmseo/gungwol/pkg/state"
	"github.com/hmseo/gungwol/pkg/world"
)

// Host receives player-visible output from the controller. The host
// owns the read loop: after EndGame it must stop delivering input.
type Host interface {
	// Write appends one line of text to the player-visible transcript.
	Write(line string)
	// EndGame signals that the session is over. It produces no output.
	EndGame()
}

type CommandType string

const (
	CmdHelp      CommandType = "help"
	CmdLook      CommandType = "look"
	CmdInventory CommandType = "inventory"
	CmdMove      CommandType = "move"
	CmdTake      CommandType = "take"
	CmdUse       CommandType = "use"
	CmdNone      CommandType = ""
)

// parseCommand normalizes the input line and returns the command type
// and its argument, if any. Unrecognized input returns CmdNone.
func parseCommand(input string) (CommandType, string) {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	switch trimmed {
	case "help":
		return CmdHelp, ""
	case "look":
		return CmdLook, ""
	case "inventory":
		return CmdInventory, ""
	case "north", "south", "east", "west":
		return CmdMove, trimmed
	}
	if arg, ok := strings.CutPrefix(trimmed, "take "); ok {
		return CmdTake, arg
	}
	if arg, ok := strings.CutPrefix(trimmed, "use "); ok {
		return CmdUse, arg
	}
	return CmdNone, ""
}

// Controller owns one session's game state and drives it from player
// input. It never returns errors to the host: every bad input resolves
// to an output line and an unchanged state.
type Controller struct {
	state  *state.GameState
	host   Host
	logger *slog.Logger
	ended  bool
}

// NewController creates a controller for a fresh session.
func NewController(host Host, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		state:  state.NewGameState(),
		host:   host,
		logger: logger,
	}
}

// State exposes the session state for status panels and tests.
// Callers must not mutate it.
func (c *Controller) State() *state.GameState { return c.state }

// Ended reports whether the session has reached an ending.
func (c *Controller) Ended() bool { return c.ended }

// Begin emits the introduction and the starting location description.
func (c *Controller) Begin() {
	c.logger.Debug("session started", "id", c.state.ID)
	for _, line := range introLines {
		c.host.Write(line)
	}
	c.describeLocation()
}

// Handle processes one line of player input. Input delivered after an
// ending is ignored.
func (c *Controller) Handle(input string) {
	if c.ended {
		return
	}
	cmd, arg := parseCommand(input)
	c.logger.Debug("handling command", "command", string(cmd), "arg", arg)

	switch cmd {
	case CmdHelp:
		c.write(msgHelp)
	case CmdLook:
		c.describeLocation()
	case CmdInventory:
		c.write(c.state.DescribeInventory())
	case CmdMove:
		c.move(world.Direction(arg))
	case CmdTake:
		c.take(arg)
	case CmdUse:
		c.use(arg)
	default:
		c.write(msgUnknown)
	}
}

// write splits multi-line messages so the host always receives single
// transcript lines.
func (c *Controller) write(text string) {
	for _, line := range strings.Split(text, "\n") {
		c.host.Write(line)
	}
}

func (c *Controller) move(dir world.Direction) {
	dest, ok := world.Move(c.state.CurrentLocation, dir)
	if !ok {
		c.write(msgNoPath)
		return
	}

	// The throne hall admits only a bearer of the binyeo, and only
	// once the hall itself has been blessed.
	if c.state.CurrentLocation == world.Courtyard && dir == world.North {
		if !c.state.HasItem(world.Binyeo) {
			c.write(msgThroneNeedBinyeo)
			return
		}
		if !c.state.IsBlessed(world.ThroneHall) {
			c.write(msgThroneNotBlessed)
			return
		}
	}

	c.state.CurrentLocation = dest
	c.describeLocation()
}

func (c *Controller) take(name string) {
	item, ok := world.ParseItem(name)
	if !ok {
		c.write(fmt.Sprintf(msgNotTakeable, name))
		return
	}
	if world.Pickups[c.state.CurrentLocation] != item {
		c.write(fmt.Sprintf(msgNothingToTake, item))
		return
	}
	if !c.state.AddItem(item) {
		c.write(fmt.Sprintf(msgAlreadyHave, item))
		return
	}
	switch item {
	case world.Binyeo:
		c.write(msgTakeBinyeo)
	case world.Scroll:
		c.write(msgTakeScroll)
	case world.Incense:
		c.write(msgTakeIncense)
	}
}

func (c *Controller) use(name string) {
	item, ok := world.ParseItem(name)
	if !ok {
		c.write(fmt.Sprintf(msgNotUsable, name))
		return
	}
	if !c.state.HasItem(item) {
		c.write(fmt.Sprintf(msgNotHeld, item))
		return
	}

	// The scroll can be read anywhere, as often as the player likes.
	if item == world.Scroll {
		c.state.HasReadScroll = true
		c.write(msgScrollLore)
		return
	}

	switch {
	case c.state.CurrentLocation == world.Courtyard && item == world.Binyeo:
		if sp, ok := c.state.SacredPlaces[world.ThroneHall]; ok && sp.Bless(item) {
			c.write(msgThroneBlessed)
			return
		}
	case c.state.CurrentLocation == world.Temple && item == world.Incense:
		if sp, ok := c.state.SacredPlaces[world.Temple]; ok && sp.Bless(item) {
			c.write(msgTempleOffering)
			if c.state.HasReadScroll {
				for _, line := range victoryLines {
					c.host.Write(line)
				}
				c.state.HasFoundSecret = true
				c.endGame()
			}
			return
		}
	}
	c.write(msgNothingHappens)
}

// describeLocation emits the current location's description. The
// temple is the only location with conditional, game-ending behavior.
func (c *Controller) describeLocation() {
	switch c.state.CurrentLocation {
	case world.MainGate:
		c.write(msgMainGate)
	case world.Courtyard:
		c.write(msgCourtyard)
		if !c.state.HasItem(world.Binyeo) {
			c.write(msgCourtyardItem)
		}
		c.write(msgCourtyardPath)
	case world.ThroneHall:
		c.write(msgThroneHall)
	case world.Library:
		c.write(msgLibrary)
		if !c.state.HasItem(world.Scroll) {
			c.write(msgLibraryItem)
		}
		c.write(msgLibraryPath)
	case world.Garden:
		c.write(msgGarden)
		if !c.state.HasItem(world.Incense) {
			c.write(msgGardenItem)
		}
		c.write(msgGardenPath)
	case world.Temple:
		c.resolveTemple()
	}
}

// resolveTemple runs every time the temple is described. Entering
// unprepared triggers the banishment ending on the very first
// description; after victory the temple has nothing more to say.
func (c *Controller) resolveTemple() {
	switch {
	case !c.state.HasFoundSecret && !c.state.HasReadScroll && !c.state.IsBlessed(world.Temple):
		for _, line := range banishmentLines {
			c.host.Write(line)
		}
		c.state.HasBeenBanished = true
		c.endGame()
	case !c.state.HasFoundSecret:
		c.write(msgTemple)
	}
}

func (c *Controller) endGame() {
	c.ended = true
	c.logger.Info("session ended",
		"id", c.state.ID,
		"found_secret", c.state.HasFoundSecret,
		"banished", c.state.HasBeenBanished)
	c.host.EndGame()
}
