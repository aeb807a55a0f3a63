package game

// All fixed player-facing text lives here so the dispatch code stays
// readable and tests can match lines exactly.

var introLines = []string{
	"Night falls over the old royal palace of Gungwol.",
	"Rumor speaks of a secret sealed away in the palace temple,",
	"waiting for the one who comes prepared.",
	"",
	"Type 'help' at any time to see the commands.",
	"",
}

const msgHelp = `Commands:
  north, south, east, west  - walk in that direction
  look                      - describe where you are
  take <item>               - pick something up
  use <item>                - use something you are carrying
  inventory                 - list what you are carrying`

const msgUnknown = "I don't understand that command. Type 'help' for the list of commands."

const msgNoPath = "You cannot go that way."

// Courtyard -> north guard refusals, one per missing prerequisite.
const (
	msgThroneNeedBinyeo = `A guard bars the way north. "None may enter the throne hall without a token of the royal house."`
	msgThroneNotBlessed = "The doors of the throne hall hold fast. The binyeo you carry is cold and silent; the hall has not yet answered it."
)

// Location descriptions. The courtyard, library and garden mention
// their item only while it has not been collected.
const (
	msgMainGate      = "You stand before the main gate of the palace. Stone walls stretch away into the dark on either side.\nA path leads north into the courtyard."
	msgCourtyard     = "The great courtyard lies silent under the moon. Lanterns gutter along the colonnade."
	msgCourtyardItem = "Something glints between the flagstones: a silver binyeo, a hairpin of the royal house."
	msgCourtyardPath = "Paths lead north to the throne hall, east to the library, and south to the main gate."
	msgThroneHall    = "The throne hall is vast and empty. The phoenix throne waits beneath a painted canopy.\nDoors lead east to the garden and south to the courtyard."
	msgLibrary       = "Shelves of mulberry-paper books rise to the rafters of the royal library."
	msgLibraryItem   = "A single scroll rests on the reading table, its seal already broken."
	msgLibraryPath   = "The only door leads west, back to the courtyard."
	msgGarden        = "The rear garden is heavy with the scent of pine. A stream murmurs beneath a stone bridge."
	msgGardenItem    = "On a weathered altar sits a bundle of temple incense."
	msgGardenPath    = "Stone steps climb north to the temple, and a gate leads west to the throne hall."
	msgTemple        = "The temple is still. An empty brazier waits before the altar, and the air hums with something unspoken.\nSteps lead south, back down to the garden."
)

var banishmentLines = []string{
	"As you cross the temple threshold, the air turns cold.",
	"Unseen guardians stir in the rafters. You carry no proof of the throne's favor,",
	"and the old words mean nothing to you.",
	"A force beyond argument turns you about and marches you out through the palace gates,",
	"which close behind you forever.",
	"",
	"Your journey ends here.",
}

var victoryLines = []string{
	"The words of the scroll rise unbidden to your lips, and the temple answers.",
	"Behind the altar a hidden door slides open on the royal secret:",
	"the true history of the dynasty, written in the first king's own hand.",
	"",
	"You have found what was hidden. Your journey is complete.",
}

// Take / use outcomes.
const (
	msgTakeBinyeo  = "You lift the binyeo and set it in your hair. It is colder than the night air."
	msgTakeScroll  = "You take the scroll. The paper smells of dust and old smoke."
	msgTakeIncense = "You take the bundle of incense from the altar."

	msgAlreadyHave    = "You already have the %s."
	msgNotTakeable    = "'%s' is not something you can take."
	msgNothingToTake  = "There is no %s here to take."
	msgNotUsable      = "'%s' is not something you can use."
	msgNotHeld        = "You don't have a %s."
	msgNothingHappens = "Nothing happens."

	msgThroneBlessed  = "You raise the binyeo toward the throne hall. A low resonance rolls across the courtyard, and the great doors shudder in answer."
	msgTempleOffering = "You set the incense in the brazier and bow. Sweet smoke coils toward the rafters. The offering is accepted."

	msgScrollLore = "You unroll the scroll and read:\n\"The throne answers only the royal binyeo. Bless the hall from the courtyard below,\nthen carry fire's fragrance to the temple on the hill.\""
)
