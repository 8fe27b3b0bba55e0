package entities

// Race is a playable race. Values match the narrator wire format, so they
// are display-cased rather than snake_cased.
type Race string

// Playable races.
const (
	RaceHuman      Race = "Human"
	RaceElf        Race = "Elf"
	RaceDwarf      Race = "Dwarf"
	RaceHalfling   Race = "Halfling"
	RaceGnome      Race = "Gnome"
	RaceOrc        Race = "Orc"
	RaceTiefling   Race = "Tiefling"
	RaceDragonborn Race = "Dragonborn"
	RaceGoliath    Race = "Goliath"
	RaceAarakocra  Race = "Aarakocra"
)

// Races returns all playable races.
func Races() []Race {
	return []Race{
		RaceHuman, RaceElf, RaceDwarf, RaceHalfling, RaceGnome,
		RaceOrc, RaceTiefling, RaceDragonborn, RaceGoliath, RaceAarakocra,
	}
}

// Valid reports whether r is a known race.
func (r Race) Valid() bool {
	for _, known := range Races() {
		if r == known {
			return true
		}
	}
	return false
}

// Class is a character class.
type Class string

// Character classes.
const (
	ClassFighter   Class = "Fighter"
	ClassWizard    Class = "Wizard"
	ClassRogue     Class = "Rogue"
	ClassCleric    Class = "Cleric"
	ClassBarbarian Class = "Barbarian"
	ClassRanger    Class = "Ranger"
	ClassSorcerer  Class = "Sorcerer"
	ClassBard      Class = "Bard"
)

// Classes returns all character classes.
func Classes() []Class {
	return []Class{
		ClassFighter, ClassWizard, ClassRogue, ClassCleric,
		ClassBarbarian, ClassRanger, ClassSorcerer, ClassBard,
	}
}

// Valid reports whether c is a known class.
func (c Class) Valid() bool {
	for _, known := range Classes() {
		if c == known {
			return true
		}
	}
	return false
}

// Personality is a character's dominant trait. It keys the party
// interaction suggestion table.
type Personality string

// Personality traits.
const (
	PersonalityBrave    Personality = "Brave"
	PersonalityCautious Personality = "Cautious"
	PersonalityCurious  Personality = "Curious"
	PersonalityLoyal    Personality = "Loyal"
	PersonalityWitty    Personality = "Witty"
	PersonalityGruff    Personality = "Gruff"
)

// Personalities returns all personality traits.
func Personalities() []Personality {
	return []Personality{
		PersonalityBrave, PersonalityCautious, PersonalityCurious,
		PersonalityLoyal, PersonalityWitty, PersonalityGruff,
	}
}

// Valid reports whether p is a known personality.
func (p Personality) Valid() bool {
	for _, known := range Personalities() {
		if p == known {
			return true
		}
	}
	return false
}

// Quirk is a character's memorable habit.
type Quirk string

// Character quirks.
const (
	QuirkCollectsTrinkets    Quirk = "Collects odd trinkets"
	QuirkHumsWhenNervous     Quirk = "Hums when nervous"
	QuirkObsessedWithFood    Quirk = "Obsessed with specific food"
	QuirkTalksToWeapon       Quirk = "Talks to weapon"
	QuirkSuperstitious       Quirk = "Superstitious about omens"
	QuirkKeepsJournal        Quirk = "Keeps detailed journal"
	QuirkAfraidOfCommonThing Quirk = "Afraid of common thing"
	QuirkAlwaysBarters       Quirk = "Always tries to barter"
	QuirkSpeaksInRhymes      Quirk = "Speaks in rhymes when tense"
	QuirkHasLuckyCharm       Quirk = "Has lucky charm"
)

// Quirks returns all character quirks.
func Quirks() []Quirk {
	return []Quirk{
		QuirkCollectsTrinkets, QuirkHumsWhenNervous, QuirkObsessedWithFood,
		QuirkTalksToWeapon, QuirkSuperstitious, QuirkKeepsJournal,
		QuirkAfraidOfCommonThing, QuirkAlwaysBarters, QuirkSpeaksInRhymes,
		QuirkHasLuckyCharm,
	}
}

// Valid reports whether q is a known quirk.
func (q Quirk) Valid() bool {
	for _, known := range Quirks() {
		if q == known {
			return true
		}
	}
	return false
}
