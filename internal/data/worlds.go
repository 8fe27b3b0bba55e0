// Package data holds the authored world catalog offered during world
// selection.
package data

import (
	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// DefaultWorldChoices is how many worlds a new session is offered.
const DefaultWorldChoices = 3

var worldCatalog = []entities.World{
	{
		ID:          "shattered-isles",
		Name:        "The Shattered Isles",
		Description: "A tropical archipelago of floating islands suspended by ancient magic, surrounded by stormy seas and glowing coral reefs.",
		Inhabitants: "Merfolk traders, sky-pirate humans, and sentient storm elementals. Ruled by the Coral Queen, a merfolk sorceress.",
		Backstory:   "The isles were once a single continent, shattered by a forgotten god's wrath. Ancient ruins hold clues to restoring the land.",
		PlotHook:    "The Coral Queen seeks adventurers to recover a lost relic from a sunken ruin, but sky pirates and a rogue elemental conspire to claim it.",
		Theme:       "tropical-magical",
	},
	{
		ID:          "emberfall",
		Name:        "Emberfall",
		Description: "A volcanic wasteland dotted with ash-choked cities and glowing lava rivers, illuminated by a crimson sky.",
		Inhabitants: "Fire-resistant dwarves, ashkin nomads, and draconic beasts. Governed by the Ember Council, a group of dwarven smiths.",
		Backstory:   "A cataclysmic eruption buried the old empire, leaving survivors to rebuild amid constant volcanic threats.",
		PlotHook:    "A mysterious ashkin prophet foretells a second eruption unless a sacred forge is relit in the heart of a volcano.",
		Theme:       "volcanic-apocalyptic",
	},
	{
		ID:          "verdant-hollow",
		Name:        "Verdant Hollow",
		Description: "A lush forest realm where colossal trees form natural cities, connected by vine bridges and glowing mushrooms.",
		Inhabitants: "Wood elves, treant guardians, and mischievous fey. Guided by the Elder Grove, a council of ancient treants.",
		Backstory:   "The forest was once a battlefield for gods, leaving behind magical seeds that birthed the great trees.",
		PlotHook:    "A blight is spreading, corrupting the trees. The Elder Grove tasks adventurers with finding its source in a fey-haunted glade.",
		Theme:       "mystical-forest",
	},
	{
		ID:          "crystal-veil",
		Name:        "The Crystal Veil",
		Description: "A frozen tundra where crystalline spires refract auroras, hiding ancient ruins beneath the ice.",
		Inhabitants: "Frost giants, ice-elf scholars, and spectral wolves. Ruled by the Veil King, a reclusive giant mage.",
		Backstory:   "The tundra was sealed by a magical veil to trap an ancient evil, but cracks are forming.",
		PlotHook:    "The Veil King seeks heroes to investigate cracks in the crystal spires, uncovering a cult trying to free the trapped evil.",
		Theme:       "arctic-mystical",
	},
	{
		ID:          "starfall-expanse",
		Name:        "Starfall Expanse",
		Description: "A desert of glass formed by a fallen star, dotted with nomadic camps and celestial ruins.",
		Inhabitants: "Nomadic gnomes, star-worshipping orcs, and sand elementals. Led by the Stargazer, a gnome oracle.",
		Backstory:   "The star's fall brought magic to the desert, but also awakened a buried celestial beast.",
		PlotHook:    "The Stargazer dreams of the beast stirring, sending adventurers to find a star-shard to pacify it.",
		Theme:       "celestial-desert",
	},
	{
		ID:          "ebon-depths",
		Name:        "The Ebon Depths",
		Description: "A subterranean network of glowing caverns, filled with bioluminescent fungi and underground lakes.",
		Inhabitants: "Drow assassins, duergar miners, and sentient crystal spiders. Ruled by the Shadow Matron, a drow priestess.",
		Backstory:   "The caverns were a refuge for exiles, but a dark ritual threatens to unleash an ancient horror.",
		PlotHook:    "The Shadow Matron hires adventurers to stop a rogue drow from completing the ritual in a cursed cavern.",
		Theme:       "underground-dark",
	},
	{
		ID:          "skyhaven",
		Name:        "Skyhaven",
		Description: "A realm of floating citadels above endless clouds, connected by magical skyships.",
		Inhabitants: "Aarakocra scouts, human artificers, and cloud dragons. Governed by the Sky Council, a mix of races.",
		Backstory:   "The citadels were built to escape a flooded world below, but tensions rise over dwindling resources.",
		PlotHook:    "A citadel is falling, and adventurers must find a lost sky crystal to restore its levitation magic.",
		Theme:       "sky-floating",
	},
	{
		ID:          "wailing-marshes",
		Name:        "The Wailing Marshes",
		Description: "A misty swamp with twisted trees and ghostly lights, haunted by ancient spirits.",
		Inhabitants: "Lizardfolk shamans, will-o'-wisp tricksters, and bog trolls. Led by the Marsh Oracle, a lizardfolk seer.",
		Backstory:   "The marshes were cursed by a betrayed spirit, trapping souls in eternal unrest.",
		PlotHook:    "The Marsh Oracle seeks heroes to appease the spirit by recovering its lost relic from a troll-infested ruin.",
		Theme:       "haunted-swamp",
	},
	{
		ID:          "ironcrag-mountains",
		Name:        "Ironcrag Mountains",
		Description: "A rugged mountain range with fortified keeps and molten forges, scarred by ancient wars.",
		Inhabitants: "Goliath warriors, dwarf smiths, and fire drakes. Ruled by the Iron King, a goliath warlord.",
		Backstory:   "The mountains were forged in a war between giants and dragons, leaving hidden armories.",
		PlotHook:    "A drake-riding warband threatens the keeps, and the Iron King needs adventurers to find a legendary weapon.",
		Theme:       "mountainous-warfare",
	},
	{
		ID:          "twilight-enclave",
		Name:        "The Twilight Enclave",
		Description: "A mystical forest where day and night coexist, with glowing flora and shadow creatures.",
		Inhabitants: "Halfling druids, shadow elves, and moon beasts. Guided by the Twilight Circle, a druidic council.",
		Backstory:   "The enclave exists in a magical balance, but a shadow rift threatens to consume it.",
		PlotHook:    "The Twilight Circle tasks adventurers with closing the rift by finding a moonstone in a beast-filled grove.",
		Theme:       "twilight-mystical",
	},
}

// Worlds returns the full catalog. Callers get copies; the catalog itself is
// immutable.
func Worlds() []*entities.World {
	out := make([]*entities.World, len(worldCatalog))
	for i := range worldCatalog {
		w := worldCatalog[i]
		out[i] = &w
	}
	return out
}

// WorldByID looks up a catalog world.
func WorldByID(id string) (*entities.World, error) {
	for i := range worldCatalog {
		if worldCatalog[i].ID == id {
			w := worldCatalog[i]
			return &w, nil
		}
	}
	return nil, errors.NotFoundf("world not found: %s", id)
}

// RandomWorlds draws count distinct worlds from the catalog using the given
// roller. Count 0 means DefaultWorldChoices; counts past the catalog size are
// clamped.
func RandomWorlds(roller rpgdice.Roller, count int) ([]*entities.World, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("count must not be negative, got %d", count)
	}
	if count == 0 {
		count = DefaultWorldChoices
	}
	if count > len(worldCatalog) {
		count = len(worldCatalog)
	}

	// partial Fisher-Yates driven by the injected roller
	pool := Worlds()
	for i := 0; i < count; i++ {
		roll, err := roller.Roll(len(pool) - i)
		if err != nil {
			return nil, err
		}
		j := i + roll - 1
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}
