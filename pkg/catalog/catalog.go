// Package catalog holds the static default data the API serves when the
// document store is unavailable, and the seed data inserted on startup.
package catalog

import (
	"strings"

	"github.com/portls-labs/portls/pkg/types"
)

// DefaultPlanets returns the built-in planets. A fresh slice is returned
// on every call so callers can annotate entries without affecting others.
func DefaultPlanets() []types.Planet {
	return []types.Planet{
		{
			Name:              "Glubublub",
			Tagline:           "Coral cities beneath sapphire seas",
			Description:       "An underwater alien world with glowing reefs, bubble metros, and coral castles.",
			DistanceLY:        12.5,
			Difficulty:        "Easy",
			FeaturedCreatures: []string{"Bubblebacks", "Coral Crabs", "Kelp Knights"},
			ToyCategories:     []string{"Water Blasters", "Submarine Kits", "Sea Puzzles"},
			AgeRecommendation: "5-10",
			TravelTime:        "3 min through Aquaport Wormhole",
			Atmosphere:        "High-pressure ocean, neon reefs, bubble oxygen domes",
			HeroImage:         "/assets/planets/glubublub.jpg",
		},
		{
			Name:              "Unicornucopia",
			Tagline:           "Rainbow forests and shimmering skies",
			Description:       "Lush rainbow woods, crystal rivers, and friendly unicorn guides.",
			DistanceLY:        8.2,
			Difficulty:        "Easy",
			FeaturedCreatures: []string{"Star Unicorns", "Glimmer Owls"},
			ToyCategories:     []string{"Plushies", "Craft Kits", "Rainbow Wands"},
			AgeRecommendation: "4-9",
			TravelTime:        "2 min through Prism Gate",
			Atmosphere:        "Pastel mists, candy clouds, gentle breezes",
			HeroImage:         "/assets/planets/unicornucopia.jpg",
		},
		{
			Name:              "Lavar Major",
			Tagline:           "Rivers of lava and magma dragons",
			Description:       "Volcanic world with basalt fortresses and fireproof markets.",
			DistanceLY:        21.0,
			Difficulty:        "Hard",
			FeaturedCreatures: []string{"Magma Dragons", "Lava Lizards"},
			ToyCategories:     []string{"Fireproof Blocks", "Volcano Labs"},
			AgeRecommendation: "8-12",
			TravelTime:        "6 min through Ember Rift",
			Atmosphere:        "Ash clouds, lava flows, heat domes",
			HeroImage:         "/assets/planets/lavar-major.jpg",
		},
		{
			Name:              "Whispris",
			Tagline:           "Floating pastel cloud isles",
			Description:       "A hush-quiet sky realm of soft isles and whisper creatures.",
			DistanceLY:        15.7,
			Difficulty:        "Medium",
			FeaturedCreatures: []string{"Whisper Whales", "Cloud Sprites"},
			ToyCategories:     []string{"Gliders", "Kite Labs", "Soft Crafts"},
			AgeRecommendation: "6-11",
			TravelTime:        "4 min through Nimbus Loop",
			Atmosphere:        "Low gravity, pastel fog, sky gardens",
			HeroImage:         "/assets/planets/whispris.jpg",
		},
	}
}

// FindDefaultPlanet looks a default planet up by name, case-insensitively.
func FindDefaultPlanet(name string) (types.Planet, bool) {
	for _, p := range DefaultPlanets() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return types.Planet{}, false
}

// DemoToys returns the demo toy inventory.
func DemoToys() []types.Toy {
	return []types.Toy{
		{Name: "Bubble Blaster 3000", Planet: "Glubublub", Theme: "Water", AgeRange: "5-9", Price: 19.99},
		{Name: "Rainbow Wand Kit", Planet: "Unicornucopia", Theme: "Magic", AgeRange: "4-8", Price: 14.99},
		{Name: "Volcano Lab Set", Planet: "Lavar Major", Theme: "Science", AgeRange: "8-12", Price: 29.99},
	}
}

// ToysForPlanet filters the demo toys by source planet, case-insensitively.
func ToysForPlanet(planet string) []types.Toy {
	toys := make([]types.Toy, 0)
	for _, t := range DemoToys() {
		if strings.EqualFold(t.Planet, planet) {
			toys = append(toys, t)
		}
	}
	return toys
}

// DefaultProfile builds the demo profile served when the requested user has
// no stored profile.
func DefaultProfile(username string) types.Profile {
	return types.Profile{
		Username:   username,
		AvatarType: "kid",
		Badges: []types.Badge{
			{Name: "First Jump", Description: "Completed your first wormhole jump!"},
		},
		Achievements: []types.Achievement{
			{Title: "Explorer", Description: "Visited 2 planets"},
		},
		SavedPlanets: []string{"Unicornucopia", "Whispris"},
		Collectibles: []string{"Starlight Sticker", "Coral Coin"},
		TravelLog:    []string{"Visited Sparklehorn Galaxy 2 days ago!"},
	}
}
