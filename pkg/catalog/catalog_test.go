package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlanets(t *testing.T) {
	planets := DefaultPlanets()
	require.Len(t, planets, 4)

	names := make([]string, 0, len(planets))
	for _, p := range planets {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Difficulty, "planet %s", p.Name)
		assert.NotEmpty(t, p.AgeRecommendation, "planet %s", p.Name)
		assert.Greater(t, p.DistanceLY, 0.0, "planet %s", p.Name)
		assert.Empty(t, p.ID, "default planets carry no id")
	}
	assert.Equal(t, []string{"Glubublub", "Unicornucopia", "Lavar Major", "Whispris"}, names)
}

func TestDefaultPlanets_FreshSlice(t *testing.T) {
	first := DefaultPlanets()
	first[0].ID = "mutated"
	first[0].Name = "mutated"

	second := DefaultPlanets()
	assert.Equal(t, "Glubublub", second[0].Name)
	assert.Empty(t, second[0].ID)
}

func TestFindDefaultPlanet(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{name: "exact match", query: "Whispris", want: "Whispris", found: true},
		{name: "case insensitive", query: "lavar major", want: "Lavar Major", found: true},
		{name: "unknown planet", query: "Krypton", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := FindDefaultPlanet(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, p.Name)
			}
		})
	}
}

func TestToysForPlanet(t *testing.T) {
	toys := ToysForPlanet("glubublub")
	require.Len(t, toys, 1)
	assert.Equal(t, "Bubble Blaster 3000", toys[0].Name)

	assert.Empty(t, ToysForPlanet("Krypton"))
	assert.Len(t, DemoToys(), 3)
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile("astrokid")

	assert.Equal(t, "astrokid", p.Username)
	assert.Equal(t, "kid", p.AvatarType)
	require.Len(t, p.Badges, 1)
	assert.Equal(t, "First Jump", p.Badges[0].Name)
	require.Len(t, p.Achievements, 1)
	assert.Equal(t, "Explorer", p.Achievements[0].Title)
	assert.Equal(t, []string{"Unicornucopia", "Whispris"}, p.SavedPlanets)
}
