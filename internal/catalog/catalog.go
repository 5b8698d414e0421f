// Package catalog builds the ordered episode list for a character.
package catalog

import (
	"fmt"

	"github.com/chubflix/episode-stage/internal/model"
	"github.com/chubflix/episode-stage/internal/title"
)

// Build derives the episode catalog from a character card. The result is
// never empty: a card with no greetings yields a single default episode.
// Entries whose greeting yields no title get the positional default
// "Episode N" (1-based).
func Build(c model.Character) []model.Episode {
	episodes := make([]model.Episode, 0, 1+len(c.AlternateGreetings))
	episodes = append(episodes, newEpisode(0, c.Greeting))
	for i, g := range c.AlternateGreetings {
		episodes = append(episodes, newEpisode(i+1, g))
	}
	return episodes
}

// CharacterName returns the card's name, or a fixed placeholder when absent.
func CharacterName(c model.Character) string {
	if c.Name == "" {
		return model.UnknownCharacterName
	}
	return c.Name
}

// Titles projects the catalog's titles in order, for the init snapshot.
func Titles(episodes []model.Episode) []string {
	titles := make([]string, len(episodes))
	for i, e := range episodes {
		titles[i] = e.Title
	}
	return titles
}

func newEpisode(index int, text string) model.Episode {
	t, ok := title.Extract(text)
	if !ok {
		t = fmt.Sprintf("Episode %d", index+1)
	}
	return model.Episode{Index: index, Title: t, SourceText: text}
}
