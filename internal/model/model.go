// Package model defines the episode and snapshot data types.
package model

// UnknownCharacterName is used when a character card carries no name.
const UnknownCharacterName = "Unknown Character"

// Character is the read-only character card supplied at construction.
type Character struct {
	Name               string   `json:"name"`
	Greeting           string   `json:"greeting"`
	AlternateGreetings []string `json:"alternateGreetings,omitempty"`
}

// Episode is one greeting treated as a narrative unit. Index 0 is the
// primary greeting; 1..N are the alternate greetings in card order.
type Episode struct {
	Index      int    `json:"index"`
	Title      string `json:"title"`
	SourceText string `json:"sourceText"`
}

// Themes accepted by the theme option.
const (
	ThemeDark     = "dark"
	ThemeLight    = "light"
	ThemeChubflix = "chubflix"
)

// Config holds the five recognized stage options. Only InjectContext
// affects core behavior; the rest are display hints for the host.
type Config struct {
	ShowEpisodeNumber bool   `json:"showEpisodeNumber"`
	ShowProgress      bool   `json:"showProgress"`
	ButtonText        string `json:"buttonText"`
	InjectContext     bool   `json:"injectContext"`
	Theme             string `json:"theme"`
}

// Message is the per-turn input the host hands to the stage hooks.
type Message struct {
	Content string `json:"content"`
}

// InitState is the init-time snapshot layer. Written once when the
// catalog is built; re-derivable from the character card at any time.
type InitState struct {
	TotalEpisodes int      `json:"totalEpisodes"`
	CharacterName string   `json:"characterName"`
	EpisodeTitles []string `json:"episodeTitles"`
}

// ChatState is the per-chat snapshot layer, written after every turn.
type ChatState struct {
	HighestEpisodeReached int  `json:"highestEpisodeReached"`
	Completed             bool `json:"completed"`
}

// TurnState is the per-turn snapshot layer. The host hands one back on
// branch/rewind so the stage can conform to that turn's position.
type TurnState struct {
	CurrentEpisode int    `json:"currentEpisode"`
	StartedAt      string `json:"startedAt"`
}
