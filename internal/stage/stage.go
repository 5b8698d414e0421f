// Package stage implements the episode-tracking lifecycle contract: the
// host constructs one Stage per chat and drives it through load,
// before-turn, after-turn, and restore events. The stage holds the
// authoritative in-memory position; the snapshots it emits are the
// serialization of that state for host-side storage.
package stage

import (
	"fmt"
	"time"

	"github.com/chubflix/episode-stage/internal/catalog"
	"github.com/chubflix/episode-stage/internal/eventlog"
	"github.com/chubflix/episode-stage/internal/model"
	"github.com/chubflix/episode-stage/internal/nav"
)

// Stage tracks one chat's position in a character's episode catalog.
// All methods are synchronous and must be called from a single goroutine;
// the host's event discipline serializes them.
type Stage struct {
	characterName string
	episodes      []model.Episode
	state         *nav.State
	cfg           model.Config
	events        *eventlog.Log
}

// LoadResult carries the snapshots emitted on the load event.
type LoadResult struct {
	Init model.InitState
	Chat model.ChatState
}

// BeforeResult carries the outputs of the before-model hook.
type BeforeResult struct {
	DisplayText      string
	Turn             model.TurnState
	Chat             model.ChatState
	SystemMessage    string
	HasSystemMessage bool
}

// AfterResult carries the outputs of the after-model hook.
type AfterResult struct {
	DisplayText string
	Turn        model.TurnState
	Chat        model.ChatState
}

// NavResult carries fresh snapshots after a navigation action.
type NavResult struct {
	DisplayText string
	Turn        model.TurnState
	Chat        model.ChatState
}

// New builds a stage for the given character card and options. The
// catalog is built once and is immutable for the life of the stage.
// Navigation always starts at episode zero with a cleared high-water
// mark and completed flag; prior chat snapshots are not consulted.
func New(c model.Character, cfg model.Config) *Stage {
	episodes := catalog.Build(c)
	s := &Stage{
		characterName: catalog.CharacterName(c),
		episodes:      episodes,
		state:         nav.NewState(len(episodes)),
		cfg:           cfg,
		events:        eventlog.New(eventlog.DefaultCapacity),
	}
	s.events.Append("init", fmt.Sprintf("catalog built: %d episodes", len(episodes)))
	return s
}

// Episodes returns the immutable episode catalog.
func (s *Stage) Episodes() []model.Episode { return s.episodes }

// CharacterName returns the character's display name.
func (s *Stage) CharacterName() string { return s.characterName }

// Events returns the retained diagnostic events, oldest first.
func (s *Stage) Events() []eventlog.Event { return s.events.Events() }

// Load emits the init-time snapshot and the current chat snapshot.
func (s *Stage) Load() LoadResult {
	s.events.Append("load", "")
	return LoadResult{
		Init: model.InitState{
			TotalEpisodes: len(s.episodes),
			CharacterName: s.characterName,
			EpisodeTitles: catalog.Titles(s.episodes),
		},
		Chat: s.chatState(),
	}
}

// BeforeTurn is the before-model hook. It raises the high-water mark,
// emits fresh chat and turn snapshots, and, when context injection is
// enabled, a system message for the downstream model.
func (s *Stage) BeforeTurn(msg model.Message) BeforeResult {
	s.state.TurnStart()
	s.events.Append("before", s.positionDetail())
	r := BeforeResult{
		DisplayText: s.displayText(),
		Turn:        s.turnState(),
		Chat:        s.chatState(),
	}
	if ctx, ok := BuildContext(s.episodes, s.state, s.cfg.InjectContext); ok {
		r.SystemMessage = ctx
		r.HasSystemMessage = true
	}
	return r
}

// AfterTurn is the after-model hook. It recomputes the completed flag
// and emits fresh snapshots. It produces no system message.
func (s *Stage) AfterTurn(msg model.Message) AfterResult {
	s.state.TurnEnd()
	s.events.Append("after", s.positionDetail())
	return AfterResult{
		DisplayText: s.displayText(),
		Turn:        s.turnState(),
		Chat:        s.chatState(),
	}
}

// Restore conforms the stage to a previously persisted turn snapshot
// when the host jumps the conversation to a different stored turn. The
// incoming index is accepted as given, without bounds validation.
func (s *Stage) Restore(turn model.TurnState) {
	s.state.RestoreTo(turn.CurrentEpisode)
	s.events.Append("restore", s.positionDetail())
}

// Advance moves to the next episode (no-op at the last) and returns
// fresh snapshots for the host to persist.
func (s *Stage) Advance() NavResult {
	s.state.Advance()
	s.events.Append("advance", s.positionDetail())
	return s.navResult()
}

// Retreat moves to the previous episode (no-op at the first) and
// returns fresh snapshots for the host to persist.
func (s *Stage) Retreat() NavResult {
	s.state.Retreat()
	s.events.Append("retreat", s.positionDetail())
	return s.navResult()
}

// Jump sets the episode index directly, unchecked, and returns fresh
// snapshots. Like Restore it leaves the high-water mark and completed
// flag alone.
func (s *Stage) Jump(index int) NavResult {
	s.state.RestoreTo(index)
	s.events.Append("jump", s.positionDetail())
	return s.navResult()
}

// Snapshot emits the current snapshots without changing state, for
// hosts that persist after an out-of-band restore.
func (s *Stage) Snapshot() NavResult {
	return s.navResult()
}

func (s *Stage) navResult() NavResult {
	return NavResult{
		DisplayText: s.displayText(),
		Turn:        s.turnState(),
		Chat:        s.chatState(),
	}
}

func (s *Stage) chatState() model.ChatState {
	return model.ChatState{
		HighestEpisodeReached: s.state.Highest(),
		Completed:             s.state.Completed(),
	}
}

func (s *Stage) turnState() model.TurnState {
	return model.TurnState{
		CurrentEpisode: s.state.Current(),
		StartedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *Stage) displayText() string {
	return fmt.Sprintf("Episode %d/%d", s.state.Current()+1, len(s.episodes))
}

func (s *Stage) positionDetail() string {
	return fmt.Sprintf("episode %d", s.state.Current())
}
