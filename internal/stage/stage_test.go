package stage

import (
	"strings"
	"testing"

	"github.com/chubflix/episode-stage/internal/model"
)

func testCharacter() model.Character {
	return model.Character{
		Name:     "Mara",
		Greeting: "**Pilot**\nHello",
		AlternateGreetings: []string{
			"**Twist**\nA turn",
			"Goodbye for now",
		},
	}
}

func TestLoadEmitsInitSnapshot(t *testing.T) {
	st := New(testCharacter(), model.Config{})
	load := st.Load()

	if load.Init.TotalEpisodes != 3 {
		t.Errorf("expected 3 episodes, got %d", load.Init.TotalEpisodes)
	}
	if load.Init.CharacterName != "Mara" {
		t.Errorf("expected 'Mara', got %q", load.Init.CharacterName)
	}
	want := []string{"Pilot", "Twist", "Goodbye for now"}
	for i, w := range want {
		if load.Init.EpisodeTitles[i] != w {
			t.Errorf("title %d: expected %q, got %q", i, w, load.Init.EpisodeTitles[i])
		}
	}
	if load.Chat.HighestEpisodeReached != 0 || load.Chat.Completed {
		t.Errorf("expected zero chat snapshot, got %+v", load.Chat)
	}
}

func TestBeforeTurnInjectsContext(t *testing.T) {
	st := New(testCharacter(), model.Config{InjectContext: true})
	r := st.BeforeTurn(model.Message{Content: "hi"})

	want := "[Chubflix Episode Context: Currently on Pilot (1/3). Maintain narrative continuity with previous episodes.]"
	if !r.HasSystemMessage {
		t.Fatal("expected a system message")
	}
	if r.SystemMessage != want {
		t.Errorf("expected %q, got %q", want, r.SystemMessage)
	}
	if r.DisplayText != "Episode 1/3" {
		t.Errorf("expected 'Episode 1/3', got %q", r.DisplayText)
	}
	if r.Turn.CurrentEpisode != 0 {
		t.Errorf("expected turn snapshot at 0, got %d", r.Turn.CurrentEpisode)
	}
	if r.Turn.StartedAt == "" {
		t.Error("expected turn timestamp")
	}
}

func TestBeforeTurnInjectionDisabled(t *testing.T) {
	st := New(testCharacter(), model.Config{InjectContext: false})
	r := st.BeforeTurn(model.Message{})
	if r.HasSystemMessage || r.SystemMessage != "" {
		t.Errorf("expected no system message, got %q", r.SystemMessage)
	}
}

func TestAfterTurnProducesNoSystemMessage(t *testing.T) {
	st := New(testCharacter(), model.Config{InjectContext: true})
	st.BeforeTurn(model.Message{})
	r := st.AfterTurn(model.Message{})
	if r.DisplayText != "Episode 1/3" {
		t.Errorf("expected 'Episode 1/3', got %q", r.DisplayText)
	}
}

func TestFullSeasonScenario(t *testing.T) {
	st := New(testCharacter(), model.Config{InjectContext: true})

	r := st.BeforeTurn(model.Message{Content: "hello"})
	if !strings.Contains(r.SystemMessage, "Currently on Pilot (1/3)") {
		t.Errorf("unexpected context: %q", r.SystemMessage)
	}
	st.AfterTurn(model.Message{})

	st.Advance()
	after := st.AfterTurn(model.Message{})
	if after.Chat.Completed {
		t.Error("completed too early")
	}

	st.Advance()
	after = st.AfterTurn(model.Message{})
	if !after.Chat.Completed {
		t.Error("expected completed after reaching the final episode")
	}
	if after.Chat.HighestEpisodeReached != 2 {
		t.Errorf("expected highest 2, got %d", after.Chat.HighestEpisodeReached)
	}
	if after.DisplayText != "Episode 3/3" {
		t.Errorf("expected 'Episode 3/3', got %q", after.DisplayText)
	}
}

func TestCompletedSurvivesRetreat(t *testing.T) {
	st := New(testCharacter(), model.Config{})
	st.Advance()
	st.Advance()
	st.Retreat()
	r := st.AfterTurn(model.Message{})
	if !r.Chat.Completed {
		t.Error("completed must not reset on retreat")
	}
	if r.Turn.CurrentEpisode != 1 {
		t.Errorf("expected turn snapshot at 1, got %d", r.Turn.CurrentEpisode)
	}
}

func TestRestoreConformsToTurnSnapshot(t *testing.T) {
	st := New(testCharacter(), model.Config{InjectContext: true})
	st.Advance()
	st.Advance()

	st.Restore(model.TurnState{CurrentEpisode: 1})
	r := st.BeforeTurn(model.Message{})
	if r.Turn.CurrentEpisode != 1 {
		t.Errorf("expected restore to 1, got %d", r.Turn.CurrentEpisode)
	}
	if !strings.Contains(r.SystemMessage, "Currently on Twist (2/3)") {
		t.Errorf("unexpected context: %q", r.SystemMessage)
	}
	// High-water mark survives the rewind.
	if r.Chat.HighestEpisodeReached != 2 {
		t.Errorf("expected highest 2, got %d", r.Chat.HighestEpisodeReached)
	}
}

func TestRestoreZeroValueSnapshot(t *testing.T) {
	st := New(testCharacter(), model.Config{})
	st.Advance()
	st.Restore(model.TurnState{})
	if got := st.Snapshot().Turn.CurrentEpisode; got != 0 {
		t.Errorf("expected a missing index to land at 0, got %d", got)
	}
}

func TestRestoreOutOfRangeUnchecked(t *testing.T) {
	st := New(testCharacter(), model.Config{})
	st.Restore(model.TurnState{CurrentEpisode: 99})
	if got := st.Snapshot().Turn.CurrentEpisode; got != 99 {
		t.Errorf("expected unchecked pass-through, got %d", got)
	}
}

func TestNewIgnoresPriorChatState(t *testing.T) {
	// Reconstruction always restarts the chat-layer fields; only the turn
	// layer can reposition a rebuilt stage.
	first := New(testCharacter(), model.Config{})
	first.Advance()
	first.AfterTurn(model.Message{})

	second := New(testCharacter(), model.Config{})
	load := second.Load()
	if load.Chat.HighestEpisodeReached != 0 || load.Chat.Completed {
		t.Errorf("expected fresh chat snapshot, got %+v", load.Chat)
	}
}

func TestJumpUncheckedAndNavSnapshots(t *testing.T) {
	st := New(testCharacter(), model.Config{})
	r := st.Jump(2)
	if r.Turn.CurrentEpisode != 2 {
		t.Errorf("expected jump to 2, got %d", r.Turn.CurrentEpisode)
	}
	// Jump does not raise the high-water mark.
	if r.Chat.HighestEpisodeReached != 0 {
		t.Errorf("expected highest 0 after jump, got %d", r.Chat.HighestEpisodeReached)
	}

	r = st.Advance()
	if r.Turn.CurrentEpisode != 2 {
		t.Errorf("advance at last episode must be a no-op, got %d", r.Turn.CurrentEpisode)
	}
}

func TestEventsBounded(t *testing.T) {
	st := New(testCharacter(), model.Config{})
	for i := 0; i < 60; i++ {
		st.Advance()
	}
	if got := len(st.Events()); got != 50 {
		t.Errorf("expected 50 retained events, got %d", got)
	}
}

func TestBuildContextMissingEpisodeFallsBack(t *testing.T) {
	st := New(testCharacter(), model.Config{InjectContext: true})
	st.Restore(model.TurnState{CurrentEpisode: 7})
	r := st.BeforeTurn(model.Message{})
	if !strings.Contains(r.SystemMessage, "Currently on Episode 8 (8/3)") {
		t.Errorf("expected defensive fallback title, got %q", r.SystemMessage)
	}
}
