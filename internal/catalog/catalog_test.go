package catalog

import (
	"testing"

	"github.com/chubflix/episode-stage/internal/model"
)

func TestBuildOrderAndTitles(t *testing.T) {
	c := model.Character{
		Name:     "Mara",
		Greeting: "**Pilot**\nHello",
		AlternateGreetings: []string{
			"**Twist**\nA turn",
			"Goodbye for now",
		},
	}

	eps := Build(c)
	if len(eps) != 3 {
		t.Fatalf("expected 3 episodes, got %d", len(eps))
	}
	want := []string{"Pilot", "Twist", "Goodbye for now"}
	for i, w := range want {
		if eps[i].Index != i {
			t.Errorf("episode %d: index %d", i, eps[i].Index)
		}
		if eps[i].Title != w {
			t.Errorf("episode %d: expected title %q, got %q", i, w, eps[i].Title)
		}
	}
	if eps[1].SourceText != "**Twist**\nA turn" {
		t.Errorf("source text not preserved: %q", eps[1].SourceText)
	}
}

func TestBuildPositionalDefaults(t *testing.T) {
	long := "This opening line keeps going well past the fifty character limit"
	c := model.Character{
		Greeting:           long,
		AlternateGreetings: []string{long, "**Named**\nhi", long},
	}

	eps := Build(c)
	want := []string{"Episode 1", "Episode 2", "Named", "Episode 4"}
	for i, w := range want {
		if eps[i].Title != w {
			t.Errorf("episode %d: expected %q, got %q", i, w, eps[i].Title)
		}
	}
}

func TestBuildNoGreetings(t *testing.T) {
	eps := Build(model.Character{})
	if len(eps) != 1 {
		t.Fatalf("expected degenerate single-episode catalog, got %d", len(eps))
	}
	if eps[0].Title != "Episode 1" {
		t.Errorf("expected 'Episode 1', got %q", eps[0].Title)
	}
}

func TestCharacterName(t *testing.T) {
	if got := CharacterName(model.Character{Name: "Mara"}); got != "Mara" {
		t.Errorf("expected 'Mara', got %q", got)
	}
	if got := CharacterName(model.Character{}); got != model.UnknownCharacterName {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestTitles(t *testing.T) {
	eps := Build(model.Character{
		Greeting:           "**One**\n.",
		AlternateGreetings: []string{"**Two**\n."},
	})
	titles := Titles(eps)
	if len(titles) != 2 || titles[0] != "One" || titles[1] != "Two" {
		t.Errorf("unexpected titles: %v", titles)
	}
}
