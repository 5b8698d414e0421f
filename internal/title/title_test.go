package title

import "testing"

func TestBoldPattern(t *testing.T) {
	got, ok := Extract("**Coffee Shop Confession**\nHi there")
	if !ok || got != "Coffee Shop Confession" {
		t.Errorf("expected 'Coffee Shop Confession', got %q (ok=%v)", got, ok)
	}
}

func TestHeadingPattern(t *testing.T) {
	got, ok := Extract("# Pilot\nWelcome")
	if !ok || got != "Pilot" {
		t.Errorf("expected 'Pilot', got %q (ok=%v)", got, ok)
	}
}

func TestQuotedPattern(t *testing.T) {
	got, ok := Extract("\"Runaway\"\nScene.")
	if !ok || got != "Runaway" {
		t.Errorf("expected 'Runaway', got %q (ok=%v)", got, ok)
	}
}

func TestEpisodePattern(t *testing.T) {
	got, ok := Extract("Episode 3: The Reveal")
	if !ok || got != "The Reveal" {
		t.Errorf("expected 'The Reveal', got %q (ok=%v)", got, ok)
	}

	// Case-insensitive
	got, ok = Extract("EPISODE 12: finale\nmore text")
	if !ok || got != "finale" {
		t.Errorf("expected 'finale', got %q (ok=%v)", got, ok)
	}
}

func TestPatternOrder(t *testing.T) {
	// Bold wins over the quoted pattern when both could apply.
	got, ok := Extract("**\"Nested\"**\nrest")
	if !ok || got != "\"Nested\"" {
		t.Errorf("expected '\"Nested\"', got %q (ok=%v)", got, ok)
	}
}

func TestFallbackShortLine(t *testing.T) {
	got, ok := Extract("Just a short line of text")
	if !ok || got != "Just a short line of text" {
		t.Errorf("expected the line back, got %q (ok=%v)", got, ok)
	}
}

func TestFallbackStripsMarkers(t *testing.T) {
	got, ok := Extract("A *starred* #line\nsecond line")
	if !ok || got != "A starred line" {
		t.Errorf("expected 'A starred line', got %q (ok=%v)", got, ok)
	}
}

func TestFallbackTooLong(t *testing.T) {
	long := "This opening line keeps going well past the fifty character limit"
	if got, ok := Extract(long + "\nrest"); ok {
		t.Errorf("expected absence for long first line, got %q", got)
	}
}

func TestLeadingWhitespaceTrimmed(t *testing.T) {
	got, ok := Extract("  \n**Pilot**\nHello")
	if !ok || got != "Pilot" {
		t.Errorf("expected 'Pilot', got %q (ok=%v)", got, ok)
	}
}

func TestEmptyInput(t *testing.T) {
	if got, ok := Extract(""); ok {
		t.Errorf("expected absence for empty input, got %q", got)
	}
	if got, ok := Extract("   \n  "); ok {
		t.Errorf("expected absence for whitespace input, got %q", got)
	}
}

func TestEmptyCaptureIsAbsent(t *testing.T) {
	if got, ok := Extract("Episode 4:   \nbody"); ok {
		t.Errorf("expected absence for empty capture, got %q", got)
	}
}
