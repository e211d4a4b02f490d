package game

import "testing"

func TestWordsPerMinute(t *testing.T) {
	if got := WordsPerMinute(50); got != 20 {
		t.Fatalf("expected 20 WPM, got %d", got)
	}
	if got := WordsPerMinute(12); got != 4 {
		t.Fatalf("expected fractional WPM to round down to 4, got %d", got)
	}
	if got := WordsPerMinute(0); got != 0 {
		t.Fatalf("expected 0 WPM, got %d", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(18, 20); got != 90 {
		t.Fatalf("expected 90%% accuracy, got %d", got)
	}
	if got := Accuracy(1, 3); got != 33 {
		t.Fatalf("expected 33%% accuracy, got %d", got)
	}
	if got := Accuracy(5, 0); got != 0 {
		t.Fatalf("expected 0%% accuracy for empty list, got %d", got)
	}
}

func TestTotalLetters(t *testing.T) {
	if got := TotalLetters([]string{"go", "", "naïve"}); got != 7 {
		t.Fatalf("expected 7 letters, got %d", got)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseWaiting.String() != "waiting for input" || PhaseGameOver.String() != "game over" {
		t.Fatalf("unexpected phase names: %q %q", PhaseWaiting, PhaseGameOver)
	}
}
