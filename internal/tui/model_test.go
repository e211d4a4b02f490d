package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/model"
)

type stubSource struct {
	words []string
	err   error
}

func (s stubSource) GetWords(context.Context, int) ([]string, error) {
	return s.words, s.err
}

func newLoadedModel(t *testing.T, words ...string) *Model {
	t.Helper()
	m := NewModel(model.Config{Words: len(words), DurationSeconds: 3}, stubSource{words: words})
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("expected fetch command from Init")
	}
	msg := cmd()
	if _, ok := msg.(wordsMsg); !ok {
		t.Fatalf("expected wordsMsg, got %T", msg)
	}
	m.Update(msg)
	return m
}

func typeKeys(m *Model, text string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return cmd
}

func TestWordsLoadedOnInit(t *testing.T) {
	m := newLoadedModel(t, "one", "two")
	if got := m.session.State().Words; len(got) != 2 {
		t.Fatalf("expected 2 words, got %v", got)
	}
	if m.fetching {
		t.Fatalf("expected fetch to be complete")
	}
}

func TestTypingMarksLettersAndStartsCountdown(t *testing.T) {
	m := newLoadedModel(t, "ab", "cd")
	if cmd := typeKeys(m, "ax"); cmd == nil {
		t.Fatalf("expected countdown command after first keystroke")
	}
	if m.session.Phase() != game.PhaseInProgress {
		t.Fatalf("expected in progress phase, got %v", m.session.Phase())
	}
	if !m.marks[position{word: 0, letter: 0}] || m.marks[position{word: 0, letter: 1}] {
		t.Fatalf("unexpected marks: %v", m.marks)
	}
	if m.caret != (position{word: 0, letter: 2}) {
		t.Fatalf("unexpected caret: %+v", m.caret)
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.caret != (position{word: 1, letter: 0}) {
		t.Fatalf("expected caret on next word, got %+v", m.caret)
	}
}

func TestCountdownTicksReachSession(t *testing.T) {
	m := newLoadedModel(t, "ab", "cd")
	typeKeys(m, "a")
	id := m.countdown.ID()
	if id == 0 {
		t.Fatalf("expected countdown to be created")
	}
	m.Update(timer.TickMsg{ID: id})
	if got := m.session.State().RemainingSeconds; got != 2 {
		t.Fatalf("expected 2 seconds remaining, got %d", got)
	}
	m.Update(timer.TickMsg{ID: id + 1000})
	if got := m.session.State().RemainingSeconds; got != 2 {
		t.Fatalf("expected stale tick to be ignored, got %d", got)
	}
}

func TestCountdownExpiryShowsResults(t *testing.T) {
	m := newLoadedModel(t, "abcde", "fghij", "klmno", "pqrst")
	start := time.Unix(100, 0)
	m.now = func() time.Time { return start }
	typeKeys(m, "abcde fghij")
	id := m.countdown.ID()
	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		_, cmd = m.Update(timer.TickMsg{ID: id})
	}
	if m.session.Phase() != game.PhaseGameOver {
		t.Fatalf("expected game over, got %v", m.session.Phase())
	}
	if cmd == nil {
		t.Fatalf("expected stop and animation commands")
	}
	if m.results.WordsPerMinute != 4 || m.results.Accuracy != 55 {
		t.Fatalf("unexpected results: %+v", m.results)
	}

	m.now = func() time.Time { return start.Add(5 * time.Second) }
	view := m.View()
	if !strings.Contains(view, "WPM") || !strings.Contains(view, "55%") {
		t.Fatalf("results view missing metrics: %s", view)
	}
}

func TestResetRefetchesAndIgnoresStaleWords(t *testing.T) {
	m := newLoadedModel(t, "ab", "cd")
	typeKeys(m, "ab")
	staleID := m.fetchID
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatalf("expected fetch command on reset")
	}
	if m.session.Phase() != game.PhaseWaiting {
		t.Fatalf("expected waiting phase, got %v", m.session.Phase())
	}
	if len(m.marks) != 0 || m.caret != (position{}) {
		t.Fatalf("expected marks to be cleared")
	}

	m.Update(wordsMsg{id: staleID, words: []string{"stale"}})
	if got := m.session.State().Words; len(got) != 0 {
		t.Fatalf("expected stale words to be ignored, got %v", got)
	}
	m.Update(wordsMsg{id: m.fetchID, words: []string{"fresh"}})
	if got := m.session.State().Words; len(got) != 1 || got[0] != "fresh" {
		t.Fatalf("expected fresh words, got %v", got)
	}
}

func TestFetchErrorIsShown(t *testing.T) {
	m := NewModel(model.Config{Words: 5}, stubSource{err: errors.New("offline")})
	m.Update(m.Init()())
	if m.fetchErr == nil {
		t.Fatalf("expected fetch error")
	}
	if !strings.Contains(m.View(), "offline") {
		t.Fatalf("expected error in view")
	}
	typeKeys(m, "a")
	if m.session.Phase() != game.PhaseWaiting {
		t.Fatalf("expected keys to be ignored without words")
	}
}

func TestQuitKey(t *testing.T) {
	m := newLoadedModel(t, "a")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestTween(t *testing.T) {
	if got := tween(80, 200*time.Millisecond, wpmDelay); got != 0 {
		t.Fatalf("expected 0 before delay, got %d", got)
	}
	if got := tween(80, wpmDelay+500*time.Millisecond, wpmDelay); got != 40 {
		t.Fatalf("expected halfway value 40, got %d", got)
	}
	if got := tween(80, wpmDelay+2*time.Second, wpmDelay); got != 80 {
		t.Fatalf("expected final value 80, got %d", got)
	}
}
