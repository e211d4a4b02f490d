package tui

import "testing"

func TestBuildStyledRunesCaret(t *testing.T) {
	marks := map[position]bool{{word: 0, letter: 0}: true}
	runes := buildStyledRunes([]string{"ab"}, marks, position{word: 0, letter: 1})
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") || !runes[1].caret {
		t.Fatalf("expected caret on second rune")
	}
}

func TestBuildStyledRunesIncorrectMark(t *testing.T) {
	marks := map[position]bool{{word: 0, letter: 0}: true, {word: 0, letter: 1}: false}
	runes := buildStyledRunes([]string{"ab"}, marks, position{word: 0, letter: 2})
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	runes := buildStyledRunes([]string{"one", "two"}, map[position]bool{}, position{})
	if len(runes) != 7 {
		t.Fatalf("expected 7 runes, got %d", len(runes))
	}
	if runes[1].s != currentWordStyle.Render("n") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if !runes[3].isSpace {
		t.Fatalf("expected separator space")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesCaretOnSpaceAfterTypedWord(t *testing.T) {
	runes := buildStyledRunes([]string{"go", "on"}, map[position]bool{}, position{word: 0, letter: 2})
	if !runes[2].isSpace || !runes[2].caret {
		t.Fatalf("expected caret on space after completed word")
	}
}

func TestWrapLinesBreaksAtSpaces(t *testing.T) {
	runes := buildStyledRunes([]string{"aaa", "bbb", "ccc"}, map[position]bool{}, position{})
	lines := wrapLines(runes, 5)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if lineWidthOf(line) > 5 {
			t.Fatalf("line wider than limit: %d", lineWidthOf(line))
		}
	}
}

func TestWrapLinesHardBreaksLongWord(t *testing.T) {
	runes := buildStyledRunes([]string{"abcdefgh"}, map[position]bool{}, position{})
	lines := wrapLines(runes, 3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
}

func TestVisibleLinesFollowCaret(t *testing.T) {
	words := []string{"aa", "bb", "cc", "dd", "ee", "ff"}
	runes := buildStyledRunes(words, map[position]bool{}, position{word: 4})
	lines := wrapLines(runes, 3)
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	visible := visibleLines(lines, 3)
	if len(visible) != 3 {
		t.Fatalf("expected 3 visible lines, got %d", len(visible))
	}
	if !lineHasCaret(visible[1]) {
		t.Fatalf("expected caret on the middle visible line")
	}

	runes = buildStyledRunes(words, map[position]bool{}, position{word: 0})
	visible = visibleLines(wrapLines(runes, 3), 3)
	if !lineHasCaret(visible[0]) {
		t.Fatalf("expected caret on the first line at game start")
	}
}
