package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const visibleLineCount = 3

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	caret   bool
}

// buildStyledRunes lays words out with single spaces between them. The caret
// sits on the letter at caret, or on the following space once the word is
// fully typed.
func buildStyledRunes(words []string, marks map[position]bool, caret position) []styledRune {
	out := make([]styledRune, 0, len(words)*6)
	for i, word := range words {
		letters := []rune(word)
		for j, r := range letters {
			style := pendingStyle
			if correct, ok := marks[position{word: i, letter: j}]; ok {
				if correct {
					style = correctStyle
				} else {
					style = incorrectStyle
				}
			} else if i == caret.word {
				style = currentWordStyle
			}
			atCaret := i == caret.word && j == caret.letter
			if atCaret {
				style = style.Underline(true)
			}
			out = append(out, styledRune{
				s:     style.Render(string(r)),
				width: runewidth.RuneWidth(r),
				caret: atCaret,
			})
		}
		if i == len(words)-1 {
			break
		}
		space := pendingStyle
		atCaret := i == caret.word && caret.letter >= len(letters)
		if atCaret {
			space = space.Underline(true)
		}
		out = append(out, styledRune{
			s:       space.Render(" "),
			width:   1,
			isSpace: true,
			caret:   atCaret,
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapLines breaks runes into lines no wider than width, preferring spaces.
func wrapLines(runes []styledRune, width int) [][]styledRune {
	if width <= 0 {
		return [][]styledRune{runes}
	}
	var lines [][]styledRune
	line := make([]styledRune, 0, width)
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				lines = append(lines, append([]styledRune{}, line[:lastSpaceIdx+1]...))
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				lines = append(lines, append([]styledRune{}, line...))
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// visibleLines returns up to n lines, starting one line above the caret line
// so the line being typed stays near the middle.
func visibleLines(lines [][]styledRune, n int) [][]styledRune {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	caretLine := 0
	for i, line := range lines {
		if lineHasCaret(line) {
			caretLine = i
			break
		}
	}
	start := caretLine - 1
	if start < 0 {
		start = 0
	}
	if start+n > len(lines) {
		start = len(lines) - n
	}
	return lines[start : start+n]
}

func lineHasCaret(line []styledRune) bool {
	for _, item := range line {
		if item.caret {
			return true
		}
	}
	return false
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
