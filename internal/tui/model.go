// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/wordlist"
)

const (
	fetchTimeout  = 10 * time.Second
	frameInterval = 50 * time.Millisecond
)

type position struct {
	word   int
	letter int
}

type wordsMsg struct {
	id    int
	words []string
	err   error
}

type frameMsg struct {
	id int
}

type keyMap struct {
	Reset key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Reset: key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "restart")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// Model implements the Bubble Tea typing UI and renders session events.
type Model struct {
	game.NopListener

	config  model.Config
	source  wordlist.Source
	session *game.Session

	marks     map[position]bool
	caret     position
	countdown timer.Model
	pending   []tea.Cmd

	fetchID  int
	fetching bool
	fetchErr error

	results    game.Results
	finishedAt time.Time
	animID     int
	now        func() time.Time

	help   help.Model
	width  int
	height int
}

// NewModel constructs a typing TUI model. Words are fetched on Init.
func NewModel(cfg model.Config, source wordlist.Source) *Model {
	m := &Model{
		config: cfg,
		source: source,
		marks:  map[position]bool{},
		now:    time.Now,
		help:   help.New(),
	}
	m.session = game.NewSession(game.Config{DurationSeconds: cfg.DurationSeconds}, nil, m)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.fetchWords()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Reset):
			return m, m.reset()
		}
		switch msg.Type {
		case tea.KeySpace:
			m.session.HandleKey(game.Key{Space: true})
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				if r == ' ' {
					m.session.HandleKey(game.Key{Space: true})
					continue
				}
				m.session.HandleKey(game.Key{Rune: r})
			}
		}
		return m, m.flush()
	case wordsMsg:
		if msg.id != m.fetchID {
			return m, nil
		}
		m.fetching = false
		m.fetchErr = msg.err
		m.session.Reset(msg.words)
		m.clearMarks()
		return m, m.flush()
	case timer.TickMsg:
		if msg.ID != m.countdown.ID() {
			return m, nil
		}
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		m.session.Tick()
		return m, tea.Batch(cmd, m.flush())
	case timer.StartStopMsg, timer.TimeoutMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd
	case frameMsg:
		if msg.id != m.animID || m.session.Phase() != game.PhaseGameOver {
			return m, nil
		}
		if m.now().Sub(m.finishedAt) >= accuracyDelay+tweenDuration {
			return m, nil
		}
		return m, m.frame()
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch {
	case m.fetchErr != nil:
		content = errorStyle.Render(fmt.Sprintf("failed to load words: %v", m.fetchErr))
	case m.fetching && len(m.session.State().Words) == 0:
		content = footerStyle.Render("Loading words...")
	case m.session.Phase() == game.PhaseGameOver:
		content = m.renderResults()
	default:
		content = m.renderGame()
	}
	footer := m.help.View(keys)
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderGame() string {
	state := m.session.State()
	contentWidth := m.contentWidth()
	runes := buildStyledRunes(state.Words, m.marks, m.caret)
	lines := visibleLines(wrapLines(runes, contentWidth), visibleLineCount)
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, renderStyledRunes(line))
	}

	header := timerStyle.Render(fmt.Sprintf("%d", state.RemainingSeconds))
	if state.Phase == game.PhaseWaiting {
		header += footerStyle.Render("  start typing")
	}
	words := strings.Join(rendered, "\n")
	if contentWidth > 0 {
		words = lipgloss.NewStyle().Width(contentWidth).Render(words)
	}
	return header + "\n\n" + words
}

func (m *Model) renderResults() string {
	elapsed := m.now().Sub(m.finishedAt)
	wpm := tween(m.results.WordsPerMinute, elapsed, wpmDelay)
	acc := tween(m.results.Accuracy, elapsed, accuracyDelay)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("WPM", fmt.Sprintf("%d", wpm)),
		renderCard("Accuracy", fmt.Sprintf("%d%%", acc)),
	)
	return cards
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	width := int(float64(m.width) * 0.70)
	if width < 1 {
		width = 1
	}
	return width
}

func (m *Model) fetchWords() tea.Cmd {
	m.fetchID++
	id := m.fetchID
	m.fetching = true
	m.fetchErr = nil
	source := m.source
	limit := m.config.Words
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		words, err := source.GetWords(ctx, limit)
		return wordsMsg{id: id, words: words, err: err}
	}
}

func (m *Model) reset() tea.Cmd {
	m.session.Reset(nil)
	m.clearMarks()
	m.animID++
	fetch := m.fetchWords()
	return tea.Batch(m.flush(), fetch)
}

func (m *Model) clearMarks() {
	m.marks = map[position]bool{}
	m.caret = position{}
}

// flush drains commands queued by listener callbacks.
func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) frame() tea.Cmd {
	id := m.animID
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

// CountdownStarted implements game.Listener.
func (m *Model) CountdownStarted(seconds int) {
	m.countdown = timer.NewWithInterval(time.Duration(seconds)*time.Second, time.Second)
	m.pending = append(m.pending, m.countdown.Init())
}

// CountdownStopped implements game.Listener.
func (m *Model) CountdownStopped() {
	m.pending = append(m.pending, m.countdown.Stop())
}

// LetterMarked implements game.Listener.
func (m *Model) LetterMarked(wordIndex, letterIndex int, correct bool) {
	m.marks[position{word: wordIndex, letter: letterIndex}] = correct
}

// CaretMoved implements game.Listener.
func (m *Model) CaretMoved(wordIndex, letterIndex int) {
	m.caret = position{word: wordIndex, letter: letterIndex}
}

// Finished implements game.Listener.
func (m *Model) Finished(results game.Results) {
	m.results = results
	m.finishedAt = m.now()
	m.animID++
	m.pending = append(m.pending, m.frame())
}
