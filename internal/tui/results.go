package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	wpmDelay      = 300 * time.Millisecond
	accuracyDelay = 1300 * time.Millisecond
	tweenDuration = time.Second
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// tween counts linearly from zero to target over tweenDuration, after delay.
func tween(target int, elapsed, delay time.Duration) int {
	if elapsed <= delay {
		return 0
	}
	progress := float64(elapsed-delay) / float64(tweenDuration)
	if progress >= 1 {
		return target
	}
	return int(math.Floor(float64(target) * progress))
}

func renderCard(title, value string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	)
	return cardStyle.Render(body)
}
