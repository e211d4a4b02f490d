package game

import (
	"math"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	lettersPerWord = 5.0
	// scoredMinutes is the round length the speed formula assumes, whatever
	// the configured duration is.
	scoredMinutes = 0.5
)

// Results holds the final metrics of a round.
type Results struct {
	WordsPerMinute int
	Accuracy       int
	CorrectLetters int
	TotalLetters   int
}

// WordsPerMinute converts correct letters into whole words per minute.
func WordsPerMinute(correctLetters int) int {
	return int(math.Floor(float64(correctLetters) / lettersPerWord / scoredMinutes))
}

// Accuracy returns the whole percentage of correct letters over all letters
// on offer. An empty word list scores zero.
func Accuracy(correctLetters, totalLetters int) int {
	if totalLetters <= 0 {
		return 0
	}
	return int(math.Floor(float64(correctLetters) / float64(totalLetters) * 100))
}

// TotalLetters counts the letters across all words.
func TotalLetters(words []string) int {
	return lo.SumBy(words, utf8.RuneCountInString)
}
