package wordlist

import (
	"context"
	"sync"

	"github.com/verte-zerg/wordrush/internal/generator"
)

// Source supplies the words for a round.
type Source interface {
	GetWords(ctx context.Context, limit int) ([]string, error)
}

// LocalSource draws random words from an in-memory list.
type LocalSource struct {
	words    []string
	capsPct  float64
	punctPct float64
	punctSet []rune

	mu  sync.Mutex
	gen *generator.Generator
}

// NewLocalSource returns a Source over words. Caps and punctuation are
// applied per word with the given probabilities.
func NewLocalSource(words []string, gen *generator.Generator, capsPct, punctPct float64, punctSet []rune) *LocalSource {
	return &LocalSource{
		words:    words,
		gen:      gen,
		capsPct:  capsPct,
		punctPct: punctPct,
		punctSet: punctSet,
	}
}

// GetWords implements Source.
func (s *LocalSource) GetWords(ctx context.Context, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Generate(s.words, limit, s.capsPct, s.punctPct, s.punctSet), nil
}
