// Package wordlist loads word lists and serves words for a round.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return parseWords(file)
}

// LoadForLang reads the word list at path, falling back to the built-in list
// for lang when the file does not exist. Words failing the language filter
// are dropped.
func LoadForLang(path, lang string) ([]string, error) {
	words, err := LoadWords(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		words, err = Default(lang)
		if err != nil {
			return nil, err
		}
	}
	filter := FilterForLang(lang)
	kept := lo.Filter(words, func(w string, _ int) bool {
		return filter(w)
	})
	if len(kept) == 0 {
		return nil, fmt.Errorf("word list has no usable %s words", lang)
	}
	return kept, nil
}

func parseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
