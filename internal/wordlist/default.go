package wordlist

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
)

//go:embed data/*.txt
var builtin embed.FS

// Default returns the built-in word list for a language.
func Default(lang string) ([]string, error) {
	data, err := builtin.ReadFile("data/" + strings.ToLower(lang) + ".txt")
	if err != nil {
		return nil, fmt.Errorf("no built-in word list for %q", lang)
	}
	return parseWords(bytes.NewReader(data))
}

// BuiltinLangs lists the languages with a built-in word list.
func BuiltinLangs() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		langs = append(langs, strings.TrimSuffix(entry.Name(), ".txt"))
	}
	return langs
}
