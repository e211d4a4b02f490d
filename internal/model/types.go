// Package model defines shared data structures.
package model

// Config defines play settings.
type Config struct {
	Lang            string
	Words           int
	DurationSeconds int
	CapsPct         float64
	PunctPct        float64
	PunctSet        string
	// Source is the base URL of a word server. Empty means the local list.
	Source string
}

// ServerConfig defines word server settings.
type ServerConfig struct {
	Addr           string `env:"WORDRUSH_ADDR" envDefault:":8080"`
	Lang           string `env:"WORDRUSH_LANG" envDefault:"en"`
	DefaultLimit   int    `env:"WORDRUSH_DEFAULT_LIMIT" envDefault:"100"`
	MaxLimit       int    `env:"WORDRUSH_MAX_LIMIT" envDefault:"1000"`
	RateLimitRPS   int    `env:"WORDRUSH_RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int    `env:"WORDRUSH_RATE_LIMIT_BURST" envDefault:"10"`
}
