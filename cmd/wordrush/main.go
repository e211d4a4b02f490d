// Package main provides the CLI entrypoint for wordrush.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordrush/internal/config"
	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/generator"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/server"
	"github.com/verte-zerg/wordrush/internal/tui"
	"github.com/verte-zerg/wordrush/internal/wordlist"
)

const (
	defaultLang     = "en"
	defaultWords    = 100
	defaultDuration = game.DefaultDurationSeconds
	defaultCaps     = 0.0
	defaultPunct    = 0.0
	defaultPunctSet = ".,!?;:"
)

var (
	playLang     string
	playWords    int
	playDuration int
	playCaps     float64
	playPunct    float64
	playPunctSet string
	playSource   string

	serveAddr     string
	serveLang     string
	serveMaxLimit int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordrush",
		Short:         "Timed typing speed game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "language code")
	rootCmd.Flags().IntVar(&playWords, "words", defaultWords, "words fetched per round")
	rootCmd.Flags().IntVar(&playDuration, "duration", defaultDuration, "round length in seconds")
	rootCmd.Flags().Float64Var(&playCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&playPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&playPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().StringVar(&playSource, "source", "", "word server base URL (default: local word list)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &playLang, fileCfg.Game.Lang)
	applyIntConfig(cmd, "words", &playWords, fileCfg.Game.Words)
	applyIntConfig(cmd, "duration", &playDuration, fileCfg.Game.Duration)
	applyFloatConfig(cmd, "caps", &playCaps, fileCfg.Game.CapsPct)
	applyFloatConfig(cmd, "punct", &playPunct, fileCfg.Game.PunctPct)
	applyStringConfig(cmd, "punct-set", &playPunctSet, fileCfg.Game.PunctSet)
	applyStringConfig(cmd, "source", &playSource, fileCfg.Game.Source)

	cfg := model.Config{
		Lang:            playLang,
		Words:           playWords,
		DurationSeconds: playDuration,
		CapsPct:         playCaps,
		PunctPct:        playPunct,
		PunctSet:        playPunctSet,
		Source:          playSource,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if cfg.DurationSeconds != defaultDuration {
		logErrf("note: speed is scored against a %ds round regardless of --duration\n", defaultDuration)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("wordrush needs an interactive terminal")
	}

	source, err := buildSource(cfg)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(cfg, source), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func buildSource(cfg model.Config) (wordlist.Source, error) {
	if cfg.Source != "" {
		return wordlist.NewHTTPSource(cfg.Source, nil), nil
	}
	wordPath := config.DefaultWordListPath(cfg.Lang)
	words, err := wordlist.LoadForLang(wordPath, cfg.Lang)
	if err != nil {
		return nil, wordListLoadError(cfg.Lang, wordPath, err)
	}
	return wordlist.NewLocalSource(words, generator.New(), cfg.CapsPct, cfg.PunctPct, []rune(cfg.PunctSet)), nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve word lists over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from WORDRUSH_ADDR or :8080)")
	cmd.Flags().StringVar(&serveLang, "lang", "", "language code (default from WORDRUSH_LANG or en)")
	cmd.Flags().IntVar(&serveMaxLimit, "max-limit", 0, "largest accepted limit (default from WORDRUSH_MAX_LIMIT)")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("lang") {
		cfg.Lang = serveLang
	}
	if cmd.Flags().Changed("max-limit") {
		cfg.MaxLimit = serveMaxLimit
	}

	wordPath := config.DefaultWordListPath(cfg.Lang)
	words, err := wordlist.LoadForLang(wordPath, cfg.Lang)
	if err != nil {
		return wordListLoadError(cfg.Lang, wordPath, err)
	}
	source := wordlist.NewLocalSource(words, generator.New(), 0, 0, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(cfg, source).Run(ctx)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word list languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs, err := availableLangs(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// availableLangs merges built-in languages with word list files in dir.
func availableLangs(dir string) ([]string, error) {
	langs := wordlist.BuiltinLangs()
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".txt"))
	}
	langs = lo.Uniq(langs)
	sort.Strings(langs)
	return langs, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordrush configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# lang = %q               # Language code
# words = %d             # Words fetched per round
# duration = %d           # Round length in seconds
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q    # Punctuation set
# source = "http://localhost:8080"  # Word server; empty uses the local list
`,
		defaultLang,
		defaultWords,
		defaultDuration,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.DurationSeconds <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Run: wordrush langs",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
