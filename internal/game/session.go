// Package game implements the timed typing session state machine.
package game

// DefaultDurationSeconds is the round length used when none is configured.
const DefaultDurationSeconds = 30

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseInProgress
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting for input"
	case PhaseInProgress:
		return "in progress"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Key is a single keyboard event.
type Key struct {
	Rune  rune
	Space bool
}

// Config defines session settings.
type Config struct {
	DurationSeconds int
}

// State is a read-only snapshot of a session.
type State struct {
	Phase            Phase
	Words            []string
	WordIndex        int
	LetterIndex      int
	CorrectLetters   int
	RemainingSeconds int
	TypedLetter      rune
}

// Session tracks word and letter progression for one round.
type Session struct {
	cfg      Config
	listener Listener

	phase          Phase
	words          []string
	letters        [][]rune
	wordIndex      int
	letterIndex    int
	correctLetters int
	remaining      int
	typed          rune
	ticking        bool
	results        Results
}

// NewSession returns a session in the waiting phase. A nil listener is allowed.
func NewSession(cfg Config, words []string, listener Listener) *Session {
	if cfg.DurationSeconds <= 0 {
		cfg.DurationSeconds = DefaultDurationSeconds
	}
	if listener == nil {
		listener = NopListener{}
	}
	s := &Session{cfg: cfg, listener: listener}
	s.clear(words)
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Results returns the metrics computed when the round ended.
func (s *Session) Results() Results {
	return s.results
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	return State{
		Phase:            s.phase,
		Words:            append([]string(nil), s.words...),
		WordIndex:        s.wordIndex,
		LetterIndex:      s.letterIndex,
		CorrectLetters:   s.correctLetters,
		RemainingSeconds: s.remaining,
		TypedLetter:      s.typed,
	}
}

// HandleKey applies one keystroke.
func (s *Session) HandleKey(k Key) {
	if len(s.letters) == 0 {
		return
	}
	switch s.phase {
	case PhaseWaiting:
		s.start()
		if k.Space {
			return
		}
	case PhaseGameOver:
		return
	}
	if k.Space {
		s.nextWord()
		return
	}
	s.typeLetter(k.Rune)
}

// Tick advances the countdown by one second.
func (s *Session) Tick() {
	if s.phase != PhaseInProgress {
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.finish()
	}
}

// Reset discards all progress and installs a new word list.
func (s *Session) Reset(words []string) {
	s.stopCountdown()
	s.clear(words)
}

func (s *Session) clear(words []string) {
	s.words = append([]string(nil), words...)
	s.letters = make([][]rune, len(words))
	for i, w := range words {
		s.letters[i] = []rune(w)
	}
	s.wordIndex = 0
	s.letterIndex = 0
	s.correctLetters = 0
	s.remaining = s.cfg.DurationSeconds
	s.typed = 0
	s.results = Results{}
	s.setPhase(PhaseWaiting)
}

func (s *Session) start() {
	s.setPhase(PhaseInProgress)
	s.ticking = true
	s.listener.CountdownStarted(s.remaining)
}

func (s *Session) nextWord() {
	word := s.letters[s.wordIndex]
	if s.letterIndex == 0 && len(word) != 1 {
		return
	}
	s.correctLetters++
	if s.wordIndex == len(s.letters)-1 {
		s.finish()
		return
	}
	s.wordIndex++
	s.letterIndex = 0
	s.listener.CaretMoved(s.wordIndex, s.letterIndex)
}

func (s *Session) typeLetter(r rune) {
	word := s.letters[s.wordIndex]
	if s.letterIndex >= len(word) {
		return
	}
	s.typed = r
	correct := s.typed == word[s.letterIndex]
	s.listener.LetterMarked(s.wordIndex, s.letterIndex, correct)
	if correct {
		s.correctLetters++
	}
	s.typed = 0
	s.letterIndex++
	s.listener.CaretMoved(s.wordIndex, s.letterIndex)
}

func (s *Session) finish() {
	s.stopCountdown()
	s.setPhase(PhaseGameOver)
	total := TotalLetters(s.words)
	s.results = Results{
		WordsPerMinute: WordsPerMinute(s.correctLetters),
		Accuracy:       Accuracy(s.correctLetters, total),
		CorrectLetters: s.correctLetters,
		TotalLetters:   total,
	}
	s.listener.Finished(s.results)
}

// stopCountdown notifies the listener once per started countdown.
func (s *Session) stopCountdown() {
	if !s.ticking {
		return
	}
	s.ticking = false
	s.listener.CountdownStopped()
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	from := s.phase
	s.phase = p
	s.listener.PhaseChanged(from, p)
}
