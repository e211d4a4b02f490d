package game

// Listener observes a session. Callbacks run synchronously inside the
// session method that caused them.
type Listener interface {
	PhaseChanged(from, to Phase)
	CountdownStarted(seconds int)
	CountdownStopped()
	LetterMarked(wordIndex, letterIndex int, correct bool)
	CaretMoved(wordIndex, letterIndex int)
	Finished(results Results)
}

// NopListener ignores every event. Embed it to implement a subset.
type NopListener struct{}

func (NopListener) PhaseChanged(Phase, Phase) {}
func (NopListener) CountdownStarted(int) {}
func (NopListener) CountdownStopped() {}
func (NopListener) LetterMarked(int, int, bool) {}
func (NopListener) CaretMoved(int, int) {}
func (NopListener) Finished(Results) {}
