package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/touch-breakout/internal/games/breakout"
)

// flushThreshold is the number of buffered events that triggers a write.
const flushThreshold = 64

// Recorder journals a game's sessions. It implements breakout.Listener and
// must be called on the game's goroutine. Journal failures are logged and
// never interrupt play.
type Recorder struct {
	store  *Store
	logger *log.Logger
	source string

	game      *breakout.Game
	sessionID string
	score     int
	bricks    int
	seq       int
	pending   []EventRecord
}

var _ breakout.Listener = (*Recorder)(nil)

// NewRecorder creates a recorder tagging sessions with source.
func NewRecorder(store *Store, logger *log.Logger, source string) *Recorder {
	return &Recorder{
		store:  store,
		logger: logger,
		source: source,
	}
}

// Begin opens a journal entry for the game's current session. A session
// still open from an earlier Begin is closed as abandoned first.
func (r *Recorder) Begin(g *breakout.Game) {
	r.finish(OutcomeAbandoned)

	s := g.Session()
	rows, cols := g.GridSize()

	r.game = g
	r.sessionID = s.ID
	r.score, r.bricks, r.seq = 0, 0, 0
	r.pending = r.pending[:0]

	err := r.store.BeginSession(SessionRecord{
		ID:     s.ID,
		Source: r.source,
		Rows:   rows,
		Cols:   cols,
		Lives:  s.Lives,
	})
	if err != nil {
		r.logger.Warn("could not journal session start", "session", s.ID, "error", err)
	}
}

// Abandon closes the open session, if any, as abandoned.
func (r *Recorder) Abandon() {
	r.finish(OutcomeAbandoned)
}

// SessionID returns the open session's ID, or "" when none is open.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

func (r *Recorder) OnScoreChanged(score int) {
	if r.sessionID == "" {
		return
	}
	r.score = score
	r.record(EventRecord{Kind: KindScoreChanged, Value: score})
}

func (r *Recorder) OnLifeLost(lives int) {
	r.record(EventRecord{Kind: KindLifeLost, Value: lives})
}

func (r *Recorder) OnBrickDestroyed(row, col int) {
	if r.sessionID == "" {
		return
	}
	r.bricks++
	r.record(EventRecord{Kind: KindBrickDestroyed, Row: row, Col: col})
}

// OnGameOver closes the session. The score reset that follows it is not
// journaled; the session keeps the score it ended with.
func (r *Recorder) OnGameOver() {
	r.record(EventRecord{Kind: KindGameOver, Value: r.score})
	r.finish(OutcomeGameOver)
}

func (r *Recorder) OnBoardCleared(score int) {
	r.score = score
	r.record(EventRecord{Kind: KindBoardCleared, Value: score})
	r.finish(OutcomeCleared)
}

func (r *Recorder) record(ev EventRecord) {
	if r.sessionID == "" {
		return
	}

	r.seq++
	ev.SessionID = r.sessionID
	ev.Seq = r.seq
	ev.Tick = r.game.Session().Ticks
	if ev.Kind != KindBrickDestroyed {
		ev.Row, ev.Col = -1, -1
	}
	r.pending = append(r.pending, ev)

	if len(r.pending) >= flushThreshold {
		r.flush()
	}
}

func (r *Recorder) flush() {
	if err := r.store.AppendEvents(r.pending); err != nil {
		r.logger.Warn("could not journal events", "session", r.sessionID, "count", len(r.pending), "error", err)
	}
	r.pending = r.pending[:0]
}

func (r *Recorder) finish(outcome string) {
	if r.sessionID == "" {
		return
	}

	r.flush()
	if err := r.store.EndSession(r.sessionID, outcome, r.score, r.bricks); err != nil {
		r.logger.Warn("could not journal session end", "session", r.sessionID, "error", err)
	}
	r.logger.Debug("session journaled", "session", r.sessionID, "outcome", outcome, "score", r.score, "bricks", r.bricks)

	r.sessionID = ""
	r.game = nil
}
