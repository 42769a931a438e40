package breakout

// Event is something the presentation layer may want to react to.
// The set of variants is closed; switch on the concrete type.
type Event interface {
	gameEvent()
}

// ScoreChanged is emitted after every score change, including the reset to 0 on game over.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) gameEvent() {}

// LifeLost is emitted when the ball crosses the death line. Lives is the count remaining.
type LifeLost struct {
	Lives int
}

func (LifeLost) gameEvent() {}

// BrickDestroyed is emitted when a brick is hit.
type BrickDestroyed struct {
	Row, Col int
}

func (BrickDestroyed) gameEvent() {}

// GameOver is emitted when the last life is lost.
type GameOver struct{}

func (GameOver) gameEvent() {}

// BoardCleared is emitted when the last brick is destroyed.
type BoardCleared struct {
	Score int
}

func (BoardCleared) gameEvent() {}

// Outcome classifies what a tick resolved. Exactly one outcome applies per tick.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Ball moved freely (or the game is not running)
	OutcomeWall                    // Bounced off a side or the top
	OutcomePaddle                  // Bounced off the paddle
	OutcomeLifeLost                // Crossed the death line
	OutcomeBrick                   // Destroyed one brick
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWall:
		return "wall"
	case OutcomePaddle:
		return "paddle"
	case OutcomeLifeLost:
		return "life_lost"
	case OutcomeBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Listener receives events synchronously, in emission order, on the tick's goroutine.
type Listener interface {
	OnScoreChanged(score int)
	OnLifeLost(lives int)
	OnBrickDestroyed(row, col int)
	OnGameOver()
	OnBoardCleared(score int)
}

// ListenerFuncs adapts optional funcs to a Listener. Nil funcs are skipped.
type ListenerFuncs struct {
	ScoreChanged   func(score int)
	LifeLost       func(lives int)
	BrickDestroyed func(row, col int)
	GameOver       func()
	BoardCleared   func(score int)
}

func (f ListenerFuncs) OnScoreChanged(score int) {
	if f.ScoreChanged != nil {
		f.ScoreChanged(score)
	}
}

func (f ListenerFuncs) OnLifeLost(lives int) {
	if f.LifeLost != nil {
		f.LifeLost(lives)
	}
}

func (f ListenerFuncs) OnBrickDestroyed(row, col int) {
	if f.BrickDestroyed != nil {
		f.BrickDestroyed(row, col)
	}
}

func (f ListenerFuncs) OnGameOver() {
	if f.GameOver != nil {
		f.GameOver()
	}
}

func (f ListenerFuncs) OnBoardCleared(score int) {
	if f.BoardCleared != nil {
		f.BoardCleared(score)
	}
}

// Dispatch delivers an event to a listener.
func Dispatch(l Listener, ev Event) {
	switch e := ev.(type) {
	case ScoreChanged:
		l.OnScoreChanged(e.Score)
	case LifeLost:
		l.OnLifeLost(e.Lives)
	case BrickDestroyed:
		l.OnBrickDestroyed(e.Row, e.Col)
	case GameOver:
		l.OnGameOver()
	case BoardCleared:
		l.OnBoardCleared(e.Score)
	}
}

// multiListener fans events out to several listeners.
type multiListener []Listener

func (m multiListener) OnScoreChanged(score int) {
	for _, l := range m {
		l.OnScoreChanged(score)
	}
}

func (m multiListener) OnLifeLost(lives int) {
	for _, l := range m {
		l.OnLifeLost(lives)
	}
}

func (m multiListener) OnBrickDestroyed(row, col int) {
	for _, l := range m {
		l.OnBrickDestroyed(row, col)
	}
}

func (m multiListener) OnGameOver() {
	for _, l := range m {
		l.OnGameOver()
	}
}

func (m multiListener) OnBoardCleared(score int) {
	for _, l := range m {
		l.OnBoardCleared(score)
	}
}

// Listeners combines listeners into one that calls each in order.
func Listeners(ls ...Listener) Listener {
	out := make(multiListener, 0, len(ls))
	for _, l := range ls {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}
