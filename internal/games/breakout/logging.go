package breakout

import "github.com/charmbracelet/log"

// LogListener returns a listener that logs every event at debug level.
func LogListener(logger *log.Logger) Listener {
	return ListenerFuncs{
		ScoreChanged: func(score int) {
			logger.Debug("score changed", "score", score)
		},
		LifeLost: func(lives int) {
			logger.Debug("life lost", "lives", lives)
		},
		BrickDestroyed: func(row, col int) {
			logger.Debug("brick destroyed", "row", row, "col", col)
		},
		GameOver: func() {
			logger.Info("game over")
		},
		BoardCleared: func(score int) {
			logger.Info("board cleared", "score", score)
		},
	}
}
