// Package mobile is the Android entry point. Build it with ebitenmobile:
//
//	ebitenmobile bind -target android -javapkg com.vovakirdan.breakout -o breakout.aar ./internal/platform/gui/mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/vovakirdan/touch-breakout/internal/config"
	"github.com/vovakirdan/touch-breakout/internal/platform/gui"
)

func init() {
	app, err := gui.New(gui.Options{
		Config: config.DefaultBreakoutConfig(),
		Source: "android",
	})
	if err != nil {
		panic(err)
	}
	mobile.SetGame(app)
}

// Dummy is exported so the bind tool generates a package.
func Dummy() {}
