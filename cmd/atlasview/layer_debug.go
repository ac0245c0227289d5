package main

import (
	"fmt"

	"github.com/hubastard/texatlas/engine/core"
	"github.com/hubastard/texatlas/engine/gfx/renderer2d"
	"github.com/hubastard/texatlas/engine/profiler"
)

// ------- Window title status line -------
type LayerDebug struct {
	title string
	hz    int
	atlas *LayerAtlas
	stats *renderer2d.Statistics
}

func (l *LayerDebug) OnAttach(e *core.Engine) {}
func (l *LayerDebug) OnDetach(e *core.Engine) {}

// OnTurn refreshes the title about once a second.
func (l *LayerDebug) OnTurn(e *core.Engine) {
	if l.hz > 0 && e.Turn()%uint64(l.hz) != 0 {
		return
	}
	e.Window.SetTitle(l.status(e))
}

func (l *LayerDebug) status(e *core.Engine) string {
	paused := ""
	if e.Paused {
		paused = " (paused)"
	}
	return fmt.Sprintf("%s | page %d/%d | turn %d%s | %d draws, %d quads, %d faces | %.1f MB",
		l.title, l.atlas.page, len(l.atlas.pages), e.Turn(), paused,
		l.stats.DrawCalls, l.stats.QuadCount, l.stats.FaceCount,
		float32(profiler.MemoryUsage())/(1<<20))
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool { return false }
