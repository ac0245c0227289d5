package core

import (
	"log"
	"runtime"
	"time"

	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/config"
)

// maxStepsPerFrame bounds the turns run to catch up after a stall.
const maxStepsPerFrame = 10

// Run wires the platform window + renderer and executes the main loop.
// One fixed step is one game turn at cfg.TurnHz.
func Run(app App, cfg config.Config, store *atlas.Store,
	newWindow func(config.Config) (Window, error),
	newRenderer func(Window, config.Config) (Renderer, error),
) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := NewEngine(store, cfg)
	eng.Window, eng.Renderer = win, rend
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		if eng.Layers.Dispatch(eng, ev) {
			return
		}
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	tick := time.Second / time.Duration(cfg.TurnHz)
	var (
		accum time.Duration
		prev  = time.Now()
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStepsPerFrame {
			eng.Step(app)
			accum -= tick
			steps++
		}
		if steps == maxStepsPerFrame {
			// drop the backlog rather than replaying it next frame
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(cfg.ClearColor)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	for eng.Layers.Len() > 0 {
		eng.Layers.Pop(eng)
	}
	log.Printf("Engine exit after %d turns", eng.Turn())
	return nil
}
