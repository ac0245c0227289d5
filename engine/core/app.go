package core

import (
	"time"

	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/colors"
	"github.com/hubastard/texatlas/engine/config"
	"github.com/hubastard/texatlas/engine/profiler"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnTurn(e *Engine)                  // called once per game turn, after the atlas animated
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Atlas    *atlas.Store

	// Paused stops the atlas animation; turns keep counting.
	Paused bool

	fifties int
	turn    uint64
	start   time.Time
}

// NewEngine builds an engine over store without a window, for tools and
// tests. Run fills in Window and Renderer.
func NewEngine(store *atlas.Store, cfg config.Config) *Engine {
	return &Engine{
		Input:   NewInput(),
		Atlas:   store,
		fifties: cfg.FiftiesPerTurn,
		start:   time.Now(),
	}
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Turn is the number of game turns run so far.
func (e *Engine) Turn() uint64 { return e.turn }

// Step runs one game turn: the atlas animates, then layers and app see it.
func (e *Engine) Step(app App) {
	defer profiler.Start("Engine.Step")()

	e.turn++
	if !e.Paused && e.Atlas != nil {
		end := profiler.Start("Atlas.AnimateTextures")
		e.Atlas.AnimateTextures(e.fifties)
		end()
	}
	e.Layers.ForEach(func(l Layer) { l.OnTurn(e) })
	if app != nil {
		app.OnTurn(e)
	}
}

// RunTurns runs n turns with no window attached.
func (e *Engine) RunTurns(app App, n int) {
	for i := 0; i < n; i++ {
		e.Step(app)
	}
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Texture is a GPU texture handle owned by a Renderer.
type Texture interface {
	Size() (w, h int)
}

// TextureDesc describes tightly packed RGBA8 pixels.
type TextureDesc struct {
	Width, Height int
	Pixels        []byte
}

// Renderer abstraction: textured triangles with per-vertex tint.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	CreateTexture(desc TextureDesc) (Texture, error)
	// DrawTriangles draws verts laid out as pos2 + uv2 + tint4.
	DrawTriangles(tex Texture, vp [16]float32, verts []float32, inds []uint32) error
	Shutdown()
}

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyPageUp
	KeyPageDown
	KeyG
	KeyN
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
