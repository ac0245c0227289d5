package main

import (
	"log"
	"os"

	"github.com/hubastard/texatlas/engine/assets"
	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/config"
	"github.com/hubastard/texatlas/engine/core"
	glbackend "github.com/hubastard/texatlas/engine/gfx/gl"
	"github.com/hubastard/texatlas/engine/gfx/renderer2d"
	"github.com/hubastard/texatlas/engine/platform"
	"github.com/hubastard/texatlas/engine/profiler"
)

type App struct {
	cfg        config.Config
	walk       *assets.WalkData
	r2d        *renderer2d.Renderer2D
	stats      renderer2d.Statistics
	layer      *LayerAtlas
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init()
	a.r2d = renderer2d.New(e.Renderer, 10000)

	a.layer = &LayerAtlas{cfg: a.cfg, r2d: a.r2d, walk: a.walk}
	e.Layers.Push(e, a.layer)

	a.debugLayer = &LayerDebug{title: a.cfg.Title, hz: a.cfg.TurnHz, atlas: a.layer, stats: &a.stats}
	e.Layers.Push(e, a.debugLayer)
}

func (a *App) OnTurn(e *core.Engine) {}
func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.stats = a.r2d.Stats()
}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if _, ok := ev.(core.EventCloseRequested); ok {
		e.Window.RequestClose()
	}
}
func (a *App) OnShutdown(e *core.Engine) {
	if !profiler.Enabled() {
		return
	}
	doc, err := profiler.Report()
	if err != nil {
		log.Print(err)
		return
	}
	log.Printf("profile: %s", doc)
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	path := "engine.ini"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	store, _, err := assets.LoadStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	walk, err := assets.LoadWalkData(cfg.Path(cfg.Walk))
	if err != nil {
		// the walk overlay is optional
		log.Print(err)
	}

	app := &App{cfg: cfg, walk: walk}

	newWindow := func(cfg config.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg config.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, store, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}

// pageCount is how many pages the viewer cycles through: the configured
// page count, grown to cover every record actually present.
func pageCount(cfg config.Config, store *atlas.Store) int {
	n := cfg.Pages
	for i := range store.Textures {
		if p := int(store.Textures[i].Page) + 1; p > n {
			n = p
		}
	}
	for i := range store.Faces {
		if p := int(store.Faces[i].Page) + 1; p > n {
			n = p
		}
	}
	return n
}
