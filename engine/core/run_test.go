package core

import (
	"testing"

	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/colors"
	"github.com/hubastard/texatlas/engine/config"
)

type fakeWindow struct {
	frames   int
	maxFrame int
	cb       func(Event)
	title    string
}

func (w *fakeWindow) PollEvents() {
	if w.frames == 1 && w.cb != nil {
		w.cb(EventKey{Key: KeySpace, Down: true})
		w.cb(EventResize{W: 320, H: 200})
	}
}
func (w *fakeWindow) SwapBuffers()                    { w.frames++ }
func (w *fakeWindow) ShouldClose() bool               { return w.frames >= w.maxFrame }
func (w *fakeWindow) RequestClose()                   { w.maxFrame = w.frames }
func (w *fakeWindow) FramebufferSize() (int, int)     { return 640, 400 }
func (w *fakeWindow) SetTitle(t string)               { w.title = t }
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }

type fakeRenderer struct {
	clears   int
	resizes  int
	shutdown bool
}

func (r *fakeRenderer) Resize(w, h int)      { r.resizes++ }
func (r *fakeRenderer) Clear(c colors.Color) { r.clears++ }
func (r *fakeRenderer) CreateTexture(desc TextureDesc) (Texture, error) {
	return nil, nil
}
func (r *fakeRenderer) DrawTriangles(Texture, [16]float32, []float32, []uint32) error {
	return nil
}
func (r *fakeRenderer) Shutdown() { r.shutdown = true }

type recordingApp struct {
	started, stopped bool
	turns, renders   int
	events           []Event
}

func (a *recordingApp) OnStart(e *Engine)             { a.started = true }
func (a *recordingApp) OnTurn(e *Engine)              { a.turns++ }
func (a *recordingApp) OnRender(e *Engine, _ float64) { a.renders++ }
func (a *recordingApp) OnEvent(e *Engine, ev Event)   { a.events = append(a.events, ev) }
func (a *recordingApp) OnShutdown(e *Engine)          { a.stopped = true }

type recordingLayer struct {
	name     string
	log      *[]string
	consume  bool
	attached bool
}

func (l *recordingLayer) OnAttach(e *Engine)        { l.attached = true }
func (l *recordingLayer) OnDetach(e *Engine)        { l.attached = false }
func (l *recordingLayer) OnTurn(e *Engine)          { *l.log = append(*l.log, l.name+".turn") }
func (l *recordingLayer) OnRender(*Engine, float64) {}
func (l *recordingLayer) OnEvent(e *Engine, ev Event) bool {
	*l.log = append(*l.log, l.name+".event")
	return l.consume
}

func TestRunLifecycle(t *testing.T) {
	win := &fakeWindow{maxFrame: 3}
	rend := &fakeRenderer{}
	app := &recordingApp{}
	cfg := config.Default()

	err := Run(app, cfg, atlas.NewStore(1, 0),
		func(config.Config) (Window, error) { return win, nil },
		func(Window, config.Config) (Renderer, error) { return rend, nil },
	)
	if err != nil {
		t.Fatal(err)
	}
	if !app.started || !app.stopped {
		t.Fatalf("start %v stop %v", app.started, app.stopped)
	}
	if app.renders != 3 || rend.clears != 3 {
		t.Fatalf("renders %d clears %d, want 3", app.renders, rend.clears)
	}
	if !rend.shutdown {
		t.Fatal("renderer not shut down")
	}
	if len(app.events) != 2 || rend.resizes != 2 {
		t.Fatalf("events %v resizes %d", app.events, rend.resizes)
	}
}

func TestStepAnimatesAtlas(t *testing.T) {
	store := atlas.NewStore(atlas.TilesPerPage, 0)
	for i := range store.Textures {
		store.Textures[i] = atlas.FloorFromTile(i)
	}
	var a atlas.AnimTmap
	a.Texture = 5
	a.AddFrame(5, 0)
	a.AddFrame(6, 0)
	store.AddAnimTmap(a)

	cfg := config.Default()
	cfg.FiftiesPerTurn = 10
	e := NewEngine(store, cfg)
	app := &recordingApp{}

	e.Paused = true
	e.RunTurns(app, 4)
	if store.Textures[5] != atlas.FloorFromTile(5) {
		t.Fatal("paused engine animated the atlas")
	}
	e.Paused = false
	e.RunTurns(app, 2)
	if store.Textures[5] != atlas.FloorFromTile(6) {
		t.Fatalf("texture 5 = %v, want tile 6", store.Textures[5].UV)
	}
	if e.Turn() != 6 || app.turns != 6 {
		t.Fatalf("turns %d / %d", e.Turn(), app.turns)
	}
}

func TestLayerStackDispatch(t *testing.T) {
	var log []string
	e := NewEngine(nil, config.Default())
	bottom := &recordingLayer{name: "bottom", log: &log}
	top := &recordingLayer{name: "top", log: &log, consume: true}
	e.Layers.Push(e, bottom)
	e.Layers.Push(e, top)
	if !bottom.attached || !top.attached {
		t.Fatal("push should attach")
	}

	e.Step(nil)
	if !e.Layers.Dispatch(e, EventCloseRequested{}) {
		t.Fatal("top layer should consume")
	}
	want := []string{"bottom.turn", "top.turn", "top.event"}
	if len(log) != len(want) {
		t.Fatalf("log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}

	if l, ok := e.Layers.Pop(e); !ok || l != Layer(top) || top.attached {
		t.Fatal("pop should detach the top layer")
	}
}

func TestInputPressedLatch(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyPageUp, Down: true})
	in.Handle(EventKey{Key: KeyPageUp, Down: true}) // key repeat
	in.Handle(EventKey{Key: KeyPageUp, Down: false})
	if in.IsKeyDown(KeyPageUp) {
		t.Fatal("key should be up")
	}
	if !in.Pressed(KeyPageUp) {
		t.Fatal("press lost")
	}
	if in.Pressed(KeyPageUp) {
		t.Fatal("press should be consumed")
	}
}
