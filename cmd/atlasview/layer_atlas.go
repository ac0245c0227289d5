package main

import (
	"log"

	"github.com/hubastard/texatlas/engine/assets"
	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/hubastard/texatlas/engine/colors"
	"github.com/hubastard/texatlas/engine/config"
	"github.com/hubastard/texatlas/engine/core"
	"github.com/hubastard/texatlas/engine/gfx/renderer2d"
	"github.com/hubastard/texatlas/engine/profiler"
)

// pageBackdrop covers a whole atlas page.
var pageBackdrop = atlas.FloorTexture{UV: [4]atlas.UV{
	{U: 0, V: 0},
	{U: atlas.PageSize - 1, V: 0},
	{U: atlas.PageSize - 1, V: atlas.PageSize - 1},
	{U: 0, V: atlas.PageSize - 1},
}}

// ------- Atlas page viewer -------
type LayerAtlas struct {
	cfg      config.Config
	r2d      *renderer2d.Renderer2D
	walk     *assets.WalkData
	pages    []core.Texture // nil where the page image is missing
	page     int
	animated map[int]bool

	showWalk  bool
	showFaces bool
}

func (l *LayerAtlas) OnAttach(e *core.Engine) {
	l.pages = make([]core.Texture, pageCount(l.cfg, e.Atlas))
	for p := range l.pages {
		pix, err := assets.LoadAtlasPage(l.cfg.DataDir, p)
		if err != nil {
			log.Printf("page %d: %v", p, err)
			continue
		}
		l.pages[p], err = e.Renderer.CreateTexture(core.TextureDesc{
			Width:  atlas.PageSize,
			Height: atlas.PageSize,
			Pixels: pix,
		})
		if err != nil {
			log.Printf("page %d: %v", p, err)
		}
	}

	l.animated = make(map[int]bool)
	for i := atlas.FirstAnimTmap; i < e.Atlas.NumAnimTmaps(); i++ {
		l.animated[int(e.Atlas.AnimTmap(i).Texture)] = true
	}
}

func (l *LayerAtlas) OnDetach(e *core.Engine) {}

// OnTurn reads latched key presses; a tap between turns still counts.
func (l *LayerAtlas) OnTurn(e *core.Engine) {
	n := len(l.pages)
	if e.Input.Pressed(core.KeyPageUp) && n > 0 {
		l.page = (l.page + n - 1) % n
	}
	if e.Input.Pressed(core.KeyPageDown) && n > 0 {
		l.page = (l.page + 1) % n
	}
	if e.Input.Pressed(core.KeySpace) {
		e.Paused = !e.Paused
	}
	if e.Input.Pressed(core.KeyG) {
		l.showWalk = !l.showWalk
	}
	if e.Input.Pressed(core.KeyN) {
		l.showFaces = !l.showFaces
	}
	if e.Input.Pressed(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *LayerAtlas) OnRender(e *core.Engine, alpha float64) {
	if l.page >= len(l.pages) || l.pages[l.page] == nil {
		return
	}
	tex := l.pages[l.page]
	defer profiler.Start("LayerAtlas.OnRender")()

	w, h := e.Window.FramebufferSize()
	cell := float32(min(w, h)) / atlas.TilesPerRow
	x0 := (float32(w) - cell*atlas.TilesPerRow) / 2
	y0 := (float32(h) - cell*atlas.TilesPerRow) / 2

	l.r2d.BeginScene(renderer2d.PixelProjection(w, h))
	err := l.r2d.DrawFloor(x0, y0, cell*atlas.TilesPerRow, tex, &pageBackdrop, colors.White.WithAlpha(0.25))

	store := e.Atlas
	for i := range store.Textures {
		q := &store.Textures[i]
		if err != nil || int(q.Page) != l.page {
			continue
		}
		x, y := l.cellOrigin(q, x0, y0, cell)
		err = l.r2d.DrawFloor(x, y, cell, tex, q, l.tint(i, q))
	}
	if l.showFaces {
		for i := range store.Faces {
			q := &store.Faces[i]
			if err != nil || int(q.Page) != l.page {
				continue
			}
			x, y := l.cellOrigin(q, x0, y0, cell)
			err = l.r2d.DrawFace(x, y, cell, tex, q, colors.Yellow)
		}
	}
	if err == nil {
		err = l.r2d.EndScene()
	}
	if err != nil {
		log.Printf("render page %d: %v", l.page, err)
	}
}

func (l *LayerAtlas) OnEvent(e *core.Engine, ev core.Event) bool { return false }

// cellOrigin places a quad on the screen cell of its anchor tile.
func (l *LayerAtlas) cellOrigin(q atlas.Quad, x0, y0, cell float32) (float32, float32) {
	u, v := atlas.TileBase(atlas.OwningTileIndex(q))
	return x0 + float32(u/atlas.TileSize)*cell, y0 + float32(v/atlas.TileSize)*cell
}

func (l *LayerAtlas) tint(i int, q atlas.Quad) colors.Color {
	if l.animated[i] {
		return colors.Highlight
	}
	if l.showWalk && l.walk != nil {
		for _, ok := range l.walk.CornerWalkable(q) {
			if ok {
				return colors.White
			}
		}
		return colors.Red
	}
	return colors.White
}
