package assets

import (
	"errors"
	"fmt"
	"os"

	"github.com/hubastard/texatlas/engine/atlas"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// LoadAnimDefs registers the animated tiles described in a JSON file:
//
//	{"anims": [{"texture": 20, "frames": [{"tmap": 30, "delay": 2}, ...]}]}
//
// It returns the number of tiles registered.
func LoadAnimDefs(path string, store *atlas.Store) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read anim defs: %w", err)
	}
	n, err := ParseAnimDefs(data, store)
	if err != nil {
		return n, fmt.Errorf("parse anim defs %q: %w", path, err)
	}
	return n, nil
}

// ParseAnimDefs validates every entry against the store before registering
// any of them.
func ParseAnimDefs(data []byte, store *atlas.Store) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, errors.New("invalid JSON")
	}
	res := gjson.GetBytes(data, "anims")
	if !res.Exists() {
		return 0, nil
	}
	if !res.IsArray() {
		return 0, errors.New("anims is not an array")
	}

	ntex := len(store.Textures)
	var (
		defs   []atlas.AnimTmap
		errOut error
	)
	i := -1
	res.ForEach(func(_, v gjson.Result) bool {
		i++
		var a atlas.AnimTmap
		tex := v.Get("texture")
		if !tex.Exists() || tex.Int() < 0 || int(tex.Int()) >= ntex {
			errOut = fmt.Errorf("anim %d: texture %s out of range [0,%d)", i, tex.Raw, ntex)
			return false
		}
		a.Texture = uint16(tex.Int())
		v.Get("frames").ForEach(func(_, f gjson.Result) bool {
			tmap, delay := f.Get("tmap").Int(), f.Get("delay").Int()
			if tmap < 0 || int(tmap) >= ntex {
				errOut = fmt.Errorf("anim %d: frame tmap %d out of range [0,%d)", i, tmap, ntex)
				return false
			}
			if delay < 0 || delay > 255 {
				errOut = fmt.Errorf("anim %d: frame delay %d out of range", i, delay)
				return false
			}
			if !a.AddFrame(uint16(tmap), uint8(delay)) {
				errOut = fmt.Errorf("anim %d: more than %d frames", i, atlas.MaxAnimFrames)
				return false
			}
			return true
		})
		if errOut != nil {
			return false
		}
		if a.Frames == 0 {
			errOut = fmt.Errorf("anim %d: no frames", i)
			return false
		}
		defs = append(defs, a)
		return true
	})
	if errOut != nil {
		return 0, errOut
	}
	for _, a := range defs {
		store.AddAnimTmap(a)
	}
	return len(defs), nil
}

// DumpStore renders the store as a JSON document for inspection.
func DumpStore(store *atlas.Store) ([]byte, error) {
	out := []byte(`{"floors":[],"faces":[],"anims":[]}`)
	var err error
	for i := range store.Textures {
		t := &store.Textures[i]
		out, err = sjson.SetBytes(out, "floors.-1", quadDoc(i, t))
		if err != nil {
			return nil, err
		}
	}
	for i := range store.Faces {
		t := &store.Faces[i]
		out, err = sjson.SetBytes(out, "faces.-1", quadDoc(i, t))
		if err != nil {
			return nil, err
		}
	}
	for slot := atlas.FirstAnimTmap; slot < store.NumAnimTmaps(); slot++ {
		a := store.AnimTmap(slot)
		frames := make([]map[string]int, a.Frames)
		for f := range frames {
			frames[f] = map[string]int{"tmap": int(a.TMap[f]), "delay": int(a.Delay[f])}
		}
		out, err = sjson.SetBytes(out, "anims.-1", map[string]any{
			"slot":    slot,
			"texture": a.Texture,
			"current": a.Current,
			"time":    a.Time,
			"frames":  frames,
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func quadDoc(i int, q atlas.Quad) map[string]any {
	cs := q.Corners()
	uv := make([][2]uint16, len(cs))
	for k, c := range cs {
		uv[k] = [2]uint16{c.U, c.V}
	}
	return map[string]any{
		"index": i,
		"page":  q.PageNum(),
		"tile":  atlas.OwningTileIndex(q),
		"uv":    uv,
	}
}
