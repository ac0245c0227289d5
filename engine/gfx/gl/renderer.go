package glbackend

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/texatlas/engine/assets"
	"github.com/hubastard/texatlas/engine/colors"
	"github.com/hubastard/texatlas/engine/config"
	"github.com/hubastard/texatlas/engine/core"
)

var errForeignTexture = errors.New("glbackend: texture not created by this renderer")

// Texture is an RGBA8 page texture.
type Texture struct {
	id   uint32
	w, h int
}

func (t *Texture) Size() (int, int) { return t.w, t.h }

type RendererGL struct {
	win     core.Window
	program uint32
	uVP     int32
	uTex    int32
	vao     uint32
	vbo     uint32
	ebo     uint32
	vboCap  int // bytes
	eboCap  int // bytes
	texs    []*Texture
}

func NewRendererGL(win core.Window, cfg config.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(cfg.AssetsDir); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init(assetsDir string) error {
	vs, err := assets.LoadShader(assetsDir, "atlas.vert")
	if err != nil {
		return err
	}
	fs, err := assets.LoadShader(assetsDir, "atlas.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	r.uTex = gl.GetUniformLocation(r.program, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aTint;
	const stride = 8 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(4*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	for _, t := range r.texs {
		gl.DeleteTextures(1, &t.id)
	}
	r.texs = nil
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CreateTexture uploads RGBA8 pixels. Atlas pages are sampled with nearest
// filtering so neighbouring tiles never bleed in.
func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 || len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("create texture %dx%d: %d bytes of pixels", desc.Width, desc.Height, len(desc.Pixels))
	}
	t := &Texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.texs = append(r.texs, t)
	return t, nil
}

func (r *RendererGL) DrawTriangles(tex core.Texture, vp [16]float32, verts []float32, inds []uint32) error {
	if len(inds) == 0 {
		return nil
	}
	t, ok := tex.(*Texture)
	if !ok {
		return errForeignTexture
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])
	gl.Uniform1i(r.uTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	vbytes := len(verts) * 4
	if vbytes > r.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, vbytes, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		r.vboCap = vbytes
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, vbytes, gl.Ptr(verts))
	}
	ibytes := len(inds) * 4
	if ibytes > r.eboCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ibytes, gl.Ptr(inds), gl.DYNAMIC_DRAW)
		r.eboCap = ibytes
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, ibytes, gl.Ptr(inds))
	}

	gl.DrawElements(gl.TRIANGLES, int32(len(inds)), gl.UNSIGNED_INT, nil)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	return nil
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
