// Package renderer draws a scene graph with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cube-orbitals/internal/engine/camera"
	"github.com/Faultbox/cube-orbitals/internal/engine/model"
	"github.com/Faultbox/cube-orbitals/internal/engine/renderer/shaders"
	"github.com/Faultbox/cube-orbitals/internal/engine/scene"
	"github.com/Faultbox/cube-orbitals/internal/engine/shader"
	"github.com/Faultbox/cube-orbitals/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	// Framebuffer size in pixels
	Width  int
	Height int
}

// gpuMesh is a geometry uploaded to vertex buffers.
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  map[*model.Mesh]*gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*model.Mesh]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shaders.PhongVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("phong shader: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for geom, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(r.meshes, geom)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Render draws the scene as seen from cam.
func (r *Renderer) Render(s *scene.Scene, cam *camera.PerspectiveCamera) error {
	bg := s.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	calls := buildDrawCalls(s, cam)
	lights := buildLightBlock(s.Lights())
	camPos := cam.Position.Array()

	r.program.Use()
	gl.Uniform3fv(r.program.Uniform("uCameraPos"), 1, &camPos[0])
	gl.Uniform3f(r.program.Uniform("uAmbient"), 0, 0, 0)
	gl.Uniform1i(r.program.Uniform("uLightCount"), lights.count)
	gl.Uniform3fv(r.program.Uniform("uLightDirs"), MaxLights, &lights.dirs[0][0])
	gl.Uniform3fv(r.program.Uniform("uLightColors"), MaxLights, &lights.colors[0][0])

	for i := range calls {
		c := &calls[i]
		m, err := r.upload(c.mesh.Geometry)
		if err != nil {
			return fmt.Errorf("mesh %q: %w", c.mesh.Name, err)
		}

		gl.UniformMatrix4fv(r.program.Uniform("uMVP"), 1, false, c.mvp.Ptr())
		gl.UniformMatrix4fv(r.program.Uniform("uModel"), 1, false, c.model.Ptr())
		gl.UniformMatrix3fv(r.program.Uniform("uNormalMatrix"), 1, false, c.normal.Ptr())
		gl.Uniform3fv(r.program.Uniform("uColor"), 1, &c.color[0])
		gl.Uniform3fv(r.program.Uniform("uSpecular"), 1, &c.specular[0])
		gl.Uniform1f(r.program.Uniform("uShininess"), c.shininess)

		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)

	return nil
}

// upload returns the GPU buffers for a geometry, creating them on first use.
func (r *Renderer) upload(geom *model.Mesh) (*gpuMesh, error) {
	if m, ok := r.meshes[geom]; ok {
		return m, nil
	}
	if len(geom.Vertices) == 0 || len(geom.Indices) == 0 {
		return nil, fmt.Errorf("empty geometry")
	}

	m := &gpuMesh{indexCount: int32(len(geom.Indices))}
	stride := int32(unsafe.Sizeof(model.Vertex{}))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geom.Vertices)*int(stride), unsafe.Pointer(&geom.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geom.Indices)*4, unsafe.Pointer(&geom.Indices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.meshes[geom] = m
	logger.Debug("geometry uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", len(geom.Vertices)),
		zap.Int32("indices", m.indexCount),
	)
	return m, nil
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
