package renderer

import (
	"github.com/Faultbox/cube-orbitals/internal/engine/camera"
	"github.com/Faultbox/cube-orbitals/internal/engine/lighting"
	"github.com/Faultbox/cube-orbitals/internal/engine/scene"
	"github.com/Faultbox/cube-orbitals/pkg/math"
)

// MaxLights is the number of directional lights the shader accepts.
const MaxLights = 4

// drawCall holds the per-mesh uniforms for one frame.
type drawCall struct {
	mesh      *scene.Mesh
	mvp       math.Mat4
	model     math.Mat4
	normal    math.Mat3
	color     [3]float32
	specular  [3]float32
	shininess float32
}

// lightBlock holds the light uniforms shared by every draw in a frame.
type lightBlock struct {
	count  int32
	dirs   [MaxLights][3]float32
	colors [MaxLights][3]float32
}

// buildDrawCalls computes uniforms for every visible mesh, reading each
// transform once. Meshes without geometry or material are skipped.
func buildDrawCalls(s *scene.Scene, cam *camera.PerspectiveCamera) []drawCall {
	viewProj := cam.ViewProjection()

	calls := make([]drawCall, 0, len(s.Meshes()))
	for _, m := range s.Meshes() {
		if !m.Visible || m.Geometry == nil || m.Material == nil {
			continue
		}
		model := m.Transform.Matrix()
		calls = append(calls, drawCall{
			mesh:      m,
			mvp:       viewProj.Mul(model),
			model:     model,
			normal:    model.NormalMatrix(),
			color:     m.Material.Color.Array(),
			specular:  m.Material.Specular.Array(),
			shininess: m.Material.Shininess,
		})
	}
	return calls
}

// buildLightBlock packs up to MaxLights lights; extras are dropped.
func buildLightBlock(lights []*lighting.DirectionalLight) lightBlock {
	var b lightBlock
	for _, l := range lights {
		if int(b.count) == MaxLights {
			break
		}
		b.dirs[b.count] = l.Direction().Array()
		b.colors[b.count] = l.Radiance().Array()
		b.count++
	}
	return b
}
