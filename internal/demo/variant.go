// Package demo assembles the cube demos: the scene each one shows, the
// motion that animates it, and the loop that drives both.
package demo

import (
	"github.com/Faultbox/cube-orbitals/internal/engine/camera"
	"github.com/Faultbox/cube-orbitals/internal/engine/lighting"
	"github.com/Faultbox/cube-orbitals/internal/engine/scene"
	"github.com/Faultbox/cube-orbitals/internal/motion"
	"github.com/Faultbox/cube-orbitals/pkg/math"
)

// Camera lens shared by both demos.
const (
	FieldOfView = 75
	NearPlane   = 0.1
	FarPlane    = 1000
)

// Orbit demo constants.
const (
	OrbitSpeed = 0.02

	// Half-extents of the box the small cube bounces around in.
	OrbitHalfX = 5
	OrbitHalfY = 2
	OrbitHalfZ = 5

	// The small cube starts off to the right so it isn't inside the large one.
	OrbitStartX = 5
)

// Cube colors.
const (
	ColorGreen  = 0x22ffaa
	ColorPurple = 0xaa22ff
	ColorLight  = 0xFFFFFF
)

// Variant is a ready-to-run demo: what to draw, from where, and how it moves.
type Variant struct {
	Name   string
	Title  string
	Scene  *scene.Scene
	Camera *camera.PerspectiveCamera
	Motion *motion.Model
}

// Builder creates a variant for a viewport with the given aspect ratio.
type Builder func(aspect float32) *Variant

// Orbit builds the two-cube demo: a large cube spinning slowly at the
// origin and a small cube spinning faster while it bounces around it.
func Orbit(aspect float32) *Variant {
	s := scene.New()

	cam := camera.NewPerspectiveCamera(FieldOfView, aspect, NearPlane, FarPlane)
	cam.Position = math.Vec3{X: 0, Y: 0, Z: 7}

	light := lighting.NewDirectionalLight(math.ColorFromHex(ColorLight), 1)
	light.Position = math.Vec3{X: -1, Y: 2, Z: 10}
	s.AddLight(light)

	still := scene.NewCube(s, 2, 2, 2, math.ColorFromHex(ColorGreen))
	still.Name = "still"

	moving := scene.NewCube(s, 1, 1, 1, math.ColorFromHex(ColorPurple))
	moving.Name = "moving"
	moving.Position.X = OrbitStartX

	model := motion.NewModel(
		&motion.Body{
			Name:      still.Name,
			Transform: &still.Transform,
			Spin:      motion.Spin{X: 0.01, Y: 0.01},
		},
		&motion.Body{
			Name:      moving.Name,
			Transform: &moving.Transform,
			Spin:      motion.Spin{X: 0.03, Y: 0.03},
			Orbit:     motion.NewOrbit(OrbitHalfX, OrbitHalfY, OrbitHalfZ, OrbitSpeed),
		},
	)

	return &Variant{
		Name:   "orbit",
		Title:  "Cube Orbitals",
		Scene:  s,
		Camera: cam,
		Motion: model,
	}
}

// Spin builds the single-cube demo: one cube tumbling in place.
func Spin(aspect float32) *Variant {
	s := scene.New()

	cam := camera.NewPerspectiveCamera(FieldOfView, aspect, NearPlane, FarPlane)
	cam.Position = math.Vec3{X: 0, Y: 0, Z: 5}

	light := lighting.NewDirectionalLight(math.ColorFromHex(ColorLight), 1)
	light.Position = math.Vec3{X: -1, Y: 2, Z: 4}
	s.AddLight(light)

	cube := scene.NewCube(s, 2, 2, 2, math.ColorFromHex(ColorGreen))
	cube.Name = "cube"

	model := motion.NewModel(&motion.Body{
		Name:      cube.Name,
		Transform: &cube.Transform,
		Spin:      motion.Spin{X: 0.02, Y: 0.02, Z: 0.05},
	})

	return &Variant{
		Name:   "spin",
		Title:  "Cube",
		Scene:  s,
		Camera: cam,
		Motion: model,
	}
}
