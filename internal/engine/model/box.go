package model

// boxFace describes one side of a box: its outward normal and the two
// in-plane axes, ordered so that u x v == normal.
type boxFace struct {
	normal, u, v [3]float32
}

var boxFaces = [6]boxFace{
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
}

// corner signs along (u, v), counter-clockwise when viewed from outside.
var boxCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// Box builds a box centered on the origin with the given extents.
// Each face has its own four vertices so normals stay flat.
// Dimensions are not validated; zero or negative extents give a
// degenerate or inside-out box.
func Box(width, height, depth float32) *Mesh {
	half := [3]float32{width / 2, height / 2, depth / 2}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, f := range boxFaces {
		base := uint32(len(vertices))
		for _, c := range boxCorners {
			var pos [3]float32
			for i := 0; i < 3; i++ {
				pos[i] = (f.normal[i] + f.u[i]*c[0] + f.v[i]*c[1]) * half[i]
			}
			vertices = append(vertices, Vertex{Position: pos, Normal: f.normal})
		}
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   computeBounds(vertices),
	}
}
