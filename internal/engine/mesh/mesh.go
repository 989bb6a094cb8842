// Package mesh provides CPU-side triangle mesh data and procedural generators.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidMesh is returned by Validate for malformed mesh data.
var ErrInvalidMesh = errors.New("invalid mesh")

// Data holds mesh data ready for GPU upload. Normals and UVs are optional;
// when present they are parallel to Positions.
type Data struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (d *Data) VertexCount() int { return len(d.Positions) }

// IndexCount returns the number of triangle corner indices.
func (d *Data) IndexCount() int { return len(d.Indices) }

// TriangleCount returns the number of triangles.
func (d *Data) TriangleCount() int { return len(d.Indices) / 3 }

// Validate checks the triangle-list invariants.
func (d *Data) Validate() error {
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(d.Indices))
	}
	if len(d.Normals) > 0 && len(d.Normals) != len(d.Positions) {
		return fmt.Errorf("%w: %d normals for %d positions", ErrInvalidMesh, len(d.Normals), len(d.Positions))
	}
	if len(d.UVs) > 0 && len(d.UVs) != len(d.Positions) {
		return fmt.Errorf("%w: %d uvs for %d positions", ErrInvalidMesh, len(d.UVs), len(d.Positions))
	}
	n := uint32(len(d.Positions))
	for i, idx := range d.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

// MaxIndex returns the largest index, or 0 for an empty mesh.
func (d *Data) MaxIndex() uint32 {
	var m uint32
	for _, idx := range d.Indices {
		if idx > m {
			m = idx
		}
	}
	return m
}

// FlattenVec3 packs vectors into a float32 slice [x0, y0, z0, x1, ...].
func FlattenVec3(v []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(v)*3)
	for _, p := range v {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// FlattenVec2 packs vectors into a float32 slice [u0, v0, u1, ...].
func FlattenVec2(v []mgl32.Vec2) []float32 {
	out := make([]float32, 0, len(v)*2)
	for _, p := range v {
		out = append(out, p[0], p[1])
	}
	return out
}

func (d *Data) add(p, n mgl32.Vec3, uv mgl32.Vec2) uint32 {
	d.Positions = append(d.Positions, p)
	d.Normals = append(d.Normals, n)
	d.UVs = append(d.UVs, uv)
	return uint32(len(d.Positions) - 1)
}

func (d *Data) tri(a, b, c uint32) {
	d.Indices = append(d.Indices, a, b, c)
}
