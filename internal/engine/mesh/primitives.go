package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Generators do not validate segment counts; fewer than 3 segments yields
// degenerate geometry. All triangles wind counter-clockwise seen from outside.

// cubeFaces lists each face as (normal, u, v) with u × v = normal.
var cubeFaces = [6][3]mgl32.Vec3{
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},   // front
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}}, // back
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},  // top
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},  // bottom
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},  // left
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},  // right
}

// cubeCorners are the face-local (u, v) signs in winding order.
var cubeCorners = [4][2]float32{{-1, 1}, {-1, -1}, {1, -1}, {1, 1}}

// Cube builds an axis-aligned box centered at the origin with 4 unshared
// vertices per face (24 total) and 36 indices.
func Cube(width, height, depth float32) Data {
	half := mgl32.Vec3{width / 2, height / 2, depth / 2}
	d := Data{
		Positions: make([]mgl32.Vec3, 0, 24),
		Normals:   make([]mgl32.Vec3, 0, 24),
		UVs:       make([]mgl32.Vec2, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}

	for _, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		base := uint32(len(d.Positions))
		for _, c := range cubeCorners {
			dir := n.Add(u.Mul(c[0])).Add(v.Mul(c[1]))
			p := mgl32.Vec3{dir[0] * half[0], dir[1] * half[1], dir[2] * half[2]}
			d.add(p, n, mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2})
		}
		d.tri(base, base+1, base+2)
		d.tri(base+2, base+3, base)
	}
	return d
}

// Sphere builds a UV sphere with one vertex per pole and latitudeSegments-1
// rings of longitudeSegments vertices. Vertex 0 is the north pole, vertex 1
// the south pole.
func Sphere(radius float32, longitudeSegments, latitudeSegments uint32) Data {
	lon, lat := longitudeSegments, latitudeSegments
	var d Data

	d.add(mgl32.Vec3{0, radius, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0.5, 0})
	d.add(mgl32.Vec3{0, -radius, 0}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0.5, 1})

	for ring := uint32(1); ring < lat; ring++ {
		polar := float32(ring) * math32.Pi / float32(lat)
		for seg := uint32(0); seg < lon; seg++ {
			azimuth := 2 * float32(seg) * math32.Pi / float32(lon)
			n := mgl32.Vec3{
				math32.Sin(polar) * math32.Cos(azimuth),
				math32.Cos(polar),
				math32.Sin(polar) * math32.Sin(azimuth),
			}
			d.add(n.Mul(radius), n, mgl32.Vec2{float32(seg) / float32(lon), float32(ring) / float32(lat)})
		}
	}

	// ringVertex maps (ring in 1..lat-1, seg) to a vertex index.
	ringVertex := func(ring, seg uint32) uint32 { return 2 + (ring-1)*lon + seg }
	last := lat - 1

	for seg := uint32(0); seg < lon; seg++ {
		next := (seg + 1) % lon
		d.tri(0, ringVertex(1, next), ringVertex(1, seg))
	}
	for seg := uint32(0); seg < lon; seg++ {
		next := (seg + 1) % lon
		d.tri(1, ringVertex(last, seg), ringVertex(last, next))
	}
	for ring := uint32(2); ring < lat; ring++ {
		for seg := uint32(0); seg < lon; seg++ {
			next := (seg + 1) % lon
			cur, curNext := ringVertex(ring, seg), ringVertex(ring, next)
			up, upNext := ringVertex(ring-1, seg), ringVertex(ring-1, next)
			d.tri(cur, up, upNext)
			d.tri(cur, upNext, curNext)
		}
	}
	return d
}

// Cylinder builds a capped cylinder along Y centered at the origin. Vertex 0
// is the bottom cap center, vertex 1 the top cap center; each segment adds a
// bottom-cap, side-bottom, side-top and top-cap vertex so caps and sides get
// their own normals.
func Cylinder(radius, height float32, segments uint32) Data {
	halfH := height / 2
	down, up := mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 1, 0}
	var d Data

	d.add(mgl32.Vec3{0, -halfH, 0}, down, mgl32.Vec2{0.5, 0.5})
	d.add(mgl32.Vec3{0, halfH, 0}, up, mgl32.Vec2{0.5, 0.5})

	for i := uint32(0); i < segments; i++ {
		angle := 2 * float32(i) * math32.Pi / float32(segments)
		cos, sin := math32.Cos(angle), math32.Sin(angle)
		radial := mgl32.Vec3{cos, 0, sin}
		bottom := mgl32.Vec3{radius * cos, -halfH, radius * sin}
		top := mgl32.Vec3{radius * cos, halfH, radius * sin}
		capUV := mgl32.Vec2{0.5 + 0.5*cos, 0.5 + 0.5*sin}
		u := float32(i) / float32(segments)

		d.add(bottom, down, capUV)
		d.add(bottom, radial, mgl32.Vec2{u, 1})
		d.add(top, radial, mgl32.Vec2{u, 0})
		d.add(top, up, capUV)
	}

	// Per-segment vertex slots.
	capBottom := func(i uint32) uint32 { return 2 + 4*i }
	sideBottom := func(i uint32) uint32 { return 3 + 4*i }
	sideTop := func(i uint32) uint32 { return 4 + 4*i }
	capTop := func(i uint32) uint32 { return 5 + 4*i }

	for i := uint32(0); i < segments; i++ {
		next := (i + 1) % segments
		d.tri(0, capBottom(i), capBottom(next))
		d.tri(sideBottom(i), sideTop(next), sideBottom(next))
		d.tri(sideBottom(i), sideTop(i), sideTop(next))
		d.tri(1, capTop(next), capTop(i))
	}
	return d
}

// Torus builds a ring torus in the XY plane around the Z axis. bigRadius is
// the distance from the center to the tube center, smallRadius the tube radius.
func Torus(bigRadius, smallRadius float32, tubeSections, circleSections uint32) Data {
	var d Data

	for t := uint32(0); t < tubeSections; t++ {
		tubeAngle := 2 * float32(t) * math32.Pi / float32(tubeSections)
		ct, st := math32.Cos(tubeAngle), math32.Sin(tubeAngle)
		for c := uint32(0); c < circleSections; c++ {
			circleAngle := 2 * float32(c) * math32.Pi / float32(circleSections)
			cc, sc := math32.Cos(circleAngle), math32.Sin(circleAngle)

			ring := bigRadius + smallRadius*cc
			p := mgl32.Vec3{ring * ct, ring * st, smallRadius * sc}

			tubeTangent := mgl32.Vec3{-st, ct, 0}
			circleTangent := mgl32.Vec3{-smallRadius * ct * sc, -smallRadius * st * sc, smallRadius * cc}
			n := tubeTangent.Cross(circleTangent).Normalize()

			d.add(p, n, mgl32.Vec2{float32(t) / float32(tubeSections), float32(c) / float32(circleSections)})
		}
	}

	vertex := func(t, c uint32) uint32 { return t*circleSections + c }
	for t := uint32(0); t < tubeSections; t++ {
		tNext := (t + 1) % tubeSections
		for c := uint32(0); c < circleSections; c++ {
			cNext := (c + 1) % circleSections
			d.tri(vertex(t, cNext), vertex(t, c), vertex(tNext, cNext))
			d.tri(vertex(tNext, cNext), vertex(t, c), vertex(tNext, c))
		}
	}
	return d
}
