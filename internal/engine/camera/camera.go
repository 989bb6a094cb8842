// Package camera provides the orbit camera driven by pointer and scroll input.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitscene/internal/engine/input"
)

const (
	// DefaultRadius is the initial orbit distance.
	DefaultRadius = 6
	// MinRadius is the closest the camera gets to the origin.
	MinRadius = input.MinZoom
	// PitchEpsilon keeps pitch strictly inside (-π/2, π/2).
	PitchEpsilon = 0.01
	// MaxPitch is the largest absolute pitch.
	MaxPitch = math32.Pi/2 - PitchEpsilon

	// Radians per pixel of cursor motion while dragging.
	PitchSensitivity = 2 * math32.Pi / 600
	YawSensitivity   = math32.Pi / 600
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera orbits the origin on a sphere. Pitch is the angle above the
// equator, yaw the azimuth around +Y.
type Camera struct {
	pitch  float32
	yaw    float32
	radius float32

	lastX, lastY int32
	primed       bool

	position   mgl32.Vec3
	view       mgl32.Mat4
	projection mgl32.Mat4

	fov, near, far float32
}

// New creates a camera at DefaultRadius on +Z. fov is in degrees.
func New(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		radius: DefaultRadius,
		fov:    fov,
		near:   near,
		far:    far,
	}
	c.SetAspect(aspect)
	c.rebuild()
	return c
}

// SetAspect rebuilds the projection for a new viewport aspect ratio.
func (c *Camera) SetAspect(aspect float32) {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)
}

// Update applies one frame of input. The zoom is taken as the new radius;
// cursor motion since the previous call rotates the camera while dragging.
func (c *Camera) Update(s input.State) {
	c.radius = max(s.Zoom, MinRadius)

	if !c.primed {
		c.lastX, c.lastY = s.CursorX, s.CursorY
		c.primed = true
	}
	dx := float32(s.CursorX - c.lastX)
	dy := float32(s.CursorY - c.lastY)

	if s.Dragging {
		c.pitch = mgl32.Clamp(c.pitch+PitchSensitivity*dy, -MaxPitch, MaxPitch)
		c.yaw -= YawSensitivity * dx
	}

	c.rebuild()
	c.lastX, c.lastY = s.CursorX, s.CursorY
}

func (c *Camera) rebuild() {
	cp := math32.Cos(c.pitch)
	c.position = mgl32.Vec3{
		cp * math32.Sin(c.yaw),
		math32.Sin(c.pitch),
		cp * math32.Cos(c.yaw),
	}.Mul(c.radius)

	front := c.position.Mul(-1).Normalize()
	right := front.Cross(worldUp).Normalize()
	up := right.Cross(front)

	basis := mgl32.Mat4FromCols(
		right.Vec4(0),
		up.Vec4(0),
		front.Mul(-1).Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	c.view = basis.Transpose().Mul4(mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2]))
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 { return c.projection.Mul4(c.view) }

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Pitch returns the elevation angle in radians.
func (c *Camera) Pitch() float32 { return c.pitch }

// Yaw returns the azimuth angle in radians.
func (c *Camera) Yaw() float32 { return c.yaw }

// Radius returns the orbit distance.
func (c *Camera) Radius() float32 { return c.radius }
