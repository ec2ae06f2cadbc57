package geom

import "math"

// Vec3 is the vector type shared by the scene graph, the picker and both
// front ends.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// Distance returns the Euclidean distance between two points.
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Length() }

// Flat zeroes the vertical component, projecting the point onto the
// orbital plane.
func (v Vec3) Flat() Vec3 { return Vec3{v.X, 0, v.Z} }
