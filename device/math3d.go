// SPDX-License-Identifier: EPL-2.0

package device

import "math"

// Vector3 is a point or direction in the 3D scene.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(o Vector3) Vector3   { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3   { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3            { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Dot(o Vector3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3) Length() float64         { return math.Sqrt(v.Dot(v)) }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Quaternion is a rotation. The zero value is not a rotation; use
// IdentityQuaternion.
type Quaternion struct {
	W, X, Y, Z float64
}

var IdentityQuaternion = Quaternion{W: 1}

// LookAt returns the rotated forward axis. The unrotated listener looks
// down -Z.
func (q Quaternion) LookAt() Vector3 {
	return Vector3{
		-2 * (q.W*q.Y + q.X*q.Z),
		2 * (q.X*q.W - q.Z*q.Y),
		2*(q.X*q.X+q.Y*q.Y) - 1,
	}
}

// Up returns the rotated up axis (+Y unrotated).
func (q Quaternion) Up() Vector3 {
	return Vector3{
		2 * (q.X*q.Y - q.W*q.Z),
		1 - 2*(q.X*q.X+q.Z*q.Z),
		2 * (q.W*q.X + q.Y*q.Z),
	}
}
