// SPDX-License-Identifier: EPL-2.0

package device

import (
	"math"
	"testing"
)

func vecApprox(a, b Vector3) bool {
	return approx(a.X, b.X, 1e-12) && approx(a.Y, b.Y, 1e-12) && approx(a.Z, b.Z, 1e-12)
}

func TestVector3(t *testing.T) {
	t.Parallel()

	x, y := Vector3{X: 1}, Vector3{Y: 1}
	if got := x.Cross(y); got != (Vector3{Z: 1}) {
		t.Errorf("X cross Y = %v, want Z", got)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("X dot Y = %v, want 0", got)
	}
	if got := (Vector3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := x.Add(y).Sub(x).Scale(2).Neg(); got != (Vector3{Y: -2}) {
		t.Errorf("chain = %v", got)
	}
}

func TestQuaternion_Axes(t *testing.T) {
	t.Parallel()

	s := math.Sqrt2 / 2
	tests := []struct {
		name   string
		q      Quaternion
		lookAt Vector3
		up     Vector3
	}{
		{"identity", IdentityQuaternion, Vector3{Z: -1}, Vector3{Y: 1}},
		{"yaw left", Quaternion{W: s, Y: s}, Vector3{X: -1}, Vector3{Y: 1}},
		{"pitch up", Quaternion{W: s, X: s}, Vector3{Y: 1}, Vector3{Z: 1}},
	}

	for _, tt := range tests {
		if got := tt.q.LookAt(); !vecApprox(got, tt.lookAt) {
			t.Errorf("%s: LookAt() = %v, want %v", tt.name, got, tt.lookAt)
		}
		if got := tt.q.Up(); !vecApprox(got, tt.up) {
			t.Errorf("%s: Up() = %v, want %v", tt.name, got, tt.up)
		}
	}
}
