package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/solidview/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name      string
		azimuth   float32
		elevation float32
		want      math.Vec3
	}{
		{"front horizon", 0, 0, math.Vec3{X: 0, Y: 0, Z: 1}},
		{"right horizon", 90, 0, math.Vec3{X: 1, Y: 0, Z: 0}},
		{"zenith", 0, 90, math.Vec3{X: 0, Y: 1, Z: 0}},
		{"back horizon", 180, 0, math.Vec3{X: 0, Y: 0, Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.azimuth, tt.elevation)
			assert.InDelta(t, tt.want.X, got.X, 1e-5)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-5)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-5)
		})
	}
}

func TestSunDirectionIsNormalized(t *testing.T) {
	for _, az := range []float32{-63.4, 0, 45, 200} {
		for _, el := range []float32{-30, 0, 41.8, 89} {
			assert.InDelta(t, 1.0, SunDirection(az, el).Length(), 1e-5, "az=%v el=%v", az, el)
		}
	}
}

func TestNewDirectional(t *testing.T) {
	diffuse := math.Vec3{X: 0.9, Y: 0.9, Z: 0.6}
	ambient := math.Vec3{X: 0.05, Y: 0.05, Z: 0.05}

	l := NewDirectional(0, 90, diffuse, ambient)

	assert.Equal(t, diffuse, l.Diffuse)
	assert.Equal(t, ambient, l.Ambient)
	assert.InDelta(t, 1.0, l.Direction.Y, 1e-5)
}
