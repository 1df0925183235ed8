package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/solid"
)

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestInfoText(t *testing.T) {
	code, out, errOut := runArgs("info", "cylinder", "-capped", "-n", "4")

	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Solid:     cylinder")
	assert.Contains(t, out, "Vertices:  48")
	assert.Contains(t, out, "Triangles: 16")
	assert.Contains(t, out, "Normals:   true")
}

func TestInfoYAML(t *testing.T) {
	code, out, errOut := runArgs("info", "cone", "-n", "8", "-scale", "2,1,1", "-format", "yaml")
	require.Equal(t, 0, code, errOut)

	var info meshInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &info))

	assert.Equal(t, "cone", info.Kind)
	assert.Equal(t, 24, info.Vertices)
	assert.Equal(t, 8, info.Triangles)
	assert.False(t, info.Normals)
	assert.InDelta(t, 2, info.Max[0], 1e-6)
}

func TestInfoUnknownKind(t *testing.T) {
	code, _, errOut := runArgs("info", "sphere")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown kind")
}

func TestDumpLimit(t *testing.T) {
	code, out, errOut := runArgs("dump", "cylinder", "-n", "3", "-limit", "6")
	require.Equal(t, 0, code, errOut)

	lines := 0
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "pos (") {
			lines++
			assert.Contains(t, l, "nrm (")
		}
	}
	assert.Equal(t, 6, lines)
	assert.Contains(t, out, "(showing 6 of 18 vertices)")
}

func TestDumpConeHasNoNormals(t *testing.T) {
	code, out, _ := runArgs("dump", "cone", "-n", "3")

	require.Equal(t, 0, code)
	assert.NotContains(t, out, "nrm")
	assert.NotContains(t, out, "showing")
}

func TestUsageAndUnknownCommand(t *testing.T) {
	code, out, _ := runArgs("help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "meshtool <command>")

	code, _, errOut := runArgs("frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Unknown command: frobnicate")

	code, _, _ = runArgs()
	assert.Equal(t, 1, code)
}

func TestParseOptions(t *testing.T) {
	o, err := parseOptions("info", []string{"Cone", "-capped", "-n", "7", "-color", "1,0,0", "-translate", "1,2,3"})
	require.NoError(t, err)

	assert.Equal(t, solid.KindCone, o.kind)
	assert.True(t, o.params.Capped)
	assert.Equal(t, 7, o.params.Subdivisions)
	assert.Equal(t, math.Vec3{X: 1}, o.params.Color)
	assert.Equal(t, math.Translate(1, 2, 3), o.params.PreTransform)
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing kind", nil},
		{"flag before kind", []string{"-capped", "cone"}},
		{"bad scale", []string{"cone", "-scale", "1,2"}},
		{"bad color", []string{"cone", "-color", "a,b,c"}},
		{"bad format", []string{"cone", "-format", "json"}},
		{"unknown flag", []string{"cone", "-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions("info", tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseTriple(t *testing.T) {
	v, err := parseTriple(" 1.5, -2 ,3")
	require.NoError(t, err)
	assert.Equal(t, math.Vec3{X: 1.5, Y: -2, Z: 3}, v)

	_, err = parseTriple("1,2,3,4")
	assert.True(t, errors.Is(err, errTriple))
}
