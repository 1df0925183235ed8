// meshtool is a CLI utility for inspecting generated solid meshes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/solidview/pkg/math"
	"github.com/Faultbox/solidview/pkg/mesh"
	"github.com/Faultbox/solidview/pkg/solid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args, stdout)
	case "dump":
		err = cmdDump(args, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `meshtool - procedural solid mesh utility

Usage:
  meshtool <command> <cylinder|cone> [options]

Commands:
  info <kind>    Show vertex/triangle counts, normals and bounds
  dump <kind>    Print every vertex (position, color, normal)

Options:
  -capped              Close the open ends
  -n N                 Angular subdivisions (default 16)
  -color r,g,b         Vertex color (default 1,1,1)
  -scale sx,sy,sz      Scale applied before translation
  -translate x,y,z     Translation
  -format text|yaml    Output format of info (default text)
  -limit N             Vertices printed by dump (0 = all)

Examples:
  meshtool info cylinder -capped -n 32
  meshtool info cone -scale 2,0.5,0.5 -format yaml
  meshtool dump cylinder -n 3 -limit 6`)
}

// options are the generator flags shared by all commands.
type options struct {
	kind   solid.Kind
	params solid.Params
	format string
	limit  int
}

// parseOptions reads "<kind> [flags]". The kind comes first, as in the
// usage text, so it is taken off before the flag set runs.
func parseOptions(name string, args []string) (*options, error) {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return nil, fmt.Errorf("usage: meshtool %s <cylinder|cone> [options]", name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	capped := fs.Bool("capped", false, "Close the open ends")
	n := fs.Int("n", 16, "Angular subdivisions")
	color := fs.String("color", "1,1,1", "Vertex color r,g,b")
	scale := fs.String("scale", "1,1,1", "Scale sx,sy,sz")
	translate := fs.String("translate", "0,0,0", "Translation x,y,z")
	format := fs.String("format", "text", "Output format: text or yaml")
	limit := fs.Int("limit", 0, "Vertices printed by dump (0 = all)")
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	c, err := parseTriple(*color)
	if err != nil {
		return nil, fmt.Errorf("-color: %w", err)
	}
	s, err := parseTriple(*scale)
	if err != nil {
		return nil, fmt.Errorf("-scale: %w", err)
	}
	t, err := parseTriple(*translate)
	if err != nil {
		return nil, fmt.Errorf("-translate: %w", err)
	}
	if *format != "text" && *format != "yaml" {
		return nil, fmt.Errorf("-format: unknown format %q", *format)
	}

	return &options{
		kind: solid.Kind(strings.ToLower(args[0])),
		params: solid.Params{
			Capped:       *capped,
			Subdivisions: *n,
			Color:        c,
			PreTransform: math.Translate(t.X, t.Y, t.Z).Mul(math.Scale(s.X, s.Y, s.Z)),
		},
		format: *format,
		limit:  *limit,
	}, nil
}

var errTriple = errors.New("expected three comma-separated numbers")

// parseTriple parses "x,y,z".
func parseTriple(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: %q", errTriple, s)
	}

	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: %q", errTriple, s)
		}
		v[i] = float32(f)
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// meshInfo is the summary printed by info.
type meshInfo struct {
	Kind      string     `yaml:"kind"`
	Capped    bool       `yaml:"capped"`
	Segments  int        `yaml:"subdivisions"`
	Vertices  int        `yaml:"vertices"`
	Triangles int        `yaml:"triangles"`
	Normals   bool       `yaml:"normals"`
	Min       [3]float32 `yaml:"min,flow"`
	Max       [3]float32 `yaml:"max,flow"`
}

func describe(o *options, m *mesh.SimpleMesh) meshInfo {
	b := m.Bounds()
	return meshInfo{
		Kind:      string(o.kind),
		Capped:    o.params.Capped,
		Segments:  o.params.Subdivisions,
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Normals:   m.HasNormals,
		Min:       [3]float32{b.Min.X, b.Min.Y, b.Min.Z},
		Max:       [3]float32{b.Max.X, b.Max.Y, b.Max.Z},
	}
}

func cmdInfo(args []string, w io.Writer) error {
	o, err := parseOptions("info", args)
	if err != nil {
		return err
	}

	m, err := solid.Generate(o.kind, o.params)
	if err != nil {
		return err
	}
	info := describe(o, m)

	if o.format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "Solid:     %s\n", info.Kind)
	fmt.Fprintf(w, "Capped:    %t\n", info.Capped)
	fmt.Fprintf(w, "Segments:  %d\n", info.Segments)
	fmt.Fprintf(w, "Vertices:  %d\n", info.Vertices)
	fmt.Fprintf(w, "Triangles: %d\n", info.Triangles)
	fmt.Fprintf(w, "Normals:   %t\n", info.Normals)
	fmt.Fprintf(w, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		info.Min[0], info.Min[1], info.Min[2],
		info.Max[0], info.Max[1], info.Max[2])
	return nil
}

func cmdDump(args []string, w io.Writer) error {
	o, err := parseOptions("dump", args)
	if err != nil {
		return err
	}

	m, err := solid.Generate(o.kind, o.params)
	if err != nil {
		return err
	}

	count := m.VertexCount()
	if o.limit > 0 && o.limit < count {
		count = o.limit
	}

	for i := 0; i < count; i++ {
		if i > 0 && i%3 == 0 {
			fmt.Fprintln(w)
		}
		p, c := m.Positions[i], m.Colors[i]
		fmt.Fprintf(w, "%4d  pos %s  col %s", i, formatVec(p), formatVec(c))
		if m.HasNormals {
			fmt.Fprintf(w, "  nrm %s", formatVec(m.Normals[i]))
		}
		fmt.Fprintln(w)
	}

	if count < m.VertexCount() {
		fmt.Fprintf(w, "\n(showing %d of %d vertices)\n", count, m.VertexCount())
	}
	return nil
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%7.3f, %7.3f, %7.3f)", v.X, v.Y, v.Z)
}
