package scene

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/example/trishade/internal/geom"
)

// Command is one user action against a Scene.
type Command interface {
	command()
}

type (
	// AddPoint is a click on the surface.
	AddPoint struct{ Point geom.Point }
	// DeleteTriangle removes a committed triangle.
	DeleteTriangle struct{ Index int }
	// SetVertexColor recolors one vertex.
	SetVertexColor struct {
		Triangle, Vertex int
		Color            geom.RGB
	}
	// SetEdgeColor recolors a triangle's edges.
	SetEdgeColor struct {
		Triangle int
		Color    geom.RGB
	}
	// Clear empties the scene.
	Clear struct{}
	// Select changes the editing selection. Index NoSelection deselects.
	Select struct{ Index int }
)

func (AddPoint) command()       {}
func (DeleteTriangle) command() {}
func (SetVertexColor) command() {}
func (SetEdgeColor) command()   {}
func (Clear) command()          {}
func (Select) command()         {}

// Dispatch applies cmd synchronously.
func (s *Scene) Dispatch(cmd Command) error {
	switch c := cmd.(type) {
	case AddPoint:
		s.AddPoint(c.Point)
		return nil
	case DeleteTriangle:
		return s.DeleteTriangle(c.Index)
	case SetVertexColor:
		return s.SetVertexColor(c.Triangle, c.Vertex, c.Color)
	case SetEdgeColor:
		return s.SetEdgeColor(c.Triangle, c.Color)
	case Clear:
		s.Clear()
		return nil
	case Select:
		return s.Select(c.Index)
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}

// ParseCommand parses one script line. Recognised forms:
//
//	point X Y
//	vertex T V #RRGGBB
//	edge T #RRGGBB
//	delete T
//	select T|none
//	clear
//
// Indexes are 0-based.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case "point":
		if len(args) != 2 {
			return nil, fmt.Errorf("point requires x y")
		}
		x, err := parseCoord(args[0])
		if err != nil {
			return nil, err
		}
		y, err := parseCoord(args[1])
		if err != nil {
			return nil, err
		}
		return AddPoint{Point: geom.Pt(x, y)}, nil
	case "vertex":
		if len(args) != 3 {
			return nil, fmt.Errorf("vertex requires triangle vertex color")
		}
		ti, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		vi, err := parseIndex(args[1])
		if err != nil {
			return nil, err
		}
		c, err := geom.ParseRGB(args[2])
		if err != nil {
			return nil, err
		}
		return SetVertexColor{Triangle: ti, Vertex: vi, Color: c}, nil
	case "edge":
		if len(args) != 2 {
			return nil, fmt.Errorf("edge requires triangle color")
		}
		ti, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		c, err := geom.ParseRGB(args[1])
		if err != nil {
			return nil, err
		}
		return SetEdgeColor{Triangle: ti, Color: c}, nil
	case "delete":
		if len(args) != 1 {
			return nil, fmt.Errorf("delete requires triangle")
		}
		ti, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		return DeleteTriangle{Index: ti}, nil
	case "select":
		if len(args) != 1 {
			return nil, fmt.Errorf("select requires triangle or none")
		}
		if strings.EqualFold(args[0], "none") {
			return Select{Index: NoSelection}, nil
		}
		ti, err := parseIndex(args[0])
		if err != nil {
			return nil, err
		}
		return Select{Index: ti}, nil
	case "clear":
		if len(args) != 0 {
			return nil, fmt.Errorf("clear takes no arguments")
		}
		return Clear{}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", fields[0])
	}
}

// ParseScript reads one command per line. Blank lines and lines starting
// with '#' or "//" are skipped.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if isComment(line) {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, scanner.Err()
}

// Run parses and dispatches a script against s, stopping at the first error.
func (s *Scene) Run(r io.Reader) error {
	cmds, err := ParseScript(r)
	if err != nil {
		return err
	}
	for i, cmd := range cmds {
		if err := s.Dispatch(cmd); err != nil {
			return fmt.Errorf("command %d: %w", i+1, err)
		}
	}
	return nil
}

func isComment(line string) bool {
	return line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

// parseCoord parses a surface coordinate. Surface coordinates are finite and
// never negative.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("coordinate %q must be a finite number >= 0", s)
	}
	return v, nil
}

func parseIndex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return v, nil
}

// WriteScript writes the commands that rebuild triangles on an empty scene,
// in the same order and with the same colors.
func WriteScript(w io.Writer, triangles []geom.Triangle) error {
	bw := bufio.NewWriter(w)
	for i, t := range triangles {
		fmt.Fprintf(bw, "# triangle %d\n", i)
		for _, v := range t.Vertices {
			fmt.Fprintf(bw, "point %s %s\n", formatFloat(v.X), formatFloat(v.Y))
		}
		for j, v := range t.Vertices {
			fmt.Fprintf(bw, "vertex %d %d %s\n", i, j, v.Color.Hex())
		}
		if t.EdgeSet {
			fmt.Fprintf(bw, "edge %d %s\n", i, t.Edge.Hex())
		}
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
