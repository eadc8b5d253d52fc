package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/raytrace-demo/pkg/math"
)

// OFF format errors.
var (
	ErrInvalidOFFHeader = errors.New("invalid OFF header: expected 'OFF'")
	ErrTruncatedOFF     = errors.New("truncated OFF data")
	ErrOFFIndexRange    = errors.New("OFF face references a vertex out of range")
	ErrEmptyOFF         = errors.New("OFF file has no vertices")
)

// OFF is a parsed Object File Format mesh.
type OFF struct {
	Vertices []math.Vec3
	Faces    [][]int

	// Min and Max are the axis-aligned bounds of Vertices.
	Min, Max math.Vec3
}

// Extent returns the largest dimension of the bounding box.
func (o *OFF) Extent() float32 {
	return o.Max.Sub(o.Min).MaxComponent()
}

// TriangleCount returns how many triangles a fan triangulation of the
// non-degenerate faces yields.
func (o *OFF) TriangleCount() int {
	n := 0
	for _, f := range o.Faces {
		if len(f) >= 3 {
			n += len(f) - 2
		}
	}
	return n
}

// offLines yields the non-blank lines of an OFF file with '#' comments
// stripped.
type offLines struct {
	sc   *bufio.Scanner
	line int
}

func (l *offLines) next() ([]string, bool) {
	for l.sc.Scan() {
		l.line++
		text := l.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) > 0 {
			return fields, true
		}
	}
	return nil, false
}

// ParseOFF parses OFF data. The header keyword may carry the C/N/ST
// prefixes of its variants; per-vertex extras and per-face colors are
// ignored.
func ParseOFF(data []byte) (*OFF, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := &offLines{sc: sc}

	fields, ok := lines.next()
	if !ok {
		return nil, ErrTruncatedOFF
	}
	if !strings.HasSuffix(fields[0], "OFF") {
		return nil, ErrInvalidOFFHeader
	}

	// Counts may share the header line.
	counts := fields[1:]
	if len(counts) == 0 {
		if counts, ok = lines.next(); !ok {
			return nil, ErrTruncatedOFF
		}
	}
	if len(counts) < 2 {
		return nil, fmt.Errorf("line %d: %w", lines.line, ErrTruncatedOFF)
	}
	numVerts, err := strconv.Atoi(counts[0])
	if err != nil || numVerts < 0 {
		return nil, fmt.Errorf("line %d: invalid vertex count %q", lines.line, counts[0])
	}
	numFaces, err := strconv.Atoi(counts[1])
	if err != nil || numFaces < 0 {
		return nil, fmt.Errorf("line %d: invalid face count %q", lines.line, counts[1])
	}
	if numVerts == 0 {
		return nil, ErrEmptyOFF
	}

	// A vertex line takes at least 6 bytes ("0 0 0\n") and a face line at
	// least 2 ("0\n"). Counts the data cannot hold are rejected before
	// anything is allocated for them.
	if numVerts > (len(data)+1)/6 || numFaces > (len(data)+1)/2 {
		return nil, fmt.Errorf("header claims %d vertices and %d faces in %d bytes: %w",
			numVerts, numFaces, len(data), ErrTruncatedOFF)
	}

	off := &OFF{
		Vertices: make([]math.Vec3, 0, numVerts),
		Faces:    make([][]int, 0, numFaces),
	}

	for i := 0; i < numVerts; i++ {
		fields, ok := lines.next()
		if !ok || len(fields) < 3 {
			return nil, fmt.Errorf("vertex %d: %w", i, ErrTruncatedOFF)
		}
		var p [3]float32
		for j := 0; j < 3; j++ {
			f, err := strconv.ParseFloat(fields[j], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q", lines.line, fields[j])
			}
			p[j] = float32(f)
		}
		v := math.Vec3{X: p[0], Y: p[1], Z: p[2]}
		if i == 0 {
			off.Min, off.Max = v, v
		} else {
			off.Min = off.Min.Min(v)
			off.Max = off.Max.Max(v)
		}
		off.Vertices = append(off.Vertices, v)
	}

	for i := 0; i < numFaces; i++ {
		fields, ok := lines.next()
		if !ok {
			return nil, fmt.Errorf("face %d: %w", i, ErrTruncatedOFF)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: invalid face size %q", lines.line, fields[0])
		}
		if len(fields) < n+1 {
			return nil, fmt.Errorf("face %d: %w", i, ErrTruncatedOFF)
		}
		face := make([]int, n)
		for j := 0; j < n; j++ {
			idx, err := strconv.Atoi(fields[j+1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid index %q", lines.line, fields[j+1])
			}
			if idx < 0 || idx >= numVerts {
				return nil, fmt.Errorf("face %d index %d: %w", i, idx, ErrOFFIndexRange)
			}
			face[j] = idx
		}
		off.Faces = append(off.Faces, face)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning OFF data: %w", err)
	}
	return off, nil
}
