// Package debug saves screenshots of the rendered view.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned for formats other than png and bmp.
var ErrUnknownFormat = errors.New("unknown screenshot format")

// Encoder writes an image in one file format.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	"png": png.Encode,
	"bmp": bmp.Encode,
}

// ScreenshotCapture writes images to timestamped files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string
	encode    Encoder

	now func() time.Time
}

// NewScreenshotCapture creates a capture handler writing format ("png" or
// "bmp") files into outputDir.
func NewScreenshotCapture(outputDir, prefix, format string) (*ScreenshotCapture, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		encode:    enc,
		now:       time.Now,
	}, nil
}

// Filename returns the path the next capture would be written to.
func (sc *ScreenshotCapture) Filename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	name := fmt.Sprintf("%s_%s.%s", sc.prefix, timestamp, sc.format)
	if sc.outputDir != "" {
		name = filepath.Join(sc.outputDir, name)
	}
	return name
}

// Capture writes img and returns the file name.
func (sc *ScreenshotCapture) Capture(img image.Image) (string, error) {
	if img == nil {
		return "", errors.New("no image to capture")
	}
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := sc.encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding %s: %w", sc.format, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}
	return filename, nil
}
