package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
)

// Converter is the external tool used for raster and PDF output.
const Converter = "rsvg-convert"

// Available reports whether [Converter] is on PATH.
func Available() bool {
	_, err := exec.LookPath(Converter)
	return err == nil
}

// ToPDF converts SVG to PDF with rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "-f", "pdf")
}

// ToPNG converts SVG to PNG at the given scale factor (1.0 keeps the SVG's
// own size).
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		return nil, cverrors.New(cverrors.ErrCodeInvalidInput, "scale must be positive, got %v", scale)
	}
	z := strconv.FormatFloat(scale, 'f', -1, 64)
	return convert(svg, "-f", "png", "-z", z)
}

func convert(svg []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath(Converter)
	if err != nil {
		return nil, cverrors.Wrap(cverrors.ErrCodeUnsupported, err,
			"%s not found (install librsvg: brew install librsvg, apt install librsvg2-bin)", Converter)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", Converter, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}
