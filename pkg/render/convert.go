package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrConverterMissing is returned by [ToPNG] and [ToPDF] when rsvg-convert
// is not on PATH.
var ErrConverterMissing = errors.New("rsvg-convert not found (install librsvg: brew install librsvg, apt install librsvg2-bin)")

const converter = "rsvg-convert"

// ToPDF converts an SVG drawing to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, FormatPDF)
}

// ToPNG converts an SVG drawing to PNG. A scale of 2 doubles the resolution;
// non-positive scales mean 1.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, FormatPNG, "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

func convert(ctx context.Context, svg []byte, f Format, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(converter)
	if err != nil {
		return nil, fmt.Errorf("%s output: %w", f, ErrConverterMissing)
	}

	cmd := exec.CommandContext(ctx, bin, append([]string{"--format", string(f)}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", converter, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
