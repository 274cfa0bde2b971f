package render

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output format of [Render].
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Formats lists every supported output format.
var Formats = []Format{FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// ParseFormat accepts a format name or a file name with a known extension.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(filepath.Ext(s), "."))
	if name == "" {
		name = strings.ToLower(s)
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown render format %q (want dot, svg, png or pdf)", s)
}

// Render produces dot in the requested format. scale only affects PNG.
func Render(ctx context.Context, dot string, f Format, scale float64) ([]byte, error) {
	if f == FormatDOT {
		return []byte(dot), nil
	}
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return ToPNG(ctx, svg, scale)
	case FormatPDF:
		return ToPDF(ctx, svg)
	}
	return nil, fmt.Errorf("unknown render format %q", f)
}
