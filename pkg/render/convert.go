package render

import (
	"bytes"
	"fmt"
	"os/exec"
)

// converterBin is the external tool used for SVG conversion. Shelling out
// keeps the module free of a native raster dependency; librsvg is packaged
// everywhere graphviz is.
const converterBin = "rsvg-convert"

// ToPDF converts rendered SVG bytes to PDF.
// Requires librsvg (brew install librsvg / apt install librsvg2-bin).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf", nil)
}

// ToPNG converts rendered SVG bytes to PNG at the given scale factor.
// A scale of 2.0 doubles the output resolution.
// Requires librsvg (brew install librsvg / apt install librsvg2-bin).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "png", []string{"-z", fmt.Sprintf("%.2f", scale)})
}

func convert(svg []byte, format string, extra []string) ([]byte, error) {
	if _, err := exec.LookPath(converterBin); err != nil {
		return nil, fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	cmd := exec.Command(converterBin, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", converterBin, err, stderr.String())
	}
	return stdout.Bytes(), nil
}
