package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// outputFilename returns output, or the input's base name with its extension
// replaced by suffix plus ".svg".
func outputFilename(input, output, suffix string) string {
	if output != "" {
		return output
	}
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + suffix + ".svg"
}

// writeSVG writes svg to path, or to stdout when path is "-".
func writeSVG(stdout io.Writer, path, svg string) error {
	if path == "-" {
		_, err := io.WriteString(stdout, svg)
		return err
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("error writing SVG file: %w", err)
	}
	return nil
}
