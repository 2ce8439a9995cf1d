package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/seaviz/seaviz/pkg/pipeline"
)

// nopCloser wraps an io.Writer with a no-op Close method, making os.Stdout
// compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// basePath derives the base output path from the output flag and the first
// input file. If output is empty, it strips the extension from input. If
// output carries a format extension (.png, .svg, ...), that is stripped so
// per-host and per-format suffixes attach cleanly.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath builds the output file name for one host and format.
// Single-host runs write base.format; batch runs write base_host.format.
func artifactPath(base, host, format string, multiHost bool) string {
	if multiHost {
		return base + "_" + host + "." + format
	}
	return base + "." + format
}
