// Package penio reads pen-position trajectories from JSON, YAML and CSV.
//
// JSON and YAML files hold a list of samples, either at the top level or
// under a "positions" key. A sample is an object {x, y, down} or an array
// [x, y] / [x, y, down]. CSV files hold x,y[,down] rows with an optional
// header naming the columns. down may be a boolean or 0/1 and defaults
// to true when absent.
package penio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/gogpu/skeleton"
)

// Format identifies a trajectory file encoding.
type Format int

const (
	// FormatUnknown is returned for unrecognized extensions.
	FormatUnknown Format = iota
	// FormatJSON is a JSON document.
	FormatJSON
	// FormatYAML is a YAML document.
	FormatYAML
	// FormatCSV is comma-separated x,y[,down] rows.
	FormatCSV
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned when no decoder matches a file.
var ErrUnknownFormat = errors.New("penio: unknown trajectory format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// Decode reads a trajectory in the given format from r.
func Decode(r io.Reader, format Format) (skeleton.Trajectory, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatCSV:
		return decodeCSV(r)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", int(format))
	}
}

// ReadFile decodes the trajectory stored at path.
func ReadFile(path string) (skeleton.Trajectory, error) {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return nil, errors.Wrap(ErrUnknownFormat, path)
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, errors.Wrap(err, "penio: open")
	}
	defer func() {
		_ = f.Close()
	}()

	traj, err := Decode(f, format)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return traj, nil
}
