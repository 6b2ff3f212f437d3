// Package loader reads boxedit configuration sources into nested maps.
// A File parses TOML or YAML and an EnvLoader maps BOXEDIT_ variables
// into the same shape, so the sources merge with DeepMerge before the
// result is decoded into a Config.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrUnsupportedFormat is returned for a config file extension no loader
// understands.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Loader reads one configuration source. A source that does not exist
// loads as nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

var (
	_ Loader = (*File)(nil)
	_ Loader = (*EnvLoader)(nil)
)

// FileSystem is the file access loaders need.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// DefaultFS reads from the local disk.
func DefaultFS() FileSystem { return osFS{} }

// readFile reads path, mapping a missing file to nil data.
func readFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

// ParseError reports a source that failed to parse. Line and Column are
// set when the parser knows them.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	where := e.Path
	switch {
	case e.Line > 0 && e.Column > 0:
		where = fmt.Sprintf("%s at line %d, column %d", e.Path, e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("%s at line %d", e.Path, e.Line)
	}
	return "parse error in " + where + ": " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// DeepMerge overlays src onto dst and returns dst. Nested maps merge key
// by key; any other value in src replaces the one in dst.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if cur, isMap := dst[k].(map[string]any); ok && isMap {
			dst[k] = DeepMerge(cur, sub)
			continue
		}
		dst[k] = v
	}
	return dst
}
