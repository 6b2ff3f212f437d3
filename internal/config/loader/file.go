package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a config file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var formatByExt = map[string]Format{
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// File loads one TOML or YAML file.
type File struct {
	Format Format
	Path   string
	fs     FileSystem
}

// ForPath picks the format from the extension of path.
func ForPath(path string) (*File, error) {
	return ForPathWithFS(DefaultFS(), path)
}

func ForPathWithFS(fsys FileSystem, path string) (*File, error) {
	f, ok := formatByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return &File{Format: f, Path: path, fs: fsys}, nil
}

// Load reads and parses the file. A missing file yields nil, nil.
func (f *File) Load() (map[string]any, error) {
	data, err := readFile(f.fs, f.Path)
	if err != nil || data == nil {
		return nil, err
	}
	return f.parse(f.Path, data)
}

// LoadFromReader parses r in the file's format.
func (f *File) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return f.parse("<reader>", data)
}

func (f *File) parse(source string, data []byte) (map[string]any, error) {
	var out map[string]any
	var err error
	if f.Format == FormatYAML {
		err = yaml.Unmarshal(data, &out)
	} else {
		err = toml.Unmarshal(data, &out)
	}
	if err == nil {
		return out, nil
	}

	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var de *toml.DecodeError
	var te *yaml.TypeError
	switch {
	case errors.As(err, &de):
		pe.Line, pe.Column = de.Position()
	case errors.As(err, &te) && len(te.Errors) > 0:
		pe.Message = strings.Join(te.Errors, "; ")
	}
	return nil, pe
}
