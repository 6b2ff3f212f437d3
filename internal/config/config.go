// Package config holds boxedit's settings: defaults, file and environment
// loading, validation and live reload.
//
// Files are TOML or YAML, chosen by extension:
//
//	[chord]
//	keys = "shift+alt"
//
//	[blink]
//	on_ms = 500
//	off_ms = 500
//
//	[undo]
//	levels = 32
//
// Environment variables prefixed BOXEDIT_ override file values, for example
// BOXEDIT_BLINK_ON_MS=300 or BOXEDIT_LOG_LEVEL=debug.
package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dshills/boxedit/internal/input/key"
	"github.com/dshills/boxedit/internal/logging"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "BOXEDIT_"

// Config is the complete boxedit configuration.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Chord  ChordConfig  `toml:"chord" yaml:"chord"`
	Blink  BlinkConfig  `toml:"blink" yaml:"blink"`
	Colors ColorConfig  `toml:"colors" yaml:"colors"`
	Cell   CellConfig   `toml:"cell" yaml:"cell"`
	Undo   UndoConfig   `toml:"undo" yaml:"undo"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EditorConfig configures the buffer.
type EditorConfig struct {
	// TabWidth is the display width of a tab.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
	// PlaygroundRows is the number of demo rows shown when no file is opened.
	PlaygroundRows int `toml:"playground_rows" yaml:"playground_rows"`
}

// ChordConfig names the two modifier keys that arm box selection.
type ChordConfig struct {
	Keys string `toml:"keys" yaml:"keys"`
}

// BlinkConfig sets the multi-caret blink phases in milliseconds.
type BlinkConfig struct {
	OnMS  int `toml:"on_ms" yaml:"on_ms"`
	OffMS int `toml:"off_ms" yaml:"off_ms"`
}

// On returns the visible phase.
func (b BlinkConfig) On() time.Duration { return time.Duration(b.OnMS) * time.Millisecond }

// Off returns the hidden phase.
func (b BlinkConfig) Off() time.Duration { return time.Duration(b.OffMS) * time.Millisecond }

// ColorConfig sets highlight colors as names or #rrggbb.
type ColorConfig struct {
	Selection string `toml:"selection" yaml:"selection"`
	Box       string `toml:"box" yaml:"box"`
	Caret     string `toml:"caret" yaml:"caret"`
}

// CellConfig is the pixel size of one character cell. Terminal hosts
// report pointer positions in cells, so 1x1 is the default.
type CellConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// UndoConfig bounds the undo stack. Zero levels disables undo.
type UndoConfig struct {
	Levels int `toml:"levels" yaml:"levels"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{TabWidth: 4, PlaygroundRows: 4},
		Chord:  ChordConfig{Keys: "shift+alt"},
		Blink:  BlinkConfig{OnMS: 500, OffMS: 500},
		Colors: ColorConfig{Selection: "#264f78", Box: "#3a3d41", Caret: "white"},
		Cell:   CellConfig{Width: 1, Height: 1},
		Undo:   UndoConfig{Levels: 32},
		Log:    LogConfig{Level: "info"},
	}
}

// KeyChord parses the configured chord.
func (c *Config) KeyChord() (key.Chord, error) {
	return key.ParseChord(c.Chord.Keys)
}

// LoggingConfig returns the logging settings.
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{Level: c.Log.Level, File: c.Log.File}
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|[a-zA-Z]+)$`)

var logLevels = map[string]bool{
	"trace": true, "debug": true, "info": true,
	"warn": true, "warning": true, "error": true,
}

// Validate checks every setting and returns the first failure as a
// *ValidationError.
func (c *Config) Validate() error {
	checks := []func() *ValidationError{
		func() *ValidationError {
			return checkRange("editor.tab_width", c.Editor.TabWidth, 1, 16)
		},
		func() *ValidationError {
			return checkRange("editor.playground_rows", c.Editor.PlaygroundRows, 0, 1000)
		},
		func() *ValidationError {
			if _, err := c.KeyChord(); err != nil {
				return &ValidationError{Path: "chord.keys", Message: err.Error(), Value: c.Chord.Keys, Code: ErrCodeInvalidEnum}
			}
			return nil
		},
		func() *ValidationError { return checkRange("blink.on_ms", c.Blink.OnMS, 50, 10000) },
		func() *ValidationError { return checkRange("blink.off_ms", c.Blink.OffMS, 50, 10000) },
		func() *ValidationError { return checkColor("colors.selection", c.Colors.Selection) },
		func() *ValidationError { return checkColor("colors.box", c.Colors.Box) },
		func() *ValidationError { return checkColor("colors.caret", c.Colors.Caret) },
		func() *ValidationError { return checkRange("cell.width", c.Cell.Width, 1, 256) },
		func() *ValidationError { return checkRange("cell.height", c.Cell.Height, 1, 256) },
		func() *ValidationError { return checkRange("undo.levels", c.Undo.Levels, 0, 10000) },
		func() *ValidationError {
			if !logLevels[c.Log.Level] {
				return &ValidationError{Path: "log.level", Message: "unknown level", Value: c.Log.Level, Code: ErrCodeInvalidEnum}
			}
			return nil
		},
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func checkRange(path string, v, lo, hi int) *ValidationError {
	if v < lo || v > hi {
		return &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("must be between %d and %d", lo, hi),
			Value:   v,
			Code:    ErrCodeOutOfRange,
		}
	}
	return nil
}

func checkColor(path, v string) *ValidationError {
	if !colorPattern.MatchString(v) {
		return &ValidationError{Path: path, Message: "not a color name or #rrggbb", Value: v, Code: ErrCodePatternMismatch}
	}
	return nil
}
