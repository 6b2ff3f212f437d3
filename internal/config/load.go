package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/boxedit/internal/config/loader"
	"github.com/dshills/boxedit/internal/config/watcher"
)

// Load builds the configuration from defaults, the file at path and
// BOXEDIT_ environment overrides, then validates it. An empty path or a
// missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	return LoadWithFS(loader.DefaultFS(), path)
}

// LoadWithFS is Load over a custom file system.
func LoadWithFS(fsys loader.FileSystem, path string) (*Config, error) {
	var data map[string]any
	if path != "" {
		l, err := loader.ForPathWithFS(fsys, path)
		if err != nil {
			return nil, err
		}
		if data, err = l.Load(); err != nil {
			return nil, err
		}
	}

	env, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg := Default()
	if err := decode(loader.DeepMerge(data, env), cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays data onto cfg. Settings data does not name keep their
// current value.
func decode(data map[string]any, cfg *Config) error {
	if len(data) == 0 {
		return nil
	}

	raw, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) && len(strict.Errors) > 0 {
			return &ValidationError{
				Path:    strings.Join(strict.Errors[0].Key(), "."),
				Message: "unknown setting",
				Code:    ErrCodeUnknownSetting,
			}
		}
		return &ValidationError{Path: "config", Message: err.Error(), Code: ErrCodeTypeMismatch}
	}
	return nil
}

// Watch reloads the configuration whenever the file at path changes and
// passes the result to fn until ctx is done. A failed reload passes the
// error and a nil config; a removed file reloads as defaults.
func Watch(ctx context.Context, path string, fn func(*Config, error), opts ...watcher.Option) error {
	w, err := watcher.New(opts...)
	if err != nil {
		return fmt.Errorf("watching config: %w", err)
	}
	if err := w.Watch(path); err != nil {
		_ = w.Close()
		return fmt.Errorf("watching config %s: %w", path, err)
	}

	w.OnChange(func(watcher.Event) {
		fn(Load(path))
	})

	go func() {
		defer w.Close()
		w.Run(ctx, func(err error) { fn(nil, err) })
	}()
	return nil
}
