package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/boxedit/internal/clipboard"
	"github.com/dshills/boxedit/internal/config"
	"github.com/dshills/boxedit/internal/engine/buffer"
	"github.com/dshills/boxedit/internal/host/term"
	"github.com/dshills/boxedit/internal/logging"
)

// playgroundLine is one row of the demo text shown when no file is given.
const playgroundLine = "aaa | bbb | ccc | ddd | eee | fff | ggg | hhh ||\n"

type options struct {
	configPath string
	logFile    string
	logLevel   string
	rows       int
	save       bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "boxedit [file]",
		Short: "Terminal editor with box (column) selection",
		Long: `boxedit edits a file, or a playground text, in the terminal.

Hold Shift+Alt and drag the mouse or press the arrow keys to select a
rectangle. Type to insert on every row, Ctrl+C/Ctrl+X/Ctrl+V to copy, cut
and paste column-aligned, drag a selection to move it. Ctrl+Q quits.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, opts, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML or YAML configuration file")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "playground rows when no file is given")
	cmd.Flags().BoolVar(&opts.save, "save", false, "write the buffer back to the file on exit")

	cmd.AddCommand(newScriptCmd(&opts), newVersionCmd())
	return cmd
}

func runEditor(cmd *cobra.Command, opts options, args []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("rows") {
		cfg.Editor.PlaygroundRows = opts.rows
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	lc := cfg.LoggingConfig()
	lc.Output = io.Discard
	log, closeLog, err := logging.New(lc)
	if err != nil {
		return err
	}
	defer closeLog()

	var path, text string
	if len(args) > 0 {
		path = args[0]
		if text, err = readText(path); err != nil {
			return err
		}
	} else {
		text = playground(cfg.Editor.PlaygroundRows)
	}

	chord, err := cfg.KeyChord()
	if err != nil {
		return err
	}
	buf := buffer.NewBufferFromString(text, bufferOptions(cfg)...)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	host := term.New(screen, buf, clipboard.NewSystem(),
		term.WithLogger(log),
		term.WithChord(chord),
		term.WithBlink(cfg.Blink.On(), cfg.Blink.Off()),
		term.WithTheme(themeFor(cfg)),
		term.WithCellSize(cfg.Cell.Width, cfg.Cell.Height),
	)
	if err := host.Init(); err != nil {
		return err
	}
	defer host.Close()

	ctx := cmd.Context()
	if opts.configPath != "" {
		err := config.Watch(ctx, opts.configPath, func(c *config.Config, err error) {
			if err != nil {
				log.WithError(err).Warn("config reload failed")
				return
			}
			log.SetLevel(logging.ParseLevel(c.Log.Level))
			_ = host.Post(func() { host.SetTheme(themeFor(c)) })
			log.WithField("path", opts.configPath).Info("config reloaded")
		})
		if err != nil {
			log.WithError(err).Warn("config watch disabled")
		}
	}

	log.WithFields(logrus.Fields{"file": path, "chord": chord}).Info("editor started")
	if err := host.Run(ctx); err != nil {
		return err
	}

	if opts.save && path != "" {
		if err := os.WriteFile(path, []byte(buf.Text()), 0o644); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}

// loadConfig loads the configuration and applies the logging flags.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// bufferOptions maps the editor and undo settings to buffer options.
func bufferOptions(cfg *config.Config) []buffer.Option {
	opts := []buffer.Option{buffer.WithTabWidth(cfg.Editor.TabWidth)}
	if cfg.Undo.Levels == 0 {
		return append(opts, buffer.WithoutUndo())
	}
	return append(opts, buffer.WithMaxUndo(cfg.Undo.Levels))
}

func themeFor(cfg *config.Config) term.Theme {
	return term.NewTheme(cfg.Colors.Selection, cfg.Colors.Box, cfg.Colors.Caret)
}

// readText reads path. A missing file starts an empty buffer.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func playground(rows int) string {
	return strings.Repeat(playgroundLine, rows)
}
