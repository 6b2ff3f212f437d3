package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/boxedit/internal/logging"
	"github.com/dshills/boxedit/internal/script"
)

func newScriptCmd(root *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.lua> [file]",
		Short: "Run a Lua script against the editor without a terminal",
		Long: `run drives the box-selection editor headlessly from a Lua script and
prints the final buffer. The script sees a global table "box":

  box.key("Shift+Alt")          press keys ("Ctrl+c", "Shift+Alt+Down")
  box.release("Alt")            release a key
  box.type("text")              type characters
  box.down(row, col)            pointer press, also move, hover, up
  box.caret(row, col)           move the caret
  box.wait(ms)                  advance the blink clock
  box.expect("text")            fail unless the buffer matches

The buffer starts with the file's contents, or empty.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, *root, args)
		},
	}
}

func runScript(cmd *cobra.Command, opts options, args []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	lc := cfg.LoggingConfig()
	lc.Output = cmd.ErrOrStderr()
	log, closeLog, err := logging.New(lc)
	if err != nil {
		return err
	}
	defer closeLog()

	var text string
	if len(args) > 1 {
		if text, err = readText(args[1]); err != nil {
			return err
		}
	}

	chord, err := cfg.KeyChord()
	if err != nil {
		return err
	}

	s := script.NewSession(text,
		script.WithOutput(cmd.OutOrStdout()),
		script.WithLogger(log),
		script.WithChord(chord),
		script.WithBufferOptions(bufferOptions(cfg)...),
		script.WithBlink(cfg.Blink.On(), cfg.Blink.Off()),
	)
	defer s.Close()

	if err := s.Run(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s.Buffer.Text())
	return nil
}
