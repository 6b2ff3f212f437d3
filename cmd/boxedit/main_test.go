package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/boxedit/internal/config"
	"github.com/dshills/boxedit/internal/engine/buffer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "boxedit dev\n") {
		t.Errorf("version output = %q", out)
	}
}

func TestRunScript(t *testing.T) {
	src := writeFile(t, "typing.lua", `
box.caret(1, 1)
box.key("Shift+Alt")
box.key("Shift+Alt+Down")
box.key("Shift+Alt+Down")
box.key("Shift+Alt+Right")
box.key("Shift+Alt+Right")
box.release("Alt")
box.type("X")
`)
	file := writeFile(t, "text.txt", "abc\nde\nfghi")

	out, err := execute(t, "run", src, file)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if out != "aXbc\ndXe \nfXghi" {
		t.Errorf("output = %q", out)
	}
}

func TestRunScriptFailure(t *testing.T) {
	src := writeFile(t, "fail.lua", `box.expect("nope")`)
	if _, err := execute(t, "run", src); err == nil {
		t.Error("run error = nil for failing expectation")
	}
}

func TestRunScriptConfig(t *testing.T) {
	cfgPath := writeFile(t, "boxedit.toml", `
[chord]
keys = "ctrl+alt"

[undo]
levels = 0
`)
	src := writeFile(t, "chord.lua", `
assert(box.key("Ctrl+Alt"), "chord not armed")
assert(box.state() == "armed")
box.reset()
assert(not box.key("Ctrl+z"), "undo should be left to the host")
print("ok")
`)

	out, err := execute(t, "run", "--config", cfgPath, src)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if out != "ok\n" {
		t.Errorf("output = %q, want %q", out, "ok\n")
	}
}

func TestRootArgs(t *testing.T) {
	if _, err := execute(t, "a.txt", "b.txt"); err == nil {
		t.Error("root accepted two files")
	}
	if _, err := execute(t, "run"); err == nil {
		t.Error("run accepted no script")
	}
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig(options{logLevel: "debug", logFile: "/tmp/boxedit.log"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/boxedit.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}

	if _, err := loadConfig(options{logLevel: "loud"}); err == nil {
		t.Error("loadConfig() accepted an unknown log level")
	}
}

func TestBufferOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.TabWidth = 2

	buf := buffer.NewBufferFromString("", bufferOptions(cfg)...)
	if got := buf.TabWidth(); got != 2 {
		t.Errorf("TabWidth() = %d, want 2", got)
	}
	if _, err := buf.Insert(buffer.Pos(1, 0), "x"); err != nil {
		t.Fatal(err)
	}
	if !buf.CanUndo() {
		t.Error("CanUndo() = false with undo levels set")
	}

	cfg.Undo.Levels = 0
	buf = buffer.NewBufferFromString("", bufferOptions(cfg)...)
	if _, err := buf.Insert(buffer.Pos(1, 0), "x"); err != nil {
		t.Fatal(err)
	}
	if buf.CanUndo() {
		t.Error("CanUndo() = true with undo disabled")
	}
}

func TestPlayground(t *testing.T) {
	text := playground(3)
	if got := strings.Count(text, "\n"); got != 3 {
		t.Errorf("playground rows = %d, want 3", got)
	}
	if !strings.HasPrefix(text, "aaa | bbb") {
		t.Errorf("playground = %q", text)
	}
	if playground(0) != "" {
		t.Error("playground(0) is not empty")
	}
}

func TestReadTextMissing(t *testing.T) {
	text, err := readText(filepath.Join(t.TempDir(), "new.txt"))
	if err != nil || text != "" {
		t.Errorf("readText(missing) = %q, %v", text, err)
	}
}
