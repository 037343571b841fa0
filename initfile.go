package readline

import (
	"os"

	"github.com/reeflective/lineedit/internal/keymap"
)

// LoadInitFile reads an inputrc-format file, applying its "set"
// variables to Opts and its key-binding lines to the emacs keymap
// (spec §6 "parsing of the startup init file"). The path is
// remembered so re-read-init-file and the fsnotify watch started by
// WatchInitFile can reload it later.
func (rl *Shell) LoadInitFile(path string) error {
	if err := rl.Opts.ReadFile(path); err != nil {
		return err
	}

	rl.initFilePath = path

	return rl.applyInitFileBindings(path)
}

// WatchInitFile starts watching the loaded init file for external
// changes, reloading it automatically the same way re-read-init-file
// does (SPEC_FULL.md domain-stack addition on top of spec §6).
func (rl *Shell) WatchInitFile() error {
	return rl.Opts.WatchForChanges(func() {
		_ = rl.applyInitFileBindings(rl.initFilePath)
	})
}

func (rl *Shell) applyInitFileBindings(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rl.Keymap.ApplyBindings(keymap.Emacs, keymap.ParseBindings(string(data)))

	return nil
}

// reReadInitFile reloads the init file in place (spec §4.3: "the
// reader-binding command re-read-init-file reloads it in place").
func (rl *Shell) reReadInitFile() {
	if rl.initFilePath == "" {
		return
	}

	if err := rl.LoadInitFile(rl.initFilePath); err != nil {
		rl.Hint.Set(err.Error())
	}
}
