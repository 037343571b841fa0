// Package macro implements keyboard-macro recording/replay (spec §3
// MacroState, §4.5 start-kbd-macro/end-kbd-macro/call-last-kbd-macro).
package macro

import (
	"os"

	"github.com/reeflective/lineedit/internal/core"
	"gopkg.in/yaml.v3"
)

// Engine holds the macro-recording state: whether a macro is currently
// being recorded, and the last completed macro's replacement text.
type Engine struct {
	recording bool
	current   []rune
	last      string

	named map[string]string
}

// NewEngine returns an Engine with no macro recorded.
func NewEngine() *Engine {
	return &Engine{named: make(map[string]string)}
}

// Recording reports whether a macro is currently being recorded.
func (e *Engine) Recording() bool {
	return e.recording
}

// Start begins recording: recording=true, macro reset to empty (spec
// §4.5 start-kbd-macro).
func (e *Engine) Start() {
	e.recording = true
	e.current = e.current[:0]
}

// Stop ends recording, trimming the stop-key sequence (the keys that
// triggered end-kbd-macro itself) from the tail of the recorded
// macro, and keeps the result as the "last" macro (spec §4.5
// end-kbd-macro, §3 MacroState: "on stop, the stop-key sequence is
// trimmed from the tail").
func (e *Engine) Stop(stopKeys int) {
	e.recording = false

	if stopKeys > 0 && stopKeys <= len(e.current) {
		e.current = e.current[:len(e.current)-stopKeys]
	}

	e.last = string(e.current)
	e.current = nil
}

// RecordKey appends a logical key to the macro being recorded, if
// any. Called unconditionally by the Controller before resolving a
// binding (spec §4.4 step 2: "If recording, append to macro"), so it
// is a no-op when Recording() is false.
func (e *Engine) RecordKey(key rune) {
	if e.recording {
		e.current = append(e.current, key)
	}
}

// Last returns the most recently completed macro's replacement text.
func (e *Engine) Last() string {
	return e.last
}

// Replay pushes the last macro's keys back onto keys (spec §4.5
// call-last-kbd-macro: "pushes macro back onto the PushbackStack").
func (e *Engine) Replay(keys *core.Keys) {
	if e.last == "" {
		return
	}

	keys.Feed(false, []rune(e.last)...)
}

// namedMacros is the on-disk shape for SaveMacros/LoadMacros.
type namedMacros struct {
	Macros map[string]string `yaml:"macros"`
}

// SaveMacros persists all named macros registered via SetNamed to a
// YAML sidecar file (SPEC_FULL.md domain-stack addition, supplementing
// the bare in-memory MacroState of spec §3 with simple persistence).
func (e *Engine) SaveMacros(path string) error {
	data, err := yaml.Marshal(namedMacros{Macros: e.named})
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// LoadMacros reads named macros previously written by SaveMacros.
func (e *Engine) LoadMacros(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var loaded namedMacros
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	if e.named == nil {
		e.named = make(map[string]string)
	}

	for name, text := range loaded.Macros {
		e.named[name] = text
	}

	return nil
}

// SetNamed registers a macro under name for later persistence/replay
// via ReplayNamed.
func (e *Engine) SetNamed(name, text string) {
	e.named[name] = text
}

// ReplayNamed pushes a previously named macro's keys back onto keys.
func (e *Engine) ReplayNamed(keys *core.Keys, name string) bool {
	text, ok := e.named[name]
	if !ok {
		return false
	}

	keys.Feed(false, []rune(text)...)

	return true
}
