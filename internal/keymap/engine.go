package keymap

import (
	"github.com/reeflective/lineedit/internal/core"
	"github.com/reeflective/lineedit/internal/inputrc"
)

// Mode names a keymap. Three named keymaps coexist (spec §3/§6):
// Emacs, ViIns and ViCmd ("vi-move" in spec's external-interface
// naming). A local keymap, Isearch, layers on top of whichever main
// keymap is active while reverse-i-search is running.
type Mode string

const (
	Emacs Mode = "emacs"
	ViIns Mode = "vi-insert"
	ViCmd Mode = "vi-move"

	// Vi is an alias for ViCmd used by command dispatch code that
	// only cares "are we in some Vi mode", matching the teacher's own
	// three-way switch on keymap.ViCommand/keymap.ViMove/keymap.Vi.
	Vi Mode = ViCmd

	Isearch Mode = "isearch"
	NoLocal Mode = ""
)

// Engine stores the three persistent keymaps plus the transient
// pointer to whichever one is "active" (spec §3 KeyMap: "the
// controller holds a reference to the currently active one"), the
// momentary local keymap, and the shared widget table used to turn a
// resolved Operation name into a callable command.
type Engine struct {
	maps map[Mode]*Map

	main  Mode
	local Mode

	widgets map[string]func()

	keys *core.Keys

	escapeTimeoutMs int
}

// NewEngine returns an Engine with empty emacs/vi-insert/vi-move maps,
// Emacs active by default, bound to keys for sequence accumulation.
func NewEngine(keys *core.Keys) *Engine {
	return &Engine{
		maps: map[Mode]*Map{
			Emacs: NewMap(),
			ViIns: NewMap(),
			ViCmd: NewMap(),
		},
		main:            Emacs,
		keys:            keys,
		escapeTimeoutMs: 150,
	}
}

// SetEscapeTimeout configures the ESC-disambiguation wait (spec §4.4
// step 4 / §6, default 150ms).
func (e *Engine) SetEscapeTimeout(ms int) {
	e.escapeTimeoutMs = ms
}

// SetWidgets installs the Operation-name → command function table.
// A single table is shared across all three keymaps: the keymaps only
// decide which key sequence maps to which Operation name.
func (e *Engine) SetWidgets(widgets map[string]func()) {
	e.widgets = widgets
}

// Get returns the named keymap, creating it if unknown.
func (e *Engine) Get(mode Mode) *Map {
	m, ok := e.maps[mode]
	if !ok {
		m = NewMap()
		e.maps[mode] = m
	}

	return m
}

// Main returns the currently active main keymap name.
func (e *Engine) Main() Mode {
	return e.main
}

// SetMain switches the active main keymap.
func (e *Engine) SetMain(mode Mode) {
	e.main = mode
}

// Local returns the currently active local keymap name, or NoLocal.
func (e *Engine) Local() Mode {
	return e.local
}

// SetLocal switches the active local keymap.
func (e *Engine) SetLocal(mode Mode) {
	e.local = mode
}

// IsEmacs reports whether the Emacs keymap is active.
func (e *Engine) IsEmacs() bool {
	return e.main == Emacs
}

// RunPending is a hook point for deferred per-iteration work (the
// teacher calls an equivalent after each command when no Vi operator
// is pending); nothing needs deferring once Vi pending-operators are
// resolved synchronously the way this rewrite does, so it is a no-op
// kept for parity with the Controller's step ordering in spec §4.4.
func (e *Engine) RunPending() {}

// MatchLocal resolves the pending sequence against the local keymap,
// if one is active; returns prefixed=true if more keys are needed, or
// bind/command set if a binding resolved. If no local keymap is
// active, or the pending sequence is not a path in the local keymap, it
// returns immediately with nothing resolved and prefixed=false, leaving
// the sequence pending for MatchMain.
func MatchLocal(e *Engine) (bind inputrc.Bind, command func(), prefixed bool) {
	if e.local == NoLocal {
		return inputrc.Bind{}, nil, false
	}

	local := e.Get(e.local)
	if !local.lookup(e.keys.Pending()).found {
		return inputrc.Bind{}, nil, false
	}

	return e.resolve(local)
}

// MatchMain resolves the pending sequence against the active main
// keymap (spec §4.4 step 2).
func MatchMain(e *Engine) (bind inputrc.Bind, command func(), prefixed bool) {
	return e.resolve(e.Get(e.main))
}

// resolve implements spec §4.4 steps 3-5: longest-prefix match with
// do-lowercase-version retry, the ESC-timeout disambiguation, and
// prefix backoff when nothing matches the full pending sequence.
func (e *Engine) resolve(m *Map) (inputrc.Bind, func(), bool) {
	pending := e.keys.Pending()
	if len(pending) == 0 {
		return inputrc.Bind{}, nil, false
	}

	res := m.lookup(pending)

	// do-lowercase-version: replace the last key with its lowercase
	// form and re-resolve (spec §4.3/§4.4 step 3).
	if res.bound && res.node == nil && res.bind.Action == inputrc.DoLowercaseVersion {
		lowered := append([]rune{}, pending[:len(pending)-1]...)
		lowered = append(lowered, lowerRune(pending[len(pending)-1]))
		res = m.lookup(lowered)
	}

	switch {
	case res.node != nil:
		// More keys may extend this sequence (spec §4.4 step 4).
		if e.shouldCommitEscape(pending, res) {
			e.keys.MarkUsed(len(pending))
			e.keys.Reset()

			return res.bind, e.command(res.bind), false
		}

		return inputrc.Bind{}, nil, true

	case res.found && res.bound:
		e.keys.MarkUsed(len(pending))
		e.keys.Reset()

		return res.bind, e.command(res.bind), false

	default:
		return e.backoff(m, pending)
	}
}

// command resolves a Bind to a callable: its own Callback if set,
// otherwise the widget registered under its Action name.
func (e *Engine) command(bind inputrc.Bind) func() {
	if bind.Callback != nil {
		return bind.Callback
	}

	return e.widgets[bind.Action]
}

// shouldCommitEscape implements spec §4.4 step 4's escape-peek rule:
// if the last key was ESC, the pending sequence has length 1, the
// pushback stack is empty, non-blocking peek is enabled, and a peek
// with the configured timeout reports no byte, commit this node's own
// binding (its anotherKey) instead of waiting for more keys.
func (e *Engine) shouldCommitEscape(pending []rune, res result) bool {
	if !res.bound || len(pending) != 1 || pending[0] != inputrc.Escape {
		return false
	}

	if !e.keys.NonBlockingEnabled() {
		return false
	}

	_, gotByte := e.keys.PeekTimeout(e.escapeTimeoutMs)

	return !gotByte
}

// backoff implements spec §4.4 step 5: repeatedly drop the tail key
// of the pending sequence, pushing it back onto the PushbackStack, and
// re-resolve at shorter prefixes (using a prefix's own anotherKey
// binding when it is itself a bound KeyMap node). If no prefix
// resolves, the sequence is discarded.
func (e *Engine) backoff(m *Map, pending []rune) (inputrc.Bind, func(), bool) {
	for len(pending) > 1 {
		_, ok := e.keys.DropLast()
		if !ok {
			break
		}

		pending = pending[:len(pending)-1]

		res := m.lookup(pending)

		switch {
		case res.node != nil && res.bound:
			e.keys.MarkUsed(len(pending))
			e.keys.Reset()

			return res.bind, e.command(res.bind), false

		case res.found && res.bound && res.node == nil:
			e.keys.MarkUsed(len(pending))
			e.keys.Reset()

			return res.bind, e.command(res.bind), false
		}
	}

	// Nothing resolved at any prefix length: discard and continue
	// (spec §7 "Unknown key binding — silently ignored").
	e.keys.Reset()

	return inputrc.Bind{}, nil, false
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}
