// Package readline implements the interactive line editor core: a
// single readLine call that puts the terminal in raw mode, decodes
// keystrokes, dispatches them through a keymap to a command set, and
// returns the finished line (spec §1-§5).
package readline

import (
	"io"
	"os"
	"time"

	"github.com/reeflective/lineedit/internal/color"
	"github.com/reeflective/lineedit/internal/completion"
	"github.com/reeflective/lineedit/internal/core"
	"github.com/reeflective/lineedit/internal/display"
	"github.com/reeflective/lineedit/internal/history"
	"github.com/reeflective/lineedit/internal/inputrc"
	"github.com/reeflective/lineedit/internal/keymap"
	"github.com/reeflective/lineedit/internal/macro"
	"github.com/reeflective/lineedit/internal/search"
	"github.com/reeflective/lineedit/internal/term"
	"github.com/reeflective/lineedit/internal/ui"
)

// maskTickerInterval is how often the background redraw thread
// re-blanks the line on terminals without reliable echo suppression
// (spec §5).
const maskTickerInterval = 100 * time.Millisecond

// Shell is the readline instance: one per embedding application,
// reused across many Readline() calls (spec §3 Lifecycle: "KeyMap,
// HistoryView, MacroState, and the active-keymap pointer persist
// across calls").
type Shell struct {
	in  *os.File
	out io.Writer

	Keys    *core.Keys
	decoder *term.Decoder
	nbr     *term.NonBlockingReader

	Keymap *keymap.Engine
	Opts   *inputrc.Config

	line      core.Line
	cursor    *core.Cursor
	selection *core.Selection

	Iterations *core.Iterations

	History *history.Sources
	Search  *search.State

	Completer *completion.Driver
	Macros    *macro.Engine

	Hint    *ui.Hint
	Prompt  *ui.Prompt
	Display *display.Renderer

	overwrite bool

	viPendingOp string
	lastFind    rune
	lastFindCmd rune

	savedLine   core.Line
	savedCursor int

	accepted  bool
	acceptErr error

	// pendingHistoryIndex, when >= 0, seeds the next Readline call's
	// buffer from that history index instead of starting empty
	// (operate-and-get-next).
	pendingHistoryIndex int

	initFilePath string

	ansiCapable bool
	masked      bool
	maskTicker  *display.MaskTicker
}

// NewShell returns a Shell reading from in and writing to out, with
// default Emacs and Vi keymaps populated (spec §6 "Keymap names:
// emacs, vi-insert, vi-move").
func NewShell(in *os.File, out io.Writer, primary func() string) *Shell {
	rl := &Shell{
		in:                  in,
		out:                 out,
		pendingHistoryIndex: -1,
	}

	rl.Opts = inputrc.Defaults()

	rl.cursor = core.NewCursor(&rl.line)
	rl.selection = core.NewSelection(&rl.line, rl.cursor)
	rl.Iterations = &core.Iterations{}

	ansiCapable := term.IsTerminal(int(in.Fd()))
	rl.ansiCapable = ansiCapable
	rl.nbr = term.NewNonBlockingReader(in, ansiCapable)
	rl.decoder = term.NewDecoder(rl.nbr)
	rl.Keys = core.NewKeys(rl.decoder)

	rl.Keymap = keymap.NewEngine(rl.Keys)
	rl.Keymap.SetEscapeTimeout(rl.Opts.EscapeTimeout())

	rl.History = history.NewSources(history.NewMemory())
	rl.Search = search.NewState(rl.History.Current())

	rl.Completer = completion.NewDriver(rl.Opts)
	rl.Macros = macro.NewEngine()

	rl.Hint = ui.NewHint()
	rl.Prompt = ui.NewPrompt(primary)

	width := func() int { return term.GetWidth(int(in.Fd())) }
	rl.Display = display.New(out, width, ansiCapable)

	rl.Keys.SetRecorder(rl.Macros.RecordKey)

	rl.bindDefaults()
	rl.Keymap.SetWidgets(rl.widgets())

	return rl
}

// Close shuts down the background reader. Safe to call multiple times.
func (rl *Shell) Close() {
	rl.nbr.Shutdown()
}

// SetMask installs the echo-mask character for password-style input
// (spec §4.6 Masking): each buffer character is echoed as mask, and
// '\x00' hides input entirely while still recording it. Masking stays
// on for the rest of the Shell's life; the redraw ticker runs only for
// a mask other than '\x00' on a non-ANSI terminal.
func (rl *Shell) SetMask(mask rune) {
	rl.Display.SetMask(mask)
	rl.masked = mask != 0
}

// Readline displays the prompt and reads a single line of input,
// implementing the Controller read loop of spec §4.4.
func (rl *Shell) Readline() (string, error) {
	descriptor := int(rl.in.Fd())

	state, err := term.MakeRaw(descriptor)
	if err == nil {
		defer term.Restore(descriptor, state)
	}

	rl.init()

	rl.Display.SetPrompt(rl.Prompt.Primary())
	rl.Display.Init()

	if rl.masked && !rl.ansiCapable {
		rl.maskTicker = display.StartMaskTicker(maskTickerInterval, func() {
			rl.Display.Refresh(&rl.line, rl.cursor)
		})

		defer func() {
			rl.maskTicker.Stop()
			rl.maskTicker = nil
		}()
	}

	for {
		rl.Iterations.Reset()

		core.FlushUsed(rl.Keys)

		rl.Display.Refresh(&rl.line, rl.cursor)

		if err := core.WaitAvailableKeys(rl.Keys); err != nil {
			return "", err
		}

		bind, command, prefixed := keymap.MatchLocal(rl.Keymap)
		if prefixed {
			continue
		}

		if accepted, line, acceptErr := rl.run(bind, command); accepted {
			return line, acceptErr
		}

		if command != nil {
			continue
		}

		bind, command, prefixed = keymap.MatchMain(rl.Keymap)
		if prefixed {
			continue
		}

		// A key with no local (isearch) binding that does resolve in
		// the main keymap exits SEARCH keeping the installed match,
		// then runs normally (spec §4.5: "Any other bound key exits
		// SEARCH, installs the matched history entry as the buffer,
		// and re-dispatches the key in NORMAL state").
		if rl.Search.Active() && (bind.Action != "" || command != nil) {
			rl.exitIsearch(false)
		}

		if accepted, line, acceptErr := rl.run(bind, command); accepted {
			return line, acceptErr
		}

		rl.handleUndefined(bind, command)
	}
}

func (rl *Shell) init() {
	core.FlushUsed(rl.Keys)
	rl.line.Set()
	rl.cursor.Set(0)
	rl.cursor.ResetMark()
	rl.selection.Reset()
	rl.Iterations.Reset()
	rl.Hint.Clear()
	rl.Completer.Cancel()

	// A previous Readline call must never leave SEARCH state entered;
	// the exit already happens in the normal flow (see the
	// Search.Active() check in Readline's loop), this is the backstop
	// for any path that returns without going through it.
	if rl.Search.Active() {
		rl.Search.Exit()
	}
	rl.Keymap.SetLocal(keymap.NoLocal)

	if rl.pendingHistoryIndex >= 0 {
		view := rl.History.Current()
		if entry, err := view.Get(rl.pendingHistoryIndex); err == nil {
			view.MoveTo(rl.pendingHistoryIndex)
			rl.line.Set([]rune(entry)...)
			rl.cursor.Set(rl.line.Len())
		}

		rl.pendingHistoryIndex = -1
	}
}

// run wraps one resolved binding with the pre/post bookkeeping the
// Controller owes every command (spec §4.4 steps 6-8).
func (rl *Shell) run(bind inputrc.Bind, command func()) (accepted bool, line string, err error) {
	if bind.Macro {
		rl.Keys.Feed(false, []rune(inputrc.Unescape(bind.Action))...)
	}

	if command == nil {
		return false, "", nil
	}

	command()

	switch rl.Keymap.Main() {
	case keymap.ViCmd:
		rl.cursor.CheckCommand()
	default:
		rl.cursor.CheckAppend()
	}

	rl.updatePostRunHint()

	if rl.accepted {
		line := string(rl.line)
		rl.accepted = false

		return true, line, rl.acceptErr
	}

	return false, "", nil
}

func (rl *Shell) updatePostRunHint() {
	hint := core.ResetPostRunIterations(rl.Iterations)

	switch {
	case hint != "":
		rl.Hint.Set(color.Dim + hint + color.Reset)
	case rl.Macros.Recording():
		rl.Hint.Set(color.Dim + "(recording)" + color.Reset)
	case rl.Search.Active():
		rl.Hint.Set(color.Bold + color.FgCyan + "(reverse-i-search)`" + rl.Search.Term() + "': " + color.Reset)
	default:
		rl.Hint.Clear()
	}
}

// handleUndefined reacts to a key that resolved to nothing in either
// keymap: an undefined key cancels an active incremental search
// (spec §4.5 reverse-search-history: "Any other bound key exits
// SEARCH"; an outright unbound key is treated the same way here).
func (rl *Shell) handleUndefined(bind inputrc.Bind, command func()) {
	if bind.Action != "" || command != nil {
		return
	}

	if rl.Keymap.Local() == keymap.Isearch {
		rl.exitIsearch(true)
	}
}
