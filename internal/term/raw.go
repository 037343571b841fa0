// Package term wraps the external terminal collaborators named in
// spec §1 as out-of-scope-but-specified-at-their-interface: raw-mode
// setup, terminal size/capability probing, and the non-blocking byte
// source the KeystrokeDecoder peeks ahead on (spec §4.2, §5).
package term

import "golang.org/x/term"

// State is an opaque terminal mode snapshot, returned by MakeRaw and
// consumed by Restore.
type State = term.State

// MakeRaw puts the terminal on fd into raw mode and returns the
// previous state so the caller can restore it on exit.
func MakeRaw(fd int) (*State, error) {
	return term.MakeRaw(fd)
}

// Restore reinstates a terminal state previously returned by MakeRaw.
func Restore(fd int, state *State) error {
	return term.Restore(fd, state)
}

// GetWidth returns the terminal's column count, or a conservative
// default of 80 if it cannot be determined (e.g. output redirected to
// a pipe) — the dumb-strategy fallback path of spec §4.6.
func GetWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}

	return width
}

// IsTerminal reports whether fd refers to an interactive terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
