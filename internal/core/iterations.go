package core

import "strconv"

// Iterations implements the Vi numeric-argument accumulator (spec §3
// Mode/Repeat): a repeat count built up digit by digit and reset to 0
// after any non-digit command.
type Iterations struct {
	count   int
	isDigit bool
	pending bool
	hint    string
}

// Reset clears the accumulator. Called at Shell.init() and after
// every command that did not itself touch the accumulator.
func (it *Iterations) Reset() {
	if it.isDigit {
		it.isDigit = false
		return
	}

	it.count = 0
	it.pending = false
}

// Add appends a base-10 digit to the accumulator.
func (it *Iterations) Add(digit int) {
	it.count = it.count*10 + digit
	it.isDigit = true
	it.pending = true
}

// IsSet reports whether a non-default repeat count is active.
func (it *Iterations) IsSet() bool {
	return it.count > 0
}

// IsPending reports whether the last key fed the digit accumulator
// (so that a pending Vi operator should not yet be flushed).
func (it *Iterations) IsPending() bool {
	return it.isDigit
}

// Get returns the accumulated count, defaulting to 1 when unset.
func (it *Iterations) Get() int {
	if it.count <= 0 {
		return 1
	}

	return it.count
}

// ResetPostRunIterations clears the accumulator after a command has
// run and returns a hint string describing the count that was active
// (e.g. "(arg: 4)"), or "" if none was active. The real accumulator
// reset is deferred one iteration so that Reset (called at the top of
// the loop) can tell a freshly-typed digit from leftover state.
func ResetPostRunIterations(it *Iterations) string {
	if !it.pending {
		return ""
	}

	hint := ""
	if it.count > 1 {
		hint = "(arg: " + strconv.Itoa(it.count) + ")"
	}

	if !it.isDigit {
		it.count = 0
		it.pending = false
	}

	return hint
}
