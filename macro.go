package readline

// startKbdMacro begins recording (spec §4.5 start-kbd-macro).
func (rl *Shell) startKbdMacro() {
	rl.Macros.Start()
}

// endKbdMacro stops recording, trimming the stop-key sequence from
// the tail (spec §4.5 end-kbd-macro). The stop keys are the two keys
// of the default ESC ')' binding, both recorded before this command
// runs; a rebinding to a sequence of another length is not accounted
// for.
func (rl *Shell) endKbdMacro() {
	rl.Macros.Stop(2)
}

// callLastKbdMacro replays the last recorded macro (spec §4.5
// call-last-kbd-macro).
func (rl *Shell) callLastKbdMacro() {
	rl.Macros.Replay(rl.Keys)
}
