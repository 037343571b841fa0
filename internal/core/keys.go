package core

// Reader is the minimal contract the Keys queue needs from the byte
// source: a blocking read of one decoded key, and a non-blocking peek
// with a timeout, used by the Controller to disambiguate a lone ESC
// (spec §4.4 step 4, §5).
type Reader interface {
	ReadKey() (rune, error)
	PeekTimeout(timeoutMs int) (rune, bool)
	NonBlockingEnabled() bool
}

// Keys is the PendingSequence + PushbackStack pair described in spec
// §3: keys consumed from the Reader or replayed from a macro/prefix
// backoff are appended to a pending sequence, which is drained once a
// keymap binding resolves (or is abandoned).
type Keys struct {
	reader   Reader
	pending  []rune // PendingSequence
	used     int    // how many of pending[] were consumed by the last resolution
	pushed   []rune // PushbackStack, LIFO
	recorder func(rune)
}

// NewKeys returns a Keys queue reading from reader.
func NewKeys(reader Reader) *Keys {
	return &Keys{reader: reader}
}

// SetRecorder installs a callback invoked with every key as it is
// appended to PendingSequence (spec §4.4 step 2: "If recording,
// append to macro"). The callback itself decides whether a macro is
// currently being recorded.
func (k *Keys) SetRecorder(recorder func(rune)) {
	k.recorder = recorder
}

// WaitAvailableKeys appends exactly one more key to Pending: a
// pushed-back key (from backoff or a fed macro) if one is waiting,
// otherwise a fresh key blocking-read from the source. A prefix match
// that needs another key to disambiguate (spec §4.4 step 4) always
// falls through to this, since the keys already in Pending were
// already tried by the last resolution and found insufficient alone.
func WaitAvailableKeys(k *Keys) error {
	if n := len(k.pushed); n > 0 {
		key := k.pushed[n-1]
		k.pushed = k.pushed[:n-1]
		k.pending = append(k.pending, key)

		if k.recorder != nil {
			k.recorder(key)
		}

		return nil
	}

	return k.readOne()
}

// Feed pushes runes onto the PushbackStack, in reverse order so that
// the first rune of seq is the next one read. If record is true the
// fed keys are also appended to the pending sequence immediately
// (used when a macro replays into an already-open resolution).
func (k *Keys) Feed(record bool, seq ...rune) {
	for i := len(seq) - 1; i >= 0; i-- {
		k.pushed = append(k.pushed, seq[i])
	}

	if record {
		k.pending = append(k.pending, seq...)
	}
}

// Pull returns the next key: from the PushbackStack if non-empty,
// else from the reader (spec §4.4 step 1). It is appended to Pending.
func (k *Keys) Pull() (rune, error) {
	var key rune

	if n := len(k.pushed); n > 0 {
		key = k.pushed[n-1]
		k.pushed = k.pushed[:n-1]
	} else {
		var err error

		key, err = k.reader.ReadKey()
		if err != nil {
			return 0, err
		}
	}

	k.pending = append(k.pending, key)

	if k.recorder != nil {
		k.recorder(key)
	}

	return key, nil
}

func (k *Keys) readOne() error {
	key, err := k.reader.ReadKey()
	if err != nil {
		return err
	}

	k.pending = append(k.pending, key)

	if k.recorder != nil {
		k.recorder(key)
	}

	return nil
}

// Pending returns the key sequence accumulated since the last
// FlushUsed/Drop, not counting keys already matched by a resolved
// prefix.
func (k *Keys) Pending() []rune {
	return append([]rune{}, k.pending[k.used:]...)
}

// MarkUsed records that n keys of the current Pending() were consumed
// by a resolved binding; they are dropped on the next FlushUsed.
func (k *Keys) MarkUsed(n int) {
	k.used += n
}

// DropLast pushes the most recently pulled pending key back onto the
// PushbackStack and un-marks it, used by the keymap's longest-prefix
// backoff (spec §4.4 step 5: "repeatedly drop the tail key, pushing
// it back onto the PushbackStack, and re-resolve at shorter prefixes").
func (k *Keys) DropLast() (rune, bool) {
	if len(k.pending) <= k.used {
		return 0, false
	}

	last := k.pending[len(k.pending)-1]
	k.pending = k.pending[:len(k.pending)-1]
	k.pushed = append(k.pushed, last)

	return last, true
}

// FlushUsed discards pending keys that have been fully consumed by a
// resolved binding (spec §4.4: "get rid of the keys that were
// consumed during the previous command run").
func FlushUsed(k *Keys) {
	if k.used > 0 {
		k.pending = append([]rune{}, k.pending[k.used:]...)
		k.used = 0
	}
}

// Reset clears the pending sequence entirely without consuming it
// (an unresolvable prefix was abandoned).
func (k *Keys) Reset() {
	k.pending = k.pending[:0]
	k.used = 0
}

// NonBlockingEnabled reports whether the underlying reader supports a
// real timed peek (vs. always blocking).
func (k *Keys) NonBlockingEnabled() bool {
	return k.reader.NonBlockingEnabled()
}

// PeekTimeout peeks the next raw key without consuming it, waiting up
// to timeoutMs. The second return is false if no key arrived in time.
func (k *Keys) PeekTimeout(timeoutMs int) (rune, bool) {
	if len(k.pushed) > 0 {
		return k.pushed[len(k.pushed)-1], true
	}

	return k.reader.PeekTimeout(timeoutMs)
}
